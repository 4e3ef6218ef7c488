package connections

import (
	"context"
	"errors"

	"github.com/questboard/gamelink/models"
	"github.com/questboard/gamelink/statetoken"
)

// Error kinds returned by connectors. Callers classify with errors.Is; the
// messages wrapped around them are safe to log but the upstream detail behind
// them is only ever written to the logger, never returned.
var (
	// ErrInvalidState covers tampered, expired, or malformed state tokens.
	// It aliases the statetoken sentinel so both packages classify alike.
	ErrInvalidState = statetoken.ErrInvalid

	// ErrTokenExchange is a failure exchanging the authorization code for a
	// provider access token (HTTP failure or provider-reported error).
	ErrTokenExchange = errors.New("token exchange failed")

	// ErrInvalidCredential means the provider access token was rejected by
	// the provider's own authentication service: the credential itself is
	// unusable, not the exchange configuration.
	ErrInvalidCredential = errors.New("provider credential rejected")

	// ErrProvider covers identity-fetch failures and any other unclassified
	// upstream failure.
	ErrProvider = errors.New("provider request failed")

	// ErrUnknownProvider is returned by dispatch when no connector is
	// registered under the requested tag.
	ErrUnknownProvider = errors.New("unknown provider")
)

// Settings holds the provider application credentials, loaded once at
// connector construction.
type Settings struct {
	ClientID     string
	ClientSecret string
}

// Connection is the contract every provider connector implements. The
// dispatch layer looks a connector up by its type tag and invokes only
// these methods.
type Connection interface {
	// Type returns the stable provider tag, e.g. "xbox".
	Type() string

	// AuthorizationURL mints a state token for the user and builds the
	// provider consent URL. No network call.
	AuthorizationURL(userID string) (string, error)

	// Exchange validates the state and converts an authorization code into
	// the provider's token response.
	Exchange(ctx context.Context, state, code string) (*models.TokenData, error)

	// HandleCallback runs the full flow for a provider redirect. It returns
	// the created connection, or nil when the external account was already
	// linked to the user (an idempotent no-op, not an error).
	HandleCallback(ctx context.Context, params models.CallbackParams) (*models.Connection, error)

	// Settings exposes the credentials the connector was built with.
	Settings() Settings
}

// Registry maps provider tags to their connectors.
type Registry map[string]Connection

// NewRegistry builds a registry from the given connectors, keyed by type tag.
func NewRegistry(conns ...Connection) Registry {
	r := make(Registry, len(conns))
	for _, c := range conns {
		r[c.Type()] = c
	}
	return r
}

// Lookup returns the connector registered under the given provider tag.
func (r Registry) Lookup(provider string) (Connection, error) {
	conn, ok := r[provider]
	if !ok {
		return nil, ErrUnknownProvider
	}
	return conn, nil
}
