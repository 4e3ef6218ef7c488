package connections

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/questboard/gamelink/models"
	"github.com/questboard/gamelink/repositories"
	"github.com/questboard/gamelink/statetoken"
)

// TypeXbox is the provider tag for Xbox Live connections.
const TypeXbox = "xbox"

const (
	xboxAuthorizeURL = "https://login.live.com/oauth20_authorize.srf"
	xboxTokenURL     = "https://login.live.com/oauth20_token.srf"

	defaultUserAuthURL = "https://user.auth.xboxlive.com/user/authenticate"
	defaultXSTSAuthURL = "https://xsts.auth.xboxlive.com/xsts/authorize"
)

var xboxScopes = []string{"XboxLive.signin", "XboxLive.offline_access"}

// Xbox links a host platform user to their Xbox Live identity. The provider
// has no identity endpoint reachable from an OAuth access token directly, so
// the exchange runs three chained calls: authorization code to access token,
// access token to an Xbox user session token, session token to the identity
// claims. Each stage fails with its own error kind.
type Xbox struct {
	settings Settings
	oauth    *oauth2.Config
	states   *statetoken.Codec
	repo     repositories.ConnectionRepository
	logger   *zap.Logger
	client   *http.Client

	// Overridable for tests.
	userAuthURL string
	xstsAuthURL string
}

// NewXbox creates the Xbox connector. Both credentials are required: the
// connector refuses to start rather than send malformed requests later.
func NewXbox(settings Settings, publicURL string, states *statetoken.Codec, repo repositories.ConnectionRepository, logger *zap.Logger) (*Xbox, error) {
	if settings.ClientID == "" {
		return nil, errors.New("xbox client ID is required")
	}
	if settings.ClientSecret == "" {
		return nil, errors.New("xbox client secret is required")
	}
	if publicURL == "" {
		return nil, errors.New("public URL is required")
	}

	conf := &oauth2.Config{
		ClientID:     settings.ClientID,
		ClientSecret: settings.ClientSecret,
		RedirectURL:  strings.TrimSuffix(publicURL, "/") + "/connections/xbox/callback",
		Scopes:       xboxScopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   xboxAuthorizeURL,
			TokenURL:  xboxTokenURL,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}

	return &Xbox{
		settings:    settings,
		oauth:       conf,
		states:      states,
		repo:        repo,
		logger:      logger,
		client:      &http.Client{Timeout: 15 * time.Second},
		userAuthURL: defaultUserAuthURL,
		xstsAuthURL: defaultXSTSAuthURL,
	}, nil
}

// Type returns the provider tag
func (x *Xbox) Type() string {
	return TypeXbox
}

// Settings returns the credentials the connector was built with
func (x *Xbox) Settings() Settings {
	return x.settings
}

// AuthorizationURL mints a state token bound to the user and builds the
// consent URL. Pure URL construction, no network call.
func (x *Xbox) AuthorizationURL(userID string) (string, error) {
	state, err := x.states.Issue(userID)
	if err != nil {
		return "", fmt.Errorf("failed to issue state token: %w", err)
	}

	return x.oauth.AuthCodeURL(state, oauth2.SetAuthURLParam("approval_prompt", "auto")), nil
}

// Exchange converts an authorization code into the provider token response
// (stage one of the chain). The state is re-validated here even though the
// callback handler validates it first; this method must not trust callers.
func (x *Xbox) Exchange(ctx context.Context, state, code string) (*models.TokenData, error) {
	if err := x.states.Validate(state); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, fmt.Errorf("%w: missing authorization code", ErrTokenExchange)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, x.client)
	token, err := x.oauth.Exchange(ctx, code,
		oauth2.SetAuthURLParam("client_id", x.settings.ClientID),
		oauth2.SetAuthURLParam("scope", strings.Join(xboxScopes, " ")),
	)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			// Upstream detail is for operators only; the caller gets the
			// generic error kind.
			x.logger.Error("xbox token endpoint rejected the exchange",
				zap.Int("status", retrieveErr.Response.StatusCode),
				zap.String("upstream_error", retrieveErr.ErrorCode),
				zap.String("upstream_description", retrieveErr.ErrorDescription))
		} else {
			x.logger.Error("xbox token exchange failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: provider rejected the authorization code", ErrTokenExchange)
	}

	data := &models.TokenData{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		FetchedAt:    time.Now().UTC(),
	}
	if v, ok := token.Extra("expires_in").(float64); ok {
		data.ExpiresIn = int64(v)
	} else if !token.Expiry.IsZero() {
		data.ExpiresIn = int64(time.Until(token.Expiry).Seconds())
	}

	return data, nil
}

// HandleCallback runs the full linking flow for a provider redirect:
// validate state, run the three-stage exchange, then reconcile against
// existing connections. Nothing is persisted until every stage and the
// existence check have succeeded.
func (x *Xbox) HandleCallback(ctx context.Context, params models.CallbackParams) (*models.Connection, error) {
	userID, err := x.states.UserID(params.State)
	if err != nil {
		return nil, err
	}
	if params.Code == "" {
		return nil, fmt.Errorf("%w: missing authorization code", ErrTokenExchange)
	}

	tokenData, err := x.Exchange(ctx, params.State, params.Code)
	if err != nil {
		return nil, err
	}

	sessionToken, err := x.userToken(ctx, tokenData.AccessToken)
	if err != nil {
		return nil, err
	}

	identity, err := x.identity(ctx, sessionToken)
	if err != nil {
		return nil, err
	}

	existing, err := x.repo.Find(ctx, userID, x.Type(), identity.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing connections: %w", err)
	}
	if existing != nil {
		// Re-linking an already-linked account is a no-op, not an error.
		x.logger.Info("xbox account already linked",
			zap.String("user_id", userID),
			zap.String("external_id", identity.ExternalID))
		return nil, nil
	}

	conn := &models.Connection{
		UserID:      userID,
		Provider:    x.Type(),
		ExternalID:  identity.ExternalID,
		DisplayName: identity.DisplayName,
		TokenData:   *tokenData,
		FriendSync:  params.FriendSync,
	}
	if err := x.repo.Create(ctx, conn); err != nil {
		return nil, fmt.Errorf("failed to persist connection: %w", err)
	}

	x.logger.Info("linked xbox account",
		zap.String("user_id", userID),
		zap.String("external_id", identity.ExternalID),
		zap.String("display_name", identity.DisplayName))
	return conn, nil
}
