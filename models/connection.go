package models

import (
	"time"
)

// TokenData is the provider token response captured at link time. It is
// stored verbatim on the connection record; nothing in this service enforces
// or refreshes its expiry.
type TokenData struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int64     `json:"expires_in"`
	FetchedAt    time.Time `json:"fetched_at"`
}

// ExternalIdentity is the verified identity returned by a provider at the
// end of its token exchange. ExternalID is the reconciliation key.
type ExternalIdentity struct {
	ExternalID  string
	DisplayName string
	RawClaims   map[string]string
}

// Connection is the durable link between a host platform user and an
// external game-network identity. At most one connection may exist per
// (UserID, Provider, ExternalID) triple; the reconciler checks before
// creating and never mutates or deletes a record afterwards.
type Connection struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Provider    string    `json:"provider" db:"provider"`
	ExternalID  string    `json:"external_id" db:"external_id"`
	DisplayName string    `json:"display_name" db:"display_name"`
	TokenData   TokenData `json:"token_data" db:"token_data"`
	FriendSync  bool      `json:"friend_sync" db:"friend_sync"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CallbackParams is the inbound contract of a provider redirect.
type CallbackParams struct {
	State      string `json:"state"`
	Code       string `json:"code,omitempty"`
	FriendSync bool   `json:"friend_sync,omitempty"`
}

// Validate checks the parameters that must be present before any part of
// the callback flow runs.
func (p *CallbackParams) Validate() []string {
	var errs []string
	if p.State == "" {
		errs = append(errs, "state is required")
	}
	if p.Code == "" {
		errs = append(errs, "code is required")
	}
	return errs
}
