package connections

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/questboard/gamelink/models"
)

// Relying-party identifiers narrow which Xbox Live domain each issued token
// is valid for: the user-auth domain for session tokens, the general service
// domain for identity claims.
const (
	relyingPartyUserAuth = "http://auth.xboxlive.com"
	relyingPartyXboxLive = "http://xboxlive.com"

	xboxSiteName  = "user.auth.xboxlive.com"
	xboxSandboxID = "RETAIL"
)

type userTokenProperties struct {
	AuthMethod string `json:"AuthMethod"`
	SiteName   string `json:"SiteName"`
	RpsTicket  string `json:"RpsTicket"`
}

type userTokenRequest struct {
	RelyingParty string              `json:"RelyingParty"`
	TokenType    string              `json:"TokenType"`
	Properties   userTokenProperties `json:"Properties"`
}

type userTokenResponse struct {
	Token            string `json:"Token"`
	IssueInstant     string `json:"IssueInstant"`
	NotAfter         string `json:"NotAfter"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type xstsProperties struct {
	UserTokens []string `json:"UserTokens"`
	SandboxID  string   `json:"SandboxId"`
}

type xstsRequest struct {
	RelyingParty string         `json:"RelyingParty"`
	TokenType    string         `json:"TokenType"`
	Properties   xstsProperties `json:"Properties"`
}

type xstsResponse struct {
	DisplayClaims struct {
		XUI []map[string]string `json:"xui"`
	} `json:"DisplayClaims"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// userToken trades the OAuth access token for an Xbox user session token
// (stage two). The session token is short-lived, used exactly once for the
// identity fetch, and never persisted.
func (x *Xbox) userToken(ctx context.Context, accessToken string) (string, error) {
	req := userTokenRequest{
		RelyingParty: relyingPartyUserAuth,
		TokenType:    "JWT",
		Properties: userTokenProperties{
			AuthMethod: "RPS",
			SiteName:   xboxSiteName,
			RpsTicket:  "d=" + accessToken,
		},
	}

	var resp userTokenResponse
	status, err := x.postJSON(ctx, x.userAuthURL, req, &resp)
	if err != nil {
		x.logger.Error("xbox user authentication request failed", zap.Error(err))
		return "", fmt.Errorf("%w: user authentication unreachable", ErrInvalidCredential)
	}
	if status < 200 || status > 299 {
		x.logger.Error("xbox user authentication rejected the access token",
			zap.Int("status", status),
			zap.String("upstream_error", resp.Error),
			zap.String("upstream_description", resp.ErrorDescription))
		return "", fmt.Errorf("%w: access token not accepted", ErrInvalidCredential)
	}
	if resp.Token == "" {
		x.logger.Error("xbox user authentication returned no session token")
		return "", fmt.Errorf("%w: no session token in response", ErrInvalidCredential)
	}

	return resp.Token, nil
}

// identity trades the session token for the user's identity claims (stage
// three) and extracts the stable external ID and display name from the first
// claims entry.
func (x *Xbox) identity(ctx context.Context, sessionToken string) (*models.ExternalIdentity, error) {
	req := xstsRequest{
		RelyingParty: relyingPartyXboxLive,
		TokenType:    "JWT",
		Properties: xstsProperties{
			UserTokens: []string{sessionToken},
			SandboxID:  xboxSandboxID,
		},
	}

	var resp xstsResponse
	status, err := x.postJSON(ctx, x.xstsAuthURL, req, &resp)
	if err != nil {
		x.logger.Error("xbox identity request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: identity service unreachable", ErrProvider)
	}
	if status < 200 || status > 299 || resp.Error != "" {
		x.logger.Error("xbox identity service rejected the session token",
			zap.Int("status", status),
			zap.String("upstream_error", resp.Error),
			zap.String("upstream_description", resp.ErrorDescription))
		return nil, fmt.Errorf("%w: identity fetch rejected", ErrProvider)
	}
	if len(resp.DisplayClaims.XUI) == 0 {
		x.logger.Error("xbox identity response carried no claims")
		return nil, fmt.Errorf("%w: no identity claims in response", ErrProvider)
	}

	claims := resp.DisplayClaims.XUI[0]
	if claims["xid"] == "" {
		x.logger.Error("xbox identity claims missing xid")
		return nil, fmt.Errorf("%w: claims missing external id", ErrProvider)
	}

	return &models.ExternalIdentity{
		ExternalID:  claims["xid"],
		DisplayName: claims["gtg"],
		RawClaims:   claims,
	}, nil
}

// postJSON sends a JSON request and decodes the JSON response, returning the
// HTTP status for the caller to classify. A body that fails to decode on a
// success status is reported as an error.
func (x *Xbox) postJSON(ctx context.Context, url string, body, out interface{}) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := x.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
			return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
		}
		// Error bodies are allowed to be non-JSON; the status carries the
		// signal.
	}

	return resp.StatusCode, nil
}
