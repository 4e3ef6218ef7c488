package connections

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/questboard/gamelink/database"
	"github.com/questboard/gamelink/models"
	"github.com/questboard/gamelink/repositories"
	"github.com/questboard/gamelink/repositories/mocks"
	"github.com/questboard/gamelink/statetoken"
)

// fakeProvider stands in for the three Xbox Live endpoints. Each stage's
// status and body are overridable; call counts and captured requests let
// tests assert sequencing.
type fakeProvider struct {
	tokenStatus int
	tokenBody   string
	userStatus  int
	userBody    string
	xstsStatus  int
	xstsBody    string

	tokenCalls int
	userCalls  int
	xstsCalls  int

	tokenForm     url.Values
	tokenAuth     string
	userRequest   userTokenRequest
	xstsRequest   xstsRequest
	tokenEndpoint string
	userEndpoint  string
	xstsEndpoint  string
}

func newFakeProvider(t *testing.T) *fakeProvider {
	t.Helper()

	f := &fakeProvider{
		tokenStatus: http.StatusOK,
		tokenBody:   `{"access_token":"AT1","token_type":"bearer","expires_in":3600,"refresh_token":"RT1"}`,
		userStatus:  http.StatusOK,
		userBody:    `{"Token":"ST1","IssueInstant":"2026-03-01T12:00:00Z","NotAfter":"2026-03-01T20:00:00Z"}`,
		xstsStatus:  http.StatusOK,
		xstsBody:    `{"DisplayClaims":{"xui":[{"xid":"X1","gtg":"Gamer1","uhs":"H1"}]}}`,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls++
		_ = r.ParseForm()
		f.tokenForm = r.PostForm
		f.tokenAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.tokenStatus)
		w.Write([]byte(f.tokenBody))
	})
	mux.HandleFunc("/user/authenticate", func(w http.ResponseWriter, r *http.Request) {
		f.userCalls++
		_ = json.NewDecoder(r.Body).Decode(&f.userRequest)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.userStatus)
		w.Write([]byte(f.userBody))
	})
	mux.HandleFunc("/xsts/authorize", func(w http.ResponseWriter, r *http.Request) {
		f.xstsCalls++
		_ = json.NewDecoder(r.Body).Decode(&f.xstsRequest)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.xstsStatus)
		w.Write([]byte(f.xstsBody))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	f.tokenEndpoint = server.URL + "/token"
	f.userEndpoint = server.URL + "/user/authenticate"
	f.xstsEndpoint = server.URL + "/xsts/authorize"
	return f
}

func newTestCodec(t *testing.T) *statetoken.Codec {
	t.Helper()
	codec, err := statetoken.NewCodec("test-secret", time.Minute)
	require.NoError(t, err)
	return codec
}

func newTestXbox(t *testing.T, f *fakeProvider, repo repositories.ConnectionRepository) (*Xbox, *statetoken.Codec) {
	t.Helper()

	codec := newTestCodec(t)
	xbox, err := NewXbox(Settings{ClientID: "client-id", ClientSecret: "client-secret"},
		"http://localhost:8080", codec, repo, zap.NewNop())
	require.NoError(t, err)

	xbox.oauth.Endpoint.TokenURL = f.tokenEndpoint
	xbox.userAuthURL = f.userEndpoint
	xbox.xstsAuthURL = f.xstsEndpoint
	return xbox, codec
}

func validCallback(t *testing.T, codec *statetoken.Codec, userID string) models.CallbackParams {
	t.Helper()
	state, err := codec.Issue(userID)
	require.NoError(t, err)
	return models.CallbackParams{State: state, Code: "abc123", FriendSync: true}
}

func TestNewXbox_RequiresCredentials(t *testing.T) {
	codec := newTestCodec(t)

	_, err := NewXbox(Settings{ClientSecret: "s"}, "http://localhost:8080", codec, nil, zap.NewNop())
	assert.Error(t, err)

	_, err = NewXbox(Settings{ClientID: "c"}, "http://localhost:8080", codec, nil, zap.NewNop())
	assert.Error(t, err)

	_, err = NewXbox(Settings{ClientID: "c", ClientSecret: "s"}, "", codec, nil, zap.NewNop())
	assert.Error(t, err)
}

func TestAuthorizationURL(t *testing.T) {
	f := newFakeProvider(t)
	xbox, codec := newTestXbox(t, f, nil)

	rawURL, err := xbox.AuthorizationURL("u1")
	require.NoError(t, err)

	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "client-id", query.Get("client_id"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "http://localhost:8080/connections/xbox/callback", query.Get("redirect_uri"))
	assert.Equal(t, "XboxLive.signin XboxLive.offline_access", query.Get("scope"))
	assert.Equal(t, "auto", query.Get("approval_prompt"))

	// The embedded state must verify and recover the user.
	userID, err := codec.UserID(query.Get("state"))
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestExchange_InvalidState(t *testing.T) {
	f := newFakeProvider(t)
	xbox, _ := newTestXbox(t, f, nil)

	_, err := xbox.Exchange(context.Background(), "tampered-state", "abc123")
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Zero(t, f.tokenCalls, "no network call may happen on invalid state")
}

func TestExchange_EmptyCode(t *testing.T) {
	f := newFakeProvider(t)
	xbox, codec := newTestXbox(t, f, nil)

	state, err := codec.Issue("u1")
	require.NoError(t, err)

	_, err = xbox.Exchange(context.Background(), state, "")
	assert.ErrorIs(t, err, ErrTokenExchange)
	assert.Zero(t, f.tokenCalls)
}

func TestExchange_Success(t *testing.T) {
	f := newFakeProvider(t)
	xbox, codec := newTestXbox(t, f, nil)

	state, err := codec.Issue("u1")
	require.NoError(t, err)

	data, err := xbox.Exchange(context.Background(), state, "abc123")
	require.NoError(t, err)

	assert.Equal(t, "AT1", data.AccessToken)
	assert.Equal(t, "RT1", data.RefreshToken)
	assert.EqualValues(t, 3600, data.ExpiresIn)
	assert.WithinDuration(t, time.Now(), data.FetchedAt, 5*time.Second)

	// The token request must carry the full form contract.
	assert.Equal(t, "authorization_code", f.tokenForm.Get("grant_type"))
	assert.Equal(t, "abc123", f.tokenForm.Get("code"))
	assert.Equal(t, "client-id", f.tokenForm.Get("client_id"))
	assert.Equal(t, "http://localhost:8080/connections/xbox/callback", f.tokenForm.Get("redirect_uri"))
	assert.Equal(t, "XboxLive.signin XboxLive.offline_access", f.tokenForm.Get("scope"))
	assert.Contains(t, f.tokenAuth, "Basic ")
}

func TestHandleCallback_TokenEndpointFailure(t *testing.T) {
	f := newFakeProvider(t)
	f.tokenStatus = http.StatusBadRequest
	f.tokenBody = `{"error":"invalid_grant","error_description":"code expired"}`

	repo := mocks.NewMockConnectionRepository(t)
	xbox, codec := newTestXbox(t, f, repo)

	conn, err := xbox.HandleCallback(context.Background(), validCallback(t, codec, "u1"))
	assert.Nil(t, conn)
	assert.ErrorIs(t, err, ErrTokenExchange)
	assert.Zero(t, f.userCalls, "stage two must not run after a stage-one failure")
	repo.AssertNotCalled(t, "Create")
}

func TestHandleCallback_TokenErrorInSuccessBody(t *testing.T) {
	f := newFakeProvider(t)
	f.tokenBody = `{"error":"invalid_client","error_description":"bad secret"}`

	repo := mocks.NewMockConnectionRepository(t)
	xbox, codec := newTestXbox(t, f, repo)

	conn, err := xbox.HandleCallback(context.Background(), validCallback(t, codec, "u1"))
	assert.Nil(t, conn)
	assert.ErrorIs(t, err, ErrTokenExchange)
	assert.Zero(t, f.userCalls)
	repo.AssertNotCalled(t, "Create")
}

func TestHandleCallback_UserAuthFailure(t *testing.T) {
	f := newFakeProvider(t)
	f.userStatus = http.StatusUnauthorized
	f.userBody = `{"error":"invalid_ticket","error_description":"ticket rejected"}`

	repo := mocks.NewMockConnectionRepository(t)
	xbox, codec := newTestXbox(t, f, repo)

	conn, err := xbox.HandleCallback(context.Background(), validCallback(t, codec, "u1"))
	assert.Nil(t, conn)
	assert.ErrorIs(t, err, ErrInvalidCredential)
	assert.Zero(t, f.xstsCalls, "stage three must not run after a stage-two failure")
	repo.AssertNotCalled(t, "Create")
}

func TestHandleCallback_IdentityFailure(t *testing.T) {
	f := newFakeProvider(t)
	f.xstsStatus = http.StatusForbidden
	f.xstsBody = `{"error":"no_account","error_description":"no xbox profile"}`

	repo := mocks.NewMockConnectionRepository(t)
	xbox, codec := newTestXbox(t, f, repo)

	conn, err := xbox.HandleCallback(context.Background(), validCallback(t, codec, "u1"))
	assert.Nil(t, conn)
	assert.ErrorIs(t, err, ErrProvider)
	repo.AssertNotCalled(t, "Create")
}

func TestHandleCallback_EmptyCode(t *testing.T) {
	f := newFakeProvider(t)
	repo := mocks.NewMockConnectionRepository(t)
	xbox, codec := newTestXbox(t, f, repo)

	params := validCallback(t, codec, "u1")
	params.Code = ""

	conn, err := xbox.HandleCallback(context.Background(), params)
	assert.Nil(t, conn)
	assert.ErrorIs(t, err, ErrTokenExchange)
	assert.Zero(t, f.tokenCalls)
	assert.Zero(t, f.userCalls)
	assert.Zero(t, f.xstsCalls)
}

func TestHandleCallback_CreatesConnection(t *testing.T) {
	f := newFakeProvider(t)
	repo := mocks.NewMockConnectionRepository(t)
	xbox, codec := newTestXbox(t, f, repo)

	repo.EXPECT().Find(context.Background(), "u1", "xbox", "X1").Return(nil, nil)

	var created *models.Connection
	repo.EXPECT().Create(context.Background(), mock.AnythingOfType("*models.Connection")).
		Run(func(ctx context.Context, conn *models.Connection) { created = conn }).
		Return(nil)

	conn, err := xbox.HandleCallback(context.Background(), validCallback(t, codec, "u1"))
	require.NoError(t, err)
	require.NotNil(t, conn)

	assert.Equal(t, created, conn)
	assert.Equal(t, "u1", conn.UserID)
	assert.Equal(t, "xbox", conn.Provider)
	assert.Equal(t, "X1", conn.ExternalID)
	assert.Equal(t, "Gamer1", conn.DisplayName)
	assert.Equal(t, "AT1", conn.TokenData.AccessToken)
	assert.False(t, conn.TokenData.FetchedAt.IsZero())
	assert.True(t, conn.FriendSync)

	// Stage request contracts.
	assert.Equal(t, "d=AT1", f.userRequest.Properties.RpsTicket)
	assert.Equal(t, relyingPartyUserAuth, f.userRequest.RelyingParty)
	assert.Equal(t, []string{"ST1"}, f.xstsRequest.Properties.UserTokens)
	assert.Equal(t, xboxSandboxID, f.xstsRequest.Properties.SandboxID)
	assert.Equal(t, relyingPartyXboxLive, f.xstsRequest.RelyingParty)
}

func TestHandleCallback_AlreadyLinked(t *testing.T) {
	f := newFakeProvider(t)
	repo := mocks.NewMockConnectionRepository(t)
	xbox, codec := newTestXbox(t, f, repo)

	existing := &models.Connection{ID: "c1", UserID: "u1", Provider: "xbox", ExternalID: "X1"}
	repo.EXPECT().Find(context.Background(), "u1", "xbox", "X1").Return(existing, nil)

	conn, err := xbox.HandleCallback(context.Background(), validCallback(t, codec, "u1"))
	assert.NoError(t, err)
	assert.Nil(t, conn, "re-linking must be an idempotent no-op")
	repo.AssertNotCalled(t, "Create")
}

// End-to-end against the real storage layer: first linking creates the
// record, a second run of the same flow is a no-op.
func TestHandleCallback_EndToEnd(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	t.Cleanup(func() {
		database.CloseDB()
		os.Remove(dbPath)
	})
	require.NoError(t, database.InitializeDatabase(dbPath))
	repo := repositories.NewConnectionRepository(database.GetDB())

	f := newFakeProvider(t)
	xbox, codec := newTestXbox(t, f, repo)
	ctx := context.Background()

	conn, err := xbox.HandleCallback(ctx, validCallback(t, codec, "u1"))
	require.NoError(t, err)
	require.NotNil(t, conn)
	assert.Equal(t, "u1", conn.UserID)
	assert.Equal(t, "X1", conn.ExternalID)
	assert.Equal(t, "Gamer1", conn.DisplayName)

	again, err := xbox.HandleCallback(ctx, validCallback(t, codec, "u1"))
	require.NoError(t, err)
	assert.Nil(t, again)

	conns, err := repo.GetByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, conns, 1, "the second run must not write")
}
