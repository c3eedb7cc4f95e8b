package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/betdesk/internal/api"
	"github.com/mcoot/betdesk/internal/api/apierr"
	"github.com/mcoot/betdesk/internal/api/response"
	"github.com/mcoot/betdesk/internal/factory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.App
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use the production factory with the stock seed
	seed := factory.DefaultSeed()
	app, err := factory.New(factory.Config{Seed: &seed})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:        logger,
		AccessService: app.AccessService,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) login(t *testing.T, username, password string) {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rr.Code)
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	// Register
	rr := ts.request(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"username": "alice",
		"password": "secret123",
		"role":     "regular",
	})
	assert.Equal(t, http.StatusCreated, rr.Code)

	var registered response.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &registered))
	assert.Equal(t, "alice", registered.Username)
	assert.Equal(t, "regular", registered.Role)

	// Login
	rr = ts.request(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "alice",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, rr.Code)

	var sess response.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sess))
	assert.Equal(t, "alice", sess.User.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"username": "Ivan", // seeded
		"password": "whatever",
		"role":     "regular",
	})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeDuplicateUsername, errorCode(t, rr))
}

func TestRegisterInvalidRole(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"username": "alice",
		"password": "secret123",
		"role":     "superuser",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRole, errorCode(t, rr))
}

func TestLoginWrongPassword(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "Ivan",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, apierr.CodeWrongPassword, errorCode(t, rr))
}

func TestLoginUnknownUser(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "nobody",
		"password": "pw",
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeUnknownUser, errorCode(t, rr))
}

func TestSessionLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// No session yet
	rr := ts.request(http.MethodGet, "/api/v1/auth/session", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	ts.login(t, "Oleg", "sdfbdg")

	rr = ts.request(http.MethodGet, "/api/v1/auth/session", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var sess response.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sess))
	assert.Equal(t, "Oleg", sess.User.Username)

	// Logout, session gone
	rr = ts.request(http.MethodPost, "/api/v1/auth/logout", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/auth/session", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, apierr.CodeNotLoggedIn, errorCode(t, rr))
}

func TestPlaceAndListBets(t *testing.T) {
	ts := newTestServer(t)

	ts.login(t, "Oleg", "sdfbdg")

	rr := ts.request(http.MethodPost, "/api/v1/bets", map[string]string{"name": "EventFourth"})
	assert.Equal(t, http.StatusCreated, rr.Code)

	var placed response.Bet
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &placed))
	assert.Equal(t, "EventFourth", placed.Name)
	assert.Equal(t, "Oleg", placed.PlacedBy)

	rr = ts.request(http.MethodGet, "/api/v1/bets", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var bets []response.Bet
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &bets))
	// Three seeded events plus the new one
	require.Len(t, bets, 4)
	assert.Equal(t, "EventFourth", bets[3].Name)
}

func TestPlaceBetRequiresSession(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/bets", map[string]string{"name": "derby"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, apierr.CodeNotLoggedIn, errorCode(t, rr))
}

func TestPlaceBetRejectsAdmin(t *testing.T) {
	ts := newTestServer(t)

	ts.login(t, "Artem", "whtrlkn")

	rr := ts.request(http.MethodPost, "/api/v1/bets", map[string]string{"name": "derby"})
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, apierr.CodeRoleNotRegular, errorCode(t, rr))
}

func TestListRegularUsers(t *testing.T) {
	ts := newTestServer(t)

	ts.login(t, "Artem", "whtrlkn")

	rr := ts.request(http.MethodGet, "/api/v1/admin/users", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var users []response.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	assert.Len(t, users, 3)
	for _, u := range users {
		assert.Equal(t, "regular", u.Role)
	}
}

func TestListRegularUsersRejectsRegular(t *testing.T) {
	ts := newTestServer(t)

	ts.login(t, "Oleg", "sdfbdg")

	rr := ts.request(http.MethodGet, "/api/v1/admin/users", nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, apierr.CodeRoleNotAdmin, errorCode(t, rr))
}

func TestBanFlow(t *testing.T) {
	ts := newTestServer(t)

	ts.login(t, "Artem", "whtrlkn")

	// Ban Oleg
	rr := ts.request(http.MethodPost, "/api/v1/admin/users/Oleg/ban", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// Second ban fails
	rr = ts.request(http.MethodPost, "/api/v1/admin/users/Oleg/ban", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeAlreadyBanned, errorCode(t, rr))

	// Banned user can no longer log in
	rr = ts.request(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "Oleg",
		"password": "sdfbdg",
	})
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, apierr.CodeBanned, errorCode(t, rr))
}

func TestBanUnknownUser(t *testing.T) {
	ts := newTestServer(t)

	ts.login(t, "Artem", "whtrlkn")

	rr := ts.request(http.MethodPost, "/api/v1/admin/users/nobody/ban", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeUnknownUser, errorCode(t, rr))
}
