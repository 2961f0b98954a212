package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalev/go-db-console/internal/config"
	"github.com/dkovalev/go-db-console/internal/logger"
	"github.com/dkovalev/go-db-console/internal/utils"
)

const twoServerSite = `{
	"server_default": 0,
	"servers": [
		{"host": "alpha.internal", "port": 3306, "user": "root", "password": "alpha-secret"},
		{"host": "beta.internal", "port": 3307, "verbose": "Beta", "password": "beta-secret"}
	]
}`

func newTestHandler(t *testing.T, siteJSON string) *Handler {
	t.Helper()

	log := logger.Nop()

	sourcePath := ""
	if siteJSON != "" {
		sourcePath = filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(sourcePath, []byte(siteJSON), 0o600))
	}

	resolver := config.NewResolver(sourcePath, log)
	if siteJSON != "" {
		loaded, err := resolver.LoadSite()
		require.NoError(t, err)
		require.True(t, loaded)
	}

	cfg := &config.BootConfig{}
	cfg.App.TokenSignKey = "test-sign-key"
	cfg.App.TokenIssuer = "db-console"
	cfg.App.TokenDuration = time.Hour
	cfg.App.Version = "1.2.3"

	return NewHandler(resolver, nil, cfg, log)
}

func bearerToken(t *testing.T, h *Handler, userID int64, duration time.Duration) string {
	t.Helper()

	token, err := utils.GenerateJWTToken(h.cfg.App.TokenIssuer, userID, duration, h.cfg.App.TokenSignKey)
	require.NoError(t, err)

	return "Bearer " + token.SignedString
}

func TestGetServerVersion(t *testing.T) {
	// Arrange
	h := newTestHandler(t, "")
	router := h.Init()
	request := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	recorder := httptest.NewRecorder()

	// Act
	router.ServeHTTP(recorder, request)

	// Assert
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/plain", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", recorder.Body.String())
}

func TestAuthMiddleware_NoAuthorizationHeader(t *testing.T) {
	// Arrange
	h := newTestHandler(t, "")
	router := h.Init()
	request := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	recorder := httptest.NewRecorder()

	// Act
	router.ServeHTTP(recorder, request)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	// Arrange
	h := newTestHandler(t, "")
	router := h.Init()
	request := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	request.Header.Set("Authorization", "Bearer")
	recorder := httptest.NewRecorder()

	// Act
	router.ServeHTTP(recorder, request)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	// Arrange
	h := newTestHandler(t, "")
	router := h.Init()
	request := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	request.Header.Set("Authorization", bearerToken(t, h, 42, -time.Hour))
	recorder := httptest.NewRecorder()

	// Act
	router.ServeHTTP(recorder, request)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "token expired")
}

func TestAuthMiddleware_WrongSignKey(t *testing.T) {
	// Arrange
	h := newTestHandler(t, "")
	router := h.Init()

	forged, err := utils.GenerateJWTToken(h.cfg.App.TokenIssuer, 42, time.Hour, "another-key")
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	request.Header.Set("Authorization", "Bearer "+forged.SignedString)
	recorder := httptest.NewRecorder()

	// Act
	router.ServeHTTP(recorder, request)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGetSettings_Defaults(t *testing.T) {
	// Arrange
	h := newTestHandler(t, "")
	router := h.Init()
	request := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	request.Header.Set("Authorization", bearerToken(t, h, 42, time.Hour))
	recorder := httptest.NewRecorder()

	// Act
	router.ServeHTTP(recorder, request)

	// Assert
	require.Equal(t, http.StatusOK, recorder.Code)

	var got settingsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Equal(t, 25, got.Settings.MaxRows)
	assert.Equal(t, "pmahomme", got.Settings.ThemeDefault)
	assert.Equal(t, 0, got.ServerIndex)
	assert.False(t, got.Secure)
	assert.Equal(t, "/api/", got.RootPath)
}

func TestGetSettings_RedactsServerCredentials(t *testing.T) {
	// Arrange
	h := newTestHandler(t, twoServerSite)
	router := h.Init()
	request := httptest.NewRequest(http.MethodGet, "/api/settings?server=1", nil)
	request.Header.Set("Authorization", bearerToken(t, h, 42, time.Hour))
	recorder := httptest.NewRecorder()

	// Act
	router.ServeHTTP(recorder, request)

	// Assert
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "alpha-secret")
	assert.NotContains(t, recorder.Body.String(), "beta-secret")

	var got settingsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Equal(t, 1, got.ServerIndex)
	require.Len(t, got.Settings.Servers, 2)
	assert.Equal(t, "alpha.internal", got.Settings.Servers[0].Host)
	assert.Empty(t, got.Settings.Servers[0].Password)
}

func TestPutSetting(t *testing.T) {
	// Arrange
	h := newTestHandler(t, "")
	router := h.Init()
	body := strings.NewReader(`{"value": 100}`)
	request := httptest.NewRequest(http.MethodPut, "/api/settings/max_rows", body)
	request.Header.Set("Authorization", bearerToken(t, h, 42, time.Hour))
	recorder := httptest.NewRecorder()

	// Act
	router.ServeHTTP(recorder, request)

	// Assert
	require.Equal(t, http.StatusOK, recorder.Code)

	var got putSettingResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Equal(t, "max_rows", got.Path)
	assert.Equal(t, float64(100), got.Value)
	assert.Empty(t, got.Diagnostic)

	// No database is wired, so the override lands in the overlay cookie.
	cookies := recorder.Result().Cookies()
	require.NotEmpty(t, cookies)
	var found bool
	for _, cookie := range cookies {
		if strings.Contains(cookie.Name, "db_console_config") {
			found = true
		}
	}
	assert.True(t, found, "expected an overlay cookie to be written")
}

func TestPutSetting_UnknownPath(t *testing.T) {
	// Arrange
	h := newTestHandler(t, "")
	router := h.Init()
	body := strings.NewReader(`{"value": "whatever"}`)
	request := httptest.NewRequest(http.MethodPut, "/api/settings/no_such_setting", body)
	request.Header.Set("Authorization", bearerToken(t, h, 42, time.Hour))
	recorder := httptest.NewRecorder()

	// Act
	router.ServeHTTP(recorder, request)

	// Assert
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestPutSetting_BadBody(t *testing.T) {
	// Arrange
	h := newTestHandler(t, "")
	router := h.Init()
	request := httptest.NewRequest(http.MethodPut, "/api/settings/max_rows", strings.NewReader("{not json"))
	request.Header.Set("Authorization", bearerToken(t, h, 42, time.Hour))
	recorder := httptest.NewRecorder()

	// Act
	router.ServeHTTP(recorder, request)

	// Assert
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSelectServer(t *testing.T) {
	// Arrange
	h := newTestHandler(t, twoServerSite)
	router := h.Init()
	body := strings.NewReader(`{"server": "2"}`)
	request := httptest.NewRequest(http.MethodPost, "/api/server/select", body)
	request.Header.Set("Authorization", bearerToken(t, h, 42, time.Hour))
	recorder := httptest.NewRecorder()

	// Act
	router.ServeHTTP(recorder, request)

	// Assert
	require.Equal(t, http.StatusOK, recorder.Code)

	var got selectServerResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Equal(t, 2, got.ServerIndex)
	assert.Equal(t, "beta.internal", got.Server.Host)
	assert.Equal(t, 3307, got.Server.Port)
	assert.NotContains(t, recorder.Body.String(), "beta-secret")
}

func TestSelectServer_ByVerboseName(t *testing.T) {
	// Arrange
	h := newTestHandler(t, twoServerSite)
	router := h.Init()
	body := strings.NewReader(`{"server": "Beta"}`)
	request := httptest.NewRequest(http.MethodPost, "/api/server/select", body)
	request.Header.Set("Authorization", bearerToken(t, h, 42, time.Hour))
	recorder := httptest.NewRecorder()

	// Act
	router.ServeHTTP(recorder, request)

	// Assert
	require.Equal(t, http.StatusOK, recorder.Code)

	var got selectServerResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Equal(t, 2, got.ServerIndex)
}

func TestSelectServer_NoMatchRendersChoice(t *testing.T) {
	// Arrange
	h := newTestHandler(t, twoServerSite)
	router := h.Init()
	body := strings.NewReader(`{"server": "gamma.internal"}`)
	request := httptest.NewRequest(http.MethodPost, "/api/server/select", body)
	request.Header.Set("Authorization", bearerToken(t, h, 42, time.Hour))
	recorder := httptest.NewRecorder()

	// Act
	router.ServeHTTP(recorder, request)

	// Assert
	require.Equal(t, http.StatusOK, recorder.Code)

	var got selectServerResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Equal(t, 0, got.ServerIndex)
	assert.Empty(t, got.Server.Host)
}

func TestReplaceBase(t *testing.T) {
	// Arrange
	h := newTestHandler(t, "")
	replacement := config.NewResolver("", logger.Nop())
	require.NoError(t, replacement.SetEffectiveValue("max_rows", 500))

	// Act
	h.ReplaceBase(replacement)

	// Assert
	got := h.snapshot().Effective()
	assert.Equal(t, 500, got.MaxRows)
}
