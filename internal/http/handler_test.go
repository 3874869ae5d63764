package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visuddha-service/internal/access"
	"visuddha-service/internal/auth"
	"visuddha-service/internal/http/middleware"
	"visuddha-service/internal/repository"
	"visuddha-service/internal/service"
	"visuddha-service/internal/socket"
	"visuddha-service/internal/views"
)

const testSecret = "handler-test-secret"

func newTestRouter(t *testing.T, policy access.Policy) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemory()
	sessions := store.Sessions()
	log := zerolog.Nop()
	app := service.NewAppService(
		sessions,
		store.NavigationLog(),
		service.NewSessionService(store, sessions),
		policy,
		views.NewCatalog(nil),
		log,
	)
	handler := NewHandler(app, auth.NewIssuer(testSecret, time.Hour), socket.NewHub(log), log)
	return NewRouter(handler, middleware.Client(auth.NewParser(testSecret)), nil, "test")
}

type userBody struct {
	Name     string `json:"name"`
	RoleType string `json:"role_type"`
}

type denialBody struct {
	View     string   `json:"view"`
	Required []string `json:"required_permissions"`
}

type screenBody struct {
	View   string      `json:"view"`
	User   *userBody   `json:"user"`
	Denial *denialBody `json:"denial"`
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func openClient(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/v1/clients", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			ClientID string     `json:"client_id"`
			Token    string     `json:"token"`
			Screen   screenBody `json:"screen"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.ClientID)
	assert.Equal(t, "home", resp.Data.Screen.View)
	return resp.Data.Token
}

func decodeScreen(t *testing.T, w *httptest.ResponseRecorder) screenBody {
	t.Helper()
	var resp struct {
		Data screenBody `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t, access.DemoPolicy)
	w := do(t, r, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t, access.DemoPolicy)

	w := do(t, r, http.MethodGet, "/api/v1/screen", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/screen", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNavigateAndDenial(t *testing.T) {
	r := newTestRouter(t, access.DemoPolicy)
	token := openClient(t, r)

	w := do(t, r, http.MethodPost, "/api/v1/session/login", token, gin.H{"role_type": "consumer"})
	require.Equal(t, http.StatusOK, w.Code)
	screen := decodeScreen(t, w)
	assert.Equal(t, "home", screen.View)
	require.NotNil(t, screen.User)
	assert.Equal(t, "consumer", screen.User.RoleType)

	w = do(t, r, http.MethodPost, "/api/v1/navigate", token, gin.H{"view": "dashboard"})
	require.Equal(t, http.StatusOK, w.Code)
	screen = decodeScreen(t, w)
	assert.Equal(t, "unauthorized", screen.View)
	require.NotNil(t, screen.Denial)
	assert.Equal(t, "dashboard", screen.Denial.View)
	assert.Equal(t, []string{"full_access", "user_management", "operations"}, screen.Denial.Required)

	w = do(t, r, http.MethodPost, "/api/v1/back", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "home", decodeScreen(t, w).View)

	w = do(t, r, http.MethodPost, "/api/v1/navigate", token, gin.H{"view": "consumer"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "consumer", decodeScreen(t, w).View)
}

func TestNavigateValidation(t *testing.T) {
	r := newTestRouter(t, access.DemoPolicy)
	token := openClient(t, r)

	w := do(t, r, http.MethodPost, "/api/v1/navigate", token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/v1/navigate", token, gin.H{"view": "traceability-report"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "home", decodeScreen(t, w).View)
}

func TestLoginUnknownRole(t *testing.T) {
	r := newTestRouter(t, access.DemoPolicy)
	token := openClient(t, r)

	w := do(t, r, http.MethodPost, "/api/v1/session/login", token, gin.H{"role_type": "wizard"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogout(t *testing.T) {
	r := newTestRouter(t, access.Policy{})
	token := openClient(t, r)

	w := do(t, r, http.MethodPost, "/api/v1/session/login", token, gin.H{"role_type": "admin"})
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodPost, "/api/v1/navigate", token, gin.H{"view": "settings"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "settings", decodeScreen(t, w).View)

	w = do(t, r, http.MethodPost, "/api/v1/session/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	screen := decodeScreen(t, w)
	assert.Equal(t, "home", screen.View)
	assert.Nil(t, screen.User)

	w = do(t, r, http.MethodGet, "/api/v1/session", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"user":null}}`, w.Body.String())
}

func TestRoutesAndHistory(t *testing.T) {
	r := newTestRouter(t, access.DemoPolicy)
	token := openClient(t, r)

	w := do(t, r, http.MethodGet, "/api/v1/routes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var routes struct {
		Data struct {
			Items []struct {
				View    string `json:"view"`
				Allowed bool   `json:"allowed"`
			} `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &routes))
	assert.NotEmpty(t, routes.Data.Items)
	for _, item := range routes.Data.Items {
		assert.True(t, item.Allowed, item.View)
	}

	do(t, r, http.MethodPost, "/api/v1/navigate", token, gin.H{"view": "lab"})
	w = do(t, r, http.MethodGet, "/api/v1/history?limit=5", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history struct {
		Data struct {
			Items []struct {
				FromView string `json:"from_view"`
				ToView   string `json:"to_view"`
			} `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history.Data.Items, 1)
	assert.Equal(t, "lab", history.Data.Items[0].ToView)
}

func TestLiveChannelGate(t *testing.T) {
	r := newTestRouter(t, access.Policy{})
	token := openClient(t, r)

	w := do(t, r, http.MethodGet, "/api/v1/live/weather", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/live/iot", token, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	var resp struct {
		Denial denialBody `json:"denial"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "iot", resp.Denial.View)
	assert.Equal(t, []string{"full_access", "iot_monitoring", "operations"}, resp.Denial.Required)
}
