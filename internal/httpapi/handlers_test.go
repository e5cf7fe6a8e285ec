package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kiliankoe/champroll/internal/champions"
	"github.com/kiliankoe/champroll/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createResponse struct {
	SessionCode string    `json:"sessionCode"`
	View        game.View `json:"view"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Slots   []int  `json:"slots"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	m := game.NewManager(game.NewMemoryStore(), champions.NewSeededSampler(21))
	SetupRoutes(r, &Handler{Manager: m, PublicURL: "http://example.test"})
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// createNamedSession opens a 2v2 session with every slot named.
func createNamedSession(t *testing.T, r http.Handler) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	code := decode[createResponse](t, w).SessionCode
	require.NotEmpty(t, code)

	w = do(t, r, http.MethodPut, "/api/sessions/"+code+"/config", map[string]any{"teamSize": 2})
	require.Equal(t, http.StatusOK, w.Code)
	for i, name := range []string{"Alice", "Bob", "Charlie", "Dana"} {
		w = do(t, r, http.MethodPut, fmt.Sprintf("/api/sessions/%s/players/%d", code, i), map[string]string{"name": name})
		require.Equal(t, http.StatusOK, w.Code)
	}
	return code
}

func TestCreateAndGetSession(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[createResponse](t, w)
	assert.Equal(t, game.DefaultConfig(), created.View.Config)
	assert.Len(t, created.View.Teams, 2)

	w = do(t, r, http.MethodGet, "/api/sessions/"+created.SessionCode, nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[game.View](t, w)
	assert.Equal(t, "Team 1", view.Teams[0].Label)
	assert.Equal(t, "1v1", view.TeamSizeOptions[0].Label)
}

func TestGenerateAndReroll(t *testing.T) {
	r := newTestRouter(t)
	code := createNamedSession(t, r)

	w := do(t, r, http.MethodPost, "/api/sessions/"+code+"/generate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[game.View](t, w)
	for _, team := range view.Teams {
		for _, slot := range team.Slots {
			assert.Len(t, slot.Champions, 3)
			assert.True(t, slot.CanReroll)
		}
	}

	w = do(t, r, http.MethodPost, "/api/sessions/"+code+"/players/2/reroll", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view = decode[game.View](t, w)
	assert.False(t, view.Teams[1].Slots[0].CanReroll)
	assert.Equal(t, 1, view.Teams[1].Slots[0].RerollCount)

	w = do(t, r, http.MethodPost, "/api/sessions/"+code+"/players/2/reroll", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "reroll_unavailable", decode[errorResponse](t, w).Error)
}

func TestErrorResponses(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name           string
		setup          func(code string)
		method         string
		path           string
		body           any
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "unknown session",
			method:         http.MethodGet,
			path:           "/api/sessions/does-not-exist",
			expectedStatus: http.StatusNotFound,
			expectedError:  "session_not_found",
		},
		{
			name: "generate with blank name",
			setup: func(code string) {
				do(t, r, http.MethodPut, "/api/sessions/"+code+"/players/1", map[string]string{"name": "  "})
			},
			method:         http.MethodPost,
			path:           "/api/sessions/{code}/generate",
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "missing_names",
		},
		{
			name:           "reroll before generate",
			method:         http.MethodPost,
			path:           "/api/sessions/{code}/players/0/reroll",
			expectedStatus: http.StatusConflict,
			expectedError:  "reroll_unavailable",
		},
		{
			name:           "slot out of range",
			method:         http.MethodPut,
			path:           "/api/sessions/{code}/players/9",
			body:           map[string]string{"name": "Zed"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid_slot",
		},
		{
			name:           "slot not a number",
			method:         http.MethodPost,
			path:           "/api/sessions/{code}/players/abc/reroll",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid_slot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := createNamedSession(t, r)
			if tt.setup != nil {
				tt.setup(code)
			}
			path := bytes.ReplaceAll([]byte(tt.path), []byte("{code}"), []byte(code))
			w := do(t, r, tt.method, string(path), tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedError, decode[errorResponse](t, w).Error)
		})
	}
}

func TestMissingNamesReportsSlots(t *testing.T) {
	r := newTestRouter(t)
	code := createNamedSession(t, r)
	do(t, r, http.MethodPut, "/api/sessions/"+code+"/players/3", map[string]string{"name": ""})

	w := do(t, r, http.MethodPost, "/api/sessions/"+code+"/generate", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decode[errorResponse](t, w)
	assert.Equal(t, game.ErrMissingNames.Error(), resp.Message)
	assert.Equal(t, []int{3}, resp.Slots)

	w = do(t, r, http.MethodGet, "/api/sessions/"+code, nil)
	view := decode[game.View](t, w)
	for _, team := range view.Teams {
		for _, slot := range team.Slots {
			assert.Empty(t, slot.Champions)
		}
	}
}

func TestConfigChangeClearsChampions(t *testing.T) {
	r := newTestRouter(t)
	code := createNamedSession(t, r)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/api/sessions/"+code+"/generate", nil).Code)

	w := do(t, r, http.MethodPut, "/api/sessions/"+code+"/config", map[string]any{"champsPerPlayer": 5})
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[game.View](t, w)
	assert.Equal(t, 5, view.Config.ChampsPerPlayer)
	assert.Equal(t, "Alice", view.Teams[0].Slots[0].Name)
	assert.Empty(t, view.Teams[0].Slots[0].Champions)
}

func TestResetRestoresDefaults(t *testing.T) {
	r := newTestRouter(t)
	code := createNamedSession(t, r)
	do(t, r, http.MethodPost, "/api/sessions/"+code+"/generate", nil)

	w := do(t, r, http.MethodPost, "/api/sessions/"+code+"/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[game.View](t, w)
	assert.Equal(t, game.DefaultConfig(), view.Config)
	for _, team := range view.Teams {
		for _, slot := range team.Slots {
			assert.Empty(t, slot.Name)
			assert.Empty(t, slot.Champions)
		}
	}
}

func TestDeleteSession(t *testing.T) {
	r := newTestRouter(t)
	code := createNamedSession(t, r)
	assert.Equal(t, http.StatusNoContent, do(t, r, http.MethodDelete, "/api/sessions/"+code, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/api/sessions/"+code, nil).Code)
}

func TestQRCode(t *testing.T) {
	r := newTestRouter(t)
	code := createNamedSession(t, r)

	w := do(t, r, http.MethodGet, "/api/sessions/"+code+"/qr.png", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/api/sessions/nope/qr.png", nil).Code)
}

func TestListChampions(t *testing.T) {
	r := newTestRouter(t)
	type resp struct {
		Champions   []string `json:"champions"`
		Unkillables []string `json:"unkillables"`
	}

	all := decode[resp](t, do(t, r, http.MethodGet, "/api/champions", nil))
	assert.Len(t, all.Champions, 170)
	assert.Len(t, all.Unkillables, 8)

	filtered := decode[resp](t, do(t, r, http.MethodGet, "/api/champions?excludeUnkillables=true", nil))
	assert.Len(t, filtered.Champions, 162)
	assert.NotContains(t, filtered.Champions, "Rammus")
}

func TestErrorCode(t *testing.T) {
	status, code := ErrorCode(&game.MissingNamesError{Slots: []int{0}})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "missing_names", code)

	status, code = ErrorCode(fmt.Errorf("load session: %w", assert.AnError))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal", code)
}
