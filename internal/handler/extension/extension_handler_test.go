package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/betshield/betshield-backend/internal/repository"
	service "github.com/betshield/betshield-backend/internal/service/extension_log"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	repo := repository.NewExtensionLogRepository(
		filepath.Join(dir, "data", "extension-log.json"),
		filepath.Join(dir, "legacy.json"),
	)
	h := NewExtensionHandler(service.NewExtensionLogService(repo), nil)

	r := gin.New()
	api := r.Group("/api")
	h.RegisterRoutes(api)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	return w, decoded
}

func TestLog_ReturnsStoredEntry(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/extension/log",
		`{"event":"visit_start","domain":"bet365.com","sessionId":"s1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["ok"])

	entry, ok := resp["entry"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "visit_start", entry["event"])
	assert.Equal(t, "bet365.com", entry["domain"])
	assert.NotEmpty(t, entry["id"])
	assert.NotEmpty(t, entry["timestamp"])
}

func TestLog_BadJSONIs500(t *testing.T) {
	r := newTestRouter(t)

	// caller mistakes and storage errors share one failure shape
	w, resp := doJSON(t, r, http.MethodPost, "/api/extension/log", `{not json`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, resp["ok"])
	assert.NotEmpty(t, resp["error"])
}

func TestStats_ShapeAndAggregation(t *testing.T) {
	r := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/extension/log",
		`{"event":"visit_start","domain":"bet365.com","sessionId":"s1"}`)
	doJSON(t, r, http.MethodPost, "/api/extension/log",
		`{"event":"time_update","domain":"bet365.com","sessionId":"s1","seconds":5}`)

	w, resp := doJSON(t, r, http.MethodGet, "/api/extension/stats", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["ok"])

	meta := resp["meta"].(map[string]interface{})
	assert.Equal(t, float64(2), meta["totalEntries"])

	stats := resp["stats"].(map[string]interface{})
	assert.Equal(t, float64(5), stats["totalTimeSeconds"])
	assert.Equal(t, float64(0), stats["threatsDetected"])

	domains := stats["domains"].(map[string]interface{})
	bet := domains["bet365.com"].(map[string]interface{})
	assert.Equal(t, float64(1), bet["visits"])
	assert.Equal(t, float64(5), bet["timeSpent"])
}

func TestStats_FiltersByUserID(t *testing.T) {
	r := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/extension/log",
		`{"event":"visit_start","domain":"a.com","userId":"u1"}`)
	doJSON(t, r, http.MethodPost, "/api/extension/log",
		`{"event":"visit_start","domain":"a.com","userId":"u2"}`)

	_, resp := doJSON(t, r, http.MethodGet, "/api/extension/stats?userId=u1", "")

	meta := resp["meta"].(map[string]interface{})
	assert.Equal(t, float64(1), meta["totalEntries"])
}

func TestEval_TagsAndStores(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/extension/eval",
		`{"metric":"model-score","value":0.93}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["ok"])

	entry := resp["entry"].(map[string]interface{})
	assert.Equal(t, "eval", entry["type"])
	assert.Equal(t, "model-score", entry["metric"])
}
