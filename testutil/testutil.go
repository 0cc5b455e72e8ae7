// Package testutil provides shared fixtures for the API tests: a fresh
// in-memory sqlite database with foreign keys enforced, a fully wired router,
// and the canonical populated data set.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"frolftracker/database"
	"frolftracker/models"
	"frolftracker/routes/api"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

var dbCounter int64

// SetupDB installs a fresh in-memory database as the process-wide handle.
// Each call gets its own named shared-cache database so tests never see each
// other's rows.
func SetupDB(t *testing.T) {
	t.Helper()

	n := atomic.AddInt64(&dbCounter, 1)
	dsn := fmt.Sprintf("file:frolftest%d?mode=memory&cache=shared&_foreign_keys=on", n)
	require.NoError(t, database.Connect(sqlite.Open(dsn)))

	sqlDB, err := database.DB.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})
}

// NewRouter returns a gin engine with the full route set registered.
func NewRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.Register(r)
	return r
}

// Today returns the current date in the wire format used by scores.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// Populate inserts the canonical fixture: 4 players, 4 courses and 8 scores
// whose player and course references cycle through the four of each.
func Populate(t *testing.T) {
	t.Helper()

	for i := 0; i < 4; i++ {
		player := models.Player{Name: fmt.Sprintf("test-player-%d", i)}
		require.NoError(t, database.DB.Create(&player).Error)

		course := models.Course{
			Name:     fmt.Sprintf("test-course-%d", i),
			NumHoles: 23,
			Par:      69,
		}
		require.NoError(t, database.DB.Create(&course).Error)
	}

	for i := 0; i < 8; i++ {
		score := models.Score{
			Throws:   54 + i,
			Date:     Today(),
			PlayerID: i%4 + 1,
			CourseID: i%4 + 1,
		}
		require.NoError(t, database.DB.Create(&score).Error)
	}
}

// Request performs a request with a raw body and explicit content type.
func Request(t *testing.T, router *gin.Engine, method, target string, body []byte, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// RequestJSON marshals the payload and performs a JSON request.
func RequestJSON(t *testing.T, router *gin.Engine, method, target string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return Request(t, router, method, target, body, "application/json")
}

// Get performs a plain GET request.
func Get(t *testing.T, router *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()
	return Request(t, router, http.MethodGet, target, nil, "")
}

// Decode parses a response body as a JSON object.
func Decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// Controls returns the @controls object of a decoded body.
func Controls(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()

	controls, ok := body["@controls"].(map[string]interface{})
	require.True(t, ok, "body has no @controls object")
	return controls
}

// Control returns one named control from a decoded body.
func Control(t *testing.T, body map[string]interface{}, name string) map[string]interface{} {
	t.Helper()

	ctrl, ok := Controls(t, body)[name].(map[string]interface{})
	require.True(t, ok, "body has no control %q", name)
	return ctrl
}

// Items returns the items array of a decoded collection body.
func Items(t *testing.T, body map[string]interface{}) []interface{} {
	t.Helper()

	items, ok := body["items"].([]interface{})
	require.True(t, ok, "body has no items array")
	return items
}
