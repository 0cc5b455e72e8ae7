package api_test

import (
	"net/http"
	"testing"

	"frolftracker/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryPoint(t *testing.T) {
	testutil.SetupDB(t)
	router := testutil.NewRouter()

	w := testutil.Get(t, router, "/api/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/vnd.mason+json")

	body := testutil.Decode(t, w)
	ns := body["@namespaces"].(map[string]interface{})["frolf"].(map[string]interface{})
	assert.Equal(t, "/frolftracker/link-relations/", ns["name"])

	assert.Equal(t, "/api/players/", testutil.Control(t, body, "frolf:players-all")["href"])
	assert.Equal(t, "/api/courses/", testutil.Control(t, body, "frolf:courses-all")["href"])
	assert.Equal(t, "/api/scores/", testutil.Control(t, body, "frolf:scores-all")["href"])
}

func TestEntryControlsResolve(t *testing.T) {
	testutil.SetupDB(t)
	router := testutil.NewRouter()

	entry := testutil.Decode(t, testutil.Get(t, router, "/api/"))
	for _, name := range []string{"frolf:players-all", "frolf:courses-all", "frolf:scores-all"} {
		href := testutil.Control(t, entry, name)["href"].(string)
		w := testutil.Get(t, router, href)
		assert.Equal(t, http.StatusOK, w.Code, "control %s href %s", name, href)
	}
}

func TestLinkRelationsDocument(t *testing.T) {
	testutil.SetupDB(t)
	router := testutil.NewRouter()

	w := testutil.Get(t, router, "/frolftracker/link-relations/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "scores-by-player")
}

func TestProfileDocuments(t *testing.T) {
	testutil.SetupDB(t)
	router := testutil.NewRouter()

	for _, name := range []string{"player", "course", "score", "error"} {
		w := testutil.Get(t, router, "/profiles/"+name+"/")
		assert.Equal(t, http.StatusOK, w.Code, "profile %s", name)
	}

	w := testutil.Get(t, router, "/profiles/unknown/")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	testutil.SetupDB(t)
	router := testutil.NewRouter()

	// a request through the middleware populates the request counters
	testutil.Get(t, router, "/api/players/")

	w := testutil.Get(t, router, "/api/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "frolftracker_http_requests_total")
}
