package scores_test

import (
	"net/http"
	"testing"

	"frolftracker/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetScoreCollection(t *testing.T) {
	testutil.SetupDB(t)
	testutil.Populate(t)
	router := testutil.NewRouter()

	w := testutil.Get(t, router, "/api/scores/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/vnd.mason+json")

	body := testutil.Decode(t, w)
	assert.Equal(t, "/api/scores/", testutil.Control(t, body, "self")["href"])

	addScore := testutil.Control(t, body, "frolf:add-score")
	assert.Equal(t, "POST", addScore["method"])
	require.NotNil(t, addScore["schema"])

	items := testutil.Items(t, body)
	require.Len(t, items, 8)
	first := items[0].(map[string]interface{})
	assert.EqualValues(t, 54, first["throws"])
	assert.Equal(t, testutil.Today(), first["date"])
	assert.Equal(t, "/api/scores/1/", testutil.Control(t, first, "self")["href"])
	assert.Equal(t, "/profiles/score/", testutil.Control(t, first, "profile")["href"])
}

func TestGetScoreCollectionFiltered(t *testing.T) {
	testutil.SetupDB(t)
	testutil.Populate(t)
	router := testutil.NewRouter()

	body := testutil.Decode(t, testutil.Get(t, router, "/api/scores/?player_id=1"))
	items := testutil.Items(t, body)
	require.Len(t, items, 2)
	for _, raw := range items {
		item := raw.(map[string]interface{})
		assert.EqualValues(t, 1, item["player_id"])
	}

	body = testutil.Decode(t, testutil.Get(t, router, "/api/scores/?player_id=1&course_id=1"))
	assert.Len(t, testutil.Items(t, body), 2)

	// the filters combine as a conjunction
	body = testutil.Decode(t, testutil.Get(t, router, "/api/scores/?player_id=1&course_id=3"))
	assert.Empty(t, testutil.Items(t, body))

	// a filter on a missing entity yields an empty listing, not an error
	w := testutil.Get(t, router, "/api/scores/?player_id=42")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, testutil.Items(t, testutil.Decode(t, w)))

	// values that do not parse as integers are ignored
	body = testutil.Decode(t, testutil.Get(t, router, "/api/scores/?player_id=bogus"))
	assert.Len(t, testutil.Items(t, body), 8)
}

func TestCreateScore(t *testing.T) {
	testutil.SetupDB(t)
	testutil.Populate(t)
	router := testutil.NewRouter()

	w := testutil.RequestJSON(t, router, http.MethodPost, "/api/scores/",
		map[string]interface{}{"throws": 61, "date": "2020-06-22", "player_id": 2, "course_id": 3})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/scores/9/", w.Header().Get("Location"))

	body := testutil.Decode(t, testutil.Get(t, router, "/api/scores/9/"))
	assert.EqualValues(t, 61, body["throws"])
	assert.Equal(t, "2020-06-22", body["date"])
	assert.EqualValues(t, 2, body["player_id"])
	assert.EqualValues(t, 3, body["course_id"])
}

func TestCreateScoreDanglingReferences(t *testing.T) {
	testutil.SetupDB(t)
	testutil.Populate(t)
	router := testutil.NewRouter()

	w := testutil.RequestJSON(t, router, http.MethodPost, "/api/scores/",
		map[string]interface{}{"throws": 61, "date": "2020-06-22", "player_id": 42, "course_id": 1})
	require.Equal(t, http.StatusNotFound, w.Code)
	body := testutil.Decode(t, w)
	errObj := body["@error"].(map[string]interface{})
	assert.Contains(t, errObj["@messages"].([]interface{})[0], "player")

	w = testutil.RequestJSON(t, router, http.MethodPost, "/api/scores/",
		map[string]interface{}{"throws": 61, "date": "2020-06-22", "player_id": 1, "course_id": 42})
	require.Equal(t, http.StatusNotFound, w.Code)
	body = testutil.Decode(t, w)
	errObj = body["@error"].(map[string]interface{})
	assert.Contains(t, errObj["@messages"].([]interface{})[0], "course")
}

func TestCreateScoreErrors(t *testing.T) {
	testutil.SetupDB(t)
	testutil.Populate(t)
	router := testutil.NewRouter()

	w := testutil.Request(t, router, http.MethodPost, "/api/scores/",
		[]byte(`{"throws": 61, "date": "2020-06-22", "player_id": 1, "course_id": 1}`), "text/plain")
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	// missing required field
	w = testutil.RequestJSON(t, router, http.MethodPost, "/api/scores/",
		map[string]interface{}{"date": "2020-06-22", "player_id": 1, "course_id": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// throws must be at least one
	w = testutil.RequestJSON(t, router, http.MethodPost, "/api/scores/",
		map[string]interface{}{"throws": 0, "date": "2020-06-22", "player_id": 1, "course_id": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// malformed date
	w = testutil.RequestJSON(t, router, http.MethodPost, "/api/scores/",
		map[string]interface{}{"throws": 61, "date": "22.06.2020", "player_id": 1, "course_id": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// well-formed but not a real calendar date
	w = testutil.RequestJSON(t, router, http.MethodPost, "/api/scores/",
		map[string]interface{}{"throws": 61, "date": "2020-02-31", "player_id": 1, "course_id": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetScore(t *testing.T) {
	testutil.SetupDB(t)
	testutil.Populate(t)
	router := testutil.NewRouter()

	w := testutil.Get(t, router, "/api/scores/1/")
	require.Equal(t, http.StatusOK, w.Code)

	body := testutil.Decode(t, w)
	assert.EqualValues(t, 1, body["score_id"])
	assert.EqualValues(t, 54, body["throws"])
	assert.EqualValues(t, 1, body["player_id"])
	assert.EqualValues(t, 1, body["course_id"])

	assert.Equal(t, "/api/scores/1/", testutil.Control(t, body, "self")["href"])
	assert.Equal(t, "/profiles/score/", testutil.Control(t, body, "profile")["href"])
	assert.Equal(t, "/api/scores/", testutil.Control(t, body, "collection")["href"])
	assert.Equal(t, "/api/players/1/", testutil.Control(t, body, "frolf:player")["href"])
	assert.Equal(t, "/api/courses/1/", testutil.Control(t, body, "frolf:course")["href"])

	del := testutil.Control(t, body, "frolf:delete")
	assert.Equal(t, "/api/scores/1/", del["href"])
	assert.Equal(t, "DELETE", del["method"])

	modify := testutil.Control(t, body, "frolf:modify-score")
	assert.Equal(t, "PUT", modify["method"])
	require.NotNil(t, modify["schema"])
}

func TestGetScoreNotFound(t *testing.T) {
	testutil.SetupDB(t)
	router := testutil.NewRouter()

	w := testutil.Get(t, router, "/api/scores/42/")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateScore(t *testing.T) {
	testutil.SetupDB(t)
	testutil.Populate(t)
	router := testutil.NewRouter()

	w := testutil.RequestJSON(t, router, http.MethodPut, "/api/scores/1/",
		map[string]interface{}{"throws": 48, "date": "2020-06-22", "player_id": 2, "course_id": 3})
	require.Equal(t, http.StatusNoContent, w.Code)

	body := testutil.Decode(t, testutil.Get(t, router, "/api/scores/1/"))
	assert.EqualValues(t, 48, body["throws"])
	assert.Equal(t, "2020-06-22", body["date"])
	assert.EqualValues(t, 2, body["player_id"])
	assert.EqualValues(t, 3, body["course_id"])
}

func TestUpdateScoreErrors(t *testing.T) {
	testutil.SetupDB(t)
	testutil.Populate(t)
	router := testutil.NewRouter()

	w := testutil.Request(t, router, http.MethodPut, "/api/scores/1/",
		[]byte(`{"throws": 48, "date": "2020-06-22", "player_id": 1, "course_id": 1}`), "text/plain")
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	w = testutil.RequestJSON(t, router, http.MethodPut, "/api/scores/42/",
		map[string]interface{}{"throws": 48, "date": "2020-06-22", "player_id": 1, "course_id": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = testutil.RequestJSON(t, router, http.MethodPut, "/api/scores/1/",
		map[string]interface{}{"date": "2020-06-22", "player_id": 1, "course_id": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.RequestJSON(t, router, http.MethodPut, "/api/scores/1/",
		map[string]interface{}{"throws": 48, "date": "2020-06-22", "player_id": 42, "course_id": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteScore(t *testing.T) {
	testutil.SetupDB(t)
	testutil.Populate(t)
	router := testutil.NewRouter()

	w := testutil.Request(t, router, http.MethodDelete, "/api/scores/1/", nil, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = testutil.Get(t, router, "/api/scores/1/")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = testutil.Request(t, router, http.MethodDelete, "/api/scores/1/", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePlayerEmptiesFilteredScores(t *testing.T) {
	testutil.SetupDB(t)
	testutil.Populate(t)
	router := testutil.NewRouter()

	body := testutil.Decode(t, testutil.Get(t, router, "/api/scores/?player_id=2"))
	require.Len(t, testutil.Items(t, body), 2)

	w := testutil.Request(t, router, http.MethodDelete, "/api/players/2/", nil, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = testutil.Get(t, router, "/api/players/2/")
	assert.Equal(t, http.StatusNotFound, w.Code)

	body = testutil.Decode(t, testutil.Get(t, router, "/api/scores/?player_id=2"))
	assert.Empty(t, testutil.Items(t, body))
}
