package scores

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"frolftracker/config"
	"frolftracker/mason"
	"frolftracker/models"
	"frolftracker/services"
	"frolftracker/utils/response"
	"frolftracker/utils/validation"

	"github.com/gin-gonic/gin"
)

// GetAllScores retrieves the score collection, optionally filtered
// @Summary Get all scores
// @Description Get the score collection; player_id and course_id query parameters narrow the listing
// @Tags Scores
// @Produce vnd.mason+json
// @Param player_id query int false "Only scores recorded by this player"
// @Param course_id query int false "Only scores recorded on this course"
// @Success 200 {object} map[string]interface{}
// @Router /scores/ [get]
func GetAllScores(c *gin.Context) {
	filter := services.ScoreFilter{
		PlayerID: queryInt(c, "player_id"),
		CourseID: queryInt(c, "course_id"),
	}

	scoreList, err := services.ListScores(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error", ErrDatabase)
		return
	}

	body := mason.New()
	body.AddFrolfNamespace()
	body.AddControl("self", mason.Control{Href: mason.ScoresHref})
	body.AddControlPlayersAll()
	body.AddControlCoursesAll()
	body.AddControlAddScore()

	items := make([]mason.Document, 0, len(scoreList))
	for _, score := range scoreList {
		items = append(items, scoreItem(score))
	}
	body.Set("items", items)

	response.Mason(c, http.StatusOK, body)
}

// CreateScore creates a new score
// @Summary Create a score
// @Description Create a score from a JSON body matching the score schema; both references must resolve
// @Tags Scores
// @Accept json
// @Produce vnd.mason+json
// @Param score body ScoreRequest true "Score to create"
// @Success 201 "Created, Location header points at the new score"
// @Failure 400 {object} map[string]interface{} "Schema validation failed"
// @Failure 404 {object} map[string]interface{} "Referenced player or course not found"
// @Failure 415 {object} map[string]interface{} "Request is not JSON"
// @Router /scores/ [post]
func CreateScore(c *gin.Context) {
	if c.ContentType() != "application/json" {
		response.Error(c, http.StatusUnsupportedMediaType, "Unsupported media type", ErrNotJSON)
		return
	}

	req, ok := decodeScore(c)
	if !ok {
		return
	}

	score, err := services.CreateScore(req.Throws, req.Date, req.PlayerID, req.CourseID)
	if !respondReferenceErrors(c, err, req) {
		return
	}

	c.Header("Location", mason.ScoreHref(score.ID))
	c.Status(http.StatusCreated)
}

// GetScore retrieves a single score
// @Summary Get a score
// @Description Get one score with links to its player and course and the controls to edit and delete it
// @Tags Scores
// @Produce vnd.mason+json
// @Param score_id path int true "Score ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Score not found"
// @Router /scores/{score_id}/ [get]
func GetScore(c *gin.Context) {
	id, score, ok := findScore(c)
	if !ok {
		return
	}

	body := mason.New()
	body.AddFrolfNamespace()
	body.Set("score_id", score.ID)
	body.Set("throws", score.Throws)
	body.Set("date", score.Date)
	body.Set("player_id", score.PlayerID)
	body.Set("course_id", score.CourseID)
	body.AddControl("self", mason.Control{Href: mason.ScoreHref(id)})
	body.AddControl("profile", mason.Control{Href: config.ScoreProfile})
	body.AddControl("collection", mason.Control{Href: mason.ScoresHref})
	body.AddControl("frolf:player", mason.Control{
		Href:  mason.PlayerHref(score.PlayerID),
		Title: "The player who recorded this score",
	})
	body.AddControl("frolf:course", mason.Control{
		Href:  mason.CourseHref(score.CourseID),
		Title: "The course this score was recorded on",
	})
	body.AddControlDeleteScore(id)
	body.AddControlModifyScore(id)

	response.Mason(c, http.StatusOK, body)
}

// UpdateScore replaces a score
// @Summary Replace a score
// @Description Replace the fields of a score; both references must resolve
// @Tags Scores
// @Accept json
// @Param score_id path int true "Score ID"
// @Param score body ScoreRequest true "New score content"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]interface{} "Schema validation failed"
// @Failure 404 {object} map[string]interface{} "Score, player or course not found"
// @Failure 415 {object} map[string]interface{} "Request is not JSON"
// @Router /scores/{score_id}/ [put]
func UpdateScore(c *gin.Context) {
	if c.ContentType() != "application/json" {
		response.Error(c, http.StatusUnsupportedMediaType, "Unsupported media type", ErrNotJSON)
		return
	}

	id, _, ok := findScore(c)
	if !ok {
		return
	}

	req, ok := decodeScore(c)
	if !ok {
		return
	}

	err := services.UpdateScore(id, req.Throws, req.Date, req.PlayerID, req.CourseID)
	if !respondReferenceErrors(c, err, req) {
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteScore deletes a single score
// @Summary Delete a score
// @Description Delete one score
// @Tags Scores
// @Param score_id path int true "Score ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]interface{} "Score not found"
// @Router /scores/{score_id}/ [delete]
func DeleteScore(c *gin.Context) {
	id, _, ok := findScore(c)
	if !ok {
		return
	}

	if err := services.DeleteScore(id); err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error", ErrDatabase)
		return
	}

	c.Status(http.StatusNoContent)
}

// respondReferenceErrors maps store errors from a score mutation onto the
// status taxonomy. It reports whether the mutation succeeded.
func respondReferenceErrors(c *gin.Context, err error, req ScoreRequest) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, services.ErrPlayerNotFound):
		response.Error(c, http.StatusNotFound, "Not found", fmt.Sprintf(ErrPlayerNotFound, req.PlayerID))
	case errors.Is(err, services.ErrCourseNotFound):
		response.Error(c, http.StatusNotFound, "Not found", fmt.Sprintf(ErrCourseNotFound, req.CourseID))
	default:
		response.Error(c, http.StatusInternalServerError, "Internal server error", ErrDatabase)
	}
	return false
}

// decodeScore validates and decodes a score request body. On failure it has
// already written the 400 error document.
func decodeScore(c *gin.Context) (ScoreRequest, bool) {
	var req ScoreRequest

	raw, err := c.GetRawData()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON document", ErrReadBody)
		return req, false
	}
	if err := validation.Score(raw); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON document", err.Error())
		return req, false
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON document", err.Error())
		return req, false
	}
	return req, true
}

// findScore resolves the score_id path parameter. On failure it has already
// written the 404 error document.
func findScore(c *gin.Context) (int, *models.Score, bool) {
	id, err := strconv.Atoi(c.Param("score_id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "Not found",
			fmt.Sprintf("No score was found with the id %s", c.Param("score_id")))
		return 0, nil, false
	}

	score, err := services.FindScore(id)
	if errors.Is(err, services.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "Not found", fmt.Sprintf(ErrScoreNotFound, id))
		return 0, nil, false
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error", ErrDatabase)
		return 0, nil, false
	}
	return id, score, true
}

// scoreItem builds one collection entry with its item links.
func scoreItem(score models.Score) mason.Document {
	item := mason.New()
	item.Set("score_id", score.ID)
	item.Set("throws", score.Throws)
	item.Set("date", score.Date)
	item.Set("player_id", score.PlayerID)
	item.Set("course_id", score.CourseID)
	item.AddControl("self", mason.Control{Href: mason.ScoreHref(score.ID)})
	item.AddControl("profile", mason.Control{Href: config.ScoreProfile})
	return item
}

// queryInt reads an optional integer query parameter. Values that do not
// parse as integers are ignored, like unknown parameters.
func queryInt(c *gin.Context, name string) *int {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}
