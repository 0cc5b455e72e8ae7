package api

import (
	"fmt"
	"net/http"

	"frolftracker/config"
	"frolftracker/utils/response"

	"github.com/gin-gonic/gin"
)

// profileDocs holds the short human-readable description served for each
// profile URI.
var profileDocs = map[string]string{
	"player": "Player representations carry 'player_id' (integer, server assigned) and 'name' (string).",
	"course": "Course representations carry 'course_id' (integer, server assigned), a unique 'name' (string), 'num_holes' (integer, default 18) and 'par' (integer, default 54).",
	"score":  "Score representations carry 'score_id' (integer, server assigned), 'throws' (positive integer), 'date' (YYYY-MM-DD), 'player_id' and 'course_id' (integer references).",
	"error":  "Error representations carry 'resource_url' and an '@error' element with '@message' and '@messages'.",
}

// RegisterDocsRoutes registers the link relation and profile documents that
// the hypermedia controls point at.
func RegisterDocsRoutes(r *gin.Engine) {
	r.GET(config.LinkRelationsURL, LinkRelations)
	r.GET("/profiles/:profile/", Profile)
}

// LinkRelations serves the documentation page for the frolf link relations
// @Summary Link relation documentation
// @Description Get a short description of every custom link relation used under the frolf prefix
// @Tags Documentation
// @Produce plain
// @Success 200 {string} string
// @Router /frolftracker/link-relations/ [get]
func LinkRelations(c *gin.Context) {
	c.String(http.StatusOK,
		"Link relations used by the frolftracker API under the 'frolf' prefix:\n"+
			"add-player, modify-player, add-course, modify-course, add-score,\n"+
			"modify-score, delete, player, course, players-all, courses-all,\n"+
			"scores-all, scores-by-player, scores-by-course.\n")
}

// Profile serves the profile document of one representation type
// @Summary Profile documentation
// @Description Get the description of the named representation profile
// @Tags Documentation
// @Produce plain
// @Param profile path string true "Profile name" Enums(player, course, score, error)
// @Success 200 {string} string
// @Failure 404 {object} map[string]interface{} "Unknown profile"
// @Router /profiles/{profile}/ [get]
func Profile(c *gin.Context) {
	name := c.Param("profile")
	doc, ok := profileDocs[name]
	if !ok {
		response.Error(c, http.StatusNotFound, "Not found",
			fmt.Sprintf("No profile named '%s'", name))
		return
	}
	c.String(http.StatusOK, doc+"\n")
}
