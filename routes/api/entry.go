package api

import (
	"net/http"

	"frolftracker/mason"
	"frolftracker/utils/response"

	"github.com/gin-gonic/gin"
)

// EntryPoint serves the root document of the API
// @Summary API entry point
// @Description Get the root hypermedia document advertising the top level collections
// @Tags Entry
// @Produce vnd.mason+json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func EntryPoint(c *gin.Context) {
	body := mason.New()
	body.AddFrolfNamespace()
	body.AddControlPlayersAll()
	body.AddControlCoursesAll()
	body.AddControlScoresAll()

	response.Mason(c, http.StatusOK, body)
}
