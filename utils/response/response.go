package response

import (
	"encoding/json"
	"net/http"

	"frolftracker/config"
	"frolftracker/mason"

	"github.com/gin-gonic/gin"
)

// Mason sends a hypermedia document with the Mason media type
func Mason(c *gin.Context, status int, body mason.Document) {
	data, err := json.Marshal(body)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(status, config.Mason, data)
}

// Error sends a standardized Mason error document: the current resource URL,
// an @error element with the title and detail message, and a profile control
// pointing at the error profile.
func Error(c *gin.Context, status int, title, message string) {
	body := mason.New()
	body.Set("resource_url", c.Request.URL.Path)
	body.AddError(title, message)
	body.AddControl("profile", mason.Control{Href: config.ErrorProfile})
	Mason(c, status, body)
}
