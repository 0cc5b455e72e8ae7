package scores

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to scores
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	scores := r.Group("/scores")
	{
		scores.GET("/", GetAllScores)
		scores.POST("/", CreateScore)
		scores.GET("/:score_id/", GetScore)
		scores.PUT("/:score_id/", UpdateScore)
		scores.DELETE("/:score_id/", DeleteScore)
	}
}
