package players

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to players
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	players := r.Group("/players")
	{
		players.GET("/", GetAllPlayers)
		players.POST("/", CreatePlayer)
		players.POST("/import", ImportPlayers)
		players.GET("/:player_id/", GetPlayer)
		players.PUT("/:player_id/", UpdatePlayer)
		players.DELETE("/:player_id/", DeletePlayer)
	}
}
