package api

import (
	"frolftracker/handlers/courses"
	"frolftracker/handlers/players"
	"frolftracker/handlers/scores"
	"frolftracker/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the API
func Register(r *gin.Engine) {
	root := r.Group("/api")

	// Add metrics middleware to all routes
	root.Use(middleware.MetricsMiddleware())

	root.GET("/", EntryPoint)

	players.RegisterRoutes(root)
	courses.RegisterRoutes(root)
	scores.RegisterRoutes(root)

	// Register metrics endpoint
	RegisterMetricsRoutes(root)

	// Namespace and profile documents live outside the /api prefix
	RegisterDocsRoutes(r)
}
