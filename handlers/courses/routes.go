package courses

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to courses
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	courses := r.Group("/courses")
	{
		courses.GET("/", GetAllCourses)
		courses.POST("/", CreateCourse)
		courses.GET("/:course_id/", GetCourse)
		courses.PUT("/:course_id/", UpdateCourse)
		courses.DELETE("/:course_id/", DeleteCourse)
	}
}
