package courses

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

// GetAllCourses retrieves the course collection
// @Summary Get all courses
// @Description Get the course collection as a hypermedia document
// @Tags Courses
// @Produce vnd.mason+json
// @Success 200 {object} map[string]interface{}
// @Router /courses/ [get]
func GetAllCourses(c *gin.Context) {
	courseList, err := services.ListCourses()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error", ErrDatabase)
		return
	}

	body := mason.New()
	body.AddFrolfNamespace()
	body.AddControl("self", mason.Control{Href: mason.CoursesHref})
	body.AddControlAddCourse()

	items := make([]mason.Document, 0, len(courseList))
	for _, course := range courseList {
		items = append(items, courseItem(course))
	}
	body.Set("items", items)

	response.Mason(c, http.StatusOK, body)
}

// CreateCourse creates a new course
// @Summary Create a course
// @Description Create a course from a JSON body matching the course schema; course names are unique
// @Tags Courses
// @Accept json
// @Produce vnd.mason+json
// @Param course body CourseRequest true "Course to create"
// @Success 201 "Created, Location header points at the new course"
// @Failure 400 {object} map[string]interface{} "Schema validation failed"
// @Failure 409 {object} map[string]interface{} "A course with the name already exists"
// @Failure 415 {object} map[string]interface{} "Request is not JSON"
// @Router /courses/ [post]
func CreateCourse(c *gin.Context) {
	if c.ContentType() != "application/json" {
		response.Error(c, http.StatusUnsupportedMediaType, "Unsupported media type", ErrNotJSON)
		return
	}

	req, ok := decodeCourse(c)
	if !ok {
		return
	}

	course, err := services.CreateCourse(req.Name, req.numHoles(), req.par())
	if errors.Is(err, services.ErrConflict) {
		response.Error(c, http.StatusConflict, "Already exists", fmt.Sprintf(ErrNameTaken, req.Name))
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error", ErrDatabase)
		return
	}

	c.Header("Location", mason.CourseHref(course.ID))
	c.Status(http.StatusCreated)
}

// GetCourse retrieves a single course
// @Summary Get a course
// @Description Get one course with the controls to edit and delete it
// @Tags Courses
// @Produce vnd.mason+json
// @Param course_id path int true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Course not found"
// @Router /courses/{course_id}/ [get]
func GetCourse(c *gin.Context) {
	id, course, ok := findCourse(c)
	if !ok {
		return
	}

	body := mason.New()
	body.AddFrolfNamespace()
	body.Set("course_id", course.ID)
	body.Set("name", course.Name)
	body.Set("num_holes", course.NumHoles)
	body.Set("par", course.Par)
	body.AddControl("self", mason.Control{Href: mason.CourseHref(id)})
	body.AddControl("profile", mason.Control{Href: config.CourseProfile})
	body.AddControl("collection", mason.Control{Href: mason.CoursesHref})
	body.AddControlDeleteCourse(id)
	body.AddControlModifyCourse(id)
	body.AddControlScoresByCourse()

	response.Mason(c, http.StatusOK, body)
}

// UpdateCourse replaces a course
// @Summary Replace a course
// @Description Replace the fields of a course; renaming it to a name held by another course is a conflict
// @Tags Courses
// @Accept json
// @Param course_id path int true "Course ID"
// @Param course body CourseRequest true "New course content"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]interface{} "Schema validation failed"
// @Failure 404 {object} map[string]interface{} "Course not found"
// @Failure 409 {object} map[string]interface{} "A course with the name already exists"
// @Failure 415 {object} map[string]interface{} "Request is not JSON"
// @Router /courses/{course_id}/ [put]
func UpdateCourse(c *gin.Context) {
	if c.ContentType() != "application/json" {
		response.Error(c, http.StatusUnsupportedMediaType, "Unsupported media type", ErrNotJSON)
		return
	}

	id, _, ok := findCourse(c)
	if !ok {
		return
	}

	req, ok := decodeCourse(c)
	if !ok {
		return
	}

	err := services.UpdateCourse(id, req.Name, req.numHoles(), req.par())
	if errors.Is(err, services.ErrConflict) {
		response.Error(c, http.StatusConflict, "Already exists", fmt.Sprintf(ErrNameTaken, req.Name))
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error", ErrDatabase)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteCourse deletes a course and, through the cascade, all its scores
// @Summary Delete a course
// @Description Delete a course; every score recorded on the course is deleted with it
// @Tags Courses
// @Param course_id path int true "Course ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]interface{} "Course not found"
// @Router /courses/{course_id}/ [delete]
func DeleteCourse(c *gin.Context) {
	id, _, ok := findCourse(c)
	if !ok {
		return
	}

	if err := services.DeleteCourse(id); err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error", ErrDatabase)
		return
	}

	c.Status(http.StatusNoContent)
}

// decodeCourse validates and decodes a course request body. On failure it has
// already written the 400 error document.
func decodeCourse(c *gin.Context) (CourseRequest, bool) {
	var req CourseRequest

	raw, err := c.GetRawData()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON document", ErrReadBody)
		return req, false
	}
	if err := validation.Course(raw); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON document", err.Error())
		return req, false
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON document", err.Error())
		return req, false
	}
	return req, true
}

// findCourse resolves the course_id path parameter. On failure it has already
// written the 404 error document.
func findCourse(c *gin.Context) (int, *models.Course, bool) {
	id, err := strconv.Atoi(c.Param("course_id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "Not found",
			fmt.Sprintf("No course was found with the id %s", c.Param("course_id")))
		return 0, nil, false
	}

	course, err := services.FindCourse(id)
	if errors.Is(err, services.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "Not found", fmt.Sprintf(ErrCourseNotFound, id))
		return 0, nil, false
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error", ErrDatabase)
		return 0, nil, false
	}
	return id, course, true
}

// courseItem builds one collection entry with its item links.
func courseItem(course models.Course) mason.Document {
	item := mason.New()
	item.Set("course_id", course.ID)
	item.Set("name", course.Name)
	item.Set("num_holes", course.NumHoles)
	item.Set("par", course.Par)
	item.AddControl("self", mason.Control{Href: mason.CourseHref(course.ID)})
	item.AddControl("profile", mason.Control{Href: config.CourseProfile})
	return item
}
