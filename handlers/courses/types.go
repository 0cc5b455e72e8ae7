package courses

// Constants for error messages
const (
	ErrCourseNotFound = "No course was found with the id %d"
	ErrNameTaken      = "Course with name '%s' already exists"
	ErrNotJSON        = "Requests must be JSON"
	ErrReadBody       = "Could not read the request body"
	ErrDatabase       = "Database error, please try again later"
)

// Defaults applied when a request omits the optional course fields
const (
	DefaultNumHoles = 18
	DefaultPar      = 54
)

// CourseRequest model for creating or replacing a course. The hole and par
// counts are optional and fall back to the schema defaults.
type CourseRequest struct {
	Name     string `json:"name"`
	NumHoles *int   `json:"num_holes"`
	Par      *int   `json:"par"`
}

// numHoles returns the requested hole count or the default.
func (r CourseRequest) numHoles() int {
	if r.NumHoles != nil {
		return *r.NumHoles
	}
	return DefaultNumHoles
}

// par returns the requested par or the default.
func (r CourseRequest) par() int {
	if r.Par != nil {
		return *r.Par
	}
	return DefaultPar
}
