package scores

// Constants for error messages
const (
	ErrScoreNotFound  = "No score was found with the id %d"
	ErrPlayerNotFound = "No player was found with the id %d"
	ErrCourseNotFound = "No course was found with the id %d"
	ErrNotJSON        = "Requests must be JSON"
	ErrReadBody       = "Could not read the request body"
	ErrDatabase       = "Database error, please try again later"
)

// ScoreRequest model for creating or replacing a score
type ScoreRequest struct {
	Throws   int    `json:"throws"`
	Date     string `json:"date"`
	PlayerID int    `json:"player_id"`
	CourseID int    `json:"course_id"`
}
