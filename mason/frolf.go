package mason

import (
	"fmt"

	"frolftracker/config"
	"frolftracker/models"
)

// Collection hrefs. All hrefs are absolute paths with a trailing slash.
const (
	EntryHref   = "/api/"
	PlayersHref = "/api/players/"
	CoursesHref = "/api/courses/"
	ScoresHref  = "/api/scores/"
)

// Templated hrefs for filtered score listings. Clients substitute the id of
// the player or course they hold.
const (
	ScoresByPlayerHref = ScoresHref + "?player_id={id}"
	ScoresByCourseHref = ScoresHref + "?course_id={id}"
)

// PlayerHref returns the item href for a player.
func PlayerHref(id int) string {
	return fmt.Sprintf("%s%d/", PlayersHref, id)
}

// CourseHref returns the item href for a course.
func CourseHref(id int) string {
	return fmt.Sprintf("%s%d/", CoursesHref, id)
}

// ScoreHref returns the item href for a score.
func ScoreHref(id int) string {
	return fmt.Sprintf("%s%d/", ScoresHref, id)
}

// AddFrolfNamespace registers the frolf link relation prefix.
func (d Document) AddFrolfNamespace() {
	d.AddNamespace("frolf", config.LinkRelationsURL)
}

// AddControlPlayersAll links to the player collection.
func (d Document) AddControlPlayersAll() {
	d.AddControl("frolf:players-all", Control{
		Href:  PlayersHref,
		Title: "All players",
	})
}

// AddControlCoursesAll links to the course collection.
func (d Document) AddControlCoursesAll() {
	d.AddControl("frolf:courses-all", Control{
		Href:  CoursesHref,
		Title: "All courses",
	})
}

// AddControlScoresAll links to the score collection.
func (d Document) AddControlScoresAll() {
	d.AddControl("frolf:scores-all", Control{
		Href:  ScoresHref,
		Title: "All scores",
	})
}

// AddControlAddPlayer advertises player creation with the player schema.
func (d Document) AddControlAddPlayer() {
	d.AddControl("frolf:add-player", Control{
		Href:     PlayersHref,
		Method:   "POST",
		Encoding: "json",
		Title:    "Add a new player",
		Schema:   models.PlayerSchema(),
	})
}

// AddControlModifyPlayer advertises replacement of a player.
func (d Document) AddControlModifyPlayer(playerID int) {
	d.AddControl("frolf:modify-player", Control{
		Href:     PlayerHref(playerID),
		Method:   "PUT",
		Encoding: "json",
		Title:    "Edit this player",
		Schema:   models.PlayerSchema(),
	})
}

// AddControlDeletePlayer advertises deletion of a player.
func (d Document) AddControlDeletePlayer(playerID int) {
	d.AddControl("frolf:delete", Control{
		Href:   PlayerHref(playerID),
		Method: "DELETE",
		Title:  "Delete this player",
	})
}

// AddControlAddCourse advertises course creation with the course schema.
func (d Document) AddControlAddCourse() {
	d.AddControl("frolf:add-course", Control{
		Href:     CoursesHref,
		Method:   "POST",
		Encoding: "json",
		Title:    "Add a new course",
		Schema:   models.CourseSchema(),
	})
}

// AddControlModifyCourse advertises replacement of a course.
func (d Document) AddControlModifyCourse(courseID int) {
	d.AddControl("frolf:modify-course", Control{
		Href:     CourseHref(courseID),
		Method:   "PUT",
		Encoding: "json",
		Title:    "Edit this course",
		Schema:   models.CourseSchema(),
	})
}

// AddControlDeleteCourse advertises deletion of a course.
func (d Document) AddControlDeleteCourse(courseID int) {
	d.AddControl("frolf:delete", Control{
		Href:   CourseHref(courseID),
		Method: "DELETE",
		Title:  "Delete this course",
	})
}

// AddControlAddScore advertises score creation with the score schema.
func (d Document) AddControlAddScore() {
	d.AddControl("frolf:add-score", Control{
		Href:     ScoresHref,
		Method:   "POST",
		Encoding: "json",
		Title:    "Add a new score",
		Schema:   models.ScoreSchema(),
	})
}

// AddControlModifyScore advertises replacement of a score.
func (d Document) AddControlModifyScore(scoreID int) {
	d.AddControl("frolf:modify-score", Control{
		Href:     ScoreHref(scoreID),
		Method:   "PUT",
		Encoding: "json",
		Title:    "Edit this score",
		Schema:   models.ScoreSchema(),
	})
}

// AddControlDeleteScore advertises deletion of a score.
func (d Document) AddControlDeleteScore(scoreID int) {
	d.AddControl("frolf:delete", Control{
		Href:   ScoreHref(scoreID),
		Method: "DELETE",
		Title:  "Delete this score",
	})
}

// AddControlScoresByPlayer advertises the templated filtered score listing.
func (d Document) AddControlScoresByPlayer() {
	d.AddControl("frolf:scores-by-player", Control{
		Href:           ScoresByPlayerHref,
		Title:          "Scores by a player",
		IsHrefTemplate: true,
	})
}

// AddControlScoresByCourse advertises the templated filtered score listing.
func (d Document) AddControlScoresByCourse() {
	d.AddControl("frolf:scores-by-course", Control{
		Href:           ScoresByCourseHref,
		Title:          "Scores on a course",
		IsHrefTemplate: true,
	})
}
