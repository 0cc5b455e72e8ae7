package config

// Mason is the media type used for every response body, success or error.
const Mason = "application/vnd.mason+json"

// LinkRelationsURL is the namespace URI advertised for the "frolf" prefix.
// The route serves a short human-readable description of the link relations.
const LinkRelationsURL = "/frolftracker/link-relations/"

// Profile URIs identify the shape of each resource representation.
const (
	PlayerProfile = "/profiles/player/"
	CourseProfile = "/profiles/course/"
	ScoreProfile  = "/profiles/score/"
	ErrorProfile  = "/profiles/error/"
)
