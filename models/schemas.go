package models

// DatePattern matches an ISO calendar date (YYYY-MM-DD). The validation layer
// additionally checks that the date exists on the calendar.
const DatePattern = "^[0-9]{4}-[01][0-9]-[0-3][0-9]"

// Schema is a JSON-Schema document for one entity. The same value is embedded
// in outgoing hypermedia controls and used for inbound request validation.
type Schema struct {
	Type       string              `json:"type"`
	Required   []string            `json:"required"`
	Properties map[string]Property `json:"properties"`
}

// Property describes a single schema property.
type Property struct {
	Description string `json:"description"`
	Type        string `json:"type"`
	Pattern     string `json:"pattern,omitempty"`
	Minimum     int    `json:"minimum,omitempty"`
	Default     int    `json:"default,omitempty"`
}

// PlayerSchema returns the canonical schema for player representations.
func PlayerSchema() Schema {
	return Schema{
		Type:     "object",
		Required: []string{"name"},
		Properties: map[string]Property{
			"id": {
				Description: "Unique identifier of the player",
				Type:        "integer",
			},
			"name": {
				Description: "Name of the player",
				Type:        "string",
			},
		},
	}
}

// CourseSchema returns the canonical schema for course representations.
func CourseSchema() Schema {
	return Schema{
		Type:     "object",
		Required: []string{"name"},
		Properties: map[string]Property{
			"id": {
				Description: "Unique identifier of the course",
				Type:        "integer",
			},
			"name": {
				Description: "Name of the course",
				Type:        "string",
			},
			"num_holes": {
				Description: "Number of holes on the course",
				Type:        "integer",
				Default:     18,
			},
			"par": {
				Description: "Total par of the course",
				Type:        "integer",
				Default:     54,
			},
		},
	}
}

// ScoreSchema returns the canonical schema for score representations.
func ScoreSchema() Schema {
	return Schema{
		Type:     "object",
		Required: []string{"throws", "date", "player_id", "course_id"},
		Properties: map[string]Property{
			"id": {
				Description: "Unique identifier of the score",
				Type:        "integer",
			},
			"throws": {
				Description: "Number of throws used for the round",
				Type:        "integer",
				Minimum:     1,
			},
			"date": {
				Description: "Date the round was played (YYYY-MM-DD)",
				Type:        "string",
				Pattern:     DatePattern,
			},
			"player_id": {
				Description: "Identifier of the player who played the round",
				Type:        "integer",
			},
			"course_id": {
				Description: "Identifier of the course the round was played on",
				Type:        "integer",
			},
		},
	}
}
