// Package validation applies the canonical entity schemas to incoming
// request bodies. Validation failures carry a message that is passed through
// to the client in the error document.
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"frolftracker/models"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	playerSchema = mustCompile("player.json", models.PlayerSchema())
	courseSchema = mustCompile("course.json", models.CourseSchema())
	scoreSchema  = mustCompile("score.json", models.ScoreSchema())
)

func mustCompile(name string, schema models.Schema) *jsonschema.Schema {
	raw, err := json.Marshal(schema)
	if err != nil {
		panic(err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader(raw)); err != nil {
		panic(err)
	}
	return compiler.MustCompile(name)
}

func validate(schema *jsonschema.Schema, body []byte) error {
	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("request body is not valid JSON: %v", err)
	}
	return schema.Validate(doc)
}

// Player validates a request body against the player schema.
func Player(body []byte) error {
	return validate(playerSchema, body)
}

// Course validates a request body against the course schema.
func Course(body []byte) error {
	return validate(courseSchema, body)
}

// Score validates a request body against the score schema. Beyond the schema,
// the date must exist on the calendar; the pattern alone admits days like
// 2020-02-31.
func Score(body []byte) error {
	if err := validate(scoreSchema, body); err != nil {
		return err
	}

	var fields struct {
		Date string `json:"date"`
	}
	if err := json.Unmarshal(body, &fields); err != nil {
		return err
	}
	if _, err := time.Parse("2006-01-02", fields.Date); err != nil {
		return fmt.Errorf("'%s' is not a real calendar date", fields.Date)
	}
	return nil
}
