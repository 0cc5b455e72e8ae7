package services

import (
	"context"
	"errors"
	"time"
)

// Typed store errors. Handlers map these onto the status code taxonomy.
var (
	// ErrNotFound reports that the addressed entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict reports a unique key violation (duplicate course name).
	ErrConflict = errors.New("already exists")
	// ErrPlayerNotFound reports a score referencing a missing player.
	ErrPlayerNotFound = errors.New("referenced player not found")
	// ErrCourseNotFound reports a score referencing a missing course.
	ErrCourseNotFound = errors.New("referenced course not found")
)

// Constants for database operations
const (
	defaultQueryTimeout = 5 * time.Second
)

// withTimeout executes a database operation with a timeout context
func withTimeout(dbOperation func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultQueryTimeout)
	defer cancel()
	return dbOperation(ctx)
}
