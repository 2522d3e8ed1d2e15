package store

import "errors"

var (
	// ErrValidation is returned when a required field is missing or an
	// enumerated value is outside its allowed set.
	ErrValidation = errors.New("missing or invalid field")

	// ErrTaskNotFound is returned when a task lookup matches no row.
	ErrTaskNotFound = errors.New("task not found")

	// ErrUserHasTasks is returned when deleting a user that still has
	// tasks assigned to it.
	ErrUserHasTasks = errors.New("user has assigned tasks")
)
