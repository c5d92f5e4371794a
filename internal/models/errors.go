package models

import "fmt"

// ValidationError reports a required news item field that is empty or absent
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newMissingFieldError(field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("News item must have a %s!", field),
	}
}
