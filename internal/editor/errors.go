// Package editor implements the section editing operations of the CV builder.
package editor

import "fmt"

// RowNotFoundError indicates the addressed row does not exist in the section.
type RowNotFoundError struct {
	Section string
	ID      string
}

func (e *RowNotFoundError) Error() string {
	return fmt.Sprintf("%s row not found: %s", e.Section, e.ID)
}

// UnknownFieldError indicates an update named a field the entity does not have.
type UnknownFieldError struct {
	Section string
	Field   string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown %s field: %s", e.Section, e.Field)
}

// BadValueError indicates a field value of the wrong shape.
type BadValueError struct {
	Field   string
	Message string
}

func (e *BadValueError) Error() string {
	return fmt.Sprintf("bad value for %s: %s", e.Field, e.Message)
}
