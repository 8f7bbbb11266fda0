package services

import (
	"fmt"
	"strings"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError blocks a save. It carries every failed field so the
// client can report them all at once.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// DataShapeError rejects a malformed backup snapshot. Nothing from the
// offending file is ever applied.
type DataShapeError struct {
	Reason string
}

func (e *DataShapeError) Error() string {
	return "invalid backup payload: " + e.Reason
}

func dataShapeErrorf(format string, args ...interface{}) *DataShapeError {
	return &DataShapeError{Reason: fmt.Sprintf(format, args...)}
}
