package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes one rejected input field.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// ValidationErrors collects every violation found while validating one request.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	return strings.Join(e.Messages(), "; ")
}

// Messages returns one human readable line per violation, in input order.
func (e ValidationErrors) Messages() []string {
	out := make([]string, 0, len(e))
	for _, v := range e {
		out = append(out, v.Error())
	}
	return out
}

// Add appends a violation for field.
func (e *ValidationErrors) Add(field, msg string) {
	*e = append(*e, ValidationError{Field: field, Msg: msg})
}

// Merge appends err when it is a validation error and reports whether it was.
func (e *ValidationErrors) Merge(err error) bool {
	var list ValidationErrors
	if errors.As(err, &list) {
		*e = append(*e, list...)
		return true
	}
	var single ValidationError
	if errors.As(err, &single) {
		*e = append(*e, single)
		return true
	}
	return false
}

// OrNil returns nil when nothing was collected so callers can return it directly.
func (e ValidationErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

type NotFoundError struct {
	Resource string
	Code     string
	Err      error
}

func (e NotFoundError) Error() string {
	switch {
	case e.Resource != "" && e.Code != "":
		return fmt.Sprintf("%s with code '%s' not found", e.Resource, e.Code)
	case e.Resource != "":
		return fmt.Sprintf("%s not found", e.Resource)
	default:
		return "not found"
	}
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ConfigurationError is raised at startup when the process cannot be configured.
type ConfigurationError struct {
	Key string
	Msg string
}

func (e ConfigurationError) Error() string {
	if e.Key == "" {
		return "configuration: " + e.Msg
	}
	return fmt.Sprintf("configuration %s: %s", e.Key, e.Msg)
}

// CoordinateFormatError reports a coordinate string that is not in DMS form.
type CoordinateFormatError struct {
	Value string
}

func (e CoordinateFormatError) Error() string {
	return fmt.Sprintf("invalid coordinate format: %q", e.Value)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

// IsValidation matches both a single ValidationError and ValidationErrors.
func IsValidation(err error) bool {
	var list ValidationErrors
	if errors.As(err, &list) {
		return true
	}
	var target ValidationError
	return errors.As(err, &target)
}

func IsConfiguration(err error) bool {
	var target ConfigurationError
	return errors.As(err, &target)
}

func IsCoordinateFormat(err error) bool {
	var target CoordinateFormatError
	return errors.As(err, &target)
}

// ValidationMessages flattens a validation error into response lines.
func ValidationMessages(err error) []string {
	var list ValidationErrors
	if errors.As(err, &list) {
		return list.Messages()
	}
	var single ValidationError
	if errors.As(err, &single) {
		return []string{single.Error()}
	}
	if err == nil {
		return nil
	}
	return []string{err.Error()}
}
