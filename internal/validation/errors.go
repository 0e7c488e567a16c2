package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrMalformedJSON is returned when the request body is not JSON at all.
var ErrMalformedJSON = errors.New("request body is not valid JSON")

// Error carries every failed rule of a payload, keyed by JSON field name.
type Error struct {
	Fields map[string][]string
}

func NewError() *Error {
	return &Error{Fields: make(map[string][]string)}
}

// FieldError is a shortcut for an Error with a single message.
func FieldError(field, message string) *Error {
	e := NewError()
	e.Add(field, message)
	return e
}

func (e *Error) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *Error) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", key, strings.Join(e.Fields[key], " ")))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Fields)
}

// orNil keeps a typed nil *Error from leaking out as a non-nil error.
func (e *Error) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// EnvelopeError reports a batch body without its collection key, or with
// an empty or non-array value under it.
type EnvelopeError struct {
	Key string
}

func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("request must be an object with a %q key containing an array", e.Key)
}
