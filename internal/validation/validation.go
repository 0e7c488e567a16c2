package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	msgRequired      = "Missing data for required field."
	msgBlank         = "Field may not be blank."
	msgUnknown       = "Unknown field."
	msgInvalidString = "Not a valid string."
	msgInvalidNumber = "Not a valid number."
	msgInvalidInt    = "Not a valid integer."
	msgInvalidInput  = "Invalid input type."
	schemaField      = "_schema"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// checkStruct runs the struct tags and records one message per failed
// rule. Fields that already failed to decode are skipped.
func checkStruct(input interface{}, present map[string]bool, verr *Error) error {
	err := validate.Struct(input)

	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors

	if !errors.As(err, &fieldErrs) {
		return err
	}

	for _, fe := range fieldErrs {
		if verr.Has(fe.Field()) {
			continue
		}
		verr.Add(fe.Field(), message(fe, present[fe.Field()]))
	}

	return nil
}

func message(fe validator.FieldError, present bool) string {
	switch fe.Tag() {
	case "required":
		if present {
			return msgBlank
		}
		return msgRequired
	case "max":
		return fmt.Sprintf("Longer than maximum length %s.", fe.Param())
	case "email":
		return "Not a valid email address."
	default:
		return fmt.Sprintf("Failed %s validation.", fe.Tag())
	}
}

// decodeObject splits a JSON object into its raw members.
func decodeObject(raw []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage

	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, FieldError(schemaField, msgInvalidInput)
	}

	return fields, nil
}

// decodeString accepts a JSON string or null. Null decodes to "".
func decodeString(raw json.RawMessage) (string, bool) {
	if isNull(raw) {
		return "", true
	}

	var s string

	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}

	return s, true
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

// decodeEnvelope extracts the array stored under key from a batch body.
func decodeEnvelope(body []byte, key string) ([]json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, ErrMalformedJSON
	}

	var envelope map[string]json.RawMessage

	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &EnvelopeError{Key: key}
	}

	raw, ok := envelope[key]

	if !ok || isNull(raw) {
		return nil, &EnvelopeError{Key: key}
	}

	var items []json.RawMessage

	if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
		return nil, &EnvelopeError{Key: key}
	}

	return items, nil
}
