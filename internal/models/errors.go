package models

import "fmt"

// ConstraintViolation is returned when a record breaks a column or
// uniqueness constraint. Field is the JSON name of the offending column.
type ConstraintViolation struct {
	Field   string
	Message string
}

func (e *ConstraintViolation) Error() string {
	return fmt.Sprintf("constraint violation on %s: %s", e.Field, e.Message)
}
