package validation

import (
	"strings"

	"github.com/storefront-dev/storefront/internal/models"
)

type UserInput struct {
	Name    string `json:"name" validate:"required,max=30"`
	Address string `json:"address" validate:"required,max=100"`
	Email   string `json:"email" validate:"omitempty,max=200,email"`
}

// User decodes and validates a single user payload. A blank or null email
// is treated as absent.
func User(raw []byte) (models.User, error) {
	fields, err := decodeObject(raw)

	if err != nil {
		return models.User{}, err
	}

	var input UserInput
	verr := NewError()
	present := make(map[string]bool)

	for key, value := range fields {
		var target *string

		switch key {
		case "name":
			target = &input.Name
		case "address":
			target = &input.Address
		case "email":
			target = &input.Email
		case "id":
			continue
		default:
			verr.Add(key, msgUnknown)
			continue
		}

		s, ok := decodeString(value)

		if !ok {
			verr.Add(key, msgInvalidString)
			continue
		}

		present[key] = !isNull(value)
		*target = s
	}

	if strings.TrimSpace(input.Email) == "" {
		input.Email = ""
	}

	if err := checkStruct(input, present, verr); err != nil {
		return models.User{}, err
	}

	if err := verr.orNil(); err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:    input.Name,
		Address: input.Address,
	}

	if input.Email != "" {
		email := input.Email
		user.Email = &email
	}

	return user, nil
}

// Users decodes a {"users": [...]} batch. The first invalid entry fails
// the whole batch.
func Users(body []byte) ([]models.User, error) {
	items, err := decodeEnvelope(body, "users")

	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(items))

	for _, item := range items {
		user, err := User(item)

		if err != nil {
			return nil, err
		}

		users = append(users, user)
	}

	return users, nil
}
