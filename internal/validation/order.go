package validation

import (
	"context"
	"encoding/json"
	"strconv"
)

// UserLookup resolves whether a user id exists in storage.
type UserLookup interface {
	UserExists(ctx context.Context, id uint) (bool, error)
}

type OrderInput struct {
	UserID uint
}

// Order decodes an order payload and checks that its user exists.
// order_date and any other member are ignored; the server assigns the date.
func Order(ctx context.Context, body []byte, users UserLookup) (OrderInput, error) {
	if !json.Valid(body) {
		return OrderInput{}, ErrMalformedJSON
	}

	fields, err := decodeObject(body)

	if err != nil {
		return OrderInput{}, err
	}

	raw, ok := fields["user_id"]

	if !ok || isNull(raw) {
		return OrderInput{}, FieldError("user_id", msgRequired)
	}

	userID, ok := decodeID(raw)

	if !ok {
		return OrderInput{}, FieldError("user_id", msgInvalidInt)
	}

	if userID == 0 {
		return OrderInput{}, FieldError("user_id", msgRequired)
	}

	found, err := users.UserExists(ctx, userID)

	if err != nil {
		return OrderInput{}, err
	}

	if !found {
		return OrderInput{}, FieldError("user_id", "User does not exist.")
	}

	return OrderInput{UserID: userID}, nil
}

// decodeID accepts a non-negative JSON integer that fits in 32 bits.
func decodeID(raw json.RawMessage) (uint, bool) {
	var n json.Number

	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}

	id, err := strconv.ParseUint(n.String(), 10, 32)

	if err != nil {
		return 0, false
	}

	return uint(id), true
}
