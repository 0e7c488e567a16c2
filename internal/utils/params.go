package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetIDParam parses a positive numeric path parameter such as "id" or
// "order_id".
func GetIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	if raw == "" {
		return 0, errors.New("ID not found")
	}

	id, err := strconv.ParseUint(raw, 10, 32)

	if err != nil || id == 0 {
		return 0, errors.New("Invalid ID")
	}

	return uint(id), nil
}

func GetIDParams(ctx *gin.Context, first, second string) (uint, uint, error) {
	firstID, err := GetIDParam(ctx, first)

	if err != nil {
		return 0, 0, err
	}

	secondID, err := GetIDParam(ctx, second)

	if err != nil {
		return 0, 0, err
	}

	return firstID, secondID, nil
}
