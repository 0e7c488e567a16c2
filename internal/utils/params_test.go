package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithParams(params ...gin.Param) *gin.Context {
	gin.SetMode(gin.TestMode)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Params = params

	return ctx
}

func TestGetIDParam(t *testing.T) {
	tests := []struct {
		raw   string
		id    uint
		valid bool
	}{
		{"1", 1, true},
		{"4294967295", 4294967295, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
		{"4294967296", 0, false},
	}

	for _, tc := range tests {
		id, err := GetIDParam(contextWithParams(gin.Param{Key: "id", Value: tc.raw}), "id")

		if tc.valid {
			require.NoError(t, err, tc.raw)
			assert.Equal(t, tc.id, id)
		} else {
			assert.Error(t, err, tc.raw)
		}
	}
}

func TestGetIDParamMissing(t *testing.T) {
	_, err := GetIDParam(contextWithParams(), "id")
	assert.EqualError(t, err, "ID not found")
}

func TestGetIDParams(t *testing.T) {
	ctx := contextWithParams(
		gin.Param{Key: "order_id", Value: "7"},
		gin.Param{Key: "product_id", Value: "9"},
	)

	orderID, productID, err := GetIDParams(ctx, "order_id", "product_id")
	require.NoError(t, err)
	assert.Equal(t, uint(7), orderID)
	assert.Equal(t, uint(9), productID)

	ctx.Params[1].Value = "x"
	_, _, err = GetIDParams(ctx, "order_id", "product_id")
	assert.Error(t, err)
}

func TestGetRequestID(t *testing.T) {
	ctx := contextWithParams()
	assert.Equal(t, "unknown", GetRequestID(ctx))

	ctx.Set("request_id", "abc-123")
	assert.Equal(t, "abc-123", GetRequestID(ctx))
}
