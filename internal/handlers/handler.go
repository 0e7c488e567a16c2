package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/storefront-dev/storefront/internal/models"
	"github.com/storefront-dev/storefront/internal/store"
	"github.com/storefront-dev/storefront/internal/types"
	"github.com/storefront-dev/storefront/internal/utils"
	"github.com/storefront-dev/storefront/internal/validation"
)

// Store is the persistence gateway the handlers depend on.
type Store interface {
	Ping(ctx context.Context) error

	CreateUsers(ctx context.Context, users []models.User) ([]models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	UserExists(ctx context.Context, id uint) (bool, error)
	UpdateUser(ctx context.Context, id uint, user models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id uint) error

	CreateProducts(ctx context.Context, products []models.Product) ([]models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uint, product models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint) error

	CreateOrder(ctx context.Context, userID uint) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id uint) (*models.Order, error)
	DeleteOrder(ctx context.Context, id uint) error
	ListOrdersForUser(ctx context.Context, userID uint) ([]models.Order, error)
	ListProductsForOrder(ctx context.Context, orderID uint) ([]models.Product, error)
	AddProductToOrder(ctx context.Context, orderID, productID uint) (*models.Order, error)
	RemoveProductFromOrder(ctx context.Context, orderID, productID uint) error
}

type Handler struct {
	store  Store
	logger zerolog.Logger
}

func New(store Store, logger zerolog.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// MaxBodyBytes caps every JSON request body.
const MaxBodyBytes = 1 << 20

// readJSON returns the raw body of a JSON request. Anything that is not
// declared as JSON is rejected with 415, anything over MaxBodyBytes with 413.
func (h *Handler) readJSON(ctx *gin.Context) ([]byte, bool) {
	if ctx.ContentType() != gin.MIMEJSON {
		ctx.JSON(http.StatusUnsupportedMediaType, types.ErrorResponse{Error: "Request must be JSON"})
		return nil, false
	}

	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, MaxBodyBytes)

	body, err := ctx.GetRawData()

	if err != nil {
		var tooLarge *http.MaxBytesError

		if errors.As(err, &tooLarge) {
			ctx.JSON(http.StatusRequestEntityTooLarge, types.ErrorResponse{Error: "Request body too large"})
		} else {
			ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid request"})
		}
		return nil, false
	}

	return body, true
}

// respondDecodeError maps a validation package error to its response.
func (h *Handler) respondDecodeError(ctx *gin.Context, err error) {
	var verr *validation.Error
	var envelopeErr *validation.EnvelopeError

	switch {
	case errors.Is(err, validation.ErrMalformedJSON):
		ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid JSON"})
	case errors.As(err, &envelopeErr):
		ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: envelopeErr.Error()})
	case errors.As(err, &verr):
		ctx.JSON(http.StatusBadRequest, verr)
	default:
		h.internalError(ctx, err)
	}
}

// respondWriteError handles the errors a gateway write can return apart
// from ErrNotFound, which each handler maps itself.
func (h *Handler) respondWriteError(ctx *gin.Context, err error) {
	var violation *store.ConstraintViolation

	if errors.As(err, &violation) {
		ctx.JSON(http.StatusBadRequest, validation.FieldError(violation.Field, violation.Message))
		return
	}

	h.internalError(ctx, err)
}

func (h *Handler) internalError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)

	h.logger.Error().
		Err(err).
		Str("request_id", utils.GetRequestID(ctx)).
		Str("path", ctx.FullPath()).
		Msg("persistence failure")

	ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
}

func message(ctx *gin.Context, status int, text string) {
	ctx.JSON(status, types.MessageResponse{Message: text})
}
