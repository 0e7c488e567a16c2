package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/storefront-dev/storefront/internal/store"
	"github.com/storefront-dev/storefront/internal/types"
	"github.com/storefront-dev/storefront/internal/utils"
	"github.com/storefront-dev/storefront/internal/validation"
)

func (h *Handler) CreateOrder(ctx *gin.Context) {
	body, ok := h.readJSON(ctx)

	if !ok {
		return
	}

	input, err := validation.Order(ctx.Request.Context(), body, h.store)

	if err != nil {
		h.respondDecodeError(ctx, err)
		return
	}

	order, err := h.store.CreateOrder(ctx.Request.Context(), input.UserID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusBadRequest, validation.FieldError("user_id", "User does not exist."))
		} else {
			h.internalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusCreated, types.NewOrderResponse(*order))
}

func (h *Handler) ListOrders(ctx *gin.Context) {
	orders, err := h.store.ListOrders(ctx.Request.Context())

	if err != nil {
		h.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewOrdersResponse(orders))
}

func (h *Handler) GetOrder(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "order_id")

	if err != nil {
		message(ctx, http.StatusNotFound, "Order not found")
		return
	}

	order, err := h.store.GetOrder(ctx.Request.Context(), id)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			message(ctx, http.StatusNotFound, "Order not found")
		} else {
			h.internalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, types.NewOrderWithProductsResponse(*order))
}

func (h *Handler) DeleteOrder(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "order_id")

	if err != nil {
		message(ctx, http.StatusBadRequest, "Invalid Order ID")
		return
	}

	if err := h.store.DeleteOrder(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			message(ctx, http.StatusBadRequest, "Invalid Order ID")
		} else {
			h.internalError(ctx, err)
		}
		return
	}

	message(ctx, http.StatusOK, "Order deleted")
}

func (h *Handler) AddProductToOrder(ctx *gin.Context) {
	orderID, productID, err := utils.GetIDParams(ctx, "order_id", "product_id")

	if err != nil {
		message(ctx, http.StatusNotFound, "Order or Product not found")
		return
	}

	order, err := h.store.AddProductToOrder(ctx.Request.Context(), orderID, productID)

	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			message(ctx, http.StatusNotFound, "Order or Product not found")
		case errors.Is(err, store.ErrAlreadyAssociated):
			message(ctx, http.StatusBadRequest, "Product already in order")
		default:
			h.internalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, types.NewOrderWithProductsResponse(*order))
}

func (h *Handler) RemoveProductFromOrder(ctx *gin.Context) {
	orderID, productID, err := utils.GetIDParams(ctx, "order_id", "product_id")

	if err != nil {
		message(ctx, http.StatusNotFound, "Order or Product not found")
		return
	}

	err = h.store.RemoveProductFromOrder(ctx.Request.Context(), orderID, productID)

	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			message(ctx, http.StatusNotFound, "Order or Product not found")
		case errors.Is(err, store.ErrNotAssociated):
			message(ctx, http.StatusBadRequest, "Product not in order")
		default:
			h.internalError(ctx, err)
		}
		return
	}

	message(ctx, http.StatusOK, "Product removed from order")
}

func (h *Handler) GetOrdersForUser(ctx *gin.Context) {
	userID, err := utils.GetIDParam(ctx, "user_id")

	if err != nil {
		message(ctx, http.StatusNotFound, "User not found")
		return
	}

	orders, err := h.store.ListOrdersForUser(ctx.Request.Context(), userID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			message(ctx, http.StatusNotFound, "User not found")
		} else {
			h.internalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, types.NewOrdersResponse(orders))
}

func (h *Handler) GetProductsForOrder(ctx *gin.Context) {
	orderID, err := utils.GetIDParam(ctx, "order_id")

	if err != nil {
		message(ctx, http.StatusNotFound, "Order not found")
		return
	}

	products, err := h.store.ListProductsForOrder(ctx.Request.Context(), orderID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			message(ctx, http.StatusNotFound, "Order not found")
		} else {
			h.internalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, types.NewProductsResponse(products))
}
