package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/storefront-dev/storefront/internal/store"
	"github.com/storefront-dev/storefront/internal/types"
	"github.com/storefront-dev/storefront/internal/utils"
	"github.com/storefront-dev/storefront/internal/validation"
)

func (h *Handler) CreateProducts(ctx *gin.Context) {
	body, ok := h.readJSON(ctx)

	if !ok {
		return
	}

	products, err := validation.Products(body)

	if err != nil {
		h.respondDecodeError(ctx, err)
		return
	}

	created, err := h.store.CreateProducts(ctx.Request.Context(), products)

	if err != nil {
		h.respondWriteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.NewProductsResponse(created))
}

func (h *Handler) ListProducts(ctx *gin.Context) {
	products, err := h.store.ListProducts(ctx.Request.Context())

	if err != nil {
		h.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewProductsResponse(products))
}

func (h *Handler) GetProduct(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		message(ctx, http.StatusNotFound, "Product not found")
		return
	}

	product, err := h.store.GetProduct(ctx.Request.Context(), id)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			message(ctx, http.StatusNotFound, "Product not found")
		} else {
			h.internalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, types.NewProductResponse(*product))
}

func (h *Handler) UpdateProduct(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		message(ctx, http.StatusBadRequest, "Invalid Product ID")
		return
	}

	if _, err := h.store.GetProduct(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			message(ctx, http.StatusBadRequest, "Invalid Product ID")
		} else {
			h.internalError(ctx, err)
		}
		return
	}

	body, ok := h.readJSON(ctx)

	if !ok {
		return
	}

	if !json.Valid(body) {
		h.respondDecodeError(ctx, validation.ErrMalformedJSON)
		return
	}

	product, err := validation.Product(body)

	if err != nil {
		h.respondDecodeError(ctx, err)
		return
	}

	updated, err := h.store.UpdateProduct(ctx.Request.Context(), id, product)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			message(ctx, http.StatusBadRequest, "Invalid Product ID")
		} else {
			h.respondWriteError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, types.NewProductResponse(*updated))
}

// DeleteProduct detaches the product from every order before removing it.
func (h *Handler) DeleteProduct(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		message(ctx, http.StatusBadRequest, "Invalid Product ID")
		return
	}

	if err := h.store.DeleteProduct(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			message(ctx, http.StatusBadRequest, "Invalid Product ID")
		} else {
			h.internalError(ctx, err)
		}
		return
	}

	message(ctx, http.StatusOK, "Product deleted")
}
