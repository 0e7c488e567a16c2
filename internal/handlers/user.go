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

func (h *Handler) CreateUsers(ctx *gin.Context) {
	body, ok := h.readJSON(ctx)

	if !ok {
		return
	}

	users, err := validation.Users(body)

	if err != nil {
		h.respondDecodeError(ctx, err)
		return
	}

	created, err := h.store.CreateUsers(ctx.Request.Context(), users)

	if err != nil {
		h.respondWriteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.NewUsersResponse(created))
}

func (h *Handler) ListUsers(ctx *gin.Context) {
	users, err := h.store.ListUsers(ctx.Request.Context())

	if err != nil {
		h.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewUsersResponse(users))
}

func (h *Handler) GetUser(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		message(ctx, http.StatusNotFound, "User not found")
		return
	}

	user, err := h.store.GetUser(ctx.Request.Context(), id)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			message(ctx, http.StatusNotFound, "User not found")
		} else {
			h.internalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, types.NewUserResponse(*user))
}

// UpdateUser replaces name, address and email. An omitted email clears it.
func (h *Handler) UpdateUser(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		message(ctx, http.StatusBadRequest, "Invalid User ID")
		return
	}

	if _, err := h.store.GetUser(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			message(ctx, http.StatusBadRequest, "Invalid User ID")
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

	user, err := validation.User(body)

	if err != nil {
		h.respondDecodeError(ctx, err)
		return
	}

	updated, err := h.store.UpdateUser(ctx.Request.Context(), id, user)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			message(ctx, http.StatusBadRequest, "Invalid User ID")
		} else {
			h.respondWriteError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, types.NewUserResponse(*updated))
}

// DeleteUser also removes every order of the user.
func (h *Handler) DeleteUser(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		message(ctx, http.StatusBadRequest, "Invalid User ID")
		return
	}

	if err := h.store.DeleteUser(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			message(ctx, http.StatusBadRequest, "Invalid User ID")
		} else {
			h.internalError(ctx, err)
		}
		return
	}

	message(ctx, http.StatusOK, "User deleted")
}
