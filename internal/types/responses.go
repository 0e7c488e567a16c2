package types

import (
	"encoding/json"
	"time"

	"github.com/storefront-dev/storefront/internal/models"
)

type UserResponse struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Email   *string `json:"email"`
}

type ProductResponse struct {
	ID          uint   `json:"id"`
	ProductName string `json:"product_name"`
	// Price is emitted as a JSON number with exactly two decimals.
	Price json.Number `json:"price"`
}

type OrderResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	OrderDate time.Time `json:"order_date"`
}

type OrderWithProductsResponse struct {
	OrderResponse
	Products []ProductResponse `json:"products"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Address: user.Address,
		Email:   user.Email,
	}
}

func NewUsersResponse(users []models.User) []UserResponse {
	response := make([]UserResponse, 0, len(users))

	for _, user := range users {
		response = append(response, NewUserResponse(user))
	}

	return response
}

func NewProductResponse(product models.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		ProductName: product.ProductName,
		Price:       json.Number(product.Price.StringFixed(models.PriceScale)),
	}
}

func NewProductsResponse(products []models.Product) []ProductResponse {
	response := make([]ProductResponse, 0, len(products))

	for _, product := range products {
		response = append(response, NewProductResponse(product))
	}

	return response
}

func NewOrderResponse(order models.Order) OrderResponse {
	return OrderResponse{
		ID:        order.ID,
		UserID:    order.UserID,
		OrderDate: order.OrderDate,
	}
}

func NewOrdersResponse(orders []models.Order) []OrderResponse {
	response := make([]OrderResponse, 0, len(orders))

	for _, order := range orders {
		response = append(response, NewOrderResponse(order))
	}

	return response
}

func NewOrderWithProductsResponse(order models.Order) OrderWithProductsResponse {
	return OrderWithProductsResponse{
		OrderResponse: NewOrderResponse(order),
		Products:      NewProductsResponse(order.Products),
	}
}
