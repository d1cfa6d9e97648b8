package domain

import (
	"context"

	"horizonx-storefront/internal/jsonx"
)

type Product struct {
	ID          jsonx.Int   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       jsonx.Float `json:"price"`
	Quantity    jsonx.Int   `json:"quantity"`
}

type ProductSaveRequest struct {
	Name        string `form:"name" validate:"required,max=100"`
	Description string `form:"description" validate:"omitempty,max=500"`
	Price       string `form:"price" validate:"required,numeric"`
	Quantity    string `form:"quantity" validate:"required,number"`
}

type ProductService interface {
	List(ctx context.Context, token string) ([]Product, error)
	Create(ctx context.Context, token string, req ProductSaveRequest) error
}
