package dto

import (
	"time"

	"github.com/davidmorac/asadero-pos/internal/domain/product"
	"github.com/shopspring/decimal"
)

// ProductRequest representa la requisición de creación o edición de producto
type ProductRequest struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock" binding:"min=0"`
}

// ProductPatchRequest representa la actualización parcial de un producto
type ProductPatchRequest struct {
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
	Stock *int             `json:"stock" binding:"omitempty,min=0"`
}

// StockAdjustmentRequest representa la requisición de ajuste de stock
type StockAdjustmentRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// ProductResponse representa la respuesta de producto
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToProductResponse convierte la entidad en respuesta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToProductListResponse convierte la lista de entidades en respuestas
func ToProductListResponse(products []*product.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ToProductResponse(p))
	}
	return responses
}
