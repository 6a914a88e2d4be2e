package dto

import (
	"time"

	"github.com/davidmorac/asadero-pos/internal/domain/sale"
	"github.com/shopspring/decimal"
)

// ProductQuantityRequest representa una línea de venta
type ProductQuantityRequest struct {
	Product  string `json:"product" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// SaleRequest representa la requisición de registro de venta
type SaleRequest struct {
	Products   []ProductQuantityRequest `json:"products" binding:"required,min=1,dive"`
	Total      decimal.Decimal          `json:"total"`
	Customer   string                   `json:"customer" binding:"required"`
	IsDebt     *bool                    `json:"is_debt" binding:"required"`
	DebtAmount *decimal.Decimal         `json:"debt_amount"`
	DebtDate   *time.Time               `json:"debt_date"`
}

// SalePatchRequest representa la actualización parcial de una venta
type SalePatchRequest struct {
	Products   []ProductQuantityRequest `json:"products" binding:"omitempty,min=1,dive"`
	Total      *decimal.Decimal         `json:"total"`
	Customer   *string                  `json:"customer"`
	IsDebt     *bool                    `json:"is_debt"`
	DebtAmount *decimal.Decimal         `json:"debt_amount"`
	DebtDate   *time.Time               `json:"debt_date"`
}

// SaleResponse representa la respuesta de venta
type SaleResponse struct {
	ID         string                   `json:"id"`
	Products   []ProductQuantityRequest `json:"products"`
	Total      decimal.Decimal          `json:"total"`
	Customer   string                   `json:"customer"`
	IsDebt     bool                     `json:"is_debt"`
	DebtAmount *decimal.Decimal         `json:"debt_amount,omitempty"`
	DebtDate   *time.Time               `json:"debt_date,omitempty"`
	CreatedAt  time.Time                `json:"created_at"`
}

// ToSaleItems convierte las líneas de la requisición al valor de dominio
func ToSaleItems(items []ProductQuantityRequest) []sale.ProductQuantity {
	result := make([]sale.ProductQuantity, 0, len(items))
	for _, item := range items {
		result = append(result, sale.ProductQuantity{
			ProductID: item.Product,
			Quantity:  item.Quantity,
		})
	}
	return result
}

// ToSaleResponse convierte la entidad en respuesta
func ToSaleResponse(s *sale.Sale) SaleResponse {
	items := make([]ProductQuantityRequest, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, ProductQuantityRequest{
			Product:  item.ProductID,
			Quantity: item.Quantity,
		})
	}

	return SaleResponse{
		ID:         s.ID,
		Products:   items,
		Total:      s.Total,
		Customer:   s.CustomerID,
		IsDebt:     s.IsDebt,
		DebtAmount: s.DebtAmount,
		DebtDate:   s.DebtDate,
		CreatedAt:  s.CreatedAt,
	}
}

// ToSaleListResponse convierte la lista de entidades en respuestas
func ToSaleListResponse(sales []*sale.Sale) []SaleResponse {
	responses := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		responses = append(responses, ToSaleResponse(s))
	}
	return responses
}
