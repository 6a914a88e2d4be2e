package dto

import (
	"time"

	"github.com/davidmorac/asadero-pos/internal/domain/customer"
)

// CustomerRequest representa la requisición de creación o edición de cliente
type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email" binding:"omitempty,email"`
	Notes   string `json:"notes"`
}

// CustomerPatchRequest representa la actualización parcial de un cliente
type CustomerPatchRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Notes   *string `json:"notes"`
}

// CustomerResponse representa la respuesta de cliente
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Email     string    `json:"email,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCustomerResponse convierte la entidad en respuesta
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCustomerListResponse convierte la lista de entidades en respuestas
func ToCustomerListResponse(customers []*customer.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, ToCustomerResponse(c))
	}
	return responses
}
