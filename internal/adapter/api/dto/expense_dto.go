package dto

import (
	"time"

	"github.com/davidmorac/asadero-pos/internal/domain/expense"
	"github.com/shopspring/decimal"
)

// ExpenseRequest representa la requisición de creación o edición de gasto
type ExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date" binding:"required"`
	Notes       string          `json:"notes"`
}

// ExpensePatchRequest representa la actualización parcial de un gasto
type ExpensePatchRequest struct {
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *time.Time       `json:"date"`
	Notes       *string          `json:"notes"`
}

// ExpenseResponse representa la respuesta de gasto
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ExpenseTotalResponse representa el total de todos los gastos
type ExpenseTotalResponse struct {
	Total decimal.Decimal `json:"total"`
}

// CategoryTotalResponse representa el total de gastos de una categoría
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// ToExpenseResponse convierte la entidad en respuesta
func ToExpenseResponse(e *expense.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Category:    string(e.Category),
		Amount:      e.Amount,
		Date:        e.Date,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToExpenseListResponse convierte la lista de entidades en respuestas
func ToExpenseListResponse(expenses []*expense.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, ToExpenseResponse(e))
	}
	return responses
}

// ToCategoryTotalResponse convierte los agregados por categoría en respuestas
func ToCategoryTotalResponse(totals []expense.CategoryTotal) []CategoryTotalResponse {
	responses := make([]CategoryTotalResponse, 0, len(totals))
	for _, t := range totals {
		responses = append(responses, CategoryTotalResponse{
			Category: string(t.Category),
			Total:    t.Total,
		})
	}
	return responses
}
