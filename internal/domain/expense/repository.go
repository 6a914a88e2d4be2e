package expense

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Repository define las operaciones de persistencia y agregación de gastos.
// Los listados se devuelven ordenados por fecha descendente.
type Repository interface {
	Create(ctx context.Context, e *Expense) error
	FindByID(ctx context.Context, id string) (*Expense, error)
	List(ctx context.Context) ([]*Expense, error)
	FindByDateRange(ctx context.Context, from, to time.Time, inclusiveEnd bool) ([]*Expense, error)
	Update(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id string) error
	TotalAmount(ctx context.Context) (decimal.Decimal, error)
	TotalByCategory(ctx context.Context) ([]CategoryTotal, error)
}
