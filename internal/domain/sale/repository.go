package sale

import (
	"context"
	"time"
)

// Repository define las operaciones de persistencia de ventas
type Repository interface {
	Create(ctx context.Context, s *Sale) error
	FindByID(ctx context.Context, id string) (*Sale, error)
	List(ctx context.Context) ([]*Sale, error)
	FindByCustomer(ctx context.Context, customerID string) ([]*Sale, error)
	FindByCreatedRange(ctx context.Context, from, to time.Time) ([]*Sale, error)
	FindDebts(ctx context.Context) ([]*Sale, error)
	Update(ctx context.Context, s *Sale) error
	Delete(ctx context.Context, id string) error
}
