package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidName       = errors.New("el nombre debe tener entre 5 y 60 caracteres")
	ErrNegativePrice     = errors.New("el precio no puede ser negativo")
	ErrNegativeStock     = errors.New("el stock no puede ser negativo")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// Product representa un producto del catálogo
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewProduct crea un nuevo producto validando sus datos
func NewProduct(name string, price decimal.Decimal, stock int) (*Product, error) {
	name = strings.TrimSpace(name)
	if len(name) < 5 || len(name) > 60 {
		return nil, ErrInvalidName
	}

	if price.IsNegative() {
		return nil, ErrNegativePrice
	}

	if stock < 0 {
		return nil, ErrNegativeStock
	}

	now := time.Now()
	return &Product{
		ID:        uuid.New().String(),
		Name:      name,
		Price:     price,
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update actualiza los datos del producto
func (p *Product) Update(name string, price decimal.Decimal, stock int) error {
	name = strings.TrimSpace(name)
	if len(name) < 5 || len(name) > 60 {
		return ErrInvalidName
	}

	if price.IsNegative() {
		return ErrNegativePrice
	}

	if stock < 0 {
		return ErrNegativeStock
	}

	p.Name = name
	p.Price = price
	p.Stock = stock
	p.UpdatedAt = time.Now()

	return nil
}

// AdjustStock suma el delta al stock actual; falla si el resultado queda negativo
func (p *Product) AdjustStock(delta int) error {
	newStock := p.Stock + delta
	if newStock < 0 {
		return fmt.Errorf("%w para el producto %s: actual %d, requerido %d",
			ErrInsufficientStock, p.Name, p.Stock, -delta)
	}

	p.Stock = newStock
	p.UpdatedAt = time.Now()

	return nil
}
