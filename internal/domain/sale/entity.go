package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoItems         = errors.New("debe tener al menos un producto")
	ErrInvalidQuantity = errors.New("la cantidad debe ser mayor a 0")
	ErrNegativeTotal   = errors.New("el total no puede ser negativo")
	ErrEmptyCustomer   = errors.New("el cliente es requerido")
	ErrNegativeDebt    = errors.New("el monto de la deuda no puede ser negativo")
)

// ProductQuantity asocia un producto con la cantidad vendida.
// Es un valor embebido en la venta, nunca se comparte entre ventas.
type ProductQuantity struct {
	ProductID string `json:"product"`
	Quantity  int    `json:"quantity"`
}

// Sale representa una venta registrada. Una vez creada sólo se
// modifica por actualización parcial (por ejemplo para saldar un fiado).
type Sale struct {
	ID         string            `json:"id"`
	Items      []ProductQuantity `json:"products"`
	Total      decimal.Decimal   `json:"total"`
	CustomerID string            `json:"customer"`
	IsDebt     bool              `json:"is_debt"`
	DebtAmount *decimal.Decimal  `json:"debt_amount,omitempty"`
	DebtDate   *time.Time        `json:"debt_date,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

// NewSale crea una venta validando líneas, total y referencia al cliente.
// El total lo declara el llamador y no se recalcula a partir de los precios.
func NewSale(items []ProductQuantity, total decimal.Decimal, customerID string, isDebt bool, debtAmount *decimal.Decimal, debtDate *time.Time) (*Sale, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	for _, item := range items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	if total.IsNegative() {
		return nil, ErrNegativeTotal
	}

	if customerID == "" {
		return nil, ErrEmptyCustomer
	}

	if debtAmount != nil && debtAmount.IsNegative() {
		return nil, ErrNegativeDebt
	}

	return &Sale{
		ID:         uuid.New().String(),
		Items:      items,
		Total:      total,
		CustomerID: customerID,
		IsDebt:     isDebt,
		DebtAmount: debtAmount,
		DebtDate:   debtDate,
		CreatedAt:  time.Now(),
	}, nil
}

// Patch describe una actualización parcial de la venta.
// Los campos nulos se dejan como están.
type Patch struct {
	Items      []ProductQuantity
	Total      *decimal.Decimal
	CustomerID *string
	IsDebt     *bool
	DebtAmount *decimal.Decimal
	DebtDate   *time.Time
}

// Apply aplica el patch sobre la venta
func (s *Sale) Apply(p Patch) error {
	if p.Items != nil {
		if len(p.Items) == 0 {
			return ErrNoItems
		}
		for _, item := range p.Items {
			if item.Quantity < 1 {
				return ErrInvalidQuantity
			}
		}
		s.Items = p.Items
	}

	if p.Total != nil {
		if p.Total.IsNegative() {
			return ErrNegativeTotal
		}
		s.Total = *p.Total
	}

	if p.CustomerID != nil {
		if *p.CustomerID == "" {
			return ErrEmptyCustomer
		}
		s.CustomerID = *p.CustomerID
	}

	if p.IsDebt != nil {
		s.IsDebt = *p.IsDebt
	}

	if p.DebtAmount != nil {
		if p.DebtAmount.IsNegative() {
			return ErrNegativeDebt
		}
		s.DebtAmount = p.DebtAmount
	}

	if p.DebtDate != nil {
		s.DebtDate = p.DebtDate
	}

	return nil
}

// TodayRange devuelve el intervalo semiabierto [hoy, mañana) en la
// zona horaria local, usado para listar las ventas del día.
func TodayRange(now time.Time) (time.Time, time.Time) {
	year, month, day := now.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}
