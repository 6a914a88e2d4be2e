package expense

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyDescription = errors.New("la descripción es requerida")
	ErrInvalidCategory  = errors.New("categoría de gasto inválida")
	ErrNegativeAmount   = errors.New("el monto no puede ser negativo")
	ErrZeroDate         = errors.New("la fecha es requerida")
)

// Category es la categoría cerrada de un gasto
type Category string

const (
	CategoryPollo        Category = "pollo"
	CategoryCombos       Category = "combos"
	CategoryAcompanantes Category = "acompanantes"
	CategorySalsas       Category = "salsas"
	CategoryCerdo        Category = "cerdo"
	CategoryPasteles     Category = "pasteles"
	CategoryBebidas      Category = "bebidas"
	CategoryAdicionales  Category = "adicionales"
	CategoryInsumos      Category = "insumos"
	CategoryDelivery     Category = "delivery"
	CategoryOtros        Category = "otros"
)

// Categories lista todas las categorías válidas
var Categories = []Category{
	CategoryPollo, CategoryCombos, CategoryAcompanantes, CategorySalsas,
	CategoryCerdo, CategoryPasteles, CategoryBebidas, CategoryAdicionales,
	CategoryInsumos, CategoryDelivery, CategoryOtros,
}

// IsValid verifica que la categoría pertenezca a la enumeración
func (c Category) IsValid() bool {
	for _, valid := range Categories {
		if c == valid {
			return true
		}
	}
	return false
}

// Expense representa un gasto del negocio
type Expense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CategoryTotal es el agregado de gastos por categoría
type CategoryTotal struct {
	Category Category        `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// NewExpense crea un nuevo gasto validando sus datos
func NewExpense(description string, category Category, amount decimal.Decimal, date time.Time, notes string) (*Expense, error) {
	e := &Expense{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
	}

	if err := e.fill(description, category, amount, date, notes); err != nil {
		return nil, err
	}

	return e, nil
}

// Update actualiza los datos del gasto
func (e *Expense) Update(description string, category Category, amount decimal.Decimal, date time.Time, notes string) error {
	return e.fill(description, category, amount, date, notes)
}

func (e *Expense) fill(description string, category Category, amount decimal.Decimal, date time.Time, notes string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return ErrEmptyDescription
	}

	if !category.IsValid() {
		return ErrInvalidCategory
	}

	if amount.IsNegative() {
		return ErrNegativeAmount
	}

	if date.IsZero() {
		return ErrZeroDate
	}

	e.Description = description
	e.Category = category
	e.Amount = amount
	e.Date = date
	e.Notes = strings.TrimSpace(notes)
	e.UpdatedAt = time.Now()

	return nil
}

// TodayRangeUTC devuelve el intervalo semiabierto [hoy, mañana) con el
// día calculado en UTC, usado para listar los gastos de hoy.
func TodayRangeUTC(now time.Time) (time.Time, time.Time) {
	year, month, day := now.UTC().Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// DayRange devuelve el rango cerrado [startDate 00:00:00.000Z, endDate 23:59:59.999Z]
// a partir de fechas en formato 2006-01-02
func DayRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02", startDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end, err := time.ParseInLocation("2006-01-02", endDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end = end.Add(24*time.Hour - time.Millisecond)
	return start, end, nil
}
