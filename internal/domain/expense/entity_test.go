package expense

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewExpense(t *testing.T) {
	date := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)

	t.Run("crea un gasto válido", func(t *testing.T) {
		e, err := NewExpense("Compra de pollo", CategoryPollo, decimal.NewFromInt(100000), date, "proveedor de siempre")

		assert.NoError(t, err)
		assert.NotEmpty(t, e.ID)
		assert.Equal(t, CategoryPollo, e.Category)
		assert.Equal(t, date, e.Date)
	})

	t.Run("rechaza categorías fuera de la enumeración", func(t *testing.T) {
		_, err := NewExpense("Compra", Category("verduras"), decimal.NewFromInt(100), date, "")
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})

	t.Run("rechaza montos negativos", func(t *testing.T) {
		_, err := NewExpense("Compra", CategoryOtros, decimal.NewFromInt(-5), date, "")
		assert.ErrorIs(t, err, ErrNegativeAmount)
	})

	t.Run("rechaza descripción vacía", func(t *testing.T) {
		_, err := NewExpense("   ", CategoryOtros, decimal.NewFromInt(5), date, "")
		assert.ErrorIs(t, err, ErrEmptyDescription)
	})
}

func TestCategoryIsValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.IsValid(), "categoría %s", c)
	}
	assert.False(t, Category("chicken").IsValid())
	assert.False(t, Category("").IsValid())
}

func TestTodayRangeUTC(t *testing.T) {
	now := time.Date(2025, 6, 15, 22, 45, 10, 0, time.FixedZone("COT", -5*3600))

	from, to := TodayRangeUTC(now)

	// 22:45 COT son las 03:45 UTC del día siguiente
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC), to)
}

func TestDayRange(t *testing.T) {
	t.Run("rango inclusivo en ambos extremos", func(t *testing.T) {
		from, to, err := DayRange("2025-06-01", "2025-06-30")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2025, 6, 30, 23, 59, 59, 999000000, time.UTC), to)
	})

	t.Run("rechaza fechas mal formadas", func(t *testing.T) {
		_, _, err := DayRange("01/06/2025", "2025-06-30")
		assert.Error(t, err)
	})
}
