package sale

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewSale(t *testing.T) {
	customerID := uuid.New().String()
	productID := uuid.New().String()

	t.Run("crea una venta válida", func(t *testing.T) {
		s, err := NewSale([]ProductQuantity{{ProductID: productID, Quantity: 2}},
			decimal.NewFromInt(50000), customerID, false, nil, nil)

		assert.NoError(t, err)
		assert.NotEmpty(t, s.ID)
		assert.Len(t, s.Items, 1)
		assert.False(t, s.CreatedAt.IsZero())
	})

	t.Run("rechaza ventas sin productos", func(t *testing.T) {
		_, err := NewSale(nil, decimal.NewFromInt(100), customerID, false, nil, nil)
		assert.ErrorIs(t, err, ErrNoItems)
	})

	t.Run("rechaza cantidades menores a 1", func(t *testing.T) {
		_, err := NewSale([]ProductQuantity{{ProductID: productID, Quantity: 0}},
			decimal.NewFromInt(100), customerID, false, nil, nil)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("rechaza total negativo", func(t *testing.T) {
		_, err := NewSale([]ProductQuantity{{ProductID: productID, Quantity: 1}},
			decimal.NewFromInt(-1), customerID, false, nil, nil)
		assert.ErrorIs(t, err, ErrNegativeTotal)
	})

	t.Run("permite fiado sin monto ni fecha de deuda", func(t *testing.T) {
		s, err := NewSale([]ProductQuantity{{ProductID: productID, Quantity: 1}},
			decimal.NewFromInt(100), customerID, true, nil, nil)

		assert.NoError(t, err)
		assert.True(t, s.IsDebt)
		assert.Nil(t, s.DebtAmount)
		assert.Nil(t, s.DebtDate)
	})
}

func TestApplyPatch(t *testing.T) {
	newSale := func(t *testing.T) *Sale {
		t.Helper()
		amount := decimal.NewFromInt(50000)
		s, err := NewSale([]ProductQuantity{{ProductID: uuid.New().String(), Quantity: 2}},
			amount, uuid.New().String(), true, &amount, nil)
		assert.NoError(t, err)
		return s
	}

	t.Run("los campos nulos no cambian la venta", func(t *testing.T) {
		s := newSale(t)
		before := *s

		assert.NoError(t, s.Apply(Patch{}))
		assert.Equal(t, before.Items, s.Items)
		assert.Equal(t, before.IsDebt, s.IsDebt)
		assert.True(t, before.Total.Equal(s.Total))
	})

	t.Run("apaga is_debt sin tocar el resto", func(t *testing.T) {
		s := newSale(t)
		paid := false

		assert.NoError(t, s.Apply(Patch{IsDebt: &paid}))
		assert.False(t, s.IsDebt)
		assert.True(t, decimal.NewFromInt(50000).Equal(s.Total))
	})

	t.Run("valida las líneas nuevas", func(t *testing.T) {
		s := newSale(t)

		err := s.Apply(Patch{Items: []ProductQuantity{}})
		assert.ErrorIs(t, err, ErrNoItems)

		err = s.Apply(Patch{Items: []ProductQuantity{{ProductID: uuid.New().String(), Quantity: -1}}})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestTodayRange(t *testing.T) {
	loc := time.FixedZone("COT", -5*3600)
	now := time.Date(2025, 6, 15, 18, 20, 3, 0, loc)

	from, to := TodayRange(now)

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, loc), to)

	// una venta de ayer a las 23:59:59.999 queda fuera del intervalo
	yesterday := time.Date(2025, 6, 14, 23, 59, 59, 999000000, loc)
	assert.True(t, yesterday.Before(from))
}
