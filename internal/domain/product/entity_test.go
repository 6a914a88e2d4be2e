package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewProduct(t *testing.T) {
	t.Run("crea un producto válido con sus campos intactos", func(t *testing.T) {
		p, err := NewProduct("Pollo Asado", decimal.NewFromInt(22000), 50)

		assert.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "Pollo Asado", p.Name)
		assert.True(t, decimal.NewFromInt(22000).Equal(p.Price))
		assert.Equal(t, 50, p.Stock)
		assert.False(t, p.CreatedAt.IsZero())
	})

	t.Run("recorta espacios del nombre", func(t *testing.T) {
		p, err := NewProduct("  Pollo Frito  ", decimal.NewFromInt(18000), 0)

		assert.NoError(t, err)
		assert.Equal(t, "Pollo Frito", p.Name)
	})

	t.Run("rechaza nombres fuera de rango", func(t *testing.T) {
		_, err := NewProduct("Ala", decimal.NewFromInt(1000), 0)
		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("rechaza precio negativo", func(t *testing.T) {
		_, err := NewProduct("Pollo Asado", decimal.NewFromInt(-1), 0)
		assert.ErrorIs(t, err, ErrNegativePrice)
	})

	t.Run("rechaza stock negativo", func(t *testing.T) {
		_, err := NewProduct("Pollo Asado", decimal.NewFromInt(1000), -1)
		assert.ErrorIs(t, err, ErrNegativeStock)
	})
}

func TestAdjustStock(t *testing.T) {
	t.Run("suma y resta exactamente el delta", func(t *testing.T) {
		p, _ := NewProduct("Pollo Asado", decimal.NewFromInt(22000), 10)

		assert.NoError(t, p.AdjustStock(5))
		assert.Equal(t, 15, p.Stock)

		assert.NoError(t, p.AdjustStock(-15))
		assert.Equal(t, 0, p.Stock)
	})

	t.Run("falla sin modificar el stock cuando quedaría negativo", func(t *testing.T) {
		p, _ := NewProduct("Pollo Asado", decimal.NewFromInt(22000), 3)

		err := p.AdjustStock(-4)

		assert.ErrorIs(t, err, ErrInsufficientStock)
		assert.Equal(t, 3, p.Stock)
	})
}
