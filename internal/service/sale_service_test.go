package service

import (
	"context"
	"testing"
	"time"

	"github.com/davidmorac/asadero-pos/internal/adapter/repository"
	"github.com/davidmorac/asadero-pos/internal/domain/customer"
	"github.com/davidmorac/asadero-pos/internal/domain/product"
	"github.com/davidmorac/asadero-pos/internal/domain/sale"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sale.Sale), args.Error(1)
}

func (m *MockSaleRepository) List(ctx context.Context) ([]*sale.Sale, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*sale.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindByCustomer(ctx context.Context, customerID string) ([]*sale.Sale, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]*sale.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindByCreatedRange(ctx context.Context, from, to time.Time) ([]*sale.Sale, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]*sale.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindDebts(ctx context.Context) ([]*sale.Sale, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*sale.Sale), args.Error(1)
}

func (m *MockSaleRepository) Update(ctx context.Context, s *sale.Sale) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSaleRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer("Ana Ruiz", "", "", "", "")
	assert.NoError(t, err)
	return c
}

func newTestProduct(t *testing.T, name string, price int64, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(name, decimal.NewFromInt(price), stock)
	assert.NoError(t, err)
	return p
}

func newTestSale(t *testing.T, customerID string, items []sale.ProductQuantity, total int64, isDebt bool) *sale.Sale {
	t.Helper()
	s, err := sale.NewSale(items, decimal.NewFromInt(total), customerID, isDebt, nil, nil)
	assert.NoError(t, err)
	return s
}

func TestRecordSale(t *testing.T) {
	ctx := context.Background()

	t.Run("persiste la venta cuando cliente y productos existen", func(t *testing.T) {
		sales := new(MockSaleRepository)
		customers := new(MockCustomerRepository)
		products := new(MockProductRepository)
		svc := NewSaleService(sales, customers, products)

		c := newTestCustomer(t)
		p := newTestProduct(t, "Pollo Asado", 25000, 10)
		v := newTestSale(t, c.ID, []sale.ProductQuantity{{ProductID: p.ID, Quantity: 2}}, 50000, false)

		customers.On("FindByID", ctx, c.ID).Return(c, nil)
		products.On("FindByID", ctx, p.ID).Return(p, nil)
		sales.On("Create", ctx, v).Return(nil)

		got, err := svc.RecordSale(ctx, v)

		assert.NoError(t, err)
		assert.Equal(t, v.ID, got.ID)
		assert.Len(t, got.Items, 1)
		assert.Equal(t, 2, got.Items[0].Quantity)
		assert.True(t, decimal.NewFromInt(50000).Equal(got.Total))
		assert.False(t, got.IsDebt)
		// el stock del producto no cambia al registrar la venta
		assert.Equal(t, 10, p.Stock)
		sales.AssertExpectations(t)
	})

	t.Run("falla con cliente inexistente sin persistir nada", func(t *testing.T) {
		sales := new(MockSaleRepository)
		customers := new(MockCustomerRepository)
		products := new(MockProductRepository)
		svc := NewSaleService(sales, customers, products)

		v := newTestSale(t, uuid.New().String(), []sale.ProductQuantity{{ProductID: uuid.New().String(), Quantity: 1}}, 1000, false)

		customers.On("FindByID", ctx, v.CustomerID).Return(nil, repository.ErrCustomerNotFound)

		_, err := svc.RecordSale(ctx, v)

		assert.ErrorIs(t, err, repository.ErrCustomerNotFound)
		sales.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		products.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("falla si algún producto no existe, antes de escribir", func(t *testing.T) {
		sales := new(MockSaleRepository)
		customers := new(MockCustomerRepository)
		products := new(MockProductRepository)
		svc := NewSaleService(sales, customers, products)

		c := newTestCustomer(t)
		p := newTestProduct(t, "Pollo Frito", 18000, 5)
		missing := uuid.New().String()
		v := newTestSale(t, c.ID, []sale.ProductQuantity{
			{ProductID: p.ID, Quantity: 1},
			{ProductID: missing, Quantity: 3},
		}, 30000, false)

		customers.On("FindByID", ctx, c.ID).Return(c, nil)
		products.On("FindByID", ctx, p.ID).Return(p, nil)
		products.On("FindByID", ctx, missing).Return(nil, repository.ErrProductNotFound)

		_, err := svc.RecordSale(ctx, v)

		assert.ErrorIs(t, err, repository.ErrProductNotFound)
		sales.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("guarda el total declarado sin recalcularlo", func(t *testing.T) {
		sales := new(MockSaleRepository)
		customers := new(MockCustomerRepository)
		products := new(MockProductRepository)
		svc := NewSaleService(sales, customers, products)

		c := newTestCustomer(t)
		p := newTestProduct(t, "Pollo a la Parrilla", 25000, 3)
		// total arbitrario, distinto de precio x cantidad
		v := newTestSale(t, c.ID, []sale.ProductQuantity{{ProductID: p.ID, Quantity: 2}}, 99, false)

		customers.On("FindByID", ctx, c.ID).Return(c, nil)
		products.On("FindByID", ctx, p.ID).Return(p, nil)
		sales.On("Create", ctx, v).Return(nil)

		got, err := svc.RecordSale(ctx, v)

		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(99).Equal(got.Total))
	})
}

func TestFindByCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("resuelve el cliente antes de listar", func(t *testing.T) {
		sales := new(MockSaleRepository)
		customers := new(MockCustomerRepository)
		products := new(MockProductRepository)
		svc := NewSaleService(sales, customers, products)

		c := newTestCustomer(t)
		customers.On("FindByID", ctx, c.ID).Return(c, nil)
		sales.On("FindByCustomer", ctx, c.ID).Return([]*sale.Sale{}, nil)

		got, err := svc.FindByCustomer(ctx, c.ID)

		assert.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("falla con cliente inexistente", func(t *testing.T) {
		sales := new(MockSaleRepository)
		customers := new(MockCustomerRepository)
		products := new(MockProductRepository)
		svc := NewSaleService(sales, customers, products)

		id := uuid.New().String()
		customers.On("FindByID", ctx, id).Return(nil, repository.ErrCustomerNotFound)

		_, err := svc.FindByCustomer(ctx, id)

		assert.ErrorIs(t, err, repository.ErrCustomerNotFound)
		sales.AssertNotCalled(t, "FindByCustomer", mock.Anything, mock.Anything)
	})
}

func TestFindOne(t *testing.T) {
	ctx := context.Background()

	t.Run("la venta sigue accesible aunque el cliente ya no exista", func(t *testing.T) {
		sales := new(MockSaleRepository)
		customers := new(MockCustomerRepository)
		products := new(MockProductRepository)
		svc := NewSaleService(sales, customers, products)

		// referencia colgante: el cliente fue eliminado después de la venta
		deletedCustomerID := uuid.New().String()
		v := newTestSale(t, deletedCustomerID, []sale.ProductQuantity{{ProductID: uuid.New().String(), Quantity: 1}}, 22000, true)

		sales.On("FindByID", ctx, v.ID).Return(v, nil)

		got, err := svc.FindOne(ctx, v.ID)

		assert.NoError(t, err)
		assert.Equal(t, deletedCustomerID, got.CustomerID)
		customers.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("falla con venta inexistente", func(t *testing.T) {
		sales := new(MockSaleRepository)
		customers := new(MockCustomerRepository)
		products := new(MockProductRepository)
		svc := NewSaleService(sales, customers, products)

		id := uuid.New().String()
		sales.On("FindByID", ctx, id).Return(nil, repository.ErrSaleNotFound)

		_, err := svc.FindOne(ctx, id)

		assert.ErrorIs(t, err, repository.ErrSaleNotFound)
	})
}

func TestUpdateSale(t *testing.T) {
	ctx := context.Background()

	t.Run("apaga is_debt al saldar un fiado", func(t *testing.T) {
		sales := new(MockSaleRepository)
		customers := new(MockCustomerRepository)
		products := new(MockProductRepository)
		svc := NewSaleService(sales, customers, products)

		c := newTestCustomer(t)
		p := newTestProduct(t, "Pollo Asado", 25000, 10)
		amount := decimal.NewFromInt(50000)
		v, err := sale.NewSale([]sale.ProductQuantity{{ProductID: p.ID, Quantity: 2}},
			amount, c.ID, true, &amount, nil)
		assert.NoError(t, err)

		sales.On("FindByID", ctx, v.ID).Return(v, nil)
		sales.On("Update", ctx, v).Return(nil)

		paid := false
		got, err := svc.Update(ctx, v.ID, sale.Patch{IsDebt: &paid})

		assert.NoError(t, err)
		assert.False(t, got.IsDebt)
		sales.AssertExpectations(t)
	})

	t.Run("falla con venta inexistente", func(t *testing.T) {
		sales := new(MockSaleRepository)
		customers := new(MockCustomerRepository)
		products := new(MockProductRepository)
		svc := NewSaleService(sales, customers, products)

		id := uuid.New().String()
		sales.On("FindByID", ctx, id).Return(nil, repository.ErrSaleNotFound)

		paid := false
		_, err := svc.Update(ctx, id, sale.Patch{IsDebt: &paid})

		assert.ErrorIs(t, err, repository.ErrSaleNotFound)
		sales.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("rechaza un patch con total negativo", func(t *testing.T) {
		sales := new(MockSaleRepository)
		customers := new(MockCustomerRepository)
		products := new(MockProductRepository)
		svc := NewSaleService(sales, customers, products)

		c := newTestCustomer(t)
		v := newTestSale(t, c.ID, []sale.ProductQuantity{{ProductID: uuid.New().String(), Quantity: 1}}, 1000, false)
		sales.On("FindByID", ctx, v.ID).Return(v, nil)

		negative := decimal.NewFromInt(-1)
		_, err := svc.Update(ctx, v.ID, sale.Patch{Total: &negative})

		assert.ErrorIs(t, err, sale.ErrNegativeTotal)
		sales.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestFindToday(t *testing.T) {
	ctx := context.Background()

	sales := new(MockSaleRepository)
	customers := new(MockCustomerRepository)
	products := new(MockProductRepository)
	svc := NewSaleService(sales, customers, products)

	sales.On("FindByCreatedRange", ctx, mock.MatchedBy(func(from time.Time) bool {
		return from.Hour() == 0 && from.Minute() == 0 && from.Second() == 0
	}), mock.MatchedBy(func(to time.Time) bool {
		return to.Hour() == 0 && to.Sub(time.Now()) > 0
	})).Return([]*sale.Sale{}, nil)

	_, err := svc.FindToday(ctx)

	assert.NoError(t, err)
	sales.AssertExpectations(t)
}

func TestDeleteSale(t *testing.T) {
	ctx := context.Background()

	sales := new(MockSaleRepository)
	customers := new(MockCustomerRepository)
	products := new(MockProductRepository)
	svc := NewSaleService(sales, customers, products)

	id := uuid.New().String()
	sales.On("Delete", ctx, id).Return(repository.ErrSaleNotFound)

	err := svc.Delete(ctx, id)

	assert.ErrorIs(t, err, repository.ErrSaleNotFound)
}
