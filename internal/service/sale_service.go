package service

import (
	"context"
	"sync"
	"time"

	"github.com/davidmorac/asadero-pos/internal/domain/customer"
	"github.com/davidmorac/asadero-pos/internal/domain/product"
	"github.com/davidmorac/asadero-pos/internal/domain/sale"
)

// SaleService registra ventas validando sus referencias antes de
// persistir. Depende del catálogo de productos y del directorio de
// clientes, nunca al revés.
type SaleService struct {
	sales     sale.Repository
	customers customer.Repository
	products  product.Repository
}

// NewSaleService crea una nueva instancia de SaleService
func NewSaleService(sales sale.Repository, customers customer.Repository, products product.Repository) *SaleService {
	return &SaleService{
		sales:     sales,
		customers: customers,
		products:  products,
	}
}

// RecordSale valida el cliente y todos los productos referenciados y
// persiste la venta como un único registro. El total declarado por el
// llamador se guarda tal cual y el stock no se descuenta.
func (s *SaleService) RecordSale(ctx context.Context, v *sale.Sale) (*sale.Sale, error) {
	if _, err := s.customers.FindByID(ctx, v.CustomerID); err != nil {
		return nil, err
	}

	// Las verificaciones de productos son independientes entre sí, se
	// resuelven en paralelo y se espera por todas antes de escribir.
	if err := s.checkProducts(ctx, v.Items); err != nil {
		return nil, err
	}

	if err := s.sales.Create(ctx, v); err != nil {
		return nil, err
	}

	return v, nil
}

func (s *SaleService) checkProducts(ctx context.Context, items []sale.ProductQuantity) error {
	var wg sync.WaitGroup
	errs := make([]error, len(items))

	for i, item := range items {
		wg.Add(1)
		go func(i int, productID string) {
			defer wg.Done()
			if _, err := s.products.FindByID(ctx, productID); err != nil {
				errs[i] = err
			}
		}(i, item.ProductID)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// FindAll lista todas las ventas
func (s *SaleService) FindAll(ctx context.Context) ([]*sale.Sale, error) {
	return s.sales.List(ctx)
}

// FindOne devuelve una venta por su ID
func (s *SaleService) FindOne(ctx context.Context, id string) (*sale.Sale, error) {
	return s.sales.FindByID(ctx, id)
}

// FindByCustomer lista las ventas de un cliente; el cliente debe existir
func (s *SaleService) FindByCustomer(ctx context.Context, customerID string) ([]*sale.Sale, error) {
	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	return s.sales.FindByCustomer(ctx, customerID)
}

// FindToday lista las ventas creadas dentro del día actual en hora local
func (s *SaleService) FindToday(ctx context.Context) ([]*sale.Sale, error) {
	from, to := sale.TodayRange(time.Now())
	return s.sales.FindByCreatedRange(ctx, from, to)
}

// FindDebts lista las ventas fiadas pendientes
func (s *SaleService) FindDebts(ctx context.Context) ([]*sale.Sale, error) {
	return s.sales.FindDebts(ctx)
}

// Update aplica una actualización parcial sobre una venta existente,
// por ejemplo apagar is_debt al saldar un fiado
func (s *SaleService) Update(ctx context.Context, id string, patch sale.Patch) (*sale.Sale, error) {
	v, err := s.sales.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.CustomerID != nil {
		if _, err := s.customers.FindByID(ctx, *patch.CustomerID); err != nil {
			return nil, err
		}
	}

	if patch.Items != nil {
		if err := s.checkProducts(ctx, patch.Items); err != nil {
			return nil, err
		}
	}

	if err := v.Apply(patch); err != nil {
		return nil, err
	}

	if err := s.sales.Update(ctx, v); err != nil {
		return nil, err
	}

	return v, nil
}

// Delete elimina una venta por su ID
func (s *SaleService) Delete(ctx context.Context, id string) error {
	return s.sales.Delete(ctx, id)
}
