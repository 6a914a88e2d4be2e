package database

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/davidmorac/asadero-pos/internal/adapter/repository"
	"github.com/davidmorac/asadero-pos/internal/domain/customer"
	"github.com/davidmorac/asadero-pos/internal/domain/product"
	"github.com/davidmorac/asadero-pos/internal/domain/user"
	"github.com/davidmorac/asadero-pos/pkg/logger"
)

// Seeder carga los datos iniciales. Nunca borra ni sobreescribe: cada
// colección se llena sólo si está vacía, así re-ejecutarlo es inocuo.
type Seeder struct {
	products  product.Repository
	customers customer.Repository
	users     user.Repository
	logger    logger.Logger
}

// NewSeeder crea una nueva instancia de Seeder
func NewSeeder(products product.Repository, customers customer.Repository, users user.Repository, logger logger.Logger) *Seeder {
	return &Seeder{
		products:  products,
		customers: customers,
		users:     users,
		logger:    logger,
	}
}

// Run ejecuta los seeders. El usuario administrador se crea siempre que
// no exista; los datos de demostración sólo en desarrollo.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedAdminUser(ctx); err != nil {
		return err
	}

	if os.Getenv("APP_ENV") != "development" {
		return nil
	}

	if err := s.seedProducts(ctx); err != nil {
		return err
	}

	return s.seedCustomers(ctx)
}

func (s *Seeder) seedAdminUser(ctx context.Context) error {
	email := getEnv("ADMIN_EMAIL", "admin@gmail.com")

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("error al verificar el usuario administrador: %w", err)
	}

	password := getEnv("ADMIN_PASSWORD", "admin123")

	admin, err := user.NewUser("Admin", email, password)
	if err != nil {
		return fmt.Errorf("error al crear el usuario administrador: %w", err)
	}

	if err := s.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("error al guardar el usuario administrador: %w", err)
	}

	s.logger.Info("usuario administrador creado", "email", email)
	return nil
}

func (s *Seeder) seedProducts(ctx context.Context) error {
	existing, err := s.products.List(ctx)
	if err != nil {
		return fmt.Errorf("error al verificar los productos: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	seed := []struct {
		name  string
		price int64
		stock int
	}{
		{"Pollo Asado", 22000, 50},
		{"Pollo Frito", 18000, 30},
		{"Pollo a la Parrilla", 25000, 0},
	}

	for _, row := range seed {
		p, err := product.NewProduct(row.name, decimal.NewFromInt(row.price), row.stock)
		if err != nil {
			return fmt.Errorf("error al crear el producto de demostración: %w", err)
		}
		if err := s.products.Create(ctx, p); err != nil {
			return fmt.Errorf("error al guardar el producto de demostración: %w", err)
		}
	}

	s.logger.Info("productos de demostración creados", "count", len(seed))
	return nil
}

func (s *Seeder) seedCustomers(ctx context.Context) error {
	existing, err := s.customers.List(ctx)
	if err != nil {
		return fmt.Errorf("error al verificar los clientes: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	seed := []struct {
		name, phone, address, email, notes string
	}{
		{"Juan Pérez", "3001234567", "Calle 123 #45-67", "juan.perez@gmail.com", "Cliente frecuente"},
		{"María García", "3001234568", "Calle 124 #46-68", "maria.garcia@gmail.com", "Cliente nuevo"},
		{"Pedro López", "3001234569", "Calle 125 #47-69", "pedro.lopez@gmail.com", "Cliente VIP"},
	}

	for _, row := range seed {
		c, err := customer.NewCustomer(row.name, row.phone, row.address, row.email, row.notes)
		if err != nil {
			return fmt.Errorf("error al crear el cliente de demostración: %w", err)
		}
		if err := s.customers.Create(ctx, c); err != nil {
			return fmt.Errorf("error al guardar el cliente de demostración: %w", err)
		}
	}

	s.logger.Info("clientes de demostración creados", "count", len(seed))
	return nil
}
