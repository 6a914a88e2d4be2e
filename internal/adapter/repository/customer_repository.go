package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/davidmorac/asadero-pos/internal/domain/customer"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrCustomerNotFound = errors.New("cliente no encontrado")

// CustomerRepository implementa customer.Repository sobre PostgreSQL
type CustomerRepository struct {
	db *pgxpool.Pool
}

// NewCustomerRepository crea una nueva instancia de CustomerRepository
func NewCustomerRepository(db *pgxpool.Pool) customer.Repository {
	return &CustomerRepository{db: db}
}

// Create implementa customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO customers (id, name, phone, address, email, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Name, c.Phone, c.Address, c.Email, c.Notes, c.CreatedAt, c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error al crear cliente: %w", err)
	}

	return nil
}

// FindByID implementa customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	var c customer.Customer

	err := r.db.QueryRow(ctx,
		`SELECT id, name, phone, address, email, notes, created_at, updated_at
		FROM customers WHERE id = $1`,
		id).Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.Email, &c.Notes, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("error al buscar cliente: %w", err)
	}

	return &c, nil
}

// List implementa customer.Repository.List
func (r *CustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, phone, address, email, notes, created_at, updated_at
		FROM customers
		ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("error al listar clientes: %w", err)
	}
	defer rows.Close()

	customers := make([]*customer.Customer, 0)
	for rows.Next() {
		var c customer.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.Email, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error al leer cliente: %w", err)
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer resultados: %w", err)
	}

	return customers, nil
}

// Update implementa customer.Repository.Update
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	result, err := r.db.Exec(ctx,
		`UPDATE customers SET name = $1, phone = $2, address = $3, email = $4,
			notes = $5, updated_at = $6
		WHERE id = $7`,
		c.Name, c.Phone, c.Address, c.Email, c.Notes, c.UpdatedAt, c.ID)

	if err != nil {
		return fmt.Errorf("error al actualizar cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// Delete implementa customer.Repository.Delete
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error al eliminar cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}
