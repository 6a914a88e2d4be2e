package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/davidmorac/asadero-pos/internal/domain/sale"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var ErrSaleNotFound = errors.New("venta no encontrada")

// SaleRepository implementa sale.Repository sobre PostgreSQL.
// Las líneas de la venta se guardan como JSONB dentro del registro.
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository crea una nueva instancia de SaleRepository
func NewSaleRepository(db *pgxpool.Pool) sale.Repository {
	return &SaleRepository{db: db}
}

// Create implementa sale.Repository.Create
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	items, err := json.Marshal(s.Items)
	if err != nil {
		return fmt.Errorf("error al convertir líneas a JSON: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO sales (id, items, total, customer_id, is_debt, debt_amount, debt_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, items, s.Total, s.CustomerID, s.IsDebt, s.DebtAmount, s.DebtDate, s.CreatedAt)

	if err != nil {
		return fmt.Errorf("error al crear venta: %w", err)
	}

	return nil
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, items, total, customer_id, is_debt, debt_amount, debt_date, created_at
		FROM sales WHERE id = $1`,
		id)

	s, err := scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("error al buscar venta: %w", err)
	}

	return s, nil
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context) ([]*sale.Sale, error) {
	return r.query(ctx,
		`SELECT id, items, total, customer_id, is_debt, debt_amount, debt_date, created_at
		FROM sales
		ORDER BY created_at DESC`)
}

// FindByCustomer implementa sale.Repository.FindByCustomer
func (r *SaleRepository) FindByCustomer(ctx context.Context, customerID string) ([]*sale.Sale, error) {
	return r.query(ctx,
		`SELECT id, items, total, customer_id, is_debt, debt_amount, debt_date, created_at
		FROM sales
		WHERE customer_id = $1
		ORDER BY created_at DESC`,
		customerID)
}

// FindByCreatedRange implementa sale.Repository.FindByCreatedRange
// con el intervalo semiabierto [from, to)
func (r *SaleRepository) FindByCreatedRange(ctx context.Context, from, to time.Time) ([]*sale.Sale, error) {
	return r.query(ctx,
		`SELECT id, items, total, customer_id, is_debt, debt_amount, debt_date, created_at
		FROM sales
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at DESC`,
		from, to)
}

// FindDebts implementa sale.Repository.FindDebts
func (r *SaleRepository) FindDebts(ctx context.Context) ([]*sale.Sale, error) {
	return r.query(ctx,
		`SELECT id, items, total, customer_id, is_debt, debt_amount, debt_date, created_at
		FROM sales
		WHERE is_debt = TRUE
		ORDER BY created_at DESC`)
}

// Update implementa sale.Repository.Update
func (r *SaleRepository) Update(ctx context.Context, s *sale.Sale) error {
	items, err := json.Marshal(s.Items)
	if err != nil {
		return fmt.Errorf("error al convertir líneas a JSON: %w", err)
	}

	result, err := r.db.Exec(ctx,
		`UPDATE sales SET items = $1, total = $2, customer_id = $3, is_debt = $4,
			debt_amount = $5, debt_date = $6
		WHERE id = $7`,
		items, s.Total, s.CustomerID, s.IsDebt, s.DebtAmount, s.DebtDate, s.ID)

	if err != nil {
		return fmt.Errorf("error al actualizar venta: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSaleNotFound
	}

	return nil
}

// Delete implementa sale.Repository.Delete
func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM sales WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error al eliminar venta: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSaleNotFound
	}

	return nil
}

func (r *SaleRepository) query(ctx context.Context, sql string, args ...any) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error al listar ventas: %w", err)
	}
	defer rows.Close()

	sales := make([]*sale.Sale, 0)
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer venta: %w", err)
		}
		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer resultados: %w", err)
	}

	return sales, nil
}

func scanSale(row pgx.Row) (*sale.Sale, error) {
	var s sale.Sale
	var itemsJSON []byte
	var debtAmount decimal.NullDecimal

	err := row.Scan(&s.ID, &itemsJSON, &s.Total, &s.CustomerID, &s.IsDebt,
		&debtAmount, &s.DebtDate, &s.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &s.Items); err != nil {
		return nil, fmt.Errorf("error al convertir líneas: %w", err)
	}

	if debtAmount.Valid {
		s.DebtAmount = &debtAmount.Decimal
	}

	return &s, nil
}
