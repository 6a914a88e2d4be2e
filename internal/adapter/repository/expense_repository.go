package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/davidmorac/asadero-pos/internal/domain/expense"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var ErrExpenseNotFound = errors.New("gasto no encontrado")

// ExpenseRepository implementa expense.Repository sobre PostgreSQL
type ExpenseRepository struct {
	db *pgxpool.Pool
}

// NewExpenseRepository crea una nueva instancia de ExpenseRepository
func NewExpenseRepository(db *pgxpool.Pool) expense.Repository {
	return &ExpenseRepository{db: db}
}

// Create implementa expense.Repository.Create
func (r *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO expenses (id, description, category, amount, date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.Description, e.Category, e.Amount, e.Date, e.Notes, e.CreatedAt, e.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error al crear gasto: %w", err)
	}

	return nil
}

// FindByID implementa expense.Repository.FindByID
func (r *ExpenseRepository) FindByID(ctx context.Context, id string) (*expense.Expense, error) {
	var e expense.Expense

	err := r.db.QueryRow(ctx,
		`SELECT id, description, category, amount, date, notes, created_at, updated_at
		FROM expenses WHERE id = $1`,
		id).Scan(&e.ID, &e.Description, &e.Category, &e.Amount, &e.Date, &e.Notes, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("error al buscar gasto: %w", err)
	}

	return &e, nil
}

// List implementa expense.Repository.List
func (r *ExpenseRepository) List(ctx context.Context) ([]*expense.Expense, error) {
	return r.query(ctx,
		`SELECT id, description, category, amount, date, notes, created_at, updated_at
		FROM expenses
		ORDER BY date DESC`)
}

// FindByDateRange implementa expense.Repository.FindByDateRange.
// Con inclusiveEnd el límite superior entra en el rango (consulta por
// rango de días); sin él, el intervalo es semiabierto (gastos de hoy).
func (r *ExpenseRepository) FindByDateRange(ctx context.Context, from, to time.Time, inclusiveEnd bool) ([]*expense.Expense, error) {
	op := "<"
	if inclusiveEnd {
		op = "<="
	}

	return r.query(ctx,
		fmt.Sprintf(`SELECT id, description, category, amount, date, notes, created_at, updated_at
		FROM expenses
		WHERE date >= $1 AND date %s $2
		ORDER BY date DESC`, op),
		from, to)
}

// Update implementa expense.Repository.Update
func (r *ExpenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	result, err := r.db.Exec(ctx,
		`UPDATE expenses SET description = $1, category = $2, amount = $3,
			date = $4, notes = $5, updated_at = $6
		WHERE id = $7`,
		e.Description, e.Category, e.Amount, e.Date, e.Notes, e.UpdatedAt, e.ID)

	if err != nil {
		return fmt.Errorf("error al actualizar gasto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// Delete implementa expense.Repository.Delete
func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM expenses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error al eliminar gasto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// TotalAmount implementa expense.Repository.TotalAmount; devuelve 0 sin gastos
func (r *ExpenseRepository) TotalAmount(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal

	err := r.db.QueryRow(ctx,
		"SELECT COALESCE(SUM(amount), 0) FROM expenses").Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error al calcular total de gastos: %w", err)
	}

	return total, nil
}

// TotalByCategory implementa expense.Repository.TotalByCategory
func (r *ExpenseRepository) TotalByCategory(ctx context.Context) ([]expense.CategoryTotal, error) {
	rows, err := r.db.Query(ctx,
		`SELECT category, SUM(amount)
		FROM expenses
		GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("error al calcular totales por categoría: %w", err)
	}
	defer rows.Close()

	totals := make([]expense.CategoryTotal, 0)
	for rows.Next() {
		var t expense.CategoryTotal
		if err := rows.Scan(&t.Category, &t.Total); err != nil {
			return nil, fmt.Errorf("error al leer total por categoría: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer resultados: %w", err)
	}

	return totals, nil
}

func (r *ExpenseRepository) query(ctx context.Context, sql string, args ...any) ([]*expense.Expense, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error al listar gastos: %w", err)
	}
	defer rows.Close()

	expenses := make([]*expense.Expense, 0)
	for rows.Next() {
		var e expense.Expense
		if err := rows.Scan(&e.ID, &e.Description, &e.Category, &e.Amount, &e.Date, &e.Notes, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error al leer gasto: %w", err)
		}
		expenses = append(expenses, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer resultados: %w", err)
	}

	return expenses, nil
}
