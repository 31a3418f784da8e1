package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/comptalink-api/internal/domain/entity"
	"github.com/jhoicas/comptalink-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository construye el adaptador de persistencia para facturas de compra.
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepo {
	return &ExpenseRepo{pool: pool}
}

const expenseColumns = `id, user_id, type, amount_cents, supplier_name, invoice_date, status,
	COALESCE(notes, ''), COALESCE(file_url, ''), COALESCE(file_name, ''), created_at, reviewed_by, reviewed_at`

// Create persiste un gasto; el par de revisión queda en NULL.
func (r *ExpenseRepo) Create(exp *entity.Expense) (*entity.Expense, error) {
	query := `
		INSERT INTO expenses (user_id, type, amount_cents, supplier_name, invoice_date, status, notes, file_url, file_name)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''))
		RETURNING ` + expenseColumns
	created, err := scanExpense(r.pool.QueryRow(context.Background(), query,
		exp.UserID, exp.Type, exp.Amount, exp.SupplierName, exp.InvoiceDate,
		string(exp.Status), exp.Notes, exp.FileURL, exp.FileName,
	))
	if err != nil {
		return nil, fmt.Errorf("insert expense: %w", err)
	}
	return created, nil
}

// GetByID obtiene un gasto por ID; (nil, nil) si no existe.
func (r *ExpenseRepo) GetByID(id int64) (*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	e, err := scanExpense(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return e, nil
}

// ListByUser lista los gastos del usuario ordenados por fecha de factura descendente.
func (r *ExpenseRepo) ListByUser(userID int64) ([]*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE user_id = $1 ORDER BY invoice_date DESC`
	rows, err := r.pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// UpdateStatus asigna status + reviewed_by + reviewed_at en una sola sentencia
// (el UPDATE es atómico a nivel de fila); (nil, nil) si el id no existe.
func (r *ExpenseRepo) UpdateStatus(id int64, status entity.ReviewStatus, reviewedBy int64) (*entity.Expense, error) {
	query := `
		UPDATE expenses SET status = $2, reviewed_by = $3, reviewed_at = now()
		WHERE id = $1
		RETURNING ` + expenseColumns
	e, err := scanExpense(r.pool.QueryRow(context.Background(), query, id, string(status), reviewedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update expense status: %w", err)
	}
	return e, nil
}

func scanExpense(row pgx.Row) (*entity.Expense, error) {
	var e entity.Expense
	err := row.Scan(
		&e.ID, &e.UserID, &e.Type, &e.Amount, &e.SupplierName, &e.InvoiceDate, &e.Status,
		&e.Notes, &e.FileURL, &e.FileName, &e.CreatedAt, &e.ReviewedBy, &e.ReviewedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
