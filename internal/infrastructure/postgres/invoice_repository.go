package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/comptalink-api/internal/domain/entity"
	"github.com/jhoicas/comptalink-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
// Las líneas de detalle se guardan como JSONB en la misma fila.
type InvoiceRepo struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository construye el adaptador de persistencia para facturas de venta.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

const invoiceColumns = `id, user_id, invoice_number, client_name, amount_cents, issue_date, due_date, status, items, COALESCE(notes, ''), created_at`

// Create persiste una factura; el id lo asigna la secuencia BIGSERIAL.
func (r *InvoiceRepo) Create(inv *entity.Invoice) (*entity.Invoice, error) {
	items, err := json.Marshal(inv.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal items: %w", err)
	}
	query := `
		INSERT INTO invoices (user_id, invoice_number, client_name, amount_cents, issue_date, due_date, status, items, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''))
		RETURNING ` + invoiceColumns
	created, err := scanInvoice(r.pool.QueryRow(context.Background(), query,
		inv.UserID, inv.InvoiceNumber, inv.ClientName, inv.Amount,
		inv.IssueDate, inv.DueDate, string(inv.Status), items, inv.Notes,
	))
	if err != nil {
		return nil, fmt.Errorf("insert invoice: %w", err)
	}
	return created, nil
}

// GetByID obtiene una factura por ID; (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// ListByUser lista las facturas del usuario ordenadas por fecha de emisión descendente.
func (r *InvoiceRepo) ListByUser(userID int64) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE user_id = $1 ORDER BY issue_date DESC`
	rows, err := r.pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// UpdateStatus actualiza el estado en una sola sentencia y devuelve la fila
// resultante; (nil, nil) si el id no existe.
func (r *InvoiceRepo) UpdateStatus(id int64, status entity.InvoiceStatus) (*entity.Invoice, error) {
	query := `
		UPDATE invoices SET status = $2
		WHERE id = $1
		RETURNING ` + invoiceColumns
	inv, err := scanInvoice(r.pool.QueryRow(context.Background(), query, id, string(status)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update invoice status: %w", err)
	}
	return inv, nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var items []byte
	err := row.Scan(
		&inv.ID, &inv.UserID, &inv.InvoiceNumber, &inv.ClientName, &inv.Amount,
		&inv.IssueDate, &inv.DueDate, &inv.Status, &items, &inv.Notes, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &inv.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items: %w", err)
		}
	}
	return &inv, nil
}
