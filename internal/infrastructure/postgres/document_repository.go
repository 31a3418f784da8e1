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

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación del puerto DocumentRepository sobre PostgreSQL.
type DocumentRepo struct {
	pool *pgxpool.Pool
}

// NewDocumentRepository construye el adaptador de persistencia para documentos de soporte.
func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepo {
	return &DocumentRepo{pool: pool}
}

const documentColumns = `id, user_id, type, title, file_url, file_name, upload_date, status,
	COALESCE(notes, ''), reviewed_by, reviewed_at`

// Create persiste un documento; el par de revisión queda en NULL.
func (r *DocumentRepo) Create(doc *entity.Document) (*entity.Document, error) {
	query := `
		INSERT INTO documents (user_id, type, title, file_url, file_name, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
		RETURNING ` + documentColumns
	created, err := scanDocument(r.pool.QueryRow(context.Background(), query,
		doc.UserID, doc.Type, doc.Title, doc.FileURL, doc.FileName, string(doc.Status), doc.Notes,
	))
	if err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}
	return created, nil
}

// GetByID obtiene un documento por ID; (nil, nil) si no existe.
func (r *DocumentRepo) GetByID(id int64) (*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	d, err := scanDocument(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}

// ListByUser lista los documentos del usuario ordenados por fecha de subida descendente.
func (r *DocumentRepo) ListByUser(userID int64) ([]*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE user_id = $1 ORDER BY upload_date DESC`
	return r.list(query, userID)
}

// ListUnprocessed lista la cola de trabajo del contador (status pending).
func (r *DocumentRepo) ListUnprocessed() ([]*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE status = $1 ORDER BY upload_date DESC`
	return r.list(query, string(entity.ReviewPending))
}

// UpdateStatus asigna status + reviewed_by + reviewed_at en una sola sentencia;
// (nil, nil) si el id no existe.
func (r *DocumentRepo) UpdateStatus(id int64, status entity.ReviewStatus, reviewedBy int64) (*entity.Document, error) {
	query := `
		UPDATE documents SET status = $2, reviewed_by = $3, reviewed_at = now()
		WHERE id = $1
		RETURNING ` + documentColumns
	d, err := scanDocument(r.pool.QueryRow(context.Background(), query, id, string(status), reviewedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update document status: %w", err)
	}
	return d, nil
}

func (r *DocumentRepo) list(query string, args ...any) ([]*entity.Document, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func scanDocument(row pgx.Row) (*entity.Document, error) {
	var d entity.Document
	err := row.Scan(
		&d.ID, &d.UserID, &d.Type, &d.Title, &d.FileURL, &d.FileName, &d.UploadDate,
		&d.Status, &d.Notes, &d.ReviewedBy, &d.ReviewedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
