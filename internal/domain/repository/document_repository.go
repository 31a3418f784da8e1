package repository

import "github.com/jhoicas/comptalink-api/internal/domain/entity"

// DocumentRepository puerto de persistencia para Document.
type DocumentRepository interface {
	Create(doc *entity.Document) (*entity.Document, error)
	GetByID(id int64) (*entity.Document, error)
	// ListByUser devuelve los documentos del usuario ordenados por UploadDate descendente.
	ListByUser(userID int64) ([]*entity.Document, error)
	// ListUnprocessed devuelve los documentos con estado pending ordenados por
	// UploadDate descendente (cola de trabajo del contador).
	ListUnprocessed() ([]*entity.Document, error)
	// UpdateStatus asigna status, reviewedBy y reviewedAt en un único reemplazo
	// atómico. Devuelve (nil, nil) si el id no existe.
	UpdateStatus(id int64, status entity.ReviewStatus, reviewedBy int64) (*entity.Document, error)
}
