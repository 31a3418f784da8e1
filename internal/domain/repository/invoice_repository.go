package repository

import "github.com/jhoicas/comptalink-api/internal/domain/entity"

// InvoiceRepository puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(inv *entity.Invoice) (*entity.Invoice, error)
	GetByID(id int64) (*entity.Invoice, error)
	// ListByUser devuelve las facturas del usuario ordenadas por IssueDate descendente.
	ListByUser(userID int64) ([]*entity.Invoice, error)
	// UpdateStatus reemplaza el estado y devuelve la factura actualizada,
	// o (nil, nil) si el id no existe.
	UpdateStatus(id int64, status entity.InvoiceStatus) (*entity.Invoice, error)
}
