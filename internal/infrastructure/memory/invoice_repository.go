package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/comptalink-api/internal/domain/entity"
	"github.com/jhoicas/comptalink-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación en memoria del puerto InvoiceRepository.
type InvoiceRepo struct {
	mu       sync.RWMutex
	invoices map[int64]*entity.Invoice
	nextID   int64
}

// NewInvoiceRepository construye el adaptador en memoria para facturas de venta.
func NewInvoiceRepository() *InvoiceRepo {
	return &InvoiceRepo{invoices: make(map[int64]*entity.Invoice), nextID: 1}
}

// Create asigna el siguiente id, estampa CreatedAt y almacena la factura.
func (r *InvoiceRepo) Create(inv *entity.Invoice) (*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := *inv
	v.ID = r.nextID
	r.nextID++
	v.CreatedAt = time.Now()
	r.invoices[v.ID] = &v
	return cloneInvoice(&v), nil
}

// GetByID devuelve la factura o (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneInvoice(r.invoices[id]), nil
}

// ListByUser devuelve las facturas del usuario ordenadas por IssueDate descendente.
func (r *InvoiceRepo) ListByUser(userID int64) ([]*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Invoice, 0)
	for _, v := range r.invoices {
		if v.UserID == userID {
			result = append(result, cloneInvoice(v))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].IssueDate.After(result[j].IssueDate)
	})
	return result, nil
}

// UpdateStatus reemplaza la factura con el nuevo estado bajo el lock de escritura.
func (r *InvoiceRepo) UpdateStatus(id int64, status entity.InvoiceStatus) (*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	updated := *v
	updated.Status = status
	r.invoices[id] = &updated
	return cloneInvoice(&updated), nil
}

// cloneInvoice copia el registro, incluido el slice de líneas: compartir el
// backing array dejaría mutar las líneas guardadas fuera del lock.
func cloneInvoice(v *entity.Invoice) *entity.Invoice {
	if v == nil {
		return nil
	}
	c := *v
	c.Items = append([]entity.InvoiceItem(nil), v.Items...)
	return &c
}
