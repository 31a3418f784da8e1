package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/comptalink-api/internal/domain/entity"
	"github.com/jhoicas/comptalink-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación en memoria del puerto DocumentRepository.
type DocumentRepo struct {
	mu        sync.RWMutex
	documents map[int64]*entity.Document
	nextID    int64
}

// NewDocumentRepository construye el adaptador en memoria para documentos de soporte.
func NewDocumentRepository() *DocumentRepo {
	return &DocumentRepo{documents: make(map[int64]*entity.Document), nextID: 1}
}

// Create asigna el siguiente id y deja el par de revisión en nil. UploadDate
// lo fija el llamador; si viene en cero se estampa el instante actual.
func (r *DocumentRepo) Create(doc *entity.Document) (*entity.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d := *doc
	d.ID = r.nextID
	r.nextID++
	if d.UploadDate.IsZero() {
		d.UploadDate = time.Now()
	}
	d.ReviewedBy = nil
	d.ReviewedAt = nil
	r.documents[d.ID] = &d
	return cloneDocument(&d), nil
}

// GetByID devuelve el documento o (nil, nil) si no existe.
func (r *DocumentRepo) GetByID(id int64) (*entity.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneDocument(r.documents[id]), nil
}

// ListByUser devuelve los documentos del usuario ordenados por UploadDate descendente.
func (r *DocumentRepo) ListByUser(userID int64) ([]*entity.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Document, 0)
	for _, d := range r.documents {
		if d.UserID == userID {
			result = append(result, cloneDocument(d))
		}
	}
	sortByUploadDateDesc(result)
	return result, nil
}

// ListUnprocessed devuelve la cola de trabajo del contador: documentos pending,
// más reciente primero.
func (r *DocumentRepo) ListUnprocessed() ([]*entity.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Document, 0)
	for _, d := range r.documents {
		if d.Status == entity.ReviewPending {
			result = append(result, cloneDocument(d))
		}
	}
	sortByUploadDateDesc(result)
	return result, nil
}

// UpdateStatus reemplaza el registro completo con status + par de revisión
// (mismo contrato atómico que ExpenseRepo.UpdateStatus).
func (r *DocumentRepo) UpdateStatus(id int64, status entity.ReviewStatus, reviewedBy int64) (*entity.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.documents[id]
	if !ok {
		return nil, nil
	}
	now := time.Now()
	updated := *d
	updated.Status = status
	updated.ReviewedBy = &reviewedBy
	updated.ReviewedAt = &now
	r.documents[id] = &updated
	return cloneDocument(&updated), nil
}

func sortByUploadDateDesc(docs []*entity.Document) {
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].UploadDate.After(docs[j].UploadDate)
	})
}

// cloneDocument copia el registro y los punteros del par de revisión (mismo
// contrato que cloneExpense).
func cloneDocument(d *entity.Document) *entity.Document {
	if d == nil {
		return nil
	}
	c := *d
	if d.ReviewedBy != nil {
		v := *d.ReviewedBy
		c.ReviewedBy = &v
	}
	if d.ReviewedAt != nil {
		t := *d.ReviewedAt
		c.ReviewedAt = &t
	}
	return &c
}
