package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/comptalink-api/internal/domain/entity"
	"github.com/jhoicas/comptalink-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación en memoria del puerto ExpenseRepository.
type ExpenseRepo struct {
	mu       sync.RWMutex
	expenses map[int64]*entity.Expense
	nextID   int64
}

// NewExpenseRepository construye el adaptador en memoria para facturas de compra.
func NewExpenseRepository() *ExpenseRepo {
	return &ExpenseRepo{expenses: make(map[int64]*entity.Expense), nextID: 1}
}

// Create asigna el siguiente id, estampa CreatedAt y deja el par de revisión en nil.
func (r *ExpenseRepo) Create(exp *entity.Expense) (*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := *exp
	e.ID = r.nextID
	r.nextID++
	e.CreatedAt = time.Now()
	e.ReviewedBy = nil
	e.ReviewedAt = nil
	r.expenses[e.ID] = &e
	return cloneExpense(&e), nil
}

// GetByID devuelve el gasto o (nil, nil) si no existe.
func (r *ExpenseRepo) GetByID(id int64) (*entity.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneExpense(r.expenses[id]), nil
}

// ListByUser devuelve los gastos del usuario ordenados por InvoiceDate descendente.
func (r *ExpenseRepo) ListByUser(userID int64) ([]*entity.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Expense, 0)
	for _, e := range r.expenses {
		if e.UserID == userID {
			result = append(result, cloneExpense(e))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].InvoiceDate.After(result[j].InvoiceDate)
	})
	return result, nil
}

// UpdateStatus reemplaza el registro completo con status + par de revisión.
// El reemplazo único bajo el lock garantiza que ningún lector vea el estado
// nuevo con ReviewedBy/ReviewedAt antiguos, ni al revés.
func (r *ExpenseRepo) UpdateStatus(id int64, status entity.ReviewStatus, reviewedBy int64) (*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.expenses[id]
	if !ok {
		return nil, nil
	}
	now := time.Now()
	updated := *e
	updated.Status = status
	updated.ReviewedBy = &reviewedBy
	updated.ReviewedAt = &now
	r.expenses[id] = &updated
	return cloneExpense(&updated), nil
}

// cloneExpense copia el registro y también los punteros del par de revisión,
// para que el llamador no pueda re-estampar la revisión guardada.
func cloneExpense(e *entity.Expense) *entity.Expense {
	if e == nil {
		return nil
	}
	c := *e
	if e.ReviewedBy != nil {
		v := *e.ReviewedBy
		c.ReviewedBy = &v
	}
	if e.ReviewedAt != nil {
		t := *e.ReviewedAt
		c.ReviewedAt = &t
	}
	return &c
}
