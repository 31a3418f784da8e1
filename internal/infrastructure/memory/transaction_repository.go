package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/comptalink-api/internal/domain/entity"
	"github.com/jhoicas/comptalink-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación en memoria del puerto TransactionRepository.
type TransactionRepo struct {
	mu           sync.RWMutex
	transactions map[int64]*entity.Transaction
	nextID       int64
}

// NewTransactionRepository construye el adaptador en memoria para transacciones de caja.
func NewTransactionRepository() *TransactionRepo {
	return &TransactionRepo{transactions: make(map[int64]*entity.Transaction), nextID: 1}
}

// Create asigna el siguiente id, estampa CreatedAt y almacena la transacción.
func (r *TransactionRepo) Create(tx *entity.Transaction) (*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := *tx
	t.ID = r.nextID
	r.nextID++
	t.CreatedAt = time.Now()
	r.transactions[t.ID] = &t
	return cloneTransaction(&t), nil
}

// GetByID devuelve la transacción o (nil, nil) si no existe.
func (r *TransactionRepo) GetByID(id int64) (*entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneTransaction(r.transactions[id]), nil
}

// ListByUser devuelve las transacciones del usuario, más reciente primero.
func (r *TransactionRepo) ListByUser(userID int64) ([]*entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Transaction, 0)
	for _, t := range r.transactions {
		if t.UserID == userID {
			result = append(result, cloneTransaction(t))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

// cloneTransaction copia el registro antes de entregarlo (mismo contrato que
// el resto de los adaptadores en memoria).
func cloneTransaction(t *entity.Transaction) *entity.Transaction {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
