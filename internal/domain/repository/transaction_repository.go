package repository

import "github.com/jhoicas/comptalink-api/internal/domain/entity"

// TransactionRepository puerto de persistencia para Transaction.
type TransactionRepository interface {
	Create(tx *entity.Transaction) (*entity.Transaction, error)
	GetByID(id int64) (*entity.Transaction, error)
	// ListByUser devuelve las transacciones del usuario ordenadas por Date descendente.
	ListByUser(userID int64) ([]*entity.Transaction, error)
}
