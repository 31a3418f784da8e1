package repository

import "github.com/jhoicas/comptalink-api/internal/domain/entity"

// ExpenseRepository puerto de persistencia para Expense.
type ExpenseRepository interface {
	Create(exp *entity.Expense) (*entity.Expense, error)
	GetByID(id int64) (*entity.Expense, error)
	// ListByUser devuelve los gastos del usuario ordenados por InvoiceDate descendente.
	ListByUser(userID int64) ([]*entity.Expense, error)
	// UpdateStatus asigna status, reviewedBy y reviewedAt en un único reemplazo
	// atómico. Devuelve (nil, nil) si el id no existe.
	UpdateStatus(id int64, status entity.ReviewStatus, reviewedBy int64) (*entity.Expense, error)
}
