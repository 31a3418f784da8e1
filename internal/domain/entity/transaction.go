package entity

import "time"

// TransactionType tipo de movimiento de caja.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Valid indica si el tipo pertenece al conjunto cerrado.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction movimiento de caja registrado por un cliente.
// Amount siempre en centavos (entero positivo).
type Transaction struct {
	ID          int64
	UserID      int64
	Type        TransactionType
	Amount      int64 // centavos
	Category    string
	Description string // opcional
	Date        time.Time
	CreatedAt   time.Time
}
