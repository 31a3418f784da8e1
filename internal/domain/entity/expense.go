package entity

import "time"

// Expense factura de compra enviada por un cliente para revisión del contador.
// ReviewedBy y ReviewedAt forman un par: o ambos nil, o ambos asignados por la
// misma transición de estado. Nunca se asignan por separado.
type Expense struct {
	ID           int64
	UserID       int64
	Type         string
	Amount       int64 // centavos
	SupplierName string
	InvoiceDate  time.Time
	Status       ReviewStatus
	Notes        string // opcional
	FileURL      string // opcional, referencia opaca producida por el storage de archivos
	FileName     string // opcional
	CreatedAt    time.Time
	ReviewedBy   *int64
	ReviewedAt   *time.Time
}
