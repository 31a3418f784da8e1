package entity

import "time"

// InvoiceStatus estado de una factura de venta.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// Valid indica si el estado pertenece al conjunto cerrado.
// El grafo de transiciones no está restringido: cualquier estado válido es aceptado.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue:
		return true
	}
	return false
}

// InvoiceItem línea de detalle de una factura. Montos en centavos.
type InvoiceItem struct {
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"` // centavos
	Total       int64  `json:"total"`     // centavos
}

// Invoice factura de venta emitida por un cliente.
type Invoice struct {
	ID            int64
	UserID        int64
	InvoiceNumber string
	ClientName    string
	Amount        int64 // centavos
	IssueDate     time.Time
	DueDate       time.Time
	Status        InvoiceStatus
	Items         []InvoiceItem
	Notes         string // opcional
	CreatedAt     time.Time
}
