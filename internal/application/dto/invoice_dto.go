package dto

import (
	"time"

	"github.com/jhoicas/comptalink-api/internal/domain/entity"
)

// InvoiceItemRequest línea de factura. Montos en centavos.
type InvoiceItemRequest struct {
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	Total       int64  `json:"total"`
}

// CreateInvoiceRequest alta de factura de venta.
type CreateInvoiceRequest struct {
	InvoiceNumber string               `json:"invoiceNumber"`
	ClientName    string               `json:"clientName"`
	Amount        int64                `json:"amount"`
	IssueDate     time.Time            `json:"issueDate"`
	DueDate       time.Time            `json:"dueDate"`
	Status        string               `json:"status"`
	Items         []InvoiceItemRequest `json:"items"`
	Notes         string               `json:"notes"`
}

// UpdateInvoiceStatusRequest cambio de estado de factura.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status"` // draft | sent | paid | overdue
}

// InvoiceResponse representación de una factura de venta.
type InvoiceResponse struct {
	ID            int64                `json:"id"`
	UserID        int64                `json:"userId"`
	InvoiceNumber string               `json:"invoiceNumber"`
	ClientName    string               `json:"clientName"`
	Amount        int64                `json:"amount"`
	IssueDate     time.Time            `json:"issueDate"`
	DueDate       time.Time            `json:"dueDate"`
	Status        string               `json:"status"`
	Items         []entity.InvoiceItem `json:"items"`
	Notes         string               `json:"notes,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// ToInvoiceResponse mapea la entidad.
func ToInvoiceResponse(v *entity.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            v.ID,
		UserID:        v.UserID,
		InvoiceNumber: v.InvoiceNumber,
		ClientName:    v.ClientName,
		Amount:        v.Amount,
		IssueDate:     v.IssueDate,
		DueDate:       v.DueDate,
		Status:        string(v.Status),
		Items:         v.Items,
		Notes:         v.Notes,
		CreatedAt:     v.CreatedAt,
	}
}

// ToInvoiceResponses mapea una lista.
func ToInvoiceResponses(list []*entity.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToInvoiceResponse(v))
	}
	return out
}
