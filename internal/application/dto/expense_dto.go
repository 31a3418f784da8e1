package dto

import (
	"time"

	"github.com/jhoicas/comptalink-api/internal/domain/entity"
)

// CreateExpenseRequest alta de factura de compra. Llega como multipart form
// (el archivo adjunto viaja aparte); las fechas como RFC 3339.
type CreateExpenseRequest struct {
	Type         string `form:"type" json:"type"`
	Amount       int64  `form:"amount" json:"amount"`
	SupplierName string `form:"supplierName" json:"supplierName"`
	InvoiceDate  string `form:"invoiceDate" json:"invoiceDate"`
	Notes        string `form:"notes" json:"notes"`
}

// ReviewRequest transición de estado de revisión (gasto o documento).
type ReviewRequest struct {
	Status string `json:"status"` // pending | processed | rejected
}

// ExpenseResponse representación de una factura de compra.
type ExpenseResponse struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"userId"`
	Type         string     `json:"type"`
	Amount       int64      `json:"amount"`
	SupplierName string     `json:"supplierName"`
	InvoiceDate  time.Time  `json:"invoiceDate"`
	Status       string     `json:"status"`
	Notes        string     `json:"notes,omitempty"`
	FileURL      string     `json:"fileUrl,omitempty"`
	FileName     string     `json:"fileName,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	ReviewedBy   *int64     `json:"reviewedBy"`
	ReviewedAt   *time.Time `json:"reviewedAt"`
}

// ToExpenseResponse mapea la entidad.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:           e.ID,
		UserID:       e.UserID,
		Type:         e.Type,
		Amount:       e.Amount,
		SupplierName: e.SupplierName,
		InvoiceDate:  e.InvoiceDate,
		Status:       string(e.Status),
		Notes:        e.Notes,
		FileURL:      e.FileURL,
		FileName:     e.FileName,
		CreatedAt:    e.CreatedAt,
		ReviewedBy:   e.ReviewedBy,
		ReviewedAt:   e.ReviewedAt,
	}
}

// ToExpenseResponses mapea una lista.
func ToExpenseResponses(list []*entity.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, ToExpenseResponse(e))
	}
	return out
}
