package dto

import (
	"time"

	"github.com/jhoicas/comptalink-api/internal/domain/entity"
)

// CreateDocumentRequest alta de documento de soporte (multipart form, archivo obligatorio).
type CreateDocumentRequest struct {
	Type  string `form:"type" json:"type"` // invoice, receipt, bank_statement, ...
	Title string `form:"title" json:"title"`
	Notes string `form:"notes" json:"notes"`
}

// DocumentResponse representación de un documento de soporte.
type DocumentResponse struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"userId"`
	Type       string     `json:"type"`
	Title      string     `json:"title"`
	FileURL    string     `json:"fileUrl"`
	FileName   string     `json:"fileName"`
	UploadDate time.Time  `json:"uploadDate"`
	Status     string     `json:"status"`
	Notes      string     `json:"notes,omitempty"`
	ReviewedBy *int64     `json:"reviewedBy"`
	ReviewedAt *time.Time `json:"reviewedAt"`
}

// ToDocumentResponse mapea la entidad.
func ToDocumentResponse(d *entity.Document) DocumentResponse {
	return DocumentResponse{
		ID:         d.ID,
		UserID:     d.UserID,
		Type:       d.Type,
		Title:      d.Title,
		FileURL:    d.FileURL,
		FileName:   d.FileName,
		UploadDate: d.UploadDate,
		Status:     string(d.Status),
		Notes:      d.Notes,
		ReviewedBy: d.ReviewedBy,
		ReviewedAt: d.ReviewedAt,
	}
}

// ToDocumentResponses mapea una lista.
func ToDocumentResponses(list []*entity.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(list))
	for _, d := range list {
		out = append(out, ToDocumentResponse(d))
	}
	return out
}
