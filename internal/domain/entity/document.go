package entity

import "time"

// Document documento de soporte subido por un cliente (factura, recibo, extracto...).
// Mismo par de revisión (ReviewedBy, ReviewedAt) que Expense.
type Document struct {
	ID         int64
	UserID     int64
	Type       string
	Title      string
	FileURL    string
	FileName   string
	UploadDate time.Time
	Status     ReviewStatus
	Notes      string // opcional
	ReviewedBy *int64
	ReviewedAt *time.Time
}
