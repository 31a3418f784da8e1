package entity

import "time"

// Notification aviso dirigido a un usuario; se crea únicamente como efecto
// secundario de una transición del workflow. Read solo pasa de false a true.
type Notification struct {
	ID        int64
	UserID    int64 // destinatario
	Title     string
	Message   string
	Read      bool
	CreatedAt time.Time
	Link      string // opcional
}
