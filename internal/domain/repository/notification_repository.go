package repository

import "github.com/jhoicas/comptalink-api/internal/domain/entity"

// NotificationRepository puerto de persistencia para Notification.
type NotificationRepository interface {
	Create(n *entity.Notification) (*entity.Notification, error)
	GetByID(id int64) (*entity.Notification, error)
	// ListByUser devuelve las notificaciones del destinatario ordenadas por CreatedAt descendente.
	ListByUser(userID int64) ([]*entity.Notification, error)
	// MarkRead marca la notificación como leída (false -> true, nunca al revés).
	// Devuelve (nil, nil) si el id no existe.
	MarkRead(id int64) (*entity.Notification, error)
}
