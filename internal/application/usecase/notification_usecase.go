package usecase

import (
	"github.com/jhoicas/comptalink-api/internal/application/dto"
	"github.com/jhoicas/comptalink-api/internal/domain"
	"github.com/jhoicas/comptalink-api/internal/domain/repository"
)

// NotificationUseCase consulta y marcado de notificaciones.
type NotificationUseCase struct {
	notifRepo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso de notificaciones.
func NewNotificationUseCase(notifRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifRepo: notifRepo}
}

// ListByActor devuelve las notificaciones del actor, más recientes primero.
func (uc *NotificationUseCase) ListByActor(actor Actor) ([]dto.NotificationResponse, error) {
	list, err := uc.notifRepo.ListByUser(actor.ID)
	if err != nil {
		return nil, err
	}
	return dto.ToNotificationResponses(list), nil
}

// MarkRead marca la notificación como leída. Solo el destinatario puede
// marcarla; la bandera nunca vuelve a false.
func (uc *NotificationUseCase) MarkRead(actor Actor, id int64) (*dto.NotificationResponse, error) {
	n, err := uc.notifRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	if n.UserID != actor.ID {
		return nil, domain.ErrForbidden
	}
	updated, err := uc.notifRepo.MarkRead(id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToNotificationResponse(updated)
	return &resp, nil
}
