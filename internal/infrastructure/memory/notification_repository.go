package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/comptalink-api/internal/domain/entity"
	"github.com/jhoicas/comptalink-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación en memoria del puerto NotificationRepository.
type NotificationRepo struct {
	mu            sync.RWMutex
	notifications map[int64]*entity.Notification
	nextID        int64
}

// NewNotificationRepository construye el adaptador en memoria para notificaciones.
func NewNotificationRepository() *NotificationRepo {
	return &NotificationRepo{notifications: make(map[int64]*entity.Notification), nextID: 1}
}

// Create asigna el siguiente id, estampa CreatedAt y almacena la notificación sin leer.
func (r *NotificationRepo) Create(n *entity.Notification) (*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := *n
	v.ID = r.nextID
	r.nextID++
	v.CreatedAt = time.Now()
	v.Read = false
	r.notifications[v.ID] = &v
	return cloneNotification(&v), nil
}

// GetByID devuelve la notificación o (nil, nil) si no existe.
func (r *NotificationRepo) GetByID(id int64) (*entity.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneNotification(r.notifications[id]), nil
}

// ListByUser devuelve las notificaciones del destinatario, más reciente primero.
func (r *NotificationRepo) ListByUser(userID int64) ([]*entity.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Notification, 0)
	for _, n := range r.notifications {
		if n.UserID == userID {
			result = append(result, cloneNotification(n))
		}
	}
	// Dos avisos pueden compartir instante (el reloj no es monotónico a
	// nivel de registro); a igual CreatedAt decide el id más alto.
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// MarkRead marca la notificación como leída. Read nunca vuelve a false.
func (r *NotificationRepo) MarkRead(id int64) (*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[id]
	if !ok {
		return nil, nil
	}
	updated := *n
	updated.Read = true
	r.notifications[id] = &updated
	return cloneNotification(&updated), nil
}

// cloneNotification copia el registro antes de entregarlo.
func cloneNotification(n *entity.Notification) *entity.Notification {
	if n == nil {
		return nil
	}
	c := *n
	return &c
}
