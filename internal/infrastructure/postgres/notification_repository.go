package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/comptalink-api/internal/domain/entity"
	"github.com/jhoicas/comptalink-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository construye el adaptador de persistencia para notificaciones.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

const notificationColumns = `id, user_id, title, message, read, created_at, COALESCE(link, '')`

// Create persiste una notificación sin leer.
func (r *NotificationRepo) Create(n *entity.Notification) (*entity.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, title, message, link)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING ` + notificationColumns
	created, err := scanNotification(r.pool.QueryRow(context.Background(), query,
		n.UserID, n.Title, n.Message, n.Link,
	))
	if err != nil {
		return nil, fmt.Errorf("insert notification: %w", err)
	}
	return created, nil
}

// GetByID obtiene una notificación por ID; (nil, nil) si no existe.
func (r *NotificationRepo) GetByID(id int64) (*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`
	n, err := scanNotification(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return n, nil
}

// ListByUser lista las notificaciones del destinatario, más reciente primero.
func (r *NotificationRepo) ListByUser(userID int64) ([]*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// MarkRead marca la notificación como leída; (nil, nil) si el id no existe.
func (r *NotificationRepo) MarkRead(id int64) (*entity.Notification, error) {
	query := `
		UPDATE notifications SET read = TRUE
		WHERE id = $1
		RETURNING ` + notificationColumns
	n, err := scanNotification(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return n, nil
}

func scanNotification(row pgx.Row) (*entity.Notification, error) {
	var n entity.Notification
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Read, &n.CreatedAt, &n.Link)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
