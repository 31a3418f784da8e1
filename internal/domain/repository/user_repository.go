package repository

import "github.com/jhoicas/comptalink-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get* devuelven (nil, nil) cuando el registro no existe:
// la ausencia es un resultado normal, no un error.
type UserRepository interface {
	Create(user *entity.User) (*entity.User, error)
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	// ListClients devuelve los usuarios con rol client ordenados por
	// FullName ascendente con colación francesa.
	ListClients() ([]*entity.User, error)
	// ListByRole devuelve todos los usuarios con el rol indicado (sin orden garantizado).
	ListByRole(role string) ([]*entity.User, error)
}
