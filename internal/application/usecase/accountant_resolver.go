package usecase

import (
	"github.com/jhoicas/comptalink-api/internal/domain/entity"
	"github.com/jhoicas/comptalink-api/internal/domain/repository"
)

// AccountantResolver decide qué usuarios del lado contable reciben las
// notificaciones de nuevos gastos y documentos. Es un puerto para poder
// cambiar la política (un contador asignado por cliente, un equipo, etc.)
// sin tocar los casos de uso.
type AccountantResolver interface {
	ResolveAccountants() ([]*entity.User, error)
}

// AllAccountantsResolver política por defecto: notifica a todos los usuarios
// con rol accountant.
type AllAccountantsResolver struct {
	userRepo repository.UserRepository
}

// NewAllAccountantsResolver construye la política por defecto.
func NewAllAccountantsResolver(userRepo repository.UserRepository) *AllAccountantsResolver {
	return &AllAccountantsResolver{userRepo: userRepo}
}

// ResolveAccountants devuelve todos los contadores registrados.
func (r *AllAccountantsResolver) ResolveAccountants() ([]*entity.User, error) {
	return r.userRepo.ListByRole(entity.RoleAccountant)
}
