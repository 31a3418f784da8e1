package usecase

import (
	"github.com/jhoicas/comptalink-api/internal/application/dto"
	"github.com/jhoicas/comptalink-api/internal/domain"
	"github.com/jhoicas/comptalink-api/internal/domain/repository"
)

// ClientUseCase consultas del lado contable sobre la cartera de clientes.
type ClientUseCase struct {
	userRepo repository.UserRepository
}

// NewClientUseCase construye el caso de uso de clientes.
func NewClientUseCase(userRepo repository.UserRepository) *ClientUseCase {
	return &ClientUseCase{userRepo: userRepo}
}

// ListClients devuelve los usuarios con rol client ordenados por nombre,
// sin el hash de contraseña. Solo contadores.
func (uc *ClientUseCase) ListClients(actor Actor) ([]dto.UserResponse, error) {
	if !actor.IsAccountant() {
		return nil, domain.ErrForbidden
	}
	clients, err := uc.userRepo.ListClients()
	if err != nil {
		return nil, err
	}
	return dto.ToUserResponses(clients), nil
}
