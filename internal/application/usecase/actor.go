package usecase

import "github.com/jhoicas/comptalink-api/internal/domain/entity"

// Actor identidad autenticada que ejecuta una operación (extraída del JWT).
type Actor struct {
	ID   int64
	Role string
}

// IsAccountant indica si el actor tiene rol contador.
func (a Actor) IsAccountant() bool {
	return a.Role == entity.RoleAccountant
}
