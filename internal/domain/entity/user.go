package entity

import "time"

// Roles válidos para User.
const (
	RoleClient     = "client"     // dueño de pequeña empresa
	RoleAccountant = "accountant" // contador que revisa gastos y documentos
)

// ValidRole indica si el rol pertenece al conjunto cerrado.
func ValidRole(role string) bool {
	return role == RoleClient || role == RoleAccountant
}

// User representa un usuario del sistema. El rol es inmutable después de la creación.
type User struct {
	ID           int64
	Username     string // único global
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Email        string
	FullName     string
	Role         string // client, accountant
	CreatedAt    time.Time
}
