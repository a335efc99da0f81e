package entities

import "time"

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleAtendente UserRole = "atendente"
	RoleMecanico  UserRole = "mecanico"
)

// User is read by the OS service only for role and tenant checks; user CRUD
// lives elsewhere.
type User struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u User) IsTechnician() bool {
	return u.Role == RoleMecanico
}
