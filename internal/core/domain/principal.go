package domain

import "time"

// PrincipalType discriminates the two credential stores.
type PrincipalType string

const (
	TypeUser  PrincipalType = "user"
	TypeAdmin PrincipalType = "admin"
)

// AdminRole is the closed set of administrator roles.
type AdminRole string

const (
	RoleAdmin      AdminRole = "admin"
	RoleSuperAdmin AdminRole = "superadmin"
)

// Valid reports whether the role is one of the accepted admin roles.
func (r AdminRole) Valid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Deactivatable is implemented by every soft-deletable entity. Inactive
// principals are rejected at authentication time regardless of credentials.
type Deactivatable interface {
	IsActive() bool
}

// User is a customer account.
type User struct {
	ID           uint      `json:"id"`
	Nombre       string    `json:"nombre"`
	Apellido     string    `json:"apellido"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Telefono     string    `json:"telefono,omitempty"`
	FechaRegistro time.Time `json:"fecha_registro"`
	Activo       bool      `json:"activo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) IsActive() bool { return u.Activo }

// Admin is a back-office account carrying a role tag.
type Admin struct {
	ID           uint      `json:"id"`
	Nombre       string    `json:"nombre"`
	Apellido     string    `json:"apellido"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Rol          AdminRole `json:"rol"`
	FechaRegistro time.Time `json:"fecha_registro"`
	Activo       bool      `json:"activo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (a *Admin) IsActive() bool { return a.Activo }

// Principal is the resolved identity attached to a request after the auth
// middleware has verified the access token and looked up the account.
// Rol is empty for plain users.
type Principal struct {
	ID    uint          `json:"id"`
	Email string        `json:"email"`
	Type  PrincipalType `json:"type"`
	Rol   AdminRole     `json:"rol,omitempty"`
}

// IsAdmin reports whether the principal came from the admin store.
func (p Principal) IsAdmin() bool { return p.Type == TypeAdmin }

// IsSuperAdmin reports whether the principal is an admin with the superadmin role.
func (p Principal) IsSuperAdmin() bool { return p.Type == TypeAdmin && p.Rol == RoleSuperAdmin }
