package user

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"      // Office administration - full access
	RoleSupervisor Role = "supervisor" // Site supervisor - manages crews and punches
	RoleWarehouse  Role = "warehouse"  // Bodega staff - manages materials
	RoleWorker     Role = "worker"     // Construction worker
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleSupervisor),
	string(RoleWarehouse),
	string(RoleWorker),
}

type User struct {
	ID              string
	Name            string
	Email           string
	RUT             string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsSupervisor checks if user supervises crews (admins included)
func (u *User) IsSupervisor() bool {
	return u.Role == RoleSupervisor || u.Role == RoleAdmin
}

// ManagesWarehouse checks if user can move stock
func (u *User) ManagesWarehouse() bool {
	return u.Role == RoleWarehouse || u.Role == RoleAdmin
}
