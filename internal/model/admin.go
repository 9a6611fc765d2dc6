package model

// Admin roles. Super admins additionally see user billing fields.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// Admin represents an administrative account that manages the platform
// through the console API. Passwords are stored as bcrypt hashes and are
// never serialized to callers.
type Admin struct {
	ID           string  `json:"id" db:"id"`
	Email        string  `json:"email" db:"email"`
	Username     string  `json:"username" db:"username"`
	FullName     string  `json:"full_name" db:"full_name"`
	Role         string  `json:"role" db:"role"`
	Status       string  `json:"status" db:"status"`
	CreatedAt    string  `json:"created_at" db:"created_at"`
	LastLogin    *string `json:"last_login,omitempty" db:"last_login"`
	PasswordHash string  `json:"-" db:"hashed_password"` // bcrypt hash, never expose
}

// IsSuperAdmin reports whether the admin holds the super_admin role.
func (a *Admin) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}

// AdminCreate is the payload for registering a new admin account.
type AdminCreate struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AdminUpdate is the partial-update payload for an admin account. Nil fields
// are left unchanged; a non-nil Password is re-hashed before persistence.
type AdminUpdate struct {
	Email    *string `json:"email"`
	Username *string `json:"username"`
	FullName *string `json:"full_name"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
}
