package domain

// Role defines what a user account is allowed to do.
type Role string

const (
	// RoleAdmin manages user accounts and system settings in addition to records.
	RoleAdmin Role = "admin"
	// RoleStandard registers and edits procedure records.
	RoleStandard Role = "user"
	// RoleBilling ("faturamento") additionally controls billed/paid status.
	RoleBilling Role = "faturamento"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStandard, RoleBilling:
		return true
	}
	return false
}

// CanEditBillingStatus reports whether accounts with this role may toggle the
// billed/paid flags on a procedure record.
func (r Role) CanEditBillingStatus() bool {
	return r == RoleAdmin || r == RoleBilling
}

// User represents an account of the application in the domain.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"` // Display name, used for record audit fields
	Role         Role   `json:"role"`
	AuditFields
}
