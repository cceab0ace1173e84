package models

// User is the persistence model for an application account.
// Passwords are stored as bcrypt hashes only.
type User struct {
	UserID       string `db:"user_id" json:"userID"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"passwordHash"`
	Name         string `db:"name" json:"name"`
	Role         string `db:"role" json:"role"`
	AuditFields
}
