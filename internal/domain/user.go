// internal/domain/user.go
package domain

import "time"

// User represents a registered user of the expense ledger.
// Password holds the bcrypt hash; it is tagged omitempty so operations that
// strip it (register, login) serialize without the field, while the plain
// id lookup keeps returning it unredacted.
type User struct {
	ID        int64     `db:"id" json:"id"`                 // Primary key, BIGSERIAL in DB
	CreatedAt time.Time `db:"created_at" json:"created_at"` // Timestamp of creation
	UserName  string    `db:"user_name" json:"user_name"`   // Display name, not unique
	Email     string    `db:"email" json:"email"`           // Unique login identifier
	Password  string    `db:"password" json:"password,omitempty"`
	GroupName *string   `db:"group_name" json:"group_name"` // Optional group membership
	Role      *string   `db:"role" json:"role"`             // Optional role label
}

// NewUser creates a new User instance with its creation timestamp in UTC.
// hashedPassword must already be a bcrypt hash; the domain never sees plaintext.
func NewUser(userName, email, hashedPassword string, groupName, role *string) *User {
	return &User{
		CreatedAt: time.Now().UTC(),
		UserName:  userName,
		Email:     email,
		Password:  hashedPassword,
		GroupName: groupName,
		Role:      role,
	}
}

// Sanitize strips the password hash before the record leaves the service layer.
func (u *User) Sanitize() *User {
	u.Password = ""
	return u
}
