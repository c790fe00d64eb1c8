package domain

import "time"

type UserRole string

const (
	UserRoleCustomer UserRole = "CUSTOMER"
	UserRoleAdmin    UserRole = "ADMIN"
)

type User struct {
	ID           int32      `json:"id"`
	Email        string     `json:"email"`
	PhoneNumber  string     `json:"phone_number"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Role         UserRole   `json:"role"`
	CreatedOn    time.Time  `json:"created_on"`
	DeletedOn    *time.Time `json:"deleted_on,omitempty"`
}

// IsAdmin reports whether the user may use the admin panel endpoints.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
