package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PhoneNumber  *string  `db:"phone_number"`
	Role         UserRole `db:"role"`
	PasswordHash string   `db:"password"`
	IsActive     bool     `db:"is_active"`
}

// IsAdmin reports whether the user holds the admin role, ignoring case.
func (u *User) IsAdmin() bool {
	return EqualRole(string(u.Role), string(RoleAdmin))
}
