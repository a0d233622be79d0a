package entity

type UserRole string

const (
	RoleStaff   UserRole = "staff"
	RoleManager UserRole = "manager"
)

type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
}
