// internal/core/domain/user.go
package domain

// Role represents the two fixed access roles.
type Role string

const (
	RoleManager Role = "Manager"
	RoleWorker  Role = "Worker"
)

// User is a directory entry. Entries are created once at process start and
// are immutable for the process lifetime. Passwords are opaque strings
// compared by equality; hashing is out of scope for this tool.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
}
