package entity

// Role represents the permission level of a dashboard user.
type Role string

const (
	// RoleAdmin can manage users and change roles.
	RoleAdmin Role = "admin"
	// RoleUser is regular staff.
	RoleUser Role = "user"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}
