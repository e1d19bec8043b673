package model

import "fmt"

// Role is the closed set of actor kinds. Anything else read from storage
// is invalid and must be treated as "not logged in".
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
	RoleStudent    Role = "student"
)

// ParseRole maps a raw string onto a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleInstructor, RoleStudent:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Valid reports whether the role is one of the three known values.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}
