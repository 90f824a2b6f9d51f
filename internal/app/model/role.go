package model

import "strings"

// Role is a staff role. Exactly two variants exist; everything the boundary
// receives is normalized to one of them or rejected.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleAdministrator Role = "administrator"
)

// ParseRole normalizes the role strings the clients send ("admin", "Admin",
// "Administrator", "administrator") to a canonical variant. Unknown values
// return false.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(RoleAdmin):
		return RoleAdmin, true
	case string(RoleAdministrator):
		return RoleAdministrator, true
	}
	return "", false
}

func (r Role) String() string {
	return string(r)
}
