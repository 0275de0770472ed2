package model

import "fmt"

// Role is the coarse permission tier stored on a user account.
// Guest is never stored: it is implied by an unauthenticated requester.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
	RoleGuest     Role = "guest"
)

func ParseRole(s string) (Role, error) {
	switch s {
	case "admin":
		return RoleAdmin, nil
	case "moderator":
		return RoleModerator, nil
	case "user":
		return RoleUser, nil
	case "guest":
		return RoleGuest, nil
	default:
		return "", fmt.Errorf("unknown role: %s", s)
	}
}
