// Package session defines the authenticated identity held by the app shell
// and mirrored into the persisted store.
package session

import (
	"fmt"
	"strings"
)

// Role determines which copy and quick actions the screens present.
// It never gates access; there is nothing to gate in the prototype.
type Role string

const (
	RoleFarmer Role = "farmer"
	RoleBuyer  Role = "buyer"
)

// ParseRole converts a stored string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleFarmer:
		return RoleFarmer, nil
	case RoleBuyer:
		return RoleBuyer, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// IsValid reports whether r is one of the two known roles.
func (r Role) IsValid() bool {
	return r == RoleFarmer || r == RoleBuyer
}

// Other returns the opposite role. Used by the role-switch intent.
func (r Role) Other() Role {
	if r == RoleFarmer {
		return RoleBuyer
	}
	return RoleFarmer
}

// Label returns the display name shown in badges and menus.
func (r Role) Label() string {
	if r == RoleFarmer {
		return "Farmer"
	}
	return "Buyer"
}

// Icon returns the emoji used next to the role across screens.
func (r Role) Icon() string {
	if r == RoleFarmer {
		return "👨‍🌾"
	}
	return "🏢"
}

// Session is the authenticated identity: who is using the app and as what.
// It is owned by the app shell and persisted across restarts.
type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Validate reports whether the session has the expected shape. A stored
// record that fails this check is treated as corrupt and discarded.
func (s Session) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("session name is empty")
	}
	at := strings.Index(s.Email, "@")
	if at <= 0 || !strings.Contains(s.Email[at:], ".") {
		return fmt.Errorf("session email %q is malformed", s.Email)
	}
	if !s.Role.IsValid() {
		return fmt.Errorf("session role %q is invalid", s.Role)
	}
	return nil
}
