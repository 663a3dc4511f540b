package domain

import (
	"strings"
	"time"
)

type User struct {
	Name    string    `json:"name"`
	Email   Email     `json:"email"`
	Role    Role      `json:"role"`
	Joined  time.Time `json:"joined"`
	Pending bool      `json:"pending,omitempty"` // technician accounts await admin approval
}

// Author is the subset of user identity embedded in threads and comments.
// Email stays server-side so reply notifications can be routed.
type Author struct {
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Role     Role   `json:"role"`
	Email    Email  `json:"-"`
}

func (u *User) AsAuthor() Author {
	return Author{
		Name:     u.Name,
		Initials: Initials(u.Name),
		Role:     u.Role,
		Email:    u.Email,
	}
}

// Initials builds the avatar fallback from a display name, e.g. "Sarah Johnson" -> "SJ".
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		b.WriteRune(r[0])
	}
	s := []rune(strings.ToUpper(b.String()))
	if len(s) == 0 {
		return "AN" // anonymous
	}
	if len(s) > 2 {
		s = s[:2]
	}
	return string(s)
}
