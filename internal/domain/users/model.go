package users

import (
	"regexp"
	"strings"
	"time"
)

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// DateLayout is the format of JoinedDate.
const DateLayout = "2006-01-02"

// User is the authenticated actor. Its JSON form is what the durable slot holds.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	Bio        string `json:"bio,omitempty"`
	JoinedDate string `json:"joined_date"`
}

func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// ParseRole normalizes a role string. ok is false for anything outside buyer|seller|admin.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}

// Valid reports whether a decoded record is usable as a session.
func (u User) Valid() bool {
	return u.ID != "" && IsEmailValid(u.Email) && u.Role.Valid()
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsEmailValid(email string) bool {
	return emailPattern.MatchString(email)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
