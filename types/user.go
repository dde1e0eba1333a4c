// Package types
package types

import (
	"encoding/json"
	"fmt"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	role := Role(raw)
	if !role.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, raw)
	}
	*r = role
	return nil
}

// User is an account able to log in. Password holds a bcrypt hash.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Profile is the public view of a User.
type Profile struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

func (u User) Profile() Profile {
	return Profile{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}
