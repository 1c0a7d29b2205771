// Package models defines the marketplace records persisted by the client:
// users, seeker and carrier posts, deals and their chat messages.
//
// JSON field names match the stored document layout (userId, timelineIdx,
// ts …) so existing data keeps loading.
package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/luggageshare/internal/common"
)

// Role tells which side of the marketplace a user acts on.
type Role string

const (
	RoleSeeker  Role = "seeker"
	RoleCarrier Role = "carrier"
)

// ParseRole accepts "seeker" or "carrier" in any letter case.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleSeeker, RoleCarrier:
		return r, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", common.ErrValidation, s)
	}
}

// UnknownUserName is shown wherever a referenced user cannot be resolved.
const UnknownUserName = "unknown user"

// DefaultUserName is given to users who log in without a name.
const DefaultUserName = "user"

// User is a marketplace participant. Photo holds an inline data URL or "".
type User struct {
	ID    string `json:"id"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// NewUser validates and builds a User. A blank name becomes DefaultUserName.
func NewUser(id string, role Role, name, photo string) (*User, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: user id is required", common.ErrValidation)
	}
	if role != RoleSeeker && role != RoleCarrier {
		return nil, fmt.Errorf("%w: unknown role %q", common.ErrValidation, role)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultUserName
	}
	return &User{ID: id, Role: role, Name: name, Photo: photo}, nil
}

// FindUser returns the user with the given id, or nil.
func FindUser(users []User, id string) *User {
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}

// UserName resolves id to a display name, falling back to UnknownUserName.
func UserName(users []User, id string) string {
	if u := FindUser(users, id); u != nil && u.Name != "" {
		return u.Name
	}
	return UnknownUserName
}
