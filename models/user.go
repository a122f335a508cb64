package models

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleTeam  UserRole = "team"
)

// User is a login account. Team accounts act on behalf of TeamID; admin accounts are staff.
type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         UserRole  `json:"role" db:"role"`
	TeamID       *int      `json:"team_id,omitempty" db:"team_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
