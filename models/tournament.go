package models

import "time"

// Tournament представляет турнир (игровой день лиги).
type Tournament struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Location  string    `json:"location" db:"location"`
	Date      time.Time `json:"date" db:"date"`
	MaxTeams  int       `json:"max_teams" db:"max_teams"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Application is a team's entry into a tournament. Only approved applications
// count toward standings and season participation.
type Application struct {
	ID           int       `json:"id" db:"id"`
	TeamID       int       `json:"team_id" db:"team_id"`
	TournamentID int       `json:"tournament_id" db:"tournament_id"`
	Approved     bool      `json:"approved" db:"approved"`
	AppliedAt    time.Time `json:"applied_at" db:"applied_at"`

	Team       *Team       `json:"team,omitempty" db:"-"`
	Tournament *Tournament `json:"tournament,omitempty" db:"-"`
}
