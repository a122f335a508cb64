package models

import "time"

type Match struct {
	ID           int       `json:"id" db:"id"`
	TournamentID int       `json:"tournament_id" db:"tournament_id"`
	Team1ID      int       `json:"team1_id" db:"team1_id"`
	Team2ID      int       `json:"team2_id" db:"team2_id"`
	RefereeID    int       `json:"referee_id" db:"referee_id"`
	StartTime    time.Time `json:"start_time" db:"start_time"`
	Team1Score   *int      `json:"team1_score" db:"team1_score"`
	Team2Score   *int      `json:"team2_score" db:"team2_score"`
	FieldNumber  *int      `json:"field_number,omitempty" db:"field_number"` // only used for 5-team tournaments

	CoinTossWinnerIsTeam1 bool       `json:"coin_toss_winner_is_team1" db:"coin_toss_winner_is_team1"`
	OffenseIsTeam1        bool       `json:"offense_is_team1" db:"offense_is_team1"`
	CoinTossAt            *time.Time `json:"coin_toss_at,omitempty" db:"coin_toss_at"`

	Team1   *Team `json:"team1,omitempty" db:"-"`
	Team2   *Team `json:"team2,omitempty" db:"-"`
	Referee *Team `json:"referee,omitempty" db:"-"`
}

// IsComplete reports whether both scores are set. Only complete matches count toward standings.
func (m *Match) IsComplete() bool {
	return m.Team1Score != nil && m.Team2Score != nil
}

// Involves reports whether the team plays in the match (refereeing does not count).
func (m *Match) Involves(teamID int) bool {
	return m.Team1ID == teamID || m.Team2ID == teamID
}
