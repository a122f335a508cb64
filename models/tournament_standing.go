package models

// HeadToHead aggregates the games a team played against one specific opponent.
type HeadToHead struct {
	PointsFor     int `json:"points_for"`
	PointsAgainst int `json:"points_against"`
	ResultPoints  int `json:"result_points"`
}

// TeamTournamentStats is derived from a tournament's complete matches and never persisted.
// Opponents only has entries for opponents actually played.
type TeamTournamentStats struct {
	TeamID        int                `json:"team_id"`
	Points        int                `json:"points"`
	PointsFor     int                `json:"points_for"`
	PointsAgainst int                `json:"points_against"`
	PointDiff     int                `json:"point_diff"`
	GamesPlayed   int                `json:"games_played"`
	Wins          int                `json:"wins"`
	Ties          int                `json:"ties"`
	Losses        int                `json:"losses"`
	Opponents     map[int]HeadToHead `json:"-"`
}

type StandingsRow struct {
	Team          Team `json:"team"`
	Points        int  `json:"points"`
	PointsFor     int  `json:"points_for"`
	PointsAgainst int  `json:"points_against"`
	PointDiff     int  `json:"point_diff"`
	GamesPlayed   int  `json:"games_played"`
	Rank          int  `json:"rank"`
}

type SeasonRow struct {
	Team            Team `json:"team"`
	UsedTournaments int  `json:"used_tournaments"`
	TotalPoints     int  `json:"total_points"`
	Wins            int  `json:"wins"`
	Ties            int  `json:"ties"`
	Losses          int  `json:"losses"`
	PointsFor       int  `json:"points_for"`
	PointsAgainst   int  `json:"points_against"`
	PointDiff       int  `json:"point_diff"`
	Rank            int  `json:"rank"`
}
