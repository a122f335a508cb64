package models

// ScoreboardGame is one line of the public scoreboard. Missing scores show as 0;
// Finished tells a real 0:0 apart from a game not yet played.
type ScoreboardGame struct {
	MatchID     int    `json:"id"`
	Team1       string `json:"team1"`
	Team2       string `json:"team2"`
	Score1      int    `json:"score1"`
	Score2      int    `json:"score2"`
	StartTime   string `json:"start_time"`
	FieldNumber *int   `json:"field_number,omitempty"`
	Finished    bool   `json:"finished"`
}

type Scoreboard struct {
	TournamentID int              `json:"tournament_id"`
	Games        []ScoreboardGame `json:"games"`
	AllFinished  bool             `json:"all_finished"`
}
