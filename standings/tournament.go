package standings

import "github.com/Dosada05/flag-league/models"

// Ranked is a sorted entry with its 1-based rank.
type Ranked struct {
	Entry
	Rank int
}

// Rank aggregates every team over the tournament's matches, sorts them with Compare and
// assigns ranks 1..N.
func Rank(teams []models.Team, matches []*models.Match) []Ranked {
	entries := make([]Entry, 0, len(teams))
	for _, team := range teams {
		entries = append(entries, Entry{Team: team, Stats: Aggregate(team.ID, matches)})
	}
	Sort(entries)

	ranked := make([]Ranked, len(entries))
	for i, e := range entries {
		ranked[i] = Ranked{Entry: e, Rank: i + 1}
	}
	return ranked
}

// Tournament builds the standings table of one tournament. teams are the teams with an
// approved application; matches may include incomplete ones, which are ignored.
func Tournament(teams []models.Team, matches []*models.Match) []models.StandingsRow {
	ranked := Rank(teams, matches)
	rows := make([]models.StandingsRow, 0, len(ranked))
	for _, r := range ranked {
		rows = append(rows, models.StandingsRow{
			Team:          r.Team,
			Points:        r.Stats.Points,
			PointsFor:     r.Stats.PointsFor,
			PointsAgainst: r.Stats.PointsAgainst,
			PointDiff:     r.Stats.PointDiff,
			GamesPlayed:   r.Stats.GamesPlayed,
			Rank:          r.Rank,
		})
	}
	return rows
}

// TournamentResult is one team's performance in one tournament, as used by the season table.
type TournamentResult struct {
	TournamentID int
	Stats        models.TeamTournamentStats
	Rank         int
	FieldSize    int
}

// Results ranks a tournament and returns each team's result keyed by team ID.
// Teams without a complete game are left out; they do not qualify for the season table.
func Results(tournamentID int, teams []models.Team, matches []*models.Match) map[int]TournamentResult {
	ranked := Rank(teams, matches)
	out := make(map[int]TournamentResult, len(ranked))
	for _, r := range ranked {
		if r.Stats.GamesPlayed == 0 {
			continue
		}
		out[r.Team.ID] = TournamentResult{
			TournamentID: tournamentID,
			Stats:        r.Stats,
			Rank:         r.Rank,
			FieldSize:    len(ranked),
		}
	}
	return out
}
