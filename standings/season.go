package standings

import (
	"math"
	"sort"

	"github.com/Dosada05/flag-league/models"
)

// DefaultBestOf is how many tournament results count toward a team's season total.
const DefaultBestOf = 5

const perGameEpsilon = 1e-9

type scoredResult struct {
	TournamentResult
	points int
}

// Season builds the season table. results holds, per team ID, the team's tournament
// results; results without a complete game are ignored. Every team in teams gets a row,
// teams without qualifying results get zeros and sort by the fallbacks.
func Season(teams []models.Team, results map[int][]TournamentResult, scoring SeasonScoring, bestOf int) []models.SeasonRow {
	if scoring == nil {
		scoring = ResultPoints{}
	}
	if bestOf <= 0 {
		bestOf = DefaultBestOf
	}

	rows := make([]models.SeasonRow, 0, len(teams))
	for _, team := range teams {
		rows = append(rows, seasonRow(team, results[team.ID], scoring, bestOf))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return compareNames(rows[i].Team, rows[j].Team) < 0
	})
	sort.SliceStable(rows, func(i, j int) bool {
		return CompareSeason(rows[i], rows[j]) < 0
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

func seasonRow(team models.Team, results []TournamentResult, scoring SeasonScoring, bestOf int) models.SeasonRow {
	scored := make([]scoredResult, 0, len(results))
	for _, r := range results {
		if r.Stats.GamesPlayed == 0 {
			continue
		}
		scored = append(scored, scoredResult{TournamentResult: r, points: scoring.TournamentPoints(r)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.points != b.points {
			return a.points > b.points
		}
		if a.Stats.PointDiff != b.Stats.PointDiff {
			return a.Stats.PointDiff > b.Stats.PointDiff
		}
		return a.Stats.PointsFor > b.Stats.PointsFor
	})
	if len(scored) > bestOf {
		scored = scored[:bestOf]
	}

	row := models.SeasonRow{Team: team, UsedTournaments: len(scored)}
	for _, s := range scored {
		row.TotalPoints += s.points
		row.Wins += s.Stats.Wins
		row.Ties += s.Stats.Ties
		row.Losses += s.Stats.Losses
		row.PointsFor += s.Stats.PointsFor
		row.PointsAgainst += s.Stats.PointsAgainst
	}
	// recomputed from the sums, not summed per tournament
	row.PointDiff = row.PointsFor - row.PointsAgainst
	return row
}

// CompareSeason orders two season rows: total points, fewer tournaments used, win rate,
// differential per game, points scored per game, fewer points conceded per game and
// finally the team name. Per-game ratios compare with an epsilon.
func CompareSeason(a, b models.SeasonRow) int {
	if c := desc(a.TotalPoints, b.TotalPoints); c != 0 {
		return c
	}
	if c := desc(b.UsedTournaments, a.UsedTournaments); c != 0 {
		return c
	}

	aGames := a.Wins + a.Ties + a.Losses
	bGames := b.Wins + b.Ties + b.Losses
	if c := descFloat(perGame(a.Wins, aGames), perGame(b.Wins, bGames)); c != 0 {
		return c
	}
	if c := descFloat(perGame(a.PointDiff, aGames), perGame(b.PointDiff, bGames)); c != 0 {
		return c
	}
	if c := descFloat(perGame(a.PointsFor, aGames), perGame(b.PointsFor, bGames)); c != 0 {
		return c
	}
	if c := descFloat(perGame(b.PointsAgainst, bGames), perGame(a.PointsAgainst, aGames)); c != 0 {
		return c
	}
	return compareNames(a.Team, b.Team)
}

func perGame(value, games int) float64 {
	if games == 0 {
		return 0
	}
	return float64(value) / float64(games)
}

func descFloat(a, b float64) int {
	if math.Abs(a-b) <= perGameEpsilon {
		return 0
	}
	if a > b {
		return -1
	}
	return 1
}
