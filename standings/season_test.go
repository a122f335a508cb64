package standings

import (
	"testing"

	"github.com/Dosada05/flag-league/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(tournamentID, points, pf, pa, wins, ties, losses int) TournamentResult {
	return TournamentResult{
		TournamentID: tournamentID,
		Stats: models.TeamTournamentStats{
			Points: points, PointsFor: pf, PointsAgainst: pa, PointDiff: pf - pa,
			GamesPlayed: wins + ties + losses, Wins: wins, Ties: ties, Losses: losses,
		},
	}
}

func seasonNames(rows []models.SeasonRow) []string {
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Team.Name
	}
	return names
}

func TestSeason_BestFiveSelection(t *testing.T) {
	results := map[int][]TournamentResult{
		teamA.ID: {
			result(1, 6, 60, 20, 3, 0, 0),
			result(2, 2, 20, 30, 1, 0, 2),
			result(3, 4, 40, 30, 2, 0, 1),
			result(4, 4, 41, 30, 2, 0, 1),
			result(5, 1, 10, 30, 0, 1, 2),
			result(6, 5, 30, 20, 2, 1, 0),
			result(7, 4, 35, 30, 2, 0, 1),
		},
	}

	rows := Season([]models.Team{teamA}, results, ResultPoints{}, DefaultBestOf)

	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, 5, row.UsedTournaments)
	// 6 + 5 + 4 + 4 + 4, the two weakest (2 and 1) dropped
	assert.Equal(t, 23, row.TotalPoints)
	assert.Equal(t, 60+30+41+40+35, row.PointsFor)
	assert.Equal(t, 20+20+30+30+30, row.PointsAgainst)
	assert.Equal(t, row.PointsFor-row.PointsAgainst, row.PointDiff)
	assert.Equal(t, 11, row.Wins)
	assert.Equal(t, 1, row.Ties)
	assert.Equal(t, 3, row.Losses)

	results[teamA.ID] = append(results[teamA.ID], result(8, 0, 0, 50, 0, 0, 3))
	again := Season([]models.Team{teamA}, results, ResultPoints{}, DefaultBestOf)
	assert.Equal(t, row.TotalPoints, again[0].TotalPoints)
	assert.Equal(t, 5, again[0].UsedTournaments)
}

func TestSeason_TieOnPointsPrefersDifferentialThenPointsFor(t *testing.T) {
	results := map[int][]TournamentResult{
		teamA.ID: {
			result(1, 4, 10, 10, 2, 0, 1),
			result(2, 4, 30, 10, 2, 0, 1),
			result(3, 4, 25, 5, 2, 0, 1),
		},
	}

	rows := Season([]models.Team{teamA}, results, ResultPoints{}, 2)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].UsedTournaments)
	assert.Equal(t, 55, rows[0].PointsFor)

	// tournaments 2 and 3 share pd 20; 2 scored more
	rows = Season([]models.Team{teamA}, results, ResultPoints{}, 1)
	assert.Equal(t, 30, rows[0].PointsFor)
}

func TestSeason_IgnoresResultsWithoutGames(t *testing.T) {
	results := map[int][]TournamentResult{
		teamA.ID: {result(1, 0, 0, 0, 0, 0, 0), result(2, 2, 7, 0, 1, 0, 0)},
	}

	rows := Season([]models.Team{teamA}, results, nil, 0)

	assert.Equal(t, 1, rows[0].UsedTournaments)
	assert.Equal(t, 2, rows[0].TotalPoints)
}

func TestSeason_ZeroTournamentTeamsAppearAtTheBottom(t *testing.T) {
	results := map[int][]TournamentResult{
		teamB.ID: {result(1, 2, 7, 6, 1, 0, 1)},
	}

	rows := Season([]models.Team{teamA, teamB}, results, ResultPoints{}, DefaultBestOf)

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Bravo", "Alpha"}, seasonNames(rows))
	assert.Equal(t, models.SeasonRow{Team: teamA, Rank: 2}, rows[1])
	assert.Equal(t, 1, rows[0].Rank)
}

func TestCompareSeason(t *testing.T) {
	row := func(team models.Team, points, used, w, tie, l, pf, pa int) models.SeasonRow {
		return models.SeasonRow{
			Team: team, TotalPoints: points, UsedTournaments: used,
			Wins: w, Ties: tie, Losses: l, PointsFor: pf, PointsAgainst: pa, PointDiff: pf - pa,
		}
	}

	tests := []struct {
		name string
		a, b models.SeasonRow
		want int
	}{
		{"total points", row(teamB, 10, 5, 5, 0, 5, 0, 99), row(teamA, 8, 1, 4, 0, 0, 99, 0), -1},
		{"fewer tournaments", row(teamB, 8, 3, 4, 0, 2, 50, 50), row(teamA, 8, 4, 4, 0, 4, 90, 10), -1},
		{"win rate", row(teamB, 8, 4, 4, 0, 0, 20, 20), row(teamA, 8, 4, 3, 2, 0, 90, 10), -1},
		{"differential per game", row(teamB, 8, 4, 2, 0, 2, 40, 20), row(teamA, 8, 4, 2, 0, 2, 40, 30), -1},
		{"points scored per game", row(teamB, 8, 4, 2, 0, 2, 60, 40), row(teamA, 8, 4, 2, 0, 2, 40, 20), -1},
		{"name fallback", row(teamB, 0, 0, 0, 0, 0, 0, 0), row(teamA, 0, 0, 0, 0, 0, 0, 0), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sign(CompareSeason(tt.a, tt.b)))
			assert.Equal(t, -tt.want, sign(CompareSeason(tt.b, tt.a)))
		})
	}
}

func TestCompareSeason_EpsilonTreatsRoundOffAsEqual(t *testing.T) {
	// 1/3 and 2/6 are the same win rate; both teams differ only by name.
	a := models.SeasonRow{Team: teamA, TotalPoints: 4, UsedTournaments: 2, Wins: 1, Losses: 2}
	b := models.SeasonRow{Team: teamB, TotalPoints: 4, UsedTournaments: 2, Wins: 2, Losses: 4}

	assert.Equal(t, -1, sign(CompareSeason(a, b)))
}

func TestSeason_PlacementScoring(t *testing.T) {
	placed := func(tournamentID, rank, size int) TournamentResult {
		r := result(tournamentID, 0, 10, 10, 0, 1, 0)
		r.Rank = rank
		r.FieldSize = size
		return r
	}
	results := map[int][]TournamentResult{
		teamA.ID: {placed(1, 1, 3), placed(2, 3, 5)},
		teamB.ID: {placed(1, 2, 3), placed(2, 1, 5)},
		teamC.ID: {placed(1, 3, 3), placed(3, 1, 7)},
	}
	scoring, err := ParseSeasonScoring("placement")
	require.NoError(t, err)

	rows := Season([]models.Team{teamA, teamB, teamC}, results, scoring, DefaultBestOf)

	assert.Equal(t, []string{"Bravo", "Alpha", "Charlie"}, seasonNames(rows))
	assert.Equal(t, 14, rows[0].TotalPoints)
	assert.Equal(t, 12, rows[1].TotalPoints)
	assert.Equal(t, 2, rows[2].TotalPoints)
}

func TestParseSeasonScoring(t *testing.T) {
	s, err := ParseSeasonScoring("")
	require.NoError(t, err)
	assert.Equal(t, "results", s.Name())

	_, err = ParseSeasonScoring("elo")
	assert.ErrorIs(t, err, ErrUnknownSeasonScoring)
}
