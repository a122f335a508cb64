package standings

import "github.com/Dosada05/flag-league/models"

const (
	pointsForWin  = 2
	pointsForTie  = 1
	pointsForLoss = 0
)

// resultPoints returns the 2/1/0 result points for one game from the team's side.
func resultPoints(pointsFor, pointsAgainst int) int {
	switch {
	case pointsFor > pointsAgainst:
		return pointsForWin
	case pointsFor == pointsAgainst:
		return pointsForTie
	default:
		return pointsForLoss
	}
}

// Aggregate computes a team's stats over the complete matches in which it played.
// Matches that are incomplete or do not involve the team are skipped, so the whole
// tournament match list can be passed in. A team with no games gets zero stats and an
// empty opponent map.
func Aggregate(teamID int, matches []*models.Match) models.TeamTournamentStats {
	stats := models.TeamTournamentStats{
		TeamID:    teamID,
		Opponents: make(map[int]models.HeadToHead),
	}

	for _, m := range matches {
		if m == nil || !m.IsComplete() || !m.Involves(teamID) {
			continue
		}

		pf, pa, opponentID := *m.Team1Score, *m.Team2Score, m.Team2ID
		if m.Team1ID != teamID {
			pf, pa, opponentID = *m.Team2Score, *m.Team1Score, m.Team1ID
		}
		rp := resultPoints(pf, pa)

		stats.GamesPlayed++
		stats.Points += rp
		stats.PointsFor += pf
		stats.PointsAgainst += pa
		switch rp {
		case pointsForWin:
			stats.Wins++
		case pointsForTie:
			stats.Ties++
		default:
			stats.Losses++
		}

		h2h := stats.Opponents[opponentID]
		h2h.PointsFor += pf
		h2h.PointsAgainst += pa
		h2h.ResultPoints += rp
		stats.Opponents[opponentID] = h2h
	}

	stats.PointDiff = stats.PointsFor - stats.PointsAgainst
	return stats
}
