package standings

import (
	"sort"
	"strings"

	"github.com/Dosada05/flag-league/models"
)

// Entry is one team's input to the tournament comparator. Stats must have been
// computed over the same match set for every entry being compared.
type Entry struct {
	Team  models.Team
	Stats models.TeamTournamentStats
}

// Compare orders two entries of the same tournament. It returns a negative value when a
// ranks above b, positive when b ranks above a and zero only for the same team.
//
// Order: points, then head-to-head result points, head-to-head differential and
// head-to-head points scored (only when the teams played each other), then total
// differential, total points scored and finally the team name.
func Compare(a, b Entry) int {
	if c := desc(a.Stats.Points, b.Stats.Points); c != 0 {
		return c
	}

	aVsB, aPlayed := a.Stats.Opponents[b.Team.ID]
	bVsA, bPlayed := b.Stats.Opponents[a.Team.ID]
	if aPlayed && bPlayed {
		if c := desc(aVsB.ResultPoints, bVsA.ResultPoints); c != 0 {
			return c
		}
		if c := desc(aVsB.PointsFor-aVsB.PointsAgainst, bVsA.PointsFor-bVsA.PointsAgainst); c != 0 {
			return c
		}
		if c := desc(aVsB.PointsFor, bVsA.PointsFor); c != 0 {
			return c
		}
	}

	if c := desc(a.Stats.PointDiff, b.Stats.PointDiff); c != 0 {
		return c
	}
	if c := desc(a.Stats.PointsFor, b.Stats.PointsFor); c != 0 {
		return c
	}
	return compareNames(a.Team, b.Team)
}

// Sort orders entries in place. Entries are first put in name order so the result does
// not depend on the order the caller loaded them in.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return compareNames(entries[i].Team, entries[j].Team) < 0
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return Compare(entries[i], entries[j]) < 0
	})
}

func desc(a, b int) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}

// compareNames is the final fallback of every comparator. Team IDs separate two teams
// that share a display name.
func compareNames(a, b models.Team) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return -desc(a.ID, b.ID)
}
