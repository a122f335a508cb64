package standings

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownSeasonScoring = errors.New("unknown season scoring model")

// SeasonScoring decides how many season points a single tournament result is worth.
type SeasonScoring interface {
	Name() string
	TournamentPoints(r TournamentResult) int
}

// ResultPoints is the canonical model: a tournament is worth the 2/1/0 points the team
// collected in its games there.
type ResultPoints struct{}

func (ResultPoints) Name() string { return "results" }

func (ResultPoints) TournamentPoints(r TournamentResult) int {
	return r.Stats.Points
}

// PlacementPoints awards fixed points by final rank, keyed by the number of teams in
// the tournament. Sizes or ranks missing from the table are worth nothing.
type PlacementPoints struct {
	Table map[int][]int
}

// DefaultPlacementTable is the league's award table for 3, 4 and 5 team tournaments.
func DefaultPlacementTable() map[int][]int {
	return map[int][]int{
		3: {6, 4, 2},
		4: {8, 6, 4, 2},
		5: {10, 8, 6, 4, 2},
	}
}

func (PlacementPoints) Name() string { return "placement" }

func (p PlacementPoints) TournamentPoints(r TournamentResult) int {
	awards, ok := p.Table[r.FieldSize]
	if !ok || r.Rank < 1 || r.Rank > len(awards) {
		return 0
	}
	return awards[r.Rank-1]
}

// ParseSeasonScoring maps a configuration value to a scoring model.
func ParseSeasonScoring(name string) (SeasonScoring, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "results":
		return ResultPoints{}, nil
	case "placement":
		return PlacementPoints{Table: DefaultPlacementTable()}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSeasonScoring, name)
	}
}
