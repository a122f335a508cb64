// Package scoring derives a live match's score from its log of officiating decisions.
// The score fields on a match are a projection of the event log and are only ever
// written by Recompute.
package scoring

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Dosada05/flag-league/models"
)

var ErrUnknownEventType = errors.New("unknown score event type")

type Phase string

const (
	PhaseSetup Phase = "SETUP"
	PhaseLive  Phase = "LIVE"
)

var eventPoints = map[models.ScoreEventType]int{
	models.EventTouchdown:   6,
	models.EventOnePointTry: 1,
	models.EventTwoPointTry: 2,
	models.EventSafety:      2,
}

var eventAliases = map[string]models.ScoreEventType{
	"TD":            models.EventTouchdown,
	"TOUCHDOWN":     models.EventTouchdown,
	"PAT1":          models.EventOnePointTry,
	"ONE_POINT_TRY": models.EventOnePointTry,
	"PAT2":          models.EventTwoPointTry,
	"TWO_POINT_TRY": models.EventTwoPointTry,
	"SAFETY":        models.EventSafety,
}

// CurrentPhase reports SETUP until the coin toss has been recorded.
func CurrentPhase(m *models.Match) Phase {
	if m.CoinTossAt == nil {
		return PhaseSetup
	}
	return PhaseLive
}

// RecordCoinToss sets the coin toss winner and the side starting on offense.
// Calling it again overwrites the previous values so the crew can correct itself.
func RecordCoinToss(m *models.Match, winnerIsTeam1, offenseIsTeam1 bool, at time.Time) {
	m.CoinTossWinnerIsTeam1 = winnerIsTeam1
	m.OffenseIsTeam1 = offenseIsTeam1
	m.CoinTossAt = &at
}

// SwitchOffense flips possession. It creates no event and leaves the score alone.
func SwitchOffense(m *models.Match) {
	m.OffenseIsTeam1 = !m.OffenseIsTeam1
}

// ParseEventType accepts the short codes (TD, PAT1, PAT2, SAFETY) and the long names.
func ParseEventType(raw string) (models.ScoreEventType, error) {
	t, ok := eventAliases[strings.ToUpper(strings.TrimSpace(raw))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEventType, raw)
	}
	return t, nil
}

// Points returns the points a scoring play of the given type is worth.
func Points(t models.ScoreEventType) (int, error) {
	p, ok := eventPoints[t]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownEventType, t)
	}
	return p, nil
}

// NewEvent builds the score event for a play given the current possession.
// Points go to the offense, except a safety which goes to the defense.
// The match itself is not modified; the caller appends the event and then calls Recompute.
func NewEvent(m *models.Match, t models.ScoreEventType, jersey *int, at time.Time) (models.ScoreEvent, error) {
	points, err := Points(t)
	if err != nil {
		return models.ScoreEvent{}, err
	}

	toTeam1 := m.OffenseIsTeam1
	if t == models.EventSafety {
		toTeam1 = !toTeam1
	}

	return models.ScoreEvent{
		MatchID:        m.ID,
		EventType:      t,
		Jersey:         jersey,
		PointsAwarded:  points,
		AwardedToTeam1: toTeam1,
		CreatedAt:      at,
	}, nil
}

// Totals sums the awarded points per side. Order of events does not matter.
func Totals(events []*models.ScoreEvent) (team1, team2 int) {
	for _, ev := range events {
		if ev == nil {
			continue
		}
		if ev.AwardedToTeam1 {
			team1 += ev.PointsAwarded
		} else {
			team2 += ev.PointsAwarded
		}
	}
	return team1, team2
}

// Recompute rewrites the match's scores from the full event log. It must run after every
// append or delete. An empty log yields 0:0, which marks the match complete.
func Recompute(m *models.Match, events []*models.ScoreEvent) {
	team1, team2 := Totals(events)
	m.Team1Score = &team1
	m.Team2Score = &team2
}

// ParseJersey reads an optional jersey number. Anything that is not a non-negative
// integer is treated as absent.
func ParseJersey(raw string) *int {
	return parseOptionalInt(raw)
}

// ParseScore reads an optional score value with the same leniency as ParseJersey.
func ParseScore(raw string) *int {
	return parseOptionalInt(raw)
}

// parseOptionalInt keeps values within the INT columns they are stored in.
func parseOptionalInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > math.MaxInt32 {
		return nil
	}
	return &n
}
