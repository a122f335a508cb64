package scoring

import (
	"testing"
	"time"

	"github.com/Dosada05/flag-league/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kickoff = time.Date(2026, 5, 9, 10, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func liveMatch(offenseIsTeam1 bool) *models.Match {
	m := &models.Match{ID: 7, TournamentID: 1, Team1ID: 10, Team2ID: 20}
	RecordCoinToss(m, true, offenseIsTeam1, kickoff)
	return m
}

// record mimics the scorecard flow: build the event, append it, recompute.
func record(t *testing.T, m *models.Match, log []*models.ScoreEvent, et models.ScoreEventType) []*models.ScoreEvent {
	t.Helper()
	ev, err := NewEvent(m, et, nil, kickoff)
	require.NoError(t, err)
	log = append(log, &ev)
	Recompute(m, log)
	return log
}

func TestCurrentPhase(t *testing.T) {
	m := &models.Match{ID: 1}
	assert.Equal(t, PhaseSetup, CurrentPhase(m))

	RecordCoinToss(m, false, false, kickoff)
	assert.Equal(t, PhaseLive, CurrentPhase(m))
	assert.False(t, m.CoinTossWinnerIsTeam1)

	RecordCoinToss(m, true, true, kickoff.Add(time.Minute))
	assert.Equal(t, PhaseLive, CurrentPhase(m))
	assert.True(t, m.CoinTossWinnerIsTeam1)
	assert.True(t, m.OffenseIsTeam1)
	assert.Equal(t, kickoff.Add(time.Minute), *m.CoinTossAt)
}

func TestNewEvent_AwardsPoints(t *testing.T) {
	tests := []struct {
		name           string
		offenseIsTeam1 bool
		eventType      models.ScoreEventType
		wantPoints     int
		wantTeam1      bool
	}{
		{"touchdown to offense", true, models.EventTouchdown, 6, true},
		{"one point try to offense", false, models.EventOnePointTry, 1, false},
		{"two point try to offense", true, models.EventTwoPointTry, 2, true},
		{"safety to defense", true, models.EventSafety, 2, false},
		{"safety to defense when team 2 has the ball", false, models.EventSafety, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := liveMatch(tt.offenseIsTeam1)

			ev, err := NewEvent(m, tt.eventType, intPtr(12), kickoff)

			require.NoError(t, err)
			assert.Equal(t, tt.wantPoints, ev.PointsAwarded)
			assert.Equal(t, tt.wantTeam1, ev.AwardedToTeam1)
			assert.Equal(t, m.ID, ev.MatchID)
			assert.Equal(t, 12, *ev.Jersey)
			assert.Equal(t, tt.offenseIsTeam1, m.OffenseIsTeam1, "possession must not change")
		})
	}
}

func TestNewEvent_UnknownType(t *testing.T) {
	_, err := NewEvent(liveMatch(true), "FIELD_GOAL", nil, kickoff)
	assert.ErrorIs(t, err, ErrUnknownEventType)
}

func TestScorecard_DriveSequence(t *testing.T) {
	m := liveMatch(true)
	var log []*models.ScoreEvent

	log = record(t, m, log, models.EventTouchdown)
	log = record(t, m, log, models.EventOnePointTry)
	SwitchOffense(m)
	log = record(t, m, log, models.EventTouchdown)
	log = record(t, m, log, models.EventTwoPointTry)
	log = record(t, m, log, models.EventSafety)

	assert.Equal(t, 9, *m.Team1Score)
	assert.Equal(t, 8, *m.Team2Score)
	assert.Len(t, log, 5)
	assert.False(t, m.OffenseIsTeam1)
}

func TestSwitchOffense_LeavesScoreAlone(t *testing.T) {
	m := liveMatch(true)
	Recompute(m, nil)

	SwitchOffense(m)
	SwitchOffense(m)
	SwitchOffense(m)

	assert.False(t, m.OffenseIsTeam1)
	assert.Equal(t, 0, *m.Team1Score)
	assert.Equal(t, 0, *m.Team2Score)
}

func TestRecompute_Idempotent(t *testing.T) {
	m := liveMatch(false)
	log := record(t, m, nil, models.EventTouchdown)
	log = record(t, m, log, models.EventSafety)
	before := *m

	Recompute(m, log)
	Recompute(m, log)

	assert.Empty(t, cmp.Diff(before, *m))
}

func TestRecompute_AfterDelete(t *testing.T) {
	m := liveMatch(true)
	log := record(t, m, nil, models.EventTouchdown)
	log = record(t, m, log, models.EventTwoPointTry)
	log = record(t, m, log, models.EventSafety)
	require.Equal(t, 8, *m.Team1Score)
	require.Equal(t, 2, *m.Team2Score)

	remaining := []*models.ScoreEvent{log[0], log[2]}
	Recompute(m, remaining)

	assert.Equal(t, 6, *m.Team1Score)
	assert.Equal(t, 2, *m.Team2Score)
}

func TestRecompute_EmptyLogCompletesMatch(t *testing.T) {
	m := liveMatch(true)
	require.False(t, m.IsComplete())

	Recompute(m, nil)

	assert.True(t, m.IsComplete())
	assert.Equal(t, 0, *m.Team1Score)
	assert.Equal(t, 0, *m.Team2Score)
}

func TestTotals_OrderIndependent(t *testing.T) {
	events := []*models.ScoreEvent{
		{PointsAwarded: 6, AwardedToTeam1: true},
		{PointsAwarded: 2, AwardedToTeam1: false},
		nil,
		{PointsAwarded: 1, AwardedToTeam1: true},
	}
	reversed := []*models.ScoreEvent{events[3], events[2], events[1], events[0]}

	t1, t2 := Totals(events)
	r1, r2 := Totals(reversed)

	assert.Equal(t, 7, t1)
	assert.Equal(t, 2, t2)
	assert.Equal(t, t1, r1)
	assert.Equal(t, t2, r2)
}

func TestParseEventType(t *testing.T) {
	tests := []struct {
		raw     string
		want    models.ScoreEventType
		wantErr bool
	}{
		{"TD", models.EventTouchdown, false},
		{" touchdown ", models.EventTouchdown, false},
		{"pat1", models.EventOnePointTry, false},
		{"TWO_POINT_TRY", models.EventTwoPointTry, false},
		{"Safety", models.EventSafety, false},
		{"", "", true},
		{"FG", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseEventType(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownEventType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseJersey(t *testing.T) {
	tests := []struct {
		raw  string
		want *int
	}{
		{"23", intPtr(23)},
		{" 7 ", intPtr(7)},
		{"0", intPtr(0)},
		{"", nil},
		{"   ", nil},
		{"12a", nil},
		{"-4", nil},
		{"2147483647", intPtr(2147483647)},
		{"2147483648", nil},
		{"99999999999", nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseJersey(tt.raw))
			assert.Equal(t, tt.want, ParseScore(tt.raw))
		})
	}
}
