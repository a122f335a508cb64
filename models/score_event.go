package models

import "time"

type ScoreEventType string

const (
	EventTouchdown   ScoreEventType = "TD"
	EventOnePointTry ScoreEventType = "PAT1"
	EventTwoPointTry ScoreEventType = "PAT2"
	EventSafety      ScoreEventType = "SAFETY"
)

// ScoreEvent is one entry of a match's append-only scoring log. It is never updated,
// only created or deleted.
type ScoreEvent struct {
	ID             int            `json:"id" db:"id"`
	MatchID        int            `json:"match_id" db:"match_id"`
	EventType      ScoreEventType `json:"event_type" db:"event_type"`
	Jersey         *int           `json:"jersey,omitempty" db:"jersey"`
	PointsAwarded  int            `json:"points_awarded" db:"points_awarded"`
	AwardedToTeam1 bool           `json:"awarded_to_team1" db:"awarded_to_team1"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
}
