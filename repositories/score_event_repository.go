package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/flag-league/models"
)

var (
	ErrScoreEventNotFound     = errors.New("score event not found")
	ErrScoreEventMatchInvalid = errors.New("score event match invalid")
)

// ScoreEventRepository stores the append-only scoring log. Events are never updated.
type ScoreEventRepository interface {
	Create(ctx context.Context, exec SQLExecutor, ev *models.ScoreEvent) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.ScoreEvent, error)
	Delete(ctx context.Context, exec SQLExecutor, id int) error
	ListByMatch(ctx context.Context, exec SQLExecutor, matchID int) ([]*models.ScoreEvent, error)
}

type postgresScoreEventRepository struct {
	db *sql.DB
}

func NewPostgresScoreEventRepository(db *sql.DB) ScoreEventRepository {
	return &postgresScoreEventRepository{db: db}
}

func (r *postgresScoreEventRepository) Create(ctx context.Context, exec SQLExecutor, ev *models.ScoreEvent) error {
	executor := getExecutor(r.db, exec)
	query := `
		INSERT INTO score_events (match_id, event_type, jersey, points_awarded, awarded_to_team1, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := executor.QueryRowContext(ctx, query,
		ev.MatchID, ev.EventType, ev.Jersey, ev.PointsAwarded, ev.AwardedToTeam1, ev.CreatedAt,
	).Scan(&ev.ID)
	if err != nil {
		if foreignKeyViolation(err, "score_events_match_id_fkey") {
			return ErrScoreEventMatchInvalid
		}
		return fmt.Errorf("failed to insert score event for match %d: %w", ev.MatchID, err)
	}
	return nil
}

func (r *postgresScoreEventRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.ScoreEvent, error) {
	executor := getExecutor(r.db, exec)
	query := `
		SELECT id, match_id, event_type, jersey, points_awarded, awarded_to_team1, created_at
		FROM score_events
		WHERE id = $1`

	ev, err := scanScoreEvent(executor.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScoreEventNotFound
		}
		return nil, fmt.Errorf("failed to scan score event by id %d: %w", id, err)
	}
	return ev, nil
}

func (r *postgresScoreEventRepository) Delete(ctx context.Context, exec SQLExecutor, id int) error {
	executor := getExecutor(r.db, exec)
	result, err := executor.ExecContext(ctx, `DELETE FROM score_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete score event %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrScoreEventNotFound)
}

// ListByMatch returns a match's log in the order the events were recorded.
func (r *postgresScoreEventRepository) ListByMatch(ctx context.Context, exec SQLExecutor, matchID int) ([]*models.ScoreEvent, error) {
	executor := getExecutor(r.db, exec)
	query := `
		SELECT id, match_id, event_type, jersey, points_awarded, awarded_to_team1, created_at
		FROM score_events
		WHERE match_id = $1
		ORDER BY created_at, id`

	rows, err := executor.QueryContext(ctx, query, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query score events for match %d: %w", matchID, err)
	}
	defer rows.Close()

	events := make([]*models.ScoreEvent, 0)
	for rows.Next() {
		ev, err := scanScoreEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan score event: %w", err)
		}
		events = append(events, ev)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during score event rows iteration: %w", err)
	}
	return events, nil
}

func scanScoreEvent(row rowScanner) (*models.ScoreEvent, error) {
	var ev models.ScoreEvent
	var jersey sql.NullInt64
	if err := row.Scan(
		&ev.ID, &ev.MatchID, &ev.EventType, &jersey, &ev.PointsAwarded, &ev.AwardedToTeam1, &ev.CreatedAt,
	); err != nil {
		return nil, err
	}
	ev.Jersey = nullIntPtr(jersey)
	return &ev, nil
}
