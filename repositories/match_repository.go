package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/flag-league/models"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchRepository interface {
	GetByID(ctx context.Context, id int) (*models.Match, error)
	// GetForUpdate locks the match row until exec's transaction ends.
	GetForUpdate(ctx context.Context, exec SQLExecutor, id int) (*models.Match, error)
	ListByTournament(ctx context.Context, tournamentID int) ([]*models.Match, error)
	ListByReferee(ctx context.Context, tournamentID, refereeTeamID int) ([]*models.Match, error)
	UpdateScorecard(ctx context.Context, exec SQLExecutor, match *models.Match) error
	UpdateScores(ctx context.Context, exec SQLExecutor, matchID int, team1Score, team2Score *int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

const matchSelect = `
	SELECT m.id, m.tournament_id, m.team1_id, m.team2_id, m.referee_id, m.start_time,
	       m.team1_score, m.team2_score, m.field_number,
	       m.coin_toss_winner_is_team1, m.offense_is_team1, m.coin_toss_at,
	       t1.name, t2.name, rt.name
	FROM matches m
	JOIN teams t1 ON t1.id = m.team1_id
	JOIN teams t2 ON t2.id = m.team2_id
	JOIN teams rt ON rt.id = m.referee_id`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMatch(row rowScanner) (*models.Match, error) {
	var m models.Match
	var team1Score, team2Score, fieldNumber sql.NullInt64
	var coinTossAt sql.NullTime
	var team1Name, team2Name, refereeName string

	if err := row.Scan(
		&m.ID, &m.TournamentID, &m.Team1ID, &m.Team2ID, &m.RefereeID, &m.StartTime,
		&team1Score, &team2Score, &fieldNumber,
		&m.CoinTossWinnerIsTeam1, &m.OffenseIsTeam1, &coinTossAt,
		&team1Name, &team2Name, &refereeName,
	); err != nil {
		return nil, err
	}

	m.Team1Score = nullIntPtr(team1Score)
	m.Team2Score = nullIntPtr(team2Score)
	m.FieldNumber = nullIntPtr(fieldNumber)
	if coinTossAt.Valid {
		at := coinTossAt.Time
		m.CoinTossAt = &at
	}
	m.Team1 = &models.Team{ID: m.Team1ID, Name: team1Name}
	m.Team2 = &models.Team{ID: m.Team2ID, Name: team2Name}
	m.Referee = &models.Team{ID: m.RefereeID, Name: refereeName}
	return &m, nil
}

func nullIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	m, err := scanMatch(r.db.QueryRowContext(ctx, matchSelect+` WHERE m.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to scan match by id %d: %w", id, err)
	}
	return m, nil
}

func (r *postgresMatchRepository) GetForUpdate(ctx context.Context, exec SQLExecutor, id int) (*models.Match, error) {
	executor := getExecutor(r.db, exec)
	m, err := scanMatch(executor.QueryRowContext(ctx, matchSelect+` WHERE m.id = $1 FOR UPDATE OF m`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to lock match %d: %w", id, err)
	}
	return m, nil
}

// ListByTournament returns all matches of a tournament, complete or not, by start time.
func (r *postgresMatchRepository) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Match, error) {
	return r.list(ctx, matchSelect+` WHERE m.tournament_id = $1 ORDER BY m.start_time, m.id`, tournamentID)
}

func (r *postgresMatchRepository) ListByReferee(ctx context.Context, tournamentID, refereeTeamID int) ([]*models.Match, error) {
	return r.list(ctx,
		matchSelect+` WHERE m.tournament_id = $1 AND m.referee_id = $2 ORDER BY m.start_time, m.id`,
		tournamentID, refereeTeamID)
}

func (r *postgresMatchRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.Match, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during match rows iteration: %w", err)
	}
	return matches, nil
}

// UpdateScorecard persists the live state of a match: coin toss, possession and scores.
func (r *postgresMatchRepository) UpdateScorecard(ctx context.Context, exec SQLExecutor, m *models.Match) error {
	executor := getExecutor(r.db, exec)
	query := `
		UPDATE matches
		SET team1_score = $1, team2_score = $2,
		    coin_toss_winner_is_team1 = $3, offense_is_team1 = $4, coin_toss_at = $5
		WHERE id = $6`

	result, err := executor.ExecContext(ctx, query,
		m.Team1Score, m.Team2Score, m.CoinTossWinnerIsTeam1, m.OffenseIsTeam1, m.CoinTossAt, m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update scorecard of match %d: %w", m.ID, err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) UpdateScores(ctx context.Context, exec SQLExecutor, matchID int, team1Score, team2Score *int) error {
	executor := getExecutor(r.db, exec)
	query := `UPDATE matches SET team1_score = $1, team2_score = $2 WHERE id = $3`

	result, err := executor.ExecContext(ctx, query, team1Score, team2Score, matchID)
	if err != nil {
		return fmt.Errorf("failed to update scores of match %d: %w", matchID, err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}
