package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/flag-league/models"
)

// ApplicationRepository reads tournament entries. Only approved applications matter to
// standings, so both methods filter on approved = true.
type ApplicationRepository interface {
	ListApprovedTeams(ctx context.Context, tournamentID int) ([]models.Team, error)
	ListApproved(ctx context.Context) ([]models.Application, error)
}

type postgresApplicationRepository struct {
	db *sql.DB
}

func NewPostgresApplicationRepository(db *sql.DB) ApplicationRepository {
	return &postgresApplicationRepository{db: db}
}

func (r *postgresApplicationRepository) ListApprovedTeams(ctx context.Context, tournamentID int) ([]models.Team, error) {
	query := `
		SELECT t.id, t.name, t.created_at
		FROM tournament_applications a
		JOIN teams t ON t.id = a.team_id
		WHERE a.tournament_id = $1 AND a.approved = TRUE
		ORDER BY t.name, t.id`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved teams for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var team models.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan approved team: %w", err)
		}
		teams = append(teams, team)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during approved team rows iteration: %w", err)
	}
	return teams, nil
}

// ListApproved returns every approved application of the season with its team attached.
func (r *postgresApplicationRepository) ListApproved(ctx context.Context) ([]models.Application, error) {
	query := `
		SELECT a.id, a.team_id, a.tournament_id, a.approved, a.applied_at,
		       t.id, t.name, t.created_at
		FROM tournament_applications a
		JOIN teams t ON t.id = a.team_id
		WHERE a.approved = TRUE
		ORDER BY a.tournament_id, t.name, t.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved applications: %w", err)
	}
	defer rows.Close()

	apps := make([]models.Application, 0)
	for rows.Next() {
		var a models.Application
		var team models.Team
		if err := rows.Scan(
			&a.ID, &a.TeamID, &a.TournamentID, &a.Approved, &a.AppliedAt,
			&team.ID, &team.Name, &team.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		a.Team = &team
		apps = append(apps, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during application rows iteration: %w", err)
	}
	return apps, nil
}
