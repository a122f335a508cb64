package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/flag-league/models"
)

type OfficialRepository interface {
	// ReplaceForMatch drops the match's current crew and inserts the given one.
	ReplaceForMatch(ctx context.Context, exec SQLExecutor, matchID int, crew []models.OfficialAssignment) error
	ListByMatch(ctx context.Context, matchID int) ([]models.OfficialAssignment, error)
}

type postgresOfficialRepository struct {
	db *sql.DB
}

func NewPostgresOfficialRepository(db *sql.DB) OfficialRepository {
	return &postgresOfficialRepository{db: db}
}

func (r *postgresOfficialRepository) ReplaceForMatch(ctx context.Context, exec SQLExecutor, matchID int, crew []models.OfficialAssignment) error {
	executor := getExecutor(r.db, exec)

	if _, err := executor.ExecContext(ctx, `DELETE FROM official_assignments WHERE match_id = $1`, matchID); err != nil {
		return fmt.Errorf("failed to clear officials of match %d: %w", matchID, err)
	}

	query := `
		INSERT INTO official_assignments (match_id, role, name, license_number)
		VALUES ($1, $2, $3, $4)`
	for _, o := range crew {
		if _, err := executor.ExecContext(ctx, query, matchID, o.Role, o.Name, o.LicenseNumber); err != nil {
			return fmt.Errorf("failed to insert official %s for match %d: %w", o.Role, matchID, err)
		}
	}
	return nil
}

func (r *postgresOfficialRepository) ListByMatch(ctx context.Context, matchID int) ([]models.OfficialAssignment, error) {
	query := `
		SELECT id, match_id, role, name, license_number
		FROM official_assignments
		WHERE match_id = $1
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query officials of match %d: %w", matchID, err)
	}
	defer rows.Close()

	crew := make([]models.OfficialAssignment, 0, 4)
	for rows.Next() {
		var o models.OfficialAssignment
		if err := rows.Scan(&o.ID, &o.MatchID, &o.Role, &o.Name, &o.LicenseNumber); err != nil {
			return nil, fmt.Errorf("failed to scan official: %w", err)
		}
		crew = append(crew, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during official rows iteration: %w", err)
	}
	return crew, nil
}
