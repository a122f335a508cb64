package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/flag-league/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type postgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

const userSelect = `SELECT id, email, password_hash, role, team_id, created_at FROM users`

func (r *postgresUserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	return r.get(ctx, userSelect+` WHERE id = $1`, id)
}

func (r *postgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.get(ctx, userSelect+` WHERE lower(email) = lower($1)`, email)
}

func (r *postgresUserRepository) get(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var user models.User
	var teamID sql.NullInt64

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Role, &teamID, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	user.TeamID = nullIntPtr(teamID)
	return &user, nil
}
