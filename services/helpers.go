package services

import (
	"errors"
	"fmt"

	"github.com/Dosada05/flag-league/repositories"
)

// handleRepositoryError translates repository sentinels into service sentinels and wraps
// everything else with the operation name.
func handleRepositoryError(err error, op string) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, repositories.ErrMatchNotFound):
		return ErrMatchNotFound
	case errors.Is(err, repositories.ErrTournamentNotFound):
		return ErrTournamentNotFound
	case errors.Is(err, repositories.ErrScoreEventNotFound):
		return ErrScoreEventNotFound
	case errors.Is(err, repositories.ErrTeamNotFound), errors.Is(err, repositories.ErrUserNotFound):
		return ErrNotFound
	case errors.Is(err, repositories.ErrScoreEventMatchInvalid):
		return ErrMatchNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
