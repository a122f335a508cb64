package middleware

import (
	"context"

	"github.com/Dosada05/flag-league/models"
)

// Actor is the authenticated caller as seen by handlers.
type Actor struct {
	UserID int
	Role   models.UserRole
	TeamID *int
}

// ActorFromContext builds the Actor from the claims stored by Authenticate.
func ActorFromContext(ctx context.Context) (Actor, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return Actor{}, err
	}
	role, err := GetUserRoleFromContext(ctx)
	if err != nil {
		return Actor{}, err
	}
	teamID, err := GetTeamIDFromContext(ctx)
	if err != nil {
		return Actor{}, err
	}
	return Actor{UserID: userID, Role: role, TeamID: teamID}, nil
}

func (a Actor) CanAdminister() bool {
	return a.Role == models.RoleAdmin
}

// CanUseScorecard is true for team accounts. Staff manage scores through the admin
// override instead.
func (a Actor) CanUseScorecard() bool {
	return a.Role == models.RoleTeam && a.TeamID != nil
}

// CanOfficiate reports whether the caller's team is the assigned referee of m.
func (a Actor) CanOfficiate(m *models.Match) bool {
	return a.CanUseScorecard() && *a.TeamID == m.RefereeID
}
