package handlers

import (
	"context"

	"github.com/Dosada05/flag-league/models"
	"github.com/Dosada05/flag-league/services"
)

// FakeScorecardService answers with the configured func or a zero value.
type FakeScorecardService struct {
	GetMatchFunc           func(ctx context.Context, matchID int) (*models.Match, error)
	ListRefereeMatchesFunc func(ctx context.Context, tournamentID, refereeTeamID int) ([]*models.Match, error)
	ScoreboardFunc         func(ctx context.Context, tournamentID int) (*models.Scoreboard, error)
	ListOfficialsFunc      func(ctx context.Context, matchID int) ([]models.OfficialAssignment, error)
	RecordCoinTossFunc     func(ctx context.Context, matchID int, input services.CoinTossInput) (*models.Match, error)
	RecordEventFunc        func(ctx context.Context, matchID int, rawType, rawJersey string) (*models.ScoreEvent, *models.Match, error)
	SwitchOffenseFunc      func(ctx context.Context, matchID int) (*models.Match, error)
	DeleteEventFunc        func(ctx context.Context, matchID, eventID int) (*models.Match, error)
	RecomputeScoreFunc     func(ctx context.Context, matchID int) (*models.Match, error)
	ListEventsFunc         func(ctx context.Context, matchID int) ([]*models.ScoreEvent, error)
	UpdateMatchScoreFunc   func(ctx context.Context, matchID int, team1Raw, team2Raw string) (*models.Match, error)
}

func (f *FakeScorecardService) GetMatch(ctx context.Context, matchID int) (*models.Match, error) {
	if f.GetMatchFunc != nil {
		return f.GetMatchFunc(ctx, matchID)
	}
	return nil, services.ErrMatchNotFound
}

func (f *FakeScorecardService) ListRefereeMatches(ctx context.Context, tournamentID, refereeTeamID int) ([]*models.Match, error) {
	if f.ListRefereeMatchesFunc != nil {
		return f.ListRefereeMatchesFunc(ctx, tournamentID, refereeTeamID)
	}
	return []*models.Match{}, nil
}

func (f *FakeScorecardService) Scoreboard(ctx context.Context, tournamentID int) (*models.Scoreboard, error) {
	if f.ScoreboardFunc != nil {
		return f.ScoreboardFunc(ctx, tournamentID)
	}
	return nil, services.ErrTournamentNotFound
}

func (f *FakeScorecardService) ListOfficials(ctx context.Context, matchID int) ([]models.OfficialAssignment, error) {
	if f.ListOfficialsFunc != nil {
		return f.ListOfficialsFunc(ctx, matchID)
	}
	return []models.OfficialAssignment{}, nil
}

func (f *FakeScorecardService) RecordCoinToss(ctx context.Context, matchID int, input services.CoinTossInput) (*models.Match, error) {
	if f.RecordCoinTossFunc != nil {
		return f.RecordCoinTossFunc(ctx, matchID, input)
	}
	return &models.Match{ID: matchID}, nil
}

func (f *FakeScorecardService) RecordEvent(ctx context.Context, matchID int, rawType, rawJersey string) (*models.ScoreEvent, *models.Match, error) {
	if f.RecordEventFunc != nil {
		return f.RecordEventFunc(ctx, matchID, rawType, rawJersey)
	}
	return &models.ScoreEvent{MatchID: matchID}, &models.Match{ID: matchID}, nil
}

func (f *FakeScorecardService) SwitchOffense(ctx context.Context, matchID int) (*models.Match, error) {
	if f.SwitchOffenseFunc != nil {
		return f.SwitchOffenseFunc(ctx, matchID)
	}
	return &models.Match{ID: matchID}, nil
}

func (f *FakeScorecardService) DeleteEvent(ctx context.Context, matchID, eventID int) (*models.Match, error) {
	if f.DeleteEventFunc != nil {
		return f.DeleteEventFunc(ctx, matchID, eventID)
	}
	return &models.Match{ID: matchID}, nil
}

func (f *FakeScorecardService) RecomputeScore(ctx context.Context, matchID int) (*models.Match, error) {
	if f.RecomputeScoreFunc != nil {
		return f.RecomputeScoreFunc(ctx, matchID)
	}
	return &models.Match{ID: matchID}, nil
}

func (f *FakeScorecardService) ListEvents(ctx context.Context, matchID int) ([]*models.ScoreEvent, error) {
	if f.ListEventsFunc != nil {
		return f.ListEventsFunc(ctx, matchID)
	}
	return []*models.ScoreEvent{}, nil
}

func (f *FakeScorecardService) UpdateMatchScore(ctx context.Context, matchID int, team1Raw, team2Raw string) (*models.Match, error) {
	if f.UpdateMatchScoreFunc != nil {
		return f.UpdateMatchScoreFunc(ctx, matchID, team1Raw, team2Raw)
	}
	return &models.Match{ID: matchID}, nil
}

type FakeStandingsService struct {
	TournamentStandingsFunc func(ctx context.Context, tournamentID int) ([]models.StandingsRow, error)
	SeasonStandingsFunc     func(ctx context.Context) ([]models.SeasonRow, error)
	PublishFunc             func(ctx context.Context, tournamentID int) (*services.PublishedSnapshot, error)
}

func (f *FakeStandingsService) TournamentStandings(ctx context.Context, tournamentID int) ([]models.StandingsRow, error) {
	if f.TournamentStandingsFunc != nil {
		return f.TournamentStandingsFunc(ctx, tournamentID)
	}
	return []models.StandingsRow{}, nil
}

func (f *FakeStandingsService) SeasonStandings(ctx context.Context) ([]models.SeasonRow, error) {
	if f.SeasonStandingsFunc != nil {
		return f.SeasonStandingsFunc(ctx)
	}
	return []models.SeasonRow{}, nil
}

func (f *FakeStandingsService) PublishTournamentStandings(ctx context.Context, tournamentID int) (*services.PublishedSnapshot, error) {
	if f.PublishFunc != nil {
		return f.PublishFunc(ctx, tournamentID)
	}
	return nil, services.ErrPublishingOffline
}

type FakeAuthService struct {
	LoginFunc func(ctx context.Context, input services.LoginInput) (*models.User, error)
}

func (f *FakeAuthService) Login(ctx context.Context, input services.LoginInput) (*models.User, error) {
	if f.LoginFunc != nil {
		return f.LoginFunc(ctx, input)
	}
	return nil, services.ErrAuthInvalidCredentials
}
