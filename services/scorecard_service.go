package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Dosada05/flag-league/live"
	"github.com/Dosada05/flag-league/metrics"
	"github.com/Dosada05/flag-league/models"
	"github.com/Dosada05/flag-league/repositories"
	"github.com/Dosada05/flag-league/scoring"
)

// ScorecardService is the officials' side of a match: coin toss, the scoring log and
// possession. Every change to the log recomputes and stores the score in the same
// transaction, so readers never see a log and a score that disagree.
type ScorecardService interface {
	GetMatch(ctx context.Context, matchID int) (*models.Match, error)
	ListRefereeMatches(ctx context.Context, tournamentID, refereeTeamID int) ([]*models.Match, error)
	Scoreboard(ctx context.Context, tournamentID int) (*models.Scoreboard, error)
	ListOfficials(ctx context.Context, matchID int) ([]models.OfficialAssignment, error)

	RecordCoinToss(ctx context.Context, matchID int, input CoinTossInput) (*models.Match, error)
	RecordEvent(ctx context.Context, matchID int, rawType, rawJersey string) (*models.ScoreEvent, *models.Match, error)
	SwitchOffense(ctx context.Context, matchID int) (*models.Match, error)
	DeleteEvent(ctx context.Context, matchID, eventID int) (*models.Match, error)
	RecomputeScore(ctx context.Context, matchID int) (*models.Match, error)
	ListEvents(ctx context.Context, matchID int) ([]*models.ScoreEvent, error)

	UpdateMatchScore(ctx context.Context, matchID int, team1Raw, team2Raw string) (*models.Match, error)
}

type CoinTossInput struct {
	WinnerIsTeam1  bool                        `json:"winner_is_team1"`
	OffenseIsTeam1 bool                        `json:"offense_is_team1"`
	Officials      []models.OfficialAssignment `json:"officials"`
}

type scorecardService struct {
	tx             repositories.Transactor
	matchRepo      repositories.MatchRepository
	eventRepo      repositories.ScoreEventRepository
	officialRepo   repositories.OfficialRepository
	tournamentRepo repositories.TournamentRepository
	broadcaster    LiveBroadcaster
	metrics        metrics.Recorder
	logger         *slog.Logger
	locks          *matchLocks
	now            func() time.Time
}

func NewScorecardService(
	tx repositories.Transactor,
	matchRepo repositories.MatchRepository,
	eventRepo repositories.ScoreEventRepository,
	officialRepo repositories.OfficialRepository,
	tournamentRepo repositories.TournamentRepository,
	broadcaster LiveBroadcaster,
	recorder metrics.Recorder,
	logger *slog.Logger,
) ScorecardService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &scorecardService{
		tx:             tx,
		matchRepo:      matchRepo,
		eventRepo:      eventRepo,
		officialRepo:   officialRepo,
		tournamentRepo: tournamentRepo,
		broadcaster:    broadcaster,
		metrics:        recorder,
		logger:         logger,
		locks:          newMatchLocks(),
		now:            time.Now,
	}
}

func (s *scorecardService) GetMatch(ctx context.Context, matchID int) (*models.Match, error) {
	m, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, handleRepositoryError(err, "get match")
	}
	return m, nil
}

func (s *scorecardService) ListRefereeMatches(ctx context.Context, tournamentID, refereeTeamID int) ([]*models.Match, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		return nil, handleRepositoryError(err, "get tournament")
	}
	matches, err := s.matchRepo.ListByReferee(ctx, tournamentID, refereeTeamID)
	if err != nil {
		return nil, handleRepositoryError(err, "list referee matches")
	}
	return matches, nil
}

// Scoreboard lists a tournament's games by start time for public display.
func (s *scorecardService) Scoreboard(ctx context.Context, tournamentID int) (*models.Scoreboard, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		return nil, handleRepositoryError(err, "get tournament")
	}
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, handleRepositoryError(err, "list matches")
	}
	return buildScoreboard(tournamentID, matches), nil
}

func buildScoreboard(tournamentID int, matches []*models.Match) *models.Scoreboard {
	board := &models.Scoreboard{
		TournamentID: tournamentID,
		Games:        make([]models.ScoreboardGame, 0, len(matches)),
		AllFinished:  true,
	}
	for _, m := range matches {
		game := models.ScoreboardGame{
			MatchID:     m.ID,
			Score1:      valueOrZero(m.Team1Score),
			Score2:      valueOrZero(m.Team2Score),
			StartTime:   m.StartTime.Format("15:04"),
			FieldNumber: m.FieldNumber,
			Finished:    m.IsComplete(),
		}
		if m.Team1 != nil {
			game.Team1 = m.Team1.Name
		}
		if m.Team2 != nil {
			game.Team2 = m.Team2.Name
		}
		if !game.Finished {
			board.AllFinished = false
		}
		board.Games = append(board.Games, game)
	}
	return board
}

func valueOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func (s *scorecardService) ListOfficials(ctx context.Context, matchID int) ([]models.OfficialAssignment, error) {
	if _, err := s.matchRepo.GetByID(ctx, matchID); err != nil {
		return nil, handleRepositoryError(err, "get match")
	}
	crew, err := s.officialRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, handleRepositoryError(err, "list officials")
	}
	return crew, nil
}

// RecordCoinToss starts (or restarts) the match and replaces its officiating crew.
func (s *scorecardService) RecordCoinToss(ctx context.Context, matchID int, input CoinTossInput) (*models.Match, error) {
	crew, err := normalizeCrew(input.Officials)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, matchID, "record coin toss", func(exec repositories.SQLExecutor, m *models.Match) error {
		scoring.RecordCoinToss(m, input.WinnerIsTeam1, input.OffenseIsTeam1, s.now().UTC())
		if err := s.officialRepo.ReplaceForMatch(ctx, exec, m.ID, crew); err != nil {
			return err
		}
		return s.matchRepo.UpdateScorecard(ctx, exec, m)
	})
}

// normalizeCrew drops entries without a name and rejects unknown or repeated roles.
func normalizeCrew(officials []models.OfficialAssignment) ([]models.OfficialAssignment, error) {
	crew := make([]models.OfficialAssignment, 0, len(officials))
	seen := make(map[models.OfficialRole]bool, len(officials))
	for _, o := range officials {
		o.Role = models.OfficialRole(strings.ToUpper(strings.TrimSpace(string(o.Role))))
		o.Name = strings.TrimSpace(o.Name)
		o.LicenseNumber = strings.TrimSpace(o.LicenseNumber)

		switch o.Role {
		case models.OfficialReferee, models.OfficialDownJudge, models.OfficialFieldJudge, models.OfficialSideJudge:
		default:
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidOfficials, o.Role)
		}
		if seen[o.Role] {
			return nil, fmt.Errorf("%w: role %s given twice", ErrInvalidOfficials, o.Role)
		}
		seen[o.Role] = true
		if o.Name == "" {
			continue
		}
		crew = append(crew, o)
	}
	return crew, nil
}

// RecordEvent appends a scoring play for the side the current possession implies.
// An unreadable jersey number is stored as absent.
func (s *scorecardService) RecordEvent(ctx context.Context, matchID int, rawType, rawJersey string) (*models.ScoreEvent, *models.Match, error) {
	eventType, err := scoring.ParseEventType(rawType)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidEventType, err)
	}
	jersey := scoring.ParseJersey(rawJersey)

	var recorded models.ScoreEvent
	m, err := s.mutate(ctx, matchID, "record score event", func(exec repositories.SQLExecutor, m *models.Match) error {
		ev, err := scoring.NewEvent(m, eventType, jersey, s.now().UTC())
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidEventType, err)
		}
		if err := s.eventRepo.Create(ctx, exec, &ev); err != nil {
			return err
		}
		recorded = ev
		return s.recompute(ctx, exec, m)
	})
	if err != nil {
		return nil, nil, err
	}

	s.metrics.ScoreEventRecorded(string(eventType))
	return &recorded, m, nil
}

func (s *scorecardService) SwitchOffense(ctx context.Context, matchID int) (*models.Match, error) {
	return s.mutate(ctx, matchID, "switch offense", func(exec repositories.SQLExecutor, m *models.Match) error {
		scoring.SwitchOffense(m)
		return s.matchRepo.UpdateScorecard(ctx, exec, m)
	})
}

// DeleteEvent removes one play from the log. An event of another match is reported as
// not found.
func (s *scorecardService) DeleteEvent(ctx context.Context, matchID, eventID int) (*models.Match, error) {
	return s.mutate(ctx, matchID, "delete score event", func(exec repositories.SQLExecutor, m *models.Match) error {
		ev, err := s.eventRepo.GetByID(ctx, exec, eventID)
		if err != nil {
			return err
		}
		if ev.MatchID != m.ID {
			return ErrScoreEventNotFound
		}
		if err := s.eventRepo.Delete(ctx, exec, eventID); err != nil {
			return err
		}
		return s.recompute(ctx, exec, m)
	})
}

func (s *scorecardService) RecomputeScore(ctx context.Context, matchID int) (*models.Match, error) {
	return s.mutate(ctx, matchID, "recompute score", func(exec repositories.SQLExecutor, m *models.Match) error {
		return s.recompute(ctx, exec, m)
	})
}

func (s *scorecardService) ListEvents(ctx context.Context, matchID int) ([]*models.ScoreEvent, error) {
	if _, err := s.matchRepo.GetByID(ctx, matchID); err != nil {
		return nil, handleRepositoryError(err, "get match")
	}
	events, err := s.eventRepo.ListByMatch(ctx, nil, matchID)
	if err != nil {
		return nil, handleRepositoryError(err, "list score events")
	}
	return events, nil
}

// UpdateMatchScore is the admin override. Blank or unreadable values clear that score,
// which takes the match out of the standings until it is set again. The event log is
// left untouched, so the next recompute restores the officials' score.
func (s *scorecardService) UpdateMatchScore(ctx context.Context, matchID int, team1Raw, team2Raw string) (*models.Match, error) {
	team1, team2 := scoring.ParseScore(team1Raw), scoring.ParseScore(team2Raw)

	m, err := s.mutate(ctx, matchID, "update match score", func(exec repositories.SQLExecutor, m *models.Match) error {
		m.Team1Score, m.Team2Score = team1, team2
		return s.matchRepo.UpdateScores(ctx, exec, m.ID, team1, team2)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("match score overridden",
		slog.Int("match_id", matchID),
		slog.Any("team1_score", team1),
		slog.Any("team2_score", team2))
	return m, nil
}

func (s *scorecardService) recompute(ctx context.Context, exec repositories.SQLExecutor, m *models.Match) error {
	events, err := s.eventRepo.ListByMatch(ctx, exec, m.ID)
	if err != nil {
		return err
	}
	scoring.Recompute(m, events)
	if err := s.matchRepo.UpdateScorecard(ctx, exec, m); err != nil {
		return err
	}
	s.metrics.ScoreRecomputed()
	return nil
}

// mutate runs fn against the locked match inside one transaction and, once committed,
// pushes the new match state to the tournament's live room.
func (s *scorecardService) mutate(ctx context.Context, matchID int, op string, fn func(exec repositories.SQLExecutor, m *models.Match) error) (*models.Match, error) {
	unlock := s.locks.lock(matchID)
	defer unlock()

	var updated *models.Match
	err := s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		m, err := s.matchRepo.GetForUpdate(ctx, exec, matchID)
		if err != nil {
			return err
		}
		if err := fn(exec, m); err != nil {
			return err
		}
		updated = m
		return nil
	})
	if err != nil {
		s.logger.Warn("scorecard operation failed",
			slog.String("op", op), slog.Int("match_id", matchID), slog.Any("error", err))
		return nil, handleRepositoryError(err, op)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToRoom(live.TournamentRoom(updated.TournamentID), live.Message{
			Type:    live.MessageMatchUpdated,
			Payload: updated,
		})
	}
	return updated, nil
}
