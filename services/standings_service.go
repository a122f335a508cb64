package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/flag-league/live"
	"github.com/Dosada05/flag-league/metrics"
	"github.com/Dosada05/flag-league/models"
	"github.com/Dosada05/flag-league/repositories"
	"github.com/Dosada05/flag-league/standings"
	"github.com/Dosada05/flag-league/storage"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// seasonWorkers bounds how many tournaments are loaded and ranked at once.
const seasonWorkers = 4

type StandingsService interface {
	TournamentStandings(ctx context.Context, tournamentID int) ([]models.StandingsRow, error)
	SeasonStandings(ctx context.Context) ([]models.SeasonRow, error)
	PublishTournamentStandings(ctx context.Context, tournamentID int) (*PublishedSnapshot, error)
}

// LiveBroadcaster pushes a message to everyone watching a room.
type LiveBroadcaster interface {
	BroadcastToRoom(room string, msg live.Message)
}

type SeasonOptions struct {
	Scoring standings.SeasonScoring
	BestOf  int
}

type PublishedSnapshot struct {
	TournamentID int       `json:"tournament_id"`
	Key          string    `json:"key"`
	URL          string    `json:"url"`
	PublishedAt  time.Time `json:"published_at"`
}

type standingsSnapshot struct {
	Tournament  *models.Tournament    `json:"tournament"`
	GeneratedAt time.Time             `json:"generated_at"`
	Standings   []models.StandingsRow `json:"standings"`
}

type standingsService struct {
	tournamentRepo  repositories.TournamentRepository
	teamRepo        repositories.TeamRepository
	applicationRepo repositories.ApplicationRepository
	matchRepo       repositories.MatchRepository
	uploader        storage.FileUploader // nil when publishing is off
	broadcaster     LiveBroadcaster
	season          SeasonOptions
	metrics         metrics.Recorder
	logger          *slog.Logger
	now             func() time.Time
}

func NewStandingsService(
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
	applicationRepo repositories.ApplicationRepository,
	matchRepo repositories.MatchRepository,
	uploader storage.FileUploader,
	broadcaster LiveBroadcaster,
	season SeasonOptions,
	recorder metrics.Recorder,
	logger *slog.Logger,
) StandingsService {
	if season.Scoring == nil {
		season.Scoring = standings.ResultPoints{}
	}
	if season.BestOf <= 0 {
		season.BestOf = standings.DefaultBestOf
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &standingsService{
		tournamentRepo:  tournamentRepo,
		teamRepo:        teamRepo,
		applicationRepo: applicationRepo,
		matchRepo:       matchRepo,
		uploader:        uploader,
		broadcaster:     broadcaster,
		season:          season,
		metrics:         recorder,
		logger:          logger,
		now:             time.Now,
	}
}

func (s *standingsService) TournamentStandings(ctx context.Context, tournamentID int) ([]models.StandingsRow, error) {
	start := s.now()
	defer func() { s.metrics.StandingsComputed("tournament", time.Since(start)) }()

	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		return nil, handleRepositoryError(err, "get tournament")
	}
	return s.tournamentTable(ctx, tournamentID)
}

func (s *standingsService) tournamentTable(ctx context.Context, tournamentID int) ([]models.StandingsRow, error) {
	teams, err := s.applicationRepo.ListApprovedTeams(ctx, tournamentID)
	if err != nil {
		return nil, handleRepositoryError(err, "list approved teams")
	}
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, handleRepositoryError(err, "list matches")
	}
	return standings.Tournament(teams, matches), nil
}

// SeasonStandings ranks every tournament independently, in parallel, and folds the
// per-team results into the season table.
func (s *standingsService) SeasonStandings(ctx context.Context) ([]models.SeasonRow, error) {
	start := s.now()
	defer func() { s.metrics.StandingsComputed("season", time.Since(start)) }()

	teams, err := s.teamRepo.ListAll(ctx)
	if err != nil {
		return nil, handleRepositoryError(err, "list teams")
	}
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, handleRepositoryError(err, "list tournaments")
	}
	apps, err := s.applicationRepo.ListApproved(ctx)
	if err != nil {
		return nil, handleRepositoryError(err, "list applications")
	}

	entrants := make(map[int][]models.Team)
	for _, a := range apps {
		if a.Team != nil {
			entrants[a.TournamentID] = append(entrants[a.TournamentID], *a.Team)
		}
	}

	perTournament := make([]map[int]standings.TournamentResult, len(tournaments))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(seasonWorkers)
	for i, t := range tournaments {
		g.Go(func() error {
			matches, err := s.matchRepo.ListByTournament(gctx, t.ID)
			if err != nil {
				return fmt.Errorf("tournament %d: %w", t.ID, err)
			}
			perTournament[i] = standings.Results(t.ID, entrants[t.ID], matches)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, handleRepositoryError(err, "compute tournament results")
	}

	results := make(map[int][]standings.TournamentResult)
	for _, byTeam := range perTournament {
		for teamID, r := range byTeam {
			results[teamID] = append(results[teamID], r)
		}
	}

	rows := standings.Season(teams, results, s.season.Scoring, s.season.BestOf)
	s.logger.Debug("season standings computed",
		slog.Int("teams", len(rows)),
		slog.Int("tournaments", len(tournaments)),
		slog.String("scoring", s.season.Scoring.Name()))
	return rows, nil
}

// PublishTournamentStandings uploads the current table as a JSON snapshot and tells
// live viewers where to find it.
func (s *standingsService) PublishTournamentStandings(ctx context.Context, tournamentID int) (*PublishedSnapshot, error) {
	if s.uploader == nil {
		return nil, ErrPublishingOffline
	}

	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, handleRepositoryError(err, "get tournament")
	}
	rows, err := s.tournamentTable(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	body, err := json.Marshal(standingsSnapshot{Tournament: tournament, GeneratedAt: now, Standings: rows})
	if err != nil {
		return nil, fmt.Errorf("marshal standings snapshot: %w", err)
	}

	key := fmt.Sprintf("standings/tournament-%d/%s.json", tournamentID, uuid.NewString())
	res, err := s.uploader.Upload(ctx, key, "application/json", bytes.NewReader(body))
	if err != nil {
		s.logger.Error("failed to publish standings",
			slog.Int("tournament_id", tournamentID), slog.Any("error", err))
		return nil, fmt.Errorf("upload standings snapshot: %w", err)
	}

	snapshot := &PublishedSnapshot{
		TournamentID: tournamentID,
		Key:          res.Key,
		URL:          res.Location,
		PublishedAt:  now,
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToRoom(live.TournamentRoom(tournamentID), live.Message{
			Type:    live.MessageStandingsPublished,
			Payload: snapshot,
		})
	}
	s.logger.Info("standings published",
		slog.Int("tournament_id", tournamentID), slog.String("key", res.Key))
	return snapshot, nil
}
