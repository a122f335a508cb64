package services

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/Dosada05/flag-league/live"
	"github.com/Dosada05/flag-league/models"
	"github.com/Dosada05/flag-league/repositories"
	"github.com/Dosada05/flag-league/storage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intPtr(v int) *int { return &v }

// ------------------------
// Fake Transactor
// ------------------------

type FakeTransactor struct {
	calls int
}

func (f *FakeTransactor) WithinTx(_ context.Context, fn func(exec repositories.SQLExecutor) error) error {
	f.calls++
	return fn(nil)
}

// ------------------------
// Fake Tournament / Team / Application repos
// ------------------------

type FakeTournamentRepo struct {
	GetByIDFunc func(ctx context.Context, id int) (*models.Tournament, error)
	ListFunc    func(ctx context.Context) ([]models.Tournament, error)
}

func (f *FakeTournamentRepo) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return &models.Tournament{ID: id, Name: "Spring Cup"}, nil
}

func (f *FakeTournamentRepo) List(ctx context.Context) ([]models.Tournament, error) {
	if f.ListFunc != nil {
		return f.ListFunc(ctx)
	}
	return []models.Tournament{}, nil
}

type FakeTeamRepo struct {
	GetByIDFunc func(ctx context.Context, id int) (*models.Team, error)
	ListAllFunc func(ctx context.Context) ([]models.Team, error)
}

func (f *FakeTeamRepo) GetByID(ctx context.Context, id int) (*models.Team, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return nil, repositories.ErrTeamNotFound
}

func (f *FakeTeamRepo) ListAll(ctx context.Context) ([]models.Team, error) {
	if f.ListAllFunc != nil {
		return f.ListAllFunc(ctx)
	}
	return []models.Team{}, nil
}

type FakeApplicationRepo struct {
	ListApprovedTeamsFunc func(ctx context.Context, tournamentID int) ([]models.Team, error)
	ListApprovedFunc      func(ctx context.Context) ([]models.Application, error)
}

func (f *FakeApplicationRepo) ListApprovedTeams(ctx context.Context, tournamentID int) ([]models.Team, error) {
	if f.ListApprovedTeamsFunc != nil {
		return f.ListApprovedTeamsFunc(ctx, tournamentID)
	}
	return []models.Team{}, nil
}

func (f *FakeApplicationRepo) ListApproved(ctx context.Context) ([]models.Application, error) {
	if f.ListApprovedFunc != nil {
		return f.ListApprovedFunc(ctx)
	}
	return []models.Application{}, nil
}

type FakeUserRepo struct {
	GetByIDFunc    func(ctx context.Context, id int) (*models.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*models.User, error)
}

func (f *FakeUserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return nil, repositories.ErrUserNotFound
}

func (f *FakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.GetByEmailFunc != nil {
		return f.GetByEmailFunc(ctx, email)
	}
	return nil, repositories.ErrUserNotFound
}

// ------------------------
// In-memory match store
// ------------------------

// memStore backs the match, score event and official repositories with maps so that
// scorecard flows can be exercised end to end. Failure hooks let tests break one step.
type memStore struct {
	mu        sync.Mutex
	matches   map[int]models.Match
	events    map[int]models.ScoreEvent
	officials map[int][]models.OfficialAssignment
	nextEvent int

	CreateEventErr     error
	UpdateScorecardErr error
}

func newMemStore(matches ...models.Match) *memStore {
	s := &memStore{
		matches:   make(map[int]models.Match),
		events:    make(map[int]models.ScoreEvent),
		officials: make(map[int][]models.OfficialAssignment),
		nextEvent: 1,
	}
	for _, m := range matches {
		s.matches[m.ID] = m
	}
	return s
}

func (s *memStore) match(id int) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.matches[id]
	if !ok {
		return nil, repositories.ErrMatchNotFound
	}
	return &m, nil
}

func (s *memStore) GetByID(_ context.Context, id int) (*models.Match, error) { return s.match(id) }

func (s *memStore) GetForUpdate(_ context.Context, _ repositories.SQLExecutor, id int) (*models.Match, error) {
	return s.match(id)
}

func (s *memStore) ListByTournament(_ context.Context, tournamentID int) ([]*models.Match, error) {
	return s.filter(func(m models.Match) bool { return m.TournamentID == tournamentID }), nil
}

func (s *memStore) ListByReferee(_ context.Context, tournamentID, refereeTeamID int) ([]*models.Match, error) {
	return s.filter(func(m models.Match) bool {
		return m.TournamentID == tournamentID && m.RefereeID == refereeTeamID
	}), nil
}

func (s *memStore) filter(keep func(models.Match) bool) []*models.Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Match, 0)
	for _, m := range s.matches {
		if keep(m) {
			m := m
			out = append(out, &m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *memStore) UpdateScorecard(_ context.Context, _ repositories.SQLExecutor, m *models.Match) error {
	if s.UpdateScorecardErr != nil {
		return s.UpdateScorecardErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[m.ID]; !ok {
		return repositories.ErrMatchNotFound
	}
	s.matches[m.ID] = *m
	return nil
}

func (s *memStore) UpdateScores(_ context.Context, _ repositories.SQLExecutor, matchID int, team1, team2 *int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.matches[matchID]
	if !ok {
		return repositories.ErrMatchNotFound
	}
	m.Team1Score, m.Team2Score = team1, team2
	s.matches[matchID] = m
	return nil
}

// score event repository

type memEvents struct{ *memStore }

func (e memEvents) Create(_ context.Context, _ repositories.SQLExecutor, ev *models.ScoreEvent) error {
	if e.CreateEventErr != nil {
		return e.CreateEventErr
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	ev.ID = e.nextEvent
	e.nextEvent++
	e.events[ev.ID] = *ev
	return nil
}

func (e memEvents) GetByID(_ context.Context, _ repositories.SQLExecutor, id int) (*models.ScoreEvent, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	ev, ok := e.events[id]
	if !ok {
		return nil, repositories.ErrScoreEventNotFound
	}
	return &ev, nil
}

func (e memEvents) Delete(_ context.Context, _ repositories.SQLExecutor, id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.events[id]; !ok {
		return repositories.ErrScoreEventNotFound
	}
	delete(e.events, id)
	return nil
}

func (e memEvents) ListByMatch(_ context.Context, _ repositories.SQLExecutor, matchID int) ([]*models.ScoreEvent, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*models.ScoreEvent, 0)
	for _, ev := range e.events {
		if ev.MatchID == matchID {
			ev := ev
			out = append(out, &ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// official repository

type memOfficials struct{ *memStore }

func (o memOfficials) ReplaceForMatch(_ context.Context, _ repositories.SQLExecutor, matchID int, crew []models.OfficialAssignment) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	stored := make([]models.OfficialAssignment, len(crew))
	for i, c := range crew {
		c.ID = i + 1
		c.MatchID = matchID
		stored[i] = c
	}
	o.officials[matchID] = stored
	return nil
}

func (o memOfficials) ListByMatch(_ context.Context, matchID int) ([]models.OfficialAssignment, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]models.OfficialAssignment{}, o.officials[matchID]...), nil
}

// ------------------------
// Fake broadcaster / uploader / metrics
// ------------------------

type FakeBroadcaster struct {
	mu       sync.Mutex
	messages map[string][]live.Message
}

func (f *FakeBroadcaster) BroadcastToRoom(room string, msg live.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.messages == nil {
		f.messages = make(map[string][]live.Message)
	}
	f.messages[room] = append(f.messages[room], msg)
}

func (f *FakeBroadcaster) Room(room string) []live.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.messages[room]
}

type FakeUploader struct {
	UploadFunc func(ctx context.Context, key, contentType string, body []byte) (*storage.UploadResult, error)
}

func (f *FakeUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return f.UploadFunc(ctx, key, contentType, body)
}

func (f *FakeUploader) GetPublicURL(key string) string {
	return "https://cdn.example/" + key
}

type FakeRecorder struct {
	mu             sync.Mutex
	events         map[string]int
	recomputations int
	standings      map[string]int
}

func (f *FakeRecorder) ScoreEventRecorded(eventType string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.events == nil {
		f.events = make(map[string]int)
	}
	f.events[eventType]++
}

func (f *FakeRecorder) ScoreRecomputed() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recomputations++
}

func (f *FakeRecorder) StandingsComputed(scope string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.standings == nil {
		f.standings = make(map[string]int)
	}
	f.standings[scope]++
}
