// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/confplan/internal/adapters/pool"
	"github.com/okian/confplan/internal/adapters/repository"
	"github.com/okian/confplan/internal/calendar"
	"github.com/okian/confplan/internal/dataset"
	"github.com/okian/confplan/internal/domain/conflict"
	"github.com/okian/confplan/internal/domain/model"
	"github.com/okian/confplan/internal/domain/rank"
	"github.com/okian/confplan/internal/profile"
	"github.com/okian/confplan/internal/report"
	"github.com/okian/confplan/pkg/logger"
	"github.com/okian/confplan/pkg/metrics"
)

// DayConflicts groups one day's conflicts for output.
type DayConflicts struct {
	Date      string           `json:"date"`
	Conflicts []model.Conflict `json:"conflicts"`
}

// ProfileInfo is the read shape for profile listings.
type ProfileInfo struct {
	ID         string   `json:"id,omitempty"`
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
	Preset     bool     `json:"preset"`
}

// Stats is the read shape for GET /stats.
type Stats struct {
	Sessions  int    `json:"sessions"`
	Days      int    `json:"days"`
	Profiles  int    `json:"profiles"`
	DataFile  string `json:"data_file"`
	StartedAt string `json:"started_at"`
}

// Service implements the planner operations over the loaded dataset.
type Service struct {
	mu sync.RWMutex

	store   repository.Store
	scoring *pool.Pool

	// custom profiles registered at runtime, keyed by name
	custom map[string]registered

	// Configuration
	dataFile              string
	defaultProfile        string
	minScore              float64
	highPriorityThreshold float64
	workerCount           int
	queueSize             int
	maxResults            int

	// State
	started   bool
	startedAt time.Time

	logger logger.Logger
}

type registered struct {
	id      string
	profile profile.Profile
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDataFile sets the dataset path loaded at Start.
func WithDataFile(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.dataFile = path
		}
	}
}

// WithStore replaces the session store (mainly for tests).
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithDefaultProfile sets the preset used when a request omits one.
func WithDefaultProfile(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.defaultProfile = name
		}
	}
}

// WithMinScore sets the default inclusive relevance threshold.
func WithMinScore(v float64) Option {
	return func(s *Service) {
		if v >= 0 {
			s.minScore = v
		}
	}
}

// WithHighPriorityThreshold sets the default conflict-detection cutoff.
func WithHighPriorityThreshold(v float64) Option {
	return func(s *Service) {
		if v >= 0 {
			s.highPriorityThreshold = v
		}
	}
}

// WithWorkerCount sets the number of scoring workers.
func WithWorkerCount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workerCount = n
		}
	}
}

// WithQueueSize bounds the scoring job queue.
func WithQueueSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.queueSize = n
		}
	}
}

// WithMaxResults caps the sessions returned per schedule request.
func WithMaxResults(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxResults = n
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		custom:                make(map[string]registered),
		defaultProfile:        "battery",
		minScore:              5,
		highPriorityThreshold: rank.DefaultHighPriorityThreshold,
		workerCount:           runtime.NumCPU(),
		queueSize:             1024,
		maxResults:            500,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	if s.store == nil {
		s.store = repository.NewMemStore()
	}
	s.scoring = pool.New(
		pool.WithWorkers(s.workerCount),
		pool.WithQueueSize(s.queueSize),
	)
	return s
}

// Start loads the dataset into the store. Safe to call once.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return ErrAlreadyStarted
	}
	if s.dataFile != "" {
		sessions, err := dataset.Load(ctx, s.dataFile)
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}
		s.store.Replace(ctx, sessions)
	}
	s.started = true
	s.startedAt = time.Now()
	s.updateProfileGauge()
	s.logger.Info(ctx, "service started",
		logger.String("data_file", s.dataFile),
		logger.Int("sessions", s.store.Count(ctx)),
	)
	return nil
}

// Stop releases service state. The planner holds no background work, so
// this only flips the lifecycle flag.
func (s *Service) Stop() {
	s.mu.Lock()
	s.started = false
	s.mu.Unlock()
}

// Plan scores the whole dataset against the named profile and returns the
// ranked schedule: threshold-inclusive filter, ascending (date, start),
// score-descending tie-break, capped at the configured maximum.
func (s *Service) Plan(ctx context.Context, profileName string, minScore float64) ([]model.ScoredSession, error) {
	prof, err := s.ResolveProfile(profileName)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	scored := s.scoring.Map(ctx, s.store.All(ctx), prof)
	ranked := rank.FilterSort(scored, minScore)
	metrics.RecordScoringRun(float64(time.Since(start).Milliseconds()))

	if len(ranked) > s.maxResults {
		ranked = ranked[:s.maxResults]
	}
	return ranked, nil
}

// Conflicts finds overlapping high-priority sessions per day. The
// threshold is independent of the schedule's min-score filter; pass a
// negative value to use the configured default.
func (s *Service) Conflicts(ctx context.Context, profileName string, threshold float64) ([]DayConflicts, error) {
	if threshold < 0 {
		threshold = s.highPriorityThreshold
	}
	prof, err := s.ResolveProfile(profileName)
	if err != nil {
		return nil, err
	}

	var out []DayConflicts
	total := 0
	for _, day := range s.store.Dates(ctx) {
		sessions, err := s.store.ByDate(ctx, day)
		if err != nil {
			continue
		}
		scored := s.scoring.Map(ctx, sessions, prof)
		high := rank.FilterSort(scored, threshold)
		found := conflict.Find(high)
		if len(found) == 0 {
			continue
		}
		total += len(found)
		out = append(out, DayConflicts{
			Date:      day.Format("2006-01-02"),
			Conflicts: found,
		})
	}
	metrics.RecordConflictsDetected(total)
	return out, nil
}

// Report builds the per-symposium summary for the ranked schedule.
func (s *Service) Report(ctx context.Context, profileName string, minScore float64) ([]report.SymposiumSummary, error) {
	ranked, err := s.Plan(ctx, profileName, minScore)
	if err != nil {
		return nil, err
	}
	return report.Symposiums(ranked), nil
}

// ExportCSV writes the ranked schedule to w as CSV.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer, profileName string, minScore float64) error {
	ranked, err := s.Plan(ctx, profileName, minScore)
	if err != nil {
		return err
	}
	return report.WriteCSV(w, ranked)
}

// Calendar builds the per-day rooms-by-time grid for the ranked schedule.
func (s *Service) Calendar(ctx context.Context, profileName string, minScore float64) ([]calendar.Day, error) {
	ranked, err := s.Plan(ctx, profileName, minScore)
	if err != nil {
		return nil, err
	}
	return calendar.Build(ranked), nil
}

// ResolveProfile returns a profile by name: runtime-registered profiles
// first, then presets, then the configured default when name is empty.
func (s *Service) ResolveProfile(name string) (profile.Profile, error) {
	metrics.RecordProfileLoad()
	if name == "" {
		name = s.defaultProfile
	}
	s.mu.RLock()
	reg, ok := s.custom[name]
	s.mu.RUnlock()
	if ok {
		return reg.profile, nil
	}
	return profile.Preset(name)
}

// RegisterProfile parses and validates a profile document and registers it
// under its name. Re-registering a name replaces it. The returned ID is
// stable for the lifetime of the registration.
func (s *Service) RegisterProfile(ctx context.Context, name string, doc []byte) (ProfileInfo, error) {
	p, err := profile.Parse(name, doc)
	if err != nil {
		return ProfileInfo{}, err
	}
	id := uuid.NewString()
	s.mu.Lock()
	s.custom[p.Name] = registered{id: id, profile: p}
	s.mu.Unlock()
	s.updateProfileGauge()

	s.logger.Info(ctx, "profile registered",
		logger.String("name", p.Name),
		logger.Int("categories", len(p.Categories)),
	)
	return profileInfo(id, p, false), nil
}

// Profiles lists presets and runtime-registered profiles.
func (s *Service) Profiles(ctx context.Context) []ProfileInfo {
	var out []ProfileInfo
	for _, name := range profile.PresetNames() {
		p, err := profile.Preset(name)
		if err != nil {
			continue
		}
		out = append(out, profileInfo("", p, true))
	}
	s.mu.RLock()
	names := make([]string, 0, len(s.custom))
	for name := range s.custom {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		reg := s.custom[name]
		out = append(out, profileInfo(reg.id, reg.profile, false))
	}
	s.mu.RUnlock()
	return out
}

// Stats reports dataset and registry sizes.
func (s *Service) Stats(ctx context.Context) Stats {
	s.mu.RLock()
	customCount := len(s.custom)
	startedAt := s.startedAt
	dataFile := s.dataFile
	s.mu.RUnlock()
	return Stats{
		Sessions:  s.store.Count(ctx),
		Days:      len(s.store.Dates(ctx)),
		Profiles:  len(profile.PresetNames()) + customCount,
		DataFile:  dataFile,
		StartedAt: startedAt.UTC().Format(time.RFC3339),
	}
}

// MinScore returns the configured default schedule threshold.
func (s *Service) MinScore() float64 { return s.minScore }

// HighPriorityThreshold returns the configured default conflict cutoff.
func (s *Service) HighPriorityThreshold() float64 { return s.highPriorityThreshold }

func (s *Service) updateProfileGauge() {
	metrics.UpdateProfileCount(len(profile.PresetNames()) + len(s.custom))
}

func profileInfo(id string, p profile.Profile, preset bool) ProfileInfo {
	names := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		names = append(names, c.Name)
	}
	return ProfileInfo{ID: id, Name: p.Name, Categories: names, Preset: preset}
}
