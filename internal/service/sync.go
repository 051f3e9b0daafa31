package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"portfolio_sync/internal/domain"
	"portfolio_sync/internal/transform"
)

// SyncService flattens the five content domains into static fallback modules
// and records the outcome in the status store.
//
// Concurrent runs are not serialized: two overlapping runs both overwrite the
// output modules and the status file, last writer wins. The workload is small
// and the output is fallback data, so no lock is taken.
type SyncService struct {
	source    ContentSource
	writer    ModuleWriter
	status    StatusStore
	publisher Publisher // optional, may be nil
	logger    *slog.Logger
	now       func() time.Time
}

func NewSyncService(
	source ContentSource,
	writer ModuleWriter,
	status StatusStore,
	publisher Publisher,
	logger *slog.Logger,
) *SyncService {
	return &SyncService{
		source:    source,
		writer:    writer,
		status:    status,
		publisher: publisher,
		logger:    logger.With("component", "sync"),
		now:       time.Now,
	}
}

type domainSync struct {
	name string
	run  func(ctx context.Context) (int, error)
}

// Sync runs all five domain pipelines in a fixed order. One domain failing
// never stops the others; failures are aggregated into the summary. The
// returned error is non-nil only for whole-run failures: an unreachable data
// source or a status store that cannot be written.
func (s *SyncService) Sync(ctx context.Context) (*domain.RunSummary, error) {
	start := s.now()
	summary := &domain.RunSummary{
		Stats:  make(map[string]int),
		Errors: []string{},
	}

	s.logger.Info("starting sync")

	if err := s.source.Ping(ctx); err != nil {
		summary.Errors = append(summary.Errors, fmt.Sprintf("data source unreachable: %v", err))
		if finishErr := s.finish(ctx, summary, start); finishErr != nil {
			s.logger.Error("failed to persist summary", "error", finishErr)
		}
		return summary, fmt.Errorf("data source unreachable: %w", err)
	}

	for _, d := range s.domains() {
		count, err := d.run(ctx)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", d.name, err))
			s.logger.Error("domain sync failed", "domain", d.name, "error", err)
			continue
		}
		summary.Stats[d.name] = count
		s.logger.Debug("domain synced", "domain", d.name, "items", count)
	}

	if err := s.finish(ctx, summary, start); err != nil {
		return summary, err
	}

	s.logger.Info("sync completed",
		"success", summary.Success,
		"domains_ok", len(summary.Stats),
		"errors", len(summary.Errors),
		"duration_ms", summary.DurationMs,
	)

	return summary, nil
}

func (s *SyncService) finish(ctx context.Context, summary *domain.RunSummary, start time.Time) error {
	summary.Success = len(summary.Errors) == 0
	summary.Timestamp = s.now().UTC()
	summary.DurationMs = s.now().Sub(start).Milliseconds()

	if err := s.status.Write(summary); err != nil {
		return fmt.Errorf("write run summary: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishRun(ctx, summary); err != nil {
			s.logger.Warn("failed to publish run summary", "error", err)
		}
	}

	return nil
}

func (s *SyncService) domains() []domainSync {
	return []domainSync{
		{domain.DomainProjects, s.syncProjects},
		{domain.DomainPublications, s.syncPublications},
		{domain.DomainExperiences, s.syncExperiences},
		{domain.DomainTechnologies, s.syncTechnologies},
		{domain.DomainBlogPosts, s.syncBlogPosts},
	}
}

func (s *SyncService) syncProjects(ctx context.Context) (int, error) {
	records, err := s.source.Projects(ctx)
	if err != nil {
		return 0, err
	}
	entries := transform.Projects(records)
	if err := s.writer.WriteModule(domain.DomainProjects, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}

func (s *SyncService) syncPublications(ctx context.Context) (int, error) {
	records, err := s.source.Publications(ctx)
	if err != nil {
		return 0, err
	}
	entries := transform.Publications(records)
	if err := s.writer.WriteModule(domain.DomainPublications, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}

func (s *SyncService) syncExperiences(ctx context.Context) (int, error) {
	education, err := s.source.Education(ctx)
	if err != nil {
		return 0, err
	}
	experience, err := s.source.Experience(ctx)
	if err != nil {
		return 0, err
	}
	achievements, err := s.source.Achievements(ctx)
	if err != nil {
		return 0, err
	}
	data := transform.Experiences(education, experience, achievements)
	if err := s.writer.WriteModule(domain.DomainExperiences, data); err != nil {
		return 0, err
	}
	return len(education) + len(experience) + len(achievements), nil
}

func (s *SyncService) syncTechnologies(ctx context.Context) (int, error) {
	records, err := s.source.Technologies(ctx)
	if err != nil {
		return 0, err
	}
	entries := transform.Technologies(records)
	if err := s.writer.WriteModule(domain.DomainTechnologies, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}

func (s *SyncService) syncBlogPosts(ctx context.Context) (int, error) {
	records, err := s.source.BlogPosts(ctx)
	if err != nil {
		return 0, err
	}
	entries := transform.BlogPosts(records)
	if err := s.writer.WriteModule(domain.DomainBlogPosts, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}
