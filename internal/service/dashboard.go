package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"docdash/internal/analytics"
	"docdash/internal/cache"
	"docdash/internal/model"
	"docdash/internal/repository"
)

// ReportingAPI is the slice of the upstream reporting client the
// dashboard needs. Declared here so the service depends on behavior,
// not on the concrete HTTP client.
type ReportingAPI interface {
	UploadTrends(ctx context.Context, period string) ([]model.TimeSeriesPoint, error)
	TypeDistribution(ctx context.Context, period string) ([]model.TypeCount, error)
	Activity(ctx context.Context, period string) ([]model.ActivityBucket, []model.ActivityBucket, error)
	ModelUsage(ctx context.Context, period string) ([]model.ModelUsage, error)
	StorageSummary(ctx context.Context) (model.StorageSummary, error)
}

// DashboardService produces the combined analytics payload for a period.
type DashboardService interface {
	// Stats returns dashboard statistics for the period. A fresh cache
	// entry short-circuits all upstream access unless refresh is set,
	// which always goes upstream. When the reporting API fails, stats
	// are derived locally from a bounded raw document list.
	Stats(ctx context.Context, period analytics.Period, refresh bool) (*model.DashboardStats, error)
}

type dashboardService struct {
	reporting     ReportingAPI
	repo          repository.DocumentRepository
	cache         *cache.Cache[*model.DashboardStats]
	now           func() time.Time
	fallbackLimit int
}

// DashboardOptions tunes orchestration; zero values pick defaults.
type DashboardOptions struct {
	CacheTTL      time.Duration
	FallbackLimit int
	Now           func() time.Time
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(reporting ReportingAPI, repo repository.DocumentRepository, opts DashboardOptions) DashboardService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.FallbackLimit <= 0 {
		opts.FallbackLimit = 1000
	}
	return &dashboardService{
		reporting:     reporting,
		repo:          repo,
		cache:         cache.New[*model.DashboardStats](opts.CacheTTL, opts.Now),
		now:           opts.Now,
		fallbackLimit: opts.FallbackLimit,
	}
}

func (s *dashboardService) Stats(ctx context.Context, period analytics.Period, refresh bool) (*model.DashboardStats, error) {
	key := string(period)
	if !refresh {
		if stats, ok := s.cache.Get(key); ok {
			return stats, nil
		}
	}

	stats, err := s.fetchReported(ctx, period)
	if err != nil {
		// Degrade: one partial upstream failure must not blank the whole
		// dashboard. Aggregate a bounded raw list locally instead.
		stats, err = s.aggregateLocal(ctx, period)
		if err != nil {
			return nil, err
		}
	}

	s.cache.Set(key, stats)
	return stats, nil
}

// fetchReported fans out the reporting calls concurrently and joins the
// results. The derived group context cancels in-flight siblings as soon
// as one call fails, so nothing leaks past the request.
func (s *dashboardService) fetchReported(ctx context.Context, period analytics.Period) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{
		Period:      string(period),
		Source:      model.StatsSourceReporting,
		GeneratedAt: s.now().UTC(),
	}

	g, gctx := errgroup.WithContext(ctx)
	p := string(period)

	g.Go(func() error {
		trends, err := s.reporting.UploadTrends(gctx, p)
		if err != nil {
			return fmt.Errorf("upload trends: %w", err)
		}
		stats.Uploads = trends
		return nil
	})
	g.Go(func() error {
		types, err := s.reporting.TypeDistribution(gctx, p)
		if err != nil {
			return fmt.Errorf("type distribution: %w", err)
		}
		stats.Types = types
		return nil
	})
	g.Go(func() error {
		weekdays, hours, err := s.reporting.Activity(gctx, p)
		if err != nil {
			return fmt.Errorf("activity: %w", err)
		}
		stats.Weekdays = weekdays
		stats.Hours = hours
		return nil
	})
	g.Go(func() error {
		models, err := s.reporting.ModelUsage(gctx, p)
		if err != nil {
			return fmt.Errorf("model usage: %w", err)
		}
		stats.Models = models
		return nil
	})
	g.Go(func() error {
		storage, err := s.reporting.StorageSummary(gctx)
		if err != nil {
			return fmt.Errorf("storage summary: %w", err)
		}
		stats.Storage = storage
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// aggregateLocal rebuilds the stats from a bounded raw document list.
// Model usage lives only upstream, so the degraded payload reports none.
func (s *dashboardService) aggregateLocal(ctx context.Context, period analytics.Period) (*model.DashboardStats, error) {
	now := s.now().UTC()
	docs, err := s.repo.ListUploadedSince(ctx, period.Start(now), s.fallbackLimit)
	if err != nil {
		return nil, fmt.Errorf("local aggregation: %w", err)
	}

	var used int64
	for _, d := range docs {
		used += d.Size
	}

	return &model.DashboardStats{
		Period:      string(period),
		Source:      model.StatsSourceLocal,
		GeneratedAt: now,
		Uploads:     analytics.TimeSeries(docs, period, now),
		Types:       analytics.TypeDistribution(docs),
		Weekdays:    analytics.WeekdayHistogram(docs),
		Hours:       analytics.HourHistogram(docs),
		Models:      []model.ModelUsage{},
		Storage: model.StorageSummary{
			UsedBytes:     used,
			DocumentCount: len(docs),
		},
	}, nil
}
