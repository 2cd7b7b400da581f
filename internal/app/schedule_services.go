package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"arxiv_daily_service/internal/domain/papers"
	"arxiv_daily_service/internal/pkg/config"
	"arxiv_daily_service/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// scheduleService implements the ScheduleService interface with an
// in-process cron scheduler running in UTC.
type scheduleService struct {
	crawlService papers.CrawlService
	settings     *config.SchedulerSettings
	logger       logger.Logger

	mu   sync.Mutex
	cron *cron.Cron
}

// NewScheduleService creates a new instance of scheduleService
func NewScheduleService(crawlService papers.CrawlService, settings *config.SchedulerSettings, logger logger.Logger) (papers.ScheduleService, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scheduler settings: %w", err)
	}

	return &scheduleService{
		crawlService: crawlService,
		settings:     settings,
		logger:       logger,
	}, nil
}

// Start begins scheduling crawls on the configured cron spec. It returns
// immediately; the scheduler runs until Stop is called or ctx is cancelled.
func (s *scheduleService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		return fmt.Errorf("scheduler already started")
	}

	c := cron.New(cron.WithLocation(time.UTC))
	_, err := c.AddFunc(s.settings.CronSpec, func() {
		if _, err := s.crawlService.Crawl(ctx, nil); err != nil {
			s.logger.Error("Scheduled crawl failed: ", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule crawl: %w", err)
	}

	c.Start()
	s.cron = c
	s.logger.Info("Scheduler started with spec ", s.settings.CronSpec)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop halts scheduling and waits for an in-flight crawl to finish.
func (s *scheduleService) Stop() {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()

	if c == nil {
		return
	}

	<-c.Stop().Done()
	s.logger.Info("Scheduler stopped")
}
