//go:build unit
// +build unit

package app

import (
	"context"
	"testing"
	"time"

	"arxiv_daily_service/internal/domain/papers"
	"arxiv_daily_service/internal/pkg/config"
	"arxiv_daily_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScheduleService_StartTriggersCrawl(t *testing.T) {
	crawlService := new(MockCrawlService)
	settings := &config.SchedulerSettings{Enabled: true, CronSpec: "@every 50ms"}

	service, err := NewScheduleService(crawlService, settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	crawled := make(chan struct{}, 1)
	crawlService.On("Crawl", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		select {
		case crawled <- struct{}{}:
		default:
		}
	}).Return(&papers.CrawlRun{}, nil)

	require.NoError(t, service.Start(context.Background()))
	defer service.Stop()

	select {
	case <-crawled:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled crawl never fired")
	}
}

func TestScheduleService_StartTwice(t *testing.T) {
	crawlService := new(MockCrawlService)
	settings := &config.SchedulerSettings{Enabled: true, CronSpec: config.DefaultCronSpec}

	service, err := NewScheduleService(crawlService, settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	require.NoError(t, service.Start(context.Background()))
	defer service.Stop()

	assert.ErrorContains(t, service.Start(context.Background()), "already started")
}

func TestScheduleService_StopWithoutStart(t *testing.T) {
	crawlService := new(MockCrawlService)
	settings := &config.SchedulerSettings{Enabled: true, CronSpec: config.DefaultCronSpec}

	service, err := NewScheduleService(crawlService, settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	// Stop on a never-started scheduler is a no-op.
	service.Stop()
}

func TestScheduleService_InvalidCronSpec(t *testing.T) {
	crawlService := new(MockCrawlService)
	settings := &config.SchedulerSettings{Enabled: true, CronSpec: "not a cron spec"}

	_, err := NewScheduleService(crawlService, settings, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
