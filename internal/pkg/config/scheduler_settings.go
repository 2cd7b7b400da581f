package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

// DefaultCronSpec triggers a crawl daily at 22:00 UTC.
const DefaultCronSpec = "0 22 * * *"

// SchedulerSettings holds configuration settings for the in-process crawl scheduler
type SchedulerSettings struct {
	Enabled  bool   `mapstructure:"enabled"`
	CronSpec string `mapstructure:"cron_spec" validate:"required"`
}

// Validate checks that all fields in SchedulerSettings are valid
func (s *SchedulerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for SchedulerSettings: %w", err)
	}

	if _, err := cron.ParseStandard(s.CronSpec); err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", s.CronSpec, err)
	}

	return nil
}
