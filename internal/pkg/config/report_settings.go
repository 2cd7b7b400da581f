package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ReportSettings holds configuration settings for the generated report
// artifacts: the JSON archive and the rendered HTML page.
type ReportSettings struct {
	JSONPath string `mapstructure:"json_path" validate:"required"`
	HTMLPath string `mapstructure:"html_path" validate:"required"`
	Title    string `mapstructure:"title" validate:"required,min=1,max=255"`
}

// Validate checks that all fields in ReportSettings are valid
func (s *ReportSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ReportSettings: %w", err)
	}

	return nil
}
