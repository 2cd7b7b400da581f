package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// AppConfig aggregates all settings sections consumed by the CLI and the REST API
type AppConfig struct {
	Port      string            `mapstructure:"port"`
	Logger    LoggerSettings    `mapstructure:"logger"`
	Database  DatabaseSettings  `mapstructure:"database"`
	Crawler   CrawlerSettings   `mapstructure:"crawler"`
	Report    ReportSettings    `mapstructure:"report"`
	Scheduler SchedulerSettings `mapstructure:"scheduler"`
}

// Validate checks all settings sections
func (c *AppConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Crawler.Validate(); err != nil {
		return err
	}
	if err := c.Report.Validate(); err != nil {
		return err
	}
	if err := c.Scheduler.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeAppConfig loads the application configuration from a YAML file,
// applies defaults and environment variable overrides (prefix ADS_) and
// validates the result.
func InitializeAppConfig(configPath string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("ADS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var appConfig AppConfig
	if err := v.Unmarshal(&appConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// viper lower-cases map keys during Unmarshal, but keyword names are
	// display strings whose casing must survive, so the keyword map is
	// decoded from the raw file instead.
	keywords, err := loadKeywords(configPath)
	if err != nil {
		return nil, err
	}
	appConfig.Crawler.Keywords = keywords

	if err := appConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &appConfig, nil
}

// loadKeywords reads the crawler keyword map straight from the YAML file,
// keeping the keys exactly as written.
func loadKeywords(configPath string) (map[string]string, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var raw struct {
		Crawler struct {
			Keywords map[string]string `yaml:"keywords"`
		} `yaml:"crawler"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode keywords from %s: %w", configPath, err)
	}

	return raw.Crawler.Keywords, nil
}

// setDefaults registers fallback values for optional settings
func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "arxiv-daily.db")

	v.SetDefault("crawler.max_results_per_keyword", 200)
	v.SetDefault("crawler.page_size", 200)
	v.SetDefault("crawler.page_delay_seconds", 3)
	v.SetDefault("crawler.max_retries", 5)
	v.SetDefault("crawler.request_timeout_seconds", 30)
	v.SetDefault("crawler.feed_base_url", DefaultFeedBaseURL)
	v.SetDefault("crawler.code_base_url", DefaultCodeBaseURL)

	v.SetDefault("report.json_path", "arxiv-daily.json")
	v.SetDefault("report.html_path", "index.html")
	v.SetDefault("report.title", "Daily ArXiv Papers")

	v.SetDefault("scheduler.enabled", false)
	v.SetDefault("scheduler.cron_spec", DefaultCronSpec)
}
