//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"

	"arxiv_daily_service/internal/domain/papers"
	"arxiv_daily_service/internal/infrastructure/persistence/models"
	"arxiv_daily_service/internal/pkg/config"
	"arxiv_daily_service/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds the test database and repositories
type TestContext struct {
	DB           *gorm.DB
	PaperRepo    papers.PaperRepository
	CrawlRunRepo papers.CrawlRunRepository
}

// SetupTestDB initializes a test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	// Create connection
	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	// Register cleanup
	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	// Migrate schema
	err = db.AutoMigrate(&models.PaperModel{}, &models.CrawlRunModel{})
	require.NoError(t, err, "Failed to migrate schema")

	// Create repositories
	log := testutil.SetupTestLogger(t)

	paperRepo, err := NewGormPaperRepository(db, log)
	require.NoError(t, err, "Failed to create paper repository")

	crawlRunRepo, err := NewGormCrawlRunRepository(db, log)
	require.NoError(t, err, "Failed to create crawl run repository")

	return &TestContext{
		DB:           db,
		PaperRepo:    paperRepo,
		CrawlRunRepo: crawlRunRepo,
	}
}
