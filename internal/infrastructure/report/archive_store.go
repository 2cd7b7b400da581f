package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"arxiv_daily_service/internal/domain/papers"
	"arxiv_daily_service/internal/domain/reports"
	"arxiv_daily_service/internal/pkg/config"
	"arxiv_daily_service/internal/pkg/logger"
)

type jsonArchiveStore struct {
	settings *config.ReportSettings
	logger   logger.Logger
}

// NewJSONArchiveStore creates an ArchiveStore persisting the keyword-keyed
// archive to the configured JSON path.
func NewJSONArchiveStore(settings *config.ReportSettings, logger logger.Logger) (reports.ArchiveStore, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid report settings: %w", err)
	}

	return &jsonArchiveStore{
		settings: settings,
		logger:   logger,
	}, nil
}

func (s *jsonArchiveStore) Load() (reports.Snapshot, error) {
	data, err := os.ReadFile(s.settings.JSONPath)
	if err != nil {
		if os.IsNotExist(err) {
			return reports.Snapshot{}, nil
		}
		return nil, fmt.Errorf("failed to read archive %s: %w", s.settings.JSONPath, err)
	}

	var snapshot reports.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode archive %s: %w", s.settings.JSONPath, err)
	}
	if snapshot == nil {
		// A file holding a literal null decodes without error into a nil map.
		snapshot = reports.Snapshot{}
	}

	return snapshot, nil
}

func (s *jsonArchiveStore) Merge(paperList []*papers.Paper) (reports.Snapshot, error) {
	snapshot, err := s.Load()
	if err != nil {
		return nil, err
	}

	// Overlay the crawl results: the latest record per (keyword, key) wins.
	for _, paper := range paperList {
		byKey, ok := snapshot[paper.Keyword]
		if !ok {
			byKey = make(map[string]reports.Record)
			snapshot[paper.Keyword] = byKey
		}
		byKey[paper.Key] = reports.NewRecord(paper)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode archive: %w", err)
	}

	if err := writeFileAtomic(s.settings.JSONPath, data); err != nil {
		return nil, fmt.Errorf("failed to write archive %s: %w", s.settings.JSONPath, err)
	}

	s.logger.Info("Archive updated at ", s.settings.JSONPath, " with ", len(paperList), " papers")
	return snapshot, nil
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it into place so readers never observe a torn file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, path)
}
