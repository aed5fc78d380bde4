package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/domain"
)

const (
	settingsFile = "settings.json"
	statsFile    = "stats.json"
)

// FS keeps the two host records as pretty-printed JSON files in one
// directory. A missing file reads back as the record's zero value so a
// fresh data directory just works.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) write(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (s *FS) read(name string, v any) (found bool, err error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}

func (s *FS) SaveSettings(ctx context.Context, set domain.Settings) error {
	return s.write(settingsFile, set)
}

func (s *FS) LoadSettings(ctx context.Context) (domain.Settings, error) {
	var out domain.Settings
	found, err := s.read(settingsFile, &out)
	if err != nil {
		return domain.Settings{}, err
	}
	if !found {
		return domain.DefaultSettings(), nil
	}
	return out, nil
}

func (s *FS) SaveStats(ctx context.Context, stats domain.SessionStats) error {
	return s.write(statsFile, stats)
}

func (s *FS) LoadStats(ctx context.Context) (domain.SessionStats, error) {
	var out domain.SessionStats
	if _, err := s.read(statsFile, &out); err != nil {
		return domain.SessionStats{}, err
	}
	return out, nil
}
