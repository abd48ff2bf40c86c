// Package selection persists the user's country choice across restarts in a
// single local key-value entry.
package selection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"wandernest-api/internal/entity"

	"github.com/sirupsen/logrus"
)

// StorageKey is the fixed key the selected country is stored under.
const StorageKey = "wandernest_country"

var ErrNotFound = errors.New("not found")

type Store interface {
	Load(ctx context.Context) (*entity.Country, error)
	Save(ctx context.Context, country entity.Country) error
}

// FileStore keeps the key-value entry in a small JSON file.
type FileStore struct {
	path   string
	logger *logrus.Logger
	mu     sync.Mutex
}

func NewFileStore(path string, logger *logrus.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger,
	}
}

// Load returns the persisted selection. A missing file, unreadable JSON or
// an absent key all behave as "no stored value" and return ErrNotFound.
func (s *FileStore) Load(_ context.Context) (*entity.Country, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		s.logger.WithError(err).Error("Failed to read selection store")
		return nil, fmt.Errorf("read selection store: %w", err)
	}

	var entries map[string]entity.Country
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.WithError(err).Warn("Corrupted selection store, treating as empty")
		return nil, ErrNotFound
	}

	country, ok := entries[StorageKey]
	if !ok {
		return nil, ErrNotFound
	}

	s.logger.WithField("code", country.Code).Debug("Loaded persisted country selection")
	return &country, nil
}

func (s *FileStore) Save(_ context.Context, country entity.Country) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(map[string]entity.Country{StorageKey: country})
	if err != nil {
		return fmt.Errorf("marshal selection: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			s.logger.WithError(err).Error("Failed to create selection store directory")
			return fmt.Errorf("create selection store dir: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.logger.WithError(err).Error("Failed to write selection store")
		return fmt.Errorf("write selection store: %w", err)
	}

	s.logger.WithField("code", country.Code).Info("Persisted country selection")
	return nil
}
