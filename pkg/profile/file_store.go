package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// fileStoreData represents all profile data stored in the file
type fileStoreData struct {
	Profiles map[uuid.UUID]Profile `json:"profiles"` // keyed by user ID
}

// FileStore implements Store using file-based storage
type FileStore struct {
	dataDir string
	data    *fileStoreData
	mutex   sync.RWMutex
}

// NewFileStore creates a new file-based profile store
func NewFileStore(dataDir string) (*FileStore, error) {
	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	store := &FileStore{
		dataDir: dataDir,
		data: &fileStoreData{
			Profiles: make(map[uuid.UUID]Profile),
		},
	}

	if err := store.load(); err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	return store, nil
}

func (s *FileStore) filePath() string {
	return filepath.Join(s.dataDir, "profiles.json")
}

func (s *FileStore) load() error {
	content, err := os.ReadFile(s.filePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(content, s.data)
}

// save persists the data; callers must hold the write lock.
func (s *FileStore) save() error {
	content, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}
	return os.WriteFile(s.filePath(), content, 0644)
}

// WriteProfile creates or replaces the profile record for a user
func (s *FileStore) WriteProfile(ctx context.Context, p Profile) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data.Profiles[p.UserID] = p
	return s.save()
}

// ReadProfile retrieves the profile record for a user
func (s *FileStore) ReadProfile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	p, ok := s.data.Profiles[userID]
	if !ok {
		return Profile{}, ErrProfileNotFound
	}
	return p, nil
}

// TouchLastLogin updates the last_login field of an existing profile
func (s *FileStore) TouchLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	p, ok := s.data.Profiles[userID]
	if !ok {
		return ErrProfileNotFound
	}
	p.LastLogin = at
	s.data.Profiles[userID] = p
	return s.save()
}
