package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// fileStoreData represents all preference data stored in the file
type fileStoreData struct {
	Themes map[uuid.UUID]Theme `json:"themes"` // keyed by user ID
}

// FileStore implements Store using file-based storage, so preferences
// survive restarts the way a browser's local storage survives reloads.
type FileStore struct {
	dataDir string
	data    *fileStoreData
	mutex   sync.RWMutex
}

// NewFileStore creates a new file-based preference store
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	store := &FileStore{
		dataDir: dataDir,
		data: &fileStoreData{
			Themes: make(map[uuid.UUID]Theme),
		},
	}

	if err := store.load(); err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	return store, nil
}

func (s *FileStore) filePath() string {
	return filepath.Join(s.dataDir, "prefs.json")
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

// GetTheme returns the stored theme, or DefaultTheme when unset
func (s *FileStore) GetTheme(ctx context.Context, userID uuid.UUID) (Theme, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if theme, ok := s.data.Themes[userID]; ok {
		return theme, nil
	}
	return DefaultTheme, nil
}

// SetTheme stores the theme preference
func (s *FileStore) SetTheme(ctx context.Context, userID uuid.UUID, theme Theme) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data.Themes[userID] = theme
	return s.save()
}
