package prefs

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Theme is the UI color scheme preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultTheme is used when a user has no stored preference.
const DefaultTheme = ThemeDark

// Store defines the storage contract for user preferences
type Store interface {
	// GetTheme returns the stored theme, or DefaultTheme when unset
	GetTheme(ctx context.Context, userID uuid.UUID) (Theme, error)
	// SetTheme stores the theme preference
	SetTheme(ctx context.Context, userID uuid.UUID, theme Theme) error
}

// InMemoryStore keeps preferences in process memory.
type InMemoryStore struct {
	mu     sync.RWMutex
	themes map[uuid.UUID]Theme
}

// NewInMemoryStore creates an empty in-memory preference store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{themes: map[uuid.UUID]Theme{}}
}

func (s *InMemoryStore) GetTheme(ctx context.Context, userID uuid.UUID) (Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if theme, exists := s.themes[userID]; exists {
		return theme, nil
	}
	return DefaultTheme, nil
}

func (s *InMemoryStore) SetTheme(ctx context.Context, userID uuid.UUID, theme Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.themes[userID] = theme
	return nil
}

// Toggle flips between the two themes.
func Toggle(theme Theme) Theme {
	if theme == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
