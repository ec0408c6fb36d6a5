package orgs

import (
	"context"
	"errors"
	"sync"
)

// ErrOrgNotFound is returned when no organization exists for an id
var ErrOrgNotFound = errors.New("organization not found")

// Category groups organizations in the directory.
type Category string

const (
	CategoryAcademic  Category = "academic"
	CategoryCorporate Category = "corporate"
)

// Organization is a directory entry members can join.
type Organization struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Type        string   `json:"type"`
	Elections   int      `json:"elections"`
	Members     int      `json:"members"`
	Description string   `json:"description"`
}

// Repository defines the storage contract for the organization directory
type Repository interface {
	// List returns the organizations in a category, in directory order
	List(ctx context.Context, category Category) ([]Organization, error)
	// Get retrieves one organization by id
	Get(ctx context.Context, id string) (Organization, error)
	// IncrementMembers bumps the member count after a successful join
	IncrementMembers(ctx context.Context, id string) error
}

// InMemoryRepository holds the directory in process memory, preserving
// catalog order within each category.
type InMemoryRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*Organization
}

// NewInMemoryRepository creates a repository seeded with the given catalog.
func NewInMemoryRepository(catalog []Organization) *InMemoryRepository {
	repo := &InMemoryRepository{byID: map[string]*Organization{}}
	for _, org := range catalog {
		copied := org
		repo.order = append(repo.order, org.ID)
		repo.byID[org.ID] = &copied
	}
	return repo
}

func (r *InMemoryRepository) List(ctx context.Context, category Category) ([]Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []Organization
	for _, id := range r.order {
		org := r.byID[id]
		if org.Category == category {
			result = append(result, *org)
		}
	}
	return result, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	org, exists := r.byID[id]
	if !exists {
		return Organization{}, ErrOrgNotFound
	}
	return *org, nil
}

func (r *InMemoryRepository) IncrementMembers(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	org, exists := r.byID[id]
	if !exists {
		return ErrOrgNotFound
	}
	org.Members++
	return nil
}
