package orgs

import (
	"context"

	"golang.org/x/exp/slog"
)

// Directory is the organization listing grouped by category.
type Directory struct {
	Academic  []Organization `json:"academic"`
	Corporate []Organization `json:"corporate"`
}

// Service exposes the organization directory.
type Service struct {
	repo Repository
}

// NewService creates an organization Service on top of the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Directory returns the full directory grouped by category.
func (s *Service) Directory(ctx context.Context) (Directory, error) {
	academic, err := s.repo.List(ctx, CategoryAcademic)
	if err != nil {
		return Directory{}, err
	}
	corporate, err := s.repo.List(ctx, CategoryCorporate)
	if err != nil {
		return Directory{}, err
	}
	return Directory{Academic: academic, Corporate: corporate}, nil
}

// Get retrieves one organization by id.
func (s *Service) Get(ctx context.Context, id string) (Organization, error) {
	return s.repo.Get(ctx, id)
}

// MemberJoined records a completed join by bumping the member count.
func (s *Service) MemberJoined(ctx context.Context, id string) error {
	if err := s.repo.IncrementMembers(ctx, id); err != nil {
		slog.Error("failed to record joined member", "orgID", id, "err", err)
		return err
	}
	return nil
}
