package profile

import (
	"context"
	"errors"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetProfile(ctx context.Context, id string) (*Profile, error) {
	return s.repo.GetByID(ctx, id)
}

// EnsureProfile returns the profile for an identity, creating it when missing.
// Callers that have just authenticated a user go through here so nothing
// downstream ever observes an authenticated identity without a profile.
func (s *Service) EnsureProfile(ctx context.Context, id, fullName, role string) (*Profile, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("profile id is required")
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}

	role = strings.TrimSpace(role)
	if role == "" {
		role = RoleEmployee
	}
	if !ValidRole(role) {
		return nil, ErrInvalidRole
	}

	created := &Profile{
		ID:       id,
		FullName: strings.TrimSpace(fullName),
		Role:     role,
	}
	if err := s.repo.Insert(ctx, created); err != nil {
		return nil, err
	}

	// A concurrent request may have inserted first; the stored row wins.
	return s.repo.GetByID(ctx, id)
}
