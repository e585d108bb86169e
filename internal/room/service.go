package room

import (
	"context"
	"errors"
	"strings"
)

type Service interface {
	// GetAvailableByName resolves a room that can currently be booked.
	GetAvailableByName(ctx context.Context, name string) (*Room, error)
	GetByName(ctx context.Context, name string) (*Room, error)
	ListAvailable(ctx context.Context) ([]*Room, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByName(ctx context.Context, name string) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return s.repo.GetByName(ctx, name)
}

func (s *service) GetAvailableByName(ctx context.Context, name string) (*Room, error) {
	rm, err := s.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUnavailable
		}
		return nil, err
	}
	if !rm.IsAvailable {
		return nil, ErrUnavailable
	}
	return rm, nil
}

func (s *service) ListAvailable(ctx context.Context) ([]*Room, error) {
	return s.repo.ListAvailable(ctx)
}
