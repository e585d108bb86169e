package user

import "context"

type Service interface {
	GetByMatricula(ctx context.Context, matricula int) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByMatricula(ctx context.Context, matricula int) (*User, error) {
	if !ValidMatricula(matricula) {
		return nil, ErrInvalidMatricula
	}
	return s.repo.GetByMatricula(ctx, matricula)
}
