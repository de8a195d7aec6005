package service

import (
	"context"
	"errors"

	"github.com/partidos/partidos-service/internal/partido"
	"github.com/partidos/partidos-service/internal/partido/repository"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrIncomplete = errors.New("teams.home, teams.away and goals are required")
)

// Service defines the fixture operations used by the handler layer.
type Service interface {
	List(ctx context.Context) ([]*partido.Partido, error)
	Create(ctx context.Context, p *partido.Partido) (*partido.Partido, error)
	Update(ctx context.Context, id string, pt partido.Patch) (*partido.Partido, error)
	Delete(ctx context.Context, id string) error
}

// New returns a Service over the given repository.
func New(repo repository.Repository) Service {
	return &service{repo: repo}
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService() Service {
	return New(repository.NewMemoryRepo())
}

type service struct {
	repo repository.Repository
}

func (s *service) List(ctx context.Context) ([]*partido.Partido, error) {
	return s.repo.List(ctx)
}

func (s *service) Create(ctx context.Context, p *partido.Partido) (*partido.Partido, error) {
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update merges pt into the stored record. Concurrent updates of the same
// field are last-writer-wins; there is no version check.
func (s *service) Update(ctx context.Context, id string, pt partido.Patch) (*partido.Partido, error) {
	if !pt.Complete() {
		return nil, ErrIncomplete
	}
	p, err := s.repo.Patch(ctx, id, pt)
	if err != nil {
		return nil, mapErr(err)
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return mapErr(s.repo.Delete(ctx, id))
}

func mapErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
