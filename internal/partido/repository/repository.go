package repository

import (
	"context"
	"errors"

	"github.com/partidos/partidos-service/internal/partido"
)

var (
	ErrNotFound = errors.New("partido not found")
)

// Repository is the persistence boundary for fixture records.
type Repository interface {
	List(ctx context.Context) ([]*partido.Partido, error)
	Get(ctx context.Context, id string) (*partido.Partido, error)
	Create(ctx context.Context, p *partido.Partido) error
	// InsertMany writes every record independently; a failed record does not
	// stop the rest. It returns how many were stored.
	InsertMany(ctx context.Context, ps []*partido.Partido) (int, error)
	// Patch overwrites only the leaf fields present in pt and returns the
	// updated record.
	Patch(ctx context.Context, id string, pt partido.Patch) (*partido.Partido, error)
	Delete(ctx context.Context, id string) error
}
