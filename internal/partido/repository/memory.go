package repository

import (
	"context"
	"sync"

	"github.com/partidos/partidos-service/internal/partido"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory repository used by unit tests and local runs
// without a database. Records keep insertion order.
type MemoryRepo struct {
	mu    sync.RWMutex
	order []primitive.ObjectID
	store map[primitive.ObjectID]*partido.Partido
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[primitive.ObjectID]*partido.Partido)}
}

func (m *MemoryRepo) List(ctx context.Context) ([]*partido.Partido, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*partido.Partido, 0, len(m.order))
	for _, id := range m.order {
		cp := *m.store[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MemoryRepo) Get(ctx context.Context, id string) (*partido.Partido, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.store[oid]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *MemoryRepo) Create(ctx context.Context, p *partido.Partido) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insert(p)
	return nil
}

func (m *MemoryRepo) InsertMany(ctx context.Context, ps []*partido.Partido) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range ps {
		m.insert(p)
	}
	return len(ps), nil
}

func (m *MemoryRepo) insert(p *partido.Partido) {
	p.ID = primitive.NewObjectID()
	cp := *p
	m.store[p.ID] = &cp
	m.order = append(m.order, p.ID)
}

func (m *MemoryRepo) Patch(ctx context.Context, id string, pt partido.Patch) (*partido.Partido, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.store[oid]
	if !ok {
		return nil, ErrNotFound
	}
	pt.Apply(p)
	cp := *p
	return &cp, nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[oid]; !ok {
		return ErrNotFound
	}
	delete(m.store, oid)
	for i, o := range m.order {
		if o == oid {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
