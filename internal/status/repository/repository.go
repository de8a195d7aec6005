package repository

import (
	"context"
	"sync"

	"github.com/partidos/partidos-service/internal/status"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository stores quota snapshots. There is no update or delete path.
type Repository interface {
	Insert(ctx context.Context, r *status.Record) error
	List(ctx context.Context) ([]*status.Record, error)
}

// MongoRepo implements Repository on the statuses collection.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Insert(ctx context.Context, r *status.Record) error {
	r.ID = primitive.NewObjectID()
	_, err := m.col.InsertOne(ctx, r)
	return err
}

func (m *MongoRepo) List(ctx context.Context) ([]*status.Record, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	out := []*status.Record{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MemoryRepo keeps snapshots in insertion order.
type MemoryRepo struct {
	mu   sync.RWMutex
	recs []status.Record
}

func NewMemoryRepo() *MemoryRepo { return &MemoryRepo{} }

func (m *MemoryRepo) Insert(ctx context.Context, r *status.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = primitive.NewObjectID()
	m.recs = append(m.recs, *r)
	return nil
}

func (m *MemoryRepo) List(ctx context.Context) ([]*status.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*status.Record, 0, len(m.recs))
	for i := range m.recs {
		r := m.recs[i]
		out = append(out, &r)
	}
	return out, nil
}
