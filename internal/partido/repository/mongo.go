package repository

import (
	"context"
	"errors"

	"github.com/partidos/partidos-service/internal/partido"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements Repository on the partidos collection. Records are
// keyed by a store-assigned ObjectID.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) List(ctx context.Context) ([]*partido.Partido, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*partido.Partido{}
	for cur.Next(ctx) {
		var p partido.Partido
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}

func (m *MongoRepo) Get(ctx context.Context, id string) (*partido.Partido, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var p partido.Partido
	if err := m.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (m *MongoRepo) Create(ctx context.Context, p *partido.Partido) error {
	p.ID = primitive.NewObjectID()
	if _, err := m.col.InsertOne(ctx, p); err != nil {
		p.ID = primitive.NilObjectID
		return err
	}
	return nil
}

func (m *MongoRepo) InsertMany(ctx context.Context, ps []*partido.Partido) (int, error) {
	if len(ps) == 0 {
		return 0, nil
	}
	docs := make([]interface{}, 0, len(ps))
	for _, p := range ps {
		p.ID = primitive.NewObjectID()
		docs = append(docs, p)
	}
	_, err := m.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		var bwe mongo.BulkWriteException
		if errors.As(err, &bwe) {
			return len(ps) - len(bwe.WriteErrors), err
		}
		return 0, err
	}
	return len(ps), nil
}

// Patch applies the supplied fields with a single $set so concurrent updates
// touching different fields do not overwrite each other.
func (m *MongoRepo) Patch(ctx context.Context, id string, pt partido.Patch) (*partido.Partido, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	set := pt.SetFields()
	if len(set) == 0 {
		return m.Get(ctx, id)
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p partido.Partido
	err = m.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(set)}, opts).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (m *MongoRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
