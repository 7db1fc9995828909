package item

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoStore reads items from a collection, newest first.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

func findOptions() *options.FindOptionsBuilder {
	return options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}, {Key: "_id", Value: 1}})
}

func (s *MongoStore) All(ctx context.Context) ([]Item, error) {
	return s.find(ctx, bson.D{})
}

func (s *MongoStore) BySources(ctx context.Context, sources []string) ([]Item, error) {
	if len(sources) == 0 {
		return []Item{}, nil
	}
	return s.find(ctx, bson.D{{Key: "source", Value: bson.D{{Key: "$in", Value: sources}}}})
}

func (s *MongoStore) find(ctx context.Context, filter bson.D) ([]Item, error) {
	cur, err := s.coll.Find(ctx, filter, findOptions())
	if err != nil {
		return nil, errors.Join(ErrStoreFailure, err)
	}

	items := []Item{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, errors.Join(ErrStoreFailure, err)
	}
	return items, nil
}

// Insert upserts items by id.
func (s *MongoStore) Insert(ctx context.Context, items ...Item) error {
	if len(items) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(items))
	for _, it := range items {
		if it.ID == "" || it.Source == "" {
			return ErrInvalidItem
		}
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.D{{Key: "_id", Value: it.ID}}).
			SetReplacement(it).
			SetUpsert(true))
	}

	if _, err := s.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}
