package mongo

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/artdevata/content-service/internal/port/likestore"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const likesCollectionName = "likes"

// mongoStore keeps one document per composite key with a string-encoded
// value, so records stay interchangeable with the other store backends.
type mongoStore struct {
	db *mongo.Database
}

func NewMongoStore(client *mongo.Client, dbName string) likestore.Store {
	return &mongoStore{
		db: client.Database(dbName),
	}
}

type likeDocument struct {
	Key   string `bson:"key"`
	Value string `bson:"value"`
}

func (s *mongoStore) GetFlag(ctx context.Context, key string) (bool, error) {
	val, err := s.get(ctx, key)
	if err != nil {
		return false, err
	}
	flag, parseErr := strconv.ParseBool(val)
	if parseErr != nil {
		return false, fmt.Errorf("mongoStore.GetFlag for key '%s': %w", key, parseErr)
	}
	return flag, nil
}

func (s *mongoStore) SetFlag(ctx context.Context, key string, value bool) error {
	return s.set(ctx, key, strconv.FormatBool(value))
}

func (s *mongoStore) GetCount(ctx context.Context, key string) (int64, error) {
	val, err := s.get(ctx, key)
	if err != nil {
		return 0, err
	}
	count, parseErr := strconv.ParseInt(val, 10, 64)
	if parseErr != nil {
		return 0, fmt.Errorf("mongoStore.GetCount for key '%s': %w", key, parseErr)
	}
	return count, nil
}

func (s *mongoStore) SetCount(ctx context.Context, key string, value int64) error {
	return s.set(ctx, key, strconv.FormatInt(value, 10))
}

func (s *mongoStore) Delete(ctx context.Context, key string) error {
	res, err := s.db.Collection(likesCollectionName).DeleteOne(ctx, bson.M{"key": key})
	if err != nil {
		return fmt.Errorf("failed to delete like record from mongo: %w", err)
	}
	if res.DeletedCount == 0 {
		return likestore.ErrNotFound
	}
	return nil
}

func (s *mongoStore) get(ctx context.Context, key string) (string, error) {
	var doc likeDocument
	err := s.db.Collection(likesCollectionName).FindOne(ctx, bson.M{"key": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", likestore.ErrNotFound
		}
		return "", fmt.Errorf("failed to read like record from mongo: %w", err)
	}
	return doc.Value, nil
}

func (s *mongoStore) set(ctx context.Context, key, value string) error {
	filter := bson.M{"key": key}
	update := bson.M{"$set": likeDocument{Key: key, Value: value}}

	opts := options.Update().SetUpsert(true)
	if _, err := s.db.Collection(likesCollectionName).UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert like record in mongo: %w", err)
	}
	return nil
}
