package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/eldercare/backend/internal/domain"
)

// CollectionName is where health logs are stored
const CollectionName = "health_logs"

// MongoRepository implements domain.HealthLogRepository on a MongoDB collection
type MongoRepository struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoRepository creates a repository backed by db.health_logs
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		client: db.Client(),
		coll:   db.Collection(CollectionName),
	}
}

// EnsureIndexes creates the per-user date index
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("mongo: failed to create indexes: %w", err)
	}
	return nil
}

// CreateLog inserts a new health log
func (r *MongoRepository) CreateLog(ctx context.Context, log domain.VitalSample) (domain.VitalSample, error) {
	log.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, log); err != nil {
		return domain.VitalSample{}, fmt.Errorf("mongo: failed to save health log: %w", err)
	}
	return log, nil
}

// GetLog retrieves a single health log owned by userID
func (r *MongoRepository) GetLog(ctx context.Context, userID, id string) (domain.VitalSample, error) {
	var log domain.VitalSample
	err := r.coll.FindOne(ctx, ownedBy(userID, id)).Decode(&log)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.VitalSample{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.VitalSample{}, fmt.Errorf("mongo: failed to get health log: %w", err)
	}
	return log, nil
}

// UpdateLog replaces an existing health log document
func (r *MongoRepository) UpdateLog(ctx context.Context, log domain.VitalSample) (domain.VitalSample, error) {
	res, err := r.coll.ReplaceOne(ctx, ownedBy(log.UserID, log.ID), log)
	if err != nil {
		return domain.VitalSample{}, fmt.Errorf("mongo: failed to update health log: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.VitalSample{}, domain.ErrNotFound
	}
	return log, nil
}

// DeleteLog removes a health log owned by userID
func (r *MongoRepository) DeleteLog(ctx context.Context, userID, id string) error {
	res, err := r.coll.DeleteOne(ctx, ownedBy(userID, id))
	if err != nil {
		return fmt.Errorf("mongo: failed to delete health log: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListLogs returns one page of logs, newest first, plus the user's total
func (r *MongoRepository) ListLogs(ctx context.Context, userID string, limit, offset int) ([]domain.VitalSample, int64, error) {
	filter := bson.M{"userId": userID}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("mongo: failed to count health logs: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	logs, err := r.find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// RecentLogs returns the latest logs, newest first
func (r *MongoRepository) RecentLogs(ctx context.Context, userID string, limit int) ([]domain.VitalSample, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetLimit(int64(limit))
	return r.find(ctx, bson.M{"userId": userID}, opts)
}

// LogsSince returns logs dated at or after from, oldest first
func (r *MongoRepository) LogsSince(ctx context.Context, userID string, from time.Time) ([]domain.VitalSample, error) {
	filter := bson.M{"userId": userID, "date": bson.M{"$gte": from}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	return r.find(ctx, filter, opts)
}

// Health pings the primary
func (r *MongoRepository) Health(ctx context.Context) error {
	if err := r.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo: health check failed: %w", err)
	}
	return nil
}

func (r *MongoRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.VitalSample, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo: failed to query health logs: %w", err)
	}
	defer cursor.Close(ctx)

	logs := []domain.VitalSample{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("mongo: failed to decode health logs: %w", err)
	}
	return logs, nil
}

func ownedBy(userID, id string) bson.M {
	return bson.M{"_id": id, "userId": userID}
}
