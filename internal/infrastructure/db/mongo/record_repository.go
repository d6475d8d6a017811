package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moitfe/portal-api/internal/core/domain"
	"github.com/moitfe/portal-api/internal/infrastructure/db/seed"
)

const (
	collectionForest   = "forest_records"
	collectionIndustry = "industry_records"
	collectionCommerce = "commerce_records"
)

// RecordRepository stores each category in its own collection. Newest-first
// ordering comes from a created_at descending sort; status updates rewrite a
// single document instead of the whole collection, which the port permits as
// long as the operation semantics hold.
type RecordRepository struct {
	forest   *mongo.Collection
	industry *mongo.Collection
	commerce *mongo.Collection
}

func NewRecordRepository(db *mongo.Database) *RecordRepository {
	return &RecordRepository{
		forest:   db.Collection(collectionForest),
		industry: db.Collection(collectionIndustry),
		commerce: db.Collection(collectionCommerce),
	}
}

// Initialize seeds every empty collection with its sample records. Idempotent.
func (r *RecordRepository) Initialize(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := seedCollection(ctx, r.forest, toAny(seed.ForestRecords())); err != nil {
		return err
	}
	if err := seedCollection(ctx, r.industry, toAny(seed.IndustryRecords())); err != nil {
		return err
	}
	return seedCollection(ctx, r.commerce, toAny(seed.CommerceRecords()))
}

func seedCollection(ctx context.Context, col *mongo.Collection, docs []any) error {
	n, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count %s: %w", col.Name(), err)
	}
	if n > 0 {
		return nil
	}
	if _, err := col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed %s: %w", col.Name(), err)
	}
	return nil
}

func toAny[T any](records []T) []any {
	out := make([]any, len(records))
	for i, rec := range records {
		out[i] = rec
	}
	return out
}

var newestFirst = options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

func (r *RecordRepository) ForestRecords(ctx context.Context) ([]domain.ForestRecord, error) {
	return findAll[domain.ForestRecord](ctx, r.forest)
}

func (r *RecordRepository) InsertForestRecord(ctx context.Context, rec domain.ForestRecord) error {
	return insertOne(ctx, r.forest, rec)
}

func (r *RecordRepository) UpdateForestStatus(ctx context.Context, id string, status domain.ReviewStatus) error {
	return setStatus(ctx, r.forest, id, "status", status)
}

func (r *RecordRepository) IndustryRecords(ctx context.Context) ([]domain.IndustryRecord, error) {
	return findAll[domain.IndustryRecord](ctx, r.industry)
}

func (r *RecordRepository) InsertIndustryRecord(ctx context.Context, rec domain.IndustryRecord) error {
	return insertOne(ctx, r.industry, rec)
}

func (r *RecordRepository) UpdateIndustryStatus(ctx context.Context, id string, status domain.ReviewStatus) error {
	return setStatus(ctx, r.industry, id, "verification_status", status)
}

func (r *RecordRepository) CommerceRecords(ctx context.Context) ([]domain.CommerceRecord, error) {
	return findAll[domain.CommerceRecord](ctx, r.commerce)
}

func (r *RecordRepository) InsertCommerceRecord(ctx context.Context, rec domain.CommerceRecord) error {
	return insertOne(ctx, r.commerce, rec)
}

func (r *RecordRepository) UpdateCommerceStatus(ctx context.Context, id string, status domain.ReviewStatus) error {
	return setStatus(ctx, r.commerce, id, "status", status)
}

func findAll[T any](ctx context.Context, col *mongo.Collection) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := col.Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", col.Name(), err)
	}
	records := []T{}
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrStorageCorrupt, col.Name(), err)
	}
	return records, nil
}

func insertOne[T any](ctx context.Context, col *mongo.Collection, rec T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := col.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("insert %s: %w", col.Name(), err)
	}
	return nil
}

func setStatus(ctx context.Context, col *mongo.Collection, id, field string, status domain.ReviewStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{field: status}})
	if err != nil {
		return fmt.Errorf("update %s: %w", col.Name(), err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the review tables query by.
func (r *RecordRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	byCreated := mongo.IndexModel{Keys: bson.D{{Key: "created_at", Value: -1}}}
	byOffice := mongo.IndexModel{Keys: bson.D{{Key: "office", Value: 1}}}

	for _, col := range []*mongo.Collection{r.forest, r.industry, r.commerce} {
		if _, err := col.Indexes().CreateMany(ctx, []mongo.IndexModel{byCreated, byOffice}); err != nil {
			return fmt.Errorf("indexes %s: %w", col.Name(), err)
		}
	}
	return nil
}
