// Package memory provides in-process implementations of the persistence
// ports. The record repository models the future cloud database: each
// category's collection is one serialized blob, every operation is a full
// read-modify-write over that blob, and reads/writes carry a configurable
// simulated round-trip delay. Used in standalone mode and in tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/moitfe/portal-api/internal/core/domain"
	"github.com/moitfe/portal-api/internal/infrastructure/db/seed"
)

// Options configures the simulated round-trip delays. Zero values mean no
// delay, which is what tests want.
type Options struct {
	ReadDelay  time.Duration
	WriteDelay time.Duration
}

// blobStore is one category's serialized collection plus its writer lock.
// The lock enforces the one-writer-per-category discipline the review
// workflow assumes; it does not make cross-category operations atomic.
type blobStore struct {
	mu   sync.Mutex
	data []byte
}

// RecordRepository is a blob-per-category record store.
type RecordRepository struct {
	forest   blobStore
	industry blobStore
	commerce blobStore
	opts     Options
}

func NewRecordRepository(opts Options) *RecordRepository {
	return &RecordRepository{opts: opts}
}

// Initialize seeds any category that has no stored collection yet.
func (r *RecordRepository) Initialize(ctx context.Context) error {
	if err := initBlob(&r.forest, seed.ForestRecords()); err != nil {
		return err
	}
	if err := initBlob(&r.industry, seed.IndustryRecords()); err != nil {
		return err
	}
	if err := initBlob(&r.commerce, seed.CommerceRecords()); err != nil {
		return err
	}
	return r.delay(ctx, r.opts.WriteDelay)
}

func (r *RecordRepository) ForestRecords(ctx context.Context) ([]domain.ForestRecord, error) {
	if err := r.delay(ctx, r.opts.ReadDelay); err != nil {
		return nil, err
	}
	return loadBlob[domain.ForestRecord](&r.forest)
}

func (r *RecordRepository) InsertForestRecord(ctx context.Context, rec domain.ForestRecord) error {
	if err := r.delay(ctx, r.opts.WriteDelay); err != nil {
		return err
	}
	return prependBlob(&r.forest, rec)
}

func (r *RecordRepository) UpdateForestStatus(ctx context.Context, id string, status domain.ReviewStatus) error {
	if err := r.delay(ctx, r.opts.WriteDelay); err != nil {
		return err
	}
	return rewriteBlob(&r.forest, id,
		func(rec *domain.ForestRecord) string { return rec.ID },
		func(rec *domain.ForestRecord) { rec.Status = status })
}

func (r *RecordRepository) IndustryRecords(ctx context.Context) ([]domain.IndustryRecord, error) {
	if err := r.delay(ctx, r.opts.ReadDelay); err != nil {
		return nil, err
	}
	return loadBlob[domain.IndustryRecord](&r.industry)
}

func (r *RecordRepository) InsertIndustryRecord(ctx context.Context, rec domain.IndustryRecord) error {
	if err := r.delay(ctx, r.opts.WriteDelay); err != nil {
		return err
	}
	return prependBlob(&r.industry, rec)
}

func (r *RecordRepository) UpdateIndustryStatus(ctx context.Context, id string, status domain.ReviewStatus) error {
	if err := r.delay(ctx, r.opts.WriteDelay); err != nil {
		return err
	}
	return rewriteBlob(&r.industry, id,
		func(rec *domain.IndustryRecord) string { return rec.ID },
		func(rec *domain.IndustryRecord) { rec.VerificationStatus = status })
}

func (r *RecordRepository) CommerceRecords(ctx context.Context) ([]domain.CommerceRecord, error) {
	if err := r.delay(ctx, r.opts.ReadDelay); err != nil {
		return nil, err
	}
	return loadBlob[domain.CommerceRecord](&r.commerce)
}

func (r *RecordRepository) InsertCommerceRecord(ctx context.Context, rec domain.CommerceRecord) error {
	if err := r.delay(ctx, r.opts.WriteDelay); err != nil {
		return err
	}
	return prependBlob(&r.commerce, rec)
}

func (r *RecordRepository) UpdateCommerceStatus(ctx context.Context, id string, status domain.ReviewStatus) error {
	if err := r.delay(ctx, r.opts.WriteDelay); err != nil {
		return err
	}
	return rewriteBlob(&r.commerce, id,
		func(rec *domain.CommerceRecord) string { return rec.ID },
		func(rec *domain.CommerceRecord) { rec.Status = status })
}

// delay simulates one storage round trip, honoring cancellation.
func (r *RecordRepository) delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func initBlob[T any](b *blobStore, seedRecords []T) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data != nil {
		return nil
	}
	data, err := json.Marshal(seedRecords)
	if err != nil {
		return fmt.Errorf("seed collection: %w", err)
	}
	b.data = data
	return nil
}

// loadBlob decodes a stored collection. A missing blob is an empty
// collection; an undecodable one is reported as corruption, never silently
// replaced.
func loadBlob[T any](b *blobStore) ([]T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return decode[T](b.data)
}

func decode[T any](data []byte) ([]T, error) {
	if data == nil {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageCorrupt, err)
	}
	return records, nil
}

func prependBlob[T any](b *blobStore, rec T) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	records, err := decode[T](b.data)
	if err != nil {
		return err
	}
	updated := append([]T{rec}, records...)
	data, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("store collection: %w", err)
	}
	b.data = data
	return nil
}

func rewriteBlob[T any](b *blobStore, id string, idOf func(*T) string, apply func(*T)) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	records, err := decode[T](b.data)
	if err != nil {
		return err
	}
	found := false
	for i := range records {
		if idOf(&records[i]) == id {
			apply(&records[i])
			found = true
			break
		}
	}
	if !found {
		return domain.ErrRecordNotFound
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("store collection: %w", err)
	}
	b.data = data
	return nil
}

// Corrupt overwrites a category's stored blob with an undecodable payload.
// Test hook for the storage-corruption path.
func (r *RecordRepository) Corrupt(category domain.Category) {
	var b *blobStore
	switch category {
	case domain.CategoryForest:
		b = &r.forest
	case domain.CategoryIndustry:
		b = &r.industry
	case domain.CategoryCommerce:
		b = &r.commerce
	default:
		return
	}
	b.mu.Lock()
	b.data = []byte("{not json")
	b.mu.Unlock()
}
