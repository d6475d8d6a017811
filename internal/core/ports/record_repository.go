package ports

import (
	"context"

	"github.com/moitfe/portal-api/internal/core/domain"
)

// RecordRepository is the persistence gateway for the three record
// collections. Implementations store each category as its own collection,
// seed it on first use, and keep newest-first ordering.
//
// The gateway is not safe for concurrent writers on the same category: insert
// and update are read-modify-write cycles over the whole collection.
// Implementations serialize writers per category; callers must still not
// assume cross-category atomicity.
type RecordRepository interface {
	// Initialize seeds every empty category with its sample collection.
	// Idempotent; must be called once before any read.
	Initialize(ctx context.Context) error

	ForestRecords(ctx context.Context) ([]domain.ForestRecord, error)
	InsertForestRecord(ctx context.Context, rec domain.ForestRecord) error
	UpdateForestStatus(ctx context.Context, id string, status domain.ReviewStatus) error

	IndustryRecords(ctx context.Context) ([]domain.IndustryRecord, error)
	InsertIndustryRecord(ctx context.Context, rec domain.IndustryRecord) error
	UpdateIndustryStatus(ctx context.Context, id string, status domain.ReviewStatus) error

	CommerceRecords(ctx context.Context) ([]domain.CommerceRecord, error)
	InsertCommerceRecord(ctx context.Context, rec domain.CommerceRecord) error
	UpdateCommerceStatus(ctx context.Context, id string, status domain.ReviewStatus) error
}
