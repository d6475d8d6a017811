package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/moitfe/portal-api/internal/core/domain"
	"github.com/moitfe/portal-api/internal/core/ports"
	"github.com/moitfe/portal-api/internal/infrastructure/db/memory"
)

var (
	enumerator = domain.User{ID: "u-3", Role: domain.RoleEnumerator, Department: domain.DepartmentIndustry}
	admin      = domain.User{ID: "u-2", Role: domain.RoleAdmin, Department: domain.DepartmentForest}
	viewer     = domain.User{ID: "u-4", Role: domain.RoleViewer, Department: domain.DepartmentCommerce}
)

func newRecordService(t *testing.T) *RecordService {
	t.Helper()
	svc := NewRecordService(memory.NewRecordRepository(memory.Options{}), zerolog.Nop())
	if err := svc.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	return svc
}

func TestLoadAllHydratesSeedData(t *testing.T) {
	svc := newRecordService(t)
	if len(svc.ForestRecords()) == 0 {
		t.Error("forest collection should be hydrated")
	}
	if len(svc.IndustryRecords()) == 0 {
		t.Error("industry collection should be hydrated")
	}
	if len(svc.CommerceRecords()) == 0 {
		t.Error("commerce collection should be hydrated")
	}
}

func TestCreateForestAlwaysPending(t *testing.T) {
	svc := newRecordService(t)
	before := len(svc.ForestRecords())

	rec, err := svc.CreateForest(context.Background(), enumerator, ports.CreateForestInput{
		Office: "Division Forest Office, Kaski",
		Date:   "2024-06-16",
	})
	if err != nil {
		t.Fatalf("CreateForest: %v", err)
	}
	if rec.Status != domain.StatusPending {
		t.Fatalf("status: got %s, want Pending", rec.Status)
	}
	if rec.CreatedBy != enumerator.ID {
		t.Fatalf("createdBy: got %s, want %s", rec.CreatedBy, enumerator.ID)
	}
	if len(rec.ID) < 3 || rec.ID[:2] != "F-" {
		t.Fatalf("id %q should carry the F- prefix", rec.ID)
	}

	after := svc.ForestRecords()
	if len(after) != before+1 {
		t.Fatalf("collection length: got %d, want %d", len(after), before+1)
	}
	if after[0].ID != rec.ID {
		t.Fatalf("new record should be first: got %s", after[0].ID)
	}
}

func TestCreateRejectsMissingRequiredFields(t *testing.T) {
	svc := newRecordService(t)
	ctx := context.Background()

	if _, err := svc.CreateForest(ctx, enumerator, ports.CreateForestInput{Date: "2024-01-01"}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("forest without office: got %v, want ErrValidation", err)
	}
	if _, err := svc.CreateIndustry(ctx, enumerator, ports.CreateIndustryInput{Office: "X"}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("industry without month: got %v, want ErrValidation", err)
	}
	if _, err := svc.CreateCommerce(ctx, enumerator, ports.CreateCommerceInput{Month: "Jestha"}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("commerce without office: got %v, want ErrValidation", err)
	}
}

func TestDistinctIDsForRapidCreates(t *testing.T) {
	svc := newRecordService(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		rec, err := svc.CreateCommerce(ctx, enumerator, ports.CreateCommerceInput{
			Office: "Commerce Office, Kaski",
			Month:  "Jestha",
		})
		if err != nil {
			t.Fatalf("CreateCommerce: %v", err)
		}
		if seen[rec.ID] {
			t.Fatalf("duplicate id %s", rec.ID)
		}
		seen[rec.ID] = true
	}
}

func TestSetStatusApprovesPendingRecord(t *testing.T) {
	svc := newRecordService(t)
	ctx := context.Background()

	rec, err := svc.CreateForest(ctx, enumerator, ports.CreateForestInput{Office: "Gorkha", Date: "2024-05-01"})
	if err != nil {
		t.Fatalf("CreateForest: %v", err)
	}

	if err := svc.SetStatus(ctx, admin, domain.CategoryForest, rec.ID, domain.StatusApproved); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	for _, r := range svc.ForestRecords() {
		if r.ID == rec.ID && r.Status != domain.StatusApproved {
			t.Fatalf("status after review: got %s, want Approved", r.Status)
		}
	}
}

func TestSetStatusDeniedForNonReviewers(t *testing.T) {
	svc := newRecordService(t)
	ctx := context.Background()

	rec, err := svc.CreateForest(ctx, enumerator, ports.CreateForestInput{Office: "Tanahun", Date: "2024-05-02"})
	if err != nil {
		t.Fatalf("CreateForest: %v", err)
	}

	for _, actor := range []domain.User{enumerator, viewer} {
		if err := svc.SetStatus(ctx, actor, domain.CategoryForest, rec.ID, domain.StatusApproved); !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("%s review: got %v, want ErrForbidden", actor.Role, err)
		}
	}

	for _, r := range svc.ForestRecords() {
		if r.ID == rec.ID && r.Status != domain.StatusPending {
			t.Fatalf("denied review must not change status, got %s", r.Status)
		}
	}
}

func TestSetStatusRejectsTerminalTransition(t *testing.T) {
	svc := newRecordService(t)
	ctx := context.Background()

	rec, err := svc.CreateIndustry(ctx, enumerator, ports.CreateIndustryInput{Office: "Rupandehi", Month: "Baisakh"})
	if err != nil {
		t.Fatalf("CreateIndustry: %v", err)
	}
	if err := svc.SetStatus(ctx, admin, domain.CategoryIndustry, rec.ID, domain.StatusRejected); err != nil {
		t.Fatalf("first review: %v", err)
	}

	err = svc.SetStatus(ctx, admin, domain.CategoryIndustry, rec.ID, domain.StatusApproved)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("re-review: got %v, want ErrInvalidTransition", err)
	}
}

func TestSetStatusUnknownRecord(t *testing.T) {
	svc := newRecordService(t)
	err := svc.SetStatus(context.Background(), admin, domain.CategoryCommerce, "C-0", domain.StatusApproved)
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("got %v, want ErrRecordNotFound", err)
	}
}

// failingRepo wraps a working repository but fails all inserts, to verify a
// gateway failure leaves the hydrated collections untouched.
type failingRepo struct {
	ports.RecordRepository
}

var errGatewayDown = errors.New("gateway down")

func (f *failingRepo) InsertForestRecord(ctx context.Context, rec domain.ForestRecord) error {
	return errGatewayDown
}

func TestCreateFailureLeavesCollectionsUnchanged(t *testing.T) {
	svc := NewRecordService(&failingRepo{memory.NewRecordRepository(memory.Options{})}, zerolog.Nop())
	if err := svc.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	before := len(svc.ForestRecords())

	_, err := svc.CreateForest(context.Background(), enumerator, ports.CreateForestInput{Office: "Kaski", Date: "2024-01-01"})
	if !errors.Is(err, errGatewayDown) {
		t.Fatalf("got %v, want gateway error", err)
	}
	if got := len(svc.ForestRecords()); got != before {
		t.Fatalf("collection changed on failed insert: %d -> %d", before, got)
	}
}
