package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/moitfe/portal-api/internal/core/access"
	"github.com/moitfe/portal-api/internal/core/domain"
	"github.com/moitfe/portal-api/internal/core/ports"
)

// RecordService owns the three in-memory record collections for the lifetime
// of the process and every mutation entry point. It is the explicit session
// store: views read from it, and all writes go through the persistence
// gateway followed by a re-fetch of the affected collection, so the in-memory
// view always matches durable state. A failed gateway call leaves the
// in-memory collections untouched.
type RecordService struct {
	repo ports.RecordRepository
	log  zerolog.Logger

	forestMu sync.RWMutex
	forest   []domain.ForestRecord

	industryMu sync.RWMutex
	industry   []domain.IndustryRecord

	commerceMu sync.RWMutex
	commerce   []domain.CommerceRecord

	// idMu guards lastStamp so two creates in the same millisecond still get
	// distinct ids of the required <prefix>-<millis> form.
	idMu      sync.Mutex
	lastStamp int64
}

func NewRecordService(repo ports.RecordRepository, log zerolog.Logger) *RecordService {
	return &RecordService{repo: repo, log: log}
}

// LoadAll initializes storage (seeding empty categories) and hydrates all
// three collections. Record-dependent views must not be served before it
// completes.
func (s *RecordService) LoadAll(ctx context.Context) error {
	if err := s.repo.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	if err := s.refreshForest(ctx); err != nil {
		return err
	}
	if err := s.refreshIndustry(ctx); err != nil {
		return err
	}
	if err := s.refreshCommerce(ctx); err != nil {
		return err
	}
	s.log.Info().
		Int("forest", len(s.ForestRecords())).
		Int("industry", len(s.IndustryRecords())).
		Int("commerce", len(s.CommerceRecords())).
		Msg("record collections hydrated")
	return nil
}

func (s *RecordService) ForestRecords() []domain.ForestRecord {
	s.forestMu.RLock()
	defer s.forestMu.RUnlock()
	out := make([]domain.ForestRecord, len(s.forest))
	copy(out, s.forest)
	return out
}

func (s *RecordService) IndustryRecords() []domain.IndustryRecord {
	s.industryMu.RLock()
	defer s.industryMu.RUnlock()
	out := make([]domain.IndustryRecord, len(s.industry))
	copy(out, s.industry)
	return out
}

func (s *RecordService) CommerceRecords() []domain.CommerceRecord {
	s.commerceMu.RLock()
	defer s.commerceMu.RUnlock()
	out := make([]domain.CommerceRecord, len(s.commerce))
	copy(out, s.commerce)
	return out
}

// CreateForest validates, assigns id/status/ownership, persists, and
// re-fetches the forest collection. Draft and final submissions share this
// entry point and both yield Pending.
func (s *RecordService) CreateForest(ctx context.Context, actor domain.User, in ports.CreateForestInput) (*domain.ForestRecord, error) {
	if in.Office == "" || in.Date == "" {
		return nil, fmt.Errorf("%w: office and date are required", domain.ErrValidation)
	}

	rec := domain.ForestRecord{
		ID:     s.nextID(domain.CategoryForest),
		SN:     in.SN,
		Office: in.Office,
		Date:   in.Date,

		CurrentAllocation:    in.CurrentAllocation,
		CapitalAllocation:    in.CapitalAllocation,
		CurrentExpenditure:   in.CurrentExpenditure,
		CapitalExpenditure:   in.CapitalExpenditure,
		FinancialProgressPct: in.FinancialProgressPct,

		CommunityForestCount: in.CommunityForestCount,
		ReligiousForestCount: in.ReligiousForestCount,
		LeaseholdForestCount: in.LeaseholdForestCount,
		TotalForestArea:      in.TotalForestArea,

		Revenue:              in.Revenue,
		AuditSettlement:      in.AuditSettlement,
		ArrearsRecoverable:   in.ArrearsRecoverable,
		ArrearsRegularizable: in.ArrearsRegularizable,
		AdvanceArrears:       in.AdvanceArrears,

		TimberProduction:     in.TimberProduction,
		CasesFiled:           in.CasesFiled,
		WorkplanRenewal:      in.WorkplanRenewal,
		WorkplanRegistration: in.WorkplanRegistration,
		Saplings:             in.Saplings,
		Herbs:                in.Herbs,
		Resin:                in.Resin,
		Plantation:           in.Plantation,

		ApprovedPositions: in.ApprovedPositions,
		FilledPositions:   in.FilledPositions,
		PhysicalProgress:  in.PhysicalProgress,

		CFArea:       in.CFArea,
		LFArea:       in.LFArea,
		RFArea:       in.RFArea,
		CFHouseholds: in.CFHouseholds,
		LFHouseholds: in.LFHouseholds,
		RFHouseholds: in.RFHouseholds,

		Encroachment: in.Encroachment,
		Relief:       in.Relief,
		Remarks:      in.Remarks,

		Status:    domain.StatusPending,
		CreatedBy: actor.ID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.InsertForestRecord(ctx, rec); err != nil {
		s.log.Error().Err(err).Str("office", rec.Office).Msg("failed to insert forest record")
		return nil, err
	}
	if err := s.refreshForest(ctx); err != nil {
		return nil, err
	}

	s.log.Info().Str("id", rec.ID).Str("office", rec.Office).Str("created_by", actor.ID).Msg("forest record created")
	return &rec, nil
}

func (s *RecordService) CreateIndustry(ctx context.Context, actor domain.User, in ports.CreateIndustryInput) (*domain.IndustryRecord, error) {
	if in.Office == "" || in.Month == "" {
		return nil, fmt.Errorf("%w: office and month are required", domain.ErrValidation)
	}

	rec := domain.IndustryRecord{
		ID:     s.nextID(domain.CategoryIndustry),
		Office: in.Office,
		Month:  in.Month,

		CurrentAllocation:    in.CurrentAllocation,
		CapitalAllocation:    in.CapitalAllocation,
		CurrentExpenditure:   in.CurrentExpenditure,
		CapitalExpenditure:   in.CapitalExpenditure,
		FinancialProgressPct: in.FinancialProgressPct,

		RegCount:           in.RegCount,
		RenewalCount:       in.RenewalCount,
		LocTransferCount:   in.LocTransferCount,
		NameChangeCount:    in.NameChangeCount,
		CopyCount:          in.CopyCount,
		AmendCount:         in.AmendCount,
		CancelCount:        in.CancelCount,
		OwnerTransferCount: in.OwnerTransferCount,
		CapIncreaseCount:   in.CapIncreaseCount,
		OtherCount:         in.OtherCount,

		MicroCount:   in.MicroCount,
		CottageCount: in.CottageCount,
		SmallCount:   in.SmallCount,
		MediumCount:  in.MediumCount,
		LargeCount:   in.LargeCount,

		EnergyCount:     in.EnergyCount,
		ProductionCount: in.ProductionCount,
		AgroForestCount: in.AgroForestCount,
		ServiceCount:    in.ServiceCount,
		TourismCount:    in.TourismCount,
		MineralCount:    in.MineralCount,
		InfraCount:      in.InfraCount,
		ITCount:         in.ITCount,

		FemaleEmployment: in.FemaleEmployment,
		MaleEmployment:   in.MaleEmployment,

		RegRevenue:           in.RegRevenue,
		RenewalRevenue:       in.RenewalRevenue,
		LocTransferRevenue:   in.LocTransferRevenue,
		NameChangeRevenue:    in.NameChangeRevenue,
		CopyRevenue:          in.CopyRevenue,
		AmendRevenue:         in.AmendRevenue,
		CancelRevenue:        in.CancelRevenue,
		OwnerTransferRevenue: in.OwnerTransferRevenue,
		CapIncreaseRevenue:   in.CapIncreaseRevenue,
		OtherRevenue:         in.OtherRevenue,
		TotalRevenue:         in.TotalRevenue,

		ApprovedPositions: in.ApprovedPositions,
		FilledPositions:   in.FilledPositions,
		TotalIndustries:   in.TotalIndustries,
		Remarks:           in.Remarks,

		VerificationStatus: domain.StatusPending,
		CreatedBy:          actor.ID,
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.repo.InsertIndustryRecord(ctx, rec); err != nil {
		s.log.Error().Err(err).Str("office", rec.Office).Msg("failed to insert industry record")
		return nil, err
	}
	if err := s.refreshIndustry(ctx); err != nil {
		return nil, err
	}

	s.log.Info().Str("id", rec.ID).Str("office", rec.Office).Str("created_by", actor.ID).Msg("industry record created")
	return &rec, nil
}

func (s *RecordService) CreateCommerce(ctx context.Context, actor domain.User, in ports.CreateCommerceInput) (*domain.CommerceRecord, error) {
	if in.Office == "" || in.Month == "" {
		return nil, fmt.Errorf("%w: office and month are required", domain.ErrValidation)
	}

	rec := domain.CommerceRecord{
		ID:     s.nextID(domain.CategoryCommerce),
		Office: in.Office,
		Month:  in.Month,

		CommRegistrations: in.CommRegistrations,
		Renewals:          in.Renewals,
		CapIncrease:       in.CapIncrease,
		Copies:            in.Copies,
		OwnerTransfers:    in.OwnerTransfers,
		LocTransfers:      in.LocTransfers,
		Amendments:        in.Amendments,
		Cancellations:     in.Cancellations,
		Other:             in.Other,

		Details:           in.Details,
		CapIncreaseAmount: in.CapIncreaseAmount,

		RegRevenue:   in.RegRevenue,
		OtherRevenue: in.OtherRevenue,
		TotalRevenue: in.TotalRevenue,

		TotalCommRegistrations: in.TotalCommRegistrations,

		Status:    domain.StatusPending,
		CreatedBy: actor.ID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.InsertCommerceRecord(ctx, rec); err != nil {
		s.log.Error().Err(err).Str("office", rec.Office).Msg("failed to insert commerce record")
		return nil, err
	}
	if err := s.refreshCommerce(ctx); err != nil {
		return nil, err
	}

	s.log.Info().Str("id", rec.ID).Str("office", rec.Office).Str("created_by", actor.ID).Msg("commerce record created")
	return &rec, nil
}

// SetStatus drives the Pending → Approved/Rejected transition. The actor must
// hold a reviewer role and the record must currently be Pending; transitions
// out of a terminal state are rejected, never silently absorbed.
func (s *RecordService) SetStatus(ctx context.Context, actor domain.User, category domain.Category, id string, status domain.ReviewStatus) error {
	if !access.CanReview(actor.Role) {
		s.log.Warn().Str("role", string(actor.Role)).Str("id", id).Msg("review denied")
		return domain.ErrForbidden
	}

	current, err := s.currentStatus(category, id)
	if err != nil {
		return err
	}
	if !current.CanTransitionTo(status) {
		return fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, current, status)
	}

	switch category {
	case domain.CategoryForest:
		if err := s.repo.UpdateForestStatus(ctx, id, status); err != nil {
			return err
		}
		if err := s.refreshForest(ctx); err != nil {
			return err
		}
	case domain.CategoryIndustry:
		if err := s.repo.UpdateIndustryStatus(ctx, id, status); err != nil {
			return err
		}
		if err := s.refreshIndustry(ctx); err != nil {
			return err
		}
	case domain.CategoryCommerce:
		if err := s.repo.UpdateCommerceStatus(ctx, id, status); err != nil {
			return err
		}
		if err := s.refreshCommerce(ctx); err != nil {
			return err
		}
	default:
		return domain.ErrUnknownCategory
	}

	s.log.Info().
		Str("category", string(category)).
		Str("id", id).
		Str("status", string(status)).
		Str("reviewer", actor.ID).
		Msg("record reviewed")
	return nil
}

func (s *RecordService) currentStatus(category domain.Category, id string) (domain.ReviewStatus, error) {
	switch category {
	case domain.CategoryForest:
		s.forestMu.RLock()
		defer s.forestMu.RUnlock()
		for i := range s.forest {
			if s.forest[i].ID == id {
				return s.forest[i].Status, nil
			}
		}
	case domain.CategoryIndustry:
		s.industryMu.RLock()
		defer s.industryMu.RUnlock()
		for i := range s.industry {
			if s.industry[i].ID == id {
				return s.industry[i].VerificationStatus, nil
			}
		}
	case domain.CategoryCommerce:
		s.commerceMu.RLock()
		defer s.commerceMu.RUnlock()
		for i := range s.commerce {
			if s.commerce[i].ID == id {
				return s.commerce[i].Status, nil
			}
		}
	default:
		return "", domain.ErrUnknownCategory
	}
	return "", domain.ErrRecordNotFound
}

func (s *RecordService) refreshForest(ctx context.Context) error {
	records, err := s.repo.ForestRecords(ctx)
	if err != nil {
		return fmt.Errorf("refresh forest: %w", err)
	}
	s.forestMu.Lock()
	s.forest = records
	s.forestMu.Unlock()
	return nil
}

func (s *RecordService) refreshIndustry(ctx context.Context) error {
	records, err := s.repo.IndustryRecords(ctx)
	if err != nil {
		return fmt.Errorf("refresh industry: %w", err)
	}
	s.industryMu.Lock()
	s.industry = records
	s.industryMu.Unlock()
	return nil
}

func (s *RecordService) refreshCommerce(ctx context.Context) error {
	records, err := s.repo.CommerceRecords(ctx)
	if err != nil {
		return fmt.Errorf("refresh commerce: %w", err)
	}
	s.commerceMu.Lock()
	s.commerce = records
	s.commerceMu.Unlock()
	return nil
}

// nextID returns "<prefix><unix-millis>", bumping the stamp when two creates
// land in the same millisecond.
func (s *RecordService) nextID(category domain.Category) string {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	now := time.Now().UnixMilli()
	if now <= s.lastStamp {
		now = s.lastStamp + 1
	}
	s.lastStamp = now
	return fmt.Sprintf("%s%d", category.IDPrefix(), now)
}
