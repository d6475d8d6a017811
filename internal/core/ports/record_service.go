package ports

import (
	"context"

	"github.com/moitfe/portal-api/internal/core/domain"
)

// CreateForestInput carries a submitted forest return. The transport layer
// binds it straight from the request body; unspecified numeric fields default
// to zero. Office and date are the only hard-required fields.
type CreateForestInput struct {
	SN     string `json:"sn"`
	Office string `json:"office" validate:"required"`
	Date   string `json:"date" validate:"required"`

	CurrentAllocation    float64 `json:"current_allocation"`
	CapitalAllocation    float64 `json:"capital_allocation"`
	CurrentExpenditure   float64 `json:"current_expenditure"`
	CapitalExpenditure   float64 `json:"capital_expenditure"`
	FinancialProgressPct float64 `json:"financial_progress_pct" validate:"gte=0,lte=100"`

	CommunityForestCount int     `json:"community_forest_count"`
	ReligiousForestCount int     `json:"religious_forest_count"`
	LeaseholdForestCount int     `json:"leasehold_forest_count"`
	TotalForestArea      float64 `json:"total_forest_area"`

	Revenue              float64 `json:"revenue"`
	AuditSettlement      float64 `json:"audit_settlement"`
	ArrearsRecoverable   float64 `json:"arrears_recoverable"`
	ArrearsRegularizable float64 `json:"arrears_regularizable"`
	AdvanceArrears       float64 `json:"advance_arrears"`

	TimberProduction     float64 `json:"timber_production"`
	CasesFiled           int     `json:"cases_filed"`
	WorkplanRenewal      int     `json:"workplan_renewal"`
	WorkplanRegistration int     `json:"workplan_registration"`
	Saplings             int     `json:"saplings"`
	Herbs                float64 `json:"herbs"`
	Resin                float64 `json:"resin"`
	Plantation           float64 `json:"plantation"`

	ApprovedPositions int    `json:"approved_positions"`
	FilledPositions   int    `json:"filled_positions"`
	PhysicalProgress  string `json:"physical_progress"`

	CFArea       float64 `json:"cf_area"`
	LFArea       float64 `json:"lf_area"`
	RFArea       float64 `json:"rf_area"`
	CFHouseholds int     `json:"cf_hh"`
	LFHouseholds int     `json:"lf_hh"`
	RFHouseholds int     `json:"rf_hh"`

	Encroachment float64 `json:"encroachment"`
	Relief       float64 `json:"relief"`
	Remarks      string  `json:"remarks"`
}

// CreateIndustryInput carries a submitted monthly industry return.
type CreateIndustryInput struct {
	Office string `json:"office" validate:"required"`
	Month  string `json:"month" validate:"required"`

	CurrentAllocation    float64 `json:"current_allocation"`
	CapitalAllocation    float64 `json:"capital_allocation"`
	CurrentExpenditure   float64 `json:"current_expenditure"`
	CapitalExpenditure   float64 `json:"capital_expenditure"`
	FinancialProgressPct float64 `json:"financial_progress_pct" validate:"gte=0,lte=100"`

	RegCount           int `json:"reg_count"`
	RenewalCount       int `json:"renewal_count"`
	LocTransferCount   int `json:"loc_transfer_count"`
	NameChangeCount    int `json:"name_change_count"`
	CopyCount          int `json:"copy_count"`
	AmendCount         int `json:"amend_count"`
	CancelCount        int `json:"cancel_count"`
	OwnerTransferCount int `json:"owner_transfer_count"`
	CapIncreaseCount   int `json:"cap_increase_count"`
	OtherCount         int `json:"other_count"`

	MicroCount   int `json:"micro_count"`
	CottageCount int `json:"cottage_count"`
	SmallCount   int `json:"small_count"`
	MediumCount  int `json:"medium_count"`
	LargeCount   int `json:"large_count"`

	EnergyCount     int `json:"energy_count"`
	ProductionCount int `json:"production_count"`
	AgroForestCount int `json:"agro_forest_count"`
	ServiceCount    int `json:"service_count"`
	TourismCount    int `json:"tourism_count"`
	MineralCount    int `json:"mineral_count"`
	InfraCount      int `json:"infra_count"`
	ITCount         int `json:"it_count"`

	FemaleEmployment int `json:"female_emp"`
	MaleEmployment   int `json:"male_emp"`

	RegRevenue           float64 `json:"reg_rev"`
	RenewalRevenue       float64 `json:"renewal_rev"`
	LocTransferRevenue   float64 `json:"loc_transfer_rev"`
	NameChangeRevenue    float64 `json:"name_change_rev"`
	CopyRevenue          float64 `json:"copy_rev"`
	AmendRevenue         float64 `json:"amend_rev"`
	CancelRevenue        float64 `json:"cancel_rev"`
	OwnerTransferRevenue float64 `json:"owner_transfer_rev"`
	CapIncreaseRevenue   float64 `json:"cap_increase_rev"`
	OtherRevenue         float64 `json:"other_rev"`
	TotalRevenue         float64 `json:"total_rev"`

	ApprovedPositions int `json:"approved_pos"`
	FilledPositions   int `json:"filled_pos"`
	TotalIndustries   int `json:"total_industries"`

	Remarks string `json:"remarks"`
}

// CreateCommerceInput carries a submitted monthly commerce return.
type CreateCommerceInput struct {
	Office string `json:"office" validate:"required"`
	Month  string `json:"month" validate:"required"`

	CommRegistrations int `json:"comm_reg"`
	Renewals          int `json:"renewal"`
	CapIncrease       int `json:"cap_increase"`
	Copies            int `json:"copy"`
	OwnerTransfers    int `json:"owner_transfer"`
	LocTransfers      int `json:"loc_transfer"`
	Amendments        int `json:"amendment"`
	Cancellations     int `json:"cancellation"`
	Other             int `json:"other"`

	Details           string  `json:"details"`
	CapIncreaseAmount float64 `json:"cap_increase_amt"`

	RegRevenue   float64 `json:"reg_rev"`
	OtherRevenue float64 `json:"other_rev"`
	TotalRevenue float64 `json:"total_rev"`

	TotalCommRegistrations int `json:"total_comm_reg"`
}

// RecordService is the session-scoped record store: it owns the three
// in-memory collections hydrated from the persistence gateway and every
// mutation entry point. After every successful write the affected collection
// is re-fetched from storage, so reads always reflect durable state.
type RecordService interface {
	// LoadAll initializes storage and hydrates all three collections. Must
	// complete before any record-dependent view is served.
	LoadAll(ctx context.Context) error

	ForestRecords() []domain.ForestRecord
	IndustryRecords() []domain.IndustryRecord
	CommerceRecords() []domain.CommerceRecord

	CreateForest(ctx context.Context, actor domain.User, in CreateForestInput) (*domain.ForestRecord, error)
	CreateIndustry(ctx context.Context, actor domain.User, in CreateIndustryInput) (*domain.IndustryRecord, error)
	CreateCommerce(ctx context.Context, actor domain.User, in CreateCommerceInput) (*domain.CommerceRecord, error)

	// SetStatus drives a review transition. Only reviewer roles may call it,
	// and only records currently Pending may transition.
	SetStatus(ctx context.Context, actor domain.User, category domain.Category, id string, status domain.ReviewStatus) error
}
