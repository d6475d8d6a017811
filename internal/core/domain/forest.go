package domain

import "time"

// ForestRecord is a periodic statistical return filed by a division forest
// office. All monetary figures are in thousands of rupees, areas in hectares.
// Records are immutable after creation except for Status.
type ForestRecord struct {
	ID     string `json:"id" bson:"_id"`
	SN     string `json:"sn" bson:"sn"`
	Office string `json:"office" bson:"office"`
	Date   string `json:"date" bson:"date"`

	// Budget and expenditure
	CurrentAllocation    float64 `json:"current_allocation" bson:"current_allocation"`
	CapitalAllocation    float64 `json:"capital_allocation" bson:"capital_allocation"`
	CurrentExpenditure   float64 `json:"current_expenditure" bson:"current_expenditure"`
	CapitalExpenditure   float64 `json:"capital_expenditure" bson:"capital_expenditure"`
	FinancialProgressPct float64 `json:"financial_progress_pct" bson:"financial_progress_pct"`

	// Forest holdings
	CommunityForestCount int     `json:"community_forest_count" bson:"community_forest_count"`
	ReligiousForestCount int     `json:"religious_forest_count" bson:"religious_forest_count"`
	LeaseholdForestCount int     `json:"leasehold_forest_count" bson:"leasehold_forest_count"`
	TotalForestArea      float64 `json:"total_forest_area" bson:"total_forest_area"`

	// Revenue and arrears
	Revenue              float64 `json:"revenue" bson:"revenue"`
	AuditSettlement      float64 `json:"audit_settlement" bson:"audit_settlement"`
	ArrearsRecoverable   float64 `json:"arrears_recoverable" bson:"arrears_recoverable"`
	ArrearsRegularizable float64 `json:"arrears_regularizable" bson:"arrears_regularizable"`
	AdvanceArrears       float64 `json:"advance_arrears" bson:"advance_arrears"`

	// Production and activities
	TimberProduction     float64 `json:"timber_production" bson:"timber_production"`
	CasesFiled           int     `json:"cases_filed" bson:"cases_filed"`
	WorkplanRenewal      int     `json:"workplan_renewal" bson:"workplan_renewal"`
	WorkplanRegistration int     `json:"workplan_registration" bson:"workplan_registration"`
	Saplings             int     `json:"saplings" bson:"saplings"`
	Herbs                float64 `json:"herbs" bson:"herbs"`
	Resin                float64 `json:"resin" bson:"resin"`
	Plantation           float64 `json:"plantation" bson:"plantation"`

	// Personnel
	ApprovedPositions int    `json:"approved_positions" bson:"approved_positions"`
	FilledPositions   int    `json:"filled_positions" bson:"filled_positions"`
	PhysicalProgress  string `json:"physical_progress" bson:"physical_progress"`

	// Per-regime breakdowns (community / leasehold / religious forests)
	CFArea       float64 `json:"cf_area" bson:"cf_area"`
	LFArea       float64 `json:"lf_area" bson:"lf_area"`
	RFArea       float64 `json:"rf_area" bson:"rf_area"`
	CFHouseholds int     `json:"cf_hh" bson:"cf_hh"`
	LFHouseholds int     `json:"lf_hh" bson:"lf_hh"`
	RFHouseholds int     `json:"rf_hh" bson:"rf_hh"`

	Encroachment float64 `json:"encroachment" bson:"encroachment"`
	Relief       float64 `json:"relief" bson:"relief"`

	Status    ReviewStatus `json:"status" bson:"status"`
	CreatedBy string       `json:"createdBy" bson:"created_by"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
	Remarks   string       `json:"remarks,omitempty" bson:"remarks,omitempty"`
}
