package domain

import "time"

// IndustryRecord is the monthly industry-administration return. It keeps the
// legacy "verificationStatus" field name on the wire; semantically it is the
// same Pending/Approved/Rejected lifecycle as the other categories.
type IndustryRecord struct {
	ID     string `json:"id" bson:"_id"`
	Office string `json:"office" bson:"office"`
	Month  string `json:"month" bson:"month"`

	// Budget and expenditure
	CurrentAllocation    float64 `json:"current_allocation" bson:"current_allocation"`
	CapitalAllocation    float64 `json:"capital_allocation" bson:"capital_allocation"`
	CurrentExpenditure   float64 `json:"current_expenditure" bson:"current_expenditure"`
	CapitalExpenditure   float64 `json:"capital_expenditure" bson:"capital_expenditure"`
	FinancialProgressPct float64 `json:"financial_progress_pct" bson:"financial_progress_pct"`

	// Registration activity counts
	RegCount           int `json:"reg_count" bson:"reg_count"`
	RenewalCount       int `json:"renewal_count" bson:"renewal_count"`
	LocTransferCount   int `json:"loc_transfer_count" bson:"loc_transfer_count"`
	NameChangeCount    int `json:"name_change_count" bson:"name_change_count"`
	CopyCount          int `json:"copy_count" bson:"copy_count"`
	AmendCount         int `json:"amend_count" bson:"amend_count"`
	CancelCount        int `json:"cancel_count" bson:"cancel_count"`
	OwnerTransferCount int `json:"owner_transfer_count" bson:"owner_transfer_count"`
	CapIncreaseCount   int `json:"cap_increase_count" bson:"cap_increase_count"`
	OtherCount         int `json:"other_count" bson:"other_count"`

	// Scale breakdown
	MicroCount   int `json:"micro_count" bson:"micro_count"`
	CottageCount int `json:"cottage_count" bson:"cottage_count"`
	SmallCount   int `json:"small_count" bson:"small_count"`
	MediumCount  int `json:"medium_count" bson:"medium_count"`
	LargeCount   int `json:"large_count" bson:"large_count"`

	// Sector breakdown
	EnergyCount     int `json:"energy_count" bson:"energy_count"`
	ProductionCount int `json:"production_count" bson:"production_count"`
	AgroForestCount int `json:"agro_forest_count" bson:"agro_forest_count"`
	ServiceCount    int `json:"service_count" bson:"service_count"`
	TourismCount    int `json:"tourism_count" bson:"tourism_count"`
	MineralCount    int `json:"mineral_count" bson:"mineral_count"`
	InfraCount      int `json:"infra_count" bson:"infra_count"`
	ITCount         int `json:"it_count" bson:"it_count"`

	// Employment
	FemaleEmployment int `json:"female_emp" bson:"female_emp"`
	MaleEmployment   int `json:"male_emp" bson:"male_emp"`

	// Revenue breakdown
	RegRevenue           float64 `json:"reg_rev" bson:"reg_rev"`
	RenewalRevenue       float64 `json:"renewal_rev" bson:"renewal_rev"`
	LocTransferRevenue   float64 `json:"loc_transfer_rev" bson:"loc_transfer_rev"`
	NameChangeRevenue    float64 `json:"name_change_rev" bson:"name_change_rev"`
	CopyRevenue          float64 `json:"copy_rev" bson:"copy_rev"`
	AmendRevenue         float64 `json:"amend_rev" bson:"amend_rev"`
	CancelRevenue        float64 `json:"cancel_rev" bson:"cancel_rev"`
	OwnerTransferRevenue float64 `json:"owner_transfer_rev" bson:"owner_transfer_rev"`
	CapIncreaseRevenue   float64 `json:"cap_increase_rev" bson:"cap_increase_rev"`
	OtherRevenue         float64 `json:"other_rev" bson:"other_rev"`
	TotalRevenue         float64 `json:"total_rev" bson:"total_rev"`

	// Personnel and summary
	ApprovedPositions int `json:"approved_pos" bson:"approved_pos"`
	FilledPositions   int `json:"filled_pos" bson:"filled_pos"`
	TotalIndustries   int `json:"total_industries" bson:"total_industries"`

	VerificationStatus ReviewStatus `json:"verificationStatus" bson:"verification_status"`
	CreatedBy          string       `json:"createdBy" bson:"created_by"`
	CreatedAt          time.Time    `json:"created_at" bson:"created_at"`
	Remarks            string       `json:"remarks,omitempty" bson:"remarks,omitempty"`
}
