package domain

import "time"

// CommerceRecord is the monthly commerce-registration return.
type CommerceRecord struct {
	ID     string `json:"id" bson:"_id"`
	Office string `json:"office" bson:"office"`
	Month  string `json:"month" bson:"month"`

	// Registration activity counts
	CommRegistrations int `json:"comm_reg" bson:"comm_reg"`
	Renewals          int `json:"renewal" bson:"renewal"`
	CapIncrease       int `json:"cap_increase" bson:"cap_increase"`
	Copies            int `json:"copy" bson:"copy"`
	OwnerTransfers    int `json:"owner_transfer" bson:"owner_transfer"`
	LocTransfers      int `json:"loc_transfer" bson:"loc_transfer"`
	Amendments        int `json:"amendment" bson:"amendment"`
	Cancellations     int `json:"cancellation" bson:"cancellation"`
	Other             int `json:"other" bson:"other"`

	Details           string  `json:"details" bson:"details"`
	CapIncreaseAmount float64 `json:"cap_increase_amt" bson:"cap_increase_amt"`

	// Revenue
	RegRevenue   float64 `json:"reg_rev" bson:"reg_rev"`
	OtherRevenue float64 `json:"other_rev" bson:"other_rev"`
	TotalRevenue float64 `json:"total_rev" bson:"total_rev"`

	TotalCommRegistrations int `json:"total_comm_reg" bson:"total_comm_reg"`

	Status    ReviewStatus `json:"status" bson:"status"`
	CreatedBy string       `json:"createdBy" bson:"created_by"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
}
