package service

import (
	"reflect"
	"testing"

	"github.com/moitfe/portal-api/internal/core/domain"
	"github.com/moitfe/portal-api/internal/core/ports"
)

// fixedRecords serves canned collections to the aggregator.
type fixedRecords struct {
	ports.RecordService
	forest   []domain.ForestRecord
	industry []domain.IndustryRecord
	commerce []domain.CommerceRecord
}

func (f *fixedRecords) ForestRecords() []domain.ForestRecord     { return f.forest }
func (f *fixedRecords) IndustryRecords() []domain.IndustryRecord { return f.industry }
func (f *fixedRecords) CommerceRecords() []domain.CommerceRecord { return f.commerce }

func statsFixture() *StatsService {
	return NewStatsService(&fixedRecords{
		forest: []domain.ForestRecord{
			{ID: "F-1", Office: "Kaski", TotalForestArea: 100, TimberProduction: 10, Revenue: 5, Status: domain.StatusPending},
			{ID: "F-2", Office: "Gorkha", TotalForestArea: 50, TimberProduction: 4, Revenue: 2, Status: domain.StatusApproved},
		},
		industry: []domain.IndustryRecord{
			{ID: "I-1", Office: "Kaski", TotalIndustries: 20, FemaleEmployment: 30, MaleEmployment: 70, TotalRevenue: 9, VerificationStatus: domain.StatusPending},
			{ID: "I-2", Office: "Rupandehi", TotalIndustries: 5, FemaleEmployment: 8, MaleEmployment: 12, TotalRevenue: 3, VerificationStatus: domain.StatusApproved},
		},
		commerce: []domain.CommerceRecord{
			{ID: "C-1", Office: "Kaski", CommRegistrations: 7, TotalCommRegistrations: 40, TotalRevenue: 6, Status: domain.StatusRejected},
		},
	})
}

func TestSummarizeAllOffices(t *testing.T) {
	sum := statsFixture().Summarize("")

	if sum.System.TotalForestArea != 150 {
		t.Errorf("total forest area: got %v, want 150", sum.System.TotalForestArea)
	}
	if sum.System.ActiveIndustries != 25 {
		t.Errorf("active industries: got %v, want 25", sum.System.ActiveIndustries)
	}
	if sum.System.TotalEmployment != 120 {
		t.Errorf("total employment: got %v, want 120", sum.System.TotalEmployment)
	}
	if sum.System.PendingReviews != 2 {
		t.Errorf("pending reviews: got %v, want 2", sum.System.PendingReviews)
	}
	if sum.Commerce.TotalRevenue != 6 {
		t.Errorf("commerce revenue: got %v, want 6", sum.Commerce.TotalRevenue)
	}
	if want := []string{"Gorkha", "Kaski", "Rupandehi"}; !reflect.DeepEqual(sum.Offices, want) {
		t.Errorf("offices: got %v, want %v", sum.Offices, want)
	}
}

func TestSummarizeFiltersByOffice(t *testing.T) {
	sum := statsFixture().Summarize("Kaski")

	if sum.System.TotalForestArea != 100 {
		t.Errorf("forest area: got %v, want 100", sum.System.TotalForestArea)
	}
	if sum.System.ActiveIndustries != 20 {
		t.Errorf("active industries: got %v, want 20", sum.System.ActiveIndustries)
	}
	if sum.System.PendingReviews != 2 {
		t.Errorf("pending reviews: got %v, want 2", sum.System.PendingReviews)
	}
	if sum.Forest.Revenue != 5 {
		t.Errorf("forest revenue: got %v, want 5", sum.Forest.Revenue)
	}
	// The office list is always global so the filter picker stays complete.
	if len(sum.Offices) != 3 {
		t.Errorf("offices: got %d, want 3", len(sum.Offices))
	}
}
