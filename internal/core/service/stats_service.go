package service

import (
	"sort"

	"github.com/moitfe/portal-api/internal/core/domain"
	"github.com/moitfe/portal-api/internal/core/ports"
)

// ForestTotals aggregates the forest collection for the dashboard.
type ForestTotals struct {
	CurrentExpenditure   float64 `json:"current_expenditure"`
	CapitalExpenditure   float64 `json:"capital_expenditure"`
	CommunityForests     int     `json:"community_forests"`
	ReligiousForests     int     `json:"religious_forests"`
	LeaseholdForests     int     `json:"leasehold_forests"`
	TotalArea            float64 `json:"total_area"`
	TimberProduction     float64 `json:"timber_production"`
	Resin                float64 `json:"resin"`
	Herbs                float64 `json:"herbs"`
	CasesFiled           int     `json:"cases_filed"`
	Encroachment         float64 `json:"encroachment"`
	WorkplanRegistration int     `json:"workplan_registration"`
	WorkplanRenewal      int     `json:"workplan_renewal"`
	Saplings             int     `json:"saplings"`
	Plantation           float64 `json:"plantation"`
	ArrearsRecoverable   float64 `json:"arrears_recoverable"`
	ArrearsRegularizable float64 `json:"arrears_regularizable"`
	AdvanceArrears       float64 `json:"advance_arrears"`
	AuditSettlement      float64 `json:"audit_settlement"`
	Revenue              float64 `json:"revenue"`
}

// IndustryTotals aggregates the industry collection.
type IndustryTotals struct {
	Registrations    int     `json:"registrations"`
	Renewals         int     `json:"renewals"`
	TotalIndustries  int     `json:"total_industries"`
	FemaleEmployment int     `json:"female_employment"`
	MaleEmployment   int     `json:"male_employment"`
	MicroCount       int     `json:"micro_count"`
	CottageCount     int     `json:"cottage_count"`
	SmallCount       int     `json:"small_count"`
	MediumCount      int     `json:"medium_count"`
	LargeCount       int     `json:"large_count"`
	TotalRevenue     float64 `json:"total_revenue"`
}

// CommerceTotals aggregates the commerce collection.
type CommerceTotals struct {
	Registrations      int     `json:"registrations"`
	Renewals           int     `json:"renewals"`
	TotalRegistrations int     `json:"total_registrations"`
	TotalRevenue       float64 `json:"total_revenue"`
}

// SystemStats is the dashboard headline block.
type SystemStats struct {
	TotalForestArea  float64 `json:"total_forest_area"`
	ActiveIndustries int     `json:"active_industries"`
	TotalEmployment  int     `json:"total_employment"`
	PendingReviews   int     `json:"pending_reviews"`
}

// Summary is the full dashboard aggregation, optionally scoped to one office.
type Summary struct {
	Office   string         `json:"office"`
	System   SystemStats    `json:"system"`
	Forest   ForestTotals   `json:"forest"`
	Industry IndustryTotals `json:"industry"`
	Commerce CommerceTotals `json:"commerce"`
	Offices  []string       `json:"offices"`
}

// StatsService computes dashboard aggregates over the hydrated collections.
type StatsService struct {
	records ports.RecordService
}

func NewStatsService(records ports.RecordService) *StatsService {
	return &StatsService{records: records}
}

// Summarize aggregates all three collections. An empty office means no
// filter; office names never overlap across categories, so the same filter
// is applied to each.
func (s *StatsService) Summarize(office string) Summary {
	forest := s.records.ForestRecords()
	industry := s.records.IndustryRecords()
	commerce := s.records.CommerceRecords()

	sum := Summary{Office: office, Offices: collectOffices(forest, industry, commerce)}

	for _, r := range forest {
		if office != "" && r.Office != office {
			continue
		}
		sum.Forest.CurrentExpenditure += r.CurrentExpenditure
		sum.Forest.CapitalExpenditure += r.CapitalExpenditure
		sum.Forest.CommunityForests += r.CommunityForestCount
		sum.Forest.ReligiousForests += r.ReligiousForestCount
		sum.Forest.LeaseholdForests += r.LeaseholdForestCount
		sum.Forest.TotalArea += r.TotalForestArea
		sum.Forest.TimberProduction += r.TimberProduction
		sum.Forest.Resin += r.Resin
		sum.Forest.Herbs += r.Herbs
		sum.Forest.CasesFiled += r.CasesFiled
		sum.Forest.Encroachment += r.Encroachment
		sum.Forest.WorkplanRegistration += r.WorkplanRegistration
		sum.Forest.WorkplanRenewal += r.WorkplanRenewal
		sum.Forest.Saplings += r.Saplings
		sum.Forest.Plantation += r.Plantation
		sum.Forest.ArrearsRecoverable += r.ArrearsRecoverable
		sum.Forest.ArrearsRegularizable += r.ArrearsRegularizable
		sum.Forest.AdvanceArrears += r.AdvanceArrears
		sum.Forest.AuditSettlement += r.AuditSettlement
		sum.Forest.Revenue += r.Revenue
		if r.Status == domain.StatusPending {
			sum.System.PendingReviews++
		}
	}

	for _, r := range industry {
		if office != "" && r.Office != office {
			continue
		}
		sum.Industry.Registrations += r.RegCount
		sum.Industry.Renewals += r.RenewalCount
		sum.Industry.TotalIndustries += r.TotalIndustries
		sum.Industry.FemaleEmployment += r.FemaleEmployment
		sum.Industry.MaleEmployment += r.MaleEmployment
		sum.Industry.MicroCount += r.MicroCount
		sum.Industry.CottageCount += r.CottageCount
		sum.Industry.SmallCount += r.SmallCount
		sum.Industry.MediumCount += r.MediumCount
		sum.Industry.LargeCount += r.LargeCount
		sum.Industry.TotalRevenue += r.TotalRevenue
		if r.VerificationStatus == domain.StatusPending {
			sum.System.PendingReviews++
		}
	}

	for _, r := range commerce {
		if office != "" && r.Office != office {
			continue
		}
		sum.Commerce.Registrations += r.CommRegistrations
		sum.Commerce.Renewals += r.Renewals
		sum.Commerce.TotalRegistrations += r.TotalCommRegistrations
		sum.Commerce.TotalRevenue += r.TotalRevenue
		if r.Status == domain.StatusPending {
			sum.System.PendingReviews++
		}
	}

	sum.System.TotalForestArea = sum.Forest.TotalArea
	sum.System.ActiveIndustries = sum.Industry.TotalIndustries
	sum.System.TotalEmployment = sum.Industry.FemaleEmployment + sum.Industry.MaleEmployment

	return sum
}

func collectOffices(forest []domain.ForestRecord, industry []domain.IndustryRecord, commerce []domain.CommerceRecord) []string {
	set := map[string]struct{}{}
	for _, r := range forest {
		set[r.Office] = struct{}{}
	}
	for _, r := range industry {
		set[r.Office] = struct{}{}
	}
	for _, r := range commerce {
		set[r.Office] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for office := range set {
		out = append(out, office)
	}
	sort.Strings(out)
	return out
}
