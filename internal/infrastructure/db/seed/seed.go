// Package seed holds the sample roster and record collections used to
// populate an empty store on first run. Offices and districts follow the
// ministry's Gandaki and Lumbini field structure.
package seed

import (
	"time"

	"github.com/moitfe/portal-api/internal/core/domain"
)

// Users returns the seed roster, one user per role.
func Users() []domain.User {
	return []domain.User{
		{ID: "u-1", Name: "Suresh Adhikari", Email: "suresh.adhikari@mitfe.gov.np", Role: domain.RoleSuperAdmin, Department: domain.DepartmentGeneral},
		{ID: "u-2", Name: "Mina Gurung", Email: "mina.gurung@mitfe.gov.np", Role: domain.RoleAdmin, Department: domain.DepartmentForest},
		{ID: "u-3", Name: "Ramesh Thapa", Email: "ramesh.thapa@mitfe.gov.np", Role: domain.RoleEnumerator, Department: domain.DepartmentIndustry},
		{ID: "u-4", Name: "Sita Poudel", Email: "sita.poudel@mitfe.gov.np", Role: domain.RoleViewer, Department: domain.DepartmentCommerce},
	}
}

// Creation stamps for the seed records, oldest first. Collections are stored
// newest-first, so slices below are ordered newest to oldest.
var (
	seedT1 = time.Date(2024, 4, 15, 10, 0, 0, 0, time.UTC)
	seedT2 = time.Date(2024, 5, 14, 9, 30, 0, 0, time.UTC)
	seedT3 = time.Date(2024, 6, 16, 11, 15, 0, 0, time.UTC)
)

// ForestRecords returns the seed forest collection, newest-first.
func ForestRecords() []domain.ForestRecord {
	return []domain.ForestRecord{
		{
			ID: "F-1718536500000", SN: "3", Office: "Division Forest Office, Kaski",
			Date: "2024-06-15", CurrentAllocation: 4200, CapitalAllocation: 1500,
			CurrentExpenditure: 2100, CapitalExpenditure: 640, FinancialProgressPct: 48.1,
			CommunityForestCount: 212, ReligiousForestCount: 9, LeaseholdForestCount: 31,
			TotalForestArea: 58200, Revenue: 1320, AuditSettlement: 85,
			ArrearsRecoverable: 40, ArrearsRegularizable: 25, AdvanceArrears: 12,
			TimberProduction: 940, CasesFiled: 7, WorkplanRenewal: 18, WorkplanRegistration: 6,
			Saplings: 125000, Herbs: 36, Resin: 210, Plantation: 95,
			ApprovedPositions: 48, FilledPositions: 41, PhysicalProgress: "On track",
			CFArea: 31200, LFArea: 2100, RFArea: 450, CFHouseholds: 18400, LFHouseholds: 820, RFHouseholds: 310,
			Encroachment: 14, Relief: 3,
			Status: domain.StatusPending, CreatedBy: "u-3", CreatedAt: seedT3,
		},
		{
			ID: "F-1715679000000", SN: "2", Office: "Division Forest Office, Tanahun",
			Date: "2024-05-14", CurrentAllocation: 3100, CapitalAllocation: 900,
			CurrentExpenditure: 1700, CapitalExpenditure: 420, FinancialProgressPct: 53.0,
			CommunityForestCount: 164, ReligiousForestCount: 5, LeaseholdForestCount: 22,
			TotalForestArea: 41350, Revenue: 980, AuditSettlement: 60,
			ArrearsRecoverable: 22, ArrearsRegularizable: 18, AdvanceArrears: 8,
			TimberProduction: 610, CasesFiled: 4, WorkplanRenewal: 11, WorkplanRegistration: 4,
			Saplings: 84000, Herbs: 21, Resin: 140, Plantation: 60,
			ApprovedPositions: 36, FilledPositions: 30, PhysicalProgress: "Satisfactory",
			CFArea: 22800, LFArea: 1500, RFArea: 260, CFHouseholds: 12100, LFHouseholds: 540, RFHouseholds: 190,
			Encroachment: 9, Relief: 1,
			Status: domain.StatusApproved, CreatedBy: "u-3", CreatedAt: seedT2,
		},
		{
			ID: "F-1713175200000", SN: "1", Office: "Division Forest Office, Gorkha",
			Date: "2024-04-15", CurrentAllocation: 2600, CapitalAllocation: 750,
			CurrentExpenditure: 1250, CapitalExpenditure: 300, FinancialProgressPct: 46.2,
			CommunityForestCount: 141, ReligiousForestCount: 3, LeaseholdForestCount: 17,
			TotalForestArea: 36900, Revenue: 720, AuditSettlement: 44,
			ArrearsRecoverable: 15, ArrearsRegularizable: 10, AdvanceArrears: 6,
			TimberProduction: 480, CasesFiled: 2, WorkplanRenewal: 9, WorkplanRegistration: 3,
			Saplings: 61000, Herbs: 17, Resin: 96, Plantation: 42,
			ApprovedPositions: 32, FilledPositions: 27, PhysicalProgress: "On track",
			CFArea: 19900, LFArea: 1150, RFArea: 170, CFHouseholds: 9800, LFHouseholds: 420, RFHouseholds: 130,
			Encroachment: 5, Relief: 2,
			Status: domain.StatusApproved, CreatedBy: "u-3", CreatedAt: seedT1,
		},
	}
}

// IndustryRecords returns the seed industry collection, newest-first.
func IndustryRecords() []domain.IndustryRecord {
	return []domain.IndustryRecord{
		{
			ID: "I-1718537100000", Office: "Cottage and Small Industry Office, Kaski",
			Month: "Jestha", CurrentAllocation: 1800, CapitalAllocation: 600,
			CurrentExpenditure: 950, CapitalExpenditure: 260, FinancialProgressPct: 50.4,
			RegCount: 96, RenewalCount: 142, LocTransferCount: 4, NameChangeCount: 6,
			CopyCount: 11, AmendCount: 9, CancelCount: 3, OwnerTransferCount: 7,
			CapIncreaseCount: 5, OtherCount: 2,
			MicroCount: 58, CottageCount: 21, SmallCount: 13, MediumCount: 3, LargeCount: 1,
			EnergyCount: 2, ProductionCount: 31, AgroForestCount: 18, ServiceCount: 24,
			TourismCount: 12, MineralCount: 1, InfraCount: 3, ITCount: 5,
			FemaleEmployment: 410, MaleEmployment: 560,
			RegRevenue: 480, RenewalRevenue: 310, LocTransferRevenue: 12, NameChangeRevenue: 18,
			CopyRevenue: 8, AmendRevenue: 14, CancelRevenue: 5, OwnerTransferRevenue: 22,
			CapIncreaseRevenue: 36, OtherRevenue: 9, TotalRevenue: 914,
			ApprovedPositions: 22, FilledPositions: 19, TotalIndustries: 2140,
			VerificationStatus: domain.StatusPending, CreatedBy: "u-3", CreatedAt: seedT3,
		},
		{
			ID: "I-1715679600000", Office: "Cottage and Small Industry Office, Rupandehi",
			Month: "Baishakh", CurrentAllocation: 1500, CapitalAllocation: 450,
			CurrentExpenditure: 820, CapitalExpenditure: 190, FinancialProgressPct: 51.8,
			RegCount: 74, RenewalCount: 118, LocTransferCount: 2, NameChangeCount: 4,
			CopyCount: 9, AmendCount: 6, CancelCount: 2, OwnerTransferCount: 5,
			CapIncreaseCount: 3, OtherCount: 1,
			MicroCount: 41, CottageCount: 17, SmallCount: 12, MediumCount: 3, LargeCount: 1,
			EnergyCount: 1, ProductionCount: 26, AgroForestCount: 14, ServiceCount: 19,
			TourismCount: 8, MineralCount: 2, InfraCount: 2, ITCount: 2,
			FemaleEmployment: 356, MaleEmployment: 498,
			RegRevenue: 390, RenewalRevenue: 262, LocTransferRevenue: 6, NameChangeRevenue: 12,
			CopyRevenue: 6, AmendRevenue: 10, CancelRevenue: 3, OwnerTransferRevenue: 16,
			CapIncreaseRevenue: 24, OtherRevenue: 5, TotalRevenue: 734,
			ApprovedPositions: 18, FilledPositions: 15, TotalIndustries: 1860,
			VerificationStatus: domain.StatusApproved, CreatedBy: "u-3", CreatedAt: seedT2,
		},
	}
}

// CommerceRecords returns the seed commerce collection, newest-first.
func CommerceRecords() []domain.CommerceRecord {
	return []domain.CommerceRecord{
		{
			ID: "C-1718537400000", Office: "Commerce Office, Kaski", Month: "Jestha",
			CommRegistrations: 64, Renewals: 88, CapIncrease: 6, Copies: 12,
			OwnerTransfers: 5, LocTransfers: 3, Amendments: 7, Cancellations: 2, Other: 1,
			Details: "Regular monthly return", CapIncreaseAmount: 5200,
			RegRevenue: 310, OtherRevenue: 46, TotalRevenue: 356, TotalCommRegistrations: 1480,
			Status: domain.StatusPending, CreatedBy: "u-3", CreatedAt: seedT3,
		},
		{
			ID: "C-1715680200000", Office: "Commerce Office, Rupandehi", Month: "Baishakh",
			CommRegistrations: 51, Renewals: 72, CapIncrease: 4, Copies: 9,
			OwnerTransfers: 4, LocTransfers: 2, Amendments: 5, Cancellations: 1, Other: 2,
			Details: "Regular monthly return", CapIncreaseAmount: 3800,
			RegRevenue: 248, OtherRevenue: 31, TotalRevenue: 279, TotalCommRegistrations: 1275,
			Status: domain.StatusApproved, CreatedBy: "u-3", CreatedAt: seedT2,
		},
	}
}
