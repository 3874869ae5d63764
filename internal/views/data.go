package views

import (
	"time"

	"visuddha-service/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

var farmers = []model.Farmer{
	{ID: "FRM-001", Name: "Ramesh Kumar", Village: "Chamoli, Uttarakhand", Phone: "+91 98100 11223", Herbs: []string{"Ashwagandha", "Brahmi"}, Certified: true, Batches: 42, Rating: 4.8, RegisteredAt: day(2022, time.March, 4), LastHarvestAt: day(2024, time.September, 12)},
	{ID: "FRM-002", Name: "Sunita Devi", Village: "Pithoragarh, Uttarakhand", Phone: "+91 98100 44556", Herbs: []string{"Tulsi", "Giloy"}, Certified: true, Batches: 31, Rating: 4.6, RegisteredAt: day(2022, time.June, 18), LastHarvestAt: day(2024, time.September, 9)},
	{ID: "FRM-003", Name: "Mohan Lal", Village: "Neemuch, Madhya Pradesh", Phone: "+91 97520 78901", Herbs: []string{"Ashwagandha", "Safed Musli"}, Certified: false, Batches: 18, Rating: 4.2, RegisteredAt: day(2023, time.January, 27), LastHarvestAt: day(2024, time.August, 30)},
	{ID: "FRM-004", Name: "Lakshmi Bai", Village: "Wayanad, Kerala", Phone: "+91 94470 23456", Herbs: []string{"Shatavari", "Turmeric"}, Certified: true, Batches: 27, Rating: 4.9, RegisteredAt: day(2022, time.November, 2), LastHarvestAt: day(2024, time.September, 14)},
	{ID: "FRM-005", Name: "Gopal Singh", Village: "Kullu, Himachal Pradesh", Phone: "+91 98160 34567", Herbs: []string{"Jatamansi", "Kutki"}, Certified: false, Batches: 9, Rating: 3.9, RegisteredAt: day(2023, time.July, 11), LastHarvestAt: day(2024, time.July, 28)},
}

var batches = []model.HerbBatch{
	{ID: "VB-2024-0917", Herb: "Ashwagandha", Botanical: "Withania somnifera", FarmerID: "FRM-001", Quantity: model.Quantity{Value: 250, Unit: "kg"}, Location: model.GeoPoint{Latitude: 30.4019, Longitude: 79.3210}, Region: "Chamoli", CollectedAt: day(2024, time.September, 12), Status: model.BatchStatusCertified},
	{ID: "VB-2024-0918", Herb: "Tulsi", Botanical: "Ocimum tenuiflorum", FarmerID: "FRM-002", Quantity: model.Quantity{Value: 120, Unit: "kg"}, Location: model.GeoPoint{Latitude: 29.5829, Longitude: 80.2182}, Region: "Pithoragarh", CollectedAt: day(2024, time.September, 9), Status: model.BatchStatusTesting},
	{ID: "VB-2024-0919", Herb: "Brahmi", Botanical: "Bacopa monnieri", FarmerID: "FRM-001", Quantity: model.Quantity{Value: 80, Unit: "kg"}, Location: model.GeoPoint{Latitude: 30.4102, Longitude: 79.3301}, Region: "Chamoli", CollectedAt: day(2024, time.September, 13), Status: model.BatchStatusProcessing},
	{ID: "VB-2024-0920", Herb: "Shatavari", Botanical: "Asparagus racemosus", FarmerID: "FRM-004", Quantity: model.Quantity{Value: 300, Unit: "kg"}, Location: model.GeoPoint{Latitude: 11.6854, Longitude: 76.1320}, Region: "Wayanad", CollectedAt: day(2024, time.September, 14), Status: model.BatchStatusInTransit},
	{ID: "VB-2024-0921", Herb: "Safed Musli", Botanical: "Chlorophytum borivilianum", FarmerID: "FRM-003", Quantity: model.Quantity{Value: 60, Unit: "kg"}, Location: model.GeoPoint{Latitude: 24.4764, Longitude: 74.8724}, Region: "Neemuch", CollectedAt: day(2024, time.August, 30), Status: model.BatchStatusRejected},
	{ID: "VB-2024-0922", Herb: "Jatamansi", Botanical: "Nardostachys jatamansi", FarmerID: "FRM-005", Quantity: model.Quantity{Value: 25, Unit: "kg"}, Location: model.GeoPoint{Latitude: 31.9578, Longitude: 77.1095}, Region: "Kullu", CollectedAt: day(2024, time.July, 28), Status: model.BatchStatusCollected},
}

var processingLots = []model.ProcessingLot{
	{
		ID: "PL-3301", BatchID: "VB-2024-0919", Facility: "Ayush Botanicals, Haridwar", Method: "Shade drying",
		Yield: model.Quantity{Value: 22, Unit: "kg"}, StartedAt: day(2024, time.September, 15),
		Steps: []model.ProcessingStep{
			{Name: "Cleaning", Completed: true, CompletedAt: dayPtr(2024, time.September, 15)},
			{Name: "Shade drying", Completed: true, CompletedAt: dayPtr(2024, time.September, 19)},
			{Name: "Grinding", Completed: false},
			{Name: "Packaging", Completed: false},
		},
	},
	{
		ID: "PL-3302", BatchID: "VB-2024-0917", Facility: "Ayush Botanicals, Haridwar", Method: "Root extraction",
		Yield: model.Quantity{Value: 61, Unit: "kg"}, StartedAt: day(2024, time.September, 13),
		Steps: []model.ProcessingStep{
			{Name: "Cleaning", Completed: true, CompletedAt: dayPtr(2024, time.September, 13)},
			{Name: "Drying", Completed: true, CompletedAt: dayPtr(2024, time.September, 16)},
			{Name: "Extraction", Completed: true, CompletedAt: dayPtr(2024, time.September, 18)},
			{Name: "Packaging", Completed: true, CompletedAt: dayPtr(2024, time.September, 19)},
		},
	},
}

var labTests = []model.LabTest{
	{ID: "LT-7781", BatchID: "VB-2024-0917", Parameter: "Withanolides", Value: 2.8, Unit: "%", Limit: 2.5, Result: model.LabTestPass, Laboratory: "Dhanvantari Quality Labs", TestedAt: day(2024, time.September, 17)},
	{ID: "LT-7782", BatchID: "VB-2024-0917", Parameter: "Lead (Pb)", Value: 0.4, Unit: "ppm", Limit: 10, Result: model.LabTestPass, Laboratory: "Dhanvantari Quality Labs", TestedAt: day(2024, time.September, 17)},
	{ID: "LT-7783", BatchID: "VB-2024-0918", Parameter: "Moisture", Value: 0, Unit: "%", Limit: 12, Result: model.LabTestPending, Laboratory: "Dhanvantari Quality Labs", TestedAt: day(2024, time.September, 18)},
	{ID: "LT-7784", BatchID: "VB-2024-0921", Parameter: "Chlorpyrifos", Value: 0.21, Unit: "mg/kg", Limit: 0.05, Result: model.LabTestFail, Laboratory: "Dhanvantari Quality Labs", TestedAt: day(2024, time.September, 2)},
}

var certifications = []model.Certification{
	{ID: "CERT-NPOP-1142", Name: "NPOP Organic", Issuer: "APEDA", Holder: "Himalayan Herb Collective", IssuedAt: day(2023, time.April, 1), ExpiresAt: day(2025, time.March, 31), Valid: true},
	{ID: "CERT-GMP-0871", Name: "AYUSH GMP", Issuer: "Ministry of AYUSH", Holder: "Ayush Botanicals Processing Unit", IssuedAt: day(2022, time.October, 12), ExpiresAt: day(2025, time.October, 11), Valid: true},
	{ID: "CERT-NABL-5530", Name: "ISO/IEC 17025", Issuer: "NABL", Holder: "Dhanvantari Quality Labs", IssuedAt: day(2021, time.August, 5), ExpiresAt: day(2024, time.August, 4), Valid: false},
}

var violations = []model.ComplianceViolation{
	{ID: "CV-201", BatchID: "VB-2024-0921", Type: model.ViolationTypePesticide, Severity: model.ViolationSeverityHigh, Status: model.ViolationStatusOpen, Regulation: "FSSAI Pesticide Residue Limits", Description: "Chlorpyrifos above permitted limit", DetectedAt: day(2024, time.September, 2)},
	{ID: "CV-202", BatchID: "VB-2024-0922", Type: model.ViolationTypeSeasonalBan, Severity: model.ViolationSeverityMedium, Status: model.ViolationStatusOpen, Regulation: "NMPB Sustainable Harvest Guidelines", Description: "Jatamansi collected during restricted flowering season", DetectedAt: day(2024, time.July, 29)},
	{ID: "CV-203", BatchID: "VB-2024-0920", Type: model.ViolationTypeMissingDocs, Severity: model.ViolationSeverityLow, Status: model.ViolationStatusResolved, Regulation: "Biological Diversity Act, access and benefit sharing", Description: "Transit permit uploaded late", DetectedAt: day(2024, time.September, 14)},
	{ID: "CV-204", BatchID: "VB-2024-0919", Type: model.ViolationTypeOutsideZone, Severity: model.ViolationSeverityMedium, Status: model.ViolationStatusWaived, Regulation: "State Forest Department geo-fence", Description: "GPS fix 300 m outside the approved collection zone", DetectedAt: day(2024, time.September, 13)},
}

var supplyNodes = []model.SupplyNode{
	{ID: "N-FARM-CH", Name: "Chamoli collection fields", Kind: model.NodeFarm, Location: model.GeoPoint{Latitude: 30.4019, Longitude: 79.3210}},
	{ID: "N-CC-JOSH", Name: "Joshimath collection center", Kind: model.NodeCollection, Location: model.GeoPoint{Latitude: 30.5550, Longitude: 79.5643}},
	{ID: "N-PU-HDW", Name: "Ayush Botanicals, Haridwar", Kind: model.NodeProcessing, Location: model.GeoPoint{Latitude: 29.9457, Longitude: 78.1642}},
	{ID: "N-LAB-DEL", Name: "Dhanvantari Quality Labs, Delhi", Kind: model.NodeLab, Location: model.GeoPoint{Latitude: 28.6139, Longitude: 77.2090}},
	{ID: "N-WH-GGN", Name: "Gurugram distribution warehouse", Kind: model.NodeWarehouse, Location: model.GeoPoint{Latitude: 28.4595, Longitude: 77.0266}},
	{ID: "N-RT-BLR", Name: "Visuddha store, Bengaluru", Kind: model.NodeRetail, Location: model.GeoPoint{Latitude: 12.9716, Longitude: 77.5946}},
}

var supplyRoutes = []model.SupplyRoute{
	{From: "N-FARM-CH", To: "N-CC-JOSH", BatchID: "VB-2024-0917", DistanceKm: 42, Active: false},
	{From: "N-CC-JOSH", To: "N-PU-HDW", BatchID: "VB-2024-0917", DistanceKm: 278, Active: false},
	{From: "N-PU-HDW", To: "N-LAB-DEL", BatchID: "VB-2024-0917", DistanceKm: 214, Active: false},
	{From: "N-LAB-DEL", To: "N-WH-GGN", BatchID: "VB-2024-0917", DistanceKm: 32, Active: true},
	{From: "N-WH-GGN", To: "N-RT-BLR", BatchID: "VB-2024-0917", DistanceKm: 2110, Active: false},
}
