package views

import (
	"visuddha-service/internal/access"
	"visuddha-service/internal/model"
)

// LiveSource supplies the simulated network state shown on the IoT and
// blockchain screens.
type LiveSource interface {
	Sensors() model.SensorNetwork
	Ledger() model.LedgerNetwork
}

type Link struct {
	View  model.View `json:"view"`
	Title string     `json:"title"`
}

type HomeContent struct {
	Title    string `json:"title"`
	Tagline  string `json:"tagline"`
	Greeting string `json:"greeting"`
	Links    []Link `json:"links"`
}

type DemoRole struct {
	RoleType    model.RoleType `json:"role_type"`
	Description string         `json:"description"`
}

type LoginContent struct {
	Roles []DemoRole `json:"roles"`
}

type UnauthorizedContent struct {
	Message  string             `json:"message"`
	View     model.View         `json:"attempted_view"`
	RoleType *model.RoleType    `json:"role_type"`
	Required []model.Permission `json:"required_permissions"`
}

type CollectorContent struct {
	Batches []model.HerbBatch `json:"batches"`
	Zones   []string          `json:"approved_zones"`
}

type ProcessingContent struct {
	Lots []model.ProcessingLot `json:"lots"`
}

type LabContent struct {
	Tests          []model.LabTest       `json:"tests"`
	Certifications []model.Certification `json:"certifications"`
}

type JourneyStep struct {
	Stage string `json:"stage"`
	Actor string `json:"actor"`
	Where string `json:"where"`
}

type ConsumerContent struct {
	Batch     model.HerbBatch `json:"batch"`
	Farmer    model.Farmer    `json:"farmer"`
	Authentic bool            `json:"authentic"`
	Journey   []JourneyStep   `json:"journey"`
	Tests     []model.LabTest `json:"tests"`
}

type Tile struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
	Trend float64 `json:"trend_pct"`
}

type DashboardContent struct {
	Tiles         []Tile            `json:"tiles"`
	RecentBatches []model.HerbBatch `json:"recent_batches"`
}

type ComplianceContent struct {
	Score          float64                     `json:"score"`
	Violations     []model.ComplianceViolation `json:"violations"`
	Certifications []model.Certification       `json:"certifications"`
}

type Prediction struct {
	BatchID    string  `json:"batch_id"`
	Metric     string  `json:"metric"`
	Predicted  float64 `json:"predicted"`
	Confidence float64 `json:"confidence"`
	Note       string  `json:"note"`
}

type AIContent struct {
	Model       string       `json:"model"`
	Accuracy    float64      `json:"accuracy"`
	Predictions []Prediction `json:"predictions"`
}

type MonthlyMetric struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue_inr"`
	VolumeKg float64 `json:"volume_kg"`
}

type BusinessIntelligenceContent struct {
	Monthly   []MonthlyMetric    `json:"monthly"`
	TopHerbs  []string           `json:"top_herbs"`
	Breakdown map[string]float64 `json:"revenue_share"`
}

type SupplyChainContent struct {
	Nodes  []model.SupplyNode  `json:"nodes"`
	Routes []model.SupplyRoute `json:"routes"`
}

type FarmerManagementContent struct {
	Farmers   []model.Farmer `json:"farmers"`
	Total     int            `json:"total"`
	Certified int            `json:"certified"`
}

type SettingsContent struct {
	Profile       *model.User `json:"profile"`
	Language      string      `json:"language"`
	Notifications bool        `json:"notifications"`
	Units         string      `json:"units"`
}

// Catalog renders the body of every view. All content is static demo data
// except the IoT and blockchain screens, which read from the live source.
type Catalog struct {
	live LiveSource
}

func NewCatalog(live LiveSource) *Catalog {
	return &Catalog{live: live}
}

func (c *Catalog) Render(view model.View, user *model.User, denial *access.Denial) interface{} {
	switch view {
	case model.ViewHome:
		return homeContent(user)
	case model.ViewLogin:
		return loginContent()
	case model.ViewUnauthorized:
		return unauthorizedContent(denial)
	case model.ViewCollector:
		return CollectorContent{
			Batches: batches,
			Zones:   []string{"Chamoli", "Pithoragarh", "Wayanad", "Neemuch"},
		}
	case model.ViewProcessing:
		return ProcessingContent{Lots: processingLots}
	case model.ViewLab:
		return LabContent{Tests: labTests, Certifications: certifications}
	case model.ViewConsumer:
		return consumerContent("VB-2024-0917")
	case model.ViewDashboard:
		return dashboardContent()
	case model.ViewCompliance:
		return complianceContent()
	case model.ViewBlockchain:
		if c.live == nil {
			return model.LedgerNetwork{}
		}
		return c.live.Ledger()
	case model.ViewIoT:
		if c.live == nil {
			return model.SensorNetwork{}
		}
		return c.live.Sensors()
	case model.ViewAI:
		return aiContent()
	case model.ViewBusinessIntelligence:
		return biContent()
	case model.ViewSupplyChainMap:
		return SupplyChainContent{Nodes: supplyNodes, Routes: supplyRoutes}
	case model.ViewFarmerManagement:
		return farmerManagementContent()
	case model.ViewSettings:
		return SettingsContent{Profile: user, Language: "en", Notifications: true, Units: "metric"}
	default:
		return nil
	}
}

func homeContent(user *model.User) HomeContent {
	content := HomeContent{
		Title:    "Visuddha",
		Tagline:  "Trusted traceability for Ayurvedic herbs, from farm to formulation",
		Greeting: "Welcome, guest",
		Links: []Link{
			{View: model.ViewCollector, Title: "Herb collection"},
			{View: model.ViewProcessing, Title: "Processing"},
			{View: model.ViewLab, Title: "Lab testing"},
			{View: model.ViewConsumer, Title: "Verify a product"},
			{View: model.ViewDashboard, Title: "Operations dashboard"},
			{View: model.ViewSupplyChainMap, Title: "Supply chain map"},
		},
	}
	if user != nil {
		content.Greeting = "Welcome, " + user.Name
	}
	return content
}

func loginContent() LoginContent {
	return LoginContent{Roles: []DemoRole{
		{RoleType: model.RoleFarmer, Description: "Record herb collection with GPS tagging"},
		{RoleType: model.RoleProcessor, Description: "Track drying, extraction and packaging"},
		{RoleType: model.RoleLab, Description: "Publish quality tests and certificates"},
		{RoleType: model.RoleConsumer, Description: "Scan and verify product provenance"},
		{RoleType: model.RoleAdmin, Description: "Full platform access"},
	}}
}

func unauthorizedContent(denial *access.Denial) UnauthorizedContent {
	content := UnauthorizedContent{Message: "You do not have permission to view this page"}
	if denial != nil {
		content.View = denial.View
		content.RoleType = denial.RoleType
		content.Required = denial.Required
	}
	return content
}

func consumerContent(batchID string) ConsumerContent {
	var content ConsumerContent
	for _, b := range batches {
		if b.ID == batchID {
			content.Batch = b
			break
		}
	}
	for _, f := range farmers {
		if f.ID == content.Batch.FarmerID {
			content.Farmer = f
			break
		}
	}
	for _, t := range labTests {
		if t.BatchID == batchID {
			content.Tests = append(content.Tests, t)
		}
	}
	content.Authentic = content.Batch.Status == model.BatchStatusCertified
	content.Journey = []JourneyStep{
		{Stage: "Collected", Actor: content.Farmer.Name, Where: content.Batch.Region},
		{Stage: "Processed", Actor: "Ayush Botanicals", Where: "Haridwar"},
		{Stage: "Tested", Actor: "Dhanvantari Quality Labs", Where: "Delhi"},
		{Stage: "Packaged", Actor: "Visuddha", Where: "Gurugram"},
	}
	return content
}

func dashboardContent() DashboardContent {
	return DashboardContent{
		Tiles: []Tile{
			{Label: "Active batches", Value: float64(len(batches)), Trend: 12.5},
			{Label: "Registered farmers", Value: 1248, Trend: 8.2},
			{Label: "Quality pass rate", Value: 96.4, Unit: "%", Trend: 1.1},
			{Label: "Herbs traced this month", Value: 18.6, Unit: "t", Trend: -2.3},
		},
		RecentBatches: batches[:3],
	}
}

func complianceContent() ComplianceContent {
	open := 0
	for _, v := range violations {
		if v.Status == model.ViolationStatusOpen {
			open++
		}
	}
	score := 100 - float64(open)*100/float64(len(violations)*4)
	return ComplianceContent{
		Score:          score,
		Violations:     violations,
		Certifications: certifications,
	}
}

func aiContent() AIContent {
	return AIContent{
		Model:    "herb-quality-gbm-v3",
		Accuracy: 0.93,
		Predictions: []Prediction{
			{BatchID: "VB-2024-0918", Metric: "Eugenol content", Predicted: 0.71, Confidence: 0.88, Note: "Within pharmacopoeia range"},
			{BatchID: "VB-2024-0919", Metric: "Bacoside A", Predicted: 2.4, Confidence: 0.81, Note: "Drying humidity trending high"},
			{BatchID: "VB-2024-0920", Metric: "Shelf life (months)", Predicted: 18, Confidence: 0.77, Note: "Cold chain recommended in transit"},
		},
	}
}

func biContent() BusinessIntelligenceContent {
	return BusinessIntelligenceContent{
		Monthly: []MonthlyMetric{
			{Month: "2024-06", Revenue: 1820000, VolumeKg: 4200},
			{Month: "2024-07", Revenue: 2140000, VolumeKg: 4950},
			{Month: "2024-08", Revenue: 2390000, VolumeKg: 5310},
			{Month: "2024-09", Revenue: 2610000, VolumeKg: 5720},
		},
		TopHerbs: []string{"Ashwagandha", "Tulsi", "Shatavari"},
		Breakdown: map[string]float64{
			"Ashwagandha": 0.38,
			"Tulsi":       0.22,
			"Shatavari":   0.19,
			"Brahmi":      0.12,
			"Other":       0.09,
		},
	}
}

func farmerManagementContent() FarmerManagementContent {
	certified := 0
	for _, f := range farmers {
		if f.Certified {
			certified++
		}
	}
	return FarmerManagementContent{
		Farmers:   farmers,
		Total:     len(farmers),
		Certified: certified,
	}
}
