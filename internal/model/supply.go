package model

import "time"

type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Quantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type BatchStatus string

const (
	BatchStatusCollected  BatchStatus = "COLLECTED"
	BatchStatusInTransit  BatchStatus = "IN_TRANSIT"
	BatchStatusProcessing BatchStatus = "PROCESSING"
	BatchStatusTesting    BatchStatus = "TESTING"
	BatchStatusCertified  BatchStatus = "CERTIFIED"
	BatchStatusRejected   BatchStatus = "REJECTED"
)

type HerbBatch struct {
	ID          string      `json:"id"`
	Herb        string      `json:"herb"`
	Botanical   string      `json:"botanical_name"`
	FarmerID    string      `json:"farmer_id"`
	Quantity    Quantity    `json:"quantity"`
	Location    GeoPoint    `json:"location"`
	Region      string      `json:"region"`
	CollectedAt time.Time   `json:"collected_at"`
	Status      BatchStatus `json:"status"`
}

type Farmer struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Village       string    `json:"village"`
	Phone         string    `json:"phone"`
	Herbs         []string  `json:"herbs"`
	Certified     bool      `json:"certified_organic"`
	Batches       int       `json:"batches"`
	Rating        float64   `json:"rating"`
	RegisteredAt  time.Time `json:"registered_at"`
	LastHarvestAt time.Time `json:"last_harvest_at"`
}

type ProcessingStep struct {
	Name        string     `json:"name"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type ProcessingLot struct {
	ID        string           `json:"id"`
	BatchID   string           `json:"batch_id"`
	Facility  string           `json:"facility"`
	Method    string           `json:"method"`
	Yield     Quantity         `json:"yield"`
	Steps     []ProcessingStep `json:"steps"`
	StartedAt time.Time        `json:"started_at"`
}

type LabTestResult string

const (
	LabTestPass    LabTestResult = "PASS"
	LabTestFail    LabTestResult = "FAIL"
	LabTestPending LabTestResult = "PENDING"
)

type LabTest struct {
	ID         string        `json:"id"`
	BatchID    string        `json:"batch_id"`
	Parameter  string        `json:"parameter"`
	Value      float64       `json:"value"`
	Unit       string        `json:"unit"`
	Limit      float64       `json:"limit"`
	Result     LabTestResult `json:"result"`
	Laboratory string        `json:"laboratory"`
	TestedAt   time.Time     `json:"tested_at"`
}

type Certification struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Issuer    string    `json:"issuer"`
	Holder    string    `json:"holder"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Valid     bool      `json:"valid"`
}

type SupplyNodeKind string

const (
	NodeFarm       SupplyNodeKind = "FARM"
	NodeCollection SupplyNodeKind = "COLLECTION_CENTER"
	NodeProcessing SupplyNodeKind = "PROCESSING_UNIT"
	NodeLab        SupplyNodeKind = "LAB"
	NodeWarehouse  SupplyNodeKind = "WAREHOUSE"
	NodeRetail     SupplyNodeKind = "RETAIL"
)

type SupplyNode struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Kind     SupplyNodeKind `json:"kind"`
	Location GeoPoint       `json:"location"`
}

type SupplyRoute struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	BatchID    string  `json:"batch_id"`
	DistanceKm float64 `json:"distance_km"`
	Active     bool    `json:"active"`
}
