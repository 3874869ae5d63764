package model

import "time"

type ViolationStatus string

const (
	ViolationStatusOpen     ViolationStatus = "OPEN"
	ViolationStatusResolved ViolationStatus = "RESOLVED"
	ViolationStatusWaived   ViolationStatus = "WAIVED"
)

type ViolationSeverity string

const (
	ViolationSeverityLow    ViolationSeverity = "LOW"
	ViolationSeverityMedium ViolationSeverity = "MEDIUM"
	ViolationSeverityHigh   ViolationSeverity = "HIGH"
)

type ViolationType string

const (
	ViolationTypeOverHarvest     ViolationType = "OVER_HARVEST"
	ViolationTypeOutsideZone     ViolationType = "OUTSIDE_APPROVED_ZONE"
	ViolationTypeHeavyMetals     ViolationType = "HEAVY_METALS"
	ViolationTypePesticide       ViolationType = "PESTICIDE_RESIDUE"
	ViolationTypeMissingDocs     ViolationType = "MISSING_DOCUMENTATION"
	ViolationTypeSeasonalBan     ViolationType = "SEASONAL_RESTRICTION"
	ViolationTypeStorageBreached ViolationType = "STORAGE_CONDITIONS"
)

// ComplianceViolation is a regulatory finding against a batch or actor.
type ComplianceViolation struct {
	ID          string            `json:"id"`
	BatchID     string            `json:"batch_id"`
	Type        ViolationType     `json:"type"`
	Severity    ViolationSeverity `json:"severity"`
	Status      ViolationStatus   `json:"status"`
	Regulation  string            `json:"regulation"`
	Description string            `json:"description"`
	DetectedAt  time.Time         `json:"detected_at"`
}
