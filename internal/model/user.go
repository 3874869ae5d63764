package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type RoleType string

const (
	RoleFarmer    RoleType = "farmer"
	RoleProcessor RoleType = "processor"
	RoleLab       RoleType = "lab"
	RoleConsumer  RoleType = "consumer"
	RoleAdmin     RoleType = "admin"
)

var roleTypes = []RoleType{RoleFarmer, RoleProcessor, RoleLab, RoleConsumer, RoleAdmin}

// RoleTypes returns every known role type in display order.
func RoleTypes() []RoleType {
	out := make([]RoleType, len(roleTypes))
	copy(out, roleTypes)
	return out
}

func ParseRoleType(raw string) (RoleType, error) {
	candidate := RoleType(strings.ToLower(strings.TrimSpace(raw)))
	for _, r := range roleTypes {
		if r == candidate {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role type %q", raw)
}

// Permission is an opaque capability tag.
type Permission string

const (
	PermFullAccess           Permission = "full_access"
	PermCollection           Permission = "collection"
	PermGPSTracking          Permission = "gps_tracking"
	PermProcessing           Permission = "processing"
	PermQualityControl       Permission = "quality_control"
	PermLabTesting           Permission = "lab_testing"
	PermCertification        Permission = "certification"
	PermProductScan          Permission = "product_scan"
	PermVerification         Permission = "verification"
	PermUserManagement       Permission = "user_management"
	PermOperations           Permission = "operations"
	PermCompliance           Permission = "compliance"
	PermBlockchainView       Permission = "blockchain_view"
	PermIoTMonitoring        Permission = "iot_monitoring"
	PermAnalytics            Permission = "analytics"
	PermBusinessIntelligence Permission = "business_intelligence"
	PermSupplyChainView      Permission = "supply_chain_view"
	PermFarmerManagement     Permission = "farmer_management"
	PermSettings             Permission = "settings"
)

type User struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name         string       `gorm:"type:varchar(255);not null" json:"name"`
	RoleType     RoleType     `gorm:"type:varchar(32);not null;uniqueIndex" json:"role_type"`
	Organization string       `gorm:"type:varchar(255);not null" json:"organization"`
	Permissions  []Permission `gorm:"type:jsonb;serializer:json;not null" json:"permissions"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

func (u User) Has(p Permission) bool {
	for _, held := range u.Permissions {
		if held == p {
			return true
		}
	}
	return false
}

func (u User) HasFullAccess() bool {
	return u.Has(PermFullAccess)
}
