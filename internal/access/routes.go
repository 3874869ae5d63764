package access

import "visuddha-service/internal/model"

// routeTable maps each view to the permissions that unlock it (any of).
// A nil entry means the view is unrestricted.
var routeTable = [model.ViewCount][]model.Permission{
	model.ViewHome:         nil,
	model.ViewLogin:        nil,
	model.ViewUnauthorized: nil,

	model.ViewCollector:  {model.PermCollection, model.PermGPSTracking},
	model.ViewProcessing: {model.PermProcessing, model.PermQualityControl},
	model.ViewLab:        {model.PermLabTesting, model.PermCertification},
	model.ViewConsumer:   {model.PermProductScan, model.PermVerification},

	model.ViewDashboard:            {model.PermFullAccess, model.PermUserManagement, model.PermOperations},
	model.ViewCompliance:           {model.PermFullAccess, model.PermCompliance, model.PermOperations},
	model.ViewBlockchain:           {model.PermFullAccess, model.PermBlockchainView, model.PermOperations},
	model.ViewIoT:                  {model.PermFullAccess, model.PermIoTMonitoring, model.PermOperations},
	model.ViewAI:                   {model.PermFullAccess, model.PermAnalytics, model.PermOperations},
	model.ViewBusinessIntelligence: {model.PermFullAccess, model.PermAnalytics, model.PermBusinessIntelligence},
	model.ViewSupplyChainMap:       {model.PermFullAccess, model.PermSupplyChainView, model.PermGPSTracking},
	model.ViewFarmerManagement:     {model.PermFullAccess, model.PermFarmerManagement, model.PermUserManagement},
	model.ViewSettings:             {model.PermFullAccess, model.PermSettings},
}

// RequirementsFor returns a copy of the permissions required to open view.
// The second result is false when the view carries no restriction.
func RequirementsFor(view model.View) ([]model.Permission, bool) {
	if !view.Valid() {
		return nil, false
	}
	required := routeTable[view]
	if len(required) == 0 {
		return nil, false
	}
	out := make([]model.Permission, len(required))
	copy(out, required)
	return out, true
}
