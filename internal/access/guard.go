package access

import "visuddha-service/internal/model"

// Denial describes a rejected navigation for display on the unauthorized
// screen.
type Denial struct {
	View     model.View         `json:"view"`
	RoleType *model.RoleType    `json:"role_type"`
	Required []model.Permission `json:"required_permissions"`
}

type Decision struct {
	Allowed bool    `json:"allowed"`
	Denial  *Denial `json:"denial,omitempty"`
}

func Allow() Decision {
	return Decision{Allowed: true}
}

// Guard checks a navigation target before the transition is committed.
type Guard struct {
	Policy Policy
}

func NewGuard(policy Policy) Guard {
	return Guard{Policy: policy}
}

func (g Guard) Check(user *model.User, view model.View) Decision {
	required, ok := RequirementsFor(view)
	if !ok {
		return Allow()
	}
	if g.Policy.CanAccess(user, required) {
		return Allow()
	}
	denial := &Denial{View: view, Required: required}
	if user != nil {
		role := user.RoleType
		denial.RoleType = &role
	}
	return Decision{Denial: denial}
}
