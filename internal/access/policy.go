package access

import "visuddha-service/internal/model"

// Policy evaluates permission requirements against a user.
type Policy struct {
	// AnonymousAccess grants every check when no user is logged in, so that
	// visitors can preview each screen of the demo.
	AnonymousAccess bool
}

// DemoPolicy is the policy the demo ships with.
var DemoPolicy = Policy{AnonymousAccess: true}

// CanAccess reports whether user satisfies any of the required permissions.
// A nil user stands for an anonymous visitor.
func (p Policy) CanAccess(user *model.User, required []model.Permission) bool {
	if user == nil {
		return p.AnonymousAccess
	}
	if user.HasFullAccess() {
		return true
	}
	for _, want := range required {
		if user.Has(want) {
			return true
		}
	}
	return false
}
