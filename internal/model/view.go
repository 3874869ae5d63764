package model

import (
	"fmt"
	"strings"
)

// View identifies a screen of the application.
type View uint8

const (
	ViewHome View = iota
	ViewLogin
	ViewCollector
	ViewProcessing
	ViewLab
	ViewConsumer
	ViewDashboard
	ViewCompliance
	ViewBlockchain
	ViewIoT
	ViewAI
	ViewBusinessIntelligence
	ViewSupplyChainMap
	ViewFarmerManagement
	ViewSettings
	ViewUnauthorized

	// ViewCount must stay last.
	ViewCount
)

var viewNames = [ViewCount]string{
	ViewHome:                 "home",
	ViewLogin:                "login",
	ViewCollector:            "collector",
	ViewProcessing:           "processing",
	ViewLab:                  "lab",
	ViewConsumer:             "consumer",
	ViewDashboard:            "dashboard",
	ViewCompliance:           "compliance",
	ViewBlockchain:           "blockchain",
	ViewIoT:                  "iot",
	ViewAI:                   "ai",
	ViewBusinessIntelligence: "business-intelligence",
	ViewSupplyChainMap:       "supply-chain-map",
	ViewFarmerManagement:     "farmer-management",
	ViewSettings:             "settings",
	ViewUnauthorized:         "unauthorized",
}

func (v View) String() string {
	if v >= ViewCount {
		return fmt.Sprintf("view(%d)", uint8(v))
	}
	return viewNames[v]
}

func (v View) Valid() bool {
	return v < ViewCount
}

// ParseView resolves a view identifier. The second result is false for
// identifiers that are not registered.
func ParseView(raw string) (View, bool) {
	id := strings.ToLower(strings.TrimSpace(raw))
	for i, name := range viewNames {
		if name == id {
			return View(i), true
		}
	}
	return ViewHome, false
}

// Views returns every registered view in declaration order.
func Views() []View {
	out := make([]View, 0, ViewCount)
	for v := View(0); v < ViewCount; v++ {
		out = append(out, v)
	}
	return out
}

func (v View) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("invalid view %d", uint8(v))
	}
	return []byte(v.String()), nil
}

func (v *View) UnmarshalText(text []byte) error {
	parsed, ok := ParseView(string(text))
	if !ok {
		return fmt.Errorf("unknown view %q", string(text))
	}
	*v = parsed
	return nil
}
