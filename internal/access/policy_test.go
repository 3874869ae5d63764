package access

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"visuddha-service/internal/model"
)

func userWith(role model.RoleType, perms ...model.Permission) *model.User {
	return &model.User{ID: uuid.New(), Name: "test", RoleType: role, Permissions: perms}
}

var permissionSets = [][]model.Permission{
	nil,
	{model.PermCollection},
	{model.PermFullAccess, model.PermUserManagement, model.PermOperations},
	{model.PermProductScan, model.PermVerification},
	{model.PermSettings},
}

func TestCanAccessFullAccessAlwaysGranted(t *testing.T) {
	u := userWith(model.RoleAdmin, model.PermFullAccess)
	for _, required := range permissionSets {
		assert.True(t, DemoPolicy.CanAccess(u, required), "required=%v", required)
		assert.True(t, Policy{}.CanAccess(u, required), "required=%v", required)
	}
}

func TestCanAccessAnonymous(t *testing.T) {
	for _, required := range permissionSets {
		assert.True(t, DemoPolicy.CanAccess(nil, required))
		assert.False(t, Policy{AnonymousAccess: false}.CanAccess(nil, required))
	}
}

func TestCanAccessAnyOf(t *testing.T) {
	cases := []struct {
		name     string
		held     []model.Permission
		required []model.Permission
		want     bool
	}{
		{"single match", []model.Permission{model.PermCollection}, []model.Permission{model.PermCollection, model.PermGPSTracking}, true},
		{"second match", []model.Permission{model.PermGPSTracking}, []model.Permission{model.PermCollection, model.PermGPSTracking}, true},
		{"no overlap", []model.Permission{model.PermProductScan}, []model.Permission{model.PermFullAccess, model.PermUserManagement, model.PermOperations}, false},
		{"empty requirement", []model.Permission{model.PermProductScan}, nil, false},
		{"several held one matching", []model.Permission{model.PermLabTesting, model.PermOperations}, []model.Permission{model.PermOperations}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := userWith(model.RoleLab, tc.held...)
			assert.Equal(t, tc.want, DemoPolicy.CanAccess(u, tc.required))
		})
	}
}

func TestCanAccessIsPure(t *testing.T) {
	u := userWith(model.RoleConsumer, model.PermProductScan)
	required := []model.Permission{model.PermOperations}
	first := DemoPolicy.CanAccess(u, required)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DemoPolicy.CanAccess(u, required))
	}
	assert.Equal(t, []model.Permission{model.PermProductScan}, u.Permissions)
	assert.Equal(t, []model.Permission{model.PermOperations}, required)
}
