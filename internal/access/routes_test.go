package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visuddha-service/internal/model"
)

func TestEveryProtectedViewHasRequirement(t *testing.T) {
	open := map[model.View]bool{
		model.ViewHome:         true,
		model.ViewLogin:        true,
		model.ViewUnauthorized: true,
	}
	for _, v := range model.Views() {
		required, ok := RequirementsFor(v)
		if open[v] {
			assert.False(t, ok, "%s should be unrestricted", v)
			assert.Empty(t, required)
			continue
		}
		require.True(t, ok, "%s has no requirement", v)
		assert.NotEmpty(t, required, "%s", v)
	}
}

func TestRequirementsForInvalidView(t *testing.T) {
	_, ok := RequirementsFor(model.ViewCount)
	assert.False(t, ok)
}

func TestRequirementsForReturnsCopy(t *testing.T) {
	required, ok := RequirementsFor(model.ViewDashboard)
	require.True(t, ok)
	assert.Equal(t, []model.Permission{model.PermFullAccess, model.PermUserManagement, model.PermOperations}, required)

	required[0] = "tampered"
	again, _ := RequirementsFor(model.ViewDashboard)
	assert.Equal(t, model.PermFullAccess, again[0])
}
