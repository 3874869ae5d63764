package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visuddha-service/internal/access"
	"visuddha-service/internal/model"
)

type stubLive struct{}

func (stubLive) Sensors() model.SensorNetwork {
	return model.SensorNetwork{Sensors: []model.Sensor{{ID: "S-1"}}, Online: 1}
}

func (stubLive) Ledger() model.LedgerNetwork {
	return model.LedgerNetwork{Height: 7}
}

func TestRenderEveryView(t *testing.T) {
	c := NewCatalog(stubLive{})
	for _, v := range model.Views() {
		assert.NotNil(t, c.Render(v, nil, nil), "view %s rendered nothing", v)
	}
}

func TestRenderLiveViews(t *testing.T) {
	c := NewCatalog(stubLive{})

	ledger, ok := c.Render(model.ViewBlockchain, nil, nil).(model.LedgerNetwork)
	require.True(t, ok)
	assert.Equal(t, int64(7), ledger.Height)

	sensors, ok := c.Render(model.ViewIoT, nil, nil).(model.SensorNetwork)
	require.True(t, ok)
	assert.Len(t, sensors.Sensors, 1)
}

func TestRenderHomeGreetsUser(t *testing.T) {
	c := NewCatalog(nil)

	anon := c.Render(model.ViewHome, nil, nil).(HomeContent)
	assert.Equal(t, "Welcome, guest", anon.Greeting)

	u := &model.User{Name: "Arjun Nair"}
	named := c.Render(model.ViewHome, u, nil).(HomeContent)
	assert.Equal(t, "Welcome, Arjun Nair", named.Greeting)
}

func TestRenderUnauthorizedCarriesDenial(t *testing.T) {
	role := model.RoleConsumer
	denial := &access.Denial{
		View:     model.ViewDashboard,
		RoleType: &role,
		Required: []model.Permission{model.PermFullAccess, model.PermUserManagement, model.PermOperations},
	}

	content := NewCatalog(nil).Render(model.ViewUnauthorized, nil, denial).(UnauthorizedContent)
	assert.Equal(t, model.ViewDashboard, content.View)
	assert.Equal(t, &role, content.RoleType)
	assert.Equal(t, denial.Required, content.Required)
}

func TestConsumerVerification(t *testing.T) {
	content := consumerContent("VB-2024-0917")
	assert.True(t, content.Authentic)
	assert.Equal(t, "Ramesh Kumar", content.Farmer.Name)
	assert.Len(t, content.Tests, 2)
	assert.Len(t, content.Journey, 4)
}

func TestLoginListsEveryRole(t *testing.T) {
	content := loginContent()
	require.Len(t, content.Roles, len(model.RoleTypes()))
	for i, r := range model.RoleTypes() {
		assert.Equal(t, r, content.Roles[i].RoleType)
	}
}
