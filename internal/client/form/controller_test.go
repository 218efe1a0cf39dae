package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovatech/employee-portal/internal/client/models"
)

func TestController_ModeSwitchingResetsDraft(t *testing.T) {
	c := NewController()
	assert.Equal(t, ModeCreate, c.Mode())

	c.SetName("half-typed")
	c.Load(models.Employee{EmployeeID: "emp-1", Name: "Alex", Email: "alex@bedrijf.nl", Department: "Security"})

	assert.Equal(t, ModeEdit, c.Mode())
	assert.Equal(t, "Alex", c.Draft().Name, "unsaved edits are discarded on mode switch")

	c.Reset()
	assert.Equal(t, ModeCreate, c.Mode())
	assert.Equal(t, models.EmployeeDraft{}, c.Draft())
}

func TestController_DraftIsACopy(t *testing.T) {
	c := NewController()
	e := models.Employee{EmployeeID: "emp-1", Name: "Alex", Email: "alex@bedrijf.nl", Department: "Security"}
	c.Load(e)

	c.SetName("Changed")
	assert.Equal(t, "Alex", e.Name, "editing the draft must not mutate the record")

	d := c.Draft()
	d.Name = "Changed again"
	assert.Equal(t, "Changed", c.Draft().Name, "Draft returns a copy")
}

func TestController_ValidateBlocksIncompleteDrafts(t *testing.T) {
	c := NewController()
	require.Error(t, c.Validate())

	c.SetName("Alex Janssen")
	c.SetEmail("alex@bedrijf.nl")
	c.SetDepartment("Security")
	require.NoError(t, c.Validate())

	c.SetEmail("nope")
	require.Error(t, c.Validate())
}
