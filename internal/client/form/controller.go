// Package form owns the create/edit form state: the draft of the editable
// employee fields and the mode the form is in.
package form

import "github.com/innovatech/employee-portal/internal/client/models"

// Mode says whether the form creates a new record or edits a selected one.
// The two are mutually exclusive; switching always resets the draft.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Controller holds the working draft. The draft is always a copy: editing it
// never touches the authoritative collection.
type Controller struct {
	draft   models.EmployeeDraft
	editing bool
}

func NewController() *Controller {
	return &Controller{}
}

func (c *Controller) Mode() Mode {
	if c.editing {
		return ModeEdit
	}
	return ModeCreate
}

// Draft returns a copy of the current field values.
func (c *Controller) Draft() models.EmployeeDraft {
	return c.draft
}

func (c *Controller) SetName(v string)       { c.draft.Name = v }
func (c *Controller) SetEmail(v string)      { c.draft.Email = v }
func (c *Controller) SetDepartment(v string) { c.draft.Department = v }

// Load switches to edit mode with a copy of the record's editable fields,
// discarding any unsaved draft edits.
func (c *Controller) Load(e models.Employee) {
	c.draft = models.DraftFrom(e)
	c.editing = true
}

// Reset returns to create mode with an empty draft.
func (c *Controller) Reset() {
	c.draft = models.EmployeeDraft{}
	c.editing = false
}

// Validate gates submission; it must pass before any network call is made.
func (c *Controller) Validate() error {
	return c.draft.Validate()
}
