package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	printlnFn("Please log in first.")
	return false
}

// List renders the collection with server-reported lifecycle status. Records
// mid-deletion are marked explicitly; statuses the client does not recognize
// render as UNKNOWN rather than being hidden or coerced.
func (a *App) List(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	employees := a.store.Employees()
	if len(employees) == 0 {
		printlnFn("No employees yet.")
		return nil
	}

	for _, e := range employees {
		marker := "  "
		if e.EmployeeID == a.store.SelectedID() {
			marker = "* "
		}
		note := ""
		if e.Deleting() {
			note = " (cleaning up)"
		}
		printlnFn(fmt.Sprintf("%s%-14s %-24s %-28s %-12s [%s]%s",
			marker, e.EmployeeID, e.Name, e.Email, e.Department, e.DisplayStatus(), note))
	}
	return nil
}

// New starts a create flow: empty draft, three prompts, submit.
func (a *App) New(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	a.store.ClearSelection()

	name, err := getSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	department, err := getSimpleText(a.reader, "Department", os.Stdout)
	if err != nil {
		return err
	}

	a.form.SetName(name)
	a.form.SetEmail(email)
	a.form.SetDepartment(department)

	a.store.Create(ctx)
	a.printStatus()
	return nil
}

// Select picks a record by id and loads its fields into the form.
func (a *App) Select(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}

	var id string
	if len(args) > 0 {
		id = args[0]
	} else {
		var err error
		id, err = getSimpleText(a.reader, "Enter employee id", os.Stdout)
		if err != nil {
			return err
		}
	}

	a.store.Select(strings.TrimSpace(id))

	e, ok := a.store.Selected()
	if !ok {
		printlnFn("No such record; selection cleared.")
		return nil
	}
	printlnFn(fmt.Sprintf("Selected %s (%s, %s) [%s]", e.Name, e.Email, e.Department, e.DisplayStatus()))
	if e.Deleting() {
		printlnFn("This record is being cleaned up; edit and delete are unavailable.")
	}
	return nil
}

// Edit updates the selected record. Each prompt defaults to the current
// draft value so pressing Enter keeps it.
func (a *App) Edit(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	if _, ok := a.store.Selected(); !ok {
		printlnFn("Nothing selected. Use 'select <id>' first.")
		return nil
	}
	if !a.store.CanMutateSelected() {
		printlnFn("This record is being cleaned up and cannot be edited.")
		return nil
	}

	draft := a.form.Draft()

	name, err := getTextDefault(a.reader, "Name", draft.Name, os.Stdout)
	if err != nil {
		return err
	}
	email, err := getTextDefault(a.reader, "Email", draft.Email, os.Stdout)
	if err != nil {
		return err
	}
	department, err := getTextDefault(a.reader, "Department", draft.Department, os.Stdout)
	if err != nil {
		return err
	}

	a.form.SetName(name)
	a.form.SetEmail(email)
	a.form.SetDepartment(department)

	a.store.Update(ctx)
	a.printStatus()
	return nil
}

// Delete asks for confirmation and requests removal of the selected record.
func (a *App) Delete(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	e, ok := a.store.Selected()
	if !ok {
		printlnFn("Nothing selected. Use 'select <id>' first.")
		return nil
	}
	if !a.store.CanMutateSelected() {
		printlnFn("This record is already being cleaned up.")
		return nil
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete %s? This tears down their cloud resources. (y/N)", e.Name), os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		printlnFn("Cancelled.")
		return nil
	}

	a.store.Remove(ctx)
	a.printStatus()
	return nil
}

// Clear drops the selection and returns the form to create mode.
func (a *App) Clear(ctx context.Context) error {
	a.store.ClearSelection()
	printlnFn("Selection cleared.")
	return nil
}

// Refresh re-fetches the collection and renders it.
func (a *App) Refresh(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	a.store.Refresh(ctx)
	if st, ok := a.store.LastStatus(); ok && !st.OK {
		printlnFn("[error]", st.Message)
		return nil
	}
	return a.List(ctx)
}
