package selection

import (
	"errors"
	"fmt"
	"strings"

	"studyorg/internal/items/data"
	"studyorg/internal/items/service"
	"studyorg/internal/logs"
)

const defaultStudent = "Student"

// Form is the raw content of the input fields.
type Form struct {
	Name string
	data.RawInput
}

// IsBlank reports whether the name and every detail field are empty.
func (f Form) IsBlank() bool {
	return strings.TrimSpace(f.Name) == "" && f.RawInput.IsBlank()
}

// DisplayFields are the values a selection writes back into the form.
type DisplayFields struct {
	Category data.Category
	Name     string
	Month    string
	Day      string
	Score    string
}

// Form converts the fields back into a Form.
func (d DisplayFields) Form() Form {
	return Form{
		Name:     d.Name,
		RawInput: data.RawInput{Month: d.Month, Day: d.Day, Score: d.Score},
	}
}

// Controller owns the single selection slot and routes edits to the store.
type Controller struct {
	svc        service.ItemService
	selectedID string
	student    string
}

// NewController creates a controller over svc with an empty selection.
func NewController(svc service.ItemService) *Controller {
	return &Controller{svc: svc, student: defaultStudent}
}

// Service exposes the underlying store for read access.
func (c *Controller) Service() service.ItemService {
	return c.svc
}

// Selected returns the currently selected item, if any.
func (c *Controller) Selected() (data.Item, bool) {
	if c.selectedID == "" {
		return data.Item{}, false
	}
	it, err := c.svc.Get(c.selectedID)
	if err != nil {
		return data.Item{}, false
	}
	return *it, true
}

// SelectedID returns the id in the slot, or "".
func (c *Controller) SelectedID() string {
	return c.selectedID
}

// ClearSelection empties the slot.
func (c *Controller) ClearSelection() {
	c.selectedID = ""
}

// Select puts the item in the slot and returns the values to show in the form.
func (c *Controller) Select(id string) (DisplayFields, Status) {
	c.ClearSelection()

	it, err := c.svc.Get(id)
	if err != nil {
		return DisplayFields{}, failureText("Item not found.", err)
	}
	c.selectedID = it.ID

	fields := DisplayFields{Category: it.Category, Name: it.Name}
	switch d := it.Detail.(type) {
	case data.DueDate:
		fields.Month, fields.Day, _ = data.SplitDueString(d.String())
	case data.Score:
		fields.Score = strings.ReplaceAll(d.String(), "%", "")
	}

	log := logs.Component("selection")
	log.Debug().Str("id", it.ID).Str("name", it.Name).Msg("selected")
	return fields, info(fmt.Sprintf("Selected: '%s'", it.Name))
}

// Add validates the form and appends a new item to category.
func (c *Controller) Add(category data.Category, form Form) (*data.Item, Status) {
	it, err := c.svc.Add(category, form.Name, form.RawInput)
	if err != nil {
		return nil, failure(err)
	}
	return it, success(fmt.Sprintf("Added new %s: %s.", category, it.Name))
}

// Import appends an item whose detail is given as a formatted string,
// such as "Due: 11/15" or "91.00%".
func (c *Controller) Import(category data.Category, name, details string) (*data.Item, Status) {
	it, err := data.BuildItem(category, data.SeedEntry{Name: name, Details: details})
	if err != nil {
		return nil, failure(err)
	}
	added := c.svc.Append(it)
	return added, success(fmt.Sprintf("Imported %s: %s.", category, added.Name))
}

// Modify applies the form to the selected item. Blank fields are left alone.
func (c *Controller) Modify(form Form) (*data.Item, Status) {
	if c.selectedID == "" {
		return nil, failureText("Select an item to modify first.", data.ErrNothingSelected)
	}
	if form.IsBlank() {
		c.ClearSelection()
		return nil, failureText("Enter new values to modify the item.", data.ErrNothingSelected)
	}

	it, err := c.svc.Modify(c.selectedID, form.Name, form.RawInput)
	if err != nil {
		var verr *data.ValidationError
		if errors.As(err, &verr) {
			// selection survives so the input can be corrected
			return nil, failure(err)
		}
		c.ClearSelection()
		return nil, failureText("Item not found.", err)
	}

	c.ClearSelection()
	return it, success(fmt.Sprintf("Modified item: %s.", it.Name))
}

// Delete removes the selected item. The slot is cleared whatever the outcome.
func (c *Controller) Delete() Status {
	if c.selectedID == "" {
		return failureText("Select an item to delete first.", data.ErrNothingSelected)
	}
	id := c.selectedID
	c.ClearSelection()

	if err := c.svc.Delete(id); err != nil {
		return failureText("Item not found.", err)
	}
	return success("Item deleted successfully.")
}

// Average returns the formatted grade average.
func (c *Controller) Average() string {
	return c.svc.Average().String()
}

// SetStudentName updates the greeting.
func (c *Controller) SetStudentName(name string) Status {
	name = strings.TrimSpace(name)
	if name == "" {
		return failureText("Please enter a name.", data.ErrEmptyName)
	}
	c.student = name
	return success("Name updated successfully!")
}

// Greeting is the header line, "Hello, NAME!".
func (c *Controller) Greeting() string {
	return fmt.Sprintf("Hello, %s!", c.student)
}
