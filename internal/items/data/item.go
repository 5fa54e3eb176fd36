package data

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Category determines an item's detail format and which sequence holds it.
type Category int

const (
	CategoryAssignment Category = iota
	CategoryExam
	CategoryGrade
)

// Categories lists every category in display order.
var Categories = []Category{CategoryAssignment, CategoryExam, CategoryGrade}

func (c Category) String() string {
	switch c {
	case CategoryAssignment:
		return "Assignment"
	case CategoryExam:
		return "Exam"
	case CategoryGrade:
		return "Grade"
	}
	return "Unknown"
}

// Plural is the tab label for the category.
func (c Category) Plural() string {
	return c.String() + "s"
}

// UsesDate reports whether items in this category carry a due date.
func (c Category) UsesDate() bool {
	return c == CategoryAssignment || c == CategoryExam
}

// Next cycles Assignment -> Exam -> Grade -> Assignment.
func (c Category) Next() Category {
	return Category((int(c) + 1) % len(Categories))
}

// Prev cycles in the opposite direction of Next.
func (c Category) Prev() Category {
	return Category((int(c) + len(Categories) - 1) % len(Categories))
}

// ParseCategory accepts singular or plural names, case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "assignment", "assignments", "a":
		return CategoryAssignment, nil
	case "exam", "exams", "e":
		return CategoryExam, nil
	case "grade", "grades", "g":
		return CategoryGrade, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Detail is either a DueDate or a Score.
type Detail interface {
	String() string
	isDetail()
}

// DueDate is the detail of assignments and exams.
type DueDate struct {
	Month int
	Day   int
}

func (DueDate) isDetail() {}

func (d DueDate) String() string {
	return fmt.Sprintf("Due: %02d/%02d", d.Month, d.Day)
}

// Score is the detail of grades, a percentage in [0,100].
type Score struct {
	Value float64
}

func (Score) isDetail() {}

func (s Score) String() string {
	return fmt.Sprintf("%.2f%%", s.Value)
}

// Item is a named record held by exactly one category sequence.
type Item struct {
	ID       string
	Category Category
	Name     string
	Detail   Detail
}

// NewItem builds an item with a fresh id.
func NewItem(category Category, name string, detail Detail) Item {
	return Item{
		ID:       uuid.NewString(),
		Category: category,
		Name:     name,
		Detail:   detail,
	}
}

// Details returns the formatted detail string, or "" when unset.
func (i Item) Details() string {
	if i.Detail == nil {
		return ""
	}
	return i.Detail.String()
}

// String renders "NAME - DETAILS".
func (i Item) String() string {
	return i.Name + " - " + i.Details()
}
