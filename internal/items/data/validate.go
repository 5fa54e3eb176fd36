package data

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	msgDateNotNumber  = "Date input must be valid numbers for Month and Day."
	msgDateOutOfRange = "Date validation failed: Month (1-12) or Day (1-31) is invalid."
	msgScoreNotNumber = "Grades must be entered as a number (0-100)."
	msgScoreRange     = "Grade must be a number between 0 and 100."
	msgEmptyName      = "Item name cannot be empty."
)

var dueDatePattern = regexp.MustCompile(`(\d{2})/(\d{2})`)

// RawInput holds the detail fields exactly as typed.
type RawInput struct {
	Month string
	Day   string
	Score string
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (r RawInput) Trimmed() RawInput {
	return RawInput{
		Month: strings.TrimSpace(r.Month),
		Day:   strings.TrimSpace(r.Day),
		Score: strings.TrimSpace(r.Score),
	}
}

// Touched reports whether any detail field relevant to the category is non-blank.
func (r RawInput) Touched(c Category) bool {
	r = r.Trimmed()
	if c.UsesDate() {
		return r.Month != "" || r.Day != ""
	}
	return r.Score != ""
}

// IsBlank reports whether every field is blank, regardless of category.
func (r RawInput) IsBlank() bool {
	r = r.Trimmed()
	return r.Month == "" && r.Day == "" && r.Score == ""
}

// ValidateName trims name and rejects it when empty.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid(ErrEmptyName, msgEmptyName)
	}
	return name, nil
}

// ParseDueDate accepts a month in [1,12] and a day in [1,31].
// There is no calendar check, so 02/30 is accepted.
func ParseDueDate(month, day string) (DueDate, error) {
	m, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil {
		return DueDate{}, invalid(ErrInvalidDate, msgDateNotNumber)
	}
	d, err := strconv.Atoi(strings.TrimSpace(day))
	if err != nil {
		return DueDate{}, invalid(ErrInvalidDate, msgDateNotNumber)
	}
	if !(1 <= m && m <= 12 && 1 <= d && d <= 31) {
		return DueDate{}, invalid(ErrInvalidDate, msgDateOutOfRange)
	}
	return DueDate{Month: m, Day: d}, nil
}

// ParseScore accepts a float in [0,100]. NaN fails the range check.
func ParseScore(s string) (Score, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Score{}, invalid(ErrInvalidScore, msgScoreNotNumber)
	}
	if !(0.0 <= v && v <= 100.0) {
		return Score{}, invalid(ErrInvalidScore, msgScoreRange)
	}
	return Score{Value: v}, nil
}

// ParseDetail validates the category's fields of raw.
func ParseDetail(c Category, raw RawInput) (Detail, error) {
	if c.UsesDate() {
		return ParseDueDate(raw.Month, raw.Day)
	}
	return ParseScore(raw.Score)
}

// ParseDetailString reads a formatted detail string back into a Detail.
// Date categories look for MM/DD anywhere in s; grades strip every '%'.
func ParseDetailString(c Category, s string) (Detail, error) {
	if c.UsesDate() {
		match := dueDatePattern.FindStringSubmatch(s)
		if match == nil {
			return nil, invalid(ErrInvalidDate, msgDateOutOfRange)
		}
		return ParseDueDate(match[1], match[2])
	}
	return ParseScore(strings.ReplaceAll(s, "%", ""))
}

// SplitDueString extracts the MM and DD groups of a "Due: MM/DD" string.
// ok is false when the pattern does not match.
func SplitDueString(s string) (month, day string, ok bool) {
	match := dueDatePattern.FindStringSubmatch(s)
	if match == nil {
		return "", "", false
	}
	return match[1], match[2], true
}
