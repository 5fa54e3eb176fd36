package data

// SeedEntry is an item written as plain strings, the way it appears in the
// config file's items section.
type SeedEntry struct {
	Name    string `yaml:"name"`
	Details string `yaml:"details"`
}

// Seed groups entries per category.
type Seed struct {
	Assignments []SeedEntry `yaml:"assignments,omitempty"`
	Exams       []SeedEntry `yaml:"exams,omitempty"`
	Grades      []SeedEntry `yaml:"grades,omitempty"`
}

// Entries returns the entries for c.
func (s Seed) Entries(c Category) []SeedEntry {
	switch c {
	case CategoryAssignment:
		return s.Assignments
	case CategoryExam:
		return s.Exams
	case CategoryGrade:
		return s.Grades
	}
	return nil
}

// IsEmpty reports whether the seed has no entries at all.
func (s Seed) IsEmpty() bool {
	return len(s.Assignments) == 0 && len(s.Exams) == 0 && len(s.Grades) == 0
}

// DefaultSeed is the demonstration set loaded at startup.
func DefaultSeed() Seed {
	return Seed{
		Assignments: []SeedEntry{
			{Name: "Math Homework 3", Details: "Due: 11/15"},
			{Name: "History Essay Outline", Details: "Due: 11/20"},
		},
		Exams: []SeedEntry{
			{Name: "Physics Midterm", Details: "Due: 11/25"},
			{Name: "Chemistry Final Exam", Details: "Due: 12/10"},
		},
		Grades: []SeedEntry{
			{Name: "Quiz 1 Grade", Details: "95.00%"},
			{Name: "Lab Report Score", Details: "88.50%"},
			{Name: "Major Project Score", Details: "75.00%"},
		},
	}
}

// BuildItem validates a seed entry into an item of category c.
func BuildItem(c Category, e SeedEntry) (Item, error) {
	name, err := ValidateName(e.Name)
	if err != nil {
		return Item{}, err
	}
	detail, err := ParseDetailString(c, e.Details)
	if err != nil {
		return Item{}, err
	}
	return NewItem(c, name, detail), nil
}
