package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeGrades(values ...float64) []Item {
	items := make([]Item, 0, len(values))
	for _, v := range values {
		items = append(items, NewItem(CategoryGrade, "g", Score{Value: v}))
	}
	return items
}

func TestAverageOf_Empty(t *testing.T) {
	assert.Equal(t, "N/A", AverageOf(nil).String())
}

func TestAverageItems_DemoGrades(t *testing.T) {
	avg := AverageItems(makeGrades(95.0, 88.5, 75.0))
	assert.Equal(t, 3, avg.Count)
	assert.Equal(t, "86.17% (Avg. of 3 scores)", avg.String())
}

func TestAverageOf_SkipsInvalidDetails(t *testing.T) {
	avg := AverageOf([]string{"95.00%", "", "abc%", "120.00%", "-3%", "85%"})
	assert.Equal(t, 2, avg.Count)
	assert.Equal(t, "90.00% (Avg. of 2 scores)", avg.String())
}

func TestAverageOf_AllInvalid(t *testing.T) {
	assert.Equal(t, "N/A", AverageOf([]string{"x", "101%"}).String())
}

func TestDeleteItem(t *testing.T) {
	items := makeGrades(1, 2, 3)
	target := items[1].ID

	items, ok := DeleteItem(items, target)
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, -1, IndexOf(items, target))

	items, ok = DeleteItem(items, "missing")
	assert.False(t, ok)
	assert.Len(t, items, 2)
}

func TestUpdateItem(t *testing.T) {
	items := makeGrades(10, 20)
	updated := items[0]
	updated.Name = "renamed"

	items, ok := UpdateItem(items, updated)
	require.True(t, ok)
	assert.Equal(t, "renamed", items[0].Name)

	_, ok = UpdateItem(items, Item{ID: "nope"})
	assert.False(t, ok)
}

func TestNewItem_IdentityIsById(t *testing.T) {
	a := NewItem(CategoryExam, "Same", DueDate{Month: 1, Day: 1})
	b := NewItem(CategoryExam, "Same", DueDate{Month: 1, Day: 1})
	assert.NotEqual(t, a.ID, b.ID)

	items := []Item{a, b}
	items, ok := DeleteItem(items, b.ID)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, a.ID, items[0].ID)
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"Assignment", CategoryAssignment},
		{"assignments", CategoryAssignment},
		{"EXAM", CategoryExam},
		{"grades", CategoryGrade},
		{"g", CategoryGrade},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseCategory("quiz")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategory_Cycle(t *testing.T) {
	assert.Equal(t, CategoryExam, CategoryAssignment.Next())
	assert.Equal(t, CategoryAssignment, CategoryGrade.Next())
	assert.Equal(t, CategoryGrade, CategoryAssignment.Prev())
	assert.Equal(t, "Exams", CategoryExam.Plural())
}

func TestDefaultSeed_BuildsValidItems(t *testing.T) {
	seed := DefaultSeed()
	for _, c := range Categories {
		for _, e := range seed.Entries(c) {
			it, err := BuildItem(c, e)
			require.NoError(t, err, e.Name)
			assert.Equal(t, e.Details, it.Details())
		}
	}
}

func TestItem_Details_NilDetail(t *testing.T) {
	assert.Equal(t, "", Item{Name: "x"}.Details())
}
