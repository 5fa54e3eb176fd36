package service

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyorg/internal/items/data"
)

func names(items []data.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name + " | " + it.Details()
	}
	return out
}

func TestSeededService_DemoSet(t *testing.T) {
	svc := NewSeededItemService(data.DefaultSeed())

	want := map[data.Category][]string{
		data.CategoryAssignment: {"Math Homework 3 | Due: 11/15", "History Essay Outline | Due: 11/20"},
		data.CategoryExam:       {"Physics Midterm | Due: 11/25", "Chemistry Final Exam | Due: 12/10"},
		data.CategoryGrade:      {"Quiz 1 Grade | 95.00%", "Lab Report Score | 88.50%", "Major Project Score | 75.00%"},
	}
	for c, w := range want {
		if diff := cmp.Diff(w, names(svc.List(c))); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", c.Plural(), diff)
		}
	}
	assert.Equal(t, "86.17% (Avg. of 3 scores)", svc.Average().String())
}

func TestSeed_SkipsInvalidEntries(t *testing.T) {
	svc := NewItemService()
	errs := svc.Seed(data.Seed{
		Exams:  []data.SeedEntry{{Name: "Bad", Details: "Due: 13/01"}, {Name: "Good", Details: "Due: 01/02"}},
		Grades: []data.SeedEntry{{Name: "", Details: "50%"}},
	})
	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], data.ErrInvalidDate)
	assert.ErrorIs(t, errs[1], data.ErrEmptyName)
	assert.Equal(t, []string{"Good | Due: 01/02"}, names(svc.List(data.CategoryExam)))
}

func TestAdd_AppendsInOrder(t *testing.T) {
	svc := NewItemService()
	_, err := svc.Add(data.CategoryAssignment, "First", data.RawInput{Month: "1", Day: "2"})
	require.NoError(t, err)
	_, err = svc.Add(data.CategoryAssignment, "  Second  ", data.RawInput{Month: "10", Day: "20"})
	require.NoError(t, err)

	assert.Equal(t, []string{"First | Due: 01/02", "Second | Due: 10/20"}, names(svc.List(data.CategoryAssignment)))
}

func TestAdd_EmptyNameDoesNotMutate(t *testing.T) {
	svc := NewSeededItemService(data.DefaultSeed())
	before := svc.Count(data.CategoryAssignment)

	_, err := svc.Add(data.CategoryAssignment, "   ", data.RawInput{Month: "1", Day: "1"})
	assert.ErrorIs(t, err, data.ErrEmptyName)
	assert.Equal(t, before, svc.Count(data.CategoryAssignment))
}

func TestAdd_InvalidDateDoesNotMutate(t *testing.T) {
	svc := NewSeededItemService(data.DefaultSeed())
	before := svc.Count(data.CategoryExam)

	_, err := svc.Add(data.CategoryExam, "X", data.RawInput{Month: "13", Day: "1"})
	assert.ErrorIs(t, err, data.ErrInvalidDate)
	assert.Equal(t, before, svc.Count(data.CategoryExam))
}

func TestAdd_InvalidScoreDoesNotMutate(t *testing.T) {
	svc := NewItemService()
	_, err := svc.Add(data.CategoryGrade, "Quiz", data.RawInput{Score: "150"})
	assert.ErrorIs(t, err, data.ErrInvalidScore)
	assert.Zero(t, svc.Count(data.CategoryGrade))
}

func TestAdd_GradeIgnoresDateFields(t *testing.T) {
	svc := NewItemService()
	it, err := svc.Add(data.CategoryGrade, "Quiz", data.RawInput{Month: "x", Score: "70"})
	require.NoError(t, err)
	assert.Equal(t, "70.00%", it.Details())
}

func TestModify_BlankDetailsKeepsDetailButRenames(t *testing.T) {
	svc := NewSeededItemService(data.DefaultSeed())
	target := svc.List(data.CategoryExam)[0]

	updated, err := svc.Modify(target.ID, "Physics Final", data.RawInput{})
	require.NoError(t, err)
	assert.Equal(t, "Physics Final", updated.Name)
	assert.Equal(t, "Due: 11/25", updated.Details())
	assert.Equal(t, "Physics Final", svc.List(data.CategoryExam)[0].Name)
}

func TestModify_DetailOnlyKeepsName(t *testing.T) {
	svc := NewSeededItemService(data.DefaultSeed())
	target := svc.List(data.CategoryGrade)[1]

	updated, err := svc.Modify(target.ID, "", data.RawInput{Score: "91.25"})
	require.NoError(t, err)
	assert.Equal(t, "Lab Report Score", updated.Name)
	assert.Equal(t, "91.25%", updated.Details())
	assert.Equal(t, "87.08% (Avg. of 3 scores)", svc.Average().String())
}

func TestModify_HalfDateFailsWithoutMutation(t *testing.T) {
	svc := NewSeededItemService(data.DefaultSeed())
	target := svc.List(data.CategoryAssignment)[0]

	_, err := svc.Modify(target.ID, "Renamed", data.RawInput{Month: "4"})
	assert.ErrorIs(t, err, data.ErrInvalidDate)

	got, err := svc.Get(target.ID)
	require.NoError(t, err)
	assert.Equal(t, target.Name, got.Name)
	assert.Equal(t, target.Details(), got.Details())
}

func TestModify_UnknownID(t *testing.T) {
	svc := NewItemService()
	_, err := svc.Modify("missing", "x", data.RawInput{})
	assert.ErrorIs(t, err, data.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc := NewSeededItemService(data.DefaultSeed())
	target := svc.List(data.CategoryGrade)[0]

	require.NoError(t, svc.Delete(target.ID))
	assert.Equal(t, 2, svc.Count(data.CategoryGrade))
	assert.Equal(t, "81.75% (Avg. of 2 scores)", svc.Average().String())

	err := svc.Delete(target.ID)
	assert.ErrorIs(t, err, data.ErrNotFound)
	assert.Equal(t, 2, svc.Count(data.CategoryGrade))
	assert.Equal(t, 2, svc.Count(data.CategoryAssignment))
	assert.Equal(t, 2, svc.Count(data.CategoryExam))
}

func TestAverage_NoGrades(t *testing.T) {
	assert.Equal(t, "N/A", NewItemService().Average().String())
}

func TestList_ReturnsCopy(t *testing.T) {
	svc := NewSeededItemService(data.DefaultSeed())
	list := svc.List(data.CategoryExam)
	list[0].Name = "mutated"
	assert.Equal(t, "Physics Midterm", svc.List(data.CategoryExam)[0].Name)
}

func TestAddThenGet_ScoreRoundTrip(t *testing.T) {
	svc := NewItemService()
	for _, v := range []float64{0, 12.345, 50, 99.999, 100} {
		raw := strconv.FormatFloat(v, 'f', -1, 64)
		it, err := svc.Add(data.CategoryGrade, "s", data.RawInput{Score: raw})
		require.NoError(t, err)
		got, err := svc.Get(it.ID)
		require.NoError(t, err)
		assert.Equal(t, strconv.FormatFloat(v, 'f', 2, 64)+"%", got.Details())
	}
}

func TestAppend_KeepsPrebuiltItem(t *testing.T) {
	svc := NewSeededItemService(data.DefaultSeed())
	it := data.NewItem(data.CategoryExam, "Bio Final", data.DueDate{Month: 12, Day: 18})

	got := svc.Append(it)
	assert.Equal(t, it.ID, got.ID)

	exams := svc.List(data.CategoryExam)
	require.Len(t, exams, 3)
	assert.Equal(t, "Bio Final | Due: 12/18", names(exams)[2])
}

func TestSeed_EmptyAddsNothing(t *testing.T) {
	svc := NewItemService()
	assert.Empty(t, svc.Seed(data.Seed{}))
	for _, c := range data.Categories {
		assert.Zero(t, svc.Count(c))
	}
}
