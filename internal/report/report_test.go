package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyorg/internal/items/data"
	"studyorg/internal/items/service"
)

func TestMarkdown_DemoSeed(t *testing.T) {
	md := Markdown("Hello, Ada!", service.NewSeededItemService(data.DefaultSeed()))

	assert.Contains(t, md, "# Hello, Ada!\n")
	assert.Contains(t, md, "## Assignments\n\n1. **Math Homework 3** - Due: 11/15\n2. **History Essay Outline** - Due: 11/20\n")
	assert.Contains(t, md, "## Exams\n\n1. **Physics Midterm** - Due: 11/25\n")
	assert.Contains(t, md, "3. **Major Project Score** - 75.00%\n")
	assert.Contains(t, md, "**Current Average Grade:** 86.17% (Avg. of 3 scores)")
}

func TestMarkdown_EmptyStore(t *testing.T) {
	md := Markdown("Report", service.NewItemService())
	assert.Contains(t, md, "_none_")
	assert.Contains(t, md, "**Current Average Grade:** N/A")
}

func TestMarkdown_EscapesNames(t *testing.T) {
	svc := service.NewItemService()
	_, err := svc.Add(data.CategoryAssignment, "read_me *now*", data.RawInput{Month: "1", Day: "1"})
	require.NoError(t, err)

	md := Markdown("r", svc)
	assert.Contains(t, md, `**read\_me \*now\***`)
}

func TestHTML(t *testing.T) {
	out, err := HTML(Markdown("Report", service.NewSeededItemService(data.DefaultSeed())))
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Report</h1>")
	assert.Contains(t, out, "<h2>Grades</h2>")
	assert.Contains(t, out, "<strong>Quiz 1 Grade</strong> - 95.00%")
}

func TestTerminal(t *testing.T) {
	out, err := Terminal("# Title\n\nbody text\n", 40, "notty")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body text")
}
