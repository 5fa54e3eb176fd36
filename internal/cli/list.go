package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"studyorg/internal/items/data"
	"studyorg/internal/items/selection"
)

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [category]",
		Short: "Print the items of every category, or of one",
		Example: `  studyorg list
  studyorg list grades
  studyorg --no-seed list`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := data.Categories
			if len(args) == 1 {
				c, err := data.ParseCategory(args[0])
				if err != nil {
					return err
				}
				categories = []data.Category{c}
			}

			writeListing(cmd.OutOrStdout(), a.newController(), categories)
			return nil
		},
	}
}

func newAverageCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "average SCORE...",
		Short:   "Average raw scores the way the grades tab does",
		Long:    `Each score may carry a trailing '%'. Values that are not numbers in [0,100] are skipped.`,
		Example: `  studyorg average 95 88.5% 75`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), data.AverageOf(args))
			return nil
		},
	}
}

// writeListing prints the greeting, a numbered block per category and,
// when grades are included, the current average.
func writeListing(w io.Writer, ctrl *selection.Controller, categories []data.Category) {
	svc := ctrl.Service()
	fmt.Fprintln(w, ctrl.Greeting())

	showAverage := false
	for _, c := range categories {
		fmt.Fprintf(w, "\n%s (%d)\n", c.Plural(), svc.Count(c))
		items := svc.List(c)
		if len(items) == 0 {
			fmt.Fprintf(w, "  No %s.\n", strings.ToLower(c.Plural()))
		}
		for i, it := range items {
			marker := ""
			if it.ID == ctrl.SelectedID() {
				marker = " *"
			}
			fmt.Fprintf(w, "  %d. %s%s\n", i+1, it, marker)
		}
		if c == data.CategoryGrade {
			showAverage = true
		}
	}

	if showAverage {
		fmt.Fprintf(w, "\nCurrent Average Grade: %s\n", ctrl.Average())
	}
}
