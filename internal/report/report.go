package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"

	"studyorg/internal/items/data"
	"studyorg/internal/items/service"
)

// Markdown summarizes every category as a numbered list plus the grade average.
func Markdown(title string, svc service.ItemService) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", title)

	for _, c := range data.Categories {
		fmt.Fprintf(&b, "\n## %s\n\n", c.Plural())
		items := svc.List(c)
		if len(items) == 0 {
			b.WriteString("_none_\n")
		}
		for i, it := range items {
			fmt.Fprintf(&b, "%d. **%s** - %s\n", i+1, escape(it.Name), it.Details())
		}
	}

	fmt.Fprintf(&b, "\n**Current Average Grade:** %s\n", svc.Average())
	return b.String()
}

// Terminal renders markdown with glamour for a terminal of the given width.
func Terminal(md string, width int, style string) (string, error) {
	if width <= 0 {
		width = 80
	}
	if style == "" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", errors.Wrap(err, "creating markdown renderer")
	}
	out, err := r.Render(md)
	if err != nil {
		return "", errors.Wrap(err, "rendering markdown")
	}
	return out, nil
}

// HTML converts markdown to an HTML fragment.
func HTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", errors.Wrap(err, "converting markdown")
	}
	return buf.String(), nil
}

var mdEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `_`, `\_`, "`", "\\`", `[`, `\[`, `]`, `\]`)

func escape(s string) string {
	return mdEscaper.Replace(s)
}
