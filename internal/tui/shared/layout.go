package shared

import "strings"

// FitHeight pads content with blank lines, or truncates it, to exactly height lines.
func FitHeight(content string, height int) string {
	if height <= 0 {
		return ""
	}
	content = strings.TrimRight(content, "\n")

	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
