package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const wrapWidth = 90

// Markdown renders markdown for terminal display, wrapped to a readable
// column width. Falls back to the plain text when rendering fails so the
// summary is never lost to a styling problem.
func Markdown(text string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return Plain(text)
	}
	out, err := r.Render(text)
	if err != nil {
		return Plain(text)
	}
	return out
}

// Plain wraps text to the terminal column width without any styling.
func Plain(text string) string {
	var sb strings.Builder
	for _, line := range strings.Split(text, "\n") {
		sb.WriteString(wrapLine(line, wrapWidth))
		sb.WriteString("\n")
	}
	return sb.String()
}

func wrapLine(line string, width int) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return ""
	}
	var sb strings.Builder
	col := 0
	for i, w := range words {
		n := len([]rune(w))
		if i > 0 {
			if col+1+n > width {
				sb.WriteString("\n")
				col = 0
			} else {
				sb.WriteString(" ")
				col++
			}
		}
		sb.WriteString(w)
		col += n
	}
	return sb.String()
}
