package transcript

import (
	"regexp"
	"strings"
)

var (
	reCueIndex = regexp.MustCompile(`^\d+$`)
	reCueTime  = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}`)
)

// CleanSubtitle strips SRT/VTT furniture (headers, sequence numbers, cue
// timings) from subtitle content, keeping only dialogue. Consecutive
// duplicate lines, common in auto-generated captions, are collapsed.
func CleanSubtitle(content string) string {
	var parts []string
	prev := ""

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "",
			trimmed == "WEBVTT",
			strings.HasPrefix(trimmed, "NOTE "),
			strings.Contains(trimmed, "-->"),
			reCueIndex.MatchString(trimmed),
			reCueTime.MatchString(trimmed):
			continue
		}
		if trimmed == prev {
			continue
		}
		prev = trimmed
		parts = append(parts, trimmed)
	}

	return strings.Join(parts, " ")
}
