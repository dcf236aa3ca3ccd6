// Package sections splits a generated debate into bracket-headed sections.
package sections

import "strings"

type Section struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
}

// IsHeading reports whether a trimmed line opens a new section. Any line
// holding both '[' and ']' counts, wherever they appear.
func IsHeading(line string) bool {
	return strings.Contains(line, "[") && strings.Contains(line, "]")
}

// Parse groups the non-blank lines of text under the heading that precedes
// them. Lines before the first heading are dropped, so text without any
// heading yields an empty slice.
func Parse(text string) []Section {
	out := []Section{}
	var current Section

	flush := func() {
		if current.Title == "" {
			return
		}
		content := make([]string, len(current.Content))
		copy(content, current.Content)
		out = append(out, Section{Title: current.Title, Content: content})
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if IsHeading(line) {
			flush()
			current = Section{Title: line, Content: []string{}}
			continue
		}
		current.Content = append(current.Content, line)
	}
	flush()

	return out
}
