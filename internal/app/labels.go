package app

import "strings"

// ParseLabels splits free text into one label per line. Surrounding
// whitespace is stripped and blank lines are dropped.
func ParseLabels(text string) []string {
	return CleanLabels(strings.Split(text, "\n"))
}

// CleanLabels trims every label and drops the empty ones.
func CleanLabels(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
