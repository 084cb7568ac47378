package report

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatText renders the report as human-readable text.
func FormatText(r *Report) string {
	if r.Empty() {
		return EmptyMessage + "\n"
	}

	var b strings.Builder
	for i, d := range r.Domains {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Domain %s: %s\n", d.Code, d.Name)
		for _, e := range d.Entries {
			fmt.Fprintf(&b, "  %s  %s (level %d, %s)\n", e.Code, e.Title, e.Level, e.MaturityLevel)
			for _, f := range e.FollowOn {
				fmt.Fprintf(&b, "      - %s\n", f)
			}
		}
	}
	return b.String()
}

// FormatJSON renders the report as JSON.
func FormatJSON(r *Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(data), nil
}
