package prompt

import (
	"fmt"
	"strings"
)

// FormatMarkdown renders a prompt for export. Formatting is presentation
// only; nothing downstream parses it back.
func FormatMarkdown(p Prompt) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Remediation Prompt: %s\n\n", p.DimensionKey)
	fmt.Fprintf(&b, "**Priority:** %d (%s) | **Estimated effort:** %dh | **Evidence:** %s\n\n",
		int(p.Priority), p.Priority.Label(), p.EstimatedEffortHours, p.EvidenceType)

	b.WriteString("## Goal\n\n")
	b.WriteString(p.Goal)
	b.WriteString("\n\n")

	if len(p.Tasks) > 0 {
		b.WriteString("## Tasks\n\n")
		for _, t := range p.Tasks {
			fmt.Fprintf(&b, "%d. %s\n", t.Order, t.Description)
		}
		b.WriteString("\n")
	}

	writeSection(&b, "Acceptance Criteria", p.AcceptanceCriteria)
	writeSection(&b, "Constraints", p.Constraints)
	writeSection(&b, "Deliverables", p.Deliverables)

	fmt.Fprintf(&b, "---\n\nTags: %s  \nGenerated: %s\n",
		strings.Join(p.Tags, ", "), p.GeneratedAt.Format("2006-01-02 15:04 UTC"))

	return b.String()
}

func writeSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}
