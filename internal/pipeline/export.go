package pipeline

import (
	"fmt"
	"strings"
)

// ExportText renders the downloadable flat-text artifact. The three
// labeled sections and their order are part of the published contract.
func (o *implOrchestrator) ExportText(res Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Headline:\n%s\n\n", res.Headline)
	fmt.Fprintf(&b, "Summary:\n%s\n\n", res.Summary)
	fmt.Fprintf(&b, "Keywords:\n%s\n", strings.Join(res.Keywords, ", "))
	return b.String()
}
