package analysis

import (
	"fmt"
	"io"
	"strings"

	"github.com/imagezebra/imagezebra-go/internal/client"
)

// WriteReport renders a results summary as the plain-text report the demo
// CLIs print: a header block followed by one section per metric group with
// star ratings and pass/fail per metric.
func WriteReport(w io.Writer, s *client.ResultSummary) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\nAnalysis for %s\n", s.FilePath)
	b.WriteString(strings.Repeat("*", 80) + "\n")
	fmt.Fprintf(&b, "Passing quality thresholds: %t\n", s.Passing)
	fmt.Fprintf(&b, "Reference values used: %s\n", s.ReferenceValuesUsed)
	fmt.Fprintf(&b, "Specification used: %s\n", s.Spec)
	fmt.Fprintf(&b, "Target type: %s\n", s.TargetType)

	for _, g := range s.MetricGroups {
		fmt.Fprintf(&b, "\n%s\n%s\n", g.Name, strings.Repeat("-", 80))
		for _, m := range g.Metrics {
			fmt.Fprintf(&b, "%-40s%d stars, passing: %t\n", m.Name, m.Stars, m.IsPassing)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
