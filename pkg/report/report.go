// Package report renders enumeration results as Markdown.
package report

import (
	"fmt"
	"strings"

	"github.com/aretw0/macexpect/pkg/domain"
)

// Markdown renders a summary of res followed by its completion-time distribution.
func Markdown(res domain.Result) string {
	var b strings.Builder
	m := res.Model

	b.WriteString("# Duty-cycled MAC expectation\n\n")
	fmt.Fprintf(&b, "Wake periods **%d / %d / %d** slots, gateway idle when `t mod %d == %d`, ",
		m.WakePeriods[0], m.WakePeriods[1], m.WakePeriods[2], m.GatewayPeriod, m.IdlePhase)
	fmt.Fprintf(&b, "listening %d mW, transmitting %d mW.\n\n", m.ListenCost, m.TransmitCost)

	b.WriteString("| Quantity | Value |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Expected time (slots) | %.6f |\n", res.ExpectedTime)
	fmt.Fprintf(&b, "| Expected energy (mW·s) | %.6f |\n", res.ExpectedEnergy)
	fmt.Fprintf(&b, "| Probability mass | %.12f |\n", res.ProbabilityMass)
	fmt.Fprintf(&b, "| Terminal states | %d |\n", res.TerminalStates)
	fmt.Fprintf(&b, "| Expanded states | %d |\n", res.ExpandedStates)
	fmt.Fprintf(&b, "| Latest completion slot | %d |\n", res.MaxElapsed)

	if len(res.Distribution) == 0 {
		return b.String()
	}

	b.WriteString("\n## Completion time\n\n")
	b.WriteString("| Slot | Probability | Cumulative |\n|---:|---:|---:|\n")
	cumulative := 0.0
	for _, slot := range res.Slots() {
		p := res.Distribution[slot]
		cumulative += p
		fmt.Fprintf(&b, "| %d | %.6f | %.6f |\n", slot, p, cumulative)
	}
	return b.String()
}
