package index

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	riskStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	warnStyle  = lipgloss.NewStyle().Faint(true)
)

// RenderText writes the global index as a per-protocol table with skipped
// documents listed after each roll-up.
func RenderText(w io.Writer, idx GlobalIndex) {
	fmt.Fprintln(w, titleStyle.Render("Global index"))
	fmt.Fprintf(w, "Generated: %s\n\n", idx.GeneratedAt)

	for _, p := range idx.Protocols {
		suspects := fmt.Sprintf("%d", p.SuspectFunctions)
		if p.SuspectFunctions > 0 {
			suspects = riskStyle.Render(suspects)
		}
		fmt.Fprintf(w, "%-8s runs=%d total=%d protocol=%d suspect=%s\n",
			p.Protocol, p.RunsProcessed, p.TotalPackets, p.ProtocolPackets, suspects)
		for _, skip := range p.Skipped {
			fmt.Fprintf(w, "  %s\n", warnStyle.Render("skipped "+skip))
		}
	}
}
