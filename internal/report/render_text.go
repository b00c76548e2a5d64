package report

// Terminal rendering of sealed run summaries. The engine only ever reads
// the summaries here; richer presentation is out of scope and handled by
// external renderers consuming the JSON documents.

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/model"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	suspectStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// RenderRunSummary writes a passive run summary as styled text.
func RenderRunSummary(w io.Writer, protocol string, s model.RunSummary) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s analysis summary", protocol)))
	fmt.Fprintf(w, "  Total packets:    %d\n", s.TotalPackets)
	fmt.Fprintf(w, "  Protocol packets: %d\n", s.ProtocolPackets)
	fmt.Fprintf(w, "  Suspect:          %s\n", styledCount(s.SuspectFunctions))
	fmt.Fprintf(w, "  Unique hosts:     %s\n", hostList(s.UniqueHosts))
}

// RenderScanSummary writes an active scan summary as styled text.
func RenderScanSummary(w io.Writer, s model.ScanRunSummary) {
	fmt.Fprintln(w, headerStyle.Render("Modbus scan summary"))
	fmt.Fprintf(w, "  Probed:                %d\n", s.TotalProbed)
	fmt.Fprintf(w, "  Reachable:             %d\n", s.Reachable)
	fmt.Fprintf(w, "  Unauthenticated read:  %s\n", styledCount(s.UnauthenticatedRead))
	fmt.Fprintf(w, "  Broad register access: %s\n", styledCount(s.BroadRegisterAccess))
}

// styledCount highlights non-zero risk counters.
func styledCount(n int) string {
	if n > 0 {
		return suspectStyle.Render(fmt.Sprintf("%d", n))
	}
	return "0"
}

func hostList(hosts []string) string {
	if len(hosts) == 0 {
		return dimStyle.Render("none")
	}
	return strings.Join(hosts, ", ")
}
