package aggregate

// Run aggregation over per-packet and per-probe records.
//
// Accumulators are explicit, single-owner objects: no package-level state.
// Counter addition and host-set union are commutative and associative, so
// shards folded independently can be combined with Merge and still produce
// the same sealed summary. No record ever aborts a fold; failures surface
// as degraded contributions inside the records themselves.

import (
	"sort"

	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/model"
)

// PacketAccumulator folds PacketRecords from one passive run.
type PacketAccumulator struct {
	total   int
	matched int
	suspect int
	hosts   map[string]struct{}
}

// NewPacketAccumulator returns an empty accumulator.
func NewPacketAccumulator() *PacketAccumulator {
	return &PacketAccumulator{hosts: make(map[string]struct{})}
}

// CountFrame records one captured frame, admitted or not.
func (a *PacketAccumulator) CountFrame() {
	a.total++
}

// Add folds one admitted, classified record.
func (a *PacketAccumulator) Add(rec model.PacketRecord) {
	a.matched++
	if rec.Suspect {
		a.suspect++
	}
	a.addHost(rec.Src)
	a.addHost(rec.Dst)
}

// Merge combines another accumulator into this one.
func (a *PacketAccumulator) Merge(other *PacketAccumulator) {
	a.total += other.total
	a.matched += other.matched
	a.suspect += other.suspect
	for h := range other.hosts {
		a.hosts[h] = struct{}{}
	}
}

// Summary seals the accumulator into a read-only snapshot. Hosts are
// sorted so repeated runs over the same input produce identical output.
func (a *PacketAccumulator) Summary() model.RunSummary {
	return model.RunSummary{
		TotalPackets:     a.total,
		ProtocolPackets:  a.matched,
		SuspectFunctions: a.suspect,
		UniqueHosts:      sortedHosts(a.hosts),
	}
}

func (a *PacketAccumulator) addHost(h string) {
	if h == "" {
		return
	}
	a.hosts[h] = struct{}{}
}

// ProbeAccumulator folds ProbeResults from one active scan.
type ProbeAccumulator struct {
	total  int
	reach  int
	unauth int
	broad  int
	hosts  map[string]struct{}
}

// NewProbeAccumulator returns an empty accumulator.
func NewProbeAccumulator() *ProbeAccumulator {
	return &ProbeAccumulator{hosts: make(map[string]struct{})}
}

// Add folds one probe outcome, degraded or not.
func (a *ProbeAccumulator) Add(res model.ProbeResult) {
	a.total++
	if res.Reachable {
		a.reach++
	}
	if res.Exposure.UnauthenticatedRead {
		a.unauth++
	}
	if res.Exposure.BroadRegisterAccess {
		a.broad++
	}
	if res.IP != "" {
		a.hosts[res.IP] = struct{}{}
	}
}

// Merge combines another accumulator into this one.
func (a *ProbeAccumulator) Merge(other *ProbeAccumulator) {
	a.total += other.total
	a.reach += other.reach
	a.unauth += other.unauth
	a.broad += other.broad
	for h := range other.hosts {
		a.hosts[h] = struct{}{}
	}
}

// Summary seals the accumulator into a read-only snapshot.
func (a *ProbeAccumulator) Summary() model.ScanRunSummary {
	return model.ScanRunSummary{
		TotalProbed:         a.total,
		Reachable:           a.reach,
		UnauthenticatedRead: a.unauth,
		BroadRegisterAccess: a.broad,
		UniqueHosts:         sortedHosts(a.hosts),
	}
}

func sortedHosts(set map[string]struct{}) []string {
	hosts := make([]string, 0, len(set))
	for h := range set {
		hosts = append(hosts, h)
	}
	sort.Strings(hosts)
	return hosts
}
