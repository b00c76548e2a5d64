package index

// Multi-run consolidation. Each analysis or scan run persists one JSON
// document; the index builder folds a directory of those documents into
// per-protocol roll-ups and a global index. Individual documents that
// cannot be read or parsed are skipped with a recorded warning and
// contribute zero to every total; consolidation of the rest continues.

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/report"
)

// storedDocument is a tolerant view of a persisted run document. Only the
// fields the index consumes are declared; every one of them is optional so
// that passive and active run documents load through the same struct.
type storedDocument struct {
	Meta struct {
		GeneratedAt string   `json:"generated_at"`
		PCAPFile    string   `json:"pcap_file"`
		Targets     []string `json:"targets"`
	} `json:"meta"`
	Summary struct {
		TotalPackets     int      `json:"total_packets"`
		S7Packets        int      `json:"s7_packets"`
		DNP3Packets      int      `json:"dnp3_packets"`
		TotalProbed      int      `json:"total_probed"`
		SuspectFunctions int      `json:"suspect_functions"`
		UniqueHosts      []string `json:"unique_hosts"`
	} `json:"summary"`
}

// SourceEntry is one contributing run document, in discovery order.
type SourceEntry struct {
	File             string `json:"file"`
	Source           string `json:"source"`
	TotalPackets     int    `json:"total_packets"`
	ProtocolPackets  int    `json:"protocol_packets"`
	SuspectFunctions int    `json:"suspect_functions"`
	UniqueHosts      int    `json:"unique_hosts"`
}

// ProtocolRollup is the arithmetic sum of one protocol's run summaries.
type ProtocolRollup struct {
	Protocol         string        `json:"protocol"`
	RunsProcessed    int           `json:"runs_processed"`
	TotalPackets     int           `json:"total_packets"`
	ProtocolPackets  int           `json:"protocol_packets"`
	SuspectFunctions int           `json:"suspect_functions"`
	Sources          []SourceEntry `json:"sources"`
	Skipped          []string      `json:"skipped,omitempty"`
}

// GlobalIndex consolidates roll-ups across protocols. It is sealed once
// built; renderers and writers treat it as read-only data.
type GlobalIndex struct {
	GeneratedAt string           `json:"generated_at"`
	Protocols   []ProtocolRollup `json:"protocols"`
}

// LoadDir reads every .json run document under dir and folds it into a
// roll-up for the named protocol. A missing directory is an empty roll-up,
// not an error; the caller may index protocols that never ran. Sources
// keep directory listing order. RunsProcessed counts only documents that
// parsed; skipped documents are recorded by name with the reason.
func LoadDir(protocol, dir string) (ProtocolRollup, error) {
	rollup := ProtocolRollup{Protocol: protocol, Sources: []SourceEntry{}}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return rollup, nil
		}
		return rollup, fmt.Errorf("read summary directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			rollup.Skipped = append(rollup.Skipped, fmt.Sprintf("%s: %v", entry.Name(), err))
			continue
		}
		var doc storedDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			rollup.Skipped = append(rollup.Skipped, fmt.Sprintf("%s: %v", entry.Name(), err))
			continue
		}
		rollup.add(entry.Name(), doc)
	}

	return rollup, nil
}

func (r *ProtocolRollup) add(file string, doc storedDocument) {
	entry := SourceEntry{
		File:             file,
		Source:           doc.source(),
		TotalPackets:     doc.Summary.TotalPackets + doc.Summary.TotalProbed,
		ProtocolPackets:  doc.Summary.S7Packets + doc.Summary.DNP3Packets,
		SuspectFunctions: doc.Summary.SuspectFunctions,
		UniqueHosts:      len(doc.Summary.UniqueHosts),
	}
	r.RunsProcessed++
	r.TotalPackets += entry.TotalPackets
	r.ProtocolPackets += entry.ProtocolPackets
	r.SuspectFunctions += entry.SuspectFunctions
	r.Sources = append(r.Sources, entry)
}

// source names the capture or scan a document came from.
func (d storedDocument) source() string {
	if d.Meta.PCAPFile != "" {
		return d.Meta.PCAPFile
	}
	return strings.Join(d.Meta.Targets, ",")
}

// Consolidate seals roll-ups into a global index. Roll-up order is
// preserved as given; callers pass protocols in their fixed display order.
func Consolidate(rollups []ProtocolRollup) GlobalIndex {
	return GlobalIndex{
		GeneratedAt: report.FormatTimestamp(),
		Protocols:   rollups,
	}
}
