package report

// Persisted run-summary documents.
//
// The JSON shape of these documents is the contract between the engine and
// downstream indexing/reporting: field names and nesting are fixed and the
// index builder locates them by name (total_packets, s7_packets,
// dnp3_packets, total_probed, suspect_functions, unique_hosts).

import (
	"fmt"

	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/model"
)

// Document is one persisted run summary: meta, per-unit results, summary.
type Document struct {
	Meta    any `json:"meta"`
	Results any `json:"results"`
	Summary any `json:"summary"`
}

// PassiveMeta describes one capture analysis run.
type PassiveMeta struct {
	GeneratedAt string `json:"generated_at"`
	PCAPFile    string `json:"pcap_file"`
	Filter      string `json:"filter"`
}

// ScanMeta describes one active scan run.
type ScanMeta struct {
	GeneratedAt string   `json:"generated_at"`
	Targets     []string `json:"targets"`
	Port        int      `json:"port"`
	UnitID      uint8    `json:"unit_id"`
	TimeoutMS   int64    `json:"timeout_ms"`
}

// S7Summary is the sealed summary of an S7Comm capture run.
type S7Summary struct {
	TotalPackets     int      `json:"total_packets"`
	S7Packets        int      `json:"s7_packets"`
	SuspectFunctions int      `json:"suspect_functions"`
	UniqueHosts      []string `json:"unique_hosts"`
}

// DNP3Summary is the sealed summary of a DNP3 capture run.
type DNP3Summary struct {
	TotalPackets     int      `json:"total_packets"`
	DNP3Packets      int      `json:"dnp3_packets"`
	SuspectFunctions int      `json:"suspect_functions"`
	UniqueHosts      []string `json:"unique_hosts"`
}

// ScanSummary is the sealed summary of an active Modbus scan.
type ScanSummary struct {
	TotalProbed         int      `json:"total_probed"`
	Reachable           int      `json:"reachable"`
	UnauthenticatedRead int      `json:"unauthenticated_read"`
	BroadRegisterAccess int      `json:"broad_register_access"`
	UniqueHosts         []string `json:"unique_hosts"`
}

// Protocol keys accepted by NewPassiveDocument.
const (
	ProtocolS7   = "s7comm"
	ProtocolDNP3 = "dnp3"
)

// NewPassiveDocument builds the persisted document for one capture run.
func NewPassiveDocument(protocol, pcapFile, filter string, records []model.PacketRecord, s model.RunSummary) (Document, error) {
	if records == nil {
		records = []model.PacketRecord{}
	}

	var summary any
	switch protocol {
	case ProtocolS7:
		summary = S7Summary{
			TotalPackets:     s.TotalPackets,
			S7Packets:        s.ProtocolPackets,
			SuspectFunctions: s.SuspectFunctions,
			UniqueHosts:      s.UniqueHosts,
		}
	case ProtocolDNP3:
		summary = DNP3Summary{
			TotalPackets:     s.TotalPackets,
			DNP3Packets:      s.ProtocolPackets,
			SuspectFunctions: s.SuspectFunctions,
			UniqueHosts:      s.UniqueHosts,
		}
	default:
		return Document{}, fmt.Errorf("unknown protocol %q", protocol)
	}

	return Document{
		Meta: PassiveMeta{
			GeneratedAt: FormatTimestamp(),
			PCAPFile:    pcapFile,
			Filter:      filter,
		},
		Results: records,
		Summary: summary,
	}, nil
}

// NewScanDocument builds the persisted document for one active scan run.
func NewScanDocument(meta ScanMeta, results []model.ProbeResult, s model.ScanRunSummary) Document {
	if results == nil {
		results = []model.ProbeResult{}
	}
	if meta.GeneratedAt == "" {
		meta.GeneratedAt = FormatTimestamp()
	}
	return Document{
		Meta:    meta,
		Results: results,
		Summary: ScanSummary{
			TotalProbed:         s.TotalProbed,
			Reachable:           s.Reachable,
			UnauthenticatedRead: s.UnauthenticatedRead,
			BroadRegisterAccess: s.BroadRegisterAccess,
			UniqueHosts:         s.UniqueHosts,
		},
	}
}
