package pcap

// Per-capture analysis: admission, classification, and aggregation over
// one PCAP file. Each frame is classified independently; there is no
// session or state tracking across frames.

import (
	"fmt"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcap"

	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/aggregate"
	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/dnp3"
	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/model"
	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/s7"
)

// Protocol describes one analyzable protocol: its admission parameters and
// its classifier.
type Protocol struct {
	Name     string
	Port     uint16
	AllowUDP bool
	Classify func([]byte) model.Classification

	// Drop names a classifier sentinel whose records are excluded from
	// the run entirely (admitted by port but not protocol traffic).
	Drop string
}

// Filter returns the capture filter expression implied by the admission
// parameters. Derived from Port so a reconfigured port is always reflected
// in the persisted filter string.
func (p Protocol) Filter() string {
	if p.AllowUDP {
		return fmt.Sprintf("tcp or udp port %d", p.Port)
	}
	return fmt.Sprintf("tcp port %d", p.Port)
}

// S7 analyzes Siemens S7Comm traffic on TCP port 102. Admitted frames
// whose payload fails the S7 header gate are dropped, not recorded.
var S7 = Protocol{
	Name:     "s7comm",
	Port:     s7.Port,
	Classify: s7.Classify,
	Drop:     s7.OpNonS7Payload,
}

// DNP3 analyzes DNP3 traffic on TCP/UDP port 20000. Unrecognized payloads
// are kept as UnknownDNP3 records.
var DNP3 = Protocol{
	Name:     "dnp3",
	Port:     dnp3.Port,
	AllowUDP: true,
	Classify: dnp3.Classify,
}

// Analysis is the sealed outcome of one capture run.
type Analysis struct {
	Records []model.PacketRecord
	Summary model.RunSummary
}

// AnalyzeFile runs the protocol's classification pass over a capture file.
// A capture that yields zero admitted frames is a valid, empty analysis;
// only failure to open the capture is an error.
func (p Protocol) AnalyzeFile(path string) (*Analysis, error) {
	handle, err := pcap.OpenOffline(path)
	if err != nil {
		return nil, fmt.Errorf("open pcap file: %w", err)
	}
	defer handle.Close()

	source := gopacket.NewPacketSource(handle, handle.LinkType())
	var frames []gopacket.Packet
	for pkt := range source.Packets() {
		frames = append(frames, pkt)
	}
	return p.Analyze(frames), nil
}

// Analyze folds an already-materialized frame sequence into records and a
// sealed summary. Classification failures never abort the pass: frames
// that do not classify simply contribute nothing beyond the total count.
func (p Protocol) Analyze(frames []gopacket.Packet) *Analysis {
	acc := aggregate.NewPacketAccumulator()
	records := []model.PacketRecord{}

	for _, pkt := range frames {
		acc.CountFrame()
		if !Admitted(pkt, p.Port, p.AllowUDP) {
			continue
		}
		app := pkt.ApplicationLayer()
		if app == nil || len(app.Payload()) == 0 {
			continue
		}
		rec, ok := p.record(pkt, app.Payload())
		if !ok {
			continue
		}
		records = append(records, rec)
		acc.Add(rec)
	}

	return &Analysis{Records: records, Summary: acc.Summary()}
}

// record classifies one admitted payload into a PacketRecord.
func (p Protocol) record(pkt gopacket.Packet, payload []byte) (model.PacketRecord, bool) {
	c := p.Classify(payload)
	if p.Drop != "" && c.Operation == p.Drop {
		return model.PacketRecord{}, false
	}
	src, dst := endpoints(pkt)
	return model.PacketRecord{
		Src:      src,
		Dst:      dst,
		Function: c.Operation,
		Length:   len(payload),
		Hints:    c.Hints,
		Suspect:  c.Suspect,
	}, true
}
