package pcap

import (
	"net"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// buildFrame serializes an Ethernet/IPv4/transport frame and decodes it
// back into a gopacket.Packet, the same shape an offline capture yields.
func buildFrame(t *testing.T, udp bool, srcIP, dstIP string, srcPort, dstPort uint16, payload []byte) gopacket.Packet {
	t.Helper()

	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x00, 0x0c, 0x29, 0x01, 0x02, 0x03},
		DstMAC:       net.HardwareAddr{0x00, 0x0c, 0x29, 0x04, 0x05, 0x06},
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		Version: 4,
		TTL:     64,
		SrcIP:   net.ParseIP(srcIP).To4(),
		DstIP:   net.ParseIP(dstIP).To4(),
	}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}

	var err error
	if udp {
		ip.Protocol = layers.IPProtocolUDP
		trans := &layers.UDP{SrcPort: layers.UDPPort(srcPort), DstPort: layers.UDPPort(dstPort)}
		if err = trans.SetNetworkLayerForChecksum(ip); err != nil {
			t.Fatalf("checksum setup: %v", err)
		}
		err = gopacket.SerializeLayers(buf, opts, eth, ip, trans, gopacket.Payload(payload))
	} else {
		ip.Protocol = layers.IPProtocolTCP
		trans := &layers.TCP{SrcPort: layers.TCPPort(srcPort), DstPort: layers.TCPPort(dstPort), PSH: true, ACK: true}
		if err = trans.SetNetworkLayerForChecksum(ip); err != nil {
			t.Fatalf("checksum setup: %v", err)
		}
		err = gopacket.SerializeLayers(buf, opts, eth, ip, trans, gopacket.Payload(payload))
	}
	if err != nil {
		t.Fatalf("serialize frame: %v", err)
	}

	return gopacket.NewPacket(buf.Bytes(), layers.LayerTypeEthernet, gopacket.Default)
}

func TestAdmitted(t *testing.T) {
	tests := []struct {
		name     string
		udp      bool
		srcPort  uint16
		dstPort  uint16
		port     uint16
		allowUDP bool
		want     bool
	}{
		{"tcp dst match", false, 49152, 102, 102, false, true},
		{"tcp src match", false, 102, 49152, 102, false, true},
		{"tcp no match", false, 49152, 8080, 102, false, false},
		{"udp allowed", true, 49152, 20000, 20000, true, true},
		{"udp stream-only protocol", true, 49152, 102, 102, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkt := buildFrame(t, tt.udp, "10.0.0.1", "10.0.0.2", tt.srcPort, tt.dstPort, []byte("payload"))
			if got := Admitted(pkt, tt.port, tt.allowUDP); got != tt.want {
				t.Errorf("Admitted = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnalyzeDNP3(t *testing.T) {
	frames := []gopacket.Packet{
		buildFrame(t, false, "10.0.0.1", "10.0.0.2", 49152, 20000, []byte("WRITE group 10")),
		buildFrame(t, true, "10.0.0.3", "10.0.0.2", 49153, 20000, []byte("READ class 0")),
		// Wrong port: counted in the total, never classified.
		buildFrame(t, false, "10.0.0.9", "10.0.0.2", 49154, 8080, []byte("WRITE")),
	}

	analysis := DNP3.Analyze(frames)
	s := analysis.Summary
	if s.TotalPackets != 3 {
		t.Errorf("TotalPackets = %d, want 3", s.TotalPackets)
	}
	if s.ProtocolPackets != 2 {
		t.Errorf("ProtocolPackets = %d, want 2", s.ProtocolPackets)
	}
	if s.SuspectFunctions != 1 {
		t.Errorf("SuspectFunctions = %d, want 1", s.SuspectFunctions)
	}
	wantHosts := []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"}
	if !reflect.DeepEqual(s.UniqueHosts, wantHosts) {
		t.Errorf("UniqueHosts = %v, want %v", s.UniqueHosts, wantHosts)
	}

	if len(analysis.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(analysis.Records))
	}
	first := analysis.Records[0]
	if first.Function != "Write" || !first.Suspect {
		t.Errorf("first record = %+v, want suspect Write", first)
	}
	if first.Src != "10.0.0.1" || first.Dst != "10.0.0.2" {
		t.Errorf("first record endpoints = %s -> %s", first.Src, first.Dst)
	}
	if first.Length != len("WRITE group 10") {
		t.Errorf("first record length = %d", first.Length)
	}
}

func TestAnalyzeS7DropsNonS7Payloads(t *testing.T) {
	valid := make([]byte, 16)
	valid[0] = 0x32
	valid[1] = 0x03 // Stop

	frames := []gopacket.Packet{
		buildFrame(t, false, "10.0.0.1", "10.0.0.2", 49152, 102, valid),
		// Right port, but not an S7 PDU: admitted then dropped.
		buildFrame(t, false, "10.0.0.5", "10.0.0.2", 49153, 102, []byte("HTTP/1.1 200 OK\r\n")),
	}

	analysis := S7.Analyze(frames)
	s := analysis.Summary
	if s.TotalPackets != 2 || s.ProtocolPackets != 1 {
		t.Errorf("totals = %d/%d, want 2/1", s.TotalPackets, s.ProtocolPackets)
	}
	if s.SuspectFunctions != 1 {
		t.Errorf("SuspectFunctions = %d, want 1", s.SuspectFunctions)
	}
	if len(analysis.Records) != 1 || analysis.Records[0].Function != "Stop" {
		t.Errorf("records = %+v, want one Stop record", analysis.Records)
	}
	// The dropped frame's hosts never enter the host set.
	wantHosts := []string{"10.0.0.1", "10.0.0.2"}
	if !reflect.DeepEqual(s.UniqueHosts, wantHosts) {
		t.Errorf("UniqueHosts = %v, want %v", s.UniqueHosts, wantHosts)
	}
}

func TestAnalyzeEmptyIsValid(t *testing.T) {
	analysis := DNP3.Analyze(nil)
	if analysis.Summary.TotalPackets != 0 {
		t.Errorf("TotalPackets = %d, want 0", analysis.Summary.TotalPackets)
	}
	if analysis.Records == nil {
		t.Error("Records must be an empty slice, not nil")
	}
	if len(analysis.Summary.UniqueHosts) != 0 {
		t.Errorf("UniqueHosts = %v, want empty", analysis.Summary.UniqueHosts)
	}
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pcap", "a.pcapng", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := CollectFiles(dir)
	if err != nil {
		t.Fatalf("CollectFiles: %v", err)
	}
	want := []string{filepath.Join(dir, "a.pcapng"), filepath.Join(dir, "b.pcap")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CollectFiles = %v, want %v", got, want)
	}
}

func TestFilterTracksPort(t *testing.T) {
	if got := S7.Filter(); got != "tcp port 102" {
		t.Errorf("S7 filter = %q", got)
	}
	if got := DNP3.Filter(); got != "tcp or udp port 20000" {
		t.Errorf("DNP3 filter = %q", got)
	}

	// A reconfigured port must be reflected in the filter expression.
	proto := S7
	proto.Port = 10102
	if got := proto.Filter(); got != "tcp port 10102" {
		t.Errorf("filter = %q, want %q", got, "tcp port 10102")
	}
	udp := DNP3
	udp.Port = 20001
	if got := udp.Filter(); got != "tcp or udp port 20001" {
		t.Errorf("filter = %q, want %q", got, "tcp or udp port 20001")
	}
}
