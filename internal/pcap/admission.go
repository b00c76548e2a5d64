package pcap

// Packet admission: deciding whether a captured frame belongs to the
// protocol under analysis. Admission looks at transport ports only and
// never inspects payloads.

import (
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// Admitted reports whether a frame carries a TCP segment (or a UDP
// datagram, when allowUDP is set) whose source or destination port equals
// the protocol's well-known port. It is a pure, stateless predicate.
func Admitted(pkt gopacket.Packet, port uint16, allowUDP bool) bool {
	if tcpLayer := pkt.Layer(layers.LayerTypeTCP); tcpLayer != nil {
		tcp := tcpLayer.(*layers.TCP)
		return uint16(tcp.SrcPort) == port || uint16(tcp.DstPort) == port
	}
	if !allowUDP {
		return false
	}
	if udpLayer := pkt.Layer(layers.LayerTypeUDP); udpLayer != nil {
		udp := udpLayer.(*layers.UDP)
		return uint16(udp.SrcPort) == port || uint16(udp.DstPort) == port
	}
	return false
}

// endpoints extracts source and destination host addresses from the
// network layer. Frames without one yield empty strings, which the
// aggregator drops from host sets.
func endpoints(pkt gopacket.Packet) (src, dst string) {
	netLayer := pkt.NetworkLayer()
	if netLayer == nil {
		return "", ""
	}
	flow := netLayer.NetworkFlow()
	return flow.Src().String(), flow.Dst().String()
}
