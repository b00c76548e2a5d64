package aggregate

import (
	"reflect"
	"testing"

	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/model"
)

func rec(src, dst, op string, suspect bool) model.PacketRecord {
	return model.PacketRecord{Src: src, Dst: dst, Function: op, Suspect: suspect}
}

func TestPacketAccumulatorFold(t *testing.T) {
	records := []model.PacketRecord{
		rec("10.0.0.1", "10.0.0.2", "Write", true),
		rec("10.0.0.1", "10.0.0.2", "Read", false),
		rec("10.0.0.1", "10.0.0.2", "Operate", true),
	}

	acc := NewPacketAccumulator()
	for range records {
		acc.CountFrame()
	}
	for _, r := range records {
		acc.Add(r)
	}

	s := acc.Summary()
	if s.TotalPackets != 3 || s.ProtocolPackets != 3 {
		t.Errorf("totals = %d/%d, want 3/3", s.TotalPackets, s.ProtocolPackets)
	}
	if s.SuspectFunctions != 2 {
		t.Errorf("SuspectFunctions = %d, want 2", s.SuspectFunctions)
	}
	want := []string{"10.0.0.1", "10.0.0.2"}
	if !reflect.DeepEqual(s.UniqueHosts, want) {
		t.Errorf("UniqueHosts = %v, want %v", s.UniqueHosts, want)
	}
}

func TestPacketAccumulatorOrderInsensitive(t *testing.T) {
	a := rec("10.0.0.1", "10.0.0.2", "Write", true)
	b := rec("10.0.0.3", "10.0.0.1", "Read", false)
	c := rec("10.0.0.2", "10.0.0.4", "Operate", true)

	forward := NewPacketAccumulator()
	for _, r := range []model.PacketRecord{a, b, c} {
		forward.CountFrame()
		forward.Add(r)
	}
	shuffled := NewPacketAccumulator()
	for _, r := range []model.PacketRecord{c, a, b} {
		shuffled.CountFrame()
		shuffled.Add(r)
	}

	if !reflect.DeepEqual(forward.Summary(), shuffled.Summary()) {
		t.Errorf("summaries differ: %+v vs %+v", forward.Summary(), shuffled.Summary())
	}
}

func TestPacketAccumulatorMerge(t *testing.T) {
	left := NewPacketAccumulator()
	left.CountFrame()
	left.Add(rec("10.0.0.1", "10.0.0.2", "Write", true))

	right := NewPacketAccumulator()
	right.CountFrame()
	right.CountFrame()
	right.Add(rec("10.0.0.2", "10.0.0.3", "Read", false))

	left.Merge(right)
	s := left.Summary()
	if s.TotalPackets != 3 || s.ProtocolPackets != 2 || s.SuspectFunctions != 1 {
		t.Errorf("summary = %+v, want totals 3/2/1", s)
	}
	want := []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"}
	if !reflect.DeepEqual(s.UniqueHosts, want) {
		t.Errorf("UniqueHosts = %v, want %v", s.UniqueHosts, want)
	}
}

func TestPacketAccumulatorDropsEmptyHosts(t *testing.T) {
	acc := NewPacketAccumulator()
	acc.CountFrame()
	acc.Add(rec("", "10.0.0.2", "Read", false))

	s := acc.Summary()
	want := []string{"10.0.0.2"}
	if !reflect.DeepEqual(s.UniqueHosts, want) {
		t.Errorf("UniqueHosts = %v, want %v", s.UniqueHosts, want)
	}
}

func TestProbeAccumulator(t *testing.T) {
	acc := NewProbeAccumulator()
	acc.Add(model.ProbeResult{IP: "10.0.0.1", Reachable: true, Exposure: model.Exposure{
		UnauthenticatedRead: true,
		BroadRegisterAccess: true,
	}})
	acc.Add(model.ProbeResult{IP: "10.0.0.2", Reachable: true})
	acc.Add(model.ProbeResult{IP: "10.0.0.3", Errors: []string{"connection failed"}})

	s := acc.Summary()
	if s.TotalProbed != 3 {
		t.Errorf("TotalProbed = %d, want 3", s.TotalProbed)
	}
	if s.Reachable != 2 {
		t.Errorf("Reachable = %d, want 2", s.Reachable)
	}
	if s.UnauthenticatedRead != 1 || s.BroadRegisterAccess != 1 {
		t.Errorf("exposure counts = %d/%d, want 1/1", s.UnauthenticatedRead, s.BroadRegisterAccess)
	}
	want := []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"}
	if !reflect.DeepEqual(s.UniqueHosts, want) {
		t.Errorf("UniqueHosts = %v, want %v", s.UniqueHosts, want)
	}
}

func TestProbeAccumulatorMerge(t *testing.T) {
	left := NewProbeAccumulator()
	left.Add(model.ProbeResult{IP: "10.0.0.1", Reachable: true})
	right := NewProbeAccumulator()
	right.Add(model.ProbeResult{IP: "10.0.0.1"})
	right.Add(model.ProbeResult{IP: "10.0.0.2", Reachable: true})

	left.Merge(right)
	s := left.Summary()
	if s.TotalProbed != 3 || s.Reachable != 2 {
		t.Errorf("summary = %+v, want 3 probed, 2 reachable", s)
	}
	if !reflect.DeepEqual(s.UniqueHosts, []string{"10.0.0.1", "10.0.0.2"}) {
		t.Errorf("UniqueHosts = %v", s.UniqueHosts)
	}
}
