package model

import (
	"net"
	"strconv"
)

// Target is a network endpoint to probe actively. Targets are ephemeral:
// they are expanded from CLI input and never persisted on their own.
type Target struct {
	Host   string
	Port   int
	UnitID uint8
}

// Addr returns the host:port dial address for the target.
func (t Target) Addr() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

// ReadWindows holds the four bounded read windows of a Modbus probe.
// A nil slice means the read failed or was never attempted; an empty
// non-nil slice is a successful read that returned no values.
type ReadWindows struct {
	Coils            []bool   `json:"coils"`
	DiscreteInputs   []bool   `json:"discrete_inputs"`
	HoldingRegisters []uint16 `json:"holding_registers"`
	InputRegisters   []uint16 `json:"input_registers"`
}

// Populated returns how many of the four windows hold at least one value.
func (w ReadWindows) Populated() int {
	n := 0
	if len(w.Coils) > 0 {
		n++
	}
	if len(w.DiscreteInputs) > 0 {
		n++
	}
	if len(w.HoldingRegisters) > 0 {
		n++
	}
	if len(w.InputRegisters) > 0 {
		n++
	}
	return n
}

// Exposure carries the two independent exposure flags of a probe.
// UnauthenticatedRead is set as soon as any read returns data: Modbus/TCP
// has no authentication layer, so every successful read is unauthenticated.
// BroadRegisterAccess is set iff at least two read windows are non-empty.
type Exposure struct {
	UnauthenticatedRead bool `json:"unauthenticated_read"`
	BroadRegisterAccess bool `json:"broad_register_access"`
}

// ProbeResult is the outcome of probing one target. It is created once per
// probe attempt and immutable afterwards. A probe always yields a result,
// degraded if necessary; transport failures land in Errors.
type ProbeResult struct {
	IP        string      `json:"ip"`
	Port      int         `json:"port"`
	UnitID    uint8       `json:"unit_id"`
	Reachable bool        `json:"reachable"`
	LatencyMS *float64    `json:"latency_ms"`
	Reads     ReadWindows `json:"reads"`
	Exposure  Exposure    `json:"exposure"`
	Errors    []string    `json:"errors"`
}
