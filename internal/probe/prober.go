package probe

// Read-only Modbus/TCP probing. A probe is deliberately minimal footprint:
// one connection, four small bounded reads, no retries, no writes. Every
// transport failure is recorded into the result instead of propagating; a
// probe always returns a ProbeResult, degraded if necessary.

import (
	"fmt"
	"math"
	"time"

	"github.com/goburrow/modbus"

	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/logging"
	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/model"
	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/progress"
)

// Read window bounds. Kept small so probing stays non-disruptive on live
// OT networks.
const (
	coilCount     = 16
	discreteCount = 16
	holdingCount  = 10
	inputCount    = 10
)

// DefaultTimeout is the per-probe timeout when none is configured.
const DefaultTimeout = 2 * time.Second

// Prober performs read-only probes against Modbus/TCP endpoints.
type Prober struct {
	Port    int
	UnitID  uint8
	Timeout time.Duration
	Logger  *logging.Logger
	Sweep   *progress.Sweep
}

// Probe connects to one host and attempts the four read windows. Each read
// is independent: a failure is recorded and the remaining reads still run.
// Latency covers the whole attempt, connect through close. The connection
// is released on every exit path.
func (p Prober) Probe(host string) (result model.ProbeResult) {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	result = model.ProbeResult{
		IP:     host,
		Port:   p.Port,
		UnitID: p.UnitID,
		Errors: []string{},
	}

	target := model.Target{Host: host, Port: p.Port, UnitID: p.UnitID}
	handler := modbus.NewTCPClientHandler(target.Addr())
	handler.Timeout = timeout
	handler.SlaveId = p.UnitID

	start := time.Now()
	defer func() {
		handler.Close()
		ms := math.Round(float64(time.Since(start).Microseconds())/10) / 100
		result.LatencyMS = &ms
		if p.Logger != nil {
			p.Logger.LogProbe(host, p.Port, result.Reachable, ms, len(result.Errors))
		}
	}()

	if err := handler.Connect(); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("connection failed: %v", err))
		return result
	}
	result.Reachable = true

	client := modbus.NewClient(handler)

	if data, err := client.ReadCoils(0, coilCount); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("coils_read_error: %v", err))
	} else {
		result.Reads.Coils = decodeBits(data, coilCount)
		result.Exposure.UnauthenticatedRead = true
	}

	if data, err := client.ReadDiscreteInputs(0, discreteCount); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("discrete_inputs_read_error: %v", err))
	} else {
		result.Reads.DiscreteInputs = decodeBits(data, discreteCount)
		result.Exposure.UnauthenticatedRead = true
	}

	if data, err := client.ReadHoldingRegisters(0, holdingCount); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("holding_registers_read_error: %v", err))
	} else {
		result.Reads.HoldingRegisters = decodeRegisters(data)
		result.Exposure.UnauthenticatedRead = true
	}

	if data, err := client.ReadInputRegisters(0, inputCount); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("input_registers_read_error: %v", err))
	} else {
		result.Reads.InputRegisters = decodeRegisters(data)
		result.Exposure.UnauthenticatedRead = true
	}

	// Reads succeeding across independent register classes indicate a
	// broadly exposed register map.
	result.Exposure.BroadRegisterAccess = result.Reads.Populated() >= 2

	return result
}
