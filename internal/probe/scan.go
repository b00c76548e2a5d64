package probe

// Concurrent scanning over a target list. Probes are independent blocking
// operations, so they run on a bounded worker pool: large target lists
// finish in reasonable time without hammering a live OT network.

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/model"
)

// DefaultWorkers bounds concurrent probes when no pool size is configured.
const DefaultWorkers = 8

// Scan probes every host on a bounded worker pool and returns one result
// per host, in input order. Cancelling ctx stops new probes from starting;
// probes already in flight run to their own timeout, and targets that
// never started still receive a degraded result recording the
// cancellation. No target is left without a result.
func (p Prober) Scan(ctx context.Context, hosts []string, workers int) []model.ProbeResult {
	if workers < 1 {
		workers = DefaultWorkers
	}

	results := make([]model.ProbeResult, len(hosts))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, host := range hosts {
		g.Go(func() error {
			if ctx.Err() != nil {
				results[i] = canceledResult(host, p.Port, p.UnitID)
			} else {
				results[i] = p.Probe(host)
			}
			if p.Sweep != nil {
				p.Sweep.Probed(results[i].Reachable)
			}
			return nil
		})
	}
	g.Wait()
	if p.Sweep != nil {
		p.Sweep.Finish()
	}

	return results
}

func canceledResult(host string, port int, unitID uint8) model.ProbeResult {
	return model.ProbeResult{
		IP:     host,
		Port:   port,
		UnitID: unitID,
		Errors: []string{"scan canceled before probe"},
	}
}
