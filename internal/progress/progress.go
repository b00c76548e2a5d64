package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Sweep is a live counter for a probe sweep. Probes complete concurrently
// from worker goroutines, so every method is safe for concurrent use.
// Output goes to stderr so it never mixes with report output on stdout.
type Sweep struct {
	mu          sync.Mutex
	total       int
	done        int
	reachable   int
	startTime   time.Time
	lastUpdate  time.Time
	output      io.Writer
	enabled     bool
	description string
}

// NewSweep creates a sweep counter for total targets.
func NewSweep(total int, description string) *Sweep {
	return &Sweep{
		total:       total,
		startTime:   time.Now(),
		output:      os.Stderr,
		enabled:     true,
		description: description,
	}
}

// Disable silences the sweep counter.
func (s *Sweep) Disable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = false
}

// Probed records one completed probe.
func (s *Sweep) Probed(reachable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.done++
	if reachable {
		s.reachable++
	}
	s.render(false)
}

// Finish renders the final state and terminates the line.
func (s *Sweep) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled {
		return
	}
	s.render(true)
	fmt.Fprint(s.output, "\n")
}

// render is throttled to avoid flooding slow terminals. Callers hold mu.
func (s *Sweep) render(force bool) {
	if !s.enabled {
		return
	}
	now := time.Now()
	if !force && now.Sub(s.lastUpdate) < 100*time.Millisecond && s.done < s.total {
		return
	}
	s.lastUpdate = now

	var percent float64
	if s.total > 0 {
		percent = float64(s.done) / float64(s.total) * 100
	}
	elapsed := time.Since(s.startTime)

	line := fmt.Sprintf("%d/%d probed (%.1f%%) | %d reachable | %s",
		s.done, s.total, percent, s.reachable, formatDuration(elapsed))
	if s.description != "" {
		line = s.description + ": " + line
	}
	fmt.Fprint(s.output, "\r"+line)
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}
