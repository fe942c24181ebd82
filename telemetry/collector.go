package telemetry

// Collector buffers per-tick samples and cuts them into fixed-length windows.
type Collector struct {
	windowTicks int
	tickDT      float64

	samples    []Sample
	wasOnFloor bool
}

// NewCollector creates a collector producing one window every windowSec
// seconds of simulated time.
func NewCollector(windowSec, tickDT float64) *Collector {
	ticks := int(windowSec/tickDT + 0.5)
	if ticks < 1 {
		ticks = 1
	}
	return &Collector{
		windowTicks: ticks,
		tickDT:      tickDT,
		samples:     make([]Sample, 0, ticks),
	}
}

// Record adds a sample and returns the finished window when it fills.
func (c *Collector) Record(s Sample) (WindowStats, bool) {
	c.samples = append(c.samples, s)
	if len(c.samples) < c.windowTicks {
		return WindowStats{}, false
	}
	return c.Flush()
}

// Flush aggregates whatever is buffered, even a partial window.
func (c *Collector) Flush() (WindowStats, bool) {
	if len(c.samples) == 0 {
		return WindowStats{}, false
	}
	ws := ComputeWindow(c.samples, c.wasOnFloor, c.tickDT)
	c.wasOnFloor = c.samples[len(c.samples)-1].OnFloor
	c.samples = c.samples[:0]
	return ws, true
}

// WindowTicks returns the window length in ticks.
func (c *Collector) WindowTicks() int {
	return c.windowTicks
}
