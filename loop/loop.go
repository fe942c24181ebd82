// Package loop drives fixed-rate physics ticks and variable-rate render ticks
// from wall-clock frame times.
package loop

// Ticker receives the two callbacks of a frame.
type Ticker interface {
	OnPhysicsTick(dt float32)
	OnRenderTick(dt, fraction float32)
}

// Result describes what one Frame call did.
type Result struct {
	Steps    int     // physics ticks run
	Dropped  int     // ticks discarded because the frame exceeded MaxSteps
	Fraction float32 // interpolation fraction passed to the render tick
}

// Loop accumulates frame time into fixed physics steps.
type Loop struct {
	step     float32
	maxSteps int
	acc      float32
	ticks    int64
}

// New creates a loop running tickRate physics ticks per second.
// maxSteps caps the ticks run in a single frame; 0 means no cap.
func New(tickRate, maxSteps int) *Loop {
	if tickRate < 1 {
		tickRate = 60
	}
	return &Loop{
		step:     1 / float32(tickRate),
		maxSteps: maxSteps,
	}
}

// Frame advances by frameDt seconds: physics ticks first, then one render tick.
func (l *Loop) Frame(frameDt float32, t Ticker) Result {
	var res Result
	if frameDt > 0 {
		l.acc += frameDt
	}

	for l.acc >= l.step {
		if l.maxSteps > 0 && res.Steps >= l.maxSteps {
			res.Dropped = int(l.acc / l.step)
			l.acc -= float32(res.Dropped) * l.step
			break
		}
		t.OnPhysicsTick(l.step)
		l.acc -= l.step
		l.ticks++
		res.Steps++
	}

	res.Fraction = l.Fraction()
	t.OnRenderTick(frameDt, res.Fraction)
	return res
}

// Step runs exactly one physics tick followed by a render tick at fraction 1.
// Headless runs use this to advance without a clock.
func (l *Loop) Step(t Ticker) {
	t.OnPhysicsTick(l.step)
	l.ticks++
	t.OnRenderTick(l.step, 1)
}

// Fraction is the progress toward the next physics tick, in [0, 1].
func (l *Loop) Fraction() float32 {
	f := l.acc / l.step
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// StepDT returns the physics tick length in seconds.
func (l *Loop) StepDT() float32 {
	return l.step
}

// Ticks returns the number of physics ticks run so far.
func (l *Loop) Ticks() int64 {
	return l.ticks
}
