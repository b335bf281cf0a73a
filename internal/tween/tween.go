// Package tween provides the host-stepped interpolation primitive underneath
// the animation engine. A Tween advances eased progress over wall-clock
// deltas supplied by the host's tick loop; it knows nothing about styles —
// progress is delivered through a callback and composed with interpolation by
// the caller.
package tween

import "time"

// Mode selects how progress behaves at cycle boundaries of a repeating tween.
type Mode int

const (
	// ModeRestart resets progress to 0 at each cycle boundary.
	ModeRestart Mode = iota
	// ModeYoyo reverses interpolation direction every other cycle.
	ModeYoyo
	// ModeIncremental carries each cycle's end value into the next cycle's
	// start, emitting progress beyond 1 so the caller's unclamped
	// interpolation accumulates the drift.
	ModeIncremental
)

// Spec describes one tween run.
type Spec struct {
	// Duration of a single cycle. A non-positive duration completes on the
	// first Advance after the delay.
	Duration time.Duration
	// Delay before the first progress emission.
	Delay time.Duration
	// Ease shapes progress within a cycle. Nil means Linear.
	Ease Func
	// Mode selects cycle-boundary behavior.
	Mode Mode
	// Cycles is the repeat count: -1 runs forever, 0 and 1 both run once,
	// N > 1 runs N cycles.
	Cycles int
	// OnTick receives eased progress on every Advance past the delay.
	OnTick func(t float64)
	// OnComplete runs once after the terminal OnTick when cycles are
	// exhausted. Stop never invokes it.
	OnComplete func()
}

// Tween is a single scheduled interpolation run. It is stepped cooperatively
// by the host (no internal goroutine or timer) and is not safe for concurrent
// use; the engine drives every tween from one tick loop.
type Tween struct {
	spec    Spec
	elapsed time.Duration
	alive   bool
	settled bool
	done    chan struct{}
}

// Start creates a live tween. No progress is emitted until the first Advance.
func Start(spec Spec) *Tween {
	if spec.Ease == nil {
		spec.Ease = Linear
	}
	return &Tween{
		spec:  spec,
		alive: true,
		done:  make(chan struct{}),
	}
}

// Alive reports whether the tween is still running. A stopped or completed
// tween is not alive.
func (tw *Tween) Alive() bool {
	return tw != nil && tw.alive
}

// Settled reports whether the tween ran to natural completion.
func (tw *Tween) Settled() bool {
	return tw != nil && tw.settled
}

// Done returns a channel closed on natural completion. Stop never closes it.
func (tw *Tween) Done() <-chan struct{} {
	return tw.done
}

// Stop cancels the tween immediately. No further progress is emitted and no
// completion signal fires. Safe to call on an already-dead tween.
func (tw *Tween) Stop() {
	if tw == nil {
		return
	}
	tw.alive = false
}

// Advance moves the tween forward by dt and emits eased progress. Once the
// configured cycles are exhausted it emits the terminal value exactly once,
// closes Done, and goes dead.
func (tw *Tween) Advance(dt time.Duration) {
	if tw == nil || !tw.alive {
		return
	}

	tw.elapsed += dt
	active := tw.elapsed - tw.spec.Delay
	if active < 0 {
		return
	}

	if tw.spec.Duration <= 0 {
		tw.finish()
		return
	}

	raw := float64(active) / float64(tw.spec.Duration)
	cycles := tw.spec.Cycles
	if cycles == 0 {
		cycles = 1
	}

	if cycles > 0 && raw >= float64(cycles) {
		tw.finish()
		return
	}

	cycle := int(raw)
	frac := raw - float64(cycle)
	tw.emit(cycle, frac)
}

// finish emits the terminal progress for the configured mode and completes.
func (tw *Tween) finish() {
	cycles := tw.spec.Cycles
	if cycles <= 0 {
		cycles = 1
	}
	tw.emit(cycles-1, 1)
	tw.alive = false
	tw.settled = true
	close(tw.done)
	if tw.spec.OnComplete != nil {
		tw.spec.OnComplete()
	}
}

func (tw *Tween) emit(cycle int, frac float64) {
	var t float64
	switch tw.spec.Mode {
	case ModeYoyo:
		if cycle%2 == 1 {
			frac = 1 - frac
		}
		t = tw.spec.Ease(frac)
	case ModeIncremental:
		t = float64(cycle) + tw.spec.Ease(frac)
	default:
		t = tw.spec.Ease(frac)
	}
	if tw.spec.OnTick != nil {
		tw.spec.OnTick(t)
	}
}
