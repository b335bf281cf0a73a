// Package motion implements the animation engine: a dual-track state machine
// that resolves named style states into concrete records and drives tweens
// over them. The timeline track owns entrance/exit motion and the idle loop;
// the interaction track owns hover/press/check overrides. Both write the
// shared live record; the host steps everything from one tick loop, so the
// engine uses no locks.
package motion

import (
	"time"

	"github.com/motifui/motif/internal/config"
	"github.com/motifui/motif/internal/logger"
	"github.com/motifui/motif/internal/style"
	"github.com/motifui/motif/internal/tween"
)

// Engine animates one element. All methods must be called from the host's
// tick goroutine.
type Engine struct {
	log *logger.Logger

	cfg      *config.Animation
	baseline style.Record
	live     style.Record

	active  config.StateKey
	looping bool

	timeline    track
	loop        track
	interaction track
}

// New creates an engine resting at the default baseline with no
// configuration. Log may be nil.
func New(log *logger.Logger) *Engine {
	return &Engine{
		log:      log,
		baseline: style.Default(),
		live:     style.Default(),
		active:   config.KeyNormal,
	}
}

// Setup replaces the active animation configuration. It never starts a
// tween; targets are resolved lazily so no reference into a previous
// configuration survives the swap. A nil configuration disables animation.
func (e *Engine) Setup(cfg *config.Animation) {
	e.cfg = cfg
	e.log.Debug("animation configuration replaced")
}

// SetBaseline installs the element's resting record (the Normal anchor that
// every named state is merged on top of) and snaps the live record to it.
// Hosts call this whenever static style is (re)applied, e.g. on hot reload.
func (e *Engine) SetBaseline(rec style.Record) {
	e.baseline = rec
	e.live = rec
}

// Baseline returns the Normal anchor record.
func (e *Engine) Baseline() style.Record {
	return e.baseline
}

// Live returns the record produced by the most recent tick.
func (e *Engine) Live() style.Record {
	return e.live
}

// ActiveState returns the interaction key currently applied.
func (e *Engine) ActiveState() config.StateKey {
	return e.active
}

// TimelineActive reports whether an entrance or exit tween is running.
func (e *Engine) TimelineActive() bool {
	return e.timeline.alive()
}

// LoopActive reports whether the idle loop is running.
func (e *Engine) LoopActive() bool {
	return e.looping
}

// InteractionActive reports whether an interaction tween is running.
func (e *Engine) InteractionActive() bool {
	return e.interaction.alive()
}

// Stop cancels all tracks immediately. No completion signals fire. The
// interaction key resets to Normal and the loop flag clears. Safe to call in
// any state, including with nothing running.
func (e *Engine) Stop() {
	e.timeline.stop()
	e.loop.stop()
	e.interaction.stop()
	e.active = config.KeyNormal
	e.looping = false
}

// Advance steps every live tween by dt. Within a tick the timeline write
// lands first, then the loop, then the interaction, so when tracks overlap
// the interaction's write is the one observed (deterministic last write
// wins).
func (e *Engine) Advance(dt time.Duration) {
	e.timeline.advance(dt)
	e.loop.advance(dt)
	e.interaction.advance(dt)
}

// PlayShow runs the entrance sequence. With both a nonzero repeat and
// initial+animate states the entrance settles into the idle loop; otherwise
// it settles at Normal. The returned handle resolves when the entrance
// settles (for the loop branch: when the enter tween lands on the initial
// state — the loop itself is fire-and-forget). With no configuration the
// handle is already settled.
func (e *Engine) PlayShow() *Handle {
	if e.cfg == nil {
		return settledHandle()
	}

	e.Stop()

	loopBranch := e.cfg.Repeat.Cycles != 0 && e.cfg.Initial != nil && e.cfg.Animate != nil

	if e.cfg.Enter == nil {
		if loopBranch {
			e.live = e.resolveState(config.KeyInitial)
			e.startLoop()
		} else {
			e.live = e.baseline
		}
		return settledHandle()
	}

	// Snap to the merged enter state, then tween away from it.
	from := style.Merge(e.baseline, e.cfg.Enter.Style)
	e.live = from

	to := e.baseline
	if loopBranch {
		to = e.resolveState(config.KeyInitial)
	}

	h := newHandle()
	e.startTrackTween(&e.timeline, from, to, e.resolveTransition(config.KeyEnter), func() {
		if loopBranch {
			e.startLoop()
		}
		h.resolve()
	})
	e.log.Debug("show entrance started")
	return h
}

// PlayHide runs the exit sequence: a hard stop, then a tween from the
// current live record to the merged exit state. Without an exit state (or
// any configuration) it is a no-op and the handle is already settled.
func (e *Engine) PlayHide() *Handle {
	if e.cfg == nil || e.cfg.Exit == nil {
		return settledHandle()
	}

	e.Stop()

	h := newHandle()
	e.startTrackTween(&e.timeline, e.live, e.resolveState(config.KeyExit), e.resolveTransition(config.KeyExit), func() {
		h.resolve()
	})
	e.log.Debug("hide exit started")
	return h
}

// PlayState requests an interaction state change (normal, hover, press,
// check). The request is ignored when no configuration is set, while the
// timeline track is mid-tween, for unrecognized or non-interaction keys,
// for unavailable states, and when the key already is the active one.
// Returning to Normal reuses the outgoing interaction's own transition so
// entry and recovery are symmetric.
func (e *Engine) PlayState(key string) {
	if e.cfg == nil {
		return
	}
	if e.timeline.alive() {
		e.log.Debug("interaction ignored: timeline busy")
		return
	}

	k, ok := config.ParseStateKey(key)
	if !ok || !k.Interaction() {
		return
	}
	if k != config.KeyNormal && e.cfg.State(k) == nil {
		return
	}
	if k == e.active {
		return
	}

	var tr config.Transition
	if k == config.KeyNormal {
		tr = e.resolveTransition(e.active)
	} else {
		tr = e.resolveTransition(k)
	}

	e.active = k
	e.startTrackTween(&e.interaction, e.live, e.resolveState(k), tr, nil)
	e.log.WithFields(map[string]any{"state": k.String()}).Debug("interaction started")
}

// startLoop begins the Initial↔Animate idle loop on the loop slot using the
// default transition's duration and ease. When a finite loop exhausts its
// cycles the loop flag clears and an untracked recovery tween returns the
// element to Normal.
func (e *Engine) startLoop() {
	from := e.resolveState(config.KeyInitial)
	to := e.resolveState(config.KeyAnimate)
	duration, _ := e.cfg.Transition.Timing()
	ease, ok := tween.EaseByName(e.cfg.Transition.Ease)
	if !ok {
		ease = tween.Linear
	}

	e.looping = true
	e.loop.start(tween.Spec{
		Duration: duration,
		Ease:     ease,
		Mode:     cycleMode(e.cfg.Repeat.Mode),
		Cycles:   e.cfg.Repeat.Cycles,
		OnTick: func(t float64) {
			e.live = style.Lerp(from, to, t)
		},
		OnComplete: func() {
			e.looping = false
			e.startTrackTween(&e.loop, e.live, e.baseline, e.cfg.Transition, nil)
		},
	})
	e.log.Debug("idle loop started")
}

// startTrackTween replaces the track's tween with one interpolating the live
// record between two resolved targets under the given transition.
func (e *Engine) startTrackTween(tr *track, from, to style.Record, t config.Transition, onComplete func()) {
	duration, delay := t.Timing()
	ease, ok := tween.EaseByName(t.Ease)
	if !ok {
		ease = tween.Linear
	}

	tr.start(tween.Spec{
		Duration: duration,
		Delay:    delay,
		Ease:     ease,
		Cycles:   1,
		OnTick: func(p float64) {
			e.live = style.Lerp(from, to, p)
		},
		OnComplete: onComplete,
	})
}
