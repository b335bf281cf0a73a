package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/motifui/motif/internal/config"
	"github.com/motifui/motif/internal/style"
)

func fp(v float64) *float64 { return &v }

func radiusPatch(r float64) style.Patch {
	return style.Patch{Fill: &style.FillPatch{Radius: fp(r)}}
}

func opacityPatch(o float64) style.Patch {
	return style.Patch{Fill: &style.FillPatch{Opacity: fp(o)}}
}

// enterOnly is the standard-show configuration: one enter state, 200ms
// default transition, no repeat.
func enterOnly() *config.Animation {
	return &config.Animation{
		Transition: config.Transition{Duration: 0.2},
		Enter:      &config.State{Style: opacityPatch(0)},
	}
}

func loopingShow(cycles int, mode string) *config.Animation {
	return &config.Animation{
		Transition: config.Transition{Duration: 0.2},
		Repeat:     config.Repeat{Cycles: cycles, Mode: mode},
		Enter:      &config.State{Style: opacityPatch(0)},
		Initial:    &config.State{Style: radiusPatch(0)},
		Animate:    &config.State{Style: radiusPatch(10)},
	}
}

func newEngine(cfg *config.Animation) *Engine {
	e := New(nil)
	e.Setup(cfg)
	return e
}

func TestPlayShowStandard(t *testing.T) {
	t.Parallel()

	e := newEngine(enterOnly())

	h := e.PlayShow()
	require.False(t, h.Settled())

	// Snap applied the merged enter state before any tick.
	require.Equal(t, 0.0, e.Live().Fill.Opacity)
	require.True(t, e.TimelineActive())

	e.Advance(100 * time.Millisecond)
	require.InDelta(t, 0.5, e.Live().Fill.Opacity, 1e-9)

	e.Advance(100 * time.Millisecond)
	require.True(t, h.Settled())
	require.Equal(t, e.Baseline(), e.Live())
	require.False(t, e.TimelineActive())
	require.False(t, e.LoopActive())

	select {
	case <-h.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestPlayShowWithoutEnterSnaps(t *testing.T) {
	t.Parallel()

	e := newEngine(&config.Animation{Transition: config.Transition{Duration: 0.2}})

	h := e.PlayShow()
	require.True(t, h.Settled())
	require.Equal(t, e.Baseline(), e.Live())
	require.False(t, e.TimelineActive())
}

func TestPlayShowNoConfigurationIsNoop(t *testing.T) {
	t.Parallel()

	e := New(nil)
	require.True(t, e.PlayShow().Settled())
	require.True(t, e.PlayHide().Settled())
}

func TestPlayShowLoopBranch(t *testing.T) {
	t.Parallel()

	e := newEngine(loopingShow(-1, config.CycleYoyo))

	h := e.PlayShow()
	require.False(t, h.Settled())

	// Entrance tween runs on the timeline track for its 200ms.
	e.Advance(200 * time.Millisecond)
	require.True(t, h.Settled())
	require.True(t, e.LoopActive())
	require.False(t, e.TimelineActive())

	// The loop keeps mutating the live record after the show resolved.
	e.Advance(100 * time.Millisecond)
	first := e.Live().Fill.Radius
	e.Advance(60 * time.Millisecond)
	second := e.Live().Fill.Radius
	require.NotEqual(t, first, second)
	require.True(t, e.LoopActive())
}

func TestPlayShowLoopBranchPredicate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cfg  *config.Animation
		loop bool
	}{
		{name: "zero cycles disables loop", cfg: loopingShow(0, config.CycleRestart), loop: false},
		{name: "missing animate disables loop", cfg: func() *config.Animation {
			c := loopingShow(-1, config.CycleRestart)
			c.Animate = nil
			return c
		}(), loop: false},
		{name: "missing initial disables loop", cfg: func() *config.Animation {
			c := loopingShow(-1, config.CycleRestart)
			c.Initial = nil
			return c
		}(), loop: false},
		{name: "finite cycles loop", cfg: loopingShow(2, config.CycleRestart), loop: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			e := newEngine(tc.cfg)
			e.PlayShow()
			e.Advance(200 * time.Millisecond)
			require.Equal(t, tc.loop, e.LoopActive())
		})
	}
}

func TestPlayShowWithoutEnterStartsLoopImmediately(t *testing.T) {
	t.Parallel()

	cfg := loopingShow(-1, config.CycleRestart)
	cfg.Enter = nil
	e := newEngine(cfg)

	h := e.PlayShow()
	require.True(t, h.Settled())
	require.True(t, e.LoopActive())
	// Snapped to the initial state, not the baseline.
	require.Equal(t, 0.0, e.Live().Fill.Radius)
}

func TestFiniteLoopRecoversToNormal(t *testing.T) {
	t.Parallel()

	cfg := loopingShow(2, config.CycleRestart)
	cfg.Enter = nil
	cfg.Initial = &config.State{Style: radiusPatch(5)}
	e := newEngine(cfg)

	e.PlayShow()
	require.True(t, e.LoopActive())

	// Two 200ms cycles.
	e.Advance(400 * time.Millisecond)
	require.False(t, e.LoopActive())

	// The untracked recovery tween walks the live record back to Normal.
	e.Advance(200 * time.Millisecond)
	require.Equal(t, e.Baseline(), e.Live())
}

func TestPlayHideTweensToExit(t *testing.T) {
	t.Parallel()

	cfg := enterOnly()
	cfg.Exit = &config.State{
		Style:      opacityPatch(0),
		Transition: &config.Transition{Duration: 0.1},
	}
	e := newEngine(cfg)

	h := e.PlayHide()
	require.False(t, h.Settled())
	require.True(t, e.TimelineActive())

	e.Advance(50 * time.Millisecond)
	require.InDelta(t, 0.5, e.Live().Fill.Opacity, 1e-9)

	e.Advance(50 * time.Millisecond)
	require.True(t, h.Settled())
	require.Equal(t, 0.0, e.Live().Fill.Opacity)
}

func TestPlayHideWithoutExitResolvesImmediately(t *testing.T) {
	t.Parallel()

	e := newEngine(enterOnly())
	before := e.Live()

	h := e.PlayHide()
	require.True(t, h.Settled())
	require.False(t, e.TimelineActive())
	require.Equal(t, before, e.Live())
}

func TestPlayHideCancelsRunningLoop(t *testing.T) {
	t.Parallel()

	cfg := loopingShow(-1, config.CycleYoyo)
	cfg.Exit = &config.State{Style: opacityPatch(0)}
	e := newEngine(cfg)

	e.PlayShow()
	e.Advance(300 * time.Millisecond)
	require.True(t, e.LoopActive())

	e.PlayHide()
	require.False(t, e.LoopActive())
	require.True(t, e.TimelineActive())
}

func hoverConfig() *config.Animation {
	return &config.Animation{
		Transition: config.Transition{Duration: 1},
		Hover: &config.State{
			Style:      radiusPatch(10),
			Transition: &config.Transition{Duration: 0.1},
		},
		Press: &config.State{Style: radiusPatch(2)},
	}
}

func TestPlayStateRunsInteractionTween(t *testing.T) {
	t.Parallel()

	e := newEngine(hoverConfig())

	e.PlayState("hover")
	require.Equal(t, config.KeyHover, e.ActiveState())
	require.True(t, e.InteractionActive())

	e.Advance(50 * time.Millisecond)
	require.InDelta(t, 5.0, e.Live().Fill.Radius, 1e-9)

	e.Advance(50 * time.Millisecond)
	require.Equal(t, 10.0, e.Live().Fill.Radius)
	require.False(t, e.InteractionActive())
}

func TestPlayStateIdempotent(t *testing.T) {
	t.Parallel()

	e := newEngine(hoverConfig())

	e.PlayState("hover")
	first := e.interaction.tw
	e.Advance(50 * time.Millisecond)

	// A repeated request must not restart the tween.
	e.PlayState("hover")
	require.Same(t, first, e.interaction.tw)

	e.Advance(50 * time.Millisecond)
	require.Equal(t, 10.0, e.Live().Fill.Radius)
}

func TestPlayStateIgnoredWhileTimelineRuns(t *testing.T) {
	t.Parallel()

	cfg := hoverConfig()
	cfg.Enter = &config.State{Style: opacityPatch(0), Transition: &config.Transition{Duration: 0.2}}
	e := newEngine(cfg)

	e.PlayShow()
	e.PlayState("hover")
	require.Equal(t, config.KeyNormal, e.ActiveState())
	require.False(t, e.InteractionActive())

	// Once the entrance settles, interactions are accepted again.
	e.Advance(200 * time.Millisecond)
	e.PlayState("hover")
	require.Equal(t, config.KeyHover, e.ActiveState())
}

func TestPlayStateNotBlockedByIdleLoop(t *testing.T) {
	t.Parallel()

	cfg := loopingShow(-1, config.CycleYoyo)
	cfg.Enter = nil
	cfg.Hover = &config.State{Style: opacityPatch(0.2), Transition: &config.Transition{Duration: 0.1}}
	e := newEngine(cfg)

	e.PlayShow()
	require.True(t, e.LoopActive())

	e.PlayState("hover")
	require.True(t, e.InteractionActive())
	require.True(t, e.LoopActive())

	// Both tracks tick; the interaction write lands last within a step.
	e.Advance(100 * time.Millisecond)
	require.InDelta(t, 0.2, e.Live().Fill.Opacity, 1e-9)
}

func TestPlayStateIgnoresBadRequests(t *testing.T) {
	t.Parallel()

	e := newEngine(hoverConfig())

	e.PlayState("sparkle")  // unrecognized key
	e.PlayState("enter")    // not an interaction key
	e.PlayState("check")    // state unavailable
	e.PlayState("normal")   // already normal
	require.False(t, e.InteractionActive())
	require.Equal(t, config.KeyNormal, e.ActiveState())

	var unconfigured Engine
	unconfigured.PlayState("hover")
	require.False(t, unconfigured.InteractionActive())
}

func TestNormalRecoveryUsesOutgoingTransition(t *testing.T) {
	t.Parallel()

	// Default transition is a full second; hover's own is 100ms. The return
	// to normal must mirror hover's timing.
	e := newEngine(hoverConfig())

	e.PlayState("hover")
	e.Advance(100 * time.Millisecond)
	require.Equal(t, 10.0, e.Live().Fill.Radius)

	e.PlayState("normal")
	require.Equal(t, config.KeyNormal, e.ActiveState())

	e.Advance(50 * time.Millisecond)
	require.InDelta(t, 5.0, e.Live().Fill.Radius, 1e-9)

	e.Advance(50 * time.Millisecond)
	require.Equal(t, e.Baseline(), e.Live())
	require.False(t, e.InteractionActive())
}

func TestPressUsesDefaultTransition(t *testing.T) {
	t.Parallel()

	e := newEngine(hoverConfig())

	e.PlayState("press")
	e.Advance(500 * time.Millisecond)
	require.InDelta(t, 1.0, e.Live().Fill.Radius, 1e-9)
	require.True(t, e.InteractionActive())
}

func TestStopClearsAllState(t *testing.T) {
	t.Parallel()

	cfg := loopingShow(-1, config.CycleYoyo)
	cfg.Hover = &config.State{Style: radiusPatch(10)}
	e := newEngine(cfg)

	e.PlayShow()
	e.Advance(250 * time.Millisecond)
	e.PlayState("hover")
	require.True(t, e.LoopActive())
	require.True(t, e.InteractionActive())

	e.Stop()
	require.Equal(t, config.KeyNormal, e.ActiveState())
	require.False(t, e.TimelineActive())
	require.False(t, e.LoopActive())
	require.False(t, e.InteractionActive())

	// Stop is idempotent and safe with nothing running.
	e.Stop()

	// No further ticks mutate the live record.
	before := e.Live()
	e.Advance(time.Second)
	require.Equal(t, before, e.Live())
}

func TestSetBaselineSnapsLiveRecord(t *testing.T) {
	t.Parallel()

	e := newEngine(enterOnly())

	rec := style.Default()
	rec.Fill.Radius = 7
	e.SetBaseline(rec)

	require.Equal(t, rec, e.Baseline())
	require.Equal(t, rec, e.Live())

	// Named states resolve against the new baseline.
	e.PlayShow()
	e.Advance(200 * time.Millisecond)
	require.Equal(t, 7.0, e.Live().Fill.Radius)
}

func TestSetupReplacesConfiguration(t *testing.T) {
	t.Parallel()

	e := newEngine(hoverConfig())
	e.PlayState("hover")
	e.Advance(100 * time.Millisecond)

	replacement := &config.Animation{
		Transition: config.Transition{Duration: 0.2},
		Hover:      &config.State{Style: radiusPatch(3)},
	}
	e.Stop()
	e.Setup(replacement)

	e.PlayState("hover")
	e.Advance(200 * time.Millisecond)
	require.Equal(t, 3.0, e.Live().Fill.Radius)

	// Setup alone never starts a tween.
	e.Stop()
	e.Setup(replacement)
	require.False(t, e.TimelineActive())
	require.False(t, e.InteractionActive())
}
