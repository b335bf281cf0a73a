package motion

import (
	"github.com/motifui/motif/internal/config"
	"github.com/motifui/motif/internal/style"
	"github.com/motifui/motif/internal/tween"
)

// resolveState merges the named state's patch over the Normal baseline.
// Absent states resolve to the baseline unchanged; resolution never fails.
func (e *Engine) resolveState(key config.StateKey) style.Record {
	if def := e.cfg.State(key); def != nil {
		return style.Merge(e.baseline, def.Style)
	}
	return e.baseline
}

// resolveTransition returns the state's own transition override if present,
// else the configuration's default transition.
func (e *Engine) resolveTransition(key config.StateKey) config.Transition {
	if def := e.cfg.State(key); def != nil && def.Transition != nil {
		return *def.Transition
	}
	if e.cfg != nil {
		return e.cfg.Transition
	}
	return config.Transition{}
}

func cycleMode(name string) tween.Mode {
	switch name {
	case config.CycleYoyo:
		return tween.ModeYoyo
	case config.CycleIncremental:
		return tween.ModeIncremental
	default:
		return tween.ModeRestart
	}
}
