package config

import (
	"time"

	"github.com/motifui/motif/internal/style"
)

// Sheet is a full style sheet document: one or more element definitions,
// each carrying a base appearance patch and an optional animation block.
type Sheet struct {
	Version  string    `yaml:"version" validate:"required"`
	Name     string    `yaml:"name,omitempty" validate:"omitempty,max=100"`
	Elements []Element `yaml:"elements" validate:"required,min=1,dive"`
}

// Element describes one animatable UI element.
type Element struct {
	ID        string      `yaml:"id" validate:"required,element_id"`
	Base      style.Patch `yaml:"base,omitempty"`
	Animation *Animation  `yaml:"animation,omitempty"`
}

// Element returns the definition with the given id, or nil.
func (s *Sheet) Element(id string) *Element {
	if s == nil {
		return nil
	}
	for i := range s.Elements {
		if s.Elements[i].ID == id {
			return &s.Elements[i]
		}
	}
	return nil
}

// Animation is a resolved set of named target states with a default
// transition and a repeat specification. Absent states simply do not
// participate; the engine degrades to the element's resting appearance.
type Animation struct {
	Transition Transition `yaml:"transition,omitempty"`
	Repeat     Repeat     `yaml:"repeat,omitempty"`

	Enter   *State `yaml:"enter,omitempty"`
	Exit    *State `yaml:"exit,omitempty"`
	Initial *State `yaml:"initial,omitempty"`
	Animate *State `yaml:"animate,omitempty"`
	Hover   *State `yaml:"hover,omitempty"`
	Press   *State `yaml:"press,omitempty"`
	Check   *State `yaml:"check,omitempty"`
}

// State pairs a style patch with an optional transition override. A nil
// Transition falls back to the animation's default transition.
type State struct {
	Style      style.Patch `yaml:"style,omitempty"`
	Transition *Transition `yaml:"transition,omitempty"`
}

// State returns the definition for key, or nil when the state is absent.
// KeyNormal always resolves to nil: the baseline has no definition slot.
func (a *Animation) State(key StateKey) *State {
	if a == nil {
		return nil
	}
	switch key {
	case KeyEnter:
		return a.Enter
	case KeyExit:
		return a.Exit
	case KeyInitial:
		return a.Initial
	case KeyAnimate:
		return a.Animate
	case KeyHover:
		return a.Hover
	case KeyPress:
		return a.Press
	case KeyCheck:
		return a.Check
	default:
		return nil
	}
}

// Transition holds timing for one tween: duration and delay in seconds plus
// an easing id. The zero value is an instant transition with linear easing.
type Transition struct {
	Duration float64 `yaml:"duration" validate:"gte=0"`
	Delay    float64 `yaml:"delay,omitempty" validate:"gte=0"`
	Ease     string  `yaml:"ease,omitempty" validate:"omitempty,ease"`
}

// Timing converts the seconds-based fields into durations.
func (t Transition) Timing() (duration, delay time.Duration) {
	return time.Duration(t.Duration * float64(time.Second)),
		time.Duration(t.Delay * float64(time.Second))
}

// Cycle mode names accepted in a Repeat spec.
const (
	CycleRestart     = "restart"
	CycleYoyo        = "yoyo"
	CycleIncremental = "incremental"
)

// Repeat specifies idle-loop cycling: Cycles is -1 for unbounded, 0 or 1 for
// a single pass, N for N cycles. Mode defaults to restart.
type Repeat struct {
	Cycles int    `yaml:"cycles,omitempty" validate:"gte=-1"`
	Mode   string `yaml:"mode,omitempty" validate:"omitempty,oneof=restart yoyo incremental"`
}
