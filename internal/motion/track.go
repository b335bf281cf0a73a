package motion

import (
	"time"

	"github.com/motifui/motif/internal/tween"
)

// track owns at most one live tween. Starting a new tween always stops the
// previous one first, which is the engine's only mutual exclusion mechanism:
// per track, exactly one writer of the live record exists at a time.
type track struct {
	tw *tween.Tween
}

func (t *track) start(spec tween.Spec) {
	t.tw.Stop()
	t.tw = tween.Start(spec)
}

func (t *track) stop() {
	t.tw.Stop()
}

func (t *track) alive() bool {
	return t.tw.Alive()
}

func (t *track) advance(dt time.Duration) {
	t.tw.Advance(dt)
}
