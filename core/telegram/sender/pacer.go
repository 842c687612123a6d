package sender

import (
	"context"
	"time"
)

// Pacer introduces deliberate delays between consecutive narrative messages.
// The base delay comes from configuration; a zero base disables pacing, which
// is what tests use. Pacing is a UX device, never a correctness requirement.
type Pacer struct {
	Base time.Duration
}

// NewPacer builds a Pacer from a millisecond delay value.
func NewPacer(delayMS int) Pacer {
	if delayMS <= 0 {
		return Pacer{}
	}
	return Pacer{Base: time.Duration(delayMS) * time.Millisecond}
}

// Pause blocks for the base delay or until the context is cancelled.
func (p Pacer) Pause(ctx context.Context) {
	p.PauseScaled(ctx, 1)
}

// PauseScaled blocks for base*factor, allowing shorter beats such as the
// rapid-fire reveals of a prize draw.
func (p Pacer) PauseScaled(ctx context.Context, factor float64) {
	if p.Base <= 0 || factor <= 0 {
		return
	}
	d := time.Duration(float64(p.Base) * factor)
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// Enabled reports whether pacing delays are active.
func (p Pacer) Enabled() bool {
	return p.Base > 0
}
