package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const DefaultBurstDuration = 3 * time.Second

// Launcher drives every burst's progress to 1 and owns its teardown.
type Launcher struct {
	driver ProgressDriver
	logger Logger
	live   []*Burst

	// OnTeardown, if set, runs after a burst has been released.
	OnTeardown func(b *Burst)
}

func NewLauncher(driver ProgressDriver, logger Logger) *Launcher {
	return &Launcher{driver: driver, logger: orNop(logger)}
}

// Launch registers the burst's progress with the driver. When the tween completes
// the burst is detached and its resources released, synchronously and exactly once.
func (l *Launcher) Launch(b *Burst, duration time.Duration) {
	if !b.attached || b.handle.Released() {
		panic(fmt.Errorf("launch burst %s: %w", b.ID, ErrBurstDead))
	}
	if b.launched {
		panic(fmt.Errorf("launch burst %s: %w", b.ID, ErrAlreadyLaunched))
	}
	b.launched = true
	l.live = append(l.live, b)

	l.driver.Schedule(&b.renderable.Uniforms.Progress, Tween{
		To:       1,
		Duration: duration,
		Ease:     Linear,
		OnComplete: func() {
			l.complete(b)
		},
	})
	l.logger.Debugf("burst %s launched: %d particles, %s", b.ID, b.Attributes.Len(), duration)
}

// Live returns launched bursts that have not been torn down, in launch order.
func (l *Launcher) Live() []*Burst {
	return l.live
}

func (l *Launcher) complete(b *Burst) {
	b.handle.Release()
	l.forget(b.ID)
	l.logger.Debugf("burst %s torn down", b.ID)
	if l.OnTeardown != nil {
		l.OnTeardown(b)
	}
}

func (l *Launcher) forget(id uuid.UUID) {
	for i, o := range l.live {
		if o.ID == id {
			copy(l.live[i:], l.live[i+1:])
			l.live[len(l.live)-1] = nil
			l.live = l.live[:len(l.live)-1]
			return
		}
	}
}
