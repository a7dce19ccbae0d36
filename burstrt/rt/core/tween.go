package core

import (
	"time"
)

// Easing maps elapsed time fraction [0,1] to interpolation fraction [0,1].
type Easing func(t float64) float64

func Linear(t float64) float64 { return t }

// Tween describes one scalar interpolation towards To.
type Tween struct {
	To         float32
	Duration   time.Duration
	Ease       Easing
	OnComplete func()
}

// ProgressDriver interpolates a scalar over time and fires a one-shot completion.
// OnComplete must run exactly once, after the target has reached To.
type ProgressDriver interface {
	Schedule(target *float32, tw Tween)
}

type tweenState struct {
	target  *float32
	from    float32
	tw      Tween
	elapsed time.Duration
}

// TweenScheduler is a frame-driven ProgressDriver. Advance is called once per tick.
type TweenScheduler struct {
	active []*tweenState
}

func NewTweenScheduler() *TweenScheduler {
	return &TweenScheduler{}
}

func (s *TweenScheduler) Schedule(target *float32, tw Tween) {
	if tw.Ease == nil {
		tw.Ease = Linear
	}
	s.active = append(s.active, &tweenState{
		target: target,
		from:   *target,
		tw:     tw,
	})
}

func (s *TweenScheduler) Len() int {
	return len(s.active)
}

// Advance moves every active tween forward by dt. Finished tweens are unregistered
// before their completions fire, so a completion may schedule new tweens.
func (s *TweenScheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}

	var done []*tweenState
	kept := s.active[:0]
	for _, st := range s.active {
		st.elapsed += dt
		if st.elapsed >= st.tw.Duration {
			*st.target = st.tw.To
			done = append(done, st)
			continue
		}
		f := st.tw.Ease(float64(st.elapsed) / float64(st.tw.Duration))
		f = clamp64(f, 0, 1)
		*st.target = st.from + (st.tw.To-st.from)*float32(f)
		kept = append(kept, st)
	}
	for i := len(kept); i < len(s.active); i++ {
		s.active[i] = nil
	}
	s.active = kept

	for _, st := range done {
		if st.tw.OnComplete != nil {
			st.tw.OnComplete()
		}
	}
}

func clamp64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
