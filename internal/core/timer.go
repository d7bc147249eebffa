package core

import "time"

const (
	// MinRate and MaxRate bound the generation rate in generations per second.
	MinRate = 1
	MaxRate = 1000
	// MaxLag bounds how much unspent time the pacer carries after a stall.
	MaxLag = 250 * time.Millisecond
)

// Pacer decides how many generations are due each frame so the simulation
// runs at a steady rate independent of the frame rate.
type Pacer struct {
	rate        int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewPacer constructs a Pacer targeting the given generations per second.
func NewPacer(rate int) *Pacer {
	p := &Pacer{now: time.Now}
	p.SetRate(rate)
	p.accumulator = p.step
	return p
}

// SetRate changes the generation rate, clamped to [MinRate, MaxRate]. It is
// safe to call from the main loop.
func (p *Pacer) SetRate(rate int) {
	p.rate = min(max(rate, MinRate), MaxRate)
	p.step = time.Second / time.Duration(p.rate)
}

// Rate returns the current generation rate.
func (p *Pacer) Rate() int { return p.rate }

// Due reports how many generations should run now.
func (p *Pacer) Due() int {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator = min(p.accumulator+now.Sub(p.last), MaxLag)
	p.last = now

	n := int(p.accumulator / p.step)
	p.accumulator -= time.Duration(n) * p.step
	return n
}
