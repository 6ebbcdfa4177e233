package render

// PeakTracker holds a decaying high-water mark over lit-LED counts. A new
// maximum is taken instantly and resets the hold timer; once the hold expires
// the value steps down one LED per decay interval, never dropping below the
// current lit count.
type PeakTracker struct {
	value      int
	max        int
	holdTicks  int
	decayTicks int
	sinceRise  int
	sinceDecay int
}

func NewPeakTracker(max, holdTicks, decayTicks int) *PeakTracker {
	if holdTicks < 1 {
		holdTicks = 1
	}
	if decayTicks < 1 {
		decayTicks = 1
	}

	return &PeakTracker{
		max:        max,
		holdTicks:  holdTicks,
		decayTicks: decayTicks,
	}
}

// Update advances the tracker by one tick and returns the current peak value.
func (p *PeakTracker) Update(litCount int) int {
	if litCount > p.max {
		litCount = p.max
	}

	if litCount > p.value {
		p.value = litCount
		p.sinceRise = 0
		p.sinceDecay = 0

		return p.value
	}

	p.sinceRise++
	if p.sinceRise >= p.holdTicks && p.value > litCount {
		p.sinceDecay++
		if p.sinceDecay >= p.decayTicks {
			p.sinceDecay = 0
			p.value--
		}
	}

	return p.value
}

// Value returns the current peak without advancing the tracker.
func (p *PeakTracker) Value() int {
	return p.value
}

// Reset clears the tracker to its startup baseline.
func (p *PeakTracker) Reset() {
	p.value = 0
	p.sinceRise = 0
	p.sinceDecay = 0
}
