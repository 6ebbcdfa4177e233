package render

// Smoother applies an exponential moving average to raw utilization
// readings. The first reading seeds the state directly so the meter does not
// ramp up from zero on startup.
type Smoother struct {
	alpha  float64
	value  float64
	seeded bool
}

func NewSmoother(alpha float64) *Smoother {
	return &Smoother{alpha: alpha}
}

// Update folds a raw reading into the running average and returns the new
// smoothed level.
func (s *Smoother) Update(raw float64) float64 {
	if !s.seeded {
		s.seeded = true
		s.value = raw

		return s.value
	}

	s.value += s.alpha * (raw - s.value)

	return s.value
}

// Value returns the last smoothed level without consuming a reading.
func (s *Smoother) Value() float64 {
	return s.value
}
