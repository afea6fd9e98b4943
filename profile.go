package ogum

import "sort"

// TemperatureProfile yields the absolute temperature to use at any point
// of the integration. Implementations are fully validated at construction
// so that At is total over all of ℝ.
type TemperatureProfile interface {
	// At returns the absolute temperature in K at time t in s.
	At(t float64) float64
}

// Constant is a temperature profile holding a single value for all times.
type Constant float64

// NewConstant returns a constant temperature profile, or a DomainError if
// the temperature is not a positive absolute temperature.
func NewConstant(T float64) (Constant, error) {
	if T <= 0 {
		return 0, DomainError{Index: 0, Temperature: T}
	}
	return Constant(T), nil
}

// At implements TemperatureProfile.
func (c Constant) At(t float64) float64 { return float64(c) }

// Schedule is a piecewise-linear temperature profile over sampled
// (time, temperature) pairs. Between samples the temperature is linearly
// interpolated; outside the sampled range the boundary value is held
// constant so that the Arrhenius term never sees an extrapolated runaway
// temperature.
type Schedule struct {
	times []float64
	temps []float64
}

// NewSchedule returns a sampled temperature profile. The times must be
// strictly increasing and every temperature strictly positive.
func NewSchedule(times, temps []float64) (*Schedule, error) {
	if len(times) != len(temps) {
		return nil, newValidationError("schedule has %d times but %d temperatures", len(times), len(temps))
	}
	if len(times) == 0 {
		return nil, newValidationError("schedule is empty")
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return nil, newValidationError("schedule times must be strictly increasing (times[%d]=%g, times[%d]=%g)", i-1, times[i-1], i, times[i])
		}
	}
	for i, T := range temps {
		if T <= 0 {
			return nil, DomainError{Index: i, Time: times[i], Temperature: T}
		}
	}
	s := &Schedule{times: make([]float64, len(times)), temps: make([]float64, len(temps))}
	copy(s.times, times)
	copy(s.temps, temps)
	return s, nil
}

// At implements TemperatureProfile via linear interpolation with flat
// extrapolation beyond the first and last samples.
func (s *Schedule) At(t float64) float64 {
	n := len(s.times)
	if t <= s.times[0] {
		return s.temps[0]
	}
	if t >= s.times[n-1] {
		return s.temps[n-1]
	}
	i := sort.SearchFloat64s(s.times, t)
	if s.times[i] == t {
		return s.temps[i]
	}
	t0, t1 := s.times[i-1], s.times[i]
	T0, T1 := s.temps[i-1], s.temps[i]
	return T0 + (T1-T0)*(t-t0)/(t1-t0)
}
