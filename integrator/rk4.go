package integrator

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonFinite is returned when a step produces a NaN or infinite state
// component.
var ErrNonFinite = errors.New("integrator: non-finite state")

// StepError annotates an integration failure with the grid index and time
// at which it occurred.
type StepError struct {
	Step int
	Time float64
	Err  error
}

func (e StepError) Error() string {
	return fmt.Sprintf("integrator: step %d (t=%g): %s", e.Step, e.Time, e.Err)
}

func (e StepError) Unwrap() error { return e.Err }

// RK4 defines a classical fourth-order Runge-Kutta integrator advancing an
// Integrable across an arbitrary strictly increasing time grid, one step
// per grid interval. There is no internal step refinement: identical
// inputs always take identical steps.
type RK4 struct {
	Grid      []float64  // The strictly increasing time grid.
	Integator Integrable // What is to be integrated.
}

// NewRK4 returns a new RK4 integrator instance.
func NewRK4(grid []float64, inte Integrable) *RK4 {
	if len(grid) < 2 {
		panic("config Grid must have at least two points")
	}
	if inte == nil {
		panic("config Integator may not be nil")
	}
	return &RK4{Grid: grid, Integator: inte}
}

// Solve solves the configured RK4.
// Returns the number of steps performed and the last time reached, or an
// error from the ODE function (wrapped in a StepError) or ErrNonFinite.
func (r *RK4) Solve() (int, float64, error) {
	const (
		half     = 1 / 2.0
		oneSixth = 1 / 6.0
		oneThird = 1 / 3.0
	)

	steps := 0
	for i := 0; i < len(r.Grid)-1; i++ {
		if r.Integator.Stop(i) {
			return steps, r.Grid[i], nil
		}
		xi := r.Grid[i]
		h := r.Grid[i+1] - xi
		halfStep := h * half
		state := r.Integator.GetState()
		newState := make([]float64, len(state))
		k1 := make([]float64, len(state))
		// k2, k3, k4 are used as buffers AND result variables.
		k2 := make([]float64, len(state))
		k3 := make([]float64, len(state))
		k4 := make([]float64, len(state))
		tState := make([]float64, len(state))

		// Compute the k's.
		f1, err := r.Integator.Func(xi, state)
		if err != nil {
			return steps, xi, StepError{Step: i, Time: xi, Err: err}
		}
		for j, y := range f1 {
			k1[j] = y * h
			tState[j] = state[j] + k1[j]*half
		}
		f2, err := r.Integator.Func(xi+halfStep, tState)
		if err != nil {
			return steps, xi, StepError{Step: i, Time: xi + halfStep, Err: err}
		}
		for j, y := range f2 {
			k2[j] = y * h
			tState[j] = state[j] + k2[j]*half
		}
		f3, err := r.Integator.Func(xi+halfStep, tState)
		if err != nil {
			return steps, xi, StepError{Step: i, Time: xi + halfStep, Err: err}
		}
		for j, y := range f3 {
			k3[j] = y * h
			tState[j] = state[j] + k3[j]
		}
		f4, err := r.Integator.Func(xi+h, tState)
		if err != nil {
			return steps, xi, StepError{Step: i, Time: xi + h, Err: err}
		}
		for j, y := range f4 {
			k4[j] = y * h
			newState[j] = state[j] + oneSixth*(k1[j]+k4[j]) + oneThird*(k2[j]+k3[j])
		}
		for _, y := range newState {
			if math.IsNaN(y) || math.IsInf(y, 0) {
				return steps, xi, StepError{Step: i, Time: r.Grid[i+1], Err: ErrNonFinite}
			}
		}
		r.Integator.SetState(i+1, newState)
		steps++
	}

	return steps, r.Grid[len(r.Grid)-1], nil
}
