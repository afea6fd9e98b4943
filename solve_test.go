package ogum

import (
	"errors"
	"testing"

	"github.com/gonum/floats"
)

func refParams() Params {
	return Params{Ea: 3.1e5, A: 1e6, N: 1.5}
}

func TestSolveIsothermalHold(t *testing.T) {
	s, err := New(refParams())
	if err != nil {
		t.Fatalf("err: %+v", err)
	}
	grid := make([]float64, 50)
	floats.Span(grid, 0, 3600)
	traj, err := s.SolveSchedule(grid, []float64{1373}, DefaultInitialDensity)
	if err != nil {
		t.Fatalf("err: %+v", err)
	}
	if len(traj) != len(grid) {
		t.Fatalf("expected %d trajectory points, got %d", len(grid), len(traj))
	}
	if traj[0] != DefaultInitialDensity {
		t.Fatalf("trajectory must start at the initial condition, got %g", traj[0])
	}
	for i := 1; i < len(traj); i++ {
		if traj[i] <= traj[i-1] {
			t.Fatalf("density must strictly increase under an isothermal hold (traj[%d]=%g, traj[%d]=%g)", i-1, traj[i-1], i, traj[i])
		}
		if traj[i] >= 1 {
			t.Fatalf("density exceeded full density at index %d: %g", i, traj[i])
		}
	}
}

func TestSolveMonotonicSubLinearOrder(t *testing.T) {
	s, _ := New(Params{Ea: 1e5, A: 1e2, N: 0.5})
	grid := make([]float64, 101)
	floats.Span(grid, 0, 100)
	traj, err := s.SolveSchedule(grid, []float64{1500}, 0.05)
	if err != nil {
		t.Fatalf("err: %+v", err)
	}
	for i := 1; i < len(traj); i++ {
		if traj[i] < traj[i-1] {
			t.Fatalf("density dropped from %g to %g at index %d", traj[i-1], traj[i], i)
		}
		if traj[i] <= 0 || traj[i] >= 1 {
			t.Fatalf("density %g out of (0,1) at index %d", traj[i], i)
		}
	}
}

func TestSolveFixedPointNearFullDensity(t *testing.T) {
	const eps = 1e-6
	s, _ := New(refParams())
	grid := make([]float64, 50)
	floats.Span(grid, 0, 3600)
	traj, err := s.SolveSchedule(grid, []float64{1373}, 1-eps)
	if err != nil {
		t.Fatalf("err: %+v", err)
	}
	for i, x := range traj {
		if x < 1-2*eps || x >= 1 {
			t.Fatalf("density left the fixed point neighborhood at index %d: %g", i, x)
		}
	}
}

func TestSolveRampSchedule(t *testing.T) {
	s, _ := New(refParams())
	grid := make([]float64, 100)
	floats.Span(grid, 0, 7200)
	temps := make([]float64, 100)
	floats.Span(temps, 300, 1650) // linear heating ramp
	traj, err := s.SolveSchedule(grid, temps, DefaultInitialDensity)
	if err != nil {
		t.Fatalf("err: %+v", err)
	}
	for i := 1; i < len(traj); i++ {
		if traj[i] < traj[i-1] {
			t.Fatalf("density dropped during heating at index %d", i)
		}
	}
	if traj[len(traj)-1] <= traj[0] {
		t.Fatal("ramp to sintering temperature should have densified the body")
	}
}

func TestSolveReproducible(t *testing.T) {
	s, _ := New(refParams())
	grid := make([]float64, 50)
	floats.Span(grid, 0, 3600)
	first, err := s.SolveSchedule(grid, []float64{1373}, 0.1)
	if err != nil {
		t.Fatalf("err: %+v", err)
	}
	second, err := s.SolveSchedule(grid, []float64{1373}, 0.1)
	if err != nil {
		t.Fatalf("err: %+v", err)
	}
	if !floats.Equal(first, second) {
		t.Fatal("two solves with identical inputs must be bit-identical")
	}
}

func TestSolveValidationErrors(t *testing.T) {
	s, _ := New(refParams())
	cases := []struct {
		name string
		t, T []float64
		x0   float64
	}{
		{"single-point grid", []float64{5}, []float64{300}, 0.1},
		{"non-increasing grid", []float64{0, 10, 10}, []float64{300}, 0.1},
		{"mismatched lengths", []float64{0, 10, 20}, []float64{300, 400}, 0.1},
		{"x0 at zero", []float64{0, 10}, []float64{300}, 0},
		{"x0 at one", []float64{0, 10}, []float64{300}, 1},
	}
	for _, tc := range cases {
		_, err := s.SolveSchedule(tc.t, tc.T, tc.x0)
		var verr ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("[%s] expected a ValidationError, got %+v", tc.name, err)
		}
	}
}

func TestSolveDomainErrors(t *testing.T) {
	s, _ := New(refParams())
	_, err := s.SolveSchedule([]float64{0, 10}, []float64{300, -5}, 0.1)
	var derr DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("expected a DomainError, got %+v", err)
	}
	if derr.Index != 1 {
		t.Fatalf("expected the offending sample index 1, got %d", derr.Index)
	}
	_, err = s.SolveSchedule([]float64{0, 10}, []float64{0, 0}, 0.1)
	if !errors.As(err, &derr) {
		t.Fatalf("expected a DomainError for a zero-kelvin schedule, got %+v", err)
	}
	_, err = s.SolveSchedule([]float64{0, 10}, []float64{-1}, 0.1)
	if !errors.As(err, &derr) {
		t.Fatalf("expected a DomainError for a negative constant, got %+v", err)
	}
}

func TestSolveInstability(t *testing.T) {
	// An absurdly large pre-exponential factor over absurdly long steps
	// overflows the RK4 increments.
	s, err := New(Params{Ea: 1, A: 1e300, N: 0})
	if err != nil {
		t.Fatalf("err: %+v", err)
	}
	_, err = s.SolveSchedule([]float64{0, 1e10, 2e10}, []float64{300}, 0.5)
	var ierr InstabilityError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected an InstabilityError, got %+v", err)
	}
}

func TestSolveConcurrent(t *testing.T) {
	s, _ := New(refParams())
	grid := make([]float64, 50)
	floats.Span(grid, 0, 3600)
	done := make(chan []float64, 4)
	for i := 0; i < 4; i++ {
		go func() {
			traj, err := s.SolveSchedule(grid, []float64{1373}, 0.2)
			if err != nil {
				done <- nil
				return
			}
			done <- traj
		}()
	}
	ref := <-done
	if ref == nil {
		t.Fatal("concurrent solve failed")
	}
	for i := 0; i < 3; i++ {
		traj := <-done
		if traj == nil || !floats.Equal(ref, traj) {
			t.Fatal("concurrent solves diverged")
		}
	}
}
