package ogum

import (
	"errors"

	kitlog "github.com/go-kit/kit/log"

	"github.com/huyraestevao/ogumsoftware/integrator"
)

const (
	// DefaultInitialDensity is the green-body relative density assumed
	// when a caller has no measured initial condition.
	DefaultInitialDensity = 1e-3

	// The produced density is clamped to [clampMin, clampMax] after every
	// step. This is a guard against floating-point overshoot past the
	// physical bounds, where the (1−x)·xⁿ term turns negative or NaN. It
	// is a numerical safeguard, not a physical assumption.
	clampMin = 1e-9
	clampMax = 1 - 1e-9
)

// Solver integrates the SOVS densification law over a time grid. A Solver
// owns one immutable parameter set; each Solve call allocates its own
// working state, so a single instance is safe for concurrent use.
type Solver struct {
	params Params
	logger kitlog.Logger
}

// New returns a Solver for the given kinetic parameters.
func New(p Params) (*Solver, error) {
	return NewWithLogger(p, kitlog.NewNopLogger())
}

// NewWithLogger is New with a structured logger for run summaries.
func NewWithLogger(p Params, logger kitlog.Logger) (*Solver, error) {
	if err := p.Valid(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &Solver{params: p, logger: logger}, nil
}

// Params returns the kinetic parameters this solver was built with.
func (s *Solver) Params() Params { return s.params }

// Solve integrates the densification law over the time grid t (seconds,
// strictly increasing, at least two points) under the given temperature
// profile, starting from initial relative density x0 ∈ (0,1).
//
// The returned trajectory has one density per grid point, with the first
// element equal to x0. On any error no partial trajectory is returned:
// ValidationError for malformed inputs, DomainError for a non-positive
// temperature, InstabilityError if the integration diverges.
func (s *Solver) Solve(t []float64, profile TemperatureProfile, x0 float64) ([]float64, error) {
	if len(t) < 2 {
		return nil, newValidationError("time grid needs at least two points, got %d", len(t))
	}
	for i := 1; i < len(t); i++ {
		if t[i] <= t[i-1] {
			return nil, newValidationError("time grid must be strictly increasing (t[%d]=%g, t[%d]=%g)", i-1, t[i-1], i, t[i])
		}
	}
	if x0 <= 0 || x0 >= 1 {
		return nil, newValidationError("initial density must be inside (0,1), got %g", x0)
	}
	if profile == nil {
		return nil, newValidationError("temperature profile is required")
	}

	r := &densifun{params: s.params, profile: profile, traj: make([]float64, len(t)), x: x0}
	r.traj[0] = x0 // The initial condition is reported as supplied, never re-derived.
	steps, tf, err := integrator.NewRK4(t, r).Solve()
	if err != nil {
		return nil, solveError(err, r.x)
	}
	s.logger.Log("level", "info", "subsys", "sovs", "status", "finished", "steps", steps, "t(s)", tf, "x", r.x)
	return r.traj, nil
}

// SolveSchedule is Solve with the temperature supplied as a plain numeric
// sequence: a single value is broadcast across the whole grid, a sequence
// of len(t) values becomes a piecewise-linear schedule over t.
func (s *Solver) SolveSchedule(t, T []float64, x0 float64) ([]float64, error) {
	if len(t) < 2 {
		return nil, newValidationError("time grid needs at least two points, got %d", len(t))
	}
	var profile TemperatureProfile
	var err error
	switch len(T) {
	case 1:
		profile, err = NewConstant(T[0])
	case len(t):
		profile, err = NewSchedule(t, T)
	default:
		return nil, newValidationError("temperature must have 1 or %d values, got %d", len(t), len(T))
	}
	if err != nil {
		return nil, err
	}
	return s.Solve(t, profile, x0)
}

// solveError maps an integrator failure to the solver taxonomy.
func solveError(err error, lastX float64) error {
	var se integrator.StepError
	if errors.As(err, &se) {
		if errors.Is(se.Err, integrator.ErrNonFinite) {
			return InstabilityError{Step: se.Step, Time: se.Time, Value: lastX}
		}
		var de DomainError
		if errors.As(se.Err, &de) {
			de.Time = se.Time
			return de
		}
	}
	return err
}

// densifun adapts one solve run to the integrator.Integrable interface.
type densifun struct {
	params  Params
	profile TemperatureProfile
	traj    []float64
	x       float64
}

func (r *densifun) GetState() []float64 { return []float64{r.x} }

func (r *densifun) SetState(i int, s []float64) {
	x := s[0]
	if x < clampMin {
		x = clampMin
	} else if x > clampMax {
		x = clampMax
	}
	r.x = x
	r.traj[i] = x
}

func (r *densifun) Stop(i int) bool { return false }

func (r *densifun) Func(t float64, s []float64) ([]float64, error) {
	// Trial sub-states may overshoot [0,1] by a little; the law is only
	// total inside it, so evaluate at the clamped density.
	x := s[0]
	if x < 0 {
		x = 0
	} else if x > 1 {
		x = 1
	}
	rate, err := r.params.Rate(x, r.profile.At(t))
	if err != nil {
		return nil, err
	}
	return []float64{rate}, nil
}
