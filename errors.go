package ogum

import "fmt"

// ValidationError reports malformed inputs detected before any numerical
// work is attempted: a grid too short to integrate, mismatched lengths,
// a non-increasing time grid or an initial density outside (0,1).
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return "ogum: invalid input: " + e.Reason
}

func newValidationError(format string, args ...interface{}) ValidationError {
	return ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// DomainError reports a non-positive absolute temperature, which makes the
// Arrhenius term of the rate law undefined. Index is the position of the
// offending sample in its profile, or -1 when the temperature did not come
// from a sampled profile.
type DomainError struct {
	Index       int
	Time        float64
	Temperature float64
}

func (e DomainError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("ogum: non-positive temperature %g K at sample %d (t=%g s)", e.Temperature, e.Index, e.Time)
	}
	return fmt.Sprintf("ogum: non-positive temperature %g K (t=%g s)", e.Temperature, e.Time)
}

// InstabilityError reports that the integration produced a non-finite
// density despite the boundary clamp, meaning the kinetic parameters and
// the schedule combine to make the model diverge. It is never coerced to
// a default value: the caller must adjust parameters or inputs.
type InstabilityError struct {
	Step  int
	Time  float64
	Value float64 // Last finite density before the divergence.
}

func (e InstabilityError) Error() string {
	return fmt.Sprintf("ogum: integration diverged at step %d (t=%g s), last finite x=%g", e.Step, e.Time, e.Value)
}
