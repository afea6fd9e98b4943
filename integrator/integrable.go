package integrator

// Integrable defines something which can be integrated, i.e. has a state vector.
// WARNING: Implementation must manage its own state based on the iteration.
type Integrable interface {
	GetState() []float64                            // Get the latest state of this integrable.
	SetState(i int, s []float64)                    // Set the state s reached at grid index i.
	Stop(i int) bool                                // Return whether to stop the integration at grid index i.
	Func(t float64, s []float64) ([]float64, error) // ODE function of time t and state s, must return a new state.
}
