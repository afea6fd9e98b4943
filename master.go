package ogum

import (
	"math"

	"github.com/gonum/floats"
	"github.com/gonum/stat"
)

// Record is a single point of a sintering experiment: time in s,
// absolute temperature in K and relative density (fraction or percent).
type Record struct {
	Time        float64 `json:"time"`
	Temperature float64 `json:"temperature"`
	Density     float64 `json:"density"`
}

// MasterCurve is a densification curve with times shifted to a common
// reference temperature via the Arrhenius factor.
type MasterCurve struct {
	Time             []float64 // Shifted times in s.
	Density          []float64 // Density fractions aligned with Time.
	ActivationEnergy float64   // Estimated activation energy in kJ/mol.
}

// LogTheta computes the log10 of the cumulative theta integral
//
//	θ(t) = ∫ (1/T)·exp(−Ea/(R·T)) dt
//
// over a sampled time/temperature trace, for an activation energy given in
// kJ/mol. The leading zero of the cumulative integral is floored to the
// smallest positive float before taking the log.
func LogTheta(times, temperatures []float64, eaKJ float64) ([]float64, error) {
	if len(times) != len(temperatures) {
		return nil, newValidationError("times and temperatures must have the same length (%d vs %d)", len(times), len(temperatures))
	}
	if len(times) < 2 {
		return nil, newValidationError("at least two samples are needed for integration, got %d", len(times))
	}
	eaJ := eaKJ * 1000.0
	theta := make([]float64, len(times))
	for i, T := range temperatures {
		if T <= 0 {
			return nil, DomainError{Index: i, Time: times[i], Temperature: T}
		}
		theta[i] = (1 / T) * math.Exp(-eaJ/(R*T))
	}
	integrated := cumtrapz(theta, times)
	logTheta := make([]float64, len(integrated))
	for i, v := range integrated {
		if v <= 0 {
			v = math.SmallestNonzeroFloat64
		}
		logTheta[i] = math.Log10(v)
	}
	return logTheta, nil
}

// BuildMasterCurve shifts a densification trace to the mean schedule
// temperature using the Arrhenius factor a_T = exp((Ea/R)(1/T − 1/Tref)),
// with the activation energy estimated from the trace itself. Densities
// above 1 are taken to be percentages and scaled down.
func BuildMasterCurve(records []Record) (MasterCurve, error) {
	t, T, x, err := splitRecords(records)
	if err != nil {
		return MasterCurve{}, err
	}
	eaKJ, err := estimateActivationEnergy(t, T, x)
	if err != nil {
		return MasterCurve{}, err
	}
	eaJ := eaKJ * 1000.0
	tRef := stat.Mean(T, nil)
	shifted := make([]float64, len(t))
	for i := range t {
		aT := math.Exp((eaJ / R) * (1/T[i] - 1/tRef))
		shifted[i] = t[i] * aT
	}
	return MasterCurve{Time: shifted, Density: x, ActivationEnergy: eaKJ}, nil
}

// estimateActivationEnergy fits the effective first-order rate constant
// k_eff = −ln(1−x)/t against 1/T and returns the activation energy in
// kJ/mol. Samples at t≤0 or with density outside (0,1) are skipped.
func estimateActivationEnergy(t, T, x []float64) (float64, error) {
	var invT, lnK []float64
	for i := range t {
		if t[i] <= 0 || x[i] <= 0 || x[i] >= 1 {
			continue
		}
		kEff := -math.Log(1-x[i]) / t[i]
		invT = append(invT, 1/T[i])
		lnK = append(lnK, math.Log(kEff))
	}
	if len(invT) < 2 {
		return 0, newValidationError("insufficient data for activation energy fit (%d usable samples)", len(invT))
	}
	_, slope := stat.LinearRegression(invT, lnK, nil, false)
	return -slope * R / 1000.0, nil
}

// splitRecords validates a trace and returns its columns, with densities
// normalized to fractions.
func splitRecords(records []Record) (t, T, x []float64, err error) {
	if len(records) < 2 {
		return nil, nil, nil, newValidationError("at least two records are needed, got %d", len(records))
	}
	t = make([]float64, len(records))
	T = make([]float64, len(records))
	x = make([]float64, len(records))
	for i, r := range records {
		if r.Temperature <= 0 {
			return nil, nil, nil, DomainError{Index: i, Time: r.Time, Temperature: r.Temperature}
		}
		t[i] = r.Time
		T[i] = r.Temperature
		x[i] = r.Density
	}
	if floats.Max(x) > 1 {
		floats.Scale(1/100.0, x)
	}
	return t, T, x, nil
}

// cumtrapz returns the cumulative trapezoidal integral of y over x, with
// an initial zero so the result is index-aligned with the inputs.
func cumtrapz(y, x []float64) []float64 {
	out := make([]float64, len(y))
	for i := 1; i < len(y); i++ {
		out[i] = out[i-1] + 0.5*(y[i]+y[i-1])*(x[i]-x[i-1])
	}
	return out
}
