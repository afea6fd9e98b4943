package ogum

import (
	"math"

	"github.com/gonum/stat"
)

// ArrheniusFit holds the result of an Arrhenius regression of measured
// densification rates against inverse temperature.
type ArrheniusFit struct {
	Q         float64 // Activation energy in kJ/mol.
	R2        float64 // Coefficient of determination of the fit.
	Slope     float64 // Slope of ln(rate) vs 1/T, in K.
	Intercept float64 // Intercept of ln(rate) vs 1/T.
}

// FitActivationEnergy regresses ln(rate) on 1/T over aligned samples of
// absolute temperature (K) and densification rate. The slope of the fit
// gives the activation energy: Q = −slope·R, reported in kJ/mol.
func FitActivationEnergy(temperatures, rates []float64) (ArrheniusFit, error) {
	if len(temperatures) != len(rates) {
		return ArrheniusFit{}, newValidationError("temperatures and rates must have the same length (%d vs %d)", len(temperatures), len(rates))
	}
	if len(temperatures) < 2 {
		return ArrheniusFit{}, newValidationError("at least two samples are needed for a regression, got %d", len(temperatures))
	}
	invT := make([]float64, len(temperatures))
	lnRate := make([]float64, len(rates))
	for i, T := range temperatures {
		if T <= 0 {
			return ArrheniusFit{}, DomainError{Index: i, Temperature: T}
		}
		if rates[i] <= 0 {
			return ArrheniusFit{}, newValidationError("rates must be positive to take their log, got %g at sample %d", rates[i], i)
		}
		invT[i] = 1 / T
		lnRate[i] = math.Log(rates[i])
	}

	alpha, beta := stat.LinearRegression(invT, lnRate, nil, false)
	r2 := stat.RSquared(invT, lnRate, nil, alpha, beta)
	return ArrheniusFit{
		Q:         -beta * R / 1000.0,
		R2:        r2,
		Slope:     beta,
		Intercept: alpha,
	}, nil
}
