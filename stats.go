package ogum

import (
	"math/rand"
	"sort"

	"github.com/gonum/stat"
)

// BootstrapEa estimates a 95% confidence interval for the activation
// energy (kJ/mol) by resampling whole experiments with replacement,
// pooling each resample and re-running the Arrhenius estimate. The rng
// makes the replicates reproducible; n is the number of replicates.
func BootstrapEa(experiments [][]Record, n int, rng *rand.Rand) (lo, hi float64, err error) {
	if len(experiments) == 0 {
		return 0, 0, newValidationError("no experiments provided")
	}
	if n < 2 {
		return 0, 0, newValidationError("at least two bootstrap replicates are needed, got %d", n)
	}
	if rng == nil {
		return 0, 0, newValidationError("a random source is required for reproducible replicates")
	}
	eas := make([]float64, n)
	for i := 0; i < n; i++ {
		var pooled []Record
		for j := 0; j < len(experiments); j++ {
			pooled = append(pooled, experiments[rng.Intn(len(experiments))]...)
		}
		t, T, x, serr := splitRecords(pooled)
		if serr != nil {
			return 0, 0, serr
		}
		ea, eerr := estimateActivationEnergy(t, T, x)
		if eerr != nil {
			return 0, 0, eerr
		}
		eas[i] = ea
	}
	sort.Float64s(eas)
	lo = stat.Quantile(0.025, stat.Empirical, eas, nil)
	hi = stat.Quantile(0.975, stat.Empirical, eas, nil)
	return lo, hi, nil
}
