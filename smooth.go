package ogum

import (
	"math"
	"sort"

	"github.com/gonum/matrix/mat64"
)

// SavitzkyGolay smooths a 1D signal with a local least-squares polynomial
// fit of the given order over a sliding window of odd length. Near the
// boundaries the polynomial fitted to the first (or last) full window is
// evaluated at the boundary offsets, so the output keeps the input length.
// A polynomial of degree ≤ polyorder passes through unchanged.
func SavitzkyGolay(data []float64, window, polyorder int) ([]float64, error) {
	if window < 3 || window%2 == 0 {
		return nil, newValidationError("window must be odd and at least 3, got %d", window)
	}
	if window > len(data) {
		return nil, newValidationError("window %d exceeds data length %d", window, len(data))
	}
	if polyorder < 0 || polyorder >= window {
		return nil, newValidationError("polyorder must be in [0, window), got %d", polyorder)
	}

	half := window / 2
	// Vandermonde matrix of the window offsets.
	a := mat64.NewDense(window, polyorder+1, nil)
	for r := 0; r < window; r++ {
		d := float64(r - half)
		for c := 0; c <= polyorder; c++ {
			a.Set(r, c, math.Pow(d, float64(c)))
		}
	}
	var ata, ataInv, m mat64.Dense
	ata.Mul(a.T(), a)
	if err := ataInv.Inverse(&ata); err != nil {
		return nil, newValidationError("degenerate smoothing window (window=%d, polyorder=%d)", window, polyorder)
	}
	m.Mul(&ataInv, a.T()) // (polyorder+1)×window projection onto coefficients.

	// fitAt returns the polynomial coefficients for the window starting at lo.
	fitAt := func(lo int) *mat64.Vector {
		y := mat64.NewVector(window, data[lo:lo+window])
		beta := mat64.NewVector(polyorder+1, nil)
		beta.MulVec(&m, y)
		return beta
	}
	evalAt := func(beta *mat64.Vector, d float64) float64 {
		v := 0.0
		for c := 0; c <= polyorder; c++ {
			v += beta.At(c, 0) * math.Pow(d, float64(c))
		}
		return v
	}

	n := len(data)
	out := make([]float64, n)
	for i := half; i < n-half; i++ {
		out[i] = fitAt(i - half).At(0, 0)
	}
	left := fitAt(0)
	right := fitAt(n - window)
	for i := 0; i < half; i++ {
		out[i] = evalAt(left, float64(i-half))
		out[n-1-i] = evalAt(right, float64(half-i))
	}
	return out, nil
}

// BinAverage applies the Orlandini–Araújo filter: records are grouped into
// fixed-width time bins of binSize seconds and each bin is replaced by the
// mean of its members. Bins are returned in time order.
func BinAverage(records []Record, binSize float64) ([]Record, error) {
	if binSize <= 0 {
		return nil, newValidationError("bin size must be positive, got %g", binSize)
	}
	if len(records) == 0 {
		return nil, newValidationError("no records to filter")
	}
	type accum struct {
		t, T, x float64
		n       int
	}
	bins := make(map[int]*accum)
	for _, r := range records {
		b := int(math.Floor(r.Time / binSize))
		acc, ok := bins[b]
		if !ok {
			acc = &accum{}
			bins[b] = acc
		}
		acc.t += r.Time
		acc.T += r.Temperature
		acc.x += r.Density
		acc.n++
	}
	keys := make([]int, 0, len(bins))
	for k := range bins {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	out := make([]Record, 0, len(keys))
	for _, k := range keys {
		acc := bins[k]
		n := float64(acc.n)
		out = append(out, Record{Time: acc.t / n, Temperature: acc.T / n, Density: acc.x / n})
	}
	return out, nil
}
