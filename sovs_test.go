package ogum

import (
	"errors"
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestRateFixedPoints(t *testing.T) {
	p := Params{Ea: 3.1e5, A: 1e6, N: 1.5}
	for _, T := range []float64{1, 300, 1373, 2000} {
		if rate, err := p.Rate(0, T); err != nil || rate != 0 {
			t.Fatalf("rate(0, %g) must be exactly zero, got %g (err %v)", T, rate, err)
		}
		if rate, err := p.Rate(1, T); err != nil || rate != 0 {
			t.Fatalf("rate(1, %g) must be exactly zero, got %g (err %v)", T, rate, err)
		}
	}
	// N=0 makes the xⁿ term 1 by convention, so only x=1 is a fixed point.
	p.N = 0
	rate, err := p.Rate(0, 1373)
	if err != nil {
		t.Fatalf("err: %+v", err)
	}
	if rate <= 0 {
		t.Fatalf("zero-order rate at x=0 must equal the Arrhenius constant, got %g", rate)
	}
	if rate, _ := p.Rate(1, 1373); rate != 0 {
		t.Fatalf("rate(1, T) must be exactly zero for N=0, got %g", rate)
	}
}

func TestRateValue(t *testing.T) {
	p := Params{Ea: 3.1e5, A: 1e6, N: 1.5}
	rate, err := p.Rate(0.5, 1373)
	if err != nil {
		t.Fatalf("err: %+v", err)
	}
	exp := 1e6 * math.Exp(-3.1e5/(R*1373)) * 0.5 * math.Pow(0.5, 1.5)
	if rate != exp {
		t.Fatalf("rate mismatch: got %g, expected %g", rate, exp)
	}
	if !floats.EqualWithinAbs(rate, 2.84e-7, 5e-9) {
		t.Fatalf("rate magnitude off the hand-computed value: %g", rate)
	}
}

func TestRateDomainError(t *testing.T) {
	p := Params{Ea: 3.1e5, A: 1e6, N: 1.5}
	for _, T := range []float64{0, -1, -300} {
		_, err := p.Rate(0.5, T)
		var derr DomainError
		if !errors.As(err, &derr) {
			t.Fatalf("rate(0.5, %g) must fail with a DomainError, got %v", T, err)
		}
		if derr.Temperature != T {
			t.Fatalf("expected the offending temperature %g in the error, got %g", T, derr.Temperature)
		}
	}
}

func TestParamsValid(t *testing.T) {
	cases := []Params{
		{Ea: 0, A: 1, N: 0},
		{Ea: -1, A: 1, N: 0},
		{Ea: 1, A: 0, N: 0},
		{Ea: 1, A: 1, N: -0.5},
	}
	for _, p := range cases {
		if err := p.Valid(); err == nil {
			t.Fatalf("expected %+v to be invalid", p)
		}
		if _, err := New(p); err == nil {
			t.Fatalf("New must reject %+v", p)
		}
	}
	if err := (Params{Ea: 3.1e5, A: 1e6, N: 0}).Valid(); err != nil {
		t.Fatalf("err: %+v", err)
	}
}
