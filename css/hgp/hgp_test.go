package hgp

import (
	"context"
	"errors"
	"testing"

	"github.com/nathanhack/qecc/classical/hamming"
	"github.com/nathanhack/qecc/css"
)

func TestHammingProduct(t *testing.T) {
	//h1 == h2 == the [7,4] Hamming parity check matrix (3x7)
	code, err := New(hamming.PCM(3), nil, "hgp hamming")
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}

	//hx shape is (m1*n2, n1*n2 + m1*m2) == (21, 58)
	rows, cols := code.HX().Dims()
	if rows != 21 || cols != 58 {
		t.Fatalf("expected 21x58 but found %vx%v", rows, cols)
	}
	rows, cols = code.HZ().Dims()
	if rows != 21 || cols != 58 {
		t.Fatalf("expected 21x58 but found %vx%v", rows, cols)
	}

	if code.N() != 58 {
		t.Fatalf("expected N == 58 but found %v", code.N())
	}
	//K == k1*k2 + k1T*k2T == 4*4 + 0*0
	if code.K() != 16 {
		t.Fatalf("expected K == 16 but found %v", code.K())
	}

	report := code.Test()
	for _, check := range report.Checks {
		if check.Outcome != css.Passed {
			t.Fatalf("expected %q to pass but found %v", check.Name, check.Outcome)
		}
	}
	if !report.Valid {
		t.Fatalf("expected a valid code")
	}
}

func TestDistanceBound(t *testing.T) {
	code, err := New(hamming.PCM(3), nil, "")
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}

	//min over d(h1)==3, d(h1.T)==inf, d(h2)==3, d(h2.T)==inf
	d, err := code.D(context.Background())
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	if d != 3 {
		t.Fatalf("expected D == 3 but found %v", d)
	}

	//the bound is cached into the embedded code for reporting
	if known, ok := code.KnownDistance(); !ok || known != 3 {
		t.Fatalf("expected a known distance of 3 but found %v, %v", known, ok)
	}
}

func TestConversionErrors(t *testing.T) {
	if _, err := New(nil, nil, ""); !errors.Is(err, css.ErrConversion) {
		t.Fatalf("expected %v but found %v", css.ErrConversion, err)
	}
	if _, err := New("not a matrix", nil, ""); !errors.Is(err, css.ErrConversion) {
		t.Fatalf("expected %v but found %v", css.ErrConversion, err)
	}
}
