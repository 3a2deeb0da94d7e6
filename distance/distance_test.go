package distance

import (
	"context"
	"strconv"
	"testing"

	"github.com/nathanhack/qecc/classical/hamming"
	"github.com/nathanhack/qecc/classical/repetition"
	mat "github.com/nathanhack/sparsemat"
)

func TestBruteForce(t *testing.T) {
	tests := []struct {
		input    mat.SparseMat
		expected int
	}{
		{hamming.PCM(3), 3},
		{repetition.PCM(5), 5},
		{repetition.PCM(2), 2},
		//full column rank means only the zero codeword
		{hamming.PCM(3).T(), Inf},
		{mat.CSRIdentity(4), Inf},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual, err := BruteForce(context.Background(), test.input, 0)
			if err != nil {
				t.Fatalf("expected no error but found %v", err)
			}
			if actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}

func TestBruteForceCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := BruteForce(ctx, hamming.PCM(4), 0); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestEstimate(t *testing.T) {
	//an estimate is an upper bound, and every nonzero Hamming codeword
	//weighs at least 3
	actual, err := Estimate(context.Background(), hamming.PCM(3), 100, 0)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	if actual < 3 || actual > 7 {
		t.Fatalf("expected a weight in [3,7] but found %v", actual)
	}

	if actual, err = Estimate(context.Background(), mat.CSRIdentity(3), 10, 0); err != nil || actual != Inf {
		t.Fatalf("expected %v but found %v, %v", Inf, actual, err)
	}
}
