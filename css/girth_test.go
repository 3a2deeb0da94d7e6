package css

import (
	"context"
	"testing"

	"github.com/nathanhack/qecc/classical/hamming"
	"github.com/nathanhack/qecc/classical/repetition"
)

func TestGirth(t *testing.T) {
	//rows 0 and 1 of the Hamming matrix share columns 3 and 7, a 4 cycle
	code, err := New(hamming.PCM(3), nil, "")
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	girth, err := code.Girth(context.Background())
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	if girth != 4 {
		t.Fatalf("expected girth == 4 but found %v", girth)
	}

	//the repetition code's Tanner graph is a path, so it has no cycles
	code, err = New(repetition.PCM(7), nil, "")
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	girth, err = code.Girth(context.Background())
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	if girth != -1 {
		t.Fatalf("expected no cycles but found girth == %v", girth)
	}
}

func TestGirthCanceled(t *testing.T) {
	//cancellation must be distinguishable from a cycle free graph
	code, err := New(repetition.PCM(7), nil, "")
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := code.Girth(ctx); err == nil {
		t.Fatalf("expected an error")
	}
}
