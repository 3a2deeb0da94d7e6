package repetition

import (
	"testing"

	mat "github.com/nathanhack/sparsemat"
)

func TestPCM(t *testing.T) {
	expected := mat.CSRMat(4, 5,
		1, 1, 0, 0, 0,
		0, 1, 1, 0, 0,
		0, 0, 1, 1, 0,
		0, 0, 0, 1, 1)
	actual := PCM(5)
	if !actual.Equals(expected) {
		t.Fatalf("expected \n%v\n but found \n%v\n", expected, actual)
	}
}

func TestPCMPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	PCM(1)
}
