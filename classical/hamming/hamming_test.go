package hamming

import (
	"strconv"
	"testing"

	mat "github.com/nathanhack/sparsemat"
)

func TestPCM(t *testing.T) {
	tests := []struct {
		paritySymbols int
		expected      mat.SparseMat
	}{
		{2, mat.CSRMat(2, 3,
			1, 0, 1,
			0, 1, 1)},
		{3, mat.CSRMat(3, 7,
			1, 0, 1, 0, 1, 0, 1,
			0, 1, 1, 0, 0, 1, 1,
			0, 0, 0, 1, 1, 1, 1)},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := PCM(test.paritySymbols)
			if !actual.Equals(test.expected) {
				t.Fatalf("expected \n%v\n but found \n%v\n", test.expected, actual)
			}
		})
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
