package mod2

import (
	"context"
	"reflect"
	"strconv"
	"testing"

	mat "github.com/nathanhack/sparsemat"
)

var testMatrices = []mat.SparseMat{
	//Hamming 7
	mat.CSRMat(3, 7, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1),
	//one linearly dependent row
	mat.CSRMat(4, 5, 1, 1, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 1, 1),
	//tall
	mat.CSRMat(4, 3, 1, 0, 0, 0, 1, 0, 1, 1, 0, 0, 0, 1),
	//zero column in the middle
	mat.CSRMat(2, 4, 1, 0, 0, 1, 0, 0, 1, 1),
	//all zeros
	mat.CSRMat(2, 3, 0, 0, 0, 0, 0, 0),
}

var testRanks = []int{3, 3, 3, 2, 0}

func TestRowEchelon(t *testing.T) {
	for i, test := range testMatrices {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			for _, full := range []bool{false, true} {
				red := RowEchelon(context.Background(), test, full, 0)

				if red.Rank != testRanks[i] {
					t.Fatalf("expected rank %v but found %v", testRanks[i], red.Rank)
				}
				if len(red.Pivots) != red.Rank {
					t.Fatalf("expected %v pivots but found %v", red.Rank, len(red.Pivots))
				}

				//the transform must reproduce R from the input
				if !Mul(red.T, test).Equals(red.R) {
					t.Fatalf("expected T@input == R but found \n%v\n", Mul(red.T, test))
				}

				//each pivot row leads with its pivot, rows below the rank are zero
				rows, _ := red.R.Dims()
				for r := 0; r < rows; r++ {
					nonzero := red.R.Row(r).NonzeroArray()
					if r >= red.Rank {
						if len(nonzero) != 0 {
							t.Fatalf("expected row %v to be zero but found %v", r, nonzero)
						}
						continue
					}
					if nonzero[0] != red.Pivots[r] {
						t.Fatalf("expected row %v to lead with pivot %v but found %v", r, red.Pivots[r], nonzero[0])
					}
				}
			}
		})
	}
}

func TestRowEchelonIdempotence(t *testing.T) {
	for i, test := range testMatrices {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			first := RowEchelon(context.Background(), test, true, 0)
			second := RowEchelon(context.Background(), first.R, true, 0)

			if !second.R.Equals(first.R) {
				t.Fatalf("expected \n%v\n but found \n%v\n", first.R, second.R)
			}
			if second.Rank != first.Rank {
				t.Fatalf("expected rank %v but found %v", first.Rank, second.Rank)
			}
		})
	}
}

func TestRank(t *testing.T) {
	for i, test := range testMatrices {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if rank := Rank(context.Background(), test, 0); rank != testRanks[i] {
				t.Fatalf("expected %v but found %v", testRanks[i], rank)
			}
		})
	}
}

func TestNullspace(t *testing.T) {
	for i, test := range testMatrices {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			_, cols := test.Dims()
			basis := Nullspace(context.Background(), test, 0)

			expected := cols - testRanks[i]
			if expected == 0 {
				if basis != nil {
					t.Fatalf("expected nil but found \n%v\n", basis)
				}
				return
			}

			rows, _ := basis.Dims()
			if rows != expected {
				t.Fatalf("expected %v basis vectors but found %v", expected, rows)
			}
			//every basis vector is annihilated by the matrix
			product := Mul(test, basis.T())
			if !IsZero(product) {
				t.Fatalf("expected input@basis.T == 0 but found \n%v\n", product)
			}
			//and they are linearly independent
			if rank := Rank(context.Background(), basis, 0); rank != expected {
				t.Fatalf("expected basis rank %v but found %v", expected, rank)
			}
		})
	}
}

func TestRowBasis(t *testing.T) {
	for i, test := range testMatrices {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			basis := RowBasis(context.Background(), test, 0)

			if testRanks[i] == 0 {
				if basis != nil {
					t.Fatalf("expected nil but found \n%v\n", basis)
				}
				return
			}

			rows, _ := basis.Dims()
			if rows != testRanks[i] {
				t.Fatalf("expected %v rows but found %v", testRanks[i], rows)
			}
			if rank := Rank(context.Background(), basis, 0); rank != testRanks[i] {
				t.Fatalf("expected rank %v but found %v", testRanks[i], rank)
			}

			//every basis row must be an actual row of the input
			inputRows, _ := test.Dims()
			for r := 0; r < rows; r++ {
				found := false
				for j := 0; j < inputRows; j++ {
					if reflect.DeepEqual(basis.Row(r).NonzeroArray(), test.Row(j).NonzeroArray()) {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("basis row %v is not a row of the input", r)
				}
			}
		})
	}
}

func TestInverse(t *testing.T) {
	tests := []struct {
		input    mat.SparseMat
		singular bool
	}{
		{mat.CSRIdentity(3), false},
		{mat.CSRMat(3, 3, 1, 1, 0, 0, 1, 1, 0, 0, 1), false},
		{mat.CSRMat(2, 2, 1, 1, 1, 1), true},
		{mat.CSRMat(3, 3, 1, 0, 1, 0, 1, 0, 1, 1, 1), true},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			inverse, err := Inverse(context.Background(), test.input, 0)

			if test.singular {
				if err == nil {
					t.Fatalf("expected an error but found \n%v\n", inverse)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error but found %v", err)
			}

			rows, _ := test.input.Dims()
			if actual := Mul(test.input, inverse); !actual.Equals(mat.CSRIdentity(rows)) {
				t.Fatalf("expected input@inverse == I but found \n%v\n", actual)
			}
			if actual := Mul(inverse, test.input); !actual.Equals(mat.CSRIdentity(rows)) {
				t.Fatalf("expected inverse@input == I but found \n%v\n", actual)
			}
		})
	}
}

func TestMul(t *testing.T) {
	a := mat.CSRMat(2, 3, 1, 1, 0, 0, 1, 1)
	b := mat.CSRMat(3, 2, 1, 0, 1, 1, 0, 1)
	expected := mat.CSRMat(2, 2, 0, 1, 1, 0)

	if actual := Mul(a, b); !actual.Equals(expected) {
		t.Fatalf("expected \n%v\n but found \n%v\n", expected, actual)
	}
}

func TestKron(t *testing.T) {
	a := mat.CSRMat(2, 2, 1, 0, 1, 1)
	b := mat.CSRMat(1, 2, 1, 1)
	expected := mat.CSRMat(2, 4,
		1, 1, 0, 0,
		1, 1, 1, 1)

	if actual := Kron(a, b); !actual.Equals(expected) {
		t.Fatalf("expected \n%v\n but found \n%v\n", expected, actual)
	}

	//identity Kronecker products keep the operand on the block diagonal
	expected = mat.CSRMat(2, 4,
		1, 1, 0, 0,
		0, 0, 1, 1)
	if actual := Kron(mat.CSRIdentity(2), b); !actual.Equals(expected) {
		t.Fatalf("expected \n%v\n but found \n%v\n", expected, actual)
	}
}

func TestStacking(t *testing.T) {
	a := mat.CSRMat(1, 2, 1, 0)
	b := mat.CSRMat(1, 2, 0, 1)

	expected := mat.CSRMat(2, 2, 1, 0, 0, 1)
	if actual := VStack(a, b); !actual.Equals(expected) {
		t.Fatalf("expected \n%v\n but found \n%v\n", expected, actual)
	}

	expected = mat.CSRMat(1, 4, 1, 0, 0, 1)
	if actual := HStack(a, b); !actual.Equals(expected) {
		t.Fatalf("expected \n%v\n but found \n%v\n", expected, actual)
	}
}
