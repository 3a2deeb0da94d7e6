// Package repetition constructs classical repetition code parity check
// matrices. The repetition code is a useful counterexample seed: used directly
// as both stabilizer matrices it fails the CSS commutation checks.
package repetition

import (
	mat "github.com/nathanhack/sparsemat"
)

// PCM returns the (n-1)xn parity check matrix of the length n repetition
// code, each row constraining a pair of adjacent bits to be equal.
func PCM(n int) mat.SparseMat {
	if n < 2 {
		panic("repetition codes require length >=2")
	}
	H := mat.CSRMat(n-1, n)
	for i := 0; i < n-1; i++ {
		H.Set(i, i, 1)
		H.Set(i, i+1, 1)
	}
	return H
}
