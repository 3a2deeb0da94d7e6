// Package hamming constructs classical Hamming code parity check matrices,
// used as seed codes for CSS and hypergraph product constructions.
package hamming

import (
	mat "github.com/nathanhack/sparsemat"
)

// PCM returns the parity check matrix of the [2^p-1, 2^p-1-p] Hamming code
// with p == paritySymbols. Hamming codes can detect up to two-bit errors or
// correct one-bit errors without detection of uncorrected errors.
func PCM(paritySymbols int) mat.SparseMat {
	if paritySymbols < 2 {
		panic("hamming codes require >=2 parity symbols")
	}
	n := 1<<uint(paritySymbols) - 1
	H := mat.CSRMat(paritySymbols, n)

	//To make Hamming codes we make the columns the bit versions
	// of every number from 1 to and including n -> [1,n] (note they're nonzero)
	for i := 1; i <= n; i++ {
		vec := mat.CSRVec(paritySymbols)
		for j := 0; j < paritySymbols; j++ {
			if i&(1<<uint(j)) > 0 {
				vec.Set(j, 1)
			}
		}
		H.SetColumn(i-1, vec)
	}
	return H
}
