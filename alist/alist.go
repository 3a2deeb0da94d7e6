// Package alist reads and writes binary matrices in the alist sparse text
// format: a column/row count header, the max and per-line weights, then the
// 1-indexed nonzero positions per column and per row (unpadded lists).
package alist

import (
	"bufio"
	"fmt"
	"io"
	"os"

	mat "github.com/nathanhack/sparsemat"
)

// Write writes m to w in alist format.
func Write(w io.Writer, m mat.SparseMat) error {
	rows, cols := m.Dims()

	colPositions := make([][]int, cols)
	maxColWeight := 0
	for j := 0; j < cols; j++ {
		colPositions[j] = m.Column(j).NonzeroArray()
		if len(colPositions[j]) > maxColWeight {
			maxColWeight = len(colPositions[j])
		}
	}
	rowPositions := make([][]int, rows)
	maxRowWeight := 0
	for i := 0; i < rows; i++ {
		rowPositions[i] = m.Row(i).NonzeroArray()
		if len(rowPositions[i]) > maxRowWeight {
			maxRowWeight = len(rowPositions[i])
		}
	}

	buf := bufio.NewWriter(w)
	fmt.Fprintf(buf, "%v %v\n", cols, rows)
	fmt.Fprintf(buf, "%v %v\n", maxColWeight, maxRowWeight)
	for j := 0; j < cols; j++ {
		if j > 0 {
			fmt.Fprint(buf, " ")
		}
		fmt.Fprintf(buf, "%v", len(colPositions[j]))
	}
	fmt.Fprintln(buf)
	for i := 0; i < rows; i++ {
		if i > 0 {
			fmt.Fprint(buf, " ")
		}
		fmt.Fprintf(buf, "%v", len(rowPositions[i]))
	}
	fmt.Fprintln(buf)

	for j := 0; j < cols; j++ {
		writePositions(buf, colPositions[j])
	}
	for i := 0; i < rows; i++ {
		writePositions(buf, rowPositions[i])
	}
	return buf.Flush()
}

func writePositions(w io.Writer, positions []int) {
	for i, p := range positions {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, "%v", p+1) //alist positions are 1-indexed
	}
	fmt.Fprintln(w)
}

// Read parses an alist formatted matrix from r.
func Read(r io.Reader) (mat.SparseMat, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	next := func() (int, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("alist: unexpected end of input")
		}
		var v int
		if _, err := fmt.Sscan(scanner.Text(), &v); err != nil {
			return 0, fmt.Errorf("alist: bad value %q: %w", scanner.Text(), err)
		}
		return v, nil
	}

	cols, err := next()
	if err != nil {
		return nil, err
	}
	rows, err := next()
	if err != nil {
		return nil, err
	}
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("alist: bad dimensions (%v, %v)", rows, cols)
	}

	// max weights, unused beyond validation of presence
	if _, err := next(); err != nil {
		return nil, err
	}
	if _, err := next(); err != nil {
		return nil, err
	}

	colWeights := make([]int, cols)
	for j := range colWeights {
		if colWeights[j], err = next(); err != nil {
			return nil, err
		}
	}
	rowWeights := make([]int, rows)
	for i := range rowWeights {
		if rowWeights[i], err = next(); err != nil {
			return nil, err
		}
	}

	result := mat.DOKMat(rows, cols)
	for j := 0; j < cols; j++ {
		for n := 0; n < colWeights[j]; n++ {
			i, err := next()
			if err != nil {
				return nil, err
			}
			if i < 1 || i > rows {
				return nil, fmt.Errorf("alist: row position %v out of range", i)
			}
			result.Set(i-1, j, 1)
		}
	}
	for i := 0; i < rows; i++ {
		for n := 0; n < rowWeights[i]; n++ {
			j, err := next()
			if err != nil {
				return nil, err
			}
			if j < 1 || j > cols {
				return nil, fmt.Errorf("alist: column position %v out of range", j)
			}
			if result.At(i, j-1) != 1 {
				return nil, fmt.Errorf("alist: row and column lists disagree at (%v, %v)", i, j-1)
			}
		}
	}
	return result, nil
}

// WriteFile writes m to the named file in alist format.
func WriteFile(name string, m mat.SparseMat) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, m)
}

// ReadFile reads an alist formatted matrix from the named file.
func ReadFile(name string) (mat.SparseMat, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
