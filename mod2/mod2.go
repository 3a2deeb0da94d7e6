package mod2

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/cheggaaa/pb/v3"
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
)

// ErrSingular is returned by Inverse when the matrix does not have full rank.
var ErrSingular = errors.New("matrix is singular")

// Reduction holds the results of a RowEchelon reduction.
// T accumulates the row operations applied, so T*input == R (mod 2).
// Pivots contains the pivot column for each pivot row, in order, so
// len(Pivots) == Rank.
type Reduction struct {
	R      mat.SparseMat
	Rank   int
	T      mat.SparseMat
	Pivots []int
}

// RowEchelon performs Gaussian elimination over GF(2).
// Columns are processed left to right; when the current pivot row has a zero
// in the column the first lower row with a one is swapped up, and a column
// without any such row yields no pivot. With full==false only rows below the
// pivot are cleared, with full==true rows above are cleared as well (reduced
// row echelon form). No column swaps are performed so the pivot columns refer
// to the input's columns.
//
// threads specifies the number of threads to use, <=0 means use the number of cpus.
// If ctx is canceled the reduction is abandoned and Rank will be -1.
func RowEchelon(ctx context.Context, m mat.SparseMat, full bool, threads int) Reduction {
	rows, cols := m.Dims()
	R := mat.CSRMatCopy(m)
	T := mat.CSRIdentity(rows)
	pivots := make([]int, 0, rows)

	showBar := logrus.GetLevel() == logrus.DebugLevel
	bar := pb.Full.New(cols)
	logrus.Debugf("Row echelon")
	bar.Set("prefix", "Processing Column ")
	bar.SetWriter(os.Stdout)
	if showBar {
		bar.Start()
	}

	pivotRow := 0
	for col := 0; col < cols && pivotRow < rows; col++ {
		select {
		case <-ctx.Done():
			return Reduction{Rank: -1}
		default:
		}
		bar.Increment()

		if R.At(pivotRow, col) == 0 {
			swap := -1
			for r := pivotRow + 1; r < rows; r++ {
				if R.At(r, col) == 1 {
					swap = r
					break
				}
			}
			if swap == -1 {
				//no pivot in this column
				continue
			}
			R.SwapRows(pivotRow, swap)
			T.SwapRows(pivotRow, swap)
		}

		// all rows with a one in this column, except the pivot row itself,
		// get the pivot row added to them (in GF2 subtract is add)
		targets := make([]int, 0, rows)
		for _, r := range R.Column(col).NonzeroArray() {
			if r == pivotRow || (!full && r < pivotRow) {
				continue
			}
			targets = append(targets, r)
		}
		addPivotRow(ctx, pivotRow, targets, R, T, threads)

		pivots = append(pivots, col)
		pivotRow++
	}

	bar.SetTemplateString(`{{string . "prefix"}}{{counters . }}{{string . "suffix"}}`)
	bar.Set("suffix", " Done")
	bar.Finish()

	logrus.Debugf("Row echelon complete")
	return Reduction{R: R, Rank: len(pivots), T: T, Pivots: pivots}
}

func addPivotRow(ctx context.Context, pivotRow int, targets []int, R, T mat.SparseMat, threads int) {
	pool := threadpool.NewFixedSize(ctx, threads, len(targets))
	rrow := R.Row(pivotRow)
	trow := T.Row(pivotRow)
	mut := sync.RWMutex{}

	for _, index := range targets {
		target := index
		pool.Add(func() {
			mut.RLock()
			prow := R.Row(target)
			ptrow := T.Row(target)
			mut.RUnlock()
			prow.Add(prow, rrow)
			ptrow.Add(ptrow, trow)
			mut.Lock()
			R.SetRow(target, prow)
			T.SetRow(target, ptrow)
			mut.Unlock()
		})
	}
	pool.Wait()
}

// Rank returns the rank of m over GF(2).
// threads specifies the number of threads to use, <=0 means use the number of cpus.
func Rank(ctx context.Context, m mat.SparseMat, threads int) int {
	return RowEchelon(ctx, m, false, threads).Rank
}

// RowBasis returns the linearly independent rows of m (a basis for its row
// space) as a new matrix, or nil if m has no nonzero rows. The rows kept are
// the pivot columns found by reducing the transpose of m, so they are rows of
// m itself, not of its echelon form.
func RowBasis(ctx context.Context, m mat.SparseMat, threads int) mat.SparseMat {
	red := RowEchelon(ctx, m.T(), false, threads)
	if red.Rank <= 0 {
		return nil
	}

	_, cols := m.Dims()
	basis := mat.CSRMat(red.Rank, cols)
	for i, p := range red.Pivots {
		basis.SetRow(i, m.Row(p))
	}
	return basis
}

// Nullspace returns a basis for the right null space {v : m*v == 0 (mod 2)}
// with one basis vector per row, or nil if the null space is trivial.
// Each free (non-pivot) column of the reduced form contributes one vector by
// back substitution over the pivot structure.
func Nullspace(ctx context.Context, m mat.SparseMat, threads int) mat.SparseMat {
	_, cols := m.Dims()
	red := RowEchelon(ctx, m, true, threads)
	if red.Rank < 0 || red.Rank == cols {
		return nil
	}

	basis := mat.CSRMat(cols-red.Rank, cols)
	next := 0
	isPivot := make([]bool, cols)
	for _, p := range red.Pivots {
		isPivot[p] = true
	}
	for free := 0; free < cols; free++ {
		if isPivot[free] {
			continue
		}
		vec := mat.CSRVec(cols)
		vec.Set(free, 1)
		for i, p := range red.Pivots {
			if red.R.At(i, free) == 1 {
				vec.Set(p, 1)
			}
		}
		basis.SetRow(next, vec)
		next++
	}
	return basis
}

// Inverse returns the mod 2 inverse of a square matrix m, computed from the
// transform accumulated while fully reducing m (the identity-augmentation
// [m|I] method). Returns ErrSingular if m does not have full rank.
func Inverse(ctx context.Context, m mat.SparseMat, threads int) (mat.SparseMat, error) {
	rows, cols := m.Dims()
	if rows != cols {
		panic(fmt.Sprintf("square matrix required but found shape == (%v, %v)", rows, cols))
	}

	red := RowEchelon(ctx, m, true, threads)
	if red.Rank < 0 {
		return nil, ctx.Err()
	}
	if red.Rank < rows {
		return nil, fmt.Errorf("rank == %v of a %vx%v matrix: %w", red.Rank, rows, cols, ErrSingular)
	}
	return red.T, nil
}

// Mul returns a*b (mod 2).
func Mul(a, b mat.SparseMat) mat.SparseMat {
	aRows, aCols := a.Dims()
	bRows, bCols := b.Dims()
	if aCols != bRows {
		panic(fmt.Sprintf("a columns == %v must equal b rows == %v", aCols, bRows))
	}

	result := mat.CSRMat(aRows, bCols)
	for i := 0; i < aRows; i++ {
		row := mat.DOKVec(bCols)
		row.MulMat(a.Row(i), b)
		result.SetRow(i, row)
	}
	return result
}

// Kron returns the Kronecker product a⊗b.
func Kron(a, b mat.SparseMat) mat.SparseMat {
	aRows, aCols := a.Dims()
	bRows, bCols := b.Dims()

	result := mat.DOKMat(aRows*bRows, aCols*bCols)
	for i := 0; i < aRows; i++ {
		for _, j := range a.Row(i).NonzeroArray() {
			result.SetMatrix(b, i*bRows, j*bCols)
		}
	}
	return result
}

// VStack returns a new matrix with the rows of a followed by the rows of b.
func VStack(a, b mat.SparseMat) mat.SparseMat {
	aRows, aCols := a.Dims()
	bRows, bCols := b.Dims()
	if aCols != bCols {
		panic(fmt.Sprintf("a columns == %v must equal b columns == %v", aCols, bCols))
	}

	result := mat.DOKMat(aRows+bRows, aCols)
	result.SetMatrix(a, 0, 0)
	result.SetMatrix(b, aRows, 0)
	return result
}

// HStack returns a new matrix with the columns of a followed by the columns of b.
func HStack(a, b mat.SparseMat) mat.SparseMat {
	aRows, aCols := a.Dims()
	bRows, bCols := b.Dims()
	if aRows != bRows {
		panic(fmt.Sprintf("a rows == %v must equal b rows == %v", aRows, bRows))
	}

	result := mat.DOKMat(aRows, aCols+bCols)
	result.SetMatrix(a, 0, 0)
	result.SetMatrix(b, 0, aCols)
	return result
}

// IsZero returns true if m has no nonzero entries.
func IsZero(m mat.SparseMat) bool {
	rows, _ := m.Dims()
	for i := 0; i < rows; i++ {
		if len(m.Row(i).NonzeroArray()) > 0 {
			return false
		}
	}
	return true
}
