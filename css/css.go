// Package css models CSS quantum error correcting codes built from two
// classical binary parity check matrices hx and hz. Block parameters, logical
// operator bases, canonical forms and the validity report are derived lazily
// from the stabilizer matrices and cached on first access.
package css

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/nathanhack/qecc/alist"
	"github.com/nathanhack/qecc/distance"
	"github.com/nathanhack/qecc/mod2"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
	gonum "gonum.org/v1/gonum/mat"
)

var (
	// ErrConversion means the caller supplied matrix could not be coerced
	// into a dense binary form.
	ErrConversion = errors.New("matrix cannot be converted to a binary matrix")
	// ErrShapeMismatch means hx and hz disagree on the block length.
	ErrShapeMismatch = errors.New("hx and hz matrices must have equal numbers of columns")
)

const defaultName = "<unnamed CSS code>"

// Code is a CSS code with stabilizer generator matrices hx and hz.
//
// Derived fields are computed at most once, on first access, then frozen; the
// matrices returned by accessors are the cached ones and must not be modified.
// Lazy population is not synchronized, so concurrent first accesses require
// external locking; once populated, concurrent reads are safe.
type Code struct {
	name   string
	hx, hz mat.SparseMat

	// Threads is the thread count handed to the mod2 engine and the distance
	// oracle, <=0 means use the number of cpus.
	Threads int
	// DistanceOracle computes classical code distances for D. Defaults to
	// distance.BruteForce, which is combinatorial; callers needing bounded
	// cost should Set a precomputed D instead.
	DistanceOracle distance.Oracle

	n, k, l, q, d *int
	lx, lz        mat.SparseMat
	clx, clz      mat.SparseMat
	valid         *bool
	report        *Report
}

// Coerce copies m into a dense binary sparsemat form. It accepts a
// mat.SparseMat, a [][]int, or a gonum mat.Matrix whose entries are exactly 0
// or 1; anything else returns ErrConversion.
func Coerce(m interface{}) (mat.SparseMat, error) {
	switch v := m.(type) {
	case mat.SparseMat:
		return mat.CSRMatCopy(v), nil
	case [][]int:
		if len(v) == 0 || len(v[0]) == 0 {
			return nil, fmt.Errorf("empty matrix: %w", ErrConversion)
		}
		cols := len(v[0])
		result := mat.CSRMat(len(v), cols)
		for i, row := range v {
			if len(row) != cols {
				return nil, fmt.Errorf("ragged row %v: %w", i, ErrConversion)
			}
			for j, val := range row {
				switch val {
				case 0:
				case 1:
					result.Set(i, j, 1)
				default:
					return nil, fmt.Errorf("entry (%v,%v) == %v: %w", i, j, val, ErrConversion)
				}
			}
		}
		return result, nil
	case gonum.Matrix:
		rows, cols := v.Dims()
		if rows == 0 || cols == 0 {
			return nil, fmt.Errorf("empty matrix: %w", ErrConversion)
		}
		result := mat.CSRMat(rows, cols)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				switch v.At(i, j) {
				case 0:
				case 1:
					result.Set(i, j, 1)
				default:
					return nil, fmt.Errorf("entry (%v,%v) == %v: %w", i, j, v.At(i, j), ErrConversion)
				}
			}
		}
		return result, nil
	}
	return nil, fmt.Errorf("%T: %w", m, ErrConversion)
}

// New creates a CSS code from the stabilizer matrices hx and hz, deep copying
// both. A nil hz means a copy of hx. An empty name gets a default.
func New(hx, hz interface{}, name string) (*Code, error) {
	if name == "" {
		name = defaultName
	}
	if hx == nil {
		return nil, fmt.Errorf("hx is required: %w", ErrConversion)
	}

	x, err := Coerce(hx)
	if err != nil {
		return nil, fmt.Errorf("hx: %w", err)
	}
	var z mat.SparseMat
	if hz == nil {
		z = mat.CSRMatCopy(x)
	} else {
		z, err = Coerce(hz)
		if err != nil {
			return nil, fmt.Errorf("hz: %w", err)
		}
	}

	_, xCols := x.Dims()
	_, zCols := z.Dims()
	if xCols != zCols {
		return nil, fmt.Errorf("hx has %v columns while hz has %v: %w", xCols, zCols, ErrShapeMismatch)
	}

	return &Code{name: name, hx: x, hz: z, DistanceOracle: distance.BruteForce}, nil
}

// Name returns the code's name.
func (c *Code) Name() string {
	return c.name
}

// HX returns the X stabilizer generator matrix.
func (c *Code) HX() mat.SparseMat {
	return c.hx
}

// HZ returns the Z stabilizer generator matrix.
func (c *Code) HZ() mat.SparseMat {
	return c.hz
}

// N returns the block length (the shared column count of hx and hz).
func (c *Code) N() int {
	if c.n == nil {
		_, n := c.hx.Dims()
		c.n = &n
	}
	return *c.n
}

// K returns the code dimension N - rank(hx) - rank(hz).
func (c *Code) K() int {
	if c.k == nil {
		ctx := context.Background()
		k := c.N() - mod2.Rank(ctx, c.hx, c.Threads) - mod2.Rank(ctx, c.hz, c.Threads)
		c.k = &k
	}
	return *c.k
}

// L returns the max column weight across hx and hz (LDPC sparsity parameter).
func (c *Code) L() int {
	if c.l == nil {
		l := max(maxColumnWeight(c.hx), maxColumnWeight(c.hz))
		c.l = &l
	}
	return *c.l
}

// Q returns the max row weight across hx and hz (LDPC sparsity parameter).
func (c *Code) Q() int {
	if c.q == nil {
		q := max(maxRowWeight(c.hx), maxRowWeight(c.hz))
		c.q = &q
	}
	return *c.q
}

func maxColumnWeight(m mat.SparseMat) int {
	_, cols := m.Dims()
	weights := make([]int, cols)
	for j := 0; j < cols; j++ {
		weights[j] = m.Column(j).HammingWeight()
	}
	return slices.Max(weights)
}

func maxRowWeight(m mat.SparseMat) int {
	rows, _ := m.Dims()
	weights := make([]int, rows)
	for i := 0; i < rows; i++ {
		weights[i] = m.Row(i).HammingWeight()
	}
	return slices.Max(weights)
}

// computeLogical finds a basis of logical operators: vectors in the kernel of
// kernelOf that are independent of the row space of imageOf. The kernel basis
// is stacked under the row basis and the transpose of the stack is reduced;
// the kernel rows landing on pivot columns are exactly the representatives
// that extend the row space to a larger independent set. A code with no
// logical qubits gets an empty 0xN basis so dimensions stay well defined.
func computeLogical(kernelOf, imageOf mat.SparseMat, threads int) mat.SparseMat {
	ctx := context.Background()
	_, n := kernelOf.Dims()
	ker := mod2.Nullspace(ctx, kernelOf, threads)
	if ker == nil {
		return mat.CSRMat(0, n)
	}
	img := mod2.RowBasis(ctx, imageOf, threads)
	if img == nil {
		return ker
	}

	imgRows, _ := img.Dims()
	stack := mod2.VStack(img, ker)

	red := mod2.RowEchelon(ctx, stack.T(), false, threads)
	indices := make([]int, 0, imgRows)
	for _, p := range red.Pivots {
		if p >= imgRows {
			indices = append(indices, p)
		}
	}
	if len(indices) == 0 {
		return mat.CSRMat(0, n)
	}

	logicals := mat.CSRMat(len(indices), n)
	for i, index := range indices {
		logicals.SetRow(i, stack.Row(index))
	}
	return logicals
}

// LX returns the X logical operator basis (in the kernel of hz, independent
// of the row space of hx), 0xN when there are no logical qubits.
func (c *Code) LX() mat.SparseMat {
	if c.lx == nil {
		c.lx = computeLogical(c.hz, c.hx, c.Threads)
	}
	return c.lx
}

// LZ returns the Z logical operator basis (in the kernel of hx, independent
// of the row space of hz), 0xN when there are no logical qubits.
func (c *Code) LZ() mat.SparseMat {
	if c.lz == nil {
		c.lz = computeLogical(c.hx, c.hz, c.Threads)
	}
	return c.lz
}

// CanonicalLZ returns the Z logical basis used as the canonical reference.
func (c *Code) CanonicalLZ() mat.SparseMat {
	if c.clz == nil {
		c.clz = c.LZ()
	}
	return c.clz
}

// CanonicalLX rebases the X logicals so canonical_lx*lz^T == I (mod 2), the
// dual basis normalization of the symplectic pairing. A degenerate pairing
// surfaces as mod2.ErrSingular.
func (c *Code) CanonicalLX() (mat.SparseMat, error) {
	if c.clx == nil {
		pairing := mod2.Mul(c.LX(), c.LZ().T())
		inverse, err := mod2.Inverse(context.Background(), pairing, c.Threads)
		if err != nil {
			return nil, fmt.Errorf("logical pairing lx@lz.T: %w", err)
		}
		c.clx = mod2.Mul(inverse, c.LX())
	}
	return c.clx, nil
}

// D returns the code distance min(distance(hx), distance(hz)) using the
// DistanceOracle. The oracle may be arbitrarily expensive; cancellation is
// only through ctx.
func (c *Code) D(ctx context.Context) (int, error) {
	if c.d == nil {
		oracle := c.DistanceOracle
		if oracle == nil {
			oracle = distance.BruteForce
		}
		dx, err := oracle(ctx, c.hx, c.Threads)
		if err != nil {
			return 0, err
		}
		dz, err := oracle(ctx, c.hz, c.Threads)
		if err != nil {
			return 0, err
		}
		d := min(dx, dz)
		c.d = &d
	}
	return *c.d, nil
}

// KnownDistance returns the cached or overridden distance without triggering
// a distance search.
func (c *Code) KnownDistance() (int, bool) {
	if c.d == nil {
		return 0, false
	}
	return *c.d, true
}

// CombinedH returns the block stacking [0 hz; hx 0] of the stabilizer
// matrices, used for combined code reporting.
func (c *Code) CombinedH() mat.SparseMat {
	xRows, n := c.hx.Dims()
	zRows, _ := c.hz.Dims()
	h := mat.DOKMat(zRows+xRows, 2*n)
	h.SetMatrix(c.hz, 0, n)
	h.SetMatrix(c.hx, zRows, 0)
	return h
}

// CombinedL returns the block stacking [0 lz; lx 0] of the logical bases,
// used for combined code reporting.
func (c *Code) CombinedL() mat.SparseMat {
	lx, lz := c.LX(), c.LZ()
	xRows, n := lx.Dims()
	zRows, _ := lz.Dims()
	l := mat.DOKMat(zRows+xRows, 2*n)
	l.SetMatrix(lz, 0, n)
	l.SetMatrix(lx, zRows, 0)
	return l
}

// CodeParams renders the (L,Q)-[[N,K,D]] parameter string. D shows as "?"
// until computed or overridden so printing never starts a distance search.
func (c *Code) CodeParams() string {
	d := "?"
	if c.d != nil {
		if *c.d == distance.Inf {
			d = "inf"
		} else {
			d = strconv.Itoa(*c.d)
		}
	}
	return fmt.Sprintf("(%v,%v)-[[%v,%v,%v]]", c.L(), c.Q(), c.N(), c.K(), d)
}

func (c *Code) String() string {
	return fmt.Sprintf("%v <params: %v>", c.name, c.CodeParams())
}

// Overrides carries caller supplied values for the derived fields. Non-nil
// entries are honored on every later access instead of being computed.
type Overrides struct {
	N, K, L, Q, D            *int
	LX, LZ                   mat.SparseMat
	CanonicalLX, CanonicalLZ mat.SparseMat
	Valid                    *bool
}

// Set applies the overrides. Matrix overrides are copied and must have N
// columns, and K rows once K is known. Overriding a value that was already
// computed or set is honored but warns, since the model cannot verify caller
// supplied results.
func (c *Code) Set(o Overrides) error {
	matrices := []struct {
		name string
		m    mat.SparseMat
		slot *mat.SparseMat
	}{
		{"lx", o.LX, &c.lx},
		{"lz", o.LZ, &c.lz},
		{"canonical_lx", o.CanonicalLX, &c.clx},
		{"canonical_lz", o.CanonicalLZ, &c.clz},
	}
	for _, override := range matrices {
		if override.m == nil {
			continue
		}
		rows, cols := override.m.Dims()
		if cols != c.N() {
			return fmt.Errorf("%v must have %v columns but found %v: %w", override.name, c.N(), cols, ErrShapeMismatch)
		}
		if c.k != nil && rows != *c.k {
			return fmt.Errorf("%v must have %v rows but found %v: %w", override.name, *c.k, rows, ErrShapeMismatch)
		}
	}

	scalars := []struct {
		name string
		v    *int
		slot **int
	}{
		{"N", o.N, &c.n},
		{"K", o.K, &c.k},
		{"L", o.L, &c.l},
		{"Q", o.Q, &c.q},
		{"D", o.D, &c.d},
	}
	for _, override := range scalars {
		if override.v == nil {
			continue
		}
		if *override.slot != nil {
			logrus.Warnf("%v: overriding already populated %v", c.name, override.name)
		}
		value := *override.v
		*override.slot = &value
	}
	for _, override := range matrices {
		if override.m == nil {
			continue
		}
		if *override.slot != nil {
			logrus.Warnf("%v: overriding already populated %v", c.name, override.name)
		}
		*override.slot = mat.CSRMatCopy(override.m)
	}
	if o.Valid != nil {
		if c.valid != nil {
			logrus.Warnf("%v: overriding already populated valid", c.name)
		}
		value := *o.Valid
		c.valid = &value
	}
	return nil
}

// Save writes each named binary matrix property to the file
// {name}_{property}.alist. An empty name means the code's name. Properties
// that are not binary matrices are skipped with a warning.
func (c *Code) Save(properties []string, name string) error {
	if name == "" {
		name = c.name
	}
	for _, property := range properties {
		m := c.matrixProperty(property)
		if m == nil {
			logrus.Warnf("%v is not a binary matrix property, skipping", property)
			continue
		}
		if err := alist.WriteFile(fmt.Sprintf("%v_%v.alist", name, property), m); err != nil {
			return fmt.Errorf("saving %v: %w", property, err)
		}
	}
	return nil
}

func (c *Code) matrixProperty(name string) mat.SparseMat {
	switch name {
	case "hx":
		return c.hx
	case "hz":
		return c.hz
	case "lx":
		return c.LX()
	case "lz":
		return c.LZ()
	case "canonical_lx":
		clx, err := c.CanonicalLX()
		if err != nil {
			logrus.Warnf("canonical_lx: %v", err)
			return nil
		}
		return clx
	case "canonical_lz":
		return c.CanonicalLZ()
	case "h":
		return c.CombinedH()
	case "l":
		return c.CombinedL()
	}
	return nil
}
