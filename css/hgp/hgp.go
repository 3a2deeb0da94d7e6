// Package hgp builds CSS codes with the hypergraph product construction,
// which produces a valid CSS code from any pair of classical seed codes.
package hgp

import (
	"context"
	"fmt"

	"github.com/nathanhack/qecc/css"
	"github.com/nathanhack/qecc/distance"
	"github.com/nathanhack/qecc/mod2"
	mat "github.com/nathanhack/sparsemat"
)

// Code is a CSS code whose stabilizer matrices are derived from two classical
// parity check matrices h1 and h2:
//
//	hx = [ h1⊗I_n2 | I_m1⊗h2.T ]
//	hz = [ I_n1⊗h2 | h1.T⊗I_m2 ]
//
// The distance derivation is overridden with the classical bound
// min(d(h1), d(h1.T), d(h2), d(h2.T)), since computing it from hx/hz directly
// is generally intractable.
type Code struct {
	*css.Code
	h1, h2 mat.SparseMat
	d      *int
}

// New creates the hypergraph product code of h1 and h2. A nil h2 means a copy
// of h1. Inputs follow the same coercion rules as css.New.
func New(h1, h2 interface{}, name string) (*Code, error) {
	if h1 == nil {
		return nil, fmt.Errorf("h1 is required: %w", css.ErrConversion)
	}
	a, err := css.Coerce(h1)
	if err != nil {
		return nil, fmt.Errorf("h1: %w", err)
	}
	var b mat.SparseMat
	if h2 == nil {
		b = mat.CSRMatCopy(a)
	} else {
		b, err = css.Coerce(h2)
		if err != nil {
			return nil, fmt.Errorf("h2: %w", err)
		}
	}

	m1, n1 := a.Dims()
	m2, n2 := b.Dims()
	hx := mod2.HStack(mod2.Kron(a, mat.CSRIdentity(n2)), mod2.Kron(mat.CSRIdentity(m1), b.T()))
	hz := mod2.HStack(mod2.Kron(mat.CSRIdentity(n1), b), mod2.Kron(a.T(), mat.CSRIdentity(m2)))

	inner, err := css.New(hx, hz, name)
	if err != nil {
		return nil, err
	}
	return &Code{Code: inner, h1: a, h2: b}, nil
}

// H1 returns the first classical seed parity check matrix.
func (c *Code) H1() mat.SparseMat {
	return c.h1
}

// H2 returns the second classical seed parity check matrix.
func (c *Code) H2() mat.SparseMat {
	return c.h2
}

// D returns the hypergraph product distance bound, the minimum classical
// distance over h1, h1.T, h2 and h2.T. The result is cached into the
// underlying code so reporting and saving see the same value.
func (c *Code) D(ctx context.Context) (int, error) {
	if c.d == nil {
		if known, ok := c.KnownDistance(); ok {
			c.d = &known
			return known, nil
		}

		oracle := c.DistanceOracle
		if oracle == nil {
			oracle = distance.BruteForce
		}
		d := distance.Inf
		for _, h := range []mat.SparseMat{c.h1, c.h1.T(), c.h2, c.h2.T()} {
			hd, err := oracle(ctx, h, c.Threads)
			if err != nil {
				return 0, err
			}
			d = min(d, hd)
		}
		c.d = &d
		if err := c.Set(css.Overrides{D: &d}); err != nil {
			return 0, err
		}
	}
	return *c.d, nil
}
