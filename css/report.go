package css

import (
	"context"
	"fmt"

	"github.com/nathanhack/qecc/mod2"
)

// Outcome is the result of a single validity check.
type Outcome int

const (
	Passed Outcome = iota
	Failed
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case Passed:
		return "Passed"
	case Failed:
		return "Failed"
	case Skipped:
		return "Skipped"
	}
	return fmt.Sprintf("Outcome(%v)", int(o))
}

// CheckResult is one named check's outcome. Err holds the reason when the
// check was Skipped.
type CheckResult struct {
	Name    string
	Outcome Outcome
	Err     error
}

// Report is the structured result of the validity suite. Valid is the AND of
// all checks, with Skipped counting as failing.
type Report struct {
	Checks []CheckResult
	Valid  bool
}

var checks = []struct {
	name string
	fn   func(c *Code) bool
}{
	{"Block dimensions[N, K, lz, lx]", func(c *Code) bool {
		lzRows, lzCols := c.LZ().Dims()
		lxRows, lxCols := c.LX().Dims()
		return c.N() == lzCols && c.N() == lxCols && c.K() == lzRows && c.K() == lxRows
	}},
	{"PCMs commute hz@hx.T==0[hz, hx]", func(c *Code) bool {
		return mod2.IsZero(mod2.Mul(c.hz, c.hx.T()))
	}},
	{"PCMs commute hx@hz.T==0[hx, hz]", func(c *Code) bool {
		return mod2.IsZero(mod2.Mul(c.hx, c.hz.T()))
	}},
	{"lx in ker{hz}[hz, lx]", func(c *Code) bool {
		return mod2.IsZero(mod2.Mul(c.hz, c.LX().T()))
	}},
	{"lz in ker{hx}[hx, lz]", func(c *Code) bool {
		return mod2.IsZero(mod2.Mul(c.hx, c.LZ().T()))
	}},
	{"lx and lz anticommute[lx, lz]", func(c *Code) bool {
		pairing := mod2.Mul(c.LX(), c.LZ().T())
		return mod2.Rank(context.Background(), pairing, c.Threads) == c.K()
	}},
}

// Test evaluates the six structural validity checks in order and returns the
// structured report. Each check is isolated: a panic during its evaluation
// marks it Skipped and the remaining checks still run. The report is cached,
// as is the aggregate (unless valid was already overridden).
func (c *Code) Test() *Report {
	if c.report != nil {
		return c.report
	}

	report := &Report{Checks: make([]CheckResult, 0, len(checks)), Valid: true}
	for _, check := range checks {
		result := CheckResult{Name: check.name}
		ok, err := runCheck(c, check.fn)
		switch {
		case err != nil:
			result.Outcome = Skipped
			result.Err = err
			report.Valid = false
		case ok:
			result.Outcome = Passed
		default:
			result.Outcome = Failed
			report.Valid = false
		}
		report.Checks = append(report.Checks, result)
	}

	c.report = report
	if c.valid == nil {
		valid := report.Valid
		c.valid = &valid
	}
	return report
}

func runCheck(c *Code, fn func(*Code) bool) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("check raised: %v", r)
		}
	}()
	return fn(c), nil
}

// Valid reports whether the code passes the validity suite (or the overridden
// value when one was Set).
func (c *Code) Valid() bool {
	if c.valid == nil {
		valid := c.Test().Valid
		c.valid = &valid
	}
	return *c.valid
}
