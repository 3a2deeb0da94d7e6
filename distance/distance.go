// Package distance computes minimum code distances of classical binary codes
// given their parity check matrices. The search is combinatorial over the
// codeword space, so callers with large codes should treat these functions as
// arbitrarily expensive and precompute or bound the distance themselves.
package distance

import (
	"context"
	"math"
	"os"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/qecc/mod2"
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat/combin"
)

// Inf is the distance reported for a code whose only codeword is zero.
const Inf = math.MaxInt

// Oracle computes the minimum distance of the code with parity check matrix h.
// threads specifies the number of threads to use, <=0 means use the number of cpus.
type Oracle func(ctx context.Context, h mat.SparseMat, threads int) (int, error)

// BruteForce finds the exact minimum distance by scanning every nonzero
// codeword, built from combinations of the nullspace basis rows of h.
// The cost is 2^k-1 weight evaluations for a code of dimension k.
func BruteForce(ctx context.Context, h mat.SparseMat, threads int) (int, error) {
	basis := mod2.Nullspace(ctx, h, threads)
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if basis == nil {
		return Inf, nil
	}
	k, n := basis.Dims()

	showBar := logrus.GetLevel() == logrus.DebugLevel
	total := 1<<uint(k) - 1
	bar := pb.Full.New(total)
	bar.Set("prefix", "Processing Codeword ")
	bar.SetWriter(os.Stdout)
	if showBar {
		bar.Start()
	}

	best := Inf
	mut := sync.Mutex{}
	for size := 1; size <= k; size++ {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		count := combin.Binomial(k, size)
		pool := threadpool.NewFixedSize(ctx, threads, count)
		gen := combin.NewCombinationGenerator(k, size)
		for gen.Next() {
			combo := gen.Combination(nil)
			pool.Add(func() {
				if showBar {
					bar.Increment()
				}
				word := mat.CSRVec(n)
				for _, r := range combo {
					word.Add(word, basis.Row(r))
				}
				weight := word.HammingWeight()
				mut.Lock()
				if weight > 0 && weight < best {
					best = weight
				}
				mut.Unlock()
			})
		}
		pool.Wait()
	}
	if showBar {
		bar.Finish()
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	logrus.Debugf("BruteForce distance == %v over %v codewords", best, total)
	return best, nil
}
