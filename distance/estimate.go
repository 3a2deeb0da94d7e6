package distance

import (
	"context"
	"math"
	"math/rand"
	"os"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/qecc/mod2"
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
)

// Estimate samples trials random nonzero codewords and returns the smallest
// weight seen. The result is an upper bound on the true distance, useful when
// the code dimension makes BruteForce intractable.
// threads specifies the number of threads to use, <=0 means use the number of cpus.
func Estimate(ctx context.Context, h mat.SparseMat, trials, threads int) (int, error) {
	basis := mod2.Nullspace(ctx, h, threads)
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if basis == nil {
		return Inf, nil
	}
	k, n := basis.Dims()

	showBar := logrus.GetLevel() == logrus.DebugLevel
	bar := pb.Full.New(trials)
	bar.Set("prefix", "Processing Trial ")
	bar.SetWriter(os.Stdout)
	if showBar {
		bar.Start()
	}

	best := Inf
	weights := avgstd.AvgStd{}
	mut := sync.Mutex{}
	pool := threadpool.NewFixedSize(ctx, threads, trials)
	for i := 0; i < trials; i++ {
		pool.Add(func() {
			if showBar {
				bar.Increment()
			}

			word := mat.CSRVec(n)
			for word.HammingWeight() == 0 {
				for r := 0; r < k; r++ {
					if rand.Intn(2) == 1 {
						word.Add(word, basis.Row(r))
					}
				}
			}
			weight := word.HammingWeight()

			mut.Lock()
			weights.Update(float64(weight))
			if weight > 0 && weight < best {
				best = weight
			}
			mut.Unlock()
		})
	}
	pool.Wait()
	if showBar {
		bar.Finish()
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	logrus.Debugf("Estimate distance <= %v, sampled weights %0.02f(+/-%0.02f) over %v trials",
		best, weights.Mean, math.Sqrt(weights.SampledVariance()), weights.Count)
	return best, nil
}
