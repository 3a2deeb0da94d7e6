package css

import (
	"context"
	"sync"

	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
)

// Girth returns the length of the shortest cycle found in the Tanner graphs
// of hx and hz, or -1 if both graphs are cycle free. Short cycles degrade
// LDPC style decoding, so the girth is reported alongside L and Q.
// Cancellation is an error, never a -1, so callers can tell the two apart.
func (c *Code) Girth(ctx context.Context) (int, error) {
	gx := girth(ctx, c.hx, c.Threads)
	gz := girth(ctx, c.hz, c.Threads)
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if gx == -1 {
		return gz, nil
	}
	if gz == -1 {
		return gx, nil
	}
	return min(gx, gz), nil
}

// girth runs a BFS from every check node; an edge reaching an already visited
// node through a different branch closes a cycle of length
// dist(u)+dist(v)+1, and the minimum over all roots is the girth.
func girth(ctx context.Context, m mat.SparseMat, threads int) int {
	rows, cols := m.Dims()

	//check nodes are 0..rows-1, variable nodes rows..rows+cols-1
	adjacency := make([][]int, rows+cols)
	for i := 0; i < rows; i++ {
		for _, j := range m.Row(i).NonzeroArray() {
			adjacency[i] = append(adjacency[i], rows+j)
			adjacency[rows+j] = append(adjacency[rows+j], i)
		}
	}

	// every cycle alternates between check and variable nodes, so rooting
	// only at check nodes still visits every cycle
	best := -1
	mut := sync.Mutex{}
	pool := threadpool.NewFixedSize(ctx, threads, rows)
	for i := 0; i < rows; i++ {
		root := i
		pool.Add(func() {
			g := shortestCycle(adjacency, root)
			mut.Lock()
			if g > 0 && (best == -1 || g < best) {
				best = g
			}
			mut.Unlock()
		})
	}
	pool.Wait()

	return best
}

func shortestCycle(adjacency [][]int, root int) int {
	dist := make([]int, len(adjacency))
	parent := make([]int, len(adjacency))
	for i := range dist {
		dist[i] = -1
		parent[i] = -1
	}
	dist[root] = 0

	best := -1
	queue := []int{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adjacency[u] {
			if v == parent[u] {
				continue
			}
			if dist[v] == -1 {
				dist[v] = dist[u] + 1
				parent[v] = u
				queue = append(queue, v)
				continue
			}
			cycle := dist[u] + dist[v] + 1
			if best == -1 || cycle < best {
				best = cycle
			}
		}
	}
	return best
}
