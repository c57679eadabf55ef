// Package search implements the inverse problems: given observed status
// constraints, enumerate every feasible seed. Three variants share a
// scaffold (IVRange/IVRanges and the outer-loop worker pool) but each has
// its own Params type and returns a distinct result shape
// per spec — a status match carries full IVs and PID, an egg-PID match
// carries only a PID, an egg-IV match carries only IVs — modeled as
// separate Result types rather than one struct with optional fields.
package search

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// IVRange is an inclusive range of individual values.
type IVRange struct {
	Min, Max uint8
}

// Contains reports whether v falls within the range.
func (r IVRange) Contains(v uint8) bool {
	return v >= r.Min && v <= r.Max
}

func (r IVRange) width() int {
	return int(r.Max) - int(r.Min)
}

// IVRanges constrains all six stats.
type IVRanges struct {
	HP, Atk, Def, Spe, SpA, SpD IVRange
}

// Progress is called after each outer-loop unit of work completes, with
// the number of outer iterations finished so far and the total. A nil
// Progress is a no-op; callers that want a rendered bar can wire this to
// pkg/progressbar.
type Progress func(done, total int)

// triple bundles the three IV ranges the game draws together in one
// 16-bit value.
type triple struct {
	ranges [3]IVRange
}

func (t triple) volume() int {
	vol := 1
	for _, r := range t.ranges {
		vol *= r.width() + 1
	}
	return vol
}

// splitRanges partitions the six IV ranges into the two stat triples the
// game's RNG draws independently: (HP, Atk, Def) and (Spe, SpA, SpD).
func splitRanges(rs IVRanges) (first, second triple) {
	first = triple{ranges: [3]IVRange{rs.HP, rs.Atk, rs.Def}}
	second = triple{ranges: [3]IVRange{rs.Spe, rs.SpA, rs.SpD}}
	return
}

// chooseSmaller picks the triple with the smaller cartesian-product
// volume to enumerate, per spec's pruning strategy. Ties resolve to the
// first triple (forward = true), the open-question resolution recorded
// in DESIGN.md.
func chooseSmaller(rs IVRanges) (smaller, larger triple, forward bool) {
	first, second := splitRanges(rs)
	if first.volume() <= second.volume() {
		return first, second, true
	}
	return second, first, false
}

// runOverOuterDimension parallelizes work over an outer dimension of
// outerCount indices. In the status and egg-IV searches each call to work
// covers one value of the first IV in the smaller triple, fully
// enumerating the remaining two IVs and the 2*65536 draw candidates
// inside; the egg-PID search uses one call per time_sum. Workers share no mutable state — each
// iteration is a pure function of its index — so results are simply
// concatenated; callers needing a deterministic order sort afterward.
// ctx is checked once per outer iteration, matching the "no suspension
// points, coarse stop-all" concurrency model in spec §5.
func runOverOuterDimension[T any](ctx context.Context, outerCount int, progress Progress, work func(outerIndex int) []T) []T {
	if outerCount == 0 {
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > outerCount {
		workers = outerCount
	}
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan int)
	results := make(chan []T, workers)

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for idx := range jobs {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				results <- work(idx)
			}
			return nil
		})
	}

	go func() {
		defer close(jobs)
		for i := 0; i < outerCount; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return
			}
		}
	}()

	var all []T
	done := 0
	collectDone := make(chan struct{})
	go func() {
		defer close(collectDone)
		for i := 0; i < outerCount; i++ {
			r, ok := <-results
			if !ok {
				return
			}
			all = append(all, r...)
			done++
			if progress != nil {
				progress(done, outerCount)
			}
		}
	}()

	_ = g.Wait()
	close(results)
	<-collectDone

	return all
}
