package smithwaterman

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// AlignPairs scores every pair on a pool of workers and returns the scores
// in input order.
//
// Contract:
//   - workers <= 0 means runtime.NumCPU(); the pool never exceeds len(pairs).
//   - Each worker owns one workspace and reuses it for all of its pairs, so
//     scratch vectors are never shared between in-flight sweeps.
//   - The first failing pair stops the remaining work; its error is returned
//     wrapped with the pair index. No partial results are returned.
//   - Cancellation of ctx is observed between pairs and returns ctx.Err().
func (al *Aligner) AlignPairs(ctx context.Context, pairs []Pair, workers int) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	scores := make([]float64, len(pairs))
	if len(pairs) == 0 {
		return scores, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(pairs) {
		workers = len(pairs)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int)
	errs := make(chan error, 1)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()

			var ws workspace
			for idx := range jobs {
				if runCtx.Err() != nil {
					continue // drain
				}
				s, err := run(al, &ws, pairs[idx].A, pairs[idx].B)
				if err != nil {
					select {
					case errs <- fmt.Errorf("pair %d: %w", idx, err):
					default:
					}
					cancel()

					continue
				}
				scores[idx] = s
			}
		}()
	}

Feed:
	for idx := range pairs {
		select {
		case <-runCtx.Done():
			break Feed
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	select {
	case err := <-errs:
		return nil, err
	default:
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return scores, nil
}
