package advisor

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Result pairs a request with its decision or error.
type Result struct {
	Request  Request
	Decision Decision
	Err      error
}

// Batch evaluates requests on up to workers goroutines (GOMAXPROCS when
// workers <= 0). Results are returned in input order; a request that fails
// validation records its error in its Result and does not stop the batch.
// The returned error is non-nil only when ctx is cancelled, in which case
// unevaluated results carry ctx.Err().
func (a *Advisor) Batch(ctx context.Context, requests []Request, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(requests))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, req := range requests {
		results[i].Request = req
		if err := gctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			results[i].Decision, results[i].Err = a.Evaluate(req)
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		a.logger.Warn("Batch interrupted", "error", err, "requests", len(requests))
		return results, err
	}
	a.logger.Debug("Batch complete", "requests", len(requests), "workers", workers)
	return results, nil
}
