package collatz

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// AnalyzeContext is Analyze spread over Config.Workers goroutines. Results
// keep input order. The first error, or ctx cancellation, aborts the batch.
func (e *Engine) AnalyzeContext(ctx context.Context) ([]Stats, error) {
	workers := e.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]Stats, len(e.seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, s := range e.seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			st, err := e.walk(s)
			if err != nil {
				return err
			}
			out[i] = st
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
