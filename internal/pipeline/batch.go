package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// batchConcurrency bounds parallel runs in OptimizeBatch. Each run is pure
// CPU work, so a small fixed limit keeps memory predictable.
const batchConcurrency = 4

// Request pairs one resume with one job description for batch optimization.
type Request struct {
	Resume         types.ResumeDocument
	JobDescription string
}

// OptimizeBatch runs each request through the pipeline concurrently and
// returns results in input order. The first error cancels outstanding runs.
func (o *Optimizer) OptimizeBatch(ctx context.Context, requests []Request) ([]*types.OptimizationResult, error) {
	results := make([]*types.OptimizationResult, len(requests))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			result, err := o.Optimize(ctx, req.Resume, req.JobDescription)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
