package storage

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency bounds ResolveAll when no limit is given.
const DefaultBatchConcurrency = 8

// BatchOption configures ResolveAll.
type BatchOption func(*batchOptions)

type batchOptions struct {
	resolve     []Option
	concurrency int
}

// WithConcurrency bounds in-flight resolutions. Values below 1 are ignored.
func WithConcurrency(n int) BatchOption {
	return func(o *batchOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithResolveOptions applies opts to every reference in the batch.
func WithResolveOptions(opts ...Option) BatchOption {
	return func(o *batchOptions) {
		o.resolve = append(o.resolve, opts...)
	}
}

// ResolveAll resolves refs with the resolver's client and returns results in input order.
// Degraded results do not fail the batch; the first returned error cancels
// what is still pending and is returned.
func (r *Resolver) ResolveAll(ctx context.Context, refs []string, opts ...BatchOption) ([]Resolved, error) {
	o := batchOptions{concurrency: DefaultBatchConcurrency}
	for _, opt := range opts {
		opt(&o)
	}

	results := make([]Resolved, len(refs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, raw := range refs {
		g.Go(func() error {
			res, err := r.Resolve(ctx, raw, o.resolve...)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
