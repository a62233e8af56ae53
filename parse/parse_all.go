package parse

import (
	"context"
	"fmt"

	"github.com/signadot/go-omi/omi"
	"golang.org/x/sync/errgroup"
)

// ParseAll decodes docs concurrently with at most limit documents in flight
// (no limit when limit <= 0). The result is in the order of docs. The first
// failure cancels the remaining work and is returned with the index of its
// document.
func ParseAll(ctx context.Context, docs [][]byte, limit int, opts ...ParseOption) ([]*omi.Envelope, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	res := make([]*omi.Envelope, len(docs))
	for i, d := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			env, err := Parse(d, opts...)
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			res[i] = env
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
