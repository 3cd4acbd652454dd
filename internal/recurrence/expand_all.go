package recurrence

import (
	"context"

	"golang.org/x/sync/errgroup"

	"cashlog/internal/core"
)

// ExpandAll expands every recurring template in tmpls over
// [rangeStart, rangeEnd], one goroutine per template. Expansion is pure, so
// concurrent runs are safe. Output preserves the input template order;
// non-recurring entries contribute nothing. The only possible error is
// context cancellation.
func ExpandAll(ctx context.Context, tmpls []core.Transaction, rangeStart, rangeEnd core.Date) ([]core.Transaction, error) {
	results := make([][]core.Transaction, len(tmpls))

	g, ctx := errgroup.WithContext(ctx)
	for i, tmpl := range tmpls {
		i, tmpl := i, tmpl
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Expand(tmpl, rangeStart, rangeEnd)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []core.Transaction
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}
