package engine

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mrhapile/symptom-diagnoser/pkg/types"
)

// ScreenOption configures Screen.
type ScreenOption func(*screenOptions)

type screenOptions struct {
	targets     []string
	concurrency int
}

// WithTargets limits screening to the given conclusions instead of all of them.
func WithTargets(targets ...string) ScreenOption {
	return func(o *screenOptions) {
		o.targets = append([]string(nil), targets...)
	}
}

// WithConcurrency bounds the number of verifications running at once.
// Values below 1 are ignored.
func WithConcurrency(n int) ScreenOption {
	return func(o *screenOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// Screen verifies every conclusion of the catalog against the same initial
// facts. Each verification gets its own fact set and trace; only the catalog
// is shared. Results come back in target order, each with the advisory text
// of the rules in the derivation that established it.
func Screen(ctx context.Context, cat Catalog, initial []string, opts ...ScreenOption) ([]types.ScreeningResult, error) {
	if isNil(cat) {
		return nil, ErrNilCatalog
	}

	o := &screenOptions{concurrency: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(o)
	}
	targets := o.targets
	if targets == nil {
		targets = conclusions(cat)
	}

	results := make([]types.ScreeningResult, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, target := range targets {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, used, err := verify(cat, target, initial)
			if err != nil {
				return fmt.Errorf("screen %q: %w", target, err)
			}
			results[i] = summarize(cat, res, used)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// summarize reduces a verification to its verdict and the advisory text of
// the rules at the used catalog positions, in derivation order.
func summarize(cat Catalog, res types.VerificationResult, used []int) types.ScreeningResult {
	out := types.ScreeningResult{
		Target:  res.Target,
		Success: res.Success,
		Steps:   len(res.Trace),
	}

	seen := types.NewFactSet()
	for _, pos := range used {
		advisory := cat.Rule(pos).Advisory
		if advisory != "" && seen.Add(advisory) {
			out.Advisory = append(out.Advisory, advisory)
		}
	}
	return out
}
