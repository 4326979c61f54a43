package suite

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/chriserin/tloc/internal/locate"
	"github.com/chriserin/tloc/internal/style"
)

// Result holds the selections of one suite, or the reason it could not be
// resolved.
type Result struct {
	Class      string
	Style      style.Style
	Selections []locate.Selection
	Err        error
}

// Resolve resolves suites concurrently, at most limit at a time. A suite
// whose style cannot be resolved reports Err without affecting the others;
// the returned error is only set when ctx is cancelled. A nil log uses
// slog.Default.
func Resolve(ctx context.Context, reg *style.Registry, suites []Suite, limit int, log *slog.Logger) ([]Result, error) {
	if log == nil {
		log = slog.Default()
	}
	results := make([]Result, len(suites))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, s := range suites {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = resolveOne(reg, s, log)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func resolveOne(reg *style.Registry, s Suite, log *slog.Logger) Result {
	res := Result{Class: s.Tree.ClassName()}
	res.Style, _ = style.Lookup(s.Type)

	r, err := reg.ResolverFor(s.Type)
	if err != nil {
		log.Debug("suite skipped", "class", res.Class, "err", err)
		res.Err = err
		return res
	}
	res.Selections = locate.ResolveAll(r, s.Tree)
	log.Debug("suite resolved", "class", res.Class, "style", res.Style, "selections", len(res.Selections))
	return res
}
