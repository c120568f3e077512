// Package search finds needle matches in a line-oriented document and
// reports them as document ranges, forward or backward from the cursor,
// optionally limited to the selection and wrapping around the scope.
package search

import (
	"iter"

	"github.com/bethropolis/seek/internal/logger"
	"github.com/bethropolis/seek/internal/types"
)

// Engine answers find and find-all queries using its current options.
// An Engine must not be reconfigured while a search is running.
type Engine struct {
	opts Options
}

// New creates an engine configured with opts.
func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// NewDefault creates an engine with DefaultOptions.
func NewDefault() *Engine {
	return New(DefaultOptions())
}

// Options returns the engine's current settings.
func (e *Engine) Options() Options {
	return e.opts
}

// Set merges the supplied fields of p into the current settings and returns
// the engine for chaining.
func (e *Engine) Set(p Partial) *Engine {
	e.opts = e.opts.With(p)
	return e
}

// Matches returns the lazy sequence of match ranges in search order. An
// empty needle produces an empty sequence. The only error is a needle that
// does not compile.
func (e *Engine) Matches(doc Document) (iter.Seq[types.Range], error) {
	opts := e.opts
	if opts.Needle == "" {
		return func(func(types.Range) bool) {}, nil
	}
	re, err := compile(opts)
	if err != nil {
		logger.Warnf("search: %v", err)
		return nil, err
	}

	return func(yield func(types.Range) bool) {
		for seg := range lines(doc, opts) {
			for _, r := range extract(re, seg, opts.Backwards) {
				if !yield(r) {
					return
				}
			}
		}
	}, nil
}

// Find returns the first match in search order, or nil if there is none.
func (e *Engine) Find(doc Document) (*types.Range, error) {
	seq, err := e.Matches(doc)
	if err != nil {
		return nil, err
	}
	for r := range seq {
		logger.DebugTagf("search", "Find %q: match at %s", e.opts.Needle, r)
		return &r, nil
	}
	logger.DebugTagf("search", "Find %q: no match", e.opts.Needle)
	return nil, nil
}

// FindAll returns every match in search order.
func (e *Engine) FindAll(doc Document) ([]types.Range, error) {
	seq, err := e.Matches(doc)
	if err != nil {
		return nil, err
	}
	ranges := []types.Range{}
	for r := range seq {
		ranges = append(ranges, r)
	}
	logger.DebugTagf("search", "FindAll %q: %d match(es)", e.opts.Needle, len(ranges))
	return ranges, nil
}

// Count returns the number of matches FindAll would return.
func (e *Engine) Count(doc Document) (int, error) {
	seq, err := e.Matches(doc)
	if err != nil {
		return 0, err
	}
	n := 0
	for range seq {
		n++
	}
	return n, nil
}
