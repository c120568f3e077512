package search

import (
	"fmt"
	"regexp"
)

// PatternError reports a needle that could not be compiled into a pattern.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("search: invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// compile assembles the matcher for opts. A fresh regexp is built on every
// call since options may change between searches.
func compile(opts Options) (*regexp.Regexp, error) {
	expr := opts.Needle
	if !opts.RegExp {
		expr = regexp.QuoteMeta(expr)
	}
	if opts.WholeWord {
		expr = `\b(?:` + expr + `)\b`
	}
	if !opts.CaseSensitive {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Pattern: opts.Needle, Err: err}
	}
	return re, nil
}

// Pattern compiles the matcher these options describe. Callers that need
// the regexp itself (for example to expand replacement templates) use it;
// the engine compiles internally on every search.
func (o Options) Pattern() (*regexp.Regexp, error) {
	return compile(o)
}
