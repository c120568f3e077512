package search

import (
	"fmt"
	"strings"
)

// Scope selects the part of a document eligible for matching.
type Scope int

const (
	ScopeAll       Scope = iota + 1 // Whole document
	ScopeSelection                  // Current selection only
)

func (s Scope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopeSelection:
		return "selection"
	}
	return fmt.Sprintf("Scope(%d)", int(s))
}

// ParseScope maps "all" / "selection" (case-insensitive) onto a Scope.
func ParseScope(name string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "all":
		return ScopeAll, nil
	case "selection", "sel":
		return ScopeSelection, nil
	}
	return 0, fmt.Errorf("unknown search scope %q (want \"all\" or \"selection\")", name)
}

// Options is an immutable snapshot of the settings used by one search.
type Options struct {
	Needle        string // Text or pattern to look for
	Backwards     bool
	Wrap          bool
	CaseSensitive bool
	WholeWord     bool
	RegExp        bool // Needle is a regular expression rather than literal text
	Scope         Scope
}

// DefaultOptions returns the settings used when nothing has been configured:
// empty needle, forward, no wrap, case-insensitive, literal, whole document.
func DefaultOptions() Options {
	return Options{Scope: ScopeAll}
}

// Partial carries a subset of Options. Nil fields are left untouched by With.
type Partial struct {
	Needle        *string
	Backwards     *bool
	Wrap          *bool
	CaseSensitive *bool
	WholeWord     *bool
	RegExp        *bool
	Scope         *Scope
}

// Ptr returns a pointer to v, for filling Partial fields inline.
func Ptr[T any](v T) *T {
	return &v
}

// With returns a copy of o with every field supplied in p overridden.
func (o Options) With(p Partial) Options {
	if p.Needle != nil {
		o.Needle = *p.Needle
	}
	if p.Backwards != nil {
		o.Backwards = *p.Backwards
	}
	if p.Wrap != nil {
		o.Wrap = *p.Wrap
	}
	if p.CaseSensitive != nil {
		o.CaseSensitive = *p.CaseSensitive
	}
	if p.WholeWord != nil {
		o.WholeWord = *p.WholeWord
	}
	if p.RegExp != nil {
		o.RegExp = *p.RegExp
	}
	if p.Scope != nil {
		o.Scope = *p.Scope
	}
	return o
}
