// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package keeppattern

import (
	"errors"
	"fmt"

	"github.com/coregx/coregex"
)

// Pattern is a ProGuard style wildcard specification.
//
// The same text can mean different things depending on where it appears in
// a keep rule, so a Pattern is always compiled with a Grammar:
//
//	GrammarMember  "get*", "on?lick"
//	GrammarType    "Lcom/example/**;", "[%", "(...)V"
//
// An empty Pattern matches anything. A Pattern without special characters
// (see HasSpecialChar) is matched with string equality; all others are
// compiled to a regular expression that must match the whole name.
type Pattern string

// compile builds a matcher for the pattern. Compiling the same pattern with
// the same grammar always produces an equivalent matcher.
func (p Pattern) compile(g Grammar) (*patternMatcher, error) {
	if err := validateGrammar(g); err != nil {
		return nil, err
	}

	spec := string(p)

	if spec == "" {
		return &patternMatcher{kind: MatchAll}, nil
	}

	if !HasSpecialChar(spec) {
		return &patternMatcher{
			kind:  MatchLiteral,
			exact: spec,
		}, nil
	}

	expr := g.expression(spec)
	re, err := coregex.Compile(anchor(expr))
	if err != nil {
		return nil, errors.Join(
			ErrCompile,
			fmt.Errorf("pattern '%s' compiled to invalid expression '%s'", spec, expr),
			err,
		)
	}

	return &patternMatcher{
		kind: MatchRegex,
		expr: expr,
		re:   re,
	}, nil
}

// anchor wraps expr so it only matches an entire name.
func anchor(expr string) string {
	return "^(?:" + expr + ")$"
}

// patternMatcher is a compiled pattern. It is immutable and safe for
// concurrent use.
type patternMatcher struct {
	kind  MatchKind
	exact string         // For MatchLiteral: the specification itself
	expr  string         // For MatchRegex: the unanchored compiled expression
	re    *coregex.Regex // For MatchRegex: the anchored, compiled expression
}

// matches reports whether name matches this compiled pattern.
func (pm *patternMatcher) matches(name string) bool {
	switch pm.kind {
	case MatchAll:
		return true
	case MatchLiteral:
		return name == pm.exact
	default:
		return pm.re.MatchString(name)
	}
}
