// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package keeppattern

import "strings"

// Pattern fragments emitted by CompileTypePattern.
const (
	primitiveOrVoid = `(?:B|S|I|J|Z|F|D|C|V)`
	anySingleType   = `\[*(?:(?:B|S|I|J|Z|F|D|C|V)|L.*;)`
	anyClassPart    = `(?:[^\[]*)`
	anyNamePart     = `(?:[^\/\[]*)`
	anyTypeList     = `(?:\[*(?:(?:B|S|I|J|Z|F|D|C)|L.*;))*`
	oneNameChar     = `[^\/\[]`
)

// A class specification that is only "*" matches classes in any package.
const (
	bareClassWildcard = "L*;"
	anyClass          = "L**;"
)

// CompileTypePattern converts a type specification in binary descriptor form
// into a regular expression.
//
//	"%"   - any primitive type or void
//	"?"   - one character of a class name, not '/' or '['
//	"*"   - any part of a class name without a package separator
//	"**"  - any part of a class name, including package separators
//	"***" - any single type, primitive or class, with any array depth
//	"..." - any sequence of types
//
// The descriptor characters '$', '/', '(', ')' and '[' are escaped. Every
// other character is copied unchanged. An empty specification matches
// anything, and "L*;" is treated as "L**;" so a lone class wildcard matches
// classes in any package.
//
// Examples:
//
//	"Lalpha?beta;"    -> `Lalpha[^\/\[]beta;`
//	"Lalpha/*/beta;"  -> `Lalpha\/(?:[^\/\[]*)\/beta;`
//	"Lalpha/**/beta;" -> `Lalpha\/(?:[^\[]*)\/beta;`
func CompileTypePattern(spec string) string {
	if spec == "" {
		return ".*"
	}
	if spec == bareClassWildcard {
		spec = anyClass
	}

	var b strings.Builder
	b.Grow(2 * len(spec))

	s := scanner{src: spec}
	for !s.done() {
		c := s.next()
		switch c {
		case '%':
			b.WriteString(primitiveOrVoid)
		case '$', '/', '(', ')', '[':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '?':
			b.WriteString(oneNameChar)
		case '*':
			switch s.run('*', 2) {
			case 2:
				b.WriteString(anySingleType)
			case 1:
				b.WriteString(anyClassPart)
			default:
				b.WriteString(anyNamePart)
			}
		case '.':
			if s.peekRun('.', 2) {
				s.skip(2)
				b.WriteString(anyTypeList)
				continue
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// scanner walks a specification one byte at a time with bounded lookahead.
type scanner struct {
	src string
	pos int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) next() byte {
	c := s.src[s.pos]
	s.pos++
	return c
}

func (s *scanner) skip(n int) {
	s.pos += n
}

// peekRun reports whether the next n bytes all equal c.
func (s *scanner) peekRun(c byte, n int) bool {
	if len(s.src)-s.pos < n {
		return false
	}
	for i := 0; i < n; i++ {
		if s.src[s.pos+i] != c {
			return false
		}
	}
	return true
}

// run consumes up to limit bytes equal to c and returns how many it consumed.
func (s *scanner) run(c byte, limit int) int {
	n := 0
	for n < limit && !s.done() && s.src[s.pos] == c {
		s.pos++
		n++
	}
	return n
}
