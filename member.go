// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package keeppattern

import (
	"strings"

	"github.com/coregx/coregex"
)

// CompileMemberPattern converts a field or method name specification into a
// regular expression.
//
//	"*"  - any part of a member name, becomes ".*"
//	"?"  - exactly one character, becomes "."
//
// Every other character is copied unchanged. An empty specification matches
// any member name.
//
// Example: "alpha*beta?gamma" compiles to "alpha.*beta.gamma".
func CompileMemberPattern(spec string) string {
	if spec == "" {
		return ".*"
	}

	var b strings.Builder
	b.Grow(len(spec))
	for i := 0; i < len(spec); i++ {
		switch c := spec[i]; c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteByte('.')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// quotedMemberPattern is CompileMemberPattern with every literal run quoted,
// so names such as "access$000" match themselves when executed.
func quotedMemberPattern(spec string) string {
	if spec == "" {
		return ".*"
	}

	var b strings.Builder
	b.Grow(2 * len(spec))
	start := 0
	for i := 0; i < len(spec); i++ {
		c := spec[i]
		if c != '*' && c != '?' {
			continue
		}
		b.WriteString(coregex.QuoteMeta(spec[start:i]))
		if c == '*' {
			b.WriteString(".*")
		} else {
			b.WriteByte('.')
		}
		start = i + 1
	}
	b.WriteString(coregex.QuoteMeta(spec[start:]))
	return b.String()
}
