// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package keeppattern

// MatchKind describes how a compiled specification is matched.
type MatchKind int

const (
	// MatchAll indicates an empty specification that matches every name.
	MatchAll MatchKind = iota

	// MatchLiteral indicates a specification without special characters,
	// matched with string equality.
	MatchLiteral

	// MatchRegex indicates a specification compiled to a regular expression.
	MatchRegex
)

// String returns the string representation of the MatchKind.
func (k MatchKind) String() string {
	switch k {
	case MatchAll:
		return "All"
	case MatchLiteral:
		return "Literal"
	case MatchRegex:
		return "Regex"
	default:
		return "Unknown"
	}
}
