// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package keeppattern

import (
	"errors"
	"fmt"
	"strings"
)

// Grammar selects how a wildcard specification is compiled.
type Grammar string

const (
	// GrammarMember compiles field and method names with CompileMemberPattern.
	GrammarMember Grammar = "member"

	// GrammarType compiles binary type descriptors with CompileTypePattern.
	GrammarType Grammar = "type"
)

var grammarTypes map[Grammar]struct{}
var grammarList []string

func init() {
	list := []Grammar{
		GrammarMember,
		GrammarType,
	}

	grammarTypes = make(map[Grammar]struct{})
	for _, g := range list {
		grammarTypes[g] = struct{}{}
		grammarList = append(grammarList, string(g))
	}
}

// expression translates spec into the regex syntax a matcher executes.
// Literal runs of member names are quoted; type specifications are compiled
// unchanged by CompileTypePattern.
func (g Grammar) expression(spec string) string {
	if g == GrammarMember {
		return quotedMemberPattern(spec)
	}
	return CompileTypePattern(spec)
}

func validateGrammar(g Grammar) error {
	if _, ok := grammarTypes[g]; ok {
		return nil
	}

	list := strings.Join(grammarList, "', '")
	list = "'" + list + "'"
	return errors.Join(ErrValidation,
		fmt.Errorf("grammar '%s' is invalid: must be %s", g, list))
}
