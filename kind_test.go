// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package keeppattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchKind_String(t *testing.T) {
	t.Parallel()
	tests := []struct {
		kind     MatchKind
		expected string
	}{
		{MatchAll, "All"},
		{MatchLiteral, "Literal"},
		{MatchRegex, "Regex"},
		{MatchKind(999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}
