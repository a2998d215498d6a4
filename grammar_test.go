// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package keeppattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateGrammar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		grammar Grammar
		wantErr bool
	}{
		{GrammarMember, false},
		{GrammarType, false},
		{"", true},
		{"class", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.grammar), func(t *testing.T) {
			t.Parallel()

			err := validateGrammar(tt.grammar)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				assert.Contains(t, err.Error(), "'member', 'type'")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGrammarExpression(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "get.*", GrammarMember.expression("get*"))
	assert.Equal(t, `access\$.*`, GrammarMember.expression("access$*"))
	assert.Equal(t, `a\.b.`, GrammarMember.expression("a.b?"))
	assert.Equal(t, ".*", GrammarMember.expression(""))
	assert.Equal(t, `Lcom\/(?:[^\/\[]*);`, GrammarType.expression("Lcom/*;"))
}
