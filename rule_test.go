// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package keeppattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCompiler compiles without caching or events.
type stubCompiler struct{}

func (stubCompiler) compile(p Pattern, g Grammar) (*patternMatcher, error) {
	return p.compile(g)
}

func (stubCompiler) normalize(typeName string) (string, error) {
	return NormalizeWildcardDescriptor(typeName)
}

func TestKeepRule_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rule    KeepRule
		wantErr bool
	}{
		{
			name: "class only",
			rule: KeepRule{Class: "com.example.Foo"},
		},
		{
			name: "members",
			rule: KeepRule{
				Class:   "com.example.*",
				Fields:  []MemberRule{{Name: "*", Type: "int"}},
				Methods: []MemberRule{{Name: "get*", Args: []string{"int"}}},
			},
		},
		{
			name:    "missing class",
			rule:    KeepRule{Fields: []MemberRule{{Name: "x"}}},
			wantErr: true,
		},
		{
			name: "field with args",
			rule: KeepRule{
				Class:  "com.example.Foo",
				Fields: []MemberRule{{Name: "x", Args: []string{}}},
			},
			wantErr: true,
		},
		{
			name: "empty method arg",
			rule: KeepRule{
				Class:   "com.example.Foo",
				Methods: []MemberRule{{Name: "x", Args: []string{"int", ""}}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.rule.validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMemberRule_MethodDescriptor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		member MemberRule
		want   string
	}{
		{
			name:   "any prototype",
			member: MemberRule{Name: "run"},
			want:   "",
		},
		{
			name:   "return type only",
			member: MemberRule{Type: "void"},
			want:   "(...)V",
		},
		{
			name:   "no parameters any return",
			member: MemberRule{Args: []string{}},
			want:   "()***",
		},
		{
			name:   "parameters and return",
			member: MemberRule{Args: []string{"int", "java.lang.String[]", "..."}, Type: "%"},
			want:   "(I[Ljava/lang/String;...)%",
		},
		{
			name:   "wildcard parameter",
			member: MemberRule{Args: []string{"***", "com.example.*"}, Type: "boolean"},
			want:   "(***Lcom/example/*;)Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.member.methodDescriptor(stubCompiler{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeepRule_Keeps(t *testing.T) {
	t.Parallel()

	rule := KeepRule{
		Class: "com.example.**",
		Fields: []MemberRule{
			{Name: "m*", Type: "int"},
			{Name: "TAG"},
		},
		Methods: []MemberRule{
			{Name: "on*", Type: "void"},
			{Name: "<init>", Args: []string{}},
			{Name: "get?", Args: []string{"%"}, Type: "***"},
		},
	}
	require.NoError(t, rule.compile(stubCompiler{}))

	const class = "Lcom/example/ui/View;"

	assert.True(t, rule.keepsClass(class))
	assert.False(t, rule.keepsClass("Lorg/example/View;"))
	assert.False(t, rule.keepsClass("[Lcom/example/View;"))

	assert.True(t, rule.keepsField(class, "mCount", "I"))
	assert.False(t, rule.keepsField(class, "mCount", "J"))
	assert.True(t, rule.keepsField(class, "TAG", "Ljava/lang/String;"))
	assert.False(t, rule.keepsField(class, "count", "I"))
	assert.False(t, rule.keepsField("Lorg/Foo;", "mCount", "I"))

	assert.True(t, rule.keepsMethod(class, "onClick", "(Landroid/view/View;)V"))
	assert.True(t, rule.keepsMethod(class, "onStart", "()V"))
	assert.False(t, rule.keepsMethod(class, "onClick", "(Landroid/view/View;)Z"))
	assert.True(t, rule.keepsMethod(class, "<init>", "()V"))
	assert.False(t, rule.keepsMethod(class, "<init>", "(I)V"))
	assert.True(t, rule.keepsMethod(class, "getX", "(F)[Ljava/lang/Object;"))
	assert.False(t, rule.keepsMethod(class, "getX", "(Ljava/lang/Object;)I"))
	assert.False(t, rule.keepsMethod(class, "getXY", "(F)I"))
}

func TestKeepRule_ClassOnly(t *testing.T) {
	t.Parallel()

	rule := KeepRule{Class: "*"}
	require.NoError(t, rule.compile(stubCompiler{}))

	assert.True(t, rule.keepsClass("LFoo;"))
	assert.True(t, rule.keepsClass("Lcom/a/b/Foo;"))
	assert.False(t, rule.keepsField("LFoo;", "x", "I"), "no member rules keeps no members")
	assert.False(t, rule.keepsMethod("LFoo;", "x", "()V"))
}
