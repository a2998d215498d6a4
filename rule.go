// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package keeppattern

import (
	"errors"
	"fmt"
	"strings"
)

// KeepRule names classes, and optionally members of those classes, that must
// survive optimization. Names use the Java form with wildcards, e.g.
// "com.example.**" or "java.lang.String[]".
type KeepRule struct {
	// Class is the class name specification. Required.
	Class string `yaml:"class"`

	// Fields restricts the rule to matching fields.
	Fields []MemberRule `yaml:"fields"`

	// Methods restricts the rule to matching methods.
	Methods []MemberRule `yaml:"methods"`

	// class is for internal use only - do not set manually.
	// Compiled class descriptor matcher.
	class *patternMatcher
}

// MemberRule matches a field or method of a kept class.
type MemberRule struct {
	// Name is the member name specification. Empty matches any name.
	Name string `yaml:"name"`

	// Type is the field type or method return type. Empty matches any type.
	Type string `yaml:"type"`

	// Args are the method parameter types. Nil matches any parameters, an
	// empty non-nil slice matches methods without parameters.
	// Must be nil for fields.
	Args []string `yaml:"args"`

	// name and descriptor are for internal use only - do not set manually.
	name       *patternMatcher
	descriptor *patternMatcher
}

// compiler builds matchers for rule compilation. It is implemented by Keeper
// so compiled patterns can be shared and reported.
type compiler interface {
	compile(p Pattern, g Grammar) (*patternMatcher, error)
	normalize(typeName string) (string, error)
}

func (rule *KeepRule) compile(c compiler) error {
	if err := rule.validate(); err != nil {
		return err
	}

	desc, err := c.normalize(rule.Class)
	if err != nil {
		return fmt.Errorf("class: %w", err)
	}
	if rule.class, err = c.compile(Pattern(desc), GrammarType); err != nil {
		return fmt.Errorf("class: %w", err)
	}

	for i := range rule.Fields {
		if err := rule.Fields[i].compileField(c); err != nil {
			return fmt.Errorf("field %d: %w", i, err)
		}
	}

	for i := range rule.Methods {
		if err := rule.Methods[i].compileMethod(c); err != nil {
			return fmt.Errorf("method %d: %w", i, err)
		}
	}

	return nil
}

// validate validates a single KeepRule.
func (rule *KeepRule) validate() error {
	if rule.Class == "" {
		return errors.Join(ErrValidation, fmt.Errorf("class must not be empty"))
	}

	for i, field := range rule.Fields {
		if field.Args != nil {
			return errors.Join(
				ErrValidation,
				fmt.Errorf("field %d: args are only valid for methods", i),
			)
		}
	}

	for i, method := range rule.Methods {
		for j, arg := range method.Args {
			if arg == "" {
				return errors.Join(
					ErrValidation,
					fmt.Errorf("method %d: arg %d must not be empty", i, j),
				)
			}
		}
	}

	return nil
}

func (m *MemberRule) compileField(c compiler) error {
	var err error
	if m.name, err = c.compile(Pattern(m.Name), GrammarMember); err != nil {
		return err
	}

	var desc string
	if m.Type != "" {
		if desc, err = c.normalize(m.Type); err != nil {
			return err
		}
	}

	m.descriptor, err = c.compile(Pattern(desc), GrammarType)
	return err
}

func (m *MemberRule) compileMethod(c compiler) error {
	var err error
	if m.name, err = c.compile(Pattern(m.Name), GrammarMember); err != nil {
		return err
	}

	desc, err := m.methodDescriptor(c)
	if err != nil {
		return err
	}

	m.descriptor, err = c.compile(Pattern(desc), GrammarType)
	return err
}

// methodDescriptor builds the wildcard method prototype, "(args)return".
// A rule without args or return type matches any prototype.
func (m *MemberRule) methodDescriptor(c compiler) (string, error) {
	if m.Args == nil && m.Type == "" {
		return "", nil
	}

	var b strings.Builder
	b.WriteByte('(')
	if m.Args == nil {
		b.WriteString("...")
	}
	for _, arg := range m.Args {
		desc, err := c.normalize(arg)
		if err != nil {
			return "", err
		}
		b.WriteString(desc)
	}
	b.WriteByte(')')

	ret := "***"
	if m.Type != "" {
		desc, err := c.normalize(m.Type)
		if err != nil {
			return "", err
		}
		ret = desc
	}
	b.WriteString(ret)

	return b.String(), nil
}

func (rule *KeepRule) keepsClass(classDesc string) bool {
	return rule.class.matches(classDesc)
}

func (rule *KeepRule) keepsField(classDesc, name, typeDesc string) bool {
	if !rule.keepsClass(classDesc) {
		return false
	}
	return keepsMember(rule.Fields, name, typeDesc)
}

func (rule *KeepRule) keepsMethod(classDesc, name, protoDesc string) bool {
	if !rule.keepsClass(classDesc) {
		return false
	}
	return keepsMember(rule.Methods, name, protoDesc)
}

func keepsMember(members []MemberRule, name, desc string) bool {
	for i := range members {
		if members[i].name.matches(name) && members[i].descriptor.matches(desc) {
			return true
		}
	}
	return false
}
