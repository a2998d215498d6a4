// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package keeppattern

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/xmidt-org/eventor"
)

// CompileEvent represents an event when a wildcard specification has been
// compiled or failed to compile.
type CompileEvent struct {
	// Grammar is the grammar the specification was compiled with.
	Grammar Grammar

	// Spec is the wildcard specification.
	Spec string

	// Pattern is the compiled regular expression. Empty unless Kind is MatchRegex.
	Pattern string

	// Kind is how the specification is matched.
	Kind MatchKind

	// Error is the error that occurred during compilation (nil on success).
	Error error

	// ErrorType is the error classification (empty on success).
	// Values: "invalid_argument", "validation_error", "compile_error".
	ErrorType string

	// Duration is the time taken to compile the specification.
	Duration time.Duration
}

// Keeper answers whether classes and members are retained by a set of keep
// rules.
//
// Thread Safety: All methods are safe for concurrent use by multiple
// goroutines. Queries never block on UpdateRules.
type Keeper struct {
	// Converter converts Java type names into binary descriptors.
	// Optional. If nil, JavaTypeConverter is used.
	Converter DescriptorConverter

	// Logger is the logger instance (same interface as franz-go).
	// Optional. If nil, a no-op logger will be used.
	Logger kgo.Logger

	// InitialCompileEventListeners are event listeners registered on the first
	// call to UpdateRules. For dynamic listener management, use
	// AddCompileEventListener().
	// Optional.
	InitialCompileEventListeners []func(*CompileEvent)

	// initOnce guards the defaults and initial listener registration.
	initOnce sync.Once

	// logger is the actively used logger instance (never nil after init).
	logger kgo.Logger

	// active holds the compiled rule set, swapped atomically.
	active atomic.Pointer[ruleSet]

	compileEventListeners eventor.Eventor[func(*CompileEvent)]
}

// ruleSet is a compiled set of rules and the matchers they use. Matchers
// are only reused from the previous set, so specifications dropped by an
// update are released with it.
type ruleSet struct {
	rules    []KeepRule
	matchers map[cacheKey]*patternMatcher
}

type cacheKey struct {
	grammar Grammar
	spec    string
}

// ruleCompiler implements compiler for a single UpdateRules call.
type ruleCompiler struct {
	keeper   *Keeper
	prev     map[cacheKey]*patternMatcher
	matchers map[cacheKey]*patternMatcher
}

// AddCompileEventListener adds a listener called each time a specification
// is compiled. Specifications already used by the active rules are not
// reported again.
//
// The returned function removes the listener.
func (k *Keeper) AddCompileEventListener(fn func(*CompileEvent)) func() {
	return k.compileEventListeners.Add(fn)
}

func (k *Keeper) init() {
	k.initOnce.Do(func() {
		k.logger = k.Logger
		if k.logger == nil {
			k.logger = &nopLogger{}
		}
		for _, listener := range k.InitialCompileEventListeners {
			k.compileEventListeners.Add(listener)
		}
	})
}

// UpdateRules validates and compiles rules, then atomically replaces the
// active rule set. Queries in progress finish with the previous set.
//
// Returns an error, and keeps the previous rules, if:
//   - Any rule fails validation
//   - A type name is empty
//   - A compiled pattern is rejected by the regex engine
func (k *Keeper) UpdateRules(rules []KeepRule) error {
	k.init()

	c := &ruleCompiler{
		keeper:   k,
		matchers: make(map[cacheKey]*patternMatcher),
	}
	if prev := k.active.Load(); prev != nil {
		c.prev = prev.matchers
	}

	next := make([]KeepRule, len(rules))
	copy(next, rules)

	for i := range next {
		next[i].Fields = append([]MemberRule(nil), next[i].Fields...)
		next[i].Methods = append([]MemberRule(nil), next[i].Methods...)
		if err := next[i].compile(c); err != nil {
			k.logger.Log(kgo.LogLevelWarn, "rejected keep rules", "rule", i, "error", err.Error())
			return fmt.Errorf("rule %d: %w", i, err)
		}
	}

	k.active.Store(&ruleSet{rules: next, matchers: c.matchers})
	k.logger.Log(kgo.LogLevelInfo, "keep rules updated", "count", len(next), "patterns", len(c.matchers))

	return nil
}

// Rules returns the number of active rules.
func (k *Keeper) Rules() int {
	set := k.active.Load()
	if set == nil {
		return 0
	}
	return len(set.rules)
}

// KeepsClass reports whether any rule keeps the class with the given
// descriptor, e.g. "Lcom/example/Foo;".
func (k *Keeper) KeepsClass(classDesc string) bool {
	return k.anyRule(func(rule *KeepRule) bool {
		return rule.keepsClass(classDesc)
	})
}

// KeepsField reports whether any rule keeps the named field of type typeDesc
// in the class classDesc.
func (k *Keeper) KeepsField(classDesc, name, typeDesc string) bool {
	return k.anyRule(func(rule *KeepRule) bool {
		return rule.keepsField(classDesc, name, typeDesc)
	})
}

// KeepsMethod reports whether any rule keeps the named method with the
// prototype protoDesc, e.g. "(ILjava/lang/String;)V", in the class classDesc.
func (k *Keeper) KeepsMethod(classDesc, name, protoDesc string) bool {
	return k.anyRule(func(rule *KeepRule) bool {
		return rule.keepsMethod(classDesc, name, protoDesc)
	})
}

func (k *Keeper) anyRule(fn func(*KeepRule) bool) bool {
	set := k.active.Load()
	if set == nil {
		return false
	}
	for i := range set.rules {
		if fn(&set.rules[i]) {
			return true
		}
	}
	return false
}

func (c *ruleCompiler) normalize(typeName string) (string, error) {
	conv := c.keeper.Converter
	if conv == nil {
		conv = JavaTypeConverter
	}
	return NormalizeWildcardDescriptorWith(conv, typeName)
}

// compile reuses matchers from this update and from the active rules,
// compiling and reporting only new specifications.
func (c *ruleCompiler) compile(p Pattern, g Grammar) (*patternMatcher, error) {
	key := cacheKey{grammar: g, spec: string(p)}
	if m, ok := c.matchers[key]; ok {
		return m, nil
	}
	if m, ok := c.prev[key]; ok {
		c.matchers[key] = m
		return m, nil
	}

	start := time.Now()
	m, err := p.compile(g)

	event := CompileEvent{
		Grammar: g,
		Spec:    string(p),
	}
	if err == nil {
		event.Kind = m.kind
		event.Pattern = m.expr
		c.matchers[key] = m
	}
	c.keeper.dispatchEvent(&event, start, err)

	if err != nil {
		return nil, err
	}
	return m, nil
}

// dispatchEvent dispatches a CompileEvent to all registered listeners.
func (k *Keeper) dispatchEvent(event *CompileEvent, since time.Time, err error) {
	if err != nil {
		event.Error = err
		event.ErrorType = errorType(err)
	}
	event.Duration = time.Since(since)

	k.compileEventListeners.Visit(func(listener func(*CompileEvent)) {
		listener(event)
	})
}
