// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package keeppattern compiles ProGuard style keep rule wildcards into
// regular expressions and matches class and member names against them.
//
// # Overview
//
// Before an optimizer may delete, rename or merge classes and members it must
// know which of them are named by keep rules. Keep rules describe names with
// a small wildcard language that looks like, but is not, regex syntax:
//
//	*    any part of a name (one package level for class names)
//	**   any part of a class name, across packages
//	***  any single type
//	?    a single character
//	%    any primitive type
//	...  any sequence of types
//
// # Compiling Wildcards
//
// The compilers are pure functions and safe for concurrent use:
//
//	keeppattern.CompileMemberPattern("alpha*beta?gamma")
//	// "alpha.*beta.gamma"
//
//	keeppattern.CompileTypePattern("Lalpha/**/beta;")
//	// `Lalpha\/(?:[^\[]*)\/beta;`
//
// Type specifications are written as binary descriptors. Java style type
// names are converted with NormalizeWildcardDescriptor, which keeps the
// wildcard tokens intact:
//
//	desc, err := keeppattern.NormalizeWildcardDescriptor("com.example.*[]")
//	// "[Lcom/example/*;"
//
// HasSpecialChar tells callers when plain string equality is enough.
//
// # Matching
//
// A Keeper compiles a set of KeepRule values and answers keep queries:
//
//	keeper := &keeppattern.Keeper{}
//	err := keeper.UpdateRules([]keeppattern.KeepRule{
//	    {
//	        Class:   "com.example.**",
//	        Methods: []keeppattern.MemberRule{{Name: "on*", Type: "void"}},
//	    },
//	})
//
//	keeper.KeepsMethod("Lcom/example/ui/View;", "onClick", "(Landroid/view/View;)V")
//	// true
//
// Rules can also be loaded from YAML with LoadRules and ParseRules.
//
// # Observability
//
// Keeper logs through franz-go's kgo.Logger interface and reports every
// compiled specification to listeners added with AddCompileEventListener.
//
// # Thread Safety
//
// Keeper is safe for concurrent use. UpdateRules swaps the active rules
// atomically, so queries never wait for a rule update.
package keeppattern
