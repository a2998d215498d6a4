// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package keeppattern

import (
	"errors"
	"fmt"
	"strings"
)

// DescriptorConverter converts a human readable type name such as
// "java.lang.String[]" into a binary type descriptor such as
// "[Ljava/lang/String;".
//
// Converters do not need to understand wildcards. A wildcard token is
// expected to come back wrapped like a class name, e.g. "%" as "L%;".
type DescriptorConverter interface {
	Descriptor(typeName string) string
}

// DescriptorConverterFunc adapts a plain function to a DescriptorConverter.
type DescriptorConverterFunc func(typeName string) string

func (f DescriptorConverterFunc) Descriptor(typeName string) string {
	return f(typeName)
}

// JavaTypeConverter is the converter used by NormalizeWildcardDescriptor.
var JavaTypeConverter DescriptorConverter = DescriptorConverterFunc(ConvertJavaType)

var primitiveDescriptors = map[string]string{
	"boolean": "Z",
	"byte":    "B",
	"char":    "C",
	"short":   "S",
	"int":     "I",
	"long":    "J",
	"float":   "F",
	"double":  "D",
	"void":    "V",
}

// ConvertJavaType converts a Java type name into a binary type descriptor.
// Each trailing "[]" becomes a leading '['. Primitive keywords map to their
// one letter descriptors and everything else is treated as a class name.
func ConvertJavaType(typeName string) string {
	dims := 0
	for strings.HasSuffix(typeName, "[]") {
		typeName = strings.TrimSuffix(typeName, "[]")
		dims++
	}

	var b strings.Builder
	b.Grow(len(typeName) + dims + 2)
	for i := 0; i < dims; i++ {
		b.WriteByte('[')
	}

	if p, ok := primitiveDescriptors[typeName]; ok {
		b.WriteString(p)
		return b.String()
	}

	b.WriteByte('L')
	b.WriteString(strings.ReplaceAll(typeName, ".", "/"))
	b.WriteByte(';')
	return b.String()
}

// NormalizeWildcardDescriptor converts a wildcard type name into a binary
// descriptor using JavaTypeConverter. See NormalizeWildcardDescriptorWith.
func NormalizeWildcardDescriptor(typeName string) (string, error) {
	return NormalizeWildcardDescriptorWith(JavaTypeConverter, typeName)
}

// NormalizeWildcardDescriptorWith converts a wildcard type name into a binary
// descriptor that can be passed to CompileTypePattern.
//
// The converter wraps wildcard tokens as if they were class names. The class
// brackets are removed again around the tokens that do not stand for a class:
//
//	"L%;"   -> "%"
//	"L***;" -> "***"
//	"L///;" -> "..."
//
// ErrInvalidArgument is returned for an empty type name, in which case conv
// is not called.
func NormalizeWildcardDescriptorWith(conv DescriptorConverter, typeName string) (string, error) {
	if typeName == "" {
		return "", errors.Join(ErrInvalidArgument, fmt.Errorf("wildcard type name must not be empty"))
	}

	desc := conv.Descriptor(typeName)

	var b strings.Builder
	b.Grow(len(desc))

	suppressSemicolon := false
	dotted := false
	for i := 0; i < len(desc); i++ {
		c := desc[i]

		if c == 'L' {
			if w := classifyWildcard(desc[i+1:]); w != notWildcard {
				suppressSemicolon = true
				if w == typeListWildcard {
					dotted = true
				}
				continue
			}
		}

		switch {
		case c == '/' && dotted:
			b.WriteByte('.')
		case c == ';' && suppressSemicolon:
			suppressSemicolon = false
			dotted = false
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// wildcardKind classifies the token that follows an 'L' in a converted
// descriptor.
type wildcardKind int

const (
	notWildcard wildcardKind = iota

	// primitiveWildcard is "%".
	primitiveWildcard

	// anyTypeWildcard is "***".
	anyTypeWildcard

	// typeListWildcard is "...", which the converter turned into "///".
	typeListWildcard
)

func classifyWildcard(rest string) wildcardKind {
	switch {
	case strings.HasPrefix(rest, "%"):
		return primitiveWildcard
	case strings.HasPrefix(rest, "***"):
		return anyTypeWildcard
	case strings.HasPrefix(rest, "///"):
		return typeListWildcard
	}
	return notWildcard
}
