// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathbuild

package pathbuild

import (
	"fmt"
	"strings"
)

// ParseExpr tokenizes a path expression into fragments.
//
// Semantics:
// - unquoted "/" is a separator fragment
// - a double-quoted literal is one segment fragment and may contain "/"
// - `\"` and `\\` escape quote and backslash inside a literal
// - a bare word (no whitespace, "/" or quote) is one segment fragment
// - whitespace only delimits tokens and is discarded
//
// Example: `a / "b c" / d` yields five fragments forming three components.
// ParseExpr performs no grouping; feed the result to Group, or use Build.
func ParseExpr(src string) ([]Fragment, error) {
	fragments := make([]Fragment, 0, 8)

	i := 0
	for i < len(src) {
		switch c := src[i]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '/':
			fragments = append(fragments, Sep)
			i++
		case c == '"':
			text, next, err := scanQuoted(src, i)
			if err != nil {
				return nil, err
			}

			fragments = append(fragments, Seg(text))
			i = next
		default:
			start := i
			for i < len(src) && !isExprDelim(src[i]) {
				i++
			}

			fragments = append(fragments, Seg(src[start:i]))
		}
	}

	return fragments, nil
}

// Build tokenizes, groups and emits a path expression in one call.
func Build(src string) (string, error) {
	components, err := buildComponents(src)
	if err != nil {
		return "", err
	}

	return Emit(components), nil
}

// BuildSlash is Build with "/" joining regardless of host platform.
func BuildSlash(src string) (string, error) {
	components, err := buildComponents(src)
	if err != nil {
		return "", err
	}

	return EmitSlash(components), nil
}

// MustBuild is Build that panics on malformed input.
func MustBuild(src string) string {
	p, err := Build(src)
	if err != nil {
		panic(err)
	}

	return p
}

// buildComponents parses and groups expression source.
func buildComponents(src string) ([]Component, error) {
	fragments, err := ParseExpr(src)
	if err != nil {
		return nil, err
	}

	return Group(fragments)
}

// scanQuoted scans one quoted literal starting at the opening quote and
// returns the unescaped text with the offset past the closing quote.
func scanQuoted(src string, start int) (string, int, error) {
	var sb strings.Builder

	i := start + 1
	for i < len(src) {
		switch c := src[i]; c {
		case '"':
			return sb.String(), i + 1, nil
		case '\\':
			if i+1 >= len(src) || (src[i+1] != '"' && src[i+1] != '\\') {
				return "", 0, fmt.Errorf("%w: unsupported escape at offset %d", ErrInvalidExpr, i)
			}

			sb.WriteByte(src[i+1])
			i += 2
		default:
			sb.WriteByte(c)
			i++
		}
	}

	return "", 0, fmt.Errorf("%w: unterminated literal at offset %d", ErrInvalidExpr, start)
}

// isExprDelim reports whether byte ends a bare word.
func isExprDelim(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '/' || c == '"'
}
