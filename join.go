// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathbuild

package pathbuild

import "fmt"

// Join builds a path from a caller-assembled sequence of parts containing
// zero or more Sep occurrences.
//
// Accepted part types:
//   - Fragment (Sep or Seg value, passed through)
//   - string (one segment; embedded separator characters are kept verbatim,
//     so a previously built path joins as a single segment)
//   - fmt.Stringer (its String() result as one segment)
//
// Adjacent non-separator parts concatenate into one segment before joining,
// so Join("a", "b", Sep, "c") yields "ab/c", not "a/b/c".
func Join(parts ...any) (string, error) {
	components, err := groupParts(parts)
	if err != nil {
		return "", err
	}

	return Emit(components), nil
}

// JoinSlash is Join with "/" joining regardless of host platform.
func JoinSlash(parts ...any) (string, error) {
	components, err := groupParts(parts)
	if err != nil {
		return "", err
	}

	return EmitSlash(components), nil
}

// MustJoin is Join that panics on malformed input.
//
// It is the construction-time analog of a compile error; prefer Join for
// inputs not fully under caller control.
func MustJoin(parts ...any) string {
	p, err := Join(parts...)
	if err != nil {
		panic(err)
	}

	return p
}

// groupParts converts parts to fragments and groups them into components.
func groupParts(parts []any) ([]Component, error) {
	fragments := make([]Fragment, 0, len(parts))
	for i, part := range parts {
		f, err := fragmentOf(part)
		if err != nil {
			return nil, fmt.Errorf("%w at part %d", err, i)
		}

		fragments = append(fragments, f)
	}

	return Group(fragments)
}

// fragmentOf converts one Join part to a fragment.
func fragmentOf(part any) (Fragment, error) {
	switch v := part.(type) {
	case Fragment:
		return v, nil
	case string:
		return Seg(v), nil
	case fmt.Stringer:
		return Seg(v.String()), nil
	default:
		return Fragment{}, fmt.Errorf("%w: %T", ErrUnsupportedFragment, part)
	}
}
