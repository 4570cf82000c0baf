// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathbuild

package pathbuild

import "fmt"

// Group splits the fragment sequence into ordered components at separator
// fragments.
//
// Semantics:
// - a separator closes the component accumulated so far
// - consecutive segment fragments accumulate into one component
// - a leading, trailing, or doubled separator makes the sequence malformed
// - empty input yields an empty component list
//
// The split is structure-preserving: no fragment is dropped, duplicated or
// reordered, and Flatten inverts it exactly.
func Group(fragments []Fragment) ([]Component, error) {
	finished := make([]Component, 0, countComponents(fragments))

	var current Component
	for i, f := range fragments {
		if !f.Kind.valid() {
			return nil, fmt.Errorf("%w: unsupported kind %d at fragment %d", ErrInvalidFragment, f.Kind, i)
		}

		if f.Kind != FragmentSeparator {
			current = append(current, f)
			continue
		}

		if len(current) == 0 {
			if i == 0 {
				return nil, fmt.Errorf("%w: leading separator at fragment 0", ErrMalformedInput)
			}

			return nil, fmt.Errorf("%w: consecutive separators at fragment %d", ErrMalformedInput, i)
		}

		finished = append(finished, current)
		current = nil
	}

	if len(current) == 0 {
		if len(fragments) != 0 {
			return nil, fmt.Errorf("%w: trailing separator at fragment %d", ErrMalformedInput, len(fragments)-1)
		}

		return finished, nil
	}

	return append(finished, current), nil
}

// Flatten is the exact inverse of Group: it re-interleaves the separator
// fragment between components, reconstructing the original sequence.
func Flatten(components []Component) []Fragment {
	total := 0
	for _, c := range components {
		total += len(c)
	}
	if len(components) > 1 {
		total += len(components) - 1
	}

	out := make([]Fragment, 0, total)
	for i, c := range components {
		if i > 0 {
			out = append(out, Sep)
		}

		out = append(out, c...)
	}

	return out
}

// countComponents counts separator fragments to presize the component list.
func countComponents(fragments []Fragment) int {
	if len(fragments) == 0 {
		return 0
	}

	n := 1
	for _, f := range fragments {
		if f.Kind == FragmentSeparator {
			n++
		}
	}

	return n
}
