// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathbuild

package pathbuild

import (
	"path/filepath"
	"strings"
)

// Emit folds components into one path value, appending each component in
// order with the platform separator.
//
// The append is purely syntactic: segments are added verbatim and never
// cleaned, so "." and ".." elements and embedded separators survive in any
// position. One separator is inserted at each boundary unless the boundary
// already carries one; empty segments are skipped. Emit never fails:
// malformed sequences are rejected earlier by Group. An empty component list
// yields the empty path.
func Emit(components []Component) string {
	return emit(components, filepath.Separator)
}

// EmitSlash is Emit with "/" joining regardless of host platform.
//
// Useful for slash-normalized outputs and deterministic cross-platform tests.
func EmitSlash(components []Component) string {
	return emit(components, '/')
}

// emit appends evaluated components delimited by sep without cleaning.
func emit(components []Component, sep byte) string {
	var sb strings.Builder
	for _, c := range components {
		seg := c.Text()
		if seg == "" {
			continue
		}

		if sb.Len() > 0 {
			last := sb.String()[sb.Len()-1]
			if last == sep && seg[0] == sep {
				seg = seg[1:]
			} else if last != sep && seg[0] != sep {
				sb.WriteByte(sep)
			}
		}

		sb.WriteString(seg)
	}

	return sb.String()
}
