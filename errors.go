// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathbuild

package pathbuild

import "errors"

// Sentinel errors for pathbuild operations.
var (
	// ErrMalformedInput indicates a leading separator, a trailing separator,
	// or two consecutive separators in the fragment sequence.
	ErrMalformedInput = errors.New("malformed fragment sequence")
	// ErrInvalidFragment indicates a fragment with unsupported kind.
	ErrInvalidFragment = errors.New("invalid fragment")
	// ErrUnsupportedFragment indicates a Join part of an unconvertible type.
	ErrUnsupportedFragment = errors.New("unsupported fragment type")
	// ErrInvalidExpr indicates malformed path expression source.
	ErrInvalidExpr = errors.New("invalid path expression")
)
