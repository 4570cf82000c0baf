// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathbuild

/*
Package pathbuild composes filesystem paths from an ordered sequence of
fragments delimited by a separator fragment.

The package performs purely syntactic grouping: fragments between separators
are collected into components and each component is appended to the result
verbatim, delimited by the platform separator (`filepath.Separator`) or a
forced "/". The append never normalizes: "." and ".." elements and embedded
separators are preserved wherever they appear, and no path validation or
filesystem access happens. Callers that want cleaned output run the result
through filepath.Clean themselves.

Basic flow:
  - assemble fragments directly (`Seg`, `Sep`) or tokenize an expression
    (`ParseExpr`)
  - group fragments into components (`Group`)
  - fold components into one path (`Emit` / `EmitSlash`)

Convenience entry points collapse the flow into one call:
  - `Join` / `JoinSlash` for caller-assembled variadic sequences
  - `Build` / `BuildSlash` for textual expressions like `a / "b c" / d`
  - `Builder` for incremental assembly

A component may be a previously built path: its embedded separators are passed
through verbatim to the append primitive as one segment. Adjacent fragments
with no separator between them concatenate into a single segment.
*/
package pathbuild
