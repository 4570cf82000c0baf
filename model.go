// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathbuild

package pathbuild

import "strings"

// FragmentKind discriminates fragment roles in the input sequence.
type FragmentKind uint8

const (
	// FragmentUnknown is unset/invalid fragment kind placeholder.
	FragmentUnknown FragmentKind = iota
	// FragmentSegment is a fragment carrying path segment text.
	FragmentSegment
	// FragmentSeparator is the designated component delimiter fragment.
	FragmentSeparator
)

// Fragment is one atomic syntactic unit of a path fragment sequence.
type Fragment struct {
	// Text is the segment text; empty for separator fragments.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
	// Kind is the fragment role.
	Kind FragmentKind `json:"kind" yaml:"kind"`
}

// Sep is the separator fragment that delimits components.
var Sep = Fragment{Kind: FragmentSeparator}

// Seg returns a segment fragment carrying the given text.
//
// The text is opaque: separator characters inside it are never split on and
// reach the append primitive as part of one segment.
func Seg(text string) Fragment {
	return Fragment{Kind: FragmentSegment, Text: text}
}

// Component is a non-empty run of consecutive segment fragments that had no
// separator between them. One Component becomes one appended path segment.
type Component []Fragment

// Text evaluates the component to its segment value by concatenating fragment
// texts in order. Adjacent fragments juxtapose into a single segment.
func (c Component) Text() string {
	if len(c) == 1 {
		return c[0].Text
	}

	var sb strings.Builder
	for _, f := range c {
		sb.WriteString(f.Text)
	}

	return sb.String()
}

// valid reports whether fragment kind value is supported.
func (k FragmentKind) valid() bool {
	return k == FragmentSegment || k == FragmentSeparator
}
