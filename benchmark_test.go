// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathbuild

package pathbuild

import (
	"fmt"
	"strings"
	"testing"
)

const benchSegmentCount = 64

var (
	benchPathSink       string
	benchComponentsSink []Component
	benchFragmentsSink  []Fragment
)

func BenchmarkGroup(b *testing.B) {
	fragments := buildBenchmarkFragments(benchSegmentCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		components, err := Group(fragments)
		if err != nil {
			b.Fatal(err)
		}

		benchComponentsSink = components
	}
}

func BenchmarkEmit(b *testing.B) {
	components, err := Group(buildBenchmarkFragments(benchSegmentCount))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchPathSink = Emit(components)
	}
}

func BenchmarkFlatten(b *testing.B) {
	components, err := Group(buildBenchmarkFragments(benchSegmentCount))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchFragmentsSink = Flatten(components)
	}
}

func BenchmarkJoin(b *testing.B) {
	parts := buildBenchmarkParts(benchSegmentCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := Join(parts...)
		if err != nil {
			b.Fatal(err)
		}

		benchPathSink = p
	}
}

func BenchmarkParseExpr(b *testing.B) {
	src := buildBenchmarkExpr(benchSegmentCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fragments, err := ParseExpr(src)
		if err != nil {
			b.Fatal(err)
		}

		benchFragmentsSink = fragments
	}
}

func BenchmarkBuild(b *testing.B) {
	src := buildBenchmarkExpr(benchSegmentCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := Build(src)
		if err != nil {
			b.Fatal(err)
		}

		benchPathSink = p
	}
}

// buildBenchmarkFragments builds n segments delimited by separators.
func buildBenchmarkFragments(n int) []Fragment {
	fragments := make([]Fragment, 0, n*2-1)
	for i := 0; i < n; i++ {
		if i > 0 {
			fragments = append(fragments, Sep)
		}

		fragments = append(fragments, Seg(fmt.Sprintf("segment_%03d", i)))
	}

	return fragments
}

// buildBenchmarkParts builds the same sequence in Join part form.
func buildBenchmarkParts(n int) []any {
	fragments := buildBenchmarkFragments(n)
	parts := make([]any, 0, len(fragments))
	for _, f := range fragments {
		if f.Kind == FragmentSeparator {
			parts = append(parts, Sep)
			continue
		}

		parts = append(parts, f.Text)
	}

	return parts
}

// buildBenchmarkExpr builds the same sequence in expression source form.
func buildBenchmarkExpr(n int) string {
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		names = append(names, fmt.Sprintf("segment_%03d", i))
	}

	return strings.Join(names, " / ")
}
