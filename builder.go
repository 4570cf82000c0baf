// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathbuild

package pathbuild

// Builder accumulates a fragment sequence for incremental path assembly.
//
// The zero value is ready to use. Builder methods never fail; malformed
// sequences (leading, trailing or doubled separators) surface from Path or
// PathSlash. Builder is not safe for concurrent use.
type Builder struct {
	fragments []Fragment
}

// Seg appends a segment fragment with the given text.
func (b *Builder) Seg(text string) *Builder {
	b.fragments = append(b.fragments, Seg(text))
	return b
}

// Sep appends the separator fragment.
func (b *Builder) Sep() *Builder {
	b.fragments = append(b.fragments, Sep)
	return b
}

// Frag appends one fragment as-is.
func (b *Builder) Frag(f Fragment) *Builder {
	b.fragments = append(b.fragments, f)
	return b
}

// Fragments returns a copy of the accumulated fragment sequence.
func (b *Builder) Fragments() []Fragment {
	out := make([]Fragment, len(b.fragments))
	copy(out, b.fragments)
	return out
}

// Reset drops all accumulated fragments, keeping capacity.
func (b *Builder) Reset() *Builder {
	b.fragments = b.fragments[:0]
	return b
}

// Path groups the accumulated fragments and emits a platform path.
func (b *Builder) Path() (string, error) {
	components, err := Group(b.fragments)
	if err != nil {
		return "", err
	}

	return Emit(components), nil
}

// PathSlash is Path with "/" joining regardless of host platform.
func (b *Builder) PathSlash() (string, error) {
	components, err := Group(b.fragments)
	if err != nil {
		return "", err
	}

	return EmitSlash(components), nil
}
