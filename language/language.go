// Copyright 2026 The Langtags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package language

import (
	"slices"
	"strings"
)

// Tag represents a BCP 47 language tag after normalization. It is an
// immutable value: every transformation returns a new Tag, and two Tags
// are equal exactly when their canonical string forms are equal.
//
// The zero Tag is "und", the undetermined language.
type Tag struct {
	language   string   // primary language subtag, "" if undetermined
	macro      string   // containing macrolanguage, if any; never equal to language
	extlangs   []string // extended language subtags, rendered sorted
	script     string   // 4-letter script code, title case
	region     string   // 2-letter or 3-digit region code, upper case
	variants   []string // variant subtags, rendered sorted
	extensions []string // extension blocks, in order of appearance
	private    string   // private-use block starting with "x-"
	str        string   // canonical form, computed at construction
}

// Und is the undetermined language tag, the fallback result of matching.
var Und = Tag{}

// Language returns the primary language subtag, or "" if the language is
// undetermined.
func (t Tag) Language() string { return t.language }

// Macrolanguage returns the macrolanguage containing the primary language
// subtag, or "" if there is none. It is derived from the language at
// construction and is never equal to it.
func (t Tag) Macrolanguage() string { return t.macro }

// Script returns the 4-letter script subtag, or "" if unspecified.
func (t Tag) Script() string { return t.script }

// Region returns the region subtag, or "" if unspecified.
func (t Tag) Region() string { return t.region }

// Extlangs returns the extended language subtags, sorted.
func (t Tag) Extlangs() []string { return slices.Clone(t.extlangs) }

// Variants returns the variant subtags, sorted.
func (t Tag) Variants() []string { return slices.Clone(t.variants) }

// Extensions returns the extension blocks in their order of appearance,
// each including its introducing singleton.
func (t Tag) Extensions() []string { return slices.Clone(t.extensions) }

// Private returns the private-use block including the leading "x-", or ""
// if there is none.
func (t Tag) Private() string { return t.private }

// IsRoot reports whether t carries no information at all, i.e. whether it
// equals "und".
func (t Tag) IsRoot() bool { return t.String() == "und" }

// Equal reports whether two tags have the same canonical form.
func (t Tag) Equal(other Tag) bool { return t.String() == other.String() }

// String returns the canonical string form:
//
//	language[-extlang...][-script][-region][-variant...][-extension...][-private]
//
// with "und" standing in for an absent language.
func (t Tag) String() string {
	if t.str == "" {
		return "und"
	}
	return t.str
}

// makeString assembles the canonical form. extlangs and variants must
// already be sorted.
func (t *Tag) makeString() {
	var b strings.Builder
	if t.language == "" {
		b.WriteString("und")
	} else {
		b.WriteString(t.language)
	}
	for _, e := range t.extlangs {
		b.WriteByte('-')
		b.WriteString(e)
	}
	if t.script != "" {
		b.WriteByte('-')
		b.WriteString(t.script)
	}
	if t.region != "" {
		b.WriteByte('-')
		b.WriteString(t.region)
	}
	for _, v := range t.variants {
		b.WriteByte('-')
		b.WriteString(v)
	}
	for _, e := range t.extensions {
		b.WriteByte('-')
		b.WriteString(e)
	}
	if t.private != "" {
		b.WriteByte('-')
		b.WriteString(t.private)
	}
	t.str = b.String()
}
