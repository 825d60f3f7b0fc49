// Copyright 2026 The Langtags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package language

import (
	"errors"
	"testing"

	"github.com/textnorm/langtags/cldr"
)

func TestParseNormalizes(t *testing.T) {
	tests := []struct{ in, want string }{
		// Deprecated language codes.
		{"iw", "he"},
		{"in", "id"},
		{"ji", "yi"},
		{"tl", "fil"},
		{"mo", "ro-MD"},
		{"mo-MD", "ro-MD"},

		// Replacements that expand into several subtags.
		{"sh", "sr-Latn"},
		{"sh-RS", "sr-Latn-RS"},
		{"sh-CS", "sr-Latn-RS"},

		// ISO 639-2/3 codes with a shorter equivalent.
		{"eng", "en"},
		{"spa-MX", "es-MX"},

		// Grandfathered tags.
		{"i-klingon", "tlh"},
		{"art-lojban", "jbo"},
		{"no-bok", "nb"},
		{"zh-min-nan", "nan"},
		{"en-GB-oed", "en-GB-oxendict"},

		// Extended language subtags fold into the promoted primary code.
		{"zh-yue", "yue"},
		{"zh-yue-HK", "yue-HK"},
		{"zh-cmn-Hans-CN", "cmn-Hans-CN"},
		{"ar-arz", "arz"},

		// Sign languages.
		{"sgn-US", "ase"},
		{"sgn-BE-FR", "sfb"},

		// Deprecated regions.
		{"en-UK", "en-GB"},
		{"ru-SU", "ru-RU"},
		{"de-DD", "de-DE"},

		// Synthetic root.
		{"root", "und"},
		{"und", "und"},

		// Nothing to normalize.
		{"en-US", "en-US"},
		{"zh-Hant-TW", "zh-Hant-TW"},
	}
	for _, tt := range tests {
		tag, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got := tag.String(); got != tt.want {
			t.Errorf("Parse(%q): got %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestMake(t *testing.T) {
	if got := Make("en_AU").String(); got != "en-AU" {
		t.Errorf("got %q; want %q", got, "en-AU")
	}
	if got := Make("not a language at all"); !got.Equal(Und) {
		t.Errorf("got %v; want %v", got, Und)
	}
}

func TestStandardize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"en_US", "en-US"},
		{"en-Latn-US", "en-US"},
		{"EN-latn", "en"},
		{"ja-jpan-jp", "ja-JP"},

		// Languages written in several scripts keep the script.
		{"sr-Cyrl", "sr-Cyrl"},
		{"zh-Hans", "zh-Hans"},
		{"sh", "sr-Latn"},

		{"iw-Hebr", "he"},
	}
	for _, tt := range tests {
		got, err := Standardize(tt.in)
		if err != nil {
			t.Errorf("Standardize(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Standardize(%q): got %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestStandardizeIdempotent(t *testing.T) {
	for _, s := range []string{"en_US", "en-Latn-US", "sh-CS", "iw", "zh-Hant-TW", "cmn"} {
		once, err := Standardize(s)
		if err != nil {
			t.Fatalf("Standardize(%q): %v", s, err)
		}
		twice, err := Standardize(once)
		if err != nil {
			t.Fatalf("Standardize(%q): %v", once, err)
		}
		if once != twice {
			t.Errorf("Standardize(%q) is not idempotent: %q then %q", s, once, twice)
		}
	}
}

func TestStandardizeMacro(t *testing.T) {
	r := NewResolver(cldr.Default())
	tests := []struct{ in, want string }{
		{"cmn-Hans-CN", "zh-Hans-CN"},
		{"arb-Arab", "ar"},
		{"zsm", "ms"},
		// Non-dominant members keep their own code.
		{"yue", "yue"},
		{"arz-EG", "arz-EG"},
	}
	for _, tt := range tests {
		got, err := r.StandardizeMacro(tt.in)
		if err != nil {
			t.Errorf("StandardizeMacro(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("StandardizeMacro(%q): got %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestSimplifyAndAssumeScript(t *testing.T) {
	r := NewResolver(cldr.Default())
	if got := r.SimplifyScript(Make("en-Latn")).String(); got != "en" {
		t.Errorf("SimplifyScript(en-Latn): got %q; want %q", got, "en")
	}
	if got := r.SimplifyScript(Make("en-Shaw")).String(); got != "en-Shaw" {
		t.Errorf("SimplifyScript(en-Shaw): got %q; want %q", got, "en-Shaw")
	}
	if got := r.AssumeScript(Make("en")).String(); got != "en-Latn" {
		t.Errorf("AssumeScript(en): got %q; want %q", got, "en-Latn")
	}
	// No single default script for Serbian.
	if got := r.AssumeScript(Make("sr")).String(); got != "sr" {
		t.Errorf("AssumeScript(sr): got %q; want %q", got, "sr")
	}
	if got := r.AssumeScript(Make("und")).String(); got != "und" {
		t.Errorf("AssumeScript(und): got %q; want %q", got, "und")
	}
}

func TestBroaden(t *testing.T) {
	r := NewResolver(cldr.Default())
	got := r.Broaden(Make("yue-Hant-HK"))
	want := []string{
		"yue-Hant-HK", "zh-Hant-HK", "yue-HK", "zh-HK",
		"yue-Hant", "zh-Hant", "yue", "zh", "und-Hant", "und",
	}
	if len(got) != len(want) {
		t.Fatalf("Broaden returned %d tags; want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Errorf("Broaden[%d]: got %q; want %q", i, got[i], want[i])
		}
	}
}

func TestMaximize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"zh", "zh-Hans-CN"},
		{"zh-Hant", "zh-Hant-TW"},
		{"zh-TW", "zh-Hant-TW"},
		{"zh-HK", "zh-Hant-HK"},
		{"yue", "yue-Hant-HK"},
		{"pt", "pt-Latn-BR"},
		{"und", "en-Latn-US"},
		{"und-CH", "de-Latn-CH"},
		{"und-Arab", "ar-Arab-EG"},
		{"und-419", "es-Latn-419"},
		{"ja-Latn", "ja-Latn-JP"},
		{"en-Shaw", "en-Shaw-GB"},

		// Explicit subtags survive even when the matching entry is broader.
		{"en-DE", "en-Latn-DE"},
		{"zh-Shaw", "zh-Shaw-CN"},

		// Unknown languages fall through to the global fallback, keeping
		// the language.
		{"qaa", "qaa-Latn-US"},
	}
	for _, tt := range tests {
		max, err := Maximize(Make(tt.in))
		if err != nil {
			t.Errorf("Maximize(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got := max.String(); got != tt.want {
			t.Errorf("Maximize(%q): got %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestMaximizeMissingData(t *testing.T) {
	r := NewResolver(&cldr.Registry{})
	tag, err := r.Parse("en")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Maximize(tag); !errors.Is(err, ErrMissingLikelyData) {
		t.Errorf("got error %v; want ErrMissingLikelyData", err)
	}
}

func TestAliasCycle(t *testing.T) {
	r := NewResolver(&cldr.Registry{
		LanguageAliases: map[string]string{"aaa": "bbb", "bbb": "aaa"},
	})
	if _, err := r.Parse("aaa"); !errors.Is(err, ErrAliasCycle) {
		t.Errorf("got error %v; want ErrAliasCycle", err)
	}
}

func TestResolverCaching(t *testing.T) {
	r := NewResolver(cldr.Default(), WithParseCacheSize(16))
	a, err := r.Parse("sh-CS")
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Parse("sh-CS")
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("repeated parses disagree: %v vs %v", a, b)
	}
	// Raw and normalized parses are cached separately.
	raw, err := r.ParseRaw("sh-CS")
	if err != nil {
		t.Fatal(err)
	}
	if got := raw.String(); got != "sh-CS" {
		t.Errorf("ParseRaw(sh-CS): got %q; want %q", got, "sh-CS")
	}
}
