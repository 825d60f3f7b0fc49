// Copyright 2026 The Langtags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package language

import (
	"errors"
	"testing"
)

func TestParseRaw(t *testing.T) {
	tests := []struct{ in, want string }{
		{"en", "en"},
		{"EN-gb", "en-GB"},
		{"en_US", "en-US"},
		{"sr_latn_rs", "sr-Latn-RS"},
		{"zh-hant-tw", "zh-Hant-TW"},
		{"es-419", "es-419"},
		{"de-CH-1901", "de-CH-1901"},
		{"hy-Latn-IT-arevela", "hy-Latn-IT-arevela"},
		{"en-US-u-co-phonebk", "en-US-u-co-phonebk"},
		{"en-a-bbb-x-a-b", "en-a-bbb-x-a-b"},
		// A pure private-use tag renders with the und sentinel up front.
		{"x-private-tag", "und-x-private-tag"},
		{"und", "und"},
		{"UND-Latn", "und-Latn"},
		{"zh-cmn-Hans-CN", "zh-cmn-Hans-CN"},

		// Variants are rendered in sorted order.
		{"sl-rozaj-biske", "sl-biske-rozaj"},

		// Raw parsing applies no replacements, even for grandfathered tags
		// and deprecated codes.
		{"i-klingon", "i-klingon"},
		{"zh-min-nan", "zh-min-nan"},
		{"eng", "eng"},
		{"en-UK", "en-UK"},
	}
	for _, tt := range tests {
		tag, err := ParseRaw(tt.in)
		if err != nil {
			t.Errorf("ParseRaw(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got := tag.String(); got != tt.want {
			t.Errorf("ParseRaw(%q): got %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in     string
		subtag string
	}{
		// A subtag may not follow one of an earlier type.
		{"zh-TW-Hant", "hant"},
		{"en-US-Latn", "latn"},
		{"en-1901-US", "us"},

		// Singletons must be followed by something.
		{"en-a", "a"},
		{"en-US-x", "x"},
		{"x", "x"},

		// Malformed subtags.
		{"e", "e"},
		{"419", "419"},
		{"en-", ""},
		{"en-waytoolongg", "waytoolongg"},
		{"verylonglanguage", "verylonglanguage"},
	}
	for _, tt := range tests {
		_, err := ParseRaw(tt.in)
		if err == nil {
			t.Errorf("ParseRaw(%q): no error", tt.in)
			continue
		}
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Errorf("ParseRaw(%q): error %v is not a *SyntaxError", tt.in, err)
			continue
		}
		if syntaxErr.Subtag != tt.subtag {
			t.Errorf("ParseRaw(%q): offending subtag was %q; want %q", tt.in, syntaxErr.Subtag, tt.subtag)
		}
	}
}

func TestParseExtlangs(t *testing.T) {
	// Up to three extended language subtags directly follow the language.
	tag, err := ParseRaw("zh-yue-Hant-HK")
	if err != nil {
		t.Fatal(err)
	}
	if got := tag.Extlangs(); len(got) != 1 || got[0] != "yue" {
		t.Errorf("extlangs were %v; want [yue]", got)
	}
	if got := tag.Script(); got != "Hant" {
		t.Errorf("script was %q; want %q", got, "Hant")
	}
	if got := tag.Region(); got != "HK" {
		t.Errorf("region was %q; want %q", got, "HK")
	}
}

func TestParseRoundTrip(t *testing.T) {
	// Canonical forms parse back to themselves.
	tags := []string{
		"en", "en-GB", "zh-Hant-TW", "sr-Latn-RS", "es-419",
		"de-CH-1901", "en-US-u-co-phonebk", "und-x-pig-latin", "und-Cyrl",
	}
	for _, s := range tags {
		tag, err := ParseRaw(s)
		if err != nil {
			t.Errorf("ParseRaw(%q): unexpected error: %v", s, err)
			continue
		}
		if got := tag.String(); got != s {
			t.Errorf("ParseRaw(%q).String(): got %q; want %q", s, got, s)
		}
	}
}
