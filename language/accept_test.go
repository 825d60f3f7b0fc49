// Copyright 2026 The Langtags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package language

import (
	"slices"
	"testing"
)

func TestParseAcceptLanguage(t *testing.T) {
	type res struct {
		tags []string
		q    []float32
	}
	tests := []struct {
		in   string
		want res
	}{
		{"en", res{[]string{"en"}, []float32{1}}},
		{"en-US, fr;q=0.9, de;q=0.8", res{
			[]string{"en-US", "fr", "de"},
			[]float32{1, 0.9, 0.8},
		}},
		// Sorted by weight, stable for ties.
		{"de;q=0.5, fr;q=0.9, en", res{
			[]string{"en", "fr", "de"},
			[]float32{1, 0.9, 0.5},
		}},
		{"en;q=0.8, fr;q=0.8, de", res{
			[]string{"de", "en", "fr"},
			[]float32{1, 0.8, 0.8},
		}},
		// Zero-weight entries are dropped.
		{"en;q=0, fr", res{[]string{"fr"}, []float32{1}}},
		// Entries are normalized like any other tag.
		{"sh;q=0.9, iw", res{
			[]string{"he", "sr-Latn"},
			[]float32{1, 0.9},
		}},
		{" en-gb ;q=0.8 , en ", res{
			[]string{"en", "en-GB"},
			[]float32{1, 0.8},
		}},
		{"", res{nil, nil}},
	}
	for _, tt := range tests {
		tags, q, err := ParseAcceptLanguage(tt.in)
		if err != nil {
			t.Errorf("ParseAcceptLanguage(%q): unexpected error: %v", tt.in, err)
			continue
		}
		var got []string
		for _, tag := range tags {
			got = append(got, tag.String())
		}
		if !slices.Equal(got, tt.want.tags) {
			t.Errorf("ParseAcceptLanguage(%q): tags were %v; want %v", tt.in, got, tt.want.tags)
		}
		if !slices.Equal(q, tt.want.q) {
			t.Errorf("ParseAcceptLanguage(%q): weights were %v; want %v", tt.in, q, tt.want.q)
		}
	}
}

func TestParseAcceptLanguageErrors(t *testing.T) {
	for _, in := range []string{
		"en;q=x",
		"en;q",
		"en;p=0.5",
		"zh-TW-Hant",
	} {
		if _, _, err := ParseAcceptLanguage(in); err == nil {
			t.Errorf("ParseAcceptLanguage(%q): no error", in)
		}
	}
}
