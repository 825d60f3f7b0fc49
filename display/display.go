// Copyright 2026 The Langtags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package display returns human-readable names for language tags and
// their subtags, in whichever of the built-in naming languages best
// matches the caller's language.
package display

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/textnorm/langtags/language"
)

// ErrNameNotFound is returned by Find when no subtag carries the given
// name in the chosen naming language.
var ErrNameNotFound = errors.New("display: name not found")

// minNamingScore is the match score a naming language must reach before
// its tables are used. Below it, callers get raw subtag codes rather than
// names in a language they may not read.
const minNamingScore = 75

// Description holds the display names of a tag's subtags. Fields for
// subtags the tag does not have are empty.
type Description struct {
	Language string
	Script   string
	Region   string
}

func (d Description) String() string {
	s := d.Language
	var extra []string
	if d.Script != "" {
		extra = append(extra, d.Script)
	}
	if d.Region != "" {
		extra = append(extra, d.Region)
	}
	if len(extra) > 0 {
		s += " (" + strings.Join(extra, ", ") + ")"
	}
	return s
}

// namingTags returns the tags of the built-in naming languages in a
// stable order.
func namingTags() []string {
	tags := make([]string, 0, len(dictionaries))
	for tag := range dictionaries {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// dictFor picks the name tables that best serve a reader of the language
// in, or nil when no naming language is a close enough match.
func dictFor(in string) *dictionary {
	best, _, err := language.BestMatch(in, namingTags(), minNamingScore)
	if err != nil || best == "und" {
		return nil
	}
	return dictionaries[best]
}

// LanguageName returns the name of t's language in the language in.
// A script subtag narrows the name when the naming language distinguishes
// the two ("zh-Hans" names as Simplified Chinese rather than Chinese).
// When no name is known the language subtag itself is returned.
func LanguageName(t language.Tag, in string) string {
	d := dictFor(in)
	lang := t.Language()
	if lang == "" {
		lang = "und"
	}
	if d == nil {
		return lang
	}
	if t.Script() != "" {
		if name, ok := d.languages[lang+"-"+t.Script()]; ok {
			return name
		}
	}
	if name, ok := d.languages[lang]; ok {
		return name
	}
	return lang
}

// ScriptName returns the name of t's script subtag in the language in,
// or "" when t has no script. Unknown scripts are returned as their code.
func ScriptName(t language.Tag, in string) string {
	if t.Script() == "" {
		return ""
	}
	d := dictFor(in)
	if d != nil {
		if name, ok := d.scripts[t.Script()]; ok {
			return name
		}
	}
	return t.Script()
}

// RegionName returns the name of t's region subtag in the language in,
// or "" when t has no region. Unknown regions are returned as their code.
func RegionName(t language.Tag, in string) string {
	if t.Region() == "" {
		return ""
	}
	d := dictFor(in)
	if d != nil {
		if name, ok := d.regions[t.Region()]; ok {
			return name
		}
	}
	return t.Region()
}

// Describe names each subtag of t in the language in. The script name is
// omitted when it is already implied by the language name, as with the
// compound "Simplified Chinese".
func Describe(t language.Tag, in string) Description {
	desc := Description{
		Language: LanguageName(t, in),
		Region:   RegionName(t, in),
	}
	if t.Script() != "" {
		compound := false
		if d := dictFor(in); d != nil {
			lang := t.Language()
			if lang == "" {
				lang = "und"
			}
			_, compound = d.languages[lang+"-"+t.Script()]
		}
		if !compound {
			desc.Script = ScriptName(t, in)
		}
	}
	return desc
}

// Find looks a display name back up and returns the tag it names. kind
// selects the table to search: "language", "script" or "region". The
// comparison ignores case. Compound language names resolve to multi-subtag
// tags, so Find("language", "Simplified Chinese", "en") returns zh-Hans.
func Find(kind, name, in string) (language.Tag, error) {
	d := dictFor(in)
	if d == nil {
		return language.Und, fmt.Errorf("display: no name data close enough to %q: %w", in, ErrNameNotFound)
	}

	var table map[string]string
	var compose func(code string) (language.Tag, error)
	switch kind {
	case "language":
		table = d.languages
		compose = language.ParseRaw
	case "script":
		table = d.scripts
		compose = func(code string) (language.Tag, error) {
			return language.ParseRaw("und-" + code)
		}
	case "region":
		table = d.regions
		compose = func(code string) (language.Tag, error) {
			return language.ParseRaw("und-" + code)
		}
	default:
		return language.Und, fmt.Errorf("display: unknown kind %q", kind)
	}

	// Prefer the shortest code so that plain "Chinese" keeps resolving to
	// zh even if a longer key happened to share the name.
	bestCode := ""
	for code, n := range table {
		if !strings.EqualFold(n, name) {
			continue
		}
		if bestCode == "" || len(code) < len(bestCode) {
			bestCode = code
		}
	}
	if bestCode == "" {
		return language.Und, fmt.Errorf("display: %s named %q: %w", kind, name, ErrNameNotFound)
	}
	return compose(bestCode)
}
