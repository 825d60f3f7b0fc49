// Copyright 2026 The Langtags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package language

import (
	"fmt"
	"strings"
)

// SyntaxError is returned when a string cannot be parsed as a BCP 47
// language tag. It reports the offending subtag and what the grammar
// expected at that position.
type SyntaxError struct {
	Subtag   string // the subtag that could not be placed
	Expected string // description of what was expected instead
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("language: expected %s, got %q", e.Expected, e.Subtag)
}

// subtagType identifies the grammatical role of one parsed subtag.
type subtagType int

const (
	subtagLanguage subtagType = iota
	subtagExtlang
	subtagScript
	subtagRegion
	subtagVariant
	subtagExtension
	subtagPrivate
	subtagGrandfathered
)

// Expected-order positions for subtags following the language code. The
// parser scans left to right and only ever moves forward through this
// order; a subtag whose type sorts before the current position is out of
// place.
const (
	orderExtlang = iota
	orderScript
	orderRegion
	orderVariant
	orderExtension
	orderEnd
)

var orderNames = [...]string{
	"extlang", "script", "region", "variant", "extension", "end of string",
}

// expectedFrom lists the subtag types that would still be legal at order
// position p, for error messages.
func expectedFrom(p int) string {
	opts := orderNames[p:]
	switch len(opts) {
	case 1:
		return opts[0]
	case 2:
		return opts[0] + " or " + opts[1]
	default:
		return strings.Join(opts[:len(opts)-1], ", ") + ", or " + opts[len(opts)-1]
	}
}

// Grandfathered tags from RFC 3066 that must not be parsed by the regular
// grammar. The irregular ones do not fit the syntax at all; the regular
// ones do, but would parse into nonsense. All lowercase so they can be
// matched after case folding.
var grandfathered = map[string]bool{
	// Irregular
	"en-gb-oed": true, "i-ami": true, "i-bnn": true, "i-default": true,
	"i-enochian": true, "i-hak": true, "i-klingon": true, "i-lux": true,
	"i-mingo": true, "i-navajo": true, "i-pwn": true, "i-tao": true,
	"i-tay": true, "i-tsu": true, "sgn-be-fr": true, "sgn-be-nl": true,
	"sgn-ch-de": true,

	// Regular
	"art-lojban": true, "cel-gaulish": true, "no-bok": true, "no-nyn": true,
	"zh-guoyu": true, "zh-hakka": true, "zh-min": true, "zh-min-nan": true,
	"zh-xiang": true,
}

type subtag struct {
	typ   subtagType
	value string
}

// normalizeCharacters folds a tag to lowercase and replaces underscores
// with hyphens. BCP 47 is case-insensitive and commonly written with
// either separator.
func normalizeCharacters(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "_", "-")
}

// parseTag splits a raw tag into typed subtags, validating lengths,
// character classes and ordering. It performs no registry lookups; the
// result states what would have to be looked up. Values are re-cased by
// convention: script subtags in title case, regions in upper case,
// everything else in lower case.
func parseTag(s string) ([]subtag, error) {
	s = normalizeCharacters(s)
	if grandfathered[s] {
		return []subtag{{subtagGrandfathered, s}}, nil
	}
	parts := strings.Split(s, "-")
	if parts[0] == "x" {
		if len(parts) == 1 {
			return nil, &SyntaxError{Subtag: "x", Expected: "a subtag following the singleton"}
		}
		return []subtag{{subtagPrivate, s}}, nil
	}
	if len(parts[0]) < 2 || len(parts[0]) > 8 || !isAlpha(parts[0]) {
		return nil, &SyntaxError{Subtag: parts[0], Expected: "a language code"}
	}
	subs := []subtag{{subtagLanguage, parts[0]}}
	rest, err := parseSubtags(parts[1:], orderExtlang)
	if err != nil {
		return nil, err
	}
	return append(subs, rest...), nil
}

// parseSubtags consumes everything after the language code: extlangs,
// script, region, variants, extensions and private use. expect is the
// earliest order position still legal.
func parseSubtags(parts []string, expect int) ([]subtag, error) {
	var subs []subtag
	for i := 0; i < len(parts); {
		st := parts[i]
		typ := -1
		switch n := len(st); {
		case n == 0 || n > 8:
			return nil, &SyntaxError{Subtag: st, Expected: "a subtag of 1-8 characters"}
		case n == 1:
			if i == len(parts)-1 {
				return nil, &SyntaxError{Subtag: st, Expected: "a subtag following the singleton"}
			}
			if st == "x" {
				// Private use: opaque codes covering the rest of the tag.
				subs = append(subs, subtag{subtagPrivate, strings.Join(parts[i:], "-")})
				return subs, nil
			}
			// An extension block runs until the next singleton.
			j := i + 1
			for j < len(parts) && len(parts[j]) != 1 {
				j++
			}
			subs = append(subs, subtag{subtagExtension, strings.Join(parts[i:j], "-")})
			i = j
			expect = orderExtension
			continue
		case n == 2:
			if isAlpha(st) {
				typ = orderRegion
			}
		case n == 3:
			if isAlpha(st) {
				if expect > orderExtlang {
					return nil, orderError(st, orderExtlang, expect)
				}
				// Up to three 3-letter extended language codes, directly
				// following the language.
				for k := 0; k < 3 && i < len(parts) && len(parts[i]) == 3 && isAlpha(parts[i]); k++ {
					subs = append(subs, subtag{subtagExtlang, parts[i]})
					i++
				}
				expect = orderScript
				continue
			}
			if isDigit(st) {
				typ = orderRegion
			}
		case n == 4:
			if isAlpha(st) {
				typ = orderScript
			} else if st[0] >= '0' && st[0] <= '9' {
				typ = orderVariant
			}
		default: // 5-8 characters
			typ = orderVariant
		}
		if typ == -1 {
			return nil, &SyntaxError{Subtag: st, Expected: "a valid subtag"}
		}
		if typ < expect {
			return nil, orderError(st, typ, expect)
		}
		// Scripts and regions occur at most once; seeing one moves the
		// expected position past it. A variant permits further variants but
		// nothing earlier.
		if typ == orderScript || typ == orderRegion {
			expect = typ + 1
		} else if typ == orderVariant && expect < orderVariant {
			expect = orderVariant
		}
		switch typ {
		case orderScript:
			subs = append(subs, subtag{subtagScript, strings.ToUpper(st[:1]) + st[1:]})
		case orderRegion:
			subs = append(subs, subtag{subtagRegion, strings.ToUpper(st)})
		default:
			subs = append(subs, subtag{subtagVariant, st})
		}
		i++
	}
	return subs, nil
}

func orderError(st string, got, expect int) error {
	return &SyntaxError{
		Subtag:   st,
		Expected: fmt.Sprintf("%s; this %s subtag is out of place", expectedFrom(expect), orderNames[got]),
	}
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 'a' || 'z' < c {
			return false
		}
	}
	return true
}

func isDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < '0' || '9' < c {
			return false
		}
	}
	return true
}
