// Copyright 2026 The Langtags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package language

import (
	"sync"

	"github.com/textnorm/langtags/cldr"
)

// The package-level functions operate on a process-wide Resolver and
// Matcher backed by cldr.Default(), built on first use. Applications that
// need their own registry, logger or cache sizes should construct a
// Resolver and Matcher explicitly instead.
var (
	defaultOnce     sync.Once
	defaultResolver *Resolver
	defaultMatcher  *Matcher
)

func defaults() (*Resolver, *Matcher) {
	defaultOnce.Do(func() {
		defaultResolver = NewResolver(cldr.Default())
		defaultMatcher = NewMatcher(defaultResolver)
	})
	return defaultResolver, defaultMatcher
}

// Parse parses and normalizes the given BCP 47 string using the default
// resolver.
func Parse(s string) (Tag, error) {
	r, _ := defaults()
	return r.Parse(s)
}

// ParseRaw parses the given BCP 47 string without normalization.
func ParseRaw(s string) (Tag, error) {
	r, _ := defaults()
	return r.ParseRaw(s)
}

// Make is like Parse but ignores errors, returning Und for unparseable
// input. In most cases, language tags should be created with this or with
// Parse.
func Make(s string) Tag {
	r, _ := defaults()
	return r.Make(s)
}

// MustParse is like Parse, but panics if the given BCP 47 string cannot
// be parsed. It simplifies safe initialization of Tag values.
func MustParse(s string) Tag {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Standardize returns the canonical, normalized form of the given tag
// with any redundant script removed.
func Standardize(s string) (string, error) {
	r, _ := defaults()
	return r.Standardize(s)
}

// Maximize fills in likely values for the missing subtags of t.
func Maximize(t Tag) (Tag, error) {
	r, _ := defaults()
	return r.Maximize(t)
}

// Score returns the 0-100 confidence that a user wanting the desired
// language is served by the supported one.
func Score(desired, supported string) (int, error) {
	_, m := defaults()
	return m.Score(desired, supported)
}

// BestMatch picks the entry of supported that best serves desired, or
// ("und", 0) if none reaches minScore.
func BestMatch(desired string, supported []string, minScore int) (string, int, error) {
	_, m := defaults()
	return m.BestMatch(desired, supported, minScore)
}
