// Copyright 2026 The Langtags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package language implements BCP 47 language tags: parsing, normalization,
// and matching.
//
// A Tag is an immutable record of the subtags of a language identifier such
// as "en-US", "zh-Hant-TW" or "sr-Latn". Tags are obtained from a Resolver,
// which parses the BCP 47 syntax and applies the normalizations prescribed
// by the IANA registry and the Unicode CLDR: deprecated codes are replaced,
// extended-language forms are folded into their modern primary codes, and
// redundant information can be stripped or filled in from likely-subtag
// data.
//
// A Matcher compares a desired language against supported ones and reports
// a confidence score between 0 and 100, following the CLDR language
// matching rules. BestMatch applies the scorer across a list of supported
// languages:
//
//	m := language.NewMatcher(language.NewResolver(cldr.Default()))
//	tag, score, err := m.BestMatch("sh", []string{"hr", "bs", "sr-Latn"}, 75)
//	// tag == "sr-Latn", score == 100
//
// Package-level functions mirror the Resolver and Matcher methods using a
// process-wide default backed by cldr.Default().
//
// See https://tools.ietf.org/html/bcp47 and
// https://unicode.org/reports/tr35/#LanguageMatching for the underlying
// specifications.
package language
