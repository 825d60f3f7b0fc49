// Copyright 2026 The Langtags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package language

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/golang/groupcache/lru"
	"github.com/rs/zerolog"

	"github.com/textnorm/langtags/cldr"
)

// ErrMissingLikelyData indicates that the likely-subtags table lacks even
// the global "und" fallback. A complete registry always covers "und", so
// this error means the reference data is corrupt, not that the input was
// unusual.
var ErrMissingLikelyData = errors.New("language: missing likely subtags data")

// ErrAliasCycle indicates that replacing deprecated subtags did not reach
// a fixed point within the allowed number of steps, which can only happen
// with malformed alias data.
var ErrAliasCycle = errors.New("language: alias replacement does not terminate")

// maxAliasDepth bounds recursive alias replacement. Real registry data
// settles after one or two steps (e.g. "sh-QU" -> "sr-Latn" plus a region
// replacement); the cap exists so malformed data cannot loop.
const maxAliasDepth = 5

// A Resolver builds Tag values from raw strings and applies the
// data-dependent transformations of the semantic model. It holds a
// read-only reference registry and memoizes parses; it is safe for
// concurrent use.
type Resolver struct {
	reg *cldr.Registry
	log zerolog.Logger

	mu     sync.Mutex
	parsed *lru.Cache // parseKey -> Tag
	likely *lru.Cache // canonical string -> Tag (Maximize results)
}

type parseKey struct {
	raw       string
	normalize bool
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLogger routes debug events (normalizations, cache misses) to l. The
// default logger discards everything.
func WithLogger(l zerolog.Logger) ResolverOption {
	return func(r *Resolver) { r.log = l }
}

// WithParseCacheSize sets the capacity of the parse memoization cache.
func WithParseCacheSize(n int) ResolverOption {
	return func(r *Resolver) { r.parsed = lru.New(n) }
}

// NewResolver returns a Resolver backed by the given registry. The
// registry is read-only and may be shared between resolvers.
func NewResolver(reg *cldr.Registry, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		reg:    reg,
		log:    zerolog.Nop(),
		parsed: lru.New(4096),
		likely: lru.New(1024),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Parse parses s and normalizes the result: deprecated tags and subtags
// are replaced, extlang forms are folded into their primary codes, and
// the macrolanguage field is filled in.
func (r *Resolver) Parse(s string) (Tag, error) {
	return r.resolve(s, true)
}

// ParseRaw parses s without applying any replacements. The result
// reflects the tag as written, re-cased by convention.
func (r *Resolver) ParseRaw(s string) (Tag, error) {
	return r.resolve(s, false)
}

// Make is like Parse but ignores errors, returning Und for unparseable
// input.
func (r *Resolver) Make(s string) Tag {
	t, _ := r.Parse(s)
	return t
}

func (r *Resolver) resolve(s string, normalize bool) (Tag, error) {
	key := parseKey{s, normalize}
	r.mu.Lock()
	if v, ok := r.parsed.Get(key); ok {
		r.mu.Unlock()
		return v.(Tag), nil
	}
	r.mu.Unlock()

	t, err := r.build(s, normalize, 0)
	if err != nil {
		return Tag{}, err
	}
	r.log.Debug().Str("tag", s).Str("canonical", t.String()).Bool("normalize", normalize).Msg("resolved language tag")

	r.mu.Lock()
	r.parsed.Add(key, t)
	r.mu.Unlock()
	return t, nil
}

// builder accumulates subtags into the fields of a Tag.
type builder struct {
	language   string
	extlangs   []string
	script     string
	region     string
	variants   []string
	extensions []string
	private    string
}

// merge overlays the non-empty fields of t, used when a replacement tag
// expands into several fields (e.g. "sh" -> language, script and region).
func (b *builder) merge(t Tag) {
	if t.language != "" {
		b.language = t.language
	}
	if len(t.extlangs) > 0 {
		b.extlangs = slices.Clone(t.extlangs)
	}
	if t.script != "" {
		b.script = t.script
	}
	if t.region != "" {
		b.region = t.region
	}
	if len(t.variants) > 0 {
		b.variants = slices.Clone(t.variants)
	}
	if len(t.extensions) > 0 {
		b.extensions = slices.Clone(t.extensions)
	}
	if t.private != "" {
		b.private = t.private
	}
}

// make freezes the builder into a Tag, filling the macrolanguage field
// from the registry and computing the canonical string.
func (b *builder) make(reg *cldr.Registry) Tag {
	t := Tag{
		language:   b.language,
		extlangs:   slices.Clone(b.extlangs),
		script:     b.script,
		region:     b.region,
		variants:   slices.Clone(b.variants),
		extensions: slices.Clone(b.extensions),
		private:    b.private,
	}
	slices.Sort(t.extlangs)
	slices.Sort(t.variants)
	if t.language != "" {
		if m := reg.Macrolanguages[t.language]; m != "" && m != t.language {
			t.macro = m
		}
	}
	t.makeString()
	return t
}

func (r *Resolver) build(s string, normalize bool, depth int) (Tag, error) {
	if depth > maxAliasDepth {
		return Tag{}, fmt.Errorf("%w: %q", ErrAliasCycle, s)
	}
	// A replacement registered for the tag as a whole wins over structural
	// parsing: one redirect, applied before anything else.
	if normalize {
		if rep, ok := r.reg.LanguageAliases[normalizeCharacters(s)]; ok {
			s = rep
		}
	}
	subs, err := parseTag(s)
	if err != nil {
		return Tag{}, err
	}
	var b builder
	for _, st := range subs {
		switch st.typ {
		case subtagLanguage:
			if st.value == "und" {
				continue
			}
			if normalize {
				if rep, ok := r.reg.LanguageAliases[st.value]; ok {
					// The replacement may itself be a full tag (deprecated
					// languages can expand to language+script+region), so it
					// is resolved recursively and merged field by field.
					rt, err := r.build(rep, normalize, depth+1)
					if err != nil {
						return Tag{}, err
					}
					b.merge(rt)
					continue
				}
			}
			b.language = st.value
		case subtagExtlang:
			if normalize && b.language != "" {
				// Fold "zh-yue"-style tags into the promoted primary code
				// when the combined form has a registered replacement.
				if rep, ok := r.reg.LanguageAliases[b.language+"-"+st.value]; ok {
					rt, err := r.build(rep, normalize, depth+1)
					if err != nil {
						return Tag{}, err
					}
					b.merge(rt)
					continue
				}
			}
			b.extlangs = append(b.extlangs, st.value)
		case subtagScript:
			b.script = st.value
		case subtagRegion:
			v := st.value
			if normalize {
				if rep, ok := r.reg.RegionAliases[v]; ok {
					v = rep
				}
			}
			b.region = v
		case subtagVariant:
			b.variants = append(b.variants, st.value)
		case subtagExtension:
			b.extensions = append(b.extensions, st.value)
		case subtagPrivate:
			b.private = st.value
		case subtagGrandfathered:
			// Unknown or unnormalized grandfathered tag: the whole string
			// stands in as the language.
			b.language = st.value
		}
	}
	return b.make(r.reg), nil
}

// SimplifyScript drops the script subtag if it is the one the language is
// written in by default, e.g. "en-Latn" -> "en".
func (r *Resolver) SimplifyScript(t Tag) Tag {
	if t.language != "" && t.script != "" && r.reg.SuppressScripts[t.language] == t.script {
		b := builderFrom(t)
		b.script = ""
		return b.make(r.reg)
	}
	return t
}

// AssumeScript fills in the script subtag from the language's registered
// default, e.g. "en" -> "en-Latn". It is a no-op when the script is
// already present or when the language has no single default script (such
// as "sr").
func (r *Resolver) AssumeScript(t Tag) Tag {
	if t.language != "" && t.script == "" {
		if sc := r.reg.SuppressScripts[t.language]; sc != "" {
			b := builderFrom(t)
			b.script = sc
			return b.make(r.reg)
		}
	}
	return t
}

// PreferMacrolanguage replaces the language with its macrolanguage when
// the language is the macrolanguage's dominant member, as the CLDR
// prescribes: "cmn" -> "zh", "arb" -> "ar". Non-dominant members such as
// "yue" are left alone.
func (r *Resolver) PreferMacrolanguage(t Tag) Tag {
	lang := t.language
	if lang == "" {
		lang = "und"
	}
	if m := r.reg.MacroPreferred[lang]; m != "" {
		b := builderFrom(t)
		b.language = m
		return b.make(r.reg)
	}
	return t
}

// Broaden returns increasingly general versions of t, starting with t
// itself and ending with Und. The sequence keeps only subsets of
// {language, script, region} in a fixed most-to-least-specific order, with
// a macrolanguage variant after each subset that includes the language.
// It is used to probe the likely-subtags table.
func (r *Resolver) Broaden(t Tag) []Tag {
	type keyset struct {
		language, script, region bool
		useMacro                 bool
	}
	keysets := []keyset{
		{language: true, script: true, region: true},
		{language: true, script: true, region: true, useMacro: true},
		{language: true, region: true},
		{language: true, region: true, useMacro: true},
		{language: true, script: true},
		{language: true, script: true, useMacro: true},
		{language: true},
		{language: true, useMacro: true},
		{script: true},
		{},
	}
	broader := []Tag{t}
	seen := map[string]bool{t.String(): true}
	for _, ks := range keysets {
		if ks.useMacro && t.macro == "" {
			continue
		}
		var b builder
		if ks.language {
			b.language = t.language
			if ks.useMacro {
				b.language = t.macro
			}
		}
		if ks.script {
			b.script = t.script
		}
		if ks.region {
			b.region = t.region
		}
		bt := b.make(r.reg)
		if !seen[bt.String()] {
			broader = append(broader, bt)
			seen[bt.String()] = true
		}
	}
	return broader
}

// Maximize fills in likely values for missing subtags using the CLDR
// likely-subtags data: "zh-Hant" -> "zh-Hant-TW", "und-CH" ->
// "de-Latn-CH". Subtags that were given explicitly are preserved. The
// returned error wraps ErrMissingLikelyData only when the registry lacks
// the "und" fallback, which indicates corrupt data.
func (r *Resolver) Maximize(t Tag) (Tag, error) {
	key := t.String()
	r.mu.Lock()
	if v, ok := r.likely.Get(key); ok {
		r.mu.Unlock()
		return v.(Tag), nil
	}
	r.mu.Unlock()

	for _, broader := range r.Broaden(t) {
		v, ok := r.reg.LikelySubtags[broader.String()]
		if !ok {
			continue
		}
		max, err := r.ParseRaw(v)
		if err != nil {
			return Tag{}, fmt.Errorf("language: invalid likely subtags entry %q: %w", v, err)
		}
		// Explicit fields of the original win over likely values.
		b := builderFrom(max)
		b.merge(t)
		result := b.make(r.reg)

		r.mu.Lock()
		r.likely.Add(key, result)
		r.mu.Unlock()
		return result, nil
	}
	return Tag{}, fmt.Errorf("%w: no entry for %q or any broader form", ErrMissingLikelyData, t.String())
}

// Standardize parses and normalizes s and returns the canonical BCP 47
// string with any redundant script removed: "en_US" -> "en-US", "en-Latn"
// -> "en".
func (r *Resolver) Standardize(s string) (string, error) {
	t, err := r.Parse(s)
	if err != nil {
		return "", err
	}
	return r.SimplifyScript(t).String(), nil
}

// StandardizeMacro is like Standardize but additionally replaces dominant
// macrolanguage members with the macrolanguage itself: "cmn-Hans-CN" ->
// "zh-Hans-CN", "arb-Arab" -> "ar".
func (r *Resolver) StandardizeMacro(s string) (string, error) {
	t, err := r.Parse(s)
	if err != nil {
		return "", err
	}
	return r.SimplifyScript(r.PreferMacrolanguage(t)).String(), nil
}

func builderFrom(t Tag) builder {
	return builder{
		language:   t.language,
		extlangs:   slices.Clone(t.extlangs),
		script:     t.script,
		region:     t.region,
		variants:   slices.Clone(t.variants),
		extensions: slices.Clone(t.extensions),
		private:    t.private,
	}
}
