// Copyright 2026 The Langtags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package language

import (
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/golang/groupcache/lru"
	"github.com/rs/zerolog"

	"github.com/textnorm/langtags/cldr"
)

// Distance penalties for the general wildcard fallback, and the explicit
// score for exact and near-exact matches. The values follow the CLDR
// language matching rules: a mismatched region is a minor inconvenience, a
// mismatched script usually makes text unreadable, and an unrelated
// language is as far away as it gets unless a macrolanguage links the two.
const (
	scoreExact      = 100
	scoreSameMeans  = 99 // equal after maximizing and reducing
	regionPenalty   = 4
	scriptPenalty   = 40
	macroPenalty    = 20
	languagePenalty = 80
	maxDistance     = 100

	parentStepPenalty = 4 // per step up the parent-locale chain
	maxParentSteps    = 4
)

// A Matcher scores how well a supported language serves a user who wants
// another one, following the CLDR language matching rules. Scores range
// from 0 (useless) to 100 (identical meaning). Scoring is not symmetric:
// Swiss German speakers read Standard German, but not the other way
// around.
//
// A Matcher memoizes scores by input string pair and is safe for
// concurrent use.
type Matcher struct {
	res *Resolver
	reg *cldr.Registry
	log zerolog.Logger

	// dist holds the hand-curated CLDR exception list, keyed by
	// hyphen-joined (language[-script[-region]]) pairs. Symmetric rules
	// appear under both orderings.
	dist map[distKey]int

	mu     sync.Mutex
	scores *lru.Cache // scoreKey -> int
}

type distKey struct {
	desired, supported string
}

type scoreKey struct {
	desired, supported string
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithMatchLogger routes debug events (best-match decisions) to l.
func WithMatchLogger(l zerolog.Logger) MatcherOption {
	return func(m *Matcher) { m.log = l }
}

// WithScoreCacheSize sets the capacity of the score memoization cache.
func WithScoreCacheSize(n int) MatcherOption {
	return func(m *Matcher) { m.scores = lru.New(n) }
}

// NewMatcher returns a Matcher that scores tags using res and its
// registry's match rules.
func NewMatcher(res *Resolver, opts ...MatcherOption) *Matcher {
	m := &Matcher{
		res:    res,
		reg:    res.reg,
		log:    zerolog.Nop(),
		dist:   make(map[distKey]int),
		scores: lru.New(4096),
	}
	for _, rule := range m.reg.MatchRules {
		m.dist[distKey{rule.Desired, rule.Supported}] = rule.Distance
		if !rule.OneWay {
			m.dist[distKey{rule.Supported, rule.Desired}] = rule.Distance
		}
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Score parses both tags and returns the confidence, from 0 to 100, that
// a user who wants content in desired will be served by content in
// supported. Results are memoized by the raw string pair.
func (m *Matcher) Score(desired, supported string) (int, error) {
	key := scoreKey{desired, supported}
	m.mu.Lock()
	if v, ok := m.scores.Get(key); ok {
		m.mu.Unlock()
		return v.(int), nil
	}
	m.mu.Unlock()

	d, err := m.res.Parse(desired)
	if err != nil {
		return 0, err
	}
	s, err := m.res.Parse(supported)
	if err != nil {
		return 0, err
	}
	score, err := m.ScoreTags(d, s)
	if err != nil {
		return 0, err
	}

	m.mu.Lock()
	m.scores.Add(key, score)
	m.mu.Unlock()
	return score, nil
}

// ScoreTags is Score for already parsed tags. The only possible error
// wraps ErrMissingLikelyData, which indicates corrupt reference data.
func (m *Matcher) ScoreTags(desired, supported Tag) (int, error) {
	if desired.Equal(supported) {
		return scoreExact, nil
	}

	dMax, err := m.res.Maximize(m.res.PreferMacrolanguage(desired))
	if err != nil {
		return 0, err
	}
	sMax, err := m.res.Maximize(m.res.PreferMacrolanguage(supported))
	if err != nil {
		return 0, err
	}

	// Tags that mean the same thing once likely values are filled in and
	// redundancies are stripped ("en" vs "en-US", "zh-Hant" vs "zh-TW")
	// score just below an exact match.
	if m.reduce(dMax).Equal(m.reduce(sMax)) {
		return scoreSameMeans, nil
	}

	dt := triple(dMax)
	st := triple(sMax)

	var dist int
	if v, ok := m.lookup(dt, st); ok {
		dist = v
	} else if steps := m.parentSteps(desired.String(), supported.String()); steps > 0 {
		dist = parentStepPenalty * steps
	} else {
		dist = m.wildcardDistance(dt, st)
	}
	if dist > maxDistance {
		dist = maxDistance
	}
	if dist < 0 {
		dist = 0
	}
	return maxDistance - dist, nil
}

// reduce strips a maximized tag down to its comparable core: language
// (macrolanguage preferred) plus script and region, with any redundant
// script removed.
func (m *Matcher) reduce(t Tag) Tag {
	var b builder
	b.language = t.language
	b.script = t.script
	b.region = t.region
	return m.res.SimplifyScript(m.res.PreferMacrolanguage(b.make(m.reg)))
}

// triple extracts the (language, script, region) tuple the distance rules
// operate on. Maximized tags always carry all three.
func triple(t Tag) []string {
	lang := t.language
	if lang == "" {
		lang = "und"
	}
	return []string{lang, t.script, t.region}
}

// lookup consults the explicit distance table, trimming equal trailing
// components so that e.g. ("gsw","Latn","CH") vs ("de","Latn","CH")
// reaches the registered ("gsw","de") rule.
func (m *Matcher) lookup(desired, supported []string) (int, bool) {
	d, s := desired, supported
	for len(d) > 0 {
		if v, ok := m.dist[distKey{strings.Join(d, "-"), strings.Join(s, "-")}]; ok {
			return v, true
		}
		if d[len(d)-1] != s[len(s)-1] {
			break
		}
		d, s = d[:len(d)-1], s[:len(s)-1]
	}
	return 0, false
}

// parentSteps reports how many steps up the parent-locale chain lead from
// the desired tag to the supported one, or 0 if the supported tag is not
// an ancestor.
func (m *Matcher) parentSteps(desired, supported string) int {
	cur := desired
	for i := 1; i <= maxParentSteps; i++ {
		p, ok := m.reg.ParentLocales[cur]
		if !ok {
			return 0
		}
		if p == supported {
			return i
		}
		cur = p
	}
	return 0
}

// wildcardDistance implements the general fallback of the CLDR matching
// rules: strip the trailing component of the triple one position at a
// time, adding a penalty when the stripped components differ, until only
// the languages remain. A few hand-coded cases (Han scripts, regional
// English/Spanish/Portuguese) override the flat region penalty.
func (m *Matcher) wildcardDistance(desired, supported []string) int {
	if slices.Equal(desired, supported) {
		return 0
	}
	if v, ok := m.lookup(desired, supported); ok {
		return v
	}

	switch len(desired) {
	case 3:
		dl, ds, dr := desired[0], desired[1], desired[2]
		sl, ss, sr := supported[0], supported[1], supported[2]

		// Simplified and Traditional Chinese are closer to each other than
		// unrelated scripts, but still a major obstacle.
		if dl == sl && ds == "Hans" && ss == "Hant" {
			return 15
		}
		if dl == sl && ds == "Hant" && ss == "Hans" {
			return 19
		}

		// New World vs. Old World Portuguese.
		if dl == "pt" && sl == "pt" && ds == ss {
			switch {
			case dr == "BR" && sr == "US", dr == "US" && sr == "BR":
				return 4
			case dr == "US" || dr == "BR" || sr == "US" || sr == "BR":
				return 8
			default:
				return 4
			}
		}

		// Most English in the world is closer to UK English than to US
		// English, except in US dependencies.
		if dl == "en" && sl == "en" && ds == ss {
			switch {
			case dr == "US" && usDependency(sr), sr == "US" && usDependency(dr):
				return 4
			case dr == "US" || sr == "US":
				return 6
			case dr == "GB" || dr == "001" || sr == "GB" || sr == "001":
				return 4
			default:
				return 5
			}
		}

		// Most Spanish in the world is closer to Latin American Spanish
		// than to European Spanish.
		if dl == "es" && sl == "es" && ds == ss {
			switch {
			case dr == "ES" || sr == "ES":
				return 8
			case dr == "419" || sr == "419":
				return 4
			default:
				return 5
			}
		}

		inc := 0
		if dr != sr {
			inc = regionPenalty
		}
		return capDistance(inc + m.wildcardDistance(desired[:2], supported[:2]))
	case 2:
		if desired[0] == supported[0] && desired[1] == "Hans" && supported[1] == "Hant" {
			return 15
		}
		if desired[0] == supported[0] && desired[1] == "Hant" && supported[1] == "Hans" {
			return 19
		}
		inc := 0
		if desired[1] != supported[1] {
			inc = scriptPenalty
		}
		return capDistance(inc + m.wildcardDistance(desired[:1], supported[:1]))
	default:
		if m.macroOf(desired[0]) == m.macroOf(supported[0]) {
			// Unrelated codes within one macrolanguage, e.g. "arz" and
			// "ary".
			return macroPenalty
		}
		return languagePenalty
	}
}

func (m *Matcher) macroOf(lang string) string {
	if macro := m.reg.Macrolanguages[lang]; macro != "" {
		return macro
	}
	return lang
}

func usDependency(region string) bool {
	switch region {
	case "AS", "GU", "MH", "MP", "PR", "UM", "VI":
		return true
	}
	return false
}

func capDistance(d int) int {
	if d > maxDistance {
		return maxDistance
	}
	return d
}

// BestMatch picks, from supported, the language that best serves a user
// who wants desired. It returns the winning entry exactly as it appeared
// in supported, with its score. If no entry reaches minScore the result
// is ("und", 0). Ties go to the earliest entry. Unparseable supported
// entries can never match and are skipped; an unparseable desired tag is
// an error.
func (m *Matcher) BestMatch(desired string, supported []string, minScore int) (string, int, error) {
	// Fast path: the desired tag is supported verbatim.
	for _, s := range supported {
		if s == desired {
			return s, scoreExact, nil
		}
	}
	std, err := m.res.Standardize(desired)
	if err != nil {
		return "", 0, err
	}
	for _, s := range supported {
		if s == std {
			return s, scoreExact, nil
		}
	}

	best, bestScore := "und", -1
	for _, sup := range supported {
		score, err := m.Score(std, sup)
		if err != nil {
			var syntaxErr *SyntaxError
			if errors.As(err, &syntaxErr) {
				continue
			}
			return "", 0, err
		}
		if score >= minScore && score > bestScore {
			best, bestScore = sup, score
		}
	}
	if bestScore < 0 {
		best, bestScore = "und", 0
	}
	m.log.Debug().Str("desired", desired).Str("chosen", best).Int("score", bestScore).Msg("best match")
	return best, bestScore, nil
}
