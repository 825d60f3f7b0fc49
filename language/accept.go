// Copyright 2026 The Langtags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package language

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

var errInvalidWeight = errors.New("language: invalid Accept-Language weight")

// ParseAcceptLanguage parses an Accept-Language header value (RFC 9110)
// into normalized Tags with their quality weights, most preferred first;
// entries of equal weight keep their order of appearance. A weight of
// zero means "not acceptable" and drops the entry. Any entry that fails
// to parse as a tag makes the whole header an error.
func (r *Resolver) ParseAcceptLanguage(s string) ([]Tag, []float32, error) {
	var (
		tags    []Tag
		weights []float32
	)
	for s != "" {
		var entry string
		if entry, s = split(s, ','); entry == "" {
			continue
		}
		entry, weight := split(entry, ';')

		t, err := r.Parse(entry)
		if err != nil {
			return nil, nil, err
		}

		w := 1.0
		if weight != "" {
			weight = consume(weight, 'q')
			weight = consume(weight, '=')
			// A malformed "q=" prefix leaves weight empty, which ParseFloat
			// rejects along with any non-numeric value.
			if w, err = strconv.ParseFloat(weight, 32); err != nil {
				return nil, nil, errInvalidWeight
			}
			if w <= 0 {
				continue
			}
		}

		tags = append(tags, t)
		weights = append(weights, float32(w))
	}
	sort.Stable(&tagSort{tags, weights})
	return tags, weights, nil
}

// ParseAcceptLanguage parses an Accept-Language header using the default
// resolver.
func ParseAcceptLanguage(s string) ([]Tag, []float32, error) {
	r, _ := defaults()
	return r.ParseAcceptLanguage(s)
}

// consume strips the byte c off the front of s, or yields the empty
// string when s does not start with it.
func consume(s string, c byte) string {
	if s == "" || s[0] != c {
		return ""
	}
	return strings.TrimSpace(s[1:])
}

func split(s string, c byte) (head, tail string) {
	if i := strings.IndexByte(s, c); i >= 0 {
		return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
	}
	return strings.TrimSpace(s), ""
}

type tagSort struct {
	tag []Tag
	q   []float32
}

func (s *tagSort) Len() int { return len(s.q) }

func (s *tagSort) Less(i, j int) bool { return s.q[i] > s.q[j] }

func (s *tagSort) Swap(i, j int) {
	s.tag[i], s.tag[j] = s.tag[j], s.tag[i]
	s.q[i], s.q[j] = s.q[j], s.q[i]
}
