// Copyright 2026 The Langtags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cldr provides the read-only reference tables the language
// package consumes: deprecated-tag replacements, macrolanguage data,
// suppressed scripts, likely subtags, parent locales and the CLDR
// language matching rules.
//
// The tables are derived from the IANA language subtag registry and the
// Unicode CLDR supplemental data and ship as embedded YAML files. They
// are loaded once per process and never mutated afterwards.
package cldr

import (
	"embed"
	"fmt"
	"sync"

	"github.com/goccy/go-yaml"
)

//go:embed data/*.yaml
var dataFS embed.FS

// A MatchRule is one entry of the CLDR language matching exception list:
// the distance between a desired and a supported language, optionally in
// one direction only. Desired and Supported are hyphen-joined
// language[-script[-region]] forms.
type MatchRule struct {
	Desired   string `yaml:"desired"`
	Supported string `yaml:"supported"`
	Distance  int    `yaml:"distance"`
	OneWay    bool   `yaml:"oneway"`
}

// A Registry holds every reference table as a plain read-only map. All
// maps are keyed by the case conventions of their subtag type: language
// keys lower case, region keys upper case.
type Registry struct {
	// LanguageAliases maps deprecated or non-canonical tags and language
	// subtags (lowercased) to their replacement, which may itself be a
	// multi-subtag tag. Includes the synthetic "root" -> "und" mapping and
	// combined language-extlang keys such as "zh-yue".
	LanguageAliases map[string]string

	// RegionAliases maps deprecated region codes to their replacement.
	// Where a region split maps to several candidates, the first listed
	// replacement was chosen when the table was built.
	RegionAliases map[string]string

	// MacroPreferred maps a macrolanguage's dominant member to the
	// macrolanguage itself, e.g. "cmn" -> "zh".
	MacroPreferred map[string]string

	// Macrolanguages maps a language to the macrolanguage containing it,
	// e.g. "yue" -> "zh".
	Macrolanguages map[string]string

	// SuppressScripts maps a language to the script it is written in by
	// default, e.g. "en" -> "Latn". Languages with several scripts in
	// active use (such as "sr") are absent.
	SuppressScripts map[string]string

	// LikelySubtags maps an underspecified tag to its most likely fully
	// specified form. Always contains the "und" key as a global default.
	LikelySubtags map[string]string

	// ParentLocales maps a tag to its CLDR parent locale where that
	// differs from simple truncation, e.g. "en-AU" -> "en-001".
	ParentLocales map[string]string

	// MatchRules is the CLDR language matching exception list.
	MatchRules []MatchRule
}

// Load parses the embedded reference data into a fresh Registry. It
// returns an error if any file is malformed or if the likely-subtags
// table lacks its "und" fallback.
func Load() (*Registry, error) {
	reg := &Registry{}

	var aliases struct {
		Languages map[string]string `yaml:"languages"`
		Regions   map[string]string `yaml:"regions"`
	}
	if err := loadFile("data/aliases.yaml", &aliases); err != nil {
		return nil, err
	}
	reg.LanguageAliases = aliases.Languages
	reg.RegionAliases = aliases.Regions

	var macro struct {
		Preferred map[string]string `yaml:"preferred"`
		Members   map[string]string `yaml:"members"`
	}
	if err := loadFile("data/macrolanguages.yaml", &macro); err != nil {
		return nil, err
	}
	reg.MacroPreferred = macro.Preferred
	reg.Macrolanguages = macro.Members

	var scripts struct {
		Suppress map[string]string `yaml:"suppress"`
	}
	if err := loadFile("data/scripts.yaml", &scripts); err != nil {
		return nil, err
	}
	reg.SuppressScripts = scripts.Suppress

	var likely struct {
		Likely map[string]string `yaml:"likely"`
	}
	if err := loadFile("data/likely.yaml", &likely); err != nil {
		return nil, err
	}
	reg.LikelySubtags = likely.Likely

	var parents struct {
		Parents map[string]string `yaml:"parents"`
	}
	if err := loadFile("data/parents.yaml", &parents); err != nil {
		return nil, err
	}
	reg.ParentLocales = parents.Parents

	var matching struct {
		Rules []MatchRule `yaml:"rules"`
	}
	if err := loadFile("data/matching.yaml", &matching); err != nil {
		return nil, err
	}
	reg.MatchRules = matching.Rules

	if _, ok := reg.LikelySubtags["und"]; !ok {
		return nil, fmt.Errorf("cldr: likely subtags data lacks the %q fallback", "und")
	}
	return reg, nil
}

func loadFile(name string, v any) error {
	b, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("cldr: %w", err)
	}
	if err := yaml.Unmarshal(b, v); err != nil {
		return fmt.Errorf("cldr: parsing %s: %w", name, err)
	}
	return nil
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide Registry, loading it on first use.
// The embedded data is validated at load time; Default panics if it is
// corrupt, since that is a defect in the build, not a runtime condition.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := Load()
		if err != nil {
			panic(err)
		}
		defaultReg = reg
	})
	return defaultReg
}
