// Package skills holds the static skill catalog: technology and competency
// terms grouped by category plus a canonical-to-variant synonym table. The
// catalog is an immutable value built once and injected into the parser and
// matching layers so tests can substitute smaller catalogs.
package skills

import (
	"sort"
	"strings"
)

// Category classifies a skill term.
type Category string

const (
	CategoryFrontend   Category = "Frontend"
	CategoryBackend    Category = "Backend"
	CategoryDatabase   Category = "Database"
	CategoryDevOps     Category = "DevOps"
	CategoryTesting    Category = "Testing"
	CategoryMobile     Category = "Mobile"
	CategoryAIML       Category = "AI/ML"
	CategoryMarketing  Category = "Marketing"
	CategorySoftSkills Category = "Soft Skills"
	CategorySecurity   Category = "Security"
	CategoryOther      Category = "Other"
)

// Skill is a catalog hit: a lowercase canonical (or raw) name with its
// category. Identity for matching purposes is the name; the category is a
// derived attribute.
type Skill struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// SynonymGroup maps one canonical skill name to its known variants.
type SynonymGroup struct {
	Canonical string
	Variants  []string
}

// Catalog is the immutable skill database. Safe for unlimited concurrent
// reads; never mutated after construction.
type Catalog struct {
	categories map[Category][]string
	synonyms   map[string][]string
	all        []string
	variantOf  map[string]string // variant -> canonical
}

// New builds a catalog from category lists and an ordered synonym table.
// Both inputs are copied; terms are matched case-insensitively. When a
// variant appears in more than one group, the first group listed claims it.
func New(categories map[Category][]string, synonyms []SynonymGroup) Catalog {
	c := Catalog{
		categories: make(map[Category][]string, len(categories)),
		synonyms:   make(map[string][]string, len(synonyms)),
		variantOf:  make(map[string]string),
	}
	// Sorted key iteration keeps AllSkills order stable across runs.
	categoryKeys := make([]string, 0, len(categories))
	for category := range categories {
		categoryKeys = append(categoryKeys, string(category))
	}
	sort.Strings(categoryKeys)

	seen := make(map[string]bool)
	for _, key := range categoryKeys {
		category := Category(key)
		terms := categories[category]
		list := make([]string, 0, len(terms))
		for _, term := range terms {
			lower := strings.ToLower(term)
			list = append(list, lower)
			if !seen[lower] {
				seen[lower] = true
				c.all = append(c.all, lower)
			}
		}
		c.categories[category] = list
	}

	for _, group := range synonyms {
		lowerCanonical := strings.ToLower(group.Canonical)
		list := make([]string, 0, len(group.Variants))
		for _, variant := range group.Variants {
			lowerVariant := strings.ToLower(variant)
			list = append(list, lowerVariant)
			if _, ok := c.variantOf[lowerVariant]; !ok {
				c.variantOf[lowerVariant] = lowerCanonical
			}
		}
		c.synonyms[lowerCanonical] = list
	}
	return c
}

// Default returns the built-in catalog of IT and marketing skill terms with
// Turkish-English synonym groups.
func Default() Catalog {
	return New(defaultCategories, defaultSynonyms)
}

// AllSkills returns the flattened lowercase union of every category list.
func (c Catalog) AllSkills() []string {
	out := make([]string, len(c.all))
	copy(out, c.all)
	return out
}

// CategoryOf finds the category of a skill by exact case-insensitive lookup.
// Unknown terms map to CategoryOther.
func (c Catalog) CategoryOf(skill string) Category {
	normalized := strings.ToLower(strings.TrimSpace(skill))
	for category, terms := range c.categories {
		for _, term := range terms {
			if term == normalized {
				return category
			}
		}
	}
	return CategoryOther
}

// SynonymOf resolves a term to its synonym group, checking the term as a
// canonical key first and then as a listed variant. Returns nil when the term
// participates in no group.
func (c Catalog) SynonymOf(term string) *SynonymGroup {
	normalized := strings.ToLower(strings.TrimSpace(term))
	if variants, ok := c.synonyms[normalized]; ok {
		return &SynonymGroup{Canonical: normalized, Variants: variants}
	}
	if canonical, ok := c.variantOf[normalized]; ok {
		return &SynonymGroup{Canonical: canonical, Variants: c.synonyms[canonical]}
	}
	return nil
}

// Canonical returns the canonical form of a term, or the term itself when it
// belongs to no synonym group.
func (c Catalog) Canonical(term string) string {
	normalized := strings.ToLower(strings.TrimSpace(term))
	if group := c.SynonymOf(normalized); group != nil {
		return group.Canonical
	}
	return normalized
}

// AreSynonymous reports whether two terms refer to the same skill: literal
// equality, a shared canonical, or one term's canonical equal to the other's
// literal form or listed in its variants. Symmetric and reflexive.
func (c Catalog) AreSynonymous(a, b string) bool {
	s1 := strings.ToLower(strings.TrimSpace(a))
	s2 := strings.ToLower(strings.TrimSpace(b))
	if s1 == s2 {
		return true
	}

	g1 := c.SynonymOf(s1)
	g2 := c.SynonymOf(s2)

	if g1 != nil && g2 != nil {
		return g1.Canonical == g2.Canonical
	}
	if g1 != nil {
		if g1.Canonical == s2 {
			return true
		}
		return containsTerm(g1.Variants, s2)
	}
	if g2 != nil {
		if g2.Canonical == s1 {
			return true
		}
		return containsTerm(g2.Variants, s1)
	}
	return false
}

func containsTerm(terms []string, needle string) bool {
	for _, term := range terms {
		if term == needle {
			return true
		}
	}
	return false
}
