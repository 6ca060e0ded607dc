package parser

import (
	"regexp"
	"strings"

	"cvanaliz-backend/internal/nlp"
	"cvanaliz-backend/internal/skills"
)

// Extractor scans free text for catalog skills with word-boundary matching.
// Patterns are compiled once per catalog, so build it at startup and share
// it; an Extractor is safe for concurrent use.
type Extractor struct {
	catalog  skills.Catalog
	patterns []skillPattern
}

type skillPattern struct {
	term string
	re   *regexp.Regexp
}

const (
	boundaryBefore = `(?:^|[\s,;:()\[\]{}/"'\-–—•●|])`
	boundaryAfter  = `(?:$|[\s,;:()\[\]{}/"'\-–—•●|.])`
)

// NewExtractor compiles one boundary-guarded pattern per catalog term.
func NewExtractor(catalog skills.Catalog) *Extractor {
	all := catalog.AllSkills()
	ex := &Extractor{
		catalog:  catalog,
		patterns: make([]skillPattern, 0, len(all)),
	}
	for _, term := range all {
		re := regexp.MustCompile(`(?i)` + boundaryBefore + regexp.QuoteMeta(term) + boundaryAfter)
		ex.patterns = append(ex.patterns, skillPattern{term: term, re: re})
	}
	return ex
}

// Extract returns every catalog skill present in the text as a whole word,
// canonicalized through the synonym table and deduplicated by canonical
// name. "React.js ve ReactJS" yields a single "react" entry.
func (e *Extractor) Extract(text string) []skills.Skill {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	normalized := nlp.LowerTurkish(text)

	seen := make(map[string]bool)
	var found []skills.Skill
	for _, sp := range e.patterns {
		if !sp.re.MatchString(normalized) {
			continue
		}
		canonical := e.catalog.Canonical(sp.term)
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		found = append(found, skills.Skill{
			Name:     canonical,
			Category: e.catalog.CategoryOf(canonical),
		})
	}
	return found
}
