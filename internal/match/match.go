// Package match compares an analyzed CV against an analyzed job posting:
// which required skills the CV covers and through which strategy, what is
// missing, what the CV has on top, and how seniority and role line up.
package match

import (
	"math"

	"cvanaliz-backend/internal/nlp"
	"cvanaliz-backend/internal/parser"
	"cvanaliz-backend/internal/skills"
)

// Engine matches CV analyses against posting analyses using one catalog.
type Engine struct {
	catalog skills.Catalog
}

// New builds a matching engine around the given catalog.
func New(catalog skills.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// SkillRef names a skill with its category.
type SkillRef struct {
	Name     string          `json:"name"`
	Category skills.Category `json:"category"`
}

// MatchedSkill is one required skill the CV covers. MatchType records the
// strategy that hit: "exact", "synonym", "stem", "text_exact" or
// "text_stem". MatchedWith is the CV-side term that satisfied it.
type MatchedSkill struct {
	Name        string          `json:"name"`
	Category    skills.Category `json:"category"`
	MatchType   string          `json:"matchType"`
	MatchedWith string          `json:"matchedWith"`
}

// SynonymMatch records a required skill satisfied under a different name,
// so the recommendation layer can suggest aligning terminology.
type SynonymMatch struct {
	Required  string          `json:"required"`
	Found     string          `json:"found"`
	Category  skills.Category `json:"category"`
	MatchType string          `json:"matchType"`
}

// NiceToHaveResult splits the posting's optional skills by CV coverage.
type NiceToHaveResult struct {
	Matched []SkillRef `json:"matched"`
	Missing []SkillRef `json:"missing"`
}

// SeniorityMatch compares experience levels. An overqualified CV still
// counts as a match; only an underqualified one does not.
type SeniorityMatch struct {
	Match    bool          `json:"match"`
	CVLevel  nlp.Seniority `json:"cvLevel"`
	JobLevel nlp.Seniority `json:"jobLevel"`
	Note     string        `json:"note"`
}

// RoleMatch measures category overlap between CV skills and posting skills.
// Strength is shared categories over posting categories, in [0, 1].
type RoleMatch struct {
	JobRole          string            `json:"jobRole"`
	CommonCategories []skills.Category `json:"commonCategories"`
	Match            bool              `json:"match"`
	Strength         float64           `json:"strength"`
}

// Stats are the rounded coverage percentages for required and optional
// skills. Both are 0 when the respective denominator is 0.
type Stats struct {
	TotalRequired        int `json:"totalRequired"`
	TotalMatched         int `json:"totalMatched"`
	TotalMissing         int `json:"totalMissing"`
	MatchPercentage      int `json:"matchPercentage"`
	NiceToHavePercentage int `json:"niceToHavePercentage"`
}

// Result is the full comparison output.
type Result struct {
	Matched        []MatchedSkill   `json:"matched"`
	Missing        []SkillRef       `json:"missing"`
	SynonymMatched []SynonymMatch   `json:"synonymMatched"`
	Extra          []SkillRef       `json:"extra"`
	NiceToHave     NiceToHaveResult `json:"niceToHave"`
	SeniorityMatch SeniorityMatch   `json:"seniorityMatch"`
	RoleMatch      RoleMatch        `json:"roleMatch"`
	Stats          Stats            `json:"stats"`
}

// Match runs the comparison. Required skills go through the full strategy
// chain (exact, synonym, stem, free-text lookup in the raw CV); optional
// skills only get exact and synonym checks, since a stem or text hit is too
// weak a signal to celebrate a bonus skill.
func (e *Engine) Match(cv *parser.CVAnalysis, job *parser.JobAnalysis) *Result {
	matched := []MatchedSkill{}
	missing := []SkillRef{}
	synonymMatched := []SynonymMatch{}
	extra := []SkillRef{}

	cvSkillNames := make(map[string]bool, len(cv.Skills))
	for _, s := range cv.Skills {
		cvSkillNames[s.Name] = true
	}
	reqSkillNames := make(map[string]bool, len(job.RequiredSkills))
	for _, s := range job.RequiredSkills {
		reqSkillNames[s.Name] = true
	}

	for _, req := range job.RequiredSkills {
		matchType := ""
		matchedWith := ""

		switch {
		case cvSkillNames[req.Name]:
			matchType = "exact"
			matchedWith = req.Name
		default:
			for _, cvSkill := range cv.Skills {
				if e.catalog.AreSynonymous(req.Name, cvSkill.Name) {
					matchType = "synonym"
					matchedWith = cvSkill.Name
					break
				}
			}
		}

		if matchType == "" {
			reqStem := nlp.Stem(req.Name)
			if len([]rune(reqStem)) > 3 {
				for _, cvSkill := range cv.Skills {
					if nlp.Stem(cvSkill.Name) == reqStem {
						matchType = "stem"
						matchedWith = cvSkill.Name
						break
					}
				}
			}
		}

		if matchType == "" {
			if hit := nlp.FindKeyword(cv.RawText, req.Name); hit.Found {
				matchType = "text_" + hit.Type
				matchedWith = req.Name
			}
		}

		if matchType == "" {
			missing = append(missing, SkillRef{Name: req.Name, Category: req.Category})
			continue
		}
		if matchType == "synonym" {
			synonymMatched = append(synonymMatched, SynonymMatch{
				Required:  req.Name,
				Found:     matchedWith,
				Category:  req.Category,
				MatchType: matchType,
			})
		}
		matched = append(matched, MatchedSkill{
			Name:        req.Name,
			Category:    req.Category,
			MatchType:   matchType,
			MatchedWith: matchedWith,
		})
	}

	niceMatched := []SkillRef{}
	niceMissing := []SkillRef{}
	for _, nice := range job.NiceToHaveSkills {
		ok := cvSkillNames[nice.Name]
		if !ok {
			for _, cvSkill := range cv.Skills {
				if e.catalog.AreSynonymous(nice.Name, cvSkill.Name) {
					ok = true
					break
				}
			}
		}
		ref := SkillRef{Name: nice.Name, Category: nice.Category}
		if ok {
			niceMatched = append(niceMatched, ref)
		} else {
			niceMissing = append(niceMissing, ref)
		}
	}

	for _, cvSkill := range cv.Skills {
		isRequired := reqSkillNames[cvSkill.Name]
		if !isRequired {
			for _, req := range job.RequiredSkills {
				if e.catalog.AreSynonymous(cvSkill.Name, req.Name) {
					isRequired = true
					break
				}
			}
		}
		if !isRequired {
			extra = append(extra, SkillRef{Name: cvSkill.Name, Category: cvSkill.Category})
		}
	}

	return &Result{
		Matched:        matched,
		Missing:        missing,
		SynonymMatched: synonymMatched,
		Extra:          extra,
		NiceToHave:     NiceToHaveResult{Matched: niceMatched, Missing: niceMissing},
		SeniorityMatch: matchSeniority(cv.Seniority, job.Seniority),
		RoleMatch:      matchRole(cv, job),
		Stats: Stats{
			TotalRequired:        len(job.RequiredSkills),
			TotalMatched:         len(matched),
			TotalMissing:         len(missing),
			MatchPercentage:      percentage(len(matched), len(job.RequiredSkills)),
			NiceToHavePercentage: percentage(len(niceMatched), len(job.NiceToHaveSkills)),
		},
	}
}

func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func matchSeniority(cvLevel, jobLevel nlp.Seniority) SeniorityMatch {
	if cvLevel == nlp.SeniorityUnknown || jobLevel == nlp.SeniorityUnknown {
		return SeniorityMatch{Match: true, CVLevel: cvLevel, JobLevel: jobLevel, Note: "Seniority bilgisi yeterli değil"}
	}

	diff := cvLevel.Ordinal() - jobLevel.Ordinal()
	switch {
	case diff == 0:
		return SeniorityMatch{Match: true, CVLevel: cvLevel, JobLevel: jobLevel, Note: "Seniority seviyesi uyumlu"}
	case diff > 0:
		return SeniorityMatch{Match: true, CVLevel: cvLevel, JobLevel: jobLevel, Note: "CV daha deneyimli bir profili gösteriyor"}
	default:
		return SeniorityMatch{Match: false, CVLevel: cvLevel, JobLevel: jobLevel, Note: "İlan daha deneyimli bir profil arıyor"}
	}
}

func matchRole(cv *parser.CVAnalysis, job *parser.JobAnalysis) RoleMatch {
	jobCategories := make(map[skills.Category]bool, len(job.AllSkills))
	for _, s := range job.AllSkills {
		jobCategories[s.Category] = true
	}

	seen := make(map[skills.Category]bool, len(cv.Skills))
	common := []skills.Category{}
	for _, s := range cv.Skills {
		if seen[s.Category] {
			continue
		}
		seen[s.Category] = true
		if jobCategories[s.Category] {
			common = append(common, s.Category)
		}
	}

	denominator := len(jobCategories)
	if denominator < 1 {
		denominator = 1
	}
	return RoleMatch{
		JobRole:          job.Role,
		CommonCategories: common,
		Match:            len(common) > 0,
		Strength:         float64(len(common)) / float64(denominator),
	}
}
