package parser

import (
	"strings"

	"cvanaliz-backend/internal/nlp"
	"cvanaliz-backend/internal/skills"
)

// JobAnalysis is the full per-posting extraction result. RequiredSkills and
// NiceToHaveSkills partition AllSkills: a skill mentioned only under a
// nice-to-have header drops out of the required set.
type JobAnalysis struct {
	Sections         map[SectionKind]string `json:"sections"`
	AllSkills        []skills.Skill         `json:"allSkills"`
	RequiredSkills   []skills.Skill         `json:"requiredSkills"`
	NiceToHaveSkills []skills.Skill         `json:"niceToHaveSkills"`
	Seniority        nlp.Seniority          `json:"seniority"`
	Role             string                 `json:"role"`
	RawText          string                 `json:"rawText"`
}

type roleEntry struct {
	name     string
	keywords []string
}

// Ordered by specificity: the first keyword hit wins, so narrower roles
// come before "Software Engineer".
var roleCatalog = []roleEntry{
	{"Frontend Developer", []string{"frontend", "front-end", "front end", "react developer", "vue developer", "angular developer", "ön yüz"}},
	{"Backend Developer", []string{"backend", "back-end", "back end", "server side", "sunucu tarafı", "arka yüz"}},
	{"Full Stack Developer", []string{"full stack", "fullstack", "full-stack", "tam yığın"}},
	{"Mobile Developer", []string{"mobile", "mobil", "ios developer", "android developer", "react native", "flutter"}},
	{"DevOps Engineer", []string{"devops", "dev ops", "site reliability", "sre", "altyapı"}},
	{"Data Scientist", []string{"data scientist", "veri bilimci", "data science", "veri bilimi"}},
	{"Data Engineer", []string{"data engineer", "veri mühendisi", "data engineering"}},
	{"ML Engineer", []string{"machine learning", "makine öğrenmesi", "ml engineer", "yapay zeka", "ai engineer"}},
	{"QA Engineer", []string{"qa", "quality assurance", "test engineer", "test mühendisi", "kalite güvence"}},
	{"Project Manager", []string{"proje yöneticisi", "project manager", "scrum master"}},
	{"UI/UX Designer", []string{"ui/ux", "ui designer", "ux designer", "tasarımcı", "designer"}},
	{"System Administrator", []string{"sistem yöneticisi", "system admin", "sysadmin", "sistem mühendisi"}},
	{"Security Engineer", []string{"güvenlik", "security", "siber güvenlik", "cybersecurity"}},
	{"Software Engineer", []string{"yazılım mühendisi", "software engineer", "yazılım geliştirici", "software developer"}},
}

// AnalyzeJob runs the posting pipeline: section split, skill extraction with
// the required/nice-to-have partition, seniority and role detection.
func (p *Parser) AnalyzeJob(text string) *JobAnalysis {
	sections := ParseJobSections(text)
	allSkills := p.extractor.Extract(text)

	requiredSkills := allSkills
	niceToHaveSkills := []skills.Skill{}

	if nice := sections[SectionNiceToHave]; nice != "" {
		if extracted := p.extractor.Extract(nice); len(extracted) > 0 {
			niceToHaveSkills = extracted
			niceNames := make(map[string]bool, len(niceToHaveSkills))
			for _, s := range niceToHaveSkills {
				niceNames[s.Name] = true
			}
			requiredSkills = make([]skills.Skill, 0, len(allSkills))
			for _, s := range allSkills {
				if !niceNames[s.Name] {
					requiredSkills = append(requiredSkills, s)
				}
			}
		}
	}

	return &JobAnalysis{
		Sections:         sections,
		AllSkills:        allSkills,
		RequiredSkills:   requiredSkills,
		NiceToHaveSkills: niceToHaveSkills,
		Seniority:        nlp.DetectSeniority(text),
		Role:             detectRole(text),
		RawText:          text,
	}
}

// detectRole scans the Turkish-lowercased posting for role keywords and
// returns the first catalog hit, defaulting to "Software Engineer".
func detectRole(text string) string {
	lower := nlp.LowerTurkish(text)
	for _, entry := range roleCatalog {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.name
			}
		}
	}
	return "Software Engineer"
}
