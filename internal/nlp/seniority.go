package nlp

import "strings"

// Seniority is an ordinal experience level detected from free text.
type Seniority string

const (
	SeniorityIntern    Seniority = "intern"
	SeniorityJunior    Seniority = "junior"
	SeniorityMid       Seniority = "mid"
	SenioritySenior    Seniority = "senior"
	SeniorityLead      Seniority = "lead"
	SeniorityPrincipal Seniority = "principal"
	SeniorityManager   Seniority = "manager"
	SeniorityUnknown   Seniority = "unknown"
)

// seniorityLevels in ascending order of experience depth.
var seniorityLevels = []Seniority{
	SeniorityIntern,
	SeniorityJunior,
	SeniorityMid,
	SenioritySenior,
	SeniorityLead,
	SeniorityPrincipal,
	SeniorityManager,
}

type seniorityRule struct {
	level    Seniority
	keywords []string
}

// Keyword tables are checked in order; the first hit wins.
var seniorityRules = []seniorityRule{
	{SeniorityIntern, []string{"intern", "stajyer", "staj"}},
	{SeniorityJunior, []string{"junior", "jr", "jr.", "entry level", "giriş seviye", "başlangıç"}},
	{SeniorityMid, []string{"mid", "mid-level", "orta seviye", "orta düzey", "mid level"}},
	{SenioritySenior, []string{"senior", "sr", "sr.", "kıdemli", "deneyimli"}},
	{SeniorityLead, []string{"lead", "takım lideri", "tech lead", "team lead", "lider"}},
	{SeniorityPrincipal, []string{"principal", "staff", "baş mühendis"}},
	{SeniorityManager, []string{"manager", "yönetici", "müdür", "direktör", "director"}},
}

// DetectSeniority scans Turkish-lowercased text for seniority keywords.
// Returns SeniorityUnknown when nothing matches.
func DetectSeniority(text string) Seniority {
	lower := LowerTurkish(text)
	for _, rule := range seniorityRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.level
			}
		}
	}
	return SeniorityUnknown
}

// Ordinal returns the position of a level in the seniority ladder, or -1 for
// unknown levels.
func (s Seniority) Ordinal() int {
	for i, level := range seniorityLevels {
		if level == s {
			return i
		}
	}
	return -1
}
