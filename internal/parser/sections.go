// Package parser splits CV and job-posting text into labeled sections and
// runs the full per-document analyses: skill extraction, date ranges,
// seniority, language mix and content quality for CVs; required and
// nice-to-have skills plus role detection for postings.
package parser

import (
	"regexp"
	"strings"

	"cvanaliz-backend/internal/nlp"
)

// SectionKind labels one section of a CV or a job posting. CV and posting
// documents use disjoint kind sets apart from the catch-all defaults.
type SectionKind string

// CV section kinds. SectionHeader collects everything above the first
// recognized header, typically name and contact lines.
const (
	SectionExperience   SectionKind = "experience"
	SectionEducation    SectionKind = "education"
	SectionSkills       SectionKind = "skills"
	SectionProjects     SectionKind = "projects"
	SectionCertificates SectionKind = "certificates"
	SectionContact      SectionKind = "contact"
	SectionSummary      SectionKind = "summary"
	SectionLanguages    SectionKind = "languages"
	SectionReferences   SectionKind = "references"
	SectionHobbies      SectionKind = "hobbies"
	SectionHeader       SectionKind = "header"
)

// Job posting section kinds. SectionGeneral collects unlabeled text.
const (
	SectionResponsibilities SectionKind = "responsibilities"
	SectionRequirements     SectionKind = "requirements"
	SectionTechnologies     SectionKind = "technologies"
	SectionNiceToHave       SectionKind = "niceToHave"
	SectionBenefits         SectionKind = "benefits"
	SectionAbout            SectionKind = "about"
	SectionGeneral          SectionKind = "general"
)

type headerEntry struct {
	kind    SectionKind
	headers []string
}

// CV header keywords are stored ASCII-folded; detectCVHeader folds the input
// line the same way, so "İŞ DENEYİMİ" and "is deneyimi" both hit.
var cvHeaderCatalog = []headerEntry{
	{SectionExperience, []string{
		"deneyim", "is deneyimi", "is tecrubesi", "profesyonel deneyim",
		"work experience", "experience", "professional experience", "employment history",
		"calisma gecmisi", "staj deneyimi", "staj ve is deneyimi", "staj is deneyimi",
		"tecrube", "is gecmisi", "staj", "stajlar", "internship",
	}},
	{SectionEducation, []string{
		"egitim", "egitim bilgileri", "ogrenim", "akademik",
		"education", "academic background", "egitim gecmisi",
	}},
	{SectionSkills, []string{
		"beceriler", "yetenekler", "teknik beceriler", "yetkinlikler",
		"skills", "technical skills", "competencies", "teknolojiler",
		"programlama dilleri", "araclar", "tools", "technologies",
		"teknik yetkinlikler", "yazilim becerileri",
	}},
	{SectionProjects, []string{
		"projeler", "kisisel projeler", "akademik projeler",
		"projects", "personal projects", "portfolio",
	}},
	{SectionCertificates, []string{
		"sertifikalar", "sertifika", "belgeler",
		"certificates", "certifications", "licenses",
	}},
	{SectionContact, []string{
		"iletisim", "iletisim bilgileri", "kisisel bilgiler",
		"contact", "personal information", "contact information",
	}},
	{SectionSummary, []string{
		"ozet", "profil", "hakkimda", "kariyer hedefi", "on yazi",
		"summary", "profile", "about", "about me", "objective", "career objective",
	}},
	{SectionLanguages, []string{
		"diller", "yabanci diller", "dil bilgisi",
		"languages", "language skills",
	}},
	{SectionReferences, []string{
		"referanslar", "references",
	}},
	{SectionHobbies, []string{
		"hobiler", "ilgi alanlari",
		"hobbies", "interests",
	}},
}

// Posting headers keep their Turkish spelling; detectJobHeader lowercases
// without ASCII folding.
var jobHeaderCatalog = []headerEntry{
	{SectionResponsibilities, []string{
		"sorumluluklar", "görev tanımı", "yapacağınız işler", "iş tanımı",
		"ne yapacaksınız", "görevler", "roller",
		"responsibilities", "job description", "what you will do", "role",
		"neler yapacaksınız", "beklentilerimiz",
	}},
	{SectionRequirements, []string{
		"aranan nitelikler", "gereksinimler", "aranan özellikler",
		"aranan yetkinlikler", "olması gerekenler", "beklediğimiz nitelikler",
		"requirements", "qualifications", "what we are looking for",
		"sizden beklentilerimiz", "adayda aranan nitelikler",
	}},
	{SectionTechnologies, []string{
		"teknolojiler", "kullanılan teknolojiler", "tech stack",
		"teknoloji yığını", "araçlar", "tools", "technologies",
	}},
	{SectionNiceToHave, []string{
		"tercih sebepleri", "artı olan", "olması tercih edilen",
		"nice to have", "preferred", "bonus", "plus",
		"avantaj sağlayacak", "tercih nedenleri", "ekstra",
	}},
	{SectionBenefits, []string{
		"yan haklar", "faydalar", "sunduklarımız", "neler sunuyoruz",
		"benefits", "perks", "what we offer", "avantajlar",
	}},
	{SectionAbout, []string{
		"şirket hakkında", "hakkımızda", "biz kimiz",
		"about us", "about the company", "company overview",
	}},
}

var (
	cvHeaderPunct    = regexp.MustCompile(`[:\-–—_=*#|•●○►▶→&/\\,()\[\]{}]`)
	spaceRuns        = regexp.MustCompile(`\s+`)
	jobHeaderSymbols = regexp.MustCompile(`[:\-–—_=*#|•●○►▶→]`)
)

// detectCVHeader reports whether a line is a CV section header. Matching
// runs over the ASCII-folded line in three tiers: exact match, line starting
// with a known header, then a multi-word header appearing as contiguous
// words anywhere in the line (longest keyword wins). Lines longer than five
// words are never headers.
func detectCVHeader(line string) (SectionKind, bool) {
	normalized := nlp.FoldASCII(line)
	normalized = cvHeaderPunct.ReplaceAllString(normalized, " ")
	normalized = strings.TrimSpace(spaceRuns.ReplaceAllString(normalized, " "))
	if normalized == "" {
		return "", false
	}

	words := strings.Split(normalized, " ")
	if len(words) > 5 {
		return "", false
	}

	for _, entry := range cvHeaderCatalog {
		for _, header := range entry.headers {
			if normalized == header {
				return entry.kind, true
			}
		}
	}

	for _, entry := range cvHeaderCatalog {
		for _, header := range entry.headers {
			// Very short keywords cause too many prefix false positives.
			if len(header) < 4 {
				continue
			}
			headerWords := strings.Split(header, " ")
			if len(headerWords) <= len(words) && wordsEqual(words[:len(headerWords)], headerWords) {
				return entry.kind, true
			}
		}
	}

	var best SectionKind
	bestLen := 0
	for _, entry := range cvHeaderCatalog {
		for _, header := range entry.headers {
			if !strings.Contains(header, " ") || len(header) < 8 {
				continue
			}
			headerWords := strings.Split(header, " ")
			for i := 0; i+len(headerWords) <= len(words); i++ {
				if wordsEqual(words[i:i+len(headerWords)], headerWords) && len(header) > bestLen {
					best = entry.kind
					bestLen = len(header)
					break
				}
			}
		}
	}
	if bestLen > 0 {
		return best, true
	}
	return "", false
}

// detectJobHeader uses a single loose tier: the Turkish-lowercased line with
// decoration symbols removed only needs to contain a known keyword. Posting
// headers rarely collide with content lines the way CV lines do.
func detectJobHeader(line string) (SectionKind, bool) {
	normalized := strings.TrimSpace(jobHeaderSymbols.ReplaceAllString(nlp.LowerTurkish(line), ""))
	if normalized == "" {
		return "", false
	}
	for _, entry := range jobHeaderCatalog {
		for _, header := range entry.headers {
			if strings.Contains(normalized, header) {
				return entry.kind, true
			}
		}
	}
	return "", false
}

func wordsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ParseCVSections splits CV text into sections keyed by kind. Text above the
// first header lands in SectionHeader. A repeated header appends to the
// existing section, and every detected header registers its section even
// when no content follows it.
func ParseCVSections(text string) map[SectionKind]string {
	sections := make(map[SectionKind]string)
	current := SectionHeader
	var content []string

	flush := func() {
		if len(content) == 0 {
			return
		}
		joined := strings.Join(content, "\n")
		if existing := sections[current]; existing != "" {
			sections[current] = existing + "\n" + joined
		} else {
			sections[current] = joined
		}
		content = content[:0]
	}

	for _, line := range strings.Split(nlp.CleanText(text), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if kind, ok := detectCVHeader(trimmed); ok {
			flush()
			current = kind
			if _, exists := sections[current]; !exists {
				sections[current] = ""
			}
			continue
		}
		content = append(content, trimmed)
	}
	flush()
	return sections
}

// ParseJobSections splits posting text into sections keyed by kind.
// Unlabeled text lands in SectionGeneral. Unlike CVs, a repeated header
// overwrites the earlier section; postings repeat decorative headers far
// less often and the last block is the authoritative one.
func ParseJobSections(text string) map[SectionKind]string {
	sections := make(map[SectionKind]string)
	current := SectionGeneral
	var content []string

	flush := func() {
		if len(content) == 0 {
			return
		}
		sections[current] = strings.Join(content, "\n")
		content = content[:0]
	}

	for _, line := range strings.Split(nlp.CleanText(text), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if kind, ok := detectJobHeader(trimmed); ok {
			flush()
			current = kind
			continue
		}
		content = append(content, trimmed)
	}
	flush()
	return sections
}
