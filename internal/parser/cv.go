package parser

import (
	"regexp"
	"strings"

	"cvanaliz-backend/internal/nlp"
	"cvanaliz-backend/internal/skills"
)

// Parser runs the full CV and posting analyses against one skill catalog.
type Parser struct {
	catalog   skills.Catalog
	extractor *Extractor
}

// New builds a Parser around the given catalog.
func New(catalog skills.Catalog) *Parser {
	return &Parser{catalog: catalog, extractor: NewExtractor(catalog)}
}

// Extractor exposes the shared skill extractor.
func (p *Parser) Extractor() *Extractor {
	return p.extractor
}

// CVAnalysis is the full per-CV extraction result.
type CVAnalysis struct {
	Sections        map[SectionKind]string `json:"sections"`
	Skills          []skills.Skill         `json:"skills"`
	DateRanges      []nlp.DateRange        `json:"dateRanges"`
	Seniority       nlp.Seniority          `json:"seniority"`
	LanguageMix     nlp.LanguageMix        `json:"languageMix"`
	StandardHeaders StandardHeaders        `json:"standardHeaders"`
	ContentQuality  ContentQuality         `json:"contentQuality"`
	RawText         string                 `json:"rawText"`
	WordCount       int                    `json:"wordCount"`
	LineCount       int                    `json:"lineCount"`
}

// StandardHeaders reports how well the CV's section headers line up with
// what applicant tracking systems expect. Score covers the three core
// sections only; the booleans track the optional ones.
type StandardHeaders struct {
	Found           []SectionKind `json:"found"`
	Missing         []SectionKind `json:"missing"`
	Score           float64       `json:"score"`
	HasSummary      bool          `json:"hasSummary"`
	HasProjects     bool          `json:"hasProjects"`
	HasCertificates bool          `json:"hasCertificates"`
	HasContact      bool          `json:"hasContact"`
}

// QualityIssue is one content-quality finding with Turkish user-facing copy.
type QualityIssue struct {
	Type     string `json:"type"` // "warning" or "info"
	Message  string `json:"message"`
	Severity string `json:"severity"` // "high", "medium" or "low"
}

// ContentQuality summarizes length, contact details and writing style.
type ContentQuality struct {
	WordCount int            `json:"wordCount"`
	Issues    []QualityIssue `json:"issues"`
	HasEmail  bool           `json:"hasEmail"`
	HasPhone  bool           `json:"hasPhone"`
}

var (
	emailPattern = regexp.MustCompile(`[\w.+-]+@[\w-]+\.[\w.]+`)
	// Turkish mobile/landline shapes: 3-3-2-2 groups with optional country
	// code, or a bare 3+7 digit run.
	phonePattern      = regexp.MustCompile(`(\+?\d{1,3}[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{2}[\s.-]?\d{2}`)
	phoneShortPattern = regexp.MustCompile(`\d{3}\s?\d{7}`)
)

// Action verbs that signal achievement-oriented writing in the experience
// section. Compared after ASCII folding, so one spelling per verb suffices.
var actionVerbs = []string{
	"gelistirdim", "gelistirme",
	"yonettim", "tasarladim",
	"olusturdum", "uyguladim",
	"optimize ettim", "analiz ettim",
	"koordine ettim", "hayata gecirdim",
	"katkida bulundum",
	"iyilestirdim",
	"gorev aldim",
	"gorev aliyorum",
	"calistim",
	"katildim",
	"gelistiriyorum",
	"katilarak",
	"developed", "managed", "designed", "created",
	"implemented", "optimized", "led", "built",
	"improved", "achieved", "contributed",
}

// AnalyzeCV runs the whole CV pipeline: section split, skill extraction,
// date ranges, seniority, language mix, header standards and content
// quality. It never fails; an empty or garbage input just produces an
// analysis with empty parts.
func (p *Parser) AnalyzeCV(text string) *CVAnalysis {
	sections := ParseCVSections(text)
	return &CVAnalysis{
		Sections:        sections,
		Skills:          p.extractor.Extract(text),
		DateRanges:      nlp.ExtractDateRanges(text),
		Seniority:       nlp.DetectSeniority(text),
		LanguageMix:     nlp.DetectLanguageMix(text),
		StandardHeaders: checkHeaderStandards(sections),
		ContentQuality:  analyzeContentQuality(text, sections),
		RawText:         text,
		WordCount:       len(nlp.Tokenize(text)),
		LineCount:       countNonBlankLines(text),
	}
}

// checkHeaderStandards scores the three core sections. A header that was
// detected but has no content under it still counts as missing.
func checkHeaderStandards(sections map[SectionKind]string) StandardHeaders {
	expected := []SectionKind{SectionExperience, SectionEducation, SectionSkills}
	found := make([]SectionKind, 0, len(expected))
	missing := make([]SectionKind, 0, len(expected))

	for _, kind := range expected {
		if sections[kind] != "" {
			found = append(found, kind)
		} else {
			missing = append(missing, kind)
		}
	}

	return StandardHeaders{
		Found:           found,
		Missing:         missing,
		Score:           float64(len(found)) / float64(len(expected)) * 100,
		HasSummary:      sections[SectionSummary] != "",
		HasProjects:     sections[SectionProjects] != "",
		HasCertificates: sections[SectionCertificates] != "",
		HasContact:      sections[SectionContact] != "" || sections[SectionHeader] != "",
	}
}

func analyzeContentQuality(text string, sections map[SectionKind]string) ContentQuality {
	var issues []QualityIssue

	wordCount := len(nlp.Tokenize(text))
	if wordCount < 100 {
		issues = append(issues, QualityIssue{
			Type:     "warning",
			Message:  "CV çok kısa görünüyor. Daha fazla detay eklemeyi düşünün.",
			Severity: "high",
		})
	}
	if wordCount > 1500 {
		issues = append(issues, QualityIssue{
			Type:     "info",
			Message:  "CV oldukça uzun. Gereksiz detayları kısaltmayı düşünün.",
			Severity: "low",
		})
	}

	if experience := sections[SectionExperience]; experience != "" {
		folded := nlp.FoldASCII(experience)
		hasActionVerb := false
		for _, verb := range actionVerbs {
			if strings.Contains(folded, verb) {
				hasActionVerb = true
				break
			}
		}
		if !hasActionVerb {
			issues = append(issues, QualityIssue{
				Type:     "warning",
				Message:  "Deneyim bölümünde eylem fiilleri kullanın (geliştirdim, yönettim, tasarladım vb.)",
				Severity: "medium",
			})
		}
	}

	hasEmail := emailPattern.MatchString(text)
	if !hasEmail {
		issues = append(issues, QualityIssue{
			Type:     "warning",
			Message:  "CV'de e-posta adresi bulunamadı.",
			Severity: "medium",
		})
	}

	return ContentQuality{
		WordCount: wordCount,
		Issues:    issues,
		HasEmail:  hasEmail,
		HasPhone:  phonePattern.MatchString(text) || phoneShortPattern.MatchString(text),
	}
}

func countNonBlankLines(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
