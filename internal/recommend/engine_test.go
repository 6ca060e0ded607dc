package recommend

import (
	"strings"
	"testing"

	"cvanaliz-backend/internal/match"
	"cvanaliz-backend/internal/parser"
	"cvanaliz-backend/internal/score"
	"cvanaliz-backend/internal/skills"
)

func recommendationIDs(recs []Recommendation) map[string]bool {
	ids := make(map[string]bool, len(recs))
	for _, r := range recs {
		ids[r.ID] = true
	}
	return ids
}

func TestGenerateMissingSkillGroups(t *testing.T) {
	cv := &parser.CVAnalysis{StandardHeaders: parser.StandardHeaders{HasSummary: true}}
	job := &parser.JobAnalysis{Role: "Backend Developer"}
	matchResult := &match.Result{
		Missing: []match.SkillRef{
			{Name: "docker", Category: skills.CategoryDevOps},
			{Name: "kubernetes", Category: skills.CategoryDevOps},
			{Name: "postgresql", Category: skills.CategoryDatabase},
		},
		SeniorityMatch: match.SeniorityMatch{Match: true},
	}
	ats := &score.ATSScore{}

	recs := Generate(cv, job, matchResult, ats, &score.JobMatchScore{})
	ids := recommendationIDs(recs)

	if !ids["missing_DevOps"] || !ids["missing_Database"] {
		t.Fatalf("expected per-category missing recommendations, got %v", ids)
	}
	if !ids["experience_improvement"] {
		t.Fatalf("expected experience suggestions, got %v", ids)
	}

	for _, r := range recs {
		if r.ID == "missing_DevOps" && len(r.Items) != 2 {
			t.Errorf("DevOps group items = %v", r.Items)
		}
		if r.ID == "experience_improvement" {
			if len(r.Items) != 3 {
				t.Errorf("expected one suggestion per missing skill, got %v", r.Items)
			}
			if !strings.Contains(r.Items[0], "docker") || !strings.Contains(r.Items[0], "backend developer") {
				t.Errorf("template not filled: %q", r.Items[0])
			}
		}
	}
}

func TestGeneratePrioritySorted(t *testing.T) {
	cv := &parser.CVAnalysis{
		ContentQuality:  parser.ContentQuality{Issues: []parser.QualityIssue{{Message: "kısa", Severity: "high"}}},
		StandardHeaders: parser.StandardHeaders{HasSummary: false},
	}
	job := &parser.JobAnalysis{Role: "Frontend Developer"}
	matchResult := &match.Result{
		Missing:        []match.SkillRef{{Name: "react", Category: skills.CategoryFrontend}},
		SynonymMatched: []match.SynonymMatch{{Required: "node.js", Found: "nodejs"}},
		NiceToHave:     match.NiceToHaveResult{Missing: []match.SkillRef{{Name: "aws"}}},
		SeniorityMatch: match.SeniorityMatch{Match: false, Note: "İlan daha deneyimli bir profil arıyor"},
	}
	ats := &score.ATSScore{Risks: []score.Risk{{Level: "high", Title: "İletişim Bilgileri", Fix: "ekleyin"}}}

	recs := Generate(cv, job, matchResult, ats, &score.JobMatchScore{})

	order := map[string]int{"high": 0, "medium": 1, "low": 2}
	for i := 1; i < len(recs); i++ {
		if order[recs[i-1].Priority] > order[recs[i].Priority] {
			t.Fatalf("recommendations out of priority order: %s(%s) before %s(%s)",
				recs[i-1].ID, recs[i-1].Priority, recs[i].ID, recs[i].Priority)
		}
	}

	ids := recommendationIDs(recs)
	for _, want := range []string{"missing_Frontend", "experience_improvement", "ats_format", "synonym_warning", "nice_to_have", "seniority", "general", "add_summary"} {
		if !ids[want] {
			t.Errorf("missing recommendation %q in %v", want, ids)
		}
	}
}

func TestGenerateATSOnly(t *testing.T) {
	cv := &parser.CVAnalysis{
		ContentQuality:  parser.ContentQuality{Issues: []parser.QualityIssue{{Message: "e-posta eksik"}}},
		StandardHeaders: parser.StandardHeaders{HasSummary: false},
	}
	ats := &score.ATSScore{Risks: []score.Risk{
		{Level: "high", Title: "Bölüm Başlıkları", Fix: "standart başlık kullanın"},
		{Level: "medium", Title: "Profil Özeti", Fix: "özet ekleyin"},
	}}

	recs := Generate(cv, nil, nil, ats, nil)
	ids := recommendationIDs(recs)

	if !ids["ats_format"] {
		t.Errorf("expected ats_format, got %v", ids)
	}
	if !ids["ats_improvements"] {
		t.Errorf("expected medium fixes surfaced without a posting, got %v", ids)
	}
	if !ids["general"] || !ids["add_summary"] {
		t.Errorf("CV-side triggers should still fire: %v", ids)
	}
	for id := range ids {
		if strings.HasPrefix(id, "missing_") || id == "synonym_warning" || id == "seniority" {
			t.Errorf("posting-dependent recommendation %q must not fire", id)
		}
	}
}

func TestGenerateFallbackWhenClean(t *testing.T) {
	cv := &parser.CVAnalysis{StandardHeaders: parser.StandardHeaders{HasSummary: true}}
	matchResult := &match.Result{SeniorityMatch: match.SeniorityMatch{Match: true}}

	recs := Generate(cv, &parser.JobAnalysis{}, matchResult, &score.ATSScore{}, &score.JobMatchScore{})
	if len(recs) != 1 || recs[0].ID != "all_good" {
		t.Fatalf("expected single positive fallback, got %+v", recs)
	}
	if len(recs[0].Items) == 0 || recs[0].Action == "" {
		t.Fatalf("fallback must still carry guidance: %+v", recs[0])
	}
}

func TestSummaryExample(t *testing.T) {
	cv := &parser.CVAnalysis{
		Skills: []skills.Skill{{Name: "go"}, {Name: "docker"}, {Name: "postgresql"}, {Name: "redis"}},
	}
	got := summaryExample(cv, &parser.JobAnalysis{Role: "Backend Developer"})

	if !strings.Contains(got, "Backend Developer") {
		t.Errorf("summary missing role: %q", got)
	}
	if !strings.Contains(got, "go, docker, postgresql") {
		t.Errorf("summary should list top three skills: %q", got)
	}
	if strings.Contains(got, "redis") {
		t.Errorf("summary should cap at three skills: %q", got)
	}

	bare := summaryExample(&parser.CVAnalysis{}, nil)
	if !strings.Contains(bare, "yazılım geliştirme") {
		t.Errorf("fallback summary = %q", bare)
	}
}
