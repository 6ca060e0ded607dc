package parser

import (
	"testing"

	"cvanaliz-backend/internal/skills"
)

const sampleCV = `Ahmet Yılmaz
ahmet@example.com
0532 123 45 67

İŞ DENEYİMİ
ABC Yazılım 2021-2024
React ve Node.js ile web uygulamaları geliştirdim

EĞİTİM
XYZ Üniversitesi Bilgisayar Mühendisliği

BECERİLER
React, TypeScript, Docker`

func TestAnalyzeCV(t *testing.T) {
	p := New(skills.Default())
	analysis := p.AnalyzeCV(sampleCV)

	if analysis.StandardHeaders.Score != 100 {
		t.Errorf("header score = %v, want 100", analysis.StandardHeaders.Score)
	}
	if len(analysis.StandardHeaders.Missing) != 0 {
		t.Errorf("unexpected missing headers: %v", analysis.StandardHeaders.Missing)
	}
	if !analysis.StandardHeaders.HasContact {
		t.Errorf("expected contact info via header section")
	}

	names := skillNames(analysis.Skills)
	for _, want := range []string{"react", "node.js", "typescript", "docker"} {
		if !names[want] {
			t.Errorf("missing skill %q in %v", want, analysis.Skills)
		}
	}

	if len(analysis.DateRanges) != 1 || analysis.DateRanges[0].Start != "2021" {
		t.Errorf("unexpected date ranges: %+v", analysis.DateRanges)
	}

	if !analysis.ContentQuality.HasEmail {
		t.Errorf("email not detected")
	}
	if !analysis.ContentQuality.HasPhone {
		t.Errorf("phone not detected")
	}
	if analysis.LineCount != 10 {
		t.Errorf("line count = %d, want 10", analysis.LineCount)
	}
}

func TestAnalyzeCVShortContentIssue(t *testing.T) {
	p := New(skills.Default())
	analysis := p.AnalyzeCV("Kısa bir metin")

	found := false
	for _, issue := range analysis.ContentQuality.Issues {
		if issue.Severity == "high" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected high severity length issue, got %+v", analysis.ContentQuality.Issues)
	}
}

func TestAnalyzeCVActionVerbIssue(t *testing.T) {
	p := New(skills.Default())
	// Experience section without any achievement verbs.
	analysis := p.AnalyzeCV("DENEYİM\nABC Şirketi yazılım birimi\nFrontend takımı üyesi")

	found := false
	for _, issue := range analysis.ContentQuality.Issues {
		if issue.Severity == "medium" && issue.Type == "warning" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected action verb warning, got %+v", analysis.ContentQuality.Issues)
	}

	withVerbs := p.AnalyzeCV("DENEYİM\nMikroservis mimarisini tasarladım ve geliştirdim")
	for _, issue := range withVerbs.ContentQuality.Issues {
		if issue.Message == "Deneyim bölümünde eylem fiilleri kullanın (geliştirdim, yönettim, tasarladım vb.)" {
			t.Fatalf("action verb warning should not fire: %+v", withVerbs.ContentQuality.Issues)
		}
	}
}

func TestAnalyzeCVEmptySectionCountsAsMissing(t *testing.T) {
	p := New(skills.Default())
	analysis := p.AnalyzeCV("BECERİLER")

	if got, ok := analysis.Sections[SectionSkills]; !ok || got != "" {
		t.Fatalf("expected registered empty skills section, got %q", got)
	}
	for _, kind := range analysis.StandardHeaders.Found {
		if kind == SectionSkills {
			t.Fatalf("empty skills section should count as missing")
		}
	}
}

func TestExtractDedupesSynonyms(t *testing.T) {
	ex := NewExtractor(skills.Default())
	found := ex.Extract("React.js ve ReactJS projelerinde çalıştım")

	if len(found) != 1 {
		t.Fatalf("expected single canonical skill, got %+v", found)
	}
	if found[0].Name != "react" || found[0].Category != skills.CategoryFrontend {
		t.Fatalf("unexpected skill: %+v", found[0])
	}
}

func TestExtractRespectsWordBoundaries(t *testing.T) {
	ex := NewExtractor(skills.Default())
	if found := ex.Extract("reaction zamanları üzerine bir yazı"); len(found) != 0 {
		t.Fatalf("substring should not match, got %+v", found)
	}
	if found := ex.Extract(""); found != nil {
		t.Fatalf("empty input should yield nil, got %+v", found)
	}
}

func TestExtractTurkishVariant(t *testing.T) {
	ex := NewExtractor(skills.Default())
	found := ex.Extract("Makine öğrenmesi ve yapay zeka alanında deneyimliyim")

	names := skillNames(found)
	if !names["machine learning"] {
		t.Errorf("makine öğrenmesi should canonicalize to machine learning: %+v", found)
	}
	if !names["artificial intelligence"] {
		t.Errorf("yapay zeka should canonicalize to artificial intelligence: %+v", found)
	}
}

func skillNames(list []skills.Skill) map[string]bool {
	names := make(map[string]bool, len(list))
	for _, s := range list {
		names[s.Name] = true
	}
	return names
}
