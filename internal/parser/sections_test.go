package parser

import "testing"

func TestDetectCVHeader(t *testing.T) {
	cases := []struct {
		line string
		want SectionKind
		ok   bool
	}{
		{"İŞ DENEYİMİ", SectionExperience, true},
		{"Deneyim", SectionExperience, true},
		{"--- EĞİTİM ---", SectionEducation, true},
		{"BECERİLER:", SectionSkills, true},
		{"Hakkımda", SectionSummary, true},
		{"STAJ & İŞ DENEYİMİ", SectionExperience, true},
		// Leading header words.
		{"Deneyim Bilgilerim", SectionExperience, true},
		// Multi-word header buried mid-line.
		{"Benim İş Deneyimi Kısmı", SectionExperience, true},
		// Content lines.
		{"React ile üç yıl boyunca web uygulamaları geliştirdim", "", false},
		{"Ahmet Yılmaz", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := detectCVHeader(tc.line)
		if ok != tc.ok || got != tc.want {
			t.Errorf("detectCVHeader(%q) = (%q, %v), want (%q, %v)", tc.line, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDetectCVHeaderRejectsLongLines(t *testing.T) {
	// Contains "is deneyimi" but six words disqualify it.
	line := "uzun bir cümle içinde iş deneyimi"
	if kind, ok := detectCVHeader(line); ok {
		t.Fatalf("long line misdetected as header %q", kind)
	}
}

func TestParseCVSections(t *testing.T) {
	text := "Ahmet Yılmaz\nahmet@example.com\n\nİŞ DENEYİMİ\nABC Yazılım 2021-2024\n\nEĞİTİM\nXYZ Üniversitesi\n\nBECERİLER\nReact, TypeScript, Docker"
	sections := ParseCVSections(text)

	if got := sections[SectionHeader]; got != "Ahmet Yılmaz\nahmet@example.com" {
		t.Errorf("header section = %q", got)
	}
	if got := sections[SectionExperience]; got != "ABC Yazılım 2021-2024" {
		t.Errorf("experience section = %q", got)
	}
	if got := sections[SectionEducation]; got != "XYZ Üniversitesi" {
		t.Errorf("education section = %q", got)
	}
	if got := sections[SectionSkills]; got != "React, TypeScript, Docker" {
		t.Errorf("skills section = %q", got)
	}
}

func TestParseCVSectionsRepeatedHeaderAppends(t *testing.T) {
	text := "DENEYİM\nilk blok\nİŞ DENEYİMİ\nikinci blok"
	sections := ParseCVSections(text)
	if got := sections[SectionExperience]; got != "ilk blok\nikinci blok" {
		t.Fatalf("experience section = %q", got)
	}
}

func TestParseCVSectionsRegistersEmptySection(t *testing.T) {
	sections := ParseCVSections("REFERANSLAR")
	if got, ok := sections[SectionReferences]; !ok || got != "" {
		t.Fatalf("expected empty references section, got %q (present=%v)", got, ok)
	}
}

func TestDetectJobHeader(t *testing.T) {
	cases := []struct {
		line string
		want SectionKind
		ok   bool
	}{
		{"Aranan Nitelikler:", SectionRequirements, true},
		{"SORUMLULUKLAR", SectionResponsibilities, true},
		{"• Tercih Sebepleri", SectionNiceToHave, true},
		{"Yan Haklar ve Avantajlar", SectionBenefits, true},
		{"Hakkımızda", SectionAbout, true},
		{"Node.js deneyimi şart", "", false},
	}
	for _, tc := range cases {
		got, ok := detectJobHeader(tc.line)
		if ok != tc.ok || got != tc.want {
			t.Errorf("detectJobHeader(%q) = (%q, %v), want (%q, %v)", tc.line, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseJobSections(t *testing.T) {
	text := "Takımımıza katılın\n\nAranan Nitelikler:\nNode.js deneyimi\nDocker bilgisi\n\nTercih Sebepleri:\nKubernetes bilgisi"
	sections := ParseJobSections(text)

	if got := sections[SectionGeneral]; got != "Takımımıza katılın" {
		t.Errorf("general section = %q", got)
	}
	if got := sections[SectionRequirements]; got != "Node.js deneyimi\nDocker bilgisi" {
		t.Errorf("requirements section = %q", got)
	}
	if got := sections[SectionNiceToHave]; got != "Kubernetes bilgisi" {
		t.Errorf("niceToHave section = %q", got)
	}
}

func TestParseJobSectionsRepeatedHeaderOverwrites(t *testing.T) {
	text := "Gereksinimler\neski içerik\nAranan Nitelikler\nyeni içerik"
	sections := ParseJobSections(text)
	if got := sections[SectionRequirements]; got != "yeni içerik" {
		t.Fatalf("requirements section = %q, want last block only", got)
	}
}
