package analyzer

import (
	"errors"
	"testing"

	"cvanaliz-backend/internal/skills"
)

const testCV = `Ayşe Demir
ayse@example.com
0532 111 22 33

ÖZET
Backend geliştirme alanında deneyimli yazılımcı

İŞ DENEYİMİ
ABC Teknoloji 2020-2024
Node.js ve PostgreSQL ile mikroservis mimarisi geliştirdim
Docker konteynerleri ile dağıtım süreçlerini yönettim

EĞİTİM
Ege Üniversitesi Bilgisayar Mühendisliği

BECERİLER
Node.js, PostgreSQL, Docker, Redis, Git, Linux`

const testJob = `Senior Backend Developer

Aranan Nitelikler:
Node.js ve PostgreSQL deneyimi
Docker bilgisi

Tercih Sebepleri:
Kubernetes deneyimi`

func TestAnalyzeFullMode(t *testing.T) {
	svc := New(skills.Default())

	result, err := svc.Analyze(testCV, testJob, ModeFull)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if result.AnalysisMode != ModeFull {
		t.Errorf("mode = %q", result.AnalysisMode)
	}
	if result.CVAnalysis == nil || result.JobAnalysis == nil || result.MatchResult == nil {
		t.Fatalf("full mode must populate every analysis part")
	}
	if result.ATSScore == nil || result.JobMatchScore == nil {
		t.Fatalf("full mode must produce both scores")
	}
	if result.ATSScore.Score <= 0 || result.ATSScore.Score > 100 {
		t.Errorf("ats score out of range: %d", result.ATSScore.Score)
	}
	if result.JobMatchScore.Score <= 0 {
		t.Errorf("job match score = %d for a well matching CV", result.JobMatchScore.Score)
	}
	if len(result.Recommendations) == 0 {
		t.Errorf("recommendations must never be empty")
	}
	if result.Timestamp.IsZero() {
		t.Errorf("timestamp not set")
	}
}

func TestAnalyzeATSOnlyMode(t *testing.T) {
	svc := New(skills.Default())

	result, err := svc.Analyze(testCV, "", ModeATSOnly)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if result.JobAnalysis != nil || result.MatchResult != nil || result.JobMatchScore != nil {
		t.Fatalf("ats-only mode must leave posting-side fields nil")
	}
	if result.ATSScore == nil {
		t.Fatalf("ats-only mode must still score the CV")
	}
	if len(result.Recommendations) == 0 {
		t.Fatalf("ats-only mode must still produce recommendations")
	}
}

func TestAnalyzeDefaultsToFullMode(t *testing.T) {
	svc := New(skills.Default())

	result, err := svc.Analyze(testCV, testJob, "")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.AnalysisMode != ModeFull {
		t.Fatalf("empty mode should default to full, got %q", result.AnalysisMode)
	}
}

func TestAnalyzeValidation(t *testing.T) {
	svc := New(skills.Default())

	if _, err := svc.Analyze("   ", testJob, ModeFull); !errors.Is(err, ErrEmptyCVText) {
		t.Errorf("empty cv error = %v", err)
	}
	if _, err := svc.Analyze(testCV, "", ModeFull); !errors.Is(err, ErrEmptyJobText) {
		t.Errorf("empty job error = %v", err)
	}
	if _, err := svc.Analyze(testCV, testJob, Mode("detailed")); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("invalid mode error = %v", err)
	}
	// Job text is optional when only the ATS report is requested.
	if _, err := svc.Analyze(testCV, "", ModeATSOnly); err != nil {
		t.Errorf("ats-only with empty job text: %v", err)
	}
}
