// Package analyzer orchestrates the full analysis pipeline: parse the CV
// (and posting in full mode), match, score and generate recommendations.
package analyzer

import (
	"errors"
	"strings"
	"time"

	"cvanaliz-backend/internal/match"
	"cvanaliz-backend/internal/parser"
	"cvanaliz-backend/internal/recommend"
	"cvanaliz-backend/internal/score"
	"cvanaliz-backend/internal/skills"
)

// Mode selects which half of the pipeline runs. ATS-only skips the posting
// side entirely and still produces a complete ATS report.
type Mode string

const (
	ModeFull    Mode = "full"
	ModeATSOnly Mode = "ats-only"
)

var (
	ErrEmptyCVText  = errors.New("cv text is required")
	ErrEmptyJobText = errors.New("job text is required in full mode")
	ErrInvalidMode  = errors.New("mode must be full or ats-only")
)

// Service runs analyses. Build one at startup and share it; all state is
// the immutable catalog and its compiled patterns.
type Service struct {
	parser  *parser.Parser
	matcher *match.Engine
}

// New constructs the service around a skill catalog.
func New(catalog skills.Catalog) *Service {
	return &Service{
		parser:  parser.New(catalog),
		matcher: match.New(catalog),
	}
}

// Result is the complete analysis payload. The posting-side fields stay nil
// in ATS-only runs.
type Result struct {
	AnalysisMode    Mode                       `json:"analysisMode"`
	CVAnalysis      *parser.CVAnalysis         `json:"cvAnalysis"`
	JobAnalysis     *parser.JobAnalysis        `json:"jobAnalysis,omitempty"`
	MatchResult     *match.Result              `json:"matchResults,omitempty"`
	ATSScore        *score.ATSScore            `json:"atsScore"`
	JobMatchScore   *score.JobMatchScore       `json:"jobMatchScore,omitempty"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Timestamp       time.Time                  `json:"timestamp"`
}

// Analyze validates the inputs and runs the pipeline. An empty mode means
// full. Validation failures come back as the sentinel errors above before
// any analysis work happens.
func (s *Service) Analyze(cvText, jobText string, mode Mode) (*Result, error) {
	if mode == "" {
		mode = ModeFull
	}
	if mode != ModeFull && mode != ModeATSOnly {
		return nil, ErrInvalidMode
	}
	if strings.TrimSpace(cvText) == "" {
		return nil, ErrEmptyCVText
	}
	if mode == ModeFull && strings.TrimSpace(jobText) == "" {
		return nil, ErrEmptyJobText
	}

	cvAnalysis := s.parser.AnalyzeCV(cvText)
	atsScore := score.CalculateATS(cvAnalysis)

	var (
		jobAnalysis   *parser.JobAnalysis
		matchResult   *match.Result
		jobMatchScore *score.JobMatchScore
	)
	if mode == ModeFull {
		jobAnalysis = s.parser.AnalyzeJob(jobText)
		matchResult = s.matcher.Match(cvAnalysis, jobAnalysis)
		jobMatchScore = score.CalculateJobMatch(matchResult)
	}

	return &Result{
		AnalysisMode:    mode,
		CVAnalysis:      cvAnalysis,
		JobAnalysis:     jobAnalysis,
		MatchResult:     matchResult,
		ATSScore:        atsScore,
		JobMatchScore:   jobMatchScore,
		Recommendations: recommend.Generate(cvAnalysis, jobAnalysis, matchResult, atsScore, jobMatchScore),
		Timestamp:       time.Now().UTC(),
	}, nil
}
