package score

import (
	"fmt"
	"math"

	"cvanaliz-backend/internal/match"
)

// JobMatchScore is the CV-versus-posting fit report: a 0-100 score built up
// from five factors with their breakdown.
type JobMatchScore struct {
	Score     int             `json:"score"`
	Grade     Grade           `json:"grade"`
	Breakdown []BreakdownItem `json:"breakdown"`
}

// CalculateJobMatch builds the fit score from a match result. The factor
// weights are 40 for required-skill coverage, 20 for role, 20 for seniority,
// 10 for nice-to-have coverage and 10 for synonym bonus; the last two only
// emit breakdown entries when they apply at all.
func CalculateJobMatch(result *match.Result) *JobMatchScore {
	total := 0
	breakdown := make([]BreakdownItem, 0, 5)

	skillPct := result.Stats.MatchPercentage
	skillPoints := int(math.Round(float64(skillPct) * 0.4))
	total += skillPoints
	skillSeverity := "none"
	switch {
	case skillPct < 30:
		skillSeverity = "high"
	case skillPct < 60:
		skillSeverity = "medium"
	}
	breakdown = append(breakdown, BreakdownItem{
		Category: "Teknik Beceri Uyumu",
		Score:    skillPoints,
		MaxScore: 40,
		Message: fmt.Sprintf("İstenen %d beceriden %d'i eşleşti (%%%d)",
			result.Stats.TotalRequired, result.Stats.TotalMatched, skillPct),
		Severity: skillSeverity,
	})

	rolePoints := 0
	roleMessage := "Rol uyumu düşük. CV'nizdeki beceriler farklı bir alanda yoğunlaşmış."
	if result.RoleMatch.Match {
		rolePoints = int(math.Round(result.RoleMatch.Strength * 20))
		roleMessage = fmt.Sprintf("%s pozisyonu ile uyumlu", result.RoleMatch.JobRole)
	}
	total += rolePoints
	roleSeverity := "none"
	if rolePoints < 10 {
		roleSeverity = "high"
	}
	breakdown = append(breakdown, BreakdownItem{
		Category: "Rol Uyumu",
		Score:    rolePoints,
		MaxScore: 20,
		Message:  roleMessage,
		Severity: roleSeverity,
	})

	seniorityPoints := 5
	if result.SeniorityMatch.Match {
		seniorityPoints = 20
	}
	total += seniorityPoints
	senioritySeverity := "none"
	if seniorityPoints < 20 {
		senioritySeverity = "medium"
	}
	breakdown = append(breakdown, BreakdownItem{
		Category: "Deneyim Seviyesi",
		Score:    seniorityPoints,
		MaxScore: 20,
		Message:  result.SeniorityMatch.Note,
		Severity: senioritySeverity,
	})

	nicePct := result.Stats.NiceToHavePercentage
	nicePoints := int(math.Round(float64(nicePct) * 0.1))
	total += nicePoints
	if len(result.NiceToHave.Matched)+len(result.NiceToHave.Missing) > 0 {
		breakdown = append(breakdown, BreakdownItem{
			Category: "Tercih Edilen Beceriler",
			Score:    nicePoints,
			MaxScore: 10,
			Message:  fmt.Sprintf("Tercih edilen becerilerden %%%d'i karşılandı", nicePct),
			Severity: "none",
		})
	}

	synCount := len(result.SynonymMatched)
	synPoints := synCount * 3
	if synPoints > 10 {
		synPoints = 10
	}
	total += synPoints
	if synCount > 0 {
		breakdown = append(breakdown, BreakdownItem{
			Category: "Eşanlamlı Eşleşmeler",
			Score:    synPoints,
			MaxScore: 10,
			Message:  fmt.Sprintf("%d beceri eşanlamlı formda eşleşti", synCount),
			Severity: "none",
		})
	}

	total = clamp(total)
	return &JobMatchScore{
		Score:     total,
		Grade:     GradeFor(total),
		Breakdown: breakdown,
	}
}
