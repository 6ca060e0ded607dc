// Package score turns CV analyses and match results into the two headline
// numbers: the ATS compatibility score and the job match score, both 0-100
// with a letter grade and a per-category breakdown.
package score

// BreakdownItem is one scored category. Severity is "high", "medium", "low"
// or "none" and drives the risk report.
type BreakdownItem struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
	MaxScore int    `json:"maxScore"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// Grade is the letter representation of a score with its display color.
type Grade struct {
	Letter string `json:"letter"`
	Color  string `json:"color"`
	Label  string `json:"label"`
}

// GradeFor maps a 0-100 score to its band.
func GradeFor(score int) Grade {
	switch {
	case score >= 90:
		return Grade{Letter: "A+", Color: "#06d6a0", Label: "Mükemmel"}
	case score >= 80:
		return Grade{Letter: "A", Color: "#06d6a0", Label: "Çok İyi"}
	case score >= 70:
		return Grade{Letter: "B+", Color: "#00b4d8", Label: "İyi"}
	case score >= 60:
		return Grade{Letter: "B", Color: "#00b4d8", Label: "Orta-İyi"}
	case score >= 50:
		return Grade{Letter: "C", Color: "#ffd166", Label: "Geliştirilmeli"}
	case score >= 40:
		return Grade{Letter: "D", Color: "#ffd166", Label: "Zayıf"}
	default:
		return Grade{Letter: "F", Color: "#ef476f", Label: "Yetersiz"}
	}
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
