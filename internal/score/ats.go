package score

import (
	"fmt"
	"math"
	"strings"

	"cvanaliz-backend/internal/parser"
)

// ATSScore is the CV-only compatibility report: a 0-100 score with the
// seven-category breakdown and a prioritized risk list.
type ATSScore struct {
	Score     int             `json:"score"`
	Grade     Grade           `json:"grade"`
	Breakdown []BreakdownItem `json:"breakdown"`
	Risks     []Risk          `json:"risks"`
}

// Breakdown category names double as keys into the risk reason and fix
// tables, so they must stay in sync with risks.go.
const (
	categoryHeaders  = "Bölüm Başlıkları"
	categoryContact  = "İletişim Bilgileri"
	categoryLength   = "İçerik Uzunluğu"
	categoryDates    = "Tarih Formatı"
	categorySkills   = "Beceri Çeşitliliği"
	categoryLanguage = "Dil Tutarlılığı"
	categorySummary  = "Profil Özeti"
)

var headerDisplayNames = map[parser.SectionKind]string{
	parser.SectionExperience: "Deneyim",
	parser.SectionEducation:  "Eğitim",
	parser.SectionSkills:     "Beceriler",
}

// CalculateATS scores a CV against ATS readability criteria. The seven
// categories start from a 100-point budget (25+15+15+10+15+10+10) and each
// deducts what the CV loses in it; the result is clamped to [0, 100].
func CalculateATS(cv *parser.CVAnalysis) *ATSScore {
	total := 100
	breakdown := make([]BreakdownItem, 0, 7)

	// Section headers, max 25.
	headerPoints := int(math.Round(cv.StandardHeaders.Score * 0.25))
	if headerPoints < 25 {
		total -= 25 - headerPoints
		names := make([]string, 0, len(cv.StandardHeaders.Missing))
		for _, kind := range cv.StandardHeaders.Missing {
			if name, ok := headerDisplayNames[kind]; ok {
				names = append(names, name)
			} else {
				names = append(names, string(kind))
			}
		}
		message := "Tüm standart bölümler mevcut"
		if len(names) > 0 {
			message = "Eksik bölümler: " + strings.Join(names, ", ")
		}
		severity := "medium"
		if len(names) >= 2 {
			severity = "high"
		}
		breakdown = append(breakdown, BreakdownItem{
			Category: categoryHeaders,
			Score:    headerPoints,
			MaxScore: 25,
			Message:  message,
			Severity: severity,
		})
	} else {
		breakdown = append(breakdown, BreakdownItem{
			Category: categoryHeaders,
			Score:    25,
			MaxScore: 25,
			Message:  "Tüm standart bölüm başlıkları mevcut",
			Severity: "none",
		})
	}

	// Contact info, max 15.
	contactScore := 15
	if !cv.ContentQuality.HasEmail {
		contactScore -= 8
	}
	if !cv.ContentQuality.HasPhone {
		contactScore -= 7
	}
	total -= 15 - contactScore
	contactMessage := "E-posta ve telefon bilgisi mevcut"
	if contactScore < 15 {
		var parts []string
		if !cv.ContentQuality.HasEmail {
			parts = append(parts, "E-posta")
		}
		if !cv.ContentQuality.HasPhone {
			parts = append(parts, "Telefon")
		}
		contactMessage = strings.Join(parts, " ") + " bilgisi eksik"
	}
	contactSeverity := "none"
	switch {
	case contactScore < 8:
		contactSeverity = "high"
	case contactScore < 15:
		contactSeverity = "medium"
	}
	breakdown = append(breakdown, BreakdownItem{
		Category: categoryContact,
		Score:    contactScore,
		MaxScore: 15,
		Message:  contactMessage,
		Severity: contactSeverity,
	})

	// Content length, max 15.
	lengthScore := 15
	wordCount := cv.WordCount
	switch {
	case wordCount < 100:
		lengthScore -= 10
	case wordCount < 200:
		lengthScore -= 5
	case wordCount > 1500:
		lengthScore -= 3
	}
	total -= 15 - lengthScore
	lengthMessage := fmt.Sprintf("İçerik uzunluğu uygun (%d kelime)", wordCount)
	lengthSeverity := "none"
	switch {
	case wordCount < 100:
		lengthMessage = fmt.Sprintf("CV çok kısa (%d kelime). En az 200 kelime önerilir.", wordCount)
		lengthSeverity = "high"
	case wordCount > 1500:
		lengthMessage = fmt.Sprintf("CV oldukça uzun (%d kelime). 500-1000 kelime idealdir.", wordCount)
		lengthSeverity = "low"
	}
	breakdown = append(breakdown, BreakdownItem{
		Category: categoryLength,
		Score:    lengthScore,
		MaxScore: 15,
		Message:  lengthMessage,
		Severity: lengthSeverity,
	})

	// Date format consistency, max 10. Only penalized when an experience
	// section exists but carries no recognizable date ranges.
	dateScore := 10
	if len(cv.DateRanges) == 0 && cv.Sections[parser.SectionExperience] != "" {
		dateScore -= 7
	}
	total -= 10 - dateScore
	dateMessage := "Tarih aralığı bulunamadı. Deneyim maddelerine tarih ekleyin."
	if len(cv.DateRanges) > 0 {
		dateMessage = fmt.Sprintf("%d tarih aralığı tespit edildi", len(cv.DateRanges))
	}
	dateSeverity := "none"
	if dateScore < 5 {
		dateSeverity = "high"
	}
	breakdown = append(breakdown, BreakdownItem{
		Category: categoryDates,
		Score:    dateScore,
		MaxScore: 10,
		Message:  dateMessage,
		Severity: dateSeverity,
	})

	// Skill variety, max 15.
	skillScore := 15
	skillCount := len(cv.Skills)
	switch {
	case skillCount < 3:
		skillScore -= 10
	case skillCount < 6:
		skillScore -= 5
	}
	total -= 15 - skillScore
	skillMessage := fmt.Sprintf("%d beceri tespit edildi", skillCount)
	if skillCount < 3 {
		skillMessage = fmt.Sprintf("Sadece %d beceri tespit edildi. Daha fazla beceri ekleyin.", skillCount)
	}
	skillSeverity := "none"
	switch {
	case skillCount < 3:
		skillSeverity = "high"
	case skillCount < 6:
		skillSeverity = "medium"
	}
	breakdown = append(breakdown, BreakdownItem{
		Category: categorySkills,
		Score:    skillScore,
		MaxScore: 15,
		Message:  skillMessage,
		Severity: skillSeverity,
	})

	// Language consistency, max 10.
	langScore := 10
	langMessage := "Dil kullanımı tutarlı"
	langSeverity := "none"
	if cv.LanguageMix.Mixed {
		langScore -= 4
		langMessage = "Türkçe ve İngilizce karışık kullanılmış. Tutarlı bir dil tercih edin."
		langSeverity = "medium"
	}
	total -= 10 - langScore
	breakdown = append(breakdown, BreakdownItem{
		Category: categoryLanguage,
		Score:    langScore,
		MaxScore: 10,
		Message:  langMessage,
		Severity: langSeverity,
	})

	// Profile summary, max 10.
	summaryScore := 10
	summaryMessage := "Profil/Özet bölümü mevcut"
	summarySeverity := "none"
	if !cv.StandardHeaders.HasSummary {
		summaryScore -= 5
		summaryMessage = "Profil veya Özet bölümü ekleyin. ATS sistemleri bu bölümü önemser."
		summarySeverity = "medium"
	}
	total -= 10 - summaryScore
	breakdown = append(breakdown, BreakdownItem{
		Category: categorySummary,
		Score:    summaryScore,
		MaxScore: 10,
		Message:  summaryMessage,
		Severity: summarySeverity,
	})

	total = clamp(total)
	return &ATSScore{
		Score:     total,
		Grade:     GradeFor(total),
		Breakdown: breakdown,
		Risks:     buildRisks(breakdown),
	}
}
