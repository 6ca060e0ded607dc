// Package recommend produces the action list shown to the candidate:
// missing keywords, sample experience bullets, ATS format fixes and profile
// hints, ordered by priority. All user-facing copy is Turkish.
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"cvanaliz-backend/internal/match"
	"cvanaliz-backend/internal/nlp"
	"cvanaliz-backend/internal/parser"
	"cvanaliz-backend/internal/score"
)

// Recommendation is one actionable suggestion. Priority is "high", "medium"
// or "low"; Type groups suggestions as "keyword", "content" or "format".
type Recommendation struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Priority    string   `json:"priority"`
	Icon        string   `json:"icon"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
	Action      string   `json:"action"`
}

var experienceTemplates = []string{
	"{skill} kullanarak {role} projesinde aktif rol aldım ve başarıyla teslim ettim.",
	"{skill} teknolojisi ile uygulama geliştirdim ve performans optimizasyonları gerçekleştirdim.",
	"{skill} kullanarak ekip içinde işbirliği yaparak {role} çözümleri oluşturdum.",
	"{skill} tabanlı sistemlerin tasarımı ve implementasyonunda sorumluluk aldım.",
	"{skill} ile ilgili teknik kararlar aldım ve takımın teknik gelişimine katkı sağladım.",
}

// Generate builds the recommendation list. job, matchResult and jobMatch are
// nil in ATS-only runs; those triggers simply stay quiet and the ATS-side
// ones still fire. The list always comes back non-empty: with nothing to
// improve, a single positive confirmation entry is returned.
func Generate(cv *parser.CVAnalysis, job *parser.JobAnalysis, matchResult *match.Result, ats *score.ATSScore, jobMatch *score.JobMatchScore) []Recommendation {
	var recommendations []Recommendation

	if matchResult != nil && len(matchResult.Missing) > 0 {
		for _, group := range groupByCategory(matchResult.Missing) {
			category := group.category
			recommendations = append(recommendations, Recommendation{
				ID:          "missing_" + category,
				Type:        "keyword",
				Priority:    "high",
				Icon:        "🔑",
				Title:       fmt.Sprintf("Eksik %s Becerileri", category),
				Description: fmt.Sprintf("Bu ilan için CV'nize eklemeniz gereken %s becerileri:", strings.ToLower(category)),
				Items:       group.names,
				Action:      `Bu kelimeleri CV'nizin "Beceriler" bölümüne ve ilgili deneyim maddelerine ekleyin.`,
			})
		}

		if suggestions := experienceSuggestions(matchResult.Missing, job); len(suggestions) > 0 {
			recommendations = append(recommendations, Recommendation{
				ID:          "experience_improvement",
				Type:        "content",
				Priority:    "high",
				Icon:        "✏️",
				Title:       "Deneyim Maddelerini İyileştirin",
				Description: "İlanın diliyle uyumlu örnek deneyim maddeleri:",
				Items:       suggestions,
				Action:      "Bu örnekleri kendi deneyimlerinize uyarlayarak CV'nize ekleyin.",
			})
		}
	}

	if ats != nil {
		var highFixes []string
		var mediumFixes []string
		for _, risk := range ats.Risks {
			switch risk.Level {
			case "high":
				highFixes = append(highFixes, risk.Title+": "+risk.Fix)
			case "medium":
				mediumFixes = append(mediumFixes, risk.Title+": "+risk.Fix)
			}
		}
		if len(highFixes) > 0 {
			recommendations = append(recommendations, Recommendation{
				ID:          "ats_format",
				Type:        "format",
				Priority:    "high",
				Icon:        "⚠️",
				Title:       "ATS Format Düzeltmeleri",
				Description: "ATS uyumluluğu için acil düzeltilmesi gereken noktalar:",
				Items:       highFixes,
				Action:      "Bu düzeltmeleri yaparak ATS skorunuzu önemli ölçüde artırabilirsiniz.",
			})
		}
		// Without a posting to compare against, the medium ATS findings are
		// the most useful guidance left, so surface them too.
		if matchResult == nil && len(mediumFixes) > 0 {
			recommendations = append(recommendations, Recommendation{
				ID:          "ats_improvements",
				Type:        "format",
				Priority:    "medium",
				Icon:        "🛠️",
				Title:       "ATS İyileştirmeleri",
				Description: "ATS uyumluluğunu daha da artırmak için:",
				Items:       mediumFixes,
				Action:      "Bu iyileştirmeler CV'nizin otomatik sistemlerde daha doğru okunmasını sağlar.",
			})
		}
	}

	if matchResult != nil && len(matchResult.SynonymMatched) > 0 {
		items := make([]string, 0, len(matchResult.SynonymMatched))
		for _, s := range matchResult.SynonymMatched {
			items = append(items, fmt.Sprintf("CV'nizdeki %q → İlandaki %q olarak da ekleyin", s.Found, s.Required))
		}
		recommendations = append(recommendations, Recommendation{
			ID:          "synonym_warning",
			Type:        "keyword",
			Priority:    "medium",
			Icon:        "🔄",
			Title:       "Eşanlamlı Kelime Uyarıları",
			Description: "Bu beceriler eşanlamlı formda eşleşti. İlandaki terimi de kullanmayı düşünün:",
			Items:       items,
			Action:      "ATS sistemleri her zaman eşanlamlıları tanımaz. İlandaki kelimeleri birebir kullanmak daha güvenlidir.",
		})
	}

	if matchResult != nil && len(matchResult.NiceToHave.Missing) > 0 {
		items := make([]string, 0, len(matchResult.NiceToHave.Missing))
		for _, s := range matchResult.NiceToHave.Missing {
			items = append(items, s.Name)
		}
		recommendations = append(recommendations, Recommendation{
			ID:          "nice_to_have",
			Type:        "keyword",
			Priority:    "low",
			Icon:        "⭐",
			Title:       "Bonus Beceriler",
			Description: "Bu beceriler zorunlu değil ama eklerseniz öne çıkarsınız:",
			Items:       items,
			Action:      "Bu becerilerden bildiklerinizi CV'nize ekleyin.",
		})
	}

	if matchResult != nil && !matchResult.SeniorityMatch.Match {
		recommendations = append(recommendations, Recommendation{
			ID:          "seniority",
			Type:        "content",
			Priority:    "medium",
			Icon:        "📊",
			Title:       "Deneyim Seviyesi Uyumu",
			Description: matchResult.SeniorityMatch.Note,
			Items: []string{
				"Deneyim maddelerinizde liderlik ve sorumluluk vurgusunu artırın",
				"Proje yönetimi ve mentörlük deneyimlerinizi öne çıkarın",
				"Ölçülebilir başarılarınızı (metrikler, sayılar) ekleyin",
			},
			Action: "Deneyim maddelerinizi pozisyonun gerektirdiği seviyeye uygun şekilde düzenleyin.",
		})
	}

	if len(cv.ContentQuality.Issues) > 0 {
		items := make([]string, 0, len(cv.ContentQuality.Issues))
		for _, issue := range cv.ContentQuality.Issues {
			items = append(items, issue.Message)
		}
		recommendations = append(recommendations, Recommendation{
			ID:          "general",
			Type:        "content",
			Priority:    "low",
			Icon:        "💡",
			Title:       "Genel İyileştirmeler",
			Description: "CV'nizin genel kalitesini artırmak için:",
			Items:       items,
			Action:      "Bu önerileri uygulayarak CV'nizin profesyonelliğini artırın.",
		})
	}

	if !cv.StandardHeaders.HasSummary {
		recommendations = append(recommendations, Recommendation{
			ID:          "add_summary",
			Type:        "content",
			Priority:    "medium",
			Icon:        "📝",
			Title:       "Profil Özeti Ekleyin",
			Description: "CV'nizin başına kısa bir profil özeti ekleyin:",
			Items:       []string{summaryExample(cv, job)},
			Action:      "Bu örneği kendi deneyiminize göre uyarlayın ve CV'nizin en üstüne ekleyin.",
		})
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, Recommendation{
			ID:          "all_good",
			Type:        "content",
			Priority:    "low",
			Icon:        "✅",
			Title:       "CV'niz İyi Durumda",
			Description: "Analizde acil bir iyileştirme noktası bulunamadı.",
			Items: []string{
				"CV'nizi başvurduğunuz her ilana göre küçük dokunuşlarla özelleştirin",
				"Becerilerinizi ve deneyim maddelerinizi güncel tutun",
			},
			Action: "Mevcut kaliteyi korumak için CV'nizi düzenli aralıklarla gözden geçirin.",
		})
	}

	priorityOrder := map[string]int{"high": 0, "medium": 1, "low": 2}
	sort.SliceStable(recommendations, func(i, j int) bool {
		return priorityOrder[recommendations[i].Priority] < priorityOrder[recommendations[j].Priority]
	})
	return recommendations
}

type categoryGroup struct {
	category string
	names    []string
}

// groupByCategory buckets missing skills by category, preserving the order
// categories first appear in the missing list.
func groupByCategory(missing []match.SkillRef) []categoryGroup {
	index := make(map[string]int)
	var groups []categoryGroup
	for _, s := range missing {
		key := string(s.Category)
		if key == "" {
			key = "Other"
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, categoryGroup{category: key})
		}
		groups[i].names = append(groups[i].names, s.Name)
	}
	return groups
}

// experienceSuggestions fills the bullet templates with up to five missing
// skills and the posting's role.
func experienceSuggestions(missing []match.SkillRef, job *parser.JobAnalysis) []string {
	role := "yazılım geliştirici"
	if job != nil && job.Role != "" {
		role = nlp.LowerTurkish(job.Role)
	}

	count := len(missing)
	if count > 5 {
		count = 5
	}
	if count > len(experienceTemplates) {
		count = len(experienceTemplates)
	}

	suggestions := make([]string, 0, count)
	for i := 0; i < count; i++ {
		s := strings.Replace(experienceTemplates[i], "{skill}", missing[i].Name, 1)
		s = strings.Replace(s, "{role}", role, 1)
		suggestions = append(suggestions, s)
	}
	return suggestions
}

// summaryExample drafts a one-line profile summary from the CV's strongest
// skills and the posting's role.
func summaryExample(cv *parser.CVAnalysis, job *parser.JobAnalysis) string {
	role := "Yazılım Geliştirici"
	if job != nil && job.Role != "" {
		role = job.Role
	}

	topSkills := make([]string, 0, 3)
	for i, s := range cv.Skills {
		if i == 3 {
			break
		}
		topSkills = append(topSkills, s.Name)
	}
	skillText := strings.Join(topSkills, ", ")
	if skillText == "" {
		skillText = "yazılım geliştirme"
	}

	experience := "Deneyimli"
	if n := len(cv.DateRanges); n > 0 {
		experience = fmt.Sprintf("%d+ yıl deneyimli", n)
	}

	return fmt.Sprintf("\"%s %s, %s alanlarında uzmanlaşmış, sonuç odaklı bir profesyonel.\"", experience, role, skillText)
}
