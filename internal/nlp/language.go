package nlp

import "strings"

// LanguageMix summarizes the Turkish/English mixture of a document based on
// marker words and Turkish-only letters.
type LanguageMix struct {
	Ratio    float64 `json:"ratio"` // share of Turkish among recognized markers
	Dominant string  `json:"dominant"`
	Mixed    bool    `json:"mixed"`
	TRCount  int     `json:"trCount"`
	ENCount  int     `json:"enCount"`
}

var trMarkers = map[string]bool{
	"ve": true, "ile": true, "için": true, "icin": true, "olarak": true, "gibi": true,
	"bir": true, "bu": true, "şu": true, "su": true, "çok": true, "cok": true,
	"daha": true, "göre": true, "gore": true, "deneyim": true, "yönetimi": true,
	"yonetimi": true, "analizi": true, "geliştirme": true, "gelistirme": true,
	"uzmanı": true, "uzmani": true, "seviyesi": true, "ana": true, "dil": true,
	"özeti": true, "ozeti": true,
}

var enMarkers = map[string]bool{
	"and": true, "with": true, "for": true, "the": true, "of": true, "to": true,
	"in": true, "on": true, "is": true, "are": true,
	"marketing": true, "management": true, "analysis": true, "developer": true,
	"engineer": true, "specialist": true, "experience": true,
}

func hasTurkishLetter(token string) bool {
	return strings.ContainsAny(token, "ğüşöçı")
}

// DetectLanguageMix classifies tokens against Turkish and English marker sets.
// A document is "mixed" when the Turkish ratio falls strictly between 0.25
// and 0.75. Empty input yields an unknown dominant language; input with no
// recognized markers defaults to Turkish at ratio 0.5.
func DetectLanguageMix(text string) LanguageMix {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return LanguageMix{Dominant: "unknown"}
	}

	var trCount, enCount int
	for _, token := range tokens {
		if trMarkers[token] || hasTurkishLetter(token) {
			trCount++
			continue
		}
		if enMarkers[token] {
			enCount++
		}
	}

	total := trCount + enCount
	if total == 0 {
		return LanguageMix{Ratio: 0.5, Dominant: "tr"}
	}

	ratio := float64(trCount) / float64(total)
	dominant := "en"
	if ratio > 0.5 {
		dominant = "tr"
	}
	return LanguageMix{
		Ratio:    ratio,
		Dominant: dominant,
		Mixed:    ratio > 0.25 && ratio < 0.75,
		TRCount:  trCount,
		ENCount:  enCount,
	}
}
