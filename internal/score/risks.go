package score

// Risk explains one ATS problem in recruiter-facing Turkish: what the
// scanner saw, why it hurts and how to fix it.
type Risk struct {
	Level       string `json:"level"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
	Fix         string `json:"fix"`
}

var riskReasons = map[string]string{
	categoryHeaders:  "ATS sistemleri standart bölüm başlıklarını tanır. Yaratıcı veya farklı başlıklar sistemin CV'yi doğru okumasını engeller.",
	categoryContact:  "ATS sistemleri e-posta ve telefon bilgisini otomatik çeker. Eksik iletişim bilgisi, işe alımcının size ulaşamamasına neden olur.",
	categoryLength:   "Çok kısa CV'ler yeterli bilgi sunmaz, çok uzun CV'ler ise ATS tarafından tam okunmayabilir.",
	categoryDates:    "ATS sistemleri deneyim sürelerini tarih aralıklarından hesaplar. Tutarsız veya eksik tarihler deneyim hesaplamasını bozar.",
	categorySkills:   "ATS sistemleri anahtar kelime eşleştirmesi yapar. Yeterli beceri belirtilmemesi düşük eşleşme oranına neden olur.",
	categoryLanguage: "ATS sistemleri genelde tek bir dil üzerinden analiz yapar. Karışık dil kullanımı eşleşme doğruluğunu düşürür.",
	categorySummary:  "Profil özeti, ATS'nin adayın uygunluğunu hızlıca değerlendirmesine yardımcı olur.",
}

var riskFixes = map[string]string{
	categoryHeaders:  `Standart başlıklar kullanın: "Deneyim", "Eğitim", "Beceriler", "Projeler", "Sertifikalar"`,
	categoryContact:  "CV'nin başına e-posta adresinizi ve telefon numaranızı ekleyin.",
	categoryLength:   "CV'nizi 400-1000 kelime arasında tutun. Her deneyim maddesi için 2-3 cümle yazın.",
	categoryDates:    `Tüm deneyim maddelerine "Ay YYYY - Ay YYYY" formatında tarih ekleyin.`,
	categorySkills:   `Ayrı bir "Beceriler" bölümü oluşturup teknik becerilerinizi listeleyin.`,
	categoryLanguage: "CV'nizi tek bir dilde yazın veya teknik terimler dışında dil karıştırmayın.",
	categorySummary:  "CV'nin başına 2-3 cümle uzunluğunda bir profil özeti ekleyin.",
}

// buildRisks turns every non-clean breakdown item into a risk entry,
// ordered high, then medium, then low.
func buildRisks(breakdown []BreakdownItem) []Risk {
	risks := []Risk{}
	for _, level := range []string{"high", "medium", "low"} {
		for _, item := range breakdown {
			if item.Severity != level {
				continue
			}
			risks = append(risks, Risk{
				Level:       level,
				Title:       item.Category,
				Description: item.Message,
				Reason:      riskReasons[item.Category],
				Fix:         riskFixes[item.Category],
			})
		}
	}
	return risks
}
