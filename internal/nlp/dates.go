package nlp

import "regexp"

// DateRange is a free-form date-like span extracted from text. Start and End
// are not guaranteed to be valid calendar dates; the range is only used as a
// presence signal for scoring.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Raw   string `json:"raw"`
}

var (
	yearRangePattern = regexp.MustCompile(`(?i)(\d{4})\s*[-–—]\s*(\d{4}|halen|devam|günümüz|present|current)`)

	monthName         = `ocak|şubat|mart|nisan|mayıs|haziran|temmuz|ağustos|eylül|ekim|kasım|aralık|jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec`
	monthRangePattern = regexp.MustCompile(`(?i)(` + monthName + `)\s*\.?\s*(\d{4})\s*[-–—]\s*(` + monthName + `|halen|devam|günümüz|present|current)\s*\.?\s*(\d{4})?`)
)

// ExtractDateRanges finds year-to-year spans ("2021-2024", "2019 – halen")
// and month-year spans ("Ocak 2021 - Mart 2024") in both Turkish and English.
func ExtractDateRanges(text string) []DateRange {
	if text == "" {
		return nil
	}
	var ranges []DateRange

	for _, m := range yearRangePattern.FindAllStringSubmatch(text, -1) {
		ranges = append(ranges, DateRange{
			Start: m[1],
			End:   LowerTurkish(m[2]),
			Raw:   m[0],
		})
	}

	for _, m := range monthRangePattern.FindAllStringSubmatch(text, -1) {
		end := m[3]
		if m[4] != "" {
			end = m[3] + " " + m[4]
		}
		ranges = append(ranges, DateRange{
			Start: m[1] + " " + m[2],
			End:   end,
			Raw:   m[0],
		})
	}

	return ranges
}
