// Package nlp contains Turkish-aware text normalization helpers used by the
// CV and job-posting analysis pipeline: case folding, ASCII folding, a light
// suffix stemmer, tokenization and text cleanup. Every function is total:
// empty input yields empty output and nothing here ever returns an error.
package nlp

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Common Turkish suffixes stripped by Stem, longest first.
var turkishSuffixes = []string{
	"ları", "leri", "ların", "lerin",
	"ıyor", "iyor", "uyor", "üyor",
	"dım", "dim", "dum", "düm",
	"dık", "dik", "duk", "dük",
	"mış", "miş", "muş", "müş",
	"arak", "erek",
	"ması", "mesi",
	"mak", "mek",
	"yor", "yen", "yan",
	"dığ", "diğ", "duğ", "düğ",
	"tık", "tik", "tuk", "tük",
	"ını", "ini", "unu", "ünü",
	"nda", "nde", "dan", "den",
	"yla", "yle",
	"lar", "ler",
	"lık", "lik", "luk", "lük",
	"cı", "ci", "cu", "cü",
	"ca", "ce",
	"da", "de", "ta", "te",
	"ın", "in", "un", "ün",
	"ya", "ye",
	"sı", "si", "su", "sü",
}

var sortedSuffixes = func() []string {
	out := make([]string, len(turkishSuffixes))
	copy(out, turkishSuffixes)
	sort.SliceStable(out, func(i, j int) bool {
		return len([]rune(out[i])) > len([]rune(out[j]))
	})
	return out
}()

var (
	bulletGlyphs   = regexp.MustCompile(`[•●○◦▪▸►▶→·∙⁃‣⦿⦾]`)
	intraLineSpace = regexp.MustCompile(`[^\S\n]+`)
	blankLines     = regexp.MustCompile(`\n{3,}`)
	tokenSeparator = regexp.MustCompile("[\\s,;:()\\[\\]{}\"'`\\-–—/\\\\|]+")
	sentenceSplit  = regexp.MustCompile(`[.!?\n]`)

	dottedFold = strings.NewReplacer("ı", "i", "İ", "i")
)

// LowerTurkish lowercases text using Turkish casing rules, so the dotted and
// dotless I pairs fold correctly: İ→i and I→ı.
func LowerTurkish(text string) string {
	if text == "" {
		return ""
	}
	return cases.Lower(language.Turkish).String(text)
}

// FoldASCII lowercases with Turkish rules and strips all Turkish diacritics
// to their closest ASCII letter (ğ→g, ü→u, ş→s, ö→o, ç→c, ı→i). The result
// is lossy and only suitable for fuzzy matching, never for display.
func FoldASCII(text string) string {
	if text == "" {
		return ""
	}
	lowered := LowerTurkish(text)
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		folded = lowered
	}
	// Dotless ı is a standalone letter, not a base+combining-mark pair.
	return dottedFold.Replace(folded)
}

// Stem strips at most one known suffix from a word, longest suffix first.
// The input must be at least 3 runes and the remaining stem keeps at least
// 2 runes; approximate matching only, not linguistically exact.
func Stem(word string) string {
	if word == "" {
		return ""
	}
	if len([]rune(word)) < 3 {
		return word
	}
	stem := LowerTurkish(word)
	for _, suffix := range sortedSuffixes {
		if !strings.HasSuffix(stem, suffix) {
			continue
		}
		remaining := strings.TrimSuffix(stem, suffix)
		if len([]rune(remaining)) >= 2 {
			return remaining
		}
	}
	return stem
}

// StemEqual reports whether two words share the same stem.
func StemEqual(a, b string) bool {
	return Stem(a) == Stem(b)
}

// CleanText normalizes whitespace and bullet glyphs while preserving line
// structure: tabs become spaces, bullet characters become a plain dash,
// runs of intra-line whitespace collapse to one space and 3+ consecutive
// newlines collapse to a single blank line.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	cleaned := strings.ReplaceAll(text, "\t", " ")
	cleaned = bulletGlyphs.ReplaceAllString(cleaned, "-")
	cleaned = intraLineSpace.ReplaceAllString(cleaned, " ")
	cleaned = blankLines.ReplaceAllString(cleaned, "\n\n")
	return strings.TrimSpace(cleaned)
}

// Tokenize lowercases with Turkish rules and splits on whitespace and a fixed
// punctuation class, discarding tokens of length <= 1.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	parts := tokenSeparator.Split(LowerTurkish(text), -1)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if len([]rune(part)) > 1 {
			out = append(out, part)
		}
	}
	return out
}

// SplitSentences splits text into rough sentence candidates, dropping
// fragments of 5 characters or fewer.
func SplitSentences(text string) []string {
	if text == "" {
		return nil
	}
	parts := sentenceSplit.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if len([]rune(trimmed)) > 5 {
			out = append(out, trimmed)
		}
	}
	return out
}

// KeywordMatch describes how FindKeyword located a keyword in free text.
type KeywordMatch struct {
	Found bool
	Type  string // "exact" or "stem"
}

// FindKeyword searches free text for a keyword: exact substring match on the
// Turkish-lowercased text first, then a stem match for single-token keywords,
// then a contiguous-token substring match for multi-token keywords.
func FindKeyword(text, keyword string) KeywordMatch {
	normalizedText := LowerTurkish(text)
	normalizedKeyword := LowerTurkish(keyword)

	if normalizedKeyword != "" && strings.Contains(normalizedText, normalizedKeyword) {
		return KeywordMatch{Found: true, Type: "exact"}
	}

	textTokens := Tokenize(text)
	keywordTokens := Tokenize(keyword)

	if len(keywordTokens) == 1 {
		keywordStem := Stem(keywordTokens[0])
		for _, token := range textTokens {
			if Stem(token) == keywordStem {
				return KeywordMatch{Found: true, Type: "stem"}
			}
		}
	}

	if len(keywordTokens) > 1 {
		joined := strings.Join(keywordTokens, " ")
		if strings.Contains(normalizedText, joined) {
			return KeywordMatch{Found: true, Type: "exact"}
		}
	}

	return KeywordMatch{}
}
