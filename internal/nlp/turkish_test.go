package nlp

import (
	"reflect"
	"testing"
)

func TestLowerTurkishDottedPairs(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"İLETİŞİM", "iletişim"},
		{"IŞIK", "ışık"},
		{"DENEYİM", "deneyim"},
		{"ÇÖĞÜŞI", "çöğüşı"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := LowerTurkish(tc.in); got != tc.want {
			t.Errorf("LowerTurkish(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFoldASCII(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hakkımda", "hakkimda"},
		{"İŞ DENEYİMİ", "is deneyimi"},
		{"Eğitim Bilgileri", "egitim bilgileri"},
		{"ÇÖĞÜŞI", "cogusi"},
		{"plain ascii", "plain ascii"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := FoldASCII(tc.in); got != tc.want {
			t.Errorf("FoldASCII(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStemStripsOneSuffix(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"geliştirdim", "geliştir"}, // dim
		{"projeler", "proje"},       // ler
		{"yazılımları", "yazılım"},  // ları
		{"go", "go"},                // too short, untouched
		{"", ""},
		{"ders", "ders"}, // no suffix in the table applies
	}
	for _, tc := range cases {
		if got := Stem(tc.in); got != tc.want {
			t.Errorf("Stem(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStemKeepsMinimumStemLength(t *testing.T) {
	// "ada" ends in "da" but stripping would leave a single rune.
	if got := Stem("ada"); got != "ada" {
		t.Fatalf("Stem(ada) = %q, want ada", got)
	}
}

func TestStemStripsLongestSuffixFirst(t *testing.T) {
	// "ları" must win over "lar" and "ı".
	if got := Stem("kitapları"); got != "kitap" {
		t.Fatalf("Stem(kitapları) = %q, want kitap", got)
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("React, Vue.js; Node (backend) / AWS|GCP")
	want := []string{"react", "vue.js", "node", "backend", "aws", "gcp"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
	if Tokenize("") != nil {
		t.Fatalf("Tokenize(empty) should be nil")
	}
	if got := Tokenize("a b c"); len(got) != 0 {
		t.Fatalf("single-char tokens should be dropped, got %v", got)
	}
}

func TestCleanText(t *testing.T) {
	in := "Deneyim\t\tAçıklama\n• madde bir\n\n\n\n● madde iki   uzun"
	want := "Deneyim Açıklama\n- madde bir\n\n- madde iki uzun"
	if got := CleanText(in); got != want {
		t.Fatalf("CleanText = %q, want %q", got, want)
	}
	if CleanText("") != "" {
		t.Fatalf("CleanText(empty) should be empty")
	}
}

func TestCleanTextPreservesLineBreaks(t *testing.T) {
	got := CleanText("satır bir\nsatır iki")
	if got != "satır bir\nsatır iki" {
		t.Fatalf("newline should survive cleanup, got %q", got)
	}
}

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("Kısa. Bu cümle yeterince uzun! ok? Bir satır daha burada\nson")
	want := []string{"Bu cümle yeterince uzun", "Bir satır daha burada"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitSentences = %v, want %v", got, want)
	}
}

func TestFindKeyword(t *testing.T) {
	text := "React ile projeler geliştirdim ve takım çalışması yaptım."

	if m := FindKeyword(text, "react"); !m.Found || m.Type != "exact" {
		t.Fatalf("expected exact match for react, got %+v", m)
	}
	// "proje" is not a raw substring boundary issue here ("projeler" contains it),
	// so exact wins before stemming.
	if m := FindKeyword(text, "proje"); !m.Found || m.Type != "exact" {
		t.Fatalf("expected exact match for proje, got %+v", m)
	}
	// Stem fallback: "geliştirmesi" stems to the same root as "geliştirdim".
	if m := FindKeyword(text, "geliştirmesi"); !m.Found || m.Type != "stem" {
		t.Fatalf("expected stem match for geliştirmesi, got %+v", m)
	}
	// Multi-token containment.
	if m := FindKeyword(text, "takım çalışması"); !m.Found {
		t.Fatalf("expected multi-word match, got %+v", m)
	}
	if m := FindKeyword(text, "kubernetes"); m.Found {
		t.Fatalf("unexpected match for kubernetes: %+v", m)
	}
}
