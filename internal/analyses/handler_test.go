package analyses

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"cvanaliz-backend/internal/analyzer"
	"cvanaliz-backend/internal/skills"
)

const testCV = `Mehmet Kaya
mehmet.kaya@example.com | 0532 123 45 67

ÖZET
Beş yıl deneyimli backend geliştirici. Node.js ve Go ile ölçeklenebilir servisler geliştirdim.

İŞ DENEYİMİ
Kıdemli Yazılım Geliştirici - Örnek Teknoloji (2019 - 2024)
Node.js ve PostgreSQL ile mikroservis mimarisi kurdum.
Docker ile dağıtım süreçlerini otomatikleştirdim.

EĞİTİM
Bilgisayar Mühendisliği, İstanbul Teknik Üniversitesi (2015 - 2019)

BECERİLER
Node.js, Go, PostgreSQL, Docker, Git`

const testJob = `Kıdemli Backend Developer arıyoruz.

ARANAN NİTELİKLER
En az 4 yıl deneyim
Node.js ve PostgreSQL bilgisi
Docker tecrübesi

TERCİH SEBEBİ
Kubernetes bilgisi`

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	NewHandler(analyzer.New(skills.Default())).RegisterRoutes(api)
	return r
}

func postAnalysis(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestCreateAnalysisFullMode(t *testing.T) {
	r := newTestRouter()

	body, err := json.Marshal(map[string]string{
		"cvText":  testCV,
		"jobText": testJob,
		"mode":    "full",
	})
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	resp := postAnalysis(t, r, string(body))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["analysisId"] == "" || payload["analysisId"] == nil {
		t.Fatalf("expected analysisId in response")
	}
	if payload["analysisMode"] != "full" {
		t.Fatalf("expected analysisMode full, got %v", payload["analysisMode"])
	}
	for _, key := range []string{"cvAnalysis", "jobAnalysis", "matchResults", "atsScore", "jobMatchScore", "recommendations", "timestamp"} {
		if _, ok := payload[key]; !ok {
			t.Errorf("missing response field: %s", key)
		}
	}
}

func TestCreateAnalysisATSOnly(t *testing.T) {
	r := newTestRouter()

	body, err := json.Marshal(map[string]string{
		"cvText": testCV,
		"mode":   "ats-only",
	})
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	resp := postAnalysis(t, r, string(body))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["analysisMode"] != "ats-only" {
		t.Fatalf("expected analysisMode ats-only, got %v", payload["analysisMode"])
	}
	for _, key := range []string{"jobAnalysis", "matchResults", "jobMatchScore"} {
		if _, ok := payload[key]; ok {
			t.Errorf("unexpected field in ats-only response: %s", key)
		}
	}
	if _, ok := payload["atsScore"]; !ok {
		t.Fatalf("expected atsScore in ats-only response")
	}
}

func TestCreateAnalysisValidation(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"missing cv", `{"jobText":"ilan"}`, "cvText"},
		{"missing job in full mode", `{"cvText":"cv metni"}`, "jobText"},
		{"invalid mode", `{"cvText":"cv metni","jobText":"ilan","mode":"hybrid"}`, "mode"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter()
			resp := postAnalysis(t, r, tc.body)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
			}
			var payload struct {
				Error struct {
					Code    string              `json:"code"`
					Details []map[string]string `json:"details"`
				} `json:"error"`
			}
			if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if payload.Error.Code != "validation_error" {
				t.Fatalf("expected validation_error, got %q", payload.Error.Code)
			}
			if len(payload.Error.Details) == 0 || payload.Error.Details[0]["field"] != tc.field {
				t.Fatalf("expected detail field %q, got %v", tc.field, payload.Error.Details)
			}
		})
	}
}

func TestCreateAnalysisMalformedBody(t *testing.T) {
	r := newTestRouter()
	resp := postAnalysis(t, r, `{"cvText": `)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
