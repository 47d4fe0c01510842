package analysis

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"symptom-checker/internal/catalog"
	"symptom-checker/internal/engine"
)

type stubReport struct {
	data []byte
	err  error
}

func (s *stubReport) Generate(a Analysis) ([]byte, error) {
	return s.data, s.err
}

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	cat := catalog.Default()
	eng, err := engine.New(cat, engine.DefaultTunables())
	if err != nil {
		t.Fatal(err)
	}
	svc := NewService(eng, cat, &stubReport{data: []byte("%PDF-stub")}, zerolog.Nop())

	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(svc))
	return r
}

func postJSON(t *testing.T, r chi.Router, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyze(t *testing.T) {
	r := newTestRouter(t)
	rec := postJSON(t, r, "/analysis", engine.Input{
		Age:      "30",
		Gender:   "male",
		Symptoms: "cough, sore throat, runny nose",
		Duration: "3 days",
		Severity: "3",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var a Analysis
	if err := json.Unmarshal(rec.Body.Bytes(), &a); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if a.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("expected a generated analysis id")
	}
	if len(a.Result.Differential) == 0 {
		t.Error("expected a non-empty differential")
	}
	if a.Result.Differential[0].Condition != "Common Cold" {
		t.Errorf("top condition = %s, want Common Cold", a.Result.Differential[0].Condition)
	}
}

func TestHandleAnalyzeMissingFields(t *testing.T) {
	r := newTestRouter(t)
	rec := postJSON(t, r, "/analysis", engine.Input{
		Symptoms: "cough",
		Severity: "3",
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "missing required input") {
		t.Errorf("body = %q, want missing-required-input message", body)
	}
	if !strings.Contains(body, "age") || !strings.Contains(body, "gender") || !strings.Contains(body, "duration") {
		t.Errorf("body = %q, should name the missing fields", body)
	}
}

func TestHandleAnalyzeInvalidBody(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/analysis", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleAnalyzePDF(t *testing.T) {
	r := newTestRouter(t)
	rec := postJSON(t, r, "/analysis/report", engine.Input{
		Age:      "45",
		Gender:   "male",
		Symptoms: "chest pain, difficulty breathing",
		Duration: "1 hour",
		Severity: "severe",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("content type = %q, want application/pdf", got)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), ".pdf") {
		t.Errorf("content disposition = %q, want a .pdf filename", rec.Header().Get("Content-Disposition"))
	}
	if rec.Body.String() != "%PDF-stub" {
		t.Errorf("body = %q, want stub PDF bytes", rec.Body.String())
	}
}

func TestHandleSymptoms(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/symptoms", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp["symptoms"]) == 0 {
		t.Error("expected a non-empty symptom vocabulary")
	}
}

func TestHandleConditions(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/conditions", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp map[string][]ConditionSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	conditions := resp["conditions"]
	if len(conditions) == 0 {
		t.Fatal("expected conditions in response")
	}
	foundEmergency := false
	for _, c := range conditions {
		if c.IsEmergency {
			foundEmergency = true
		}
	}
	if !foundEmergency {
		t.Error("expected at least one emergency condition in the listing")
	}
}
