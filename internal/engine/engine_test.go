package engine

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"symptom-checker/internal/catalog"
)

func TestNewRejectsBrokenCatalog(t *testing.T) {
	cat := &catalog.Catalog{
		Conditions: []catalog.Condition{
			{Name: "Broken", Symptoms: nil, BaseWeight: 10, Severity: catalog.SeverityLow},
		},
	}
	if _, err := New(cat, DefaultTunables()); err == nil {
		t.Fatal("expected error for catalog with empty symptom set, got nil")
	}
}

func TestAnalyzeMissingInput(t *testing.T) {
	e := testEngine(t)
	_, err := e.Analyze(Input{})
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}
}

func TestAnalyzeEmptySymptomsIsSafe(t *testing.T) {
	e := testEngine(t)
	res, err := e.Analyze(Input{
		Age: "30", Gender: "female", Symptoms: "", Duration: "2 days", Severity: "1",
	})
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if res.Triage.Level != LevelSelfCare {
		t.Errorf("triage = %s, want self-care", res.Triage.Level)
	}
	if len(res.Differential) != 0 {
		t.Errorf("expected empty differential, got %d entries", len(res.Differential))
	}
	if len(res.Recommendations) == 0 {
		t.Error("expected generic recommendations even with no symptoms")
	}
}

func TestAnalyzeDeterminism(t *testing.T) {
	e := testEngine(t)
	in := Input{
		Age: "42", Gender: "female",
		Symptoms: "headache, fatigue, nausea",
		Duration: "1 week", Severity: "6",
	}

	first, err := e.Analyze(in)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := e.Analyze(in)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs from first run", i+2)
		}
	}
}

func TestAnalyzeClassicCold(t *testing.T) {
	e := testEngine(t)
	res, err := e.Analyze(Input{
		Age: "30", Gender: "male",
		Symptoms: "cough, sore throat, runny nose",
		Duration: "3 days", Severity: "3",
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Differential) == 0 {
		t.Fatal("expected a non-empty differential")
	}
	if got := res.Differential[0].Condition; got != "Common Cold" {
		t.Errorf("top condition = %s, want Common Cold", got)
	}
	if res.Triage.Level != LevelSelfCare && res.Triage.Level != LevelRoutine {
		t.Errorf("triage = %s, want self-care or routine", res.Triage.Level)
	}
}

func TestAnalyzeCardiacEmergency(t *testing.T) {
	e := testEngine(t)
	res, err := e.Analyze(Input{
		Age: "45", Gender: "male",
		Symptoms: "chest pain, difficulty breathing",
		Duration: "1 hour", Severity: "severe",
	})
	if err != nil {
		t.Fatal(err)
	}

	if res.Triage.Level != LevelEmergency {
		t.Fatalf("triage = %s, want emergency", res.Triage.Level)
	}
	if len(res.Differential) != 1 {
		t.Fatalf("expected single emergency differential entry, got %d", len(res.Differential))
	}
	if res.Differential[0].Condition != "Heart Attack" {
		t.Errorf("emergency condition = %s, want Heart Attack", res.Differential[0].Condition)
	}

	joined := strings.Join(res.Recommendations, " ")
	if !strings.Contains(joined, "emergency services") {
		t.Error("recommendations should instruct calling emergency services")
	}
	if !strings.Contains(joined, "Do not drive yourself") {
		t.Error("recommendations should advise against self-transport")
	}
}

func TestAnalyzeAmbiguousRoutineWithAgeBoost(t *testing.T) {
	e := testEngine(t)
	in := Input{
		Symptoms: "joint pain, fatigue, headache",
		Duration: "2 weeks", Severity: "5",
	}

	in.Age = "60"
	older, err := e.Analyze(in)
	if err != nil {
		t.Fatal(err)
	}
	if older.Triage.Level != LevelRoutine {
		t.Errorf("triage = %s, want routine", older.Triage.Level)
	}

	in.Age = "25"
	younger, err := e.Analyze(in)
	if err != nil {
		t.Fatal(err)
	}

	likelihood := func(res *Result, name string) float64 {
		for _, entry := range res.Differential {
			if entry.Condition == name {
				return entry.Likelihood
			}
		}
		return -1
	}

	oldArthritis := likelihood(older, "Arthritis")
	youngArthritis := likelihood(younger, "Arthritis")
	if oldArthritis < 0 {
		t.Fatal("expected Arthritis in the differential at age 60")
	}
	if youngArthritis >= 0 && oldArthritis <= youngArthritis {
		t.Errorf("arthritis likelihood at 60 (%v) should exceed at 25 (%v)", oldArthritis, youngArthritis)
	}
	if older.Differential[0].Condition != "Arthritis" {
		t.Errorf("top condition at 60 = %s, want Arthritis", older.Differential[0].Condition)
	}
}

func TestAnalyzeEmergencyPrecedence(t *testing.T) {
	e := testEngine(t)
	res, err := e.Analyze(Input{
		Age: "30", Gender: "female",
		Symptoms: "chest pain, cough, sore throat, runny nose, headache",
		Duration: "1 day", Severity: "10",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Triage.Level != LevelEmergency {
		t.Fatalf("triage = %s, want emergency regardless of other matches", res.Triage.Level)
	}
}

func TestAnalyzeRedFlagWithoutCatalogMatch(t *testing.T) {
	e := testEngine(t)
	res, err := e.Analyze(Input{
		Age: "30", Gender: "male",
		Symptoms: "seizure",
		Duration: "today", Severity: "4",
	})
	if err != nil {
		t.Fatal(err)
	}
	// No emergency condition lists seizure, but the red flag still forces the
	// emergency level through the classifier.
	if res.Triage.Level != LevelEmergency {
		t.Errorf("triage = %s, want emergency", res.Triage.Level)
	}
}

func TestAnalyzeDifferentialInvariants(t *testing.T) {
	e := testEngine(t)
	inputs := []Input{
		{Age: "30", Gender: "male", Symptoms: "cough, fever, headache, fatigue, nausea, sore throat, congestion", Duration: "3 days", Severity: "4"},
		{Age: "70", Gender: "female", Symptoms: "fatigue, dizziness, headache", Duration: "1 month", Severity: "5"},
		{Age: "8", Gender: "other", Symptoms: "ear pain, fever", Duration: "2 days", Severity: "3"},
	}

	for _, in := range inputs {
		res, err := e.Analyze(in)
		if err != nil {
			t.Fatalf("Analyze(%q) returned error: %v", in.Symptoms, err)
		}
		if len(res.Differential) > DefaultTunables().MaxDifferential {
			t.Errorf("differential length %d exceeds bound", len(res.Differential))
		}
		for i, entry := range res.Differential {
			if entry.Likelihood < DefaultTunables().MinLikelihood {
				t.Errorf("entry %s below threshold: %v", entry.Condition, entry.Likelihood)
			}
			if entry.Likelihood > DefaultTunables().MaxLikelihood {
				t.Errorf("entry %s above cap: %v", entry.Condition, entry.Likelihood)
			}
			if i > 0 && entry.Likelihood > res.Differential[i-1].Likelihood {
				t.Errorf("differential not monotonically non-increasing at %d", i)
			}
			if len(entry.MatchingSymptoms) == 0 {
				t.Errorf("entry %s has no matching symptoms", entry.Condition)
			}
		}
	}
}
