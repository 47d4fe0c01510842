package engine

import (
	"strings"
	"testing"
)

func countContaining(items []string, substr string) int {
	n := 0
	for _, item := range items {
		if strings.Contains(item, substr) {
			n++
		}
	}
	return n
}

func TestBaseScriptsCoverAllLevels(t *testing.T) {
	for _, level := range []TriageLevel{LevelSelfCare, LevelRoutine, LevelUrgent, LevelEmergency} {
		script, ok := baseScripts[level]
		if !ok {
			t.Fatalf("no base script for level %s", level)
		}
		if len(script.recommendations) == 0 {
			t.Errorf("level %s has no recommendations", level)
		}
		if len(script.whenToSeekHelp) == 0 {
			t.Errorf("level %s has no when-to-seek-help items", level)
		}
	}
}

func TestAdviseAppendsRespiratorySupplementOnce(t *testing.T) {
	e := testEngine(t)

	// Three tokens from the respiratory set must still yield one block.
	res := &Result{
		Report: Report{Symptoms: []string{"cough", "fever", "sore throat"}, Severity: 3},
		Triage: TriageResult{Level: LevelRoutine},
	}
	e.advise(res)

	if got := countContaining(res.Recommendations, "COVID-19 test"); got != 1 {
		t.Errorf("COVID advice appears %d times, want 1", got)
	}
	if got := countContaining(res.WhenToSeekHelp, "bluish"); got != 1 {
		t.Errorf("respiratory seek-help item appears %d times, want 1", got)
	}
}

func TestAdviseSupplementsAreAdditive(t *testing.T) {
	e := testEngine(t)

	base := &Result{
		Report: Report{Symptoms: []string{"joint pain"}, Severity: 3},
		Triage: TriageResult{Level: LevelRoutine},
	}
	e.advise(base)

	supplemented := &Result{
		Report: Report{Symptoms: []string{"cough", "sneezing", "anxiety"}, Severity: 3},
		Triage: TriageResult{Level: LevelRoutine},
	}
	e.advise(supplemented)

	// The base routine script must be fully present in both.
	for i, rec := range base.Recommendations {
		if supplemented.Recommendations[i] != rec {
			t.Fatalf("supplement replaced base recommendation %d", i)
		}
	}
	if len(supplemented.Recommendations) <= len(base.Recommendations) {
		t.Error("expected supplements to extend the base recommendations")
	}

	// All three supplements fire together.
	if countContaining(supplemented.Recommendations, "COVID-19") == 0 {
		t.Error("expected respiratory supplement")
	}
	if countContaining(supplemented.Recommendations, "antihistamine") == 0 {
		t.Error("expected allergy supplement")
	}
	if countContaining(supplemented.Recommendations, "mental health professional") == 0 {
		t.Error("expected mental-health supplement")
	}
	if countContaining(supplemented.WhenToSeekHelp, "988") == 0 {
		t.Error("expected crisis line in when-to-seek-help")
	}
}

func TestAdviseNoSupplementsWithoutTriggers(t *testing.T) {
	e := testEngine(t)
	res := &Result{
		Report: Report{Symptoms: []string{"joint pain", "stiffness"}, Severity: 3},
		Triage: TriageResult{Level: LevelRoutine},
	}
	e.advise(res)

	if countContaining(res.Recommendations, "COVID-19") != 0 {
		t.Error("unexpected respiratory supplement")
	}
	if countContaining(res.Recommendations, "antihistamine") != 0 {
		t.Error("unexpected allergy supplement")
	}
	want := baseScripts[LevelRoutine]
	if len(res.Recommendations) != len(want.recommendations) {
		t.Errorf("recommendations length = %d, want %d", len(res.Recommendations), len(want.recommendations))
	}
}
