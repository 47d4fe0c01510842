package engine

import (
	"encoding/json"
	"fmt"
)

// TriageLevel is the discrete urgency classification, ordered from least to
// most urgent.
type TriageLevel int

const (
	LevelSelfCare TriageLevel = iota
	LevelRoutine
	LevelUrgent
	LevelEmergency
)

func (l TriageLevel) String() string {
	switch l {
	case LevelSelfCare:
		return "self-care"
	case LevelRoutine:
		return "routine"
	case LevelUrgent:
		return "urgent"
	case LevelEmergency:
		return "emergency"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the level as its string name.
func (l TriageLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

func (l *TriageLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "self-care":
		*l = LevelSelfCare
	case "routine":
		*l = LevelRoutine
	case "urgent":
		*l = LevelUrgent
	case "emergency":
		*l = LevelEmergency
	default:
		return fmt.Errorf("unknown triage level %q", s)
	}
	return nil
}

// Gender is the normalized patient sex field. Unrecognized input maps to
// GenderUnknown, which disables the sex-specific scoring boosts.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderOther   Gender = "other"
	GenderUnknown Gender = "unknown"
)

// Input carries the raw form fields of one analysis request, exactly as the
// caller received them. All parsing and defaulting happens inside Analyze.
type Input struct {
	Age            string `json:"age"`
	Gender         string `json:"gender"`
	Symptoms       string `json:"symptoms"`
	Duration       string `json:"duration"`
	Severity       string `json:"severity"`
	AdditionalInfo string `json:"additional_info"`
}

// Report is the parsed, normalized form of an Input.
type Report struct {
	Age          int      `json:"age"`
	Gender       Gender   `json:"gender"`
	Symptoms     []string `json:"symptoms"`
	RawSegments  []string `json:"raw_segments"`
	Duration     string   `json:"duration"`
	Severity     int      `json:"severity"`
	SeverityText string   `json:"severity_text"`
}

// DifferentialEntry is one ranked candidate condition.
type DifferentialEntry struct {
	Condition        string   `json:"condition"`
	MatchingSymptoms []string `json:"matching_symptoms"`
	Likelihood       float64  `json:"likelihood"`
	Description      string   `json:"description,omitempty"`
	Warning          string   `json:"warning,omitempty"`
}

// TriageResult is the classified urgency plus its human-readable framing.
type TriageResult struct {
	Level       TriageLevel `json:"level"`
	Description string      `json:"description"`
	Warning     string      `json:"warning,omitempty"`
}

// Result is the engine's single return value. It is a plain value: nothing is
// retained between calls and the caller owns its lifecycle.
type Result struct {
	Report          Report              `json:"report"`
	Triage          TriageResult        `json:"triage"`
	Differential    []DifferentialEntry `json:"differential"`
	Recommendations []string            `json:"recommendations"`
	NextSteps       []string            `json:"next_steps"`
	WhenToSeekHelp  []string            `json:"when_to_seek_help"`
	PreventionTips  []string            `json:"prevention_tips"`
}
