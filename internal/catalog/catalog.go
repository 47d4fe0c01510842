package catalog

import (
	"fmt"
	"math"
	"strings"
)

// SeverityClass is the intrinsic seriousness of a condition, independent of
// how strongly a particular report matches it.
type SeverityClass string

const (
	SeverityLow       SeverityClass = "low"
	SeverityModerate  SeverityClass = "moderate"
	SeverityHigh      SeverityClass = "high"
	SeverityEmergency SeverityClass = "emergency"
)

// Condition is one entry of the reference table.
type Condition struct {
	Name        string        `json:"name"`
	Symptoms    []string      `json:"symptoms"`
	BaseWeight  float64       `json:"base_weight"`
	Severity    SeverityClass `json:"severity"`
	IsEmergency bool          `json:"is_emergency"`
	Description string        `json:"description,omitempty"`
	Warning     string        `json:"warning,omitempty"`
}

// Catalog is the full read-only reference data set: the condition table plus
// the fixed rule lists the engine consumes. It is loaded once at startup and
// never mutated afterwards.
type Catalog struct {
	Conditions []Condition `json:"conditions"`

	// RedFlagSymptoms force the emergency path regardless of any score.
	RedFlagSymptoms []string `json:"red_flag_symptoms"`

	// UrgentSymptoms push an otherwise ordinary report to the urgent level.
	UrgentSymptoms []string `json:"urgent_symptoms"`

	// Demographic condition-name sets used by the scorer's boosts.
	SeniorConditions    []string `json:"senior_conditions"`
	PediatricConditions []string `json:"pediatric_conditions"`
	FemaleConditions    []string `json:"female_conditions"`
	MaleConditions      []string `json:"male_conditions"`

	// Keyword sets that trigger supplemental advice blocks.
	RespiratoryKeywords  []string `json:"respiratory_keywords"`
	AllergyKeywords      []string `json:"allergy_keywords"`
	MentalHealthKeywords []string `json:"mental_health_keywords"`
}

// Emergencies returns the emergency-class subset in declaration order.
func (c *Catalog) Emergencies() []Condition {
	var out []Condition
	for _, cond := range c.Conditions {
		if cond.IsEmergency {
			out = append(out, cond)
		}
	}
	return out
}

// Vocabulary returns every symptom token the catalog knows about, in first-seen
// order: condition symptoms first, then the red-flag and urgent lists.
func (c *Catalog) Vocabulary() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(tok string) {
		if tok != "" && !seen[tok] {
			seen[tok] = true
			out = append(out, tok)
		}
	}
	for _, cond := range c.Conditions {
		for _, s := range cond.Symptoms {
			add(s)
		}
	}
	for _, s := range c.RedFlagSymptoms {
		add(s)
	}
	for _, s := range c.UrgentSymptoms {
		add(s)
	}
	return out
}

// Find returns the condition with the given name, or nil.
func (c *Catalog) Find(name string) *Condition {
	for i := range c.Conditions {
		if c.Conditions[i].Name == name {
			return &c.Conditions[i]
		}
	}
	return nil
}

// Validate checks catalog integrity. A broken catalog is a startup failure,
// not a per-request one: callers must refuse to serve on error.
func (c *Catalog) Validate() error {
	if len(c.Conditions) == 0 {
		return fmt.Errorf("catalog has no conditions")
	}
	names := make(map[string]bool, len(c.Conditions))
	for _, cond := range c.Conditions {
		if strings.TrimSpace(cond.Name) == "" {
			return fmt.Errorf("catalog condition with empty name")
		}
		if names[cond.Name] {
			return fmt.Errorf("duplicate condition name %q", cond.Name)
		}
		names[cond.Name] = true

		if len(cond.Symptoms) == 0 {
			return fmt.Errorf("condition %q has an empty symptom set", cond.Name)
		}
		for _, s := range cond.Symptoms {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("condition %q has a blank symptom token", cond.Name)
			}
			if s != strings.ToLower(s) {
				return fmt.Errorf("condition %q symptom %q is not lower-cased", cond.Name, s)
			}
		}
		if cond.BaseWeight < 0 || math.IsNaN(cond.BaseWeight) || math.IsInf(cond.BaseWeight, 0) {
			return fmt.Errorf("condition %q has invalid base weight %v", cond.Name, cond.BaseWeight)
		}
		switch cond.Severity {
		case SeverityLow, SeverityModerate, SeverityHigh, SeverityEmergency:
		default:
			return fmt.Errorf("condition %q has unknown severity class %q", cond.Name, cond.Severity)
		}
		if (cond.Severity == SeverityEmergency) != cond.IsEmergency {
			return fmt.Errorf("condition %q: severity class and emergency flag disagree", cond.Name)
		}
	}

	for _, set := range [][]string{
		c.SeniorConditions, c.PediatricConditions, c.FemaleConditions, c.MaleConditions,
	} {
		for _, name := range set {
			if !names[name] {
				return fmt.Errorf("demographic rule references unknown condition %q", name)
			}
		}
	}
	return nil
}
