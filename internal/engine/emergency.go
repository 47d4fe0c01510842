package engine

import "strings"

// hasRedFlag reports whether the report must take the emergency path: a
// red-flag symptom token, a "severe" severity descriptor, or a numeric
// severity at or above the emergency threshold.
func (e *Engine) hasRedFlag(rep Report) bool {
	for _, tok := range rep.Symptoms {
		if e.redFlags[tok] {
			return true
		}
	}
	if strings.Contains(rep.SeverityText, "severe") {
		return true
	}
	return rep.Severity >= e.tun.EmergencySeverity
}

// emergencyResult resolves a red-flagged report against the emergency-class
// subset of the catalog. The first intersecting condition in declaration
// order wins; score never demotes an emergency. Returns nil when no emergency
// condition matches, in which case the red-flag signal still feeds the triage
// classifier.
func (e *Engine) emergencyResult(rep Report) *Result {
	for _, cond := range e.cat.Conditions {
		if !cond.IsEmergency {
			continue
		}
		matching := matchingSymptoms(rep.Symptoms, cond.Symptoms)
		if len(matching) == 0 {
			continue
		}

		res := &Result{
			Report: rep,
			Triage: TriageResult{
				Level:       LevelEmergency,
				Description: "Your symptoms may indicate a medical emergency.",
				Warning:     "Call emergency services now. Do not wait to see if symptoms improve.",
			},
			Differential: []DifferentialEntry{{
				Condition:        cond.Name,
				MatchingSymptoms: matching,
				Likelihood:       e.tun.MaxLikelihood,
				Description:      cond.Description,
				Warning:          cond.Warning,
			}},
		}
		e.advise(res)
		return res
	}
	return nil
}
