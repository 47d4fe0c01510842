package engine

import "symptom-checker/internal/catalog"

// classify maps the scored differential, severity, and red-flag signal to a
// triage level. First match wins, from most to least urgent. The terminal
// emergency path never reaches this function; the emergency rule here covers
// red flags and extreme severity that matched no catalog emergency.
func (e *Engine) classify(rep Report, diff []DifferentialEntry, hasRedFlag bool) TriageResult {
	switch {
	case hasRedFlag || rep.Severity >= e.tun.EmergencySeverity:
		return TriageResult{
			Level:       LevelEmergency,
			Description: "Your symptoms may indicate a medical emergency.",
			Warning:     "Call emergency services now. Do not wait to see if symptoms improve.",
		}

	case rep.Severity >= e.tun.UrgentSeverity ||
		e.anyUrgentSymptom(rep.Symptoms) ||
		e.anyDifferentialClass(diff, catalog.SeverityHigh):
		return TriageResult{
			Level:       LevelUrgent,
			Description: "You should be seen by a medical professional within 24 hours.",
			Warning:     "If symptoms worsen, go to urgent care or an emergency department.",
		}

	case len(rep.Symptoms) >= e.tun.RoutineSymptomCount ||
		rep.Severity >= e.tun.RoutineSeverity ||
		e.anyDifferentialClass(diff, catalog.SeverityModerate):
		return TriageResult{
			Level:       LevelRoutine,
			Description: "Schedule an appointment with your doctor in the next few days.",
		}

	default:
		return TriageResult{
			Level:       LevelSelfCare,
			Description: "Your symptoms can usually be managed at home with rest and self-care.",
		}
	}
}

func (e *Engine) anyUrgentSymptom(tokens []string) bool {
	for _, tok := range tokens {
		if e.urgent[tok] {
			return true
		}
	}
	return false
}

func (e *Engine) anyDifferentialClass(diff []DifferentialEntry, class catalog.SeverityClass) bool {
	for _, entry := range diff {
		if cond := e.cat.Find(entry.Condition); cond != nil && cond.Severity == class {
			return true
		}
	}
	return false
}
