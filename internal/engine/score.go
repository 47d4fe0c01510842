package engine

import (
	"math"
	"sort"
)

// matchingSymptoms returns the reported tokens that match any of the
// condition's symptoms, in reported order.
func matchingSymptoms(reported, conditionSymptoms []string) []string {
	var out []string
	for _, tok := range reported {
		for _, sym := range conditionSymptoms {
			if matches(tok, sym) {
				out = append(out, tok)
				break
			}
		}
	}
	return out
}

// score computes the ranked differential: per-condition likelihood from the
// base weight, symptom overlap, severity, and demographic boosts, then
// threshold, stable sort, and truncation.
func (e *Engine) score(rep Report) []DifferentialEntry {
	if len(rep.Symptoms) == 0 {
		return nil
	}

	var entries []DifferentialEntry
	for _, cond := range e.cat.Conditions {
		matching := matchingSymptoms(rep.Symptoms, cond.Symptoms)
		if len(matching) == 0 {
			continue
		}

		score := cond.BaseWeight +
			e.tun.PerSymptomPoints*float64(len(matching)) +
			float64(rep.Severity)/10*e.tun.SeverityPoints

		if rep.Age > e.tun.SeniorAge && e.senior[cond.Name] {
			score += e.tun.SeniorBoost
		}
		if rep.Age > 0 && rep.Age < e.tun.PediatricAge && e.pediatric[cond.Name] {
			score += e.tun.PediatricBoost
		}
		if rep.Gender == GenderFemale && e.female[cond.Name] {
			score += e.tun.SexBoost
		}
		if rep.Gender == GenderMale && e.male[cond.Name] {
			score += e.tun.SexBoost
		}

		if score > e.tun.MaxLikelihood {
			score = e.tun.MaxLikelihood
		}
		if score < e.tun.MinLikelihood {
			continue
		}

		entries = append(entries, DifferentialEntry{
			Condition:        cond.Name,
			MatchingSymptoms: matching,
			Likelihood:       math.Round(score),
			Description:      cond.Description,
			Warning:          cond.Warning,
		})
	}

	// Stable: ties keep catalog declaration order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Likelihood > entries[j].Likelihood
	})
	if len(entries) > e.tun.MaxDifferential {
		entries = entries[:e.tun.MaxDifferential]
	}
	return entries
}
