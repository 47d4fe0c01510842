package engine

import (
	"strconv"
	"strings"
)

// matches is the single weak-matching predicate: a reported token matches a
// catalog symptom if either string contains the other, or the first word of
// the catalog symptom is a prefix of one of the reported words. All symptom
// comparison in the engine goes through here so the policy can be swapped in
// one place.
func matches(reported, symptom string) bool {
	if reported == "" || symptom == "" {
		return false
	}
	if strings.Contains(reported, symptom) || strings.Contains(symptom, reported) {
		return true
	}
	head, _, _ := strings.Cut(symptom, " ")
	for _, word := range strings.Fields(reported) {
		if strings.HasPrefix(word, head) {
			return true
		}
	}
	return false
}

// normalize turns the raw symptom and additional-info text into the
// de-duplicated token set the rest of the pipeline operates on. Each comma
// segment resolves to at most one vocabulary token (exact name first, weak
// match second); the concatenated free text is then scanned for vocabulary
// tokens it mentions verbatim. Segments that resolve to nothing are kept only
// in the raw list for display.
func (e *Engine) normalize(symptomsText, additionalInfo string) (tokens, segments []string) {
	for _, part := range strings.Split(symptomsText, ",") {
		seg := strings.ToLower(strings.TrimSpace(part))
		if seg != "" {
			segments = append(segments, seg)
		}
	}

	seen := make(map[string]bool)
	add := func(tok string) {
		if tok != "" && !seen[tok] {
			seen[tok] = true
			tokens = append(tokens, tok)
		}
	}

	for _, seg := range segments {
		add(e.resolveToken(seg))
	}

	free := strings.ToLower(symptomsText + " " + additionalInfo)
	for _, tok := range e.vocab {
		if !seen[tok] && strings.Contains(free, tok) {
			add(tok)
		}
	}
	return tokens, segments
}

// resolveToken maps one reported segment onto the catalog vocabulary.
func (e *Engine) resolveToken(seg string) string {
	for _, tok := range e.vocab {
		if tok == seg {
			return tok
		}
	}
	for _, tok := range e.vocab {
		if matches(seg, tok) {
			return tok
		}
	}
	return ""
}

// parseReport applies the defensive field contract: unparsable age becomes 0,
// severity is clamped to [1,10] and defaults to the midpoint when it is not a
// number, unrecognized genders become unknown.
func (e *Engine) parseReport(in Input) Report {
	rep := Report{
		Duration:     strings.TrimSpace(in.Duration),
		SeverityText: strings.ToLower(strings.TrimSpace(in.Severity)),
	}

	if age, err := strconv.Atoi(strings.TrimSpace(in.Age)); err == nil && age >= 0 {
		rep.Age = age
	}

	switch strings.ToLower(strings.TrimSpace(in.Gender)) {
	case "male":
		rep.Gender = GenderMale
	case "female":
		rep.Gender = GenderFemale
	case "other":
		rep.Gender = GenderOther
	default:
		rep.Gender = GenderUnknown
	}

	if sev, err := strconv.Atoi(rep.SeverityText); err == nil {
		if sev < 1 {
			sev = 1
		}
		if sev > 10 {
			sev = 10
		}
		rep.Severity = sev
	} else {
		rep.Severity = defaultSeverity
	}

	rep.Symptoms, rep.RawSegments = e.normalize(in.Symptoms, in.AdditionalInfo)
	return rep
}

const defaultSeverity = 5
