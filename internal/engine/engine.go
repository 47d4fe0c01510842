package engine

import (
	"errors"
	"strings"

	"symptom-checker/internal/catalog"
)

// ErrMissingInput is returned when an analysis request carries no usable
// information at all. Partially filled reports are handled defensively
// instead; field-level required-input validation belongs to the caller.
var ErrMissingInput = errors.New("missing required input")

// Tunables are the scoring and triage constants. The defaults reproduce the
// reference behavior; none of the numbers is load-bearing beyond that.
type Tunables struct {
	PerSymptomPoints float64
	SeverityPoints   float64
	SeniorBoost      float64
	PediatricBoost   float64
	SexBoost         float64
	SeniorAge        int
	PediatricAge     int

	MaxLikelihood   float64
	MinLikelihood   float64
	MaxDifferential int

	EmergencySeverity   int
	UrgentSeverity      int
	RoutineSeverity     int
	RoutineSymptomCount int
}

// DefaultTunables returns the reference constants.
func DefaultTunables() Tunables {
	return Tunables{
		PerSymptomPoints:    5,
		SeverityPoints:      5,
		SeniorBoost:         10,
		PediatricBoost:      15,
		SexBoost:            15,
		SeniorAge:           50,
		PediatricAge:        18,
		MaxLikelihood:       95,
		MinLikelihood:       10,
		MaxDifferential:     5,
		EmergencySeverity:   9,
		UrgentSeverity:      7,
		RoutineSeverity:     5,
		RoutineSymptomCount: 3,
	}
}

// Engine runs the analysis pipeline over an immutable catalog. It holds no
// per-request state, so a single Engine is safe for concurrent use.
type Engine struct {
	cat *catalog.Catalog
	tun Tunables

	vocab     []string
	redFlags  map[string]bool
	urgent    map[string]bool
	senior    map[string]bool
	pediatric map[string]bool
	female    map[string]bool
	male      map[string]bool
}

// New validates the catalog and builds an engine. A catalog integrity
// violation is a startup failure: no engine is returned.
func New(cat *catalog.Catalog, tun Tunables) (*Engine, error) {
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	if tun.MaxDifferential <= 0 {
		tun.MaxDifferential = DefaultTunables().MaxDifferential
	}
	return &Engine{
		cat:       cat,
		tun:       tun,
		vocab:     cat.Vocabulary(),
		redFlags:  toSet(cat.RedFlagSymptoms),
		urgent:    toSet(cat.UrgentSymptoms),
		senior:    toSet(cat.SeniorConditions),
		pediatric: toSet(cat.PediatricConditions),
		female:    toSet(cat.FemaleConditions),
		male:      toSet(cat.MaleConditions),
	}, nil
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, s := range items {
		set[s] = true
	}
	return set
}

// Analyze is the single entry point: one report in, one immutable result out.
func (e *Engine) Analyze(in Input) (*Result, error) {
	if allBlank(in.Symptoms, in.AdditionalInfo, in.Age, in.Gender, in.Duration, in.Severity) {
		return nil, ErrMissingInput
	}

	rep := e.parseReport(in)

	hasRedFlag := e.hasRedFlag(rep)
	if hasRedFlag {
		if res := e.emergencyResult(rep); res != nil {
			return res, nil
		}
	}

	diff := e.score(rep)
	triage := e.classify(rep, diff, hasRedFlag)

	res := &Result{
		Report:       rep,
		Triage:       triage,
		Differential: diff,
	}
	e.advise(res)
	return res, nil
}

func allBlank(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
