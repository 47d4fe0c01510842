package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"symptom-checker/internal/catalog"
	"symptom-checker/internal/engine"
)

// ReportGenerator renders an analysis to a downloadable document. Declared
// here to decouple from the concrete PDF implementation.
type ReportGenerator interface {
	Generate(a Analysis) ([]byte, error)
}

type Service interface {
	Analyze(ctx context.Context, in engine.Input) (*Analysis, error)
	AnalyzeToPDF(ctx context.Context, in engine.Input) ([]byte, string, error)
	Symptoms() []string
	Conditions() []ConditionSummary
}

type service struct {
	eng    *engine.Engine
	cat    *catalog.Catalog
	report ReportGenerator
	log    zerolog.Logger
}

func NewService(eng *engine.Engine, cat *catalog.Catalog, report ReportGenerator, log zerolog.Logger) Service {
	return &service{eng: eng, cat: cat, report: report, log: log}
}

func (s *service) Analyze(ctx context.Context, in engine.Input) (*Analysis, error) {
	res, err := s.eng.Analyze(in)
	if err != nil {
		return nil, err
	}

	a := &Analysis{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Result:    *res,
	}
	s.log.Info().
		Str("analysis_id", a.ID.String()).
		Str("triage", res.Triage.Level.String()).
		Int("symptoms", len(res.Report.Symptoms)).
		Int("differential", len(res.Differential)).
		Msg("analysis completed")
	return a, nil
}

func (s *service) AnalyzeToPDF(ctx context.Context, in engine.Input) ([]byte, string, error) {
	a, err := s.Analyze(ctx, in)
	if err != nil {
		return nil, "", err
	}
	data, err := s.report.Generate(*a)
	if err != nil {
		s.log.Error().Err(err).Str("analysis_id", a.ID.String()).Msg("pdf generation failed")
		return nil, "", err
	}
	return data, "analysis_" + a.ID.String() + ".pdf", nil
}

func (s *service) Symptoms() []string {
	return s.cat.Vocabulary()
}

func (s *service) Conditions() []ConditionSummary {
	out := make([]ConditionSummary, 0, len(s.cat.Conditions))
	for _, c := range s.cat.Conditions {
		out = append(out, ConditionSummary{
			Name:        c.Name,
			Symptoms:    c.Symptoms,
			Severity:    string(c.Severity),
			IsEmergency: c.IsEmergency,
			Description: c.Description,
		})
	}
	return out
}
