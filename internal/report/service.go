package report

import (
	"bytes"
	"fmt"

	"github.com/signintech/gopdf"

	"symptom-checker/internal/analysis"
)

// Service renders analysis results to PDF for download or printing.
type Service struct {
	fontPaths []string
}

func NewService() *Service {
	return &Service{
		// Common DejaVuSans locations (Alpine and Debian images).
		fontPaths: []string{
			"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		},
	}
}

// Generate renders one analysis to a PDF byte slice.
func (s *Service) Generate(a analysis.Analysis) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	fontLoaded := false
	var fontErr error
	for _, path := range s.fontPaths {
		if err := pdf.AddTTFFont("DejaVu", path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		return nil, fmt.Errorf("failed to load PDF font, ensure ttf-dejavu is installed: %w", fontErr)
	}

	if err := pdf.SetFont("DejaVu", "", 20); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Symptom Checker Report")
	pdf.Br(30)

	if err := pdf.SetFont("DejaVu", "", 12); err != nil {
		return nil, err
	}
	res := a.Result
	pdf.Cell(nil, fmt.Sprintf("Date: %s", a.CreatedAt.Format("02.01.2006 15:04")))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Analysis ID: %s", a.ID))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Triage level: %s", res.Triage.Level))
	pdf.Br(15)
	s.writeWrapped(&pdf, res.Triage.Description, 12)
	if res.Triage.Warning != "" {
		s.writeWrapped(&pdf, res.Triage.Warning, 12)
	}
	pdf.Br(10)

	if err := s.writeSection(&pdf, "Reported symptoms"); err != nil {
		return nil, err
	}
	if len(res.Report.Symptoms) == 0 {
		pdf.Cell(nil, "- None identified.")
		pdf.Br(12)
	}
	for _, sym := range res.Report.Symptoms {
		pdf.Cell(nil, "- "+sym)
		pdf.Br(12)
	}
	pdf.Br(10)

	if err := s.writeSection(&pdf, "Possible conditions"); err != nil {
		return nil, err
	}
	if len(res.Differential) == 0 {
		pdf.Cell(nil, "- No strong matches found.")
		pdf.Br(12)
	}
	for _, entry := range res.Differential {
		s.writeWrapped(&pdf, fmt.Sprintf("- %s (likelihood %.0f%%)", entry.Condition, entry.Likelihood), 11)
		if entry.Warning != "" {
			s.writeWrapped(&pdf, "  Warning: "+entry.Warning, 11)
		}
	}
	pdf.Br(10)

	for _, section := range []struct {
		title string
		items []string
	}{
		{"Recommendations", res.Recommendations},
		{"Next steps", res.NextSteps},
		{"When to seek help", res.WhenToSeekHelp},
		{"Prevention tips", res.PreventionTips},
	} {
		if len(section.items) == 0 {
			continue
		}
		if err := s.writeSection(&pdf, section.title); err != nil {
			return nil, err
		}
		for _, item := range section.items {
			s.writeWrapped(&pdf, "- "+item, 11)
		}
		pdf.Br(10)
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *Service) writeSection(pdf *gopdf.GoPdf, title string) error {
	if err := pdf.SetFont("DejaVu", "", 14); err != nil {
		return err
	}
	pdf.Cell(nil, title+":")
	pdf.Br(15)
	return pdf.SetFont("DejaVu", "", 11)
}

func (s *Service) writeWrapped(pdf *gopdf.GoPdf, text string, lineHeight float64) {
	lines, _ := pdf.SplitText(text, 500)
	for _, l := range lines {
		pdf.Cell(nil, l)
		pdf.Br(lineHeight)
	}
}
