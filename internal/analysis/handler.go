package analysis

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"symptom-checker/internal/engine"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	a, err := h.svc.Analyze(r.Context(), in)
	if err != nil {
		if errors.Is(err, engine.ErrMissingInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Analysis failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}

func (h *Handler) HandleAnalyzePDF(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	data, fileName, err := h.svc.AnalyzeToPDF(r.Context(), in)
	if err != nil {
		if errors.Is(err, engine.ErrMissingInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Report generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	w.Write(data)
}

func (h *Handler) HandleSymptoms(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"symptoms": h.svc.Symptoms()})
}

func (h *Handler) HandleConditions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]ConditionSummary{"conditions": h.svc.Conditions()})
}

// decodeInput parses the request body and applies the caller-side required
// field check. The engine itself only rejects a fully blank submission; the
// form contract (symptoms, age, gender, duration) is enforced here.
func (h *Handler) decodeInput(w http.ResponseWriter, r *http.Request) (engine.Input, bool) {
	var in engine.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return in, false
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"symptoms", in.Symptoms},
		{"age", in.Age},
		{"gender", in.Gender},
		{"duration", in.Duration},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		http.Error(w, "missing required input: "+strings.Join(missing, ", "), http.StatusBadRequest)
		return in, false
	}
	return in, true
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/analysis", h.HandleAnalyze)
	r.Post("/analysis/report", h.HandleAnalyzePDF)
	r.Get("/symptoms", h.HandleSymptoms)
	r.Get("/conditions", h.HandleConditions)
}
