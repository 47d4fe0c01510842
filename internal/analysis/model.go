package analysis

import (
	"time"

	"github.com/google/uuid"

	"symptom-checker/internal/engine"
)

// Analysis wraps one engine result for delivery to the caller. Nothing is
// stored: the id only identifies the response (and names the PDF export).
type Analysis struct {
	ID        uuid.UUID     `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Result    engine.Result `json:"result"`
}

// ConditionSummary is the catalog view exposed to the UI.
type ConditionSummary struct {
	Name        string   `json:"name"`
	Symptoms    []string `json:"symptoms"`
	Severity    string   `json:"severity"`
	IsEmergency bool     `json:"is_emergency"`
	Description string   `json:"description,omitempty"`
}
