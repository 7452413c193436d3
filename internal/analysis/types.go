// Package analysis implements the gap-analysis pipeline: prompt
// construction, normalization of raw model output into the canonical
// result shape, the deterministic fallback, and scoring.
package analysis

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFramework means the framework id is not in the catalog.
	ErrUnsupportedFramework = errors.New("unsupported framework")
	// ErrMalformedResponse means the model output contained no parseable JSON.
	ErrMalformedResponse = errors.New("malformed model response")
	// ErrUnrecognizedStructure means the JSON parsed but matched none of the
	// recognized category shapes.
	ErrUnrecognizedStructure = errors.New("unrecognized response structure")
)

// Status is the assessment of a single control.
type Status string

const (
	StatusCovered Status = "covered"
	StatusPartial Status = "partial"
	StatusGap     Status = "gap"
)

// ParseStatus validates a raw status string. Anything outside the three
// known values is an error, never silently defaulted.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusCovered, StatusPartial, StatusGap:
		return Status(s), nil
	}
	return "", fmt.Errorf("invalid status %q", s)
}

// ControlResult is the assessment of one control within a category.
type ControlResult struct {
	ID             string `json:"id"`
	Control        string `json:"control"`
	Status         Status `json:"status"`
	Details        string `json:"details"`
	Recommendation string `json:"recommendation"`
}

// CategoryResult groups control results under one framework category.
type CategoryResult struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Results     []ControlResult `json:"results"`
}

// Summary is derived from a category list, never mutated independently.
type Summary struct {
	Total   int `json:"total"`
	Covered int `json:"covered"`
	Partial int `json:"partial"`
	Gaps    int `json:"gaps"`
	Score   int `json:"score"`
}

// Result is a complete analysis: the category tree plus its summary.
type Result struct {
	Categories []CategoryResult `json:"categories"`
	Summary    Summary          `json:"summary"`
}
