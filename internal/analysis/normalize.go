package analysis

import (
	"bytes"
	"encoding/json"
	"strings"
)

// rawControl mirrors one model-emitted control entry before validation.
type rawControl struct {
	ID             string `json:"id"`
	Control        string `json:"control"`
	Status         string `json:"status"`
	Details        string `json:"details"`
	Recommendation string `json:"recommendation"`
}

// rawCategory mirrors one model-emitted category before validation.
// Results stays raw so a non-array value is detected, not coerced.
type rawCategory struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Results     json.RawMessage `json:"results"`
}

// Normalize turns raw model text into the canonical category list. It
// accepts exactly the three shapes real models have been observed to
// return: a bare category array, {"categories":[...]}, and
// {"categories":{...}} with a single category object. Anything else is
// rejected. Malformed control entries are skipped, never fatal.
func Normalize(raw string) ([]CategoryResult, error) {
	payload, ok := extractJSON(stripFences(raw))
	if !ok {
		return nil, ErrMalformedResponse
	}

	var cats []rawCategory
	switch firstByte(payload) {
	case '[':
		if err := json.Unmarshal(payload, &cats); err != nil {
			return nil, ErrMalformedResponse
		}
	case '{':
		var wrapper struct {
			Categories json.RawMessage `json:"categories"`
		}
		if err := json.Unmarshal(payload, &wrapper); err != nil {
			return nil, ErrMalformedResponse
		}
		switch firstByte(wrapper.Categories) {
		case '[':
			if err := json.Unmarshal(wrapper.Categories, &cats); err != nil {
				return nil, ErrMalformedResponse
			}
		case '{':
			// single category object, wrap into a one-element list
			var one rawCategory
			if err := json.Unmarshal(wrapper.Categories, &one); err != nil {
				return nil, ErrMalformedResponse
			}
			cats = []rawCategory{one}
		default:
			return nil, ErrUnrecognizedStructure
		}
	default:
		return nil, ErrUnrecognizedStructure
	}

	out := make([]CategoryResult, 0, len(cats))
	for _, rc := range cats {
		cat := CategoryResult{
			Name:        rc.Name,
			Description: rc.Description,
			Results:     []ControlResult{},
		}
		var entries []rawControl
		if err := json.Unmarshal(rc.Results, &entries); err != nil {
			// category without a usable results array: keep it empty
			out = append(out, cat)
			continue
		}
		for _, e := range entries {
			status, err := ParseStatus(e.Status)
			if err != nil {
				continue
			}
			cat.Results = append(cat.Results, ControlResult{
				ID:             e.ID,
				Control:        e.Control,
				Status:         status,
				Details:        e.Details,
				Recommendation: e.Recommendation,
			})
		}
		out = append(out, cat)
	}
	return out, nil
}

// stripFences removes a surrounding markdown code fence if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// extractJSON locates the first balanced top-level JSON object or array
// in s via brace matching, ignoring braces inside string literals.
func extractJSON(s string) ([]byte, bool) {
	start := -1
	var open, close byte
	for i := 0; i < len(s); i++ {
		if s[i] == '{' || s[i] == '[' {
			start = i
			open = s[i]
			if open == '{' {
				close = '}'
			} else {
				close = ']'
			}
			break
		}
	}
	if start < 0 {
		return nil, false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return []byte(s[start : i+1]), true
			}
		}
	}
	return nil, false
}

func firstByte(raw json.RawMessage) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
