package genai

import "fmt"

// ErrorKind classifies a provider failure so callers can switch on it
// instead of sniffing message strings.
type ErrorKind int

const (
	KindServer ErrorKind = iota
	KindTimeout
	KindAuthFailed
	KindRateLimited
	KindUnavailable
	KindContentBlocked
)

func (k ErrorKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindAuthFailed:
		return "auth_failed"
	case KindRateLimited:
		return "rate_limited"
	case KindUnavailable:
		return "unavailable"
	case KindContentBlocked:
		return "content_blocked"
	default:
		return "server_error"
	}
}

// APIError is the typed failure returned by the invocation layer after
// every candidate model has been tried.
type APIError struct {
	Kind    ErrorKind
	Model   string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("genai: %s (model=%s): %s", e.Kind, e.Model, e.Message)
}

// KindOf extracts the error kind, defaulting to KindServer for errors
// that did not originate in this package.
func KindOf(err error) ErrorKind {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Kind
	}
	return KindServer
}
