package handlers

import (
	"net/http"
	"strings"
	"time"

	"mapmygap/internal/analysis"
	"mapmygap/internal/catalog"
	"mapmygap/internal/genai"
	"mapmygap/internal/logger"
	"mapmygap/internal/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type controlTextRequest struct {
	OriginalDocument string `json:"originalDocument"`
	TargetControl    string `json:"targetControl"`
	Framework        string `json:"framework"`
}

// GenerateControlText drafts policy language for a single control. On
// provider failure the response carries both the typed error (with a
// status from the error taxonomy) and a locally generated template so
// the UI always has text to render.
func (a *API) GenerateControlText(c *gin.Context) {
	var req controlTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "originalDocument, targetControl and framework are required"})
		return
	}
	if strings.TrimSpace(req.TargetControl) == "" || req.Framework == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "originalDocument, targetControl and framework are required"})
		return
	}

	fw, ok := catalog.Get(req.Framework)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported framework: " + req.Framework})
		return
	}

	prompt := analysis.BuildControlTextPrompt(req.OriginalDocument, req.TargetControl, fw)

	start := time.Now()
	raw, err := a.AI.Generate(c.Request.Context(), prompt, a.Cfg.ControlTimeout)
	metrics.AILatency.Observe(time.Since(start).Seconds())

	if err != nil {
		kind := genai.KindOf(err)
		metrics.AIRequests.WithLabelValues("control_text", kind.String()).Inc()
		logger.L().Warn("control text generation failed",
			zap.String("framework", fw.ID),
			zap.String("kind", kind.String()),
			zap.Error(err))

		status, message, suggestion := controlTextFailure(kind)
		c.JSON(status, gin.H{
			"error":         message,
			"details":       err.Error(),
			"suggestion":    suggestion,
			"generatedText": analysis.FallbackControlText(req.TargetControl, req.OriginalDocument),
		})
		return
	}

	metrics.AIRequests.WithLabelValues("control_text", "ok").Inc()
	c.JSON(http.StatusOK, gin.H{"generatedText": analysis.CleanGeneratedText(raw)})
}

// controlTextFailure maps an invocation error kind to the HTTP status
// and the user-facing message pair for this endpoint.
func controlTextFailure(kind genai.ErrorKind) (status int, message, suggestion string) {
	switch kind {
	case genai.KindTimeout:
		return http.StatusRequestTimeout,
			"The AI service took too long to respond.",
			"Try again, or shorten the document excerpt."
	case genai.KindAuthFailed:
		return http.StatusUnauthorized,
			"The AI service rejected the configured credentials.",
			"Verify the configured API key is valid and has access to the model."
	case genai.KindRateLimited:
		return http.StatusTooManyRequests,
			"The AI service rate limit was reached.",
			"Wait a moment and retry."
	case genai.KindUnavailable:
		return http.StatusServiceUnavailable,
			"The AI service is temporarily unavailable.",
			"Retry shortly; the provider is having issues."
	case genai.KindContentBlocked:
		return http.StatusBadRequest,
			"The AI service declined to process this content.",
			"Rephrase the control or document text and try again."
	default:
		return http.StatusInternalServerError,
			"Control text generation failed.",
			"Retry; if the problem persists, use the template text below as a starting point."
	}
}
