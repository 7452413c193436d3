package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"mapmygap/internal/analysis"
	"mapmygap/internal/catalog"
	"mapmygap/internal/database"
	"mapmygap/internal/logger"
	"mapmygap/internal/metrics"
	"mapmygap/internal/middleware"
	"mapmygap/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type analyzeRequest struct {
	FileContent string `json:"fileContent"`
	Framework   string `json:"framework"`
}

// Analyze runs a full gap analysis on already-extracted document text.
func (a *API) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fileContent and framework are required"})
		return
	}
	if strings.TrimSpace(req.FileContent) == "" || req.Framework == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fileContent and framework are required"})
		return
	}

	fw, ok := catalog.Get(req.Framework)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported framework: " + req.Framework})
		return
	}

	result := a.runAnalysis(c.Request.Context(), req.FileContent, fw, nil)
	a.recordHistory(c, fw.ID, "", result)
	c.JSON(http.StatusOK, providerEnvelope(result))
}

// runAnalysis is the shared pipeline behind /analyze and
// /upload-analyze: prompt → model → normalize, with the deterministic
// catalog fallback on any AI or parse failure. It always produces a
// structurally valid, scored result.
func (a *API) runAnalysis(ctx context.Context, doc string, fw *catalog.Framework, categories []string) analysis.Result {
	prompt := analysis.BuildAnalysisPrompt(doc, fw, categories)

	outcome := "ai"
	var cats []analysis.CategoryResult

	start := time.Now()
	raw, err := a.AI.Generate(ctx, prompt, a.Cfg.AnalysisTimeout)
	metrics.AILatency.Observe(time.Since(start).Seconds())

	if err == nil {
		cats, err = analysis.Normalize(raw)
	}
	if err != nil {
		logger.L().Warn("analysis fell back to catalog defaults",
			zap.String("framework", fw.ID),
			zap.Error(err))
		metrics.AIRequests.WithLabelValues("analysis", "error").Inc()
		cats = analysis.FallbackResult(fw, categories)
		outcome = "fallback"
	} else {
		metrics.AIRequests.WithLabelValues("analysis", "ok").Inc()
	}
	metrics.AnalysesTotal.WithLabelValues(fw.ID, outcome).Inc()

	return analysis.Result{Categories: cats, Summary: analysis.Score(cats)}
}

// recordHistory persists the analysis for authenticated users.
// Best-effort and off the request path.
func (a *API) recordHistory(c *gin.Context, frameworkID, filename string, result analysis.Result) {
	userID := middleware.UserID(c)
	if userID == 0 || a.Cfg.HistoryDisabled {
		return
	}
	serialized, err := json.Marshal(result.Categories)
	if err != nil {
		return
	}
	entry := models.HistoryEntry{
		UserID:    userID,
		Framework: frameworkID,
		Filename:  filename,
		Results:   string(serialized),
		Score:     result.Summary.Score,
		Covered:   result.Summary.Covered,
		Partial:   result.Summary.Partial,
		Gaps:      result.Summary.Gaps,
	}
	go database.SaveHistory(entry)
}
