// Package handlers implements the JSON API. All handlers hang off API,
// which carries the injected AI client and configuration; nothing here
// holds per-request state.
package handlers

import (
	"encoding/json"

	"mapmygap/internal/analysis"
	"mapmygap/internal/config"
	"mapmygap/internal/genai"

	"github.com/gin-gonic/gin"
)

type API struct {
	AI  genai.Invoker
	Cfg *config.Config
}

func New(ai genai.Invoker, cfg *config.Config) *API {
	return &API{AI: ai, Cfg: cfg}
}

// providerEnvelope wraps an analysis result in the AI provider's native
// response shape. The UI parses one envelope regardless of whether the
// result came from the model or the fallback path.
func providerEnvelope(result analysis.Result) gin.H {
	text, _ := json.Marshal(result)
	return gin.H{
		"candidates": []gin.H{
			{
				"content": gin.H{
					"parts": []gin.H{
						{"text": string(text)},
					},
				},
			},
		},
	}
}
