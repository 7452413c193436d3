package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TestGoogleAI verifies provider connectivity and reports which parts
// of the AI configuration are present. Names only, never values.
func (a *API) TestGoogleAI(c *gin.Context) {
	envReport := gin.H{
		"apiKeyConfigured":      a.Cfg.AIAPIKey != "",
		"wifProjectConfigured":  a.Cfg.WIFProjectNumber != "",
		"wifPoolConfigured":     a.Cfg.WIFPoolID != "",
		"wifProviderConfigured": a.Cfg.WIFProviderID != "",
		"primaryModel":          a.Cfg.AIPrimaryModel,
		"fallbackModel":         a.Cfg.AIFallbackModel,
	}

	pinger, ok := a.AI.(interface{ Ping(context.Context) error })
	if !ok {
		c.JSON(http.StatusOK, gin.H{"reachable": false, "env": envReport, "error": "client does not support ping"})
		return
	}
	if err := pinger.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusOK, gin.H{"reachable": false, "env": envReport, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reachable": true, "env": envReport})
}
