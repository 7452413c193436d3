package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"mapmygap/internal/analysis"
	"mapmygap/internal/database"
	"mapmygap/internal/middleware"

	"github.com/gin-gonic/gin"
)

const historyPageSize = 10

type historyItem struct {
	ID        uint                      `json:"id"`
	Framework string                    `json:"framework"`
	Filename  string                    `json:"filename"`
	Results   []analysis.CategoryResult `json:"results"`
	Summary   analysis.Summary          `json:"summary"`
	CreatedAt string                    `json:"created_at"`
}

// ListHistory returns the user's ten most recent analyses, newest first.
func (a *API) ListHistory(c *gin.Context) {
	userID := middleware.UserID(c)

	entries, err := database.RecentHistory(userID, historyPageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}

	items := make([]historyItem, 0, len(entries))
	for _, e := range entries {
		var cats []analysis.CategoryResult
		if err := json.Unmarshal([]byte(e.Results), &cats); err != nil {
			// skip rows with unreadable payloads rather than failing the list
			continue
		}
		items = append(items, historyItem{
			ID:        e.ID,
			Framework: e.Framework,
			Filename:  e.Filename,
			Results:   cats,
			Summary: analysis.Summary{
				Total:   e.Covered + e.Partial + e.Gaps,
				Covered: e.Covered,
				Partial: e.Partial,
				Gaps:    e.Gaps,
				Score:   e.Score,
			},
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, gin.H{"history": items})
}

// DeleteHistory removes one of the user's own entries.
func (a *API) DeleteHistory(c *gin.Context) {
	userID := middleware.UserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid history id"})
		return
	}

	if err := database.DeleteHistory(userID, uint(id)); err != nil {
		if database.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "history entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete history entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
