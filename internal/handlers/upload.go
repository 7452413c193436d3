package handlers

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"mapmygap/internal/catalog"
	"mapmygap/internal/extract"

	"github.com/gin-gonic/gin"
)

// 10MB upload cap, enforced before extraction touches the content
const maxUploadBytes = 10 << 20

// UploadAnalyze accepts a multipart document, extracts its text and
// runs the same analysis pipeline as Analyze. The extracted text is
// echoed back so the UI can reuse it for per-control generation.
func (a *API) UploadAnalyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds the 10MB limit"})
		return
	}

	frameworkID := c.PostForm("framework")
	if frameworkID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "framework is required"})
		return
	}
	fw, ok := catalog.Get(frameworkID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported framework: " + frameworkID})
		return
	}

	// optional scoped analysis: JSON array of category names
	var categories []string
	if rawCats := c.PostForm("categories"); rawCats != "" {
		if err := json.Unmarshal([]byte(rawCats), &categories); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "categories must be a JSON array of names"})
			return
		}
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !supportedExt(ext) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "unsupported file type " + ext + " (supported: " + strings.Join(extract.SupportedExtensions, ", ") + ")",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	defer file.Close()

	text, err := extract.FromUpload(fileHeader.Filename, file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to extract text: " + err.Error()})
		return
	}
	if strings.TrimSpace(text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document contains no extractable text"})
		return
	}

	result := a.runAnalysis(c.Request.Context(), text, fw, categories)
	a.recordHistory(c, fw.ID, fileHeader.Filename, result)

	resp := providerEnvelope(result)
	resp["extractedText"] = text
	c.JSON(http.StatusOK, resp)
}

func supportedExt(ext string) bool {
	for _, s := range extract.SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}
