package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mapmygap/internal/analysis"
	"mapmygap/internal/catalog"
	"mapmygap/internal/config"
	"mapmygap/internal/genai"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAI struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (f *fakeAI) Generate(ctx context.Context, prompt string, timeout time.Duration) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newTestRouter(ai genai.Invoker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		SessionSecret:   "test-secret",
		HistoryDisabled: true,
		AnalysisTimeout: time.Second,
		ControlTimeout:  time.Second,
		AIPrimaryModel:  "primary",
		AIFallbackModel: "fallback",
	}
	api := New(ai, cfg)

	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte(cfg.SessionSecret))))
	r.POST("/analyze", api.Analyze)
	r.POST("/upload-analyze", api.UploadAnalyze)
	r.POST("/generate-control-text", api.GenerateControlText)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeEnvelope pulls the analysis result out of the provider-shaped
// response wrapper.
func decodeEnvelope(t *testing.T, body []byte) analysis.Result {
	t.Helper()
	var envelope struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.Len(t, envelope.Candidates, 1)
	require.Len(t, envelope.Candidates[0].Content.Parts, 1)

	var result analysis.Result
	require.NoError(t, json.Unmarshal([]byte(envelope.Candidates[0].Content.Parts[0].Text), &result))
	return result
}

const modelResponse = `{"categories":[
	{"name":"Identify","description":"d","results":[
		{"id":"ID.AM-1","control":"c1","status":"covered","details":"x","recommendation":"r"},
		{"id":"ID.AM-2","control":"c2","status":"partial","details":"y","recommendation":"r"},
		{"id":"ID.RA-1","control":"c3","status":"gap","details":"z","recommendation":"r"}
	]}
]}`

func TestAnalyzeEmptyDocument(t *testing.T) {
	ai := &fakeAI{}
	r := newTestRouter(ai)

	w := postJSON(t, r, "/analyze", gin.H{"fileContent": "", "framework": "NIST_CSF"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, ai.calls, "validation failures must not reach the AI layer")
}

func TestAnalyzeMissingFramework(t *testing.T) {
	ai := &fakeAI{}
	r := newTestRouter(ai)

	w := postJSON(t, r, "/analyze", gin.H{"fileContent": "doc"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, ai.calls)
}

func TestAnalyzeUnknownFramework(t *testing.T) {
	ai := &fakeAI{}
	r := newTestRouter(ai)

	w := postJSON(t, r, "/analyze", gin.H{"fileContent": "doc", "framework": "HIPAA"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, ai.calls)
	assert.Contains(t, w.Body.String(), "unsupported framework")
}

func TestAnalyzeSuccess(t *testing.T) {
	ai := &fakeAI{response: modelResponse}
	r := newTestRouter(ai)

	w := postJSON(t, r, "/analyze", gin.H{"fileContent": "our policy", "framework": "NIST_CSF"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, ai.calls)
	assert.Contains(t, ai.prompts[0], "our policy")

	result := decodeEnvelope(t, w.Body.Bytes())
	require.Len(t, result.Categories, 1)
	assert.Equal(t, 3, result.Summary.Total)
	assert.Equal(t, 1, result.Summary.Covered)
	assert.Equal(t, 1, result.Summary.Partial)
	assert.Equal(t, 1, result.Summary.Gaps)
	// round(((1+0.5)/3)*100) == 50
	assert.Equal(t, 50, result.Summary.Score)
}

func TestAnalyzeFallsBackOnAIError(t *testing.T) {
	ai := &fakeAI{err: &genai.APIError{Kind: genai.KindTimeout, Message: "deadline"}}
	r := newTestRouter(ai)

	w := postJSON(t, r, "/analyze", gin.H{"fileContent": "doc", "framework": "NIST_CSF"})
	require.Equal(t, http.StatusOK, w.Code, "AI failure still yields a usable analysis")

	fw, _ := catalog.Get("NIST_CSF")
	result := decodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, fw.ControlCount(), result.Summary.Total)
	assert.Equal(t, fw.ControlCount(), result.Summary.Gaps)
	assert.Equal(t, 0, result.Summary.Score)
	for _, c := range result.Categories {
		for _, res := range c.Results {
			assert.Equal(t, analysis.StatusGap, res.Status)
			assert.Equal(t, analysis.FallbackDetails, res.Details)
		}
	}
}

func TestAnalyzeFallsBackOnMalformedResponse(t *testing.T) {
	ai := &fakeAI{response: "Sure! {categories: [}"}
	r := newTestRouter(ai)

	w := postJSON(t, r, "/analyze", gin.H{"fileContent": "doc", "framework": "NIST_CSF"})
	require.Equal(t, http.StatusOK, w.Code)

	fw, _ := catalog.Get("NIST_CSF")
	result := decodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, fw.ControlCount(), result.Summary.Gaps)
	assert.Equal(t, 0, result.Summary.Score)
}

func multipartBody(t *testing.T, fields map[string]string, filename, fileContent string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(fileContent))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadAnalyzeSuccess(t *testing.T) {
	ai := &fakeAI{response: modelResponse}
	r := newTestRouter(ai)

	body, contentType := multipartBody(t, map[string]string{"framework": "NIST_CSF"}, "policy.txt", "uploaded policy text")
	req := httptest.NewRequest(http.MethodPost, "/upload-analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "uploaded policy text", resp["extractedText"])
	assert.Contains(t, ai.prompts[0], "uploaded policy text")

	result := decodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, 3, result.Summary.Total)
}

func TestUploadAnalyzeMissingFile(t *testing.T) {
	ai := &fakeAI{}
	r := newTestRouter(ai)

	body, contentType := multipartBody(t, map[string]string{"framework": "NIST_CSF"}, "", "")
	req := httptest.NewRequest(http.MethodPost, "/upload-analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, ai.calls)
}

func TestUploadAnalyzeUnsupportedExtension(t *testing.T) {
	ai := &fakeAI{}
	r := newTestRouter(ai)

	body, contentType := multipartBody(t, map[string]string{"framework": "NIST_CSF"}, "image.png", "binary")
	req := httptest.NewRequest(http.MethodPost, "/upload-analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported file type")
	assert.Equal(t, 0, ai.calls)
}

func TestUploadAnalyzeScopedCategories(t *testing.T) {
	ai := &fakeAI{response: modelResponse}
	r := newTestRouter(ai)

	body, contentType := multipartBody(t, map[string]string{
		"framework":  "NIST_CSF",
		"categories": `["Protect"]`,
	}, "policy.txt", "text")
	req := httptest.NewRequest(http.MethodPost, "/upload-analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, ai.prompts[0], "- Protect:")
	assert.NotContains(t, ai.prompts[0], "- Identify:")
}

func TestUploadAnalyzeBadCategoriesJSON(t *testing.T) {
	ai := &fakeAI{}
	r := newTestRouter(ai)

	body, contentType := multipartBody(t, map[string]string{
		"framework":  "NIST_CSF",
		"categories": `not json`,
	}, "policy.txt", "text")
	req := httptest.NewRequest(http.MethodPost, "/upload-analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, ai.calls)
}
