package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"mapmygap/internal/genai"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateControlTextSuccess(t *testing.T) {
	ai := &fakeAI{response: "```\nPurpose\nDrafted policy text.\n```"}
	r := newTestRouter(ai)

	w := postJSON(t, r, "/generate-control-text", gin.H{
		"originalDocument": "existing doc",
		"targetControl":    "Access reviews shall occur quarterly.",
		"framework":        "ISO_27001",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// fences stripped before the text reaches the client
	assert.Equal(t, "Purpose\nDrafted policy text.", resp["generatedText"])
	assert.Contains(t, ai.prompts[0], "Access reviews shall occur quarterly.")
}

func TestGenerateControlTextValidation(t *testing.T) {
	ai := &fakeAI{}
	r := newTestRouter(ai)

	w := postJSON(t, r, "/generate-control-text", gin.H{"originalDocument": "doc"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, r, "/generate-control-text", gin.H{
		"originalDocument": "doc",
		"targetControl":    "control",
		"framework":        "NOT_A_FRAMEWORK",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, ai.calls)
}

func TestGenerateControlTextErrorTaxonomy(t *testing.T) {
	cases := []struct {
		kind   genai.ErrorKind
		status int
	}{
		{genai.KindTimeout, http.StatusRequestTimeout},
		{genai.KindAuthFailed, http.StatusUnauthorized},
		{genai.KindRateLimited, http.StatusTooManyRequests},
		{genai.KindUnavailable, http.StatusServiceUnavailable},
		{genai.KindContentBlocked, http.StatusBadRequest},
		{genai.KindServer, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			ai := &fakeAI{err: &genai.APIError{Kind: tc.kind, Model: "m", Message: "boom"}}
			r := newTestRouter(ai)

			w := postJSON(t, r, "/generate-control-text", gin.H{
				"originalDocument": "doc",
				"targetControl":    "the control",
				"framework":        "SOC_2",
			})
			assert.Equal(t, tc.status, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
			assert.NotEmpty(t, resp["details"])
			assert.NotEmpty(t, resp["suggestion"])
			// the locally generated template always rides along
			assert.Contains(t, resp["generatedText"], "the control")
			assert.Contains(t, resp["generatedText"], "Purpose")
		})
	}
}
