package controllers

import (
	"MedAnalysis/middleware"
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOllama is a stand-in inference server that counts generate calls.
type fakeOllama struct {
	srv      *httptest.Server
	calls    atomic.Int64
	response string
}

func newFakeOllama(t *testing.T, response string) *fakeOllama {
	t.Helper()
	f := &fakeOllama{response: response}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/generate" {
			f.calls.Add(1)
			json.NewEncoder(w).Encode(map[string]any{
				"model":    "test-model",
				"response": f.response,
				"done":     true,
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"models": []map[string]any{}})
	}))
	t.Cleanup(f.srv.Close)
	t.Setenv("OLLAMA_BASE_URL", f.srv.URL)
	return f
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandlerMiddleware())
	v1 := r.Group("/v1")
	ac := NewAnalysisController()
	v1.POST("/analysis/image", ac.AnalyzeImage)
	v1.POST("/analysis/text", ac.AnalyzeText)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postImage(t *testing.T, r *gin.Engine, field string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, "scan.png")
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/analysis/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAnalyzeTextEmptyInputIssuesNoRequest(t *testing.T) {
	fake := newFakeOllama(t, "unused")
	r := newTestRouter()

	for _, payload := range []string{`{"text":""}`, `{"text":"   \n\t "}`, `{}`} {
		w := postJSON(r, "/v1/analysis/text", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, "payload %q", payload)
	}
	assert.Zero(t, fake.calls.Load())
}

func TestAnalyzeTextReturnsReportUnchanged(t *testing.T) {
	const report = "### 1. Document Analysis\n- Discharge summary\n\n### 2. Clinical Interpretation\n- Stable"
	fake := newFakeOllama(t, report)
	r := newTestRouter()

	w := postJSON(r, "/v1/analysis/text", `{"text":"Impression: no acute findings."}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), fake.calls.Load())

	body := decodeEnvelope(t, w)
	data := body["data"].(map[string]any)
	assert.Equal(t, report, data["report"])
	assert.NotEmpty(t, data["id"])
}

func TestAnalyzeImageSuccess(t *testing.T) {
	fake := newFakeOllama(t, "### 1. Image Type & Region\n- Chest X-ray")
	r := newTestRouter()

	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			img.Set(x, y, color.Gray{Y: uint8(x * 16)})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	w := postImage(t, r, "image", buf.Bytes())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, int64(1), fake.calls.Load())

	data := decodeEnvelope(t, w)["data"].(map[string]any)
	assert.Equal(t, "### 1. Image Type & Region\n- Chest X-ray", data["report"])
}

func TestAnalyzeImageMissingFile(t *testing.T) {
	fake := newFakeOllama(t, "unused")
	r := newTestRouter()

	w := postImage(t, r, "wrong_field", []byte("x"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, fake.calls.Load())
}

func TestAnalyzeImageUndecodableUpload(t *testing.T) {
	fake := newFakeOllama(t, "unused")
	r := newTestRouter()

	w := postImage(t, r, "image", []byte("this is a text file, not an image"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, fake.calls.Load())

	body := decodeEnvelope(t, w)
	assert.Contains(t, body["message"], "could not be decoded")
}

func TestAnalyzeTextUnreachableOllama(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	t.Setenv("OLLAMA_BASE_URL", url)
	r := newTestRouter()

	w := postJSON(r, "/v1/analysis/text", `{"text":"Impression: no acute findings."}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	body := decodeEnvelope(t, w)
	assert.Contains(t, body["message"], "Cannot connect to Ollama")
}
