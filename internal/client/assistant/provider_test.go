package assistant

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/creativesuite/internal/client/models"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDRfake")

var sampleHistory = []models.ChatMessage{
	{Role: models.RoleModel, Text: "Hello! How can I help you today?"},
	{Role: models.RoleUser, Text: "hi"},
	{Role: models.RoleModel, Text: "hello"},
}

// recorder captures the last request body seen by a test server.
type recorder struct {
	mu   sync.Mutex
	path string
	body map[string]any
}

func (r *recorder) last() (string, map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path, r.body
}

func newServer(t *testing.T, rec *recorder, status int, respond func(path string) string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body := map[string]any{}
		_ = json.Unmarshal(b, &body)

		rec.mu.Lock()
		rec.path, rec.body = r.URL.Path, body
		rec.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, respond(r.URL.Path))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func rolesOf(t *testing.T, body map[string]any, key string) []string {
	t.Helper()
	raw, ok := body[key].([]any)
	require.True(t, ok, "request has no %q array", key)
	roles := make([]string, 0, len(raw))
	for _, m := range raw {
		roles = append(roles, m.(map[string]any)["role"].(string))
	}
	return roles
}

// ---- OpenAI ----

func TestOpenAIProvider_Answer(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, rec, http.StatusOK, func(string) string {
		return `{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4o-mini",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"Paris"}}]}`
	})

	p := NewOpenAIProvider(ProviderConfig{APIKey: "test", BaseURL: srv.URL + "/"}, option.WithMaxRetries(0))
	got, err := p.Answer(context.Background(), "capital of France?", sampleHistory)
	require.NoError(t, err)

	assert.Equal(t, "Paris", got)
	path, body := rec.last()
	assert.True(t, strings.HasSuffix(path, "/chat/completions"), path)
	assert.Equal(t, "gpt-4o-mini", body["model"])
	assert.Equal(t, []string{"assistant", "user", "assistant", "user"}, rolesOf(t, body, "messages"))
}

func TestOpenAIProvider_AnswerHTTPError(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, rec, http.StatusInternalServerError, func(string) string {
		return `{"error":{"message":"boom","type":"server_error"}}`
	})

	p := NewOpenAIProvider(ProviderConfig{APIKey: "test", BaseURL: srv.URL + "/"}, option.WithMaxRetries(0))
	_, err := p.Answer(context.Background(), "q", nil)
	require.Error(t, err)
}

func TestOpenAIProvider_GenerateImage(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, rec, http.StatusOK, func(string) string {
		return `{"created":1,"data":[{"b64_json":"` + base64.StdEncoding.EncodeToString(pngBytes) + `"}]}`
	})

	p := NewOpenAIProvider(ProviderConfig{APIKey: "test", BaseURL: srv.URL + "/"}, option.WithMaxRetries(0))
	img, err := p.GenerateImage(context.Background(), "a lion")
	require.NoError(t, err)

	path, body := rec.last()
	assert.True(t, strings.HasSuffix(path, "/images/generations"), path)
	assert.Equal(t, "a lion", body["prompt"])
	assert.Equal(t, "b64_json", body["response_format"])
	assert.Equal(t, pngBytes, img.Data)
	assert.Equal(t, "image/png", img.MIMEType)
}

func TestOpenAIProvider_GenerateImageEmpty(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, rec, http.StatusOK, func(string) string {
		return `{"created":1,"data":[]}`
	})

	p := NewOpenAIProvider(ProviderConfig{APIKey: "test", BaseURL: srv.URL + "/"}, option.WithMaxRetries(0))
	_, err := p.GenerateImage(context.Background(), "a lion")
	require.ErrorIs(t, err, ErrNoImage)
}

// ---- Anthropic ----

func TestAnthropicProvider_Answer(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, rec, http.StatusOK, func(string) string {
		return `{"id":"msg_1","type":"message","role":"assistant","model":"claude-3-5-haiku-latest",
			"content":[{"type":"text","text":"Bon"},{"type":"text","text":"jour"}],
			"stop_reason":"end_turn","usage":{"input_tokens":3,"output_tokens":2}}`
	})

	p := NewAnthropicProvider(ProviderConfig{APIKey: "test", BaseURL: srv.URL + "/"}, anthropicoption.WithMaxRetries(0))
	got, err := p.Answer(context.Background(), "greet me in French", sampleHistory)
	require.NoError(t, err)

	assert.Equal(t, "Bonjour", got)
	path, body := rec.last()
	assert.True(t, strings.HasSuffix(path, "/v1/messages"), path)
	// the leading greeting from the model is dropped
	assert.Equal(t, []string{"user", "assistant", "user"}, rolesOf(t, body, "messages"))
	assert.EqualValues(t, 1024, body["max_tokens"])
}

func TestAnthropicProvider_ImageUnsupported(t *testing.T) {
	p := NewAnthropicProvider(ProviderConfig{APIKey: "test"})
	_, err := p.GenerateImage(context.Background(), "x")
	require.ErrorIs(t, err, ErrImageUnsupported)
}

// ---- Gemini ----

func TestGeminiProvider_Answer(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, rec, http.StatusOK, func(string) string {
		return `{"candidates":[{"content":{"role":"model","parts":[{"text":"Hi "},{"text":"there"}]}}]}`
	})

	p, err := NewGeminiProvider(context.Background(), ProviderConfig{APIKey: "test", BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	got, err := p.Answer(context.Background(), "hello?", sampleHistory)
	require.NoError(t, err)

	assert.Equal(t, "Hi there", got)
	path, body := rec.last()
	assert.Contains(t, path, "gemini-2.5-flash:generateContent")
	assert.Equal(t, []string{"model", "user", "model", "user"}, rolesOf(t, body, "contents"))
}

func TestGeminiProvider_GenerateImage(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, rec, http.StatusOK, func(string) string {
		return `{"candidates":[{"content":{"role":"model","parts":[
			{"text":"here you go"},
			{"inlineData":{"mimeType":"image/png","data":"` + base64.StdEncoding.EncodeToString(pngBytes) + `"}}]}}]}`
	})

	p, err := NewGeminiProvider(context.Background(), ProviderConfig{APIKey: "test", BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	img, err := p.GenerateImage(context.Background(), "a lion")
	require.NoError(t, err)

	assert.Equal(t, pngBytes, img.Data)
	assert.Equal(t, "image/png", img.MIMEType)
	path, body := rec.last()
	assert.Contains(t, path, "gemini-2.5-flash-image:generateContent")
	assert.Contains(t, body["generationConfig"], "responseModalities")
}

func TestGeminiProvider_GenerateImageWithoutInlineData(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, rec, http.StatusOK, func(string) string {
		return `{"candidates":[{"content":{"role":"model","parts":[{"text":"no image for you"}]}}]}`
	})

	p, err := NewGeminiProvider(context.Background(), ProviderConfig{APIKey: "test", BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	_, err = p.GenerateImage(context.Background(), "a lion")
	require.ErrorIs(t, err, ErrNoImage)
}

func TestFirstCandidateParts_NilSafe(t *testing.T) {
	assert.Empty(t, firstCandidateParts(nil))
}
