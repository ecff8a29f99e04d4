package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/DUBIX17/Dubix-sophia/domain"
)

type geminiRequest struct {
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewGeminiClient(GeminiConfig{BaseURL: srv.URL, Timeout: timeout})
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func TestGenerateSendsContentsAndJoinsParts(t *testing.T) {
	var (
		gotPath string
		gotKey  string
		gotReq  geminiRequest
	)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		if gotKey == "" {
			gotKey = r.URL.Query().Get("key")
		}
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotReq)
		writeJSON(w, http.StatusOK, `{"candidates":[{"content":{"role":"model","parts":[{"text":"Hello "},{"text":"there"}]}}]}`)
	}, time.Second)

	reply, err := client.Generate(context.Background(), "secret-key", []domain.ChatMessage{
		{Role: domain.UserRole, Content: "persona"},
		{Role: domain.ModelRole, Content: "ack"},
		{Role: domain.UserRole, Content: "hi"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello there", reply)

	assert.Equal(t, "secret-key", gotKey)
	assert.True(t, strings.HasSuffix(gotPath, "/v1beta/models/"+DefaultModel+":generateContent"), gotPath)
	require.Len(t, gotReq.Contents, 3)
	assert.Equal(t, "user", gotReq.Contents[0].Role)
	assert.Equal(t, "persona", gotReq.Contents[0].Parts[0].Text)
	assert.Equal(t, "model", gotReq.Contents[1].Role)
	assert.Equal(t, "hi", gotReq.Contents[2].Parts[0].Text)
}

func TestGenerateEmptyReply(t *testing.T) {
	for name, body := range map[string]string{
		"no candidates": `{"candidates":[]}`,
		"missing field": `{}`,
		"non-model":     `{"candidates":[{"content":{"role":"user","parts":[{"text":"echo"}]}}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, body)
			}, time.Second)

			reply, err := client.Generate(context.Background(), "k", []domain.ChatMessage{{Role: domain.UserRole, Content: "hi"}})
			require.NoError(t, err)
			assert.Empty(t, reply)
		})
	}
}

func TestGenerateUpstreamFailures(t *testing.T) {
	tests := map[string]http.HandlerFunc{
		"forbidden": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusForbidden, `{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`)
		},
		"server error": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusInternalServerError, `{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`)
		},
		"malformed body": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `not json`)
		},
	}
	for name, handler := range tests {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, handler, time.Second)

			reply, err := client.Generate(context.Background(), "k", []domain.ChatMessage{{Role: domain.UserRole, Content: "hi"}})
			require.Error(t, err)
			assert.Empty(t, reply)

			var upErr *domain.UpstreamError
			require.True(t, errors.As(err, &upErr), "got %T", err)
			assert.False(t, upErr.Timeout())
		})
	}
}

func TestGenerateTimeout(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// the server only notices the disconnect once the body is consumed
		io.Copy(io.Discard, r.Body)
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}, 50*time.Millisecond)
	// runs before the server's Close registered in newTestClient
	t.Cleanup(func() { close(release) })

	_, err := client.Generate(context.Background(), "k", []domain.ChatMessage{{Role: domain.UserRole, Content: "hi"}})

	var upErr *domain.UpstreamError
	require.True(t, errors.As(err, &upErr), "got %T: %v", err, err)
	assert.True(t, upErr.Timeout())
}

func TestNewGeminiClientDefaults(t *testing.T) {
	c := NewGeminiClient(GeminiConfig{})
	assert.Equal(t, DefaultBaseURL, c.cfg.BaseURL)
	assert.Equal(t, DefaultModel, c.cfg.Model)
	assert.Equal(t, DefaultAPIVersion, c.cfg.APIVersion)
	assert.Equal(t, DefaultTimeout, c.cfg.Timeout)
	assert.NotNil(t, c.cfg.HTTPClient)
}

func TestReplyText(t *testing.T) {
	assert.Empty(t, replyText(nil))
	assert.Empty(t, replyText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{}},
	}))
	assert.Equal(t, "ab", replyText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: genai.RoleModel, Parts: []*genai.Part{{Text: "a"}, nil, {Text: "b"}}}},
			{Content: &genai.Content{Role: genai.RoleModel, Parts: []*genai.Part{{Text: "ignored"}}}},
		},
	}))
}

type recordingTransport struct {
	hosts []string
}

func (rt *recordingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	rt.hosts = append(rt.hosts, r.URL.Host)
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(strings.NewReader(`{"candidates":[{"content":{"role":"model","parts":[{"text":"official"}]}}]}`)),
		Request:    r,
	}, nil
}

func TestGenerateIgnoresBaseURLFromEnvironment(t *testing.T) {
	var elsewhere atomic.Int32
	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		elsewhere.Add(1)
		writeJSON(w, http.StatusOK, `{"candidates":[{"content":{"role":"model","parts":[{"text":"wrong host"}]}}]}`)
	}))
	t.Cleanup(other.Close)
	t.Setenv("GOOGLE_GEMINI_BASE_URL", other.URL)

	transport := &recordingTransport{}
	client := NewGeminiClient(GeminiConfig{HTTPClient: &http.Client{Transport: transport}})

	reply, err := client.Generate(context.Background(), "caller-key", []domain.ChatMessage{{Role: domain.UserRole, Content: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, "official", reply)
	assert.Equal(t, []string{"generativelanguage.googleapis.com"}, transport.hosts)
	assert.Zero(t, elsewhere.Load())
}
