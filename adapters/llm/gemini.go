package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/DUBIX17/Dubix-sophia/domain"
	"github.com/DUBIX17/Dubix-sophia/utils/log"
)

const (
	DefaultBaseURL    = "https://generativelanguage.googleapis.com/"
	DefaultModel      = "gemini-2.5-flash"
	DefaultAPIVersion = "v1beta"
	DefaultTimeout    = 30 * time.Second
)

// GeminiConfig controls where and how long the client talks to Gemini.
// Zero values fall back to the defaults above. BaseURL is always set
// explicitly so genai never picks the host up from the environment.
type GeminiConfig struct {
	Model      string
	APIVersion string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// GeminiClient implements domain.Llm over the Gemini generateContent API.
// The credential arrives with every request, so a genai.Client is built per call.
type GeminiClient struct {
	cfg GeminiConfig
}

var _ domain.Llm = (*GeminiClient)(nil)

func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	return &GeminiClient{cfg: cfg}
}

func (g *GeminiClient) Generate(ctx context.Context, apiKey string, contents []domain.ChatMessage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: g.cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    g.cfg.BaseURL,
			APIVersion: g.cfg.APIVersion,
		},
	})
	if err != nil {
		return "", &domain.UpstreamError{Op: "creating genai client", Err: err}
	}

	start := time.Now()
	resp, err := client.Models.GenerateContent(ctx, g.cfg.Model, toGenai(contents), nil)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("no reply within %s: %w", g.cfg.Timeout, ctx.Err())
		}
		return "", &domain.UpstreamError{Op: "generate content", Err: err}
	}

	text := replyText(resp)
	log.WithCtx(ctx).Debug("gemini replied",
		zap.String("model", g.cfg.Model),
		zap.Int("segments", len(contents)),
		zap.Int("candidates", len(resp.Candidates)),
		zap.Int("reply_len", len(text)),
		zap.Duration("latency", time.Since(start)))
	return text, nil
}

func toGenai(contents []domain.ChatMessage) []*genai.Content {
	out := make([]*genai.Content, len(contents))
	for i, msg := range contents {
		role := genai.RoleModel
		if msg.Role == domain.UserRole {
			role = genai.RoleUser
		}
		out[i] = &genai.Content{
			Role: role,
			Parts: []*genai.Part{
				{Text: msg.Content},
			},
		}
	}
	return out
}

// replyText joins the text parts of the first candidate. A missing candidate
// or one not authored by the model yields "".
func replyText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil || content.Role != genai.RoleModel {
		return ""
	}
	var b strings.Builder
	for _, p := range content.Parts {
		if p != nil {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}
