package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/DUBIX17/Dubix-sophia/domain"
	"github.com/DUBIX17/Dubix-sophia/utils/log"
	"github.com/DUBIX17/Dubix-sophia/utils/text"
	"github.com/DUBIX17/Dubix-sophia/utils/timefmt"
)

// DefaultClockOffset shifts the UTC clock to the assistant's local time (WAT).
const DefaultClockOffset = time.Hour

type ChatService struct {
	llm     domain.Llm
	history domain.History
	hasher  domain.Hasher
	persona Persona
	now     func() time.Time
	offset  time.Duration
}

type Option func(*ChatService)

// WithClock replaces the wall clock used for the time annotation.
func WithClock(now func() time.Time) Option {
	return func(s *ChatService) { s.now = now }
}

func WithClockOffset(offset time.Duration) Option {
	return func(s *ChatService) { s.offset = offset }
}

func WithPersona(p Persona) Option {
	return func(s *ChatService) { s.persona = p }
}

func NewChatService(gen domain.Llm, history domain.History, hasher domain.Hasher, opts ...Option) *ChatService {
	s := &ChatService{
		llm:     gen,
		history: history,
		hasher:  hasher,
		persona: DefaultPersona(),
		now:     time.Now,
		offset:  DefaultClockOffset,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reply relays one prompt upstream and returns the sanitized answer. The
// exchange is remembered only when the upstream call succeeds.
func (s *ChatService) Reply(ctx context.Context, apiKey, prompt string) (string, error) {
	if apiKey == "" || prompt == "" {
		return "", domain.ErrMissingInput
	}

	logger := log.WithCtx(ctx).With(zap.String("credential", s.hasher.Hash([]byte(apiKey))))

	turns := s.history.Snapshot()
	contents := AssemblePayload(s.persona, turns, s.annotate(prompt))

	raw, err := s.llm.Generate(ctx, apiKey, contents)
	if err != nil {
		var upErr *domain.UpstreamError
		if !errors.As(err, &upErr) {
			err = &domain.UpstreamError{Op: "generate", Err: err}
		}
		logger.Warn("upstream call failed", zap.Int("history", len(turns)), zap.Error(err))
		return "", err
	}

	reply := text.Sanitize(raw)
	s.history.Append(domain.Turn{Request: prompt, Response: reply})

	logger.Info("relayed prompt",
		zap.Int("history", len(turns)),
		zap.Int("raw_len", len(raw)),
		zap.Int("reply_len", len(reply)))
	return reply, nil
}

// annotate appends the current local time so the model can answer
// time-related questions. Only the outbound segment carries it.
func (s *ChatService) annotate(prompt string) string {
	return fmt.Sprintf("%s\n\n(current time and date: %s)", prompt, timefmt.Format(s.now().UTC(), s.offset))
}
