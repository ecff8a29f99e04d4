package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/DUBIX17/Dubix-sophia/adapters/hasher"
	"github.com/DUBIX17/Dubix-sophia/adapters/history"
	httpadapter "github.com/DUBIX17/Dubix-sophia/adapters/http"
	"github.com/DUBIX17/Dubix-sophia/adapters/llm"
	"github.com/DUBIX17/Dubix-sophia/config"
	"github.com/DUBIX17/Dubix-sophia/usecase"
	"github.com/DUBIX17/Dubix-sophia/utils/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// a missing .env is fine; PORT may come from the real environment
	_ = gotenv.Load()

	cfg, err := config.New()
	if err != nil {
		log.L().Fatal("loading config", zap.Error(err))
	}

	geminiLlm := llm.NewGeminiClient(llm.GeminiConfig{})
	svc := usecase.NewChatService(geminiLlm, history.NewBuffer(history.DefaultCapacity), hasher.New())
	e := httpadapter.NewServer(httpadapter.NewProxyHandler(svc))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.L().Info("starting server",
			zap.String("addr", cfg.Address()),
			zap.String("endpoint", "GET "+httpadapter.ProxyPath),
			zap.String("model", llm.DefaultModel))
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.L().Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.L().Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.L().Error("graceful shutdown", zap.Error(err))
	}
	_ = log.L().Sync()
}
