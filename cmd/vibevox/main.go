package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"vibevox/internal/api"
	"vibevox/pkg/activity"
	"vibevox/pkg/config"
	"vibevox/pkg/db"
	"vibevox/pkg/langid"
	"vibevox/pkg/llm"
	"vibevox/pkg/llm/gemini"
	"vibevox/pkg/logging"
	"vibevox/pkg/ratelimit"
	"vibevox/pkg/share"
	"vibevox/pkg/speech"
	"vibevox/pkg/tracker"
	"vibevox/pkg/translit"
	"vibevox/pkg/tts"
	"vibevox/pkg/tts/google"
	"vibevox/pkg/version"
)

const configPath = "configs/vibevox.yaml"

var initConfig = flag.Bool("init-config", false, "Generate default config file and exit")

func main() {
	flag.Parse()

	// Handle --init-config flag
	if *initConfig {
		if err := config.GenerateDefault(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Config file generated: " + configPath)
		return
	}

	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL ERROR: Application failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	appCfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cleanupLogs, err := logging.Init(&appCfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer cleanupLogs()

	slog.Info("Vibevox started", "version", version.Version)

	dbConn, err := db.Init(appCfg.DB.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer dbConn.Close()

	tr := tracker.New()

	llmProv, err := initLLM(appCfg, tr)
	if err != nil {
		return fmt.Errorf("failed to initialize text provider: %w", err)
	}

	ttsProv, err := google.NewProvider(ctx, appCfg.TTS)
	if err != nil {
		return fmt.Errorf("failed to initialize synthesis provider: %w", err)
	}

	pipeline := speech.New(
		langid.New(llmProv, appCfg.Speech.MinDetectLength, appCfg.Speech.DetectSampleLen),
		translit.New(llmProv),
		llmProv,
		tts.NewInvoker(ttsProv, tr),
		appCfg.Speech,
	)

	quotaStore := ratelimit.NewStore(dbConn, appCfg.RateLimit)
	activityLog := activity.NewLogger(dbConn)
	shareStore := share.NewStore(dbConn, appCfg.Speech.MaxInputLength, appCfg.Speech.MaxPromptLength)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	shutdownFunc := func() { quit <- syscall.SIGTERM }

	srv := api.NewServer(appCfg.Server.Address,
		api.NewSpeechHandler(pipeline, quotaStore, activityLog, appCfg.Speech),
		api.NewShareHandler(shareStore),
		api.NewCatalogHandler(),
		api.NewStatsHandler(tr),
		shutdownFunc,
	)
	srv.Handler = loggingMiddleware(srv.Handler)

	return runServerLifecycle(ctx, srv, quit)
}

func initLLM(cfg *config.Config, tr *tracker.Tracker) (llm.Provider, error) {
	if cfg.LLM.Provider == "mock" {
		slog.Warn("Using mock text provider; language detection always returns English")
		return &llm.Mock{Response: "en"}, nil
	}

	if cfg.LLM.Key == "" {
		slog.Warn("No Gemini API key configured; detection, transliteration and styling will be skipped")
		return gemini.NewClient(cfg.LLM, tr)
	}

	client, err := gemini.NewClient(cfg.LLM, tr)
	if err != nil {
		return nil, err
	}

	// Startup diagnostic; a misconfigured model only warns, requests will
	// surface the real error.
	go func() {
		vctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		client.ValidateModel(vctx)
	}()

	return client, nil
}

func runServerLifecycle(ctx context.Context, srv *http.Server, quit chan os.Signal) error {
	slog.Info("Starting server", "addr", srv.Addr)
	serverErrors := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()
	select {
	case <-quit:
		slog.Info("Shutting down server...")
	case <-ctx.Done():
		slog.Info("Context cancelled, shutting down...")
	case err := <-serverErrors:
		return fmt.Errorf("server failed: %w", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Info("Request Processed", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
