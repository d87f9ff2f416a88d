package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/joho/godotenv"

	"github.com/rgoodwin/quoteforge/internal/changeorder"
	changeOrderStore "github.com/rgoodwin/quoteforge/internal/changeorder/store"
	"github.com/rgoodwin/quoteforge/internal/client"
	clientStore "github.com/rgoodwin/quoteforge/internal/client/store"
	"github.com/rgoodwin/quoteforge/internal/company"
	companyStore "github.com/rgoodwin/quoteforge/internal/company/store"
	"github.com/rgoodwin/quoteforge/internal/config"
	"github.com/rgoodwin/quoteforge/internal/database"
	forgeHttp "github.com/rgoodwin/quoteforge/internal/http"
	changeOrderHandler "github.com/rgoodwin/quoteforge/internal/http/changeorder"
	clientHandler "github.com/rgoodwin/quoteforge/internal/http/client"
	companyHandler "github.com/rgoodwin/quoteforge/internal/http/company"
	jobHandler "github.com/rgoodwin/quoteforge/internal/http/job"
	"github.com/rgoodwin/quoteforge/internal/http/portal"
	quoteHandler "github.com/rgoodwin/quoteforge/internal/http/quote"
	templateHandler "github.com/rgoodwin/quoteforge/internal/http/template"
	voiceHandler "github.com/rgoodwin/quoteforge/internal/http/voice"
	"github.com/rgoodwin/quoteforge/internal/job"
	jobStore "github.com/rgoodwin/quoteforge/internal/job/store"
	"github.com/rgoodwin/quoteforge/internal/mail"
	"github.com/rgoodwin/quoteforge/internal/notify"
	"github.com/rgoodwin/quoteforge/internal/pdf"
	"github.com/rgoodwin/quoteforge/internal/quote"
	quoteStore "github.com/rgoodwin/quoteforge/internal/quote/store"
	"github.com/rgoodwin/quoteforge/internal/storage"
	"github.com/rgoodwin/quoteforge/internal/template"
	templateStore "github.com/rgoodwin/quoteforge/internal/template/store"
	"github.com/rgoodwin/quoteforge/internal/voice"
	voiceStore "github.com/rgoodwin/quoteforge/internal/voice/store"
	"github.com/rgoodwin/quoteforge/internal/worker"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db, logger); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		slog.Error("failed to load aws config", "error", err)
		os.Exit(1)
	}

	pool := worker.NewPool(cfg.Worker.Size, cfg.Worker.QueueDepth, logger)

	var (
		audioStore = storage.NewS3Store(awsCfg, cfg.AWS.AudioBucket)
		mailer     = mail.New(awsCfg, cfg.Mail.FromEmail, logger)
		converter  = pdf.NewGotenbergClient(cfg.PDF.GotenbergURL)
		renderer   = pdf.NewRenderer(converter)
	)

	var (
		companyService  = company.NewService(companyStore.New(db))
		clientService   = client.NewService(clientStore.New(db))
		templateService = template.NewService(templateStore.New(db))
		jobService      = job.NewService(jobStore.New(db))
		quoteService    = quote.NewService(quoteStore.New(db), templateService, jobService)
		coService       = changeorder.NewService(changeOrderStore.New(db), jobService, companyService)
	)

	voiceProcessor := voice.NewProcessor(
		voiceStore.New(db),
		audioStore,
		voice.NewDeepgramClient("", cfg.Deepgram.APIKey),
		voice.NewOpenAIClient("", cfg.OpenAI.APIKey),
		logger,
	)
	voiceService := voice.NewService(voiceStore.New(db), audioStore, voiceProcessor, pool, logger)

	notifier := notify.New(mailer, pool, companyService, clientService, cfg.Portal.BaseURL, logger)
	sessions := portal.NewSessions([]byte(cfg.Portal.SessionSecret))

	var (
		companyH     = companyHandler.NewHandler(companyService)
		clientH      = clientHandler.NewHandler(clientService)
		templateH    = templateHandler.NewHandler(templateService)
		quoteH       = quoteHandler.NewHandler(quoteService, jobService, companyService, clientService, renderer, notifier)
		jobH         = jobHandler.NewHandler(jobService)
		changeOrderH = changeOrderHandler.NewHandler(coService, jobService, companyService, renderer, notifier)
		voiceH       = voiceHandler.NewHandler(voiceService)
		portalH      = portal.NewHandler(quoteService, coService, jobService, clientService, sessions, notifier)
	)

	router := forgeHttp.New(companyH, clientH, templateH, quoteH, jobH, changeOrderH, voiceH, portalH, cfg.Server.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("starting server", "addr", server.Addr)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown", "error", err)
	}

	if err := pool.Shutdown(shutdownCtx); err != nil {
		slog.Error("worker shutdown", "error", err)
	}
}
