package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lcampos/notedeck/internal/aigen"
	"github.com/lcampos/notedeck/internal/api"
	"github.com/lcampos/notedeck/internal/config"
	"github.com/lcampos/notedeck/internal/db"
	"github.com/lcampos/notedeck/internal/jobs"
	"github.com/lcampos/notedeck/internal/logger"
	"github.com/lcampos/notedeck/internal/realtime"
	"github.com/lcampos/notedeck/internal/repository/sqlite"
	"github.com/lcampos/notedeck/internal/services"
	"github.com/lcampos/notedeck/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.New(logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	logger.SetDefault(log)

	log.Info("notedeck server starting")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("ai_base_url=%s, ai_model=%s", cfg.AIBaseURL, cfg.AIModel)
	log.Debug("cache_retention=%s, sweep_interval=%s", cfg.CacheRetention, cfg.CacheSweepInterval)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer database.Close()

	noteRepo := sqlite.NewNoteRepository(database.DB)
	deckRepo := sqlite.NewDeckRepository(database.DB)
	cardRepo := sqlite.NewCardRepository(database.DB)
	optionRepo := sqlite.NewOptionRepository(database.DB)
	attemptRepo := sqlite.NewAttemptRepository(database.DB)

	persistPool := worker.NewPool(cfg.PersistWorkerCount, cfg.PersistQueueSize)
	queue := jobs.NewWorkerQueue(persistPool, cardRepo, attemptRepo)

	hub := realtime.NewHub()
	genClient := aigen.New(cfg.AIBaseURL, cfg.AIModel, cfg.AITimeout)

	noteService := services.NewNoteService(noteRepo, hub)
	deckService := services.NewDeckService(deckRepo, cardRepo, hub)
	studyService := services.NewStudyService(deckService, queue, hub)
	quizService := services.NewQuizService(deckService, optionRepo, genClient, queue)
	assistService := services.NewAssistService(noteService, genClient, cfg.CacheRetention, cfg.AITimeout, cfg.ContentPrefixLen)

	srv := &api.Server{
		Notes:  noteService,
		Decks:  deckService,
		Study:  studyService,
		Quiz:   quizService,
		Assist: assistService,
		Hub:    hub,
	}

	ctx, cancel := context.WithCancel(context.Background())
	persistPool.Start(ctx)
	assistService.StartSweeping(ctx, cfg.CacheSweepInterval)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	cancel()
	persistPool.Stop()

	log.Info("notedeck server stopped")
}
