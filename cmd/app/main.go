package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/taskboard-api/internal/config"
	"github.com/BuzzLyutic/taskboard-api/internal/handler"
	"github.com/BuzzLyutic/taskboard-api/internal/repo"
	"github.com/BuzzLyutic/taskboard-api/internal/service"
	"github.com/BuzzLyutic/taskboard-api/internal/worker"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.Load()

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to Database.")
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Failed to ping the Database.")
	}
	logger.Info("Successfully connected to the Database!")

	boardRepo := repo.NewBoardRepo(pool)
	columnRepo := repo.NewColumnRepo(pool)
	cardRepo := repo.NewCardRepo(pool)
	projectRepo := repo.NewProjectRepo(pool)
	specRepo := repo.NewSpecRepo(pool)
	activityRepo := repo.NewActivityRepo(pool)
	commentRepo := repo.NewCommentRepo(pool)

	activityLog := service.NewActivityLogger(activityRepo)
	projectService := service.NewProjectService(projectRepo, specRepo)
	cardService := service.NewCardService(cardRepo, columnRepo, projectService, activityLog)
	columnService := service.NewColumnService(columnRepo)
	boardService := service.NewBoardService(boardRepo, columnRepo, cardRepo, projectRepo)
	activityService := service.NewActivityService(activityRepo)
	commentService := service.NewCommentService(commentRepo)

	boardHandler := handler.NewBoardHandler(boardService, logger)
	cardHandler := handler.NewCardHandler(cardService, logger, cfg.DefaultActor)
	columnHandler := handler.NewColumnHandler(columnService, logger)
	projectHandler := handler.NewProjectHandler(projectService, logger)
	activityHandler := handler.NewActivityHandler(activityService, logger)
	commentHandler := handler.NewCommentHandler(commentService, logger, cfg.DefaultActor)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"ok"}`)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/board", boardHandler.Get)

		r.Route("/cards", func(r chi.Router) {
			r.Post("/", cardHandler.Create)
			r.Patch("/", cardHandler.Patch)
			r.Get("/{id}/activity", activityHandler.List)
			r.Get("/{id}/comments", commentHandler.List)
			r.Post("/{id}/comments", commentHandler.Create)
			r.Patch("/{id}/comments", commentHandler.Update)
		})

		r.Route("/columns", func(r chi.Router) {
			r.Post("/", columnHandler.Create)
			r.Patch("/", columnHandler.Patch)
			r.Delete("/", columnHandler.Delete)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Post("/", projectHandler.Create)
			r.Post("/{id}/key", projectHandler.AllocateKey)
		})

		r.Post("/project-builder", projectHandler.SaveBuilder)
	})

	sweeper := worker.NewSweeper(pool, logger, cfg.SweepInterval)
	sweeper.Start(context.Background())

	srv := http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server started at ", zap.String("port", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed: ", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sweeper.Stop()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Shutdown error: ", zap.Error(err))
	}
	logger.Info("Server stopped succsessfully!")
}
