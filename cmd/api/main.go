package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/Dan9191/blog-service/internal/config"
	"github.com/Dan9191/blog-service/internal/feed"
	"github.com/Dan9191/blog-service/internal/handler"
	"github.com/Dan9191/blog-service/internal/middleware"
	"github.com/Dan9191/blog-service/internal/repository"
	"github.com/Dan9191/blog-service/internal/scheduler"
	"github.com/Dan9191/blog-service/internal/service"
	"github.com/Dan9191/blog-service/internal/utils/email"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		logger.Fatalf("Failed to prepare database schema: %v", err)
	}

	var sender *email.Sender
	var notifier service.Notifier
	if cfg.SMTPEnabled() {
		sender = email.NewSender(cfg, logger)
		notifier = sender
	} else {
		logger.Warn("SMTP not configured, email notifications disabled")
	}

	svc := service.NewService(repo, repo, repo, notifier, logger, cfg)
	feedBuilder := feed.NewBuilder(cfg, logger)
	h := handler.NewHandler(svc, feedBuilder)

	if err := svc.EnsureAdmin(cfg.AdminEmail); err != nil {
		logger.Fatalf("Failed to bootstrap admin: %v", err)
	}

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/users/register", h.Register).Methods("POST")
	r.HandleFunc("/users/login", h.Login).Methods("POST")
	r.HandleFunc("/posts", h.ListPosts).Methods("GET")
	r.HandleFunc("/posts/{id}", h.GetPost).Methods("GET")
	r.HandleFunc("/comments/{postId}", h.GetCommentsByPost).Methods("GET")
	r.HandleFunc("/feed", h.GetFeed).Methods("GET")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.Authenticate(cfg))
	authRouter.HandleFunc("/posts", h.CreatePost).Methods("POST")
	authRouter.HandleFunc("/posts/{id}", h.UpdatePost).Methods("PATCH")
	authRouter.HandleFunc("/posts/{id}", h.DeletePost).Methods("DELETE")
	authRouter.HandleFunc("/comments", h.AddComment).Methods("POST")
	authRouter.HandleFunc("/comments/{id}", h.DeleteComment).Methods("DELETE")

	// Start digest scheduler
	if sender != nil {
		sched := scheduler.NewScheduler(repo, sender, logger)
		if err := sched.Start(cfg.DigestSchedule); err != nil {
			logger.Fatalf("Failed to start scheduler: %v", err)
		}
		defer sched.Stop()
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
