package main

//go:generate swag init

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/anwarkhairul/Usaha-Bersama/config"
	"github.com/anwarkhairul/Usaha-Bersama/db"
	_ "github.com/anwarkhairul/Usaha-Bersama/docs"
	"github.com/anwarkhairul/Usaha-Bersama/handlers"
	"github.com/anwarkhairul/Usaha-Bersama/outbox"
	"github.com/anwarkhairul/Usaha-Bersama/store"
)

// @title           Koperasi Usaha Bersama API
// @version         1.0.0
// @description     Bookkeeping and SHU distribution service for the Usaha Bersama cooperative.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in              header
// @name            Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Configure structured logging
	level := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	// Open the durable store
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// Run migrations
	if err := db.Migrate(database); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Seed the in-memory store from the durable mirror
	memStore := store.New()
	snap, err := db.Load(ctx, database)
	if err != nil {
		slog.Error("failed to load data", "error", err)
		os.Exit(1)
	}
	memStore.Import(snap)
	slog.Info("store seeded from database")

	// Start the replication outbox
	queue := outbox.New(db.NewReplica(database))
	queue.Start(ctx)
	defer queue.Close()

	// Shared dependencies for handlers
	handlers.Store = memStore
	handlers.Queue = queue
	handlers.JWTSecret = []byte(cfg.JWTSecret)
	handlers.AdminEmail = cfg.AdminEmail
	handlers.AdminPassword = cfg.AdminPassword

	// Router setup
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		// Public
		r.Post("/register", handlers.Register)
		r.Post("/login", handlers.Login)

		// Authenticated
		r.Group(func(r chi.Router) {
			r.Use(handlers.Auth)

			r.Get("/me", handlers.Me)
			r.Put("/profile", handlers.UpdateProfile)

			r.Get("/transactions", handlers.ListTransactions)
			r.Post("/transactions", handlers.CreateTransaction)

			r.Get("/products", handlers.ListProducts)
			r.Post("/shop/purchase", handlers.Purchase)

			r.Get("/dashboard", handlers.GetDashboard)
			r.Get("/shu", handlers.GetSHU)
			r.Get("/news", handlers.ListNews)
			r.Get("/settings", handlers.GetSettings)

			r.Get("/notifications", handlers.ListNotifications)
			r.Post("/notifications/{id}/read", handlers.MarkNotificationRead)
			r.Post("/notifications/read-all", handlers.MarkAllNotificationsRead)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(handlers.RequireAdmin)

				r.Put("/transactions/{id}/status", handlers.UpdateTransactionStatus)

				r.Get("/members", handlers.ListMembers)
				r.Put("/members/{id}", handlers.UpdateMember)
				r.Delete("/members/{id}", handlers.DeleteMember)

				r.Post("/products", handlers.CreateProduct)
				r.Put("/products/{id}", handlers.UpdateProduct)
				r.Delete("/products/{id}", handlers.DeleteProduct)

				r.Get("/journal", handlers.ListJournal)
				r.Post("/journal", handlers.CreateJournalEntry)

				r.Put("/shu/config", handlers.UpdateSHUConfig)
				r.Put("/settings", handlers.UpdateSettings)

				r.Post("/news", handlers.CreateNews)
				r.Delete("/news/{id}", handlers.DeleteNews)

				r.Get("/export", handlers.ExportSnapshot)
				r.Post("/import", handlers.ImportSnapshot)
			})
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("server starting", "address", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
