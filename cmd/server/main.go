package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"welltix/config"
	"welltix/internal/database"
	"welltix/internal/handler"
	"welltix/internal/middleware"
	"welltix/internal/repository"
	"welltix/internal/service"
	"welltix/internal/session"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load(".env")

	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	if err := database.MigrateUp(context.Background(), pool, "migrations"); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	sessions := session.NewRedisManager(rdb, cfg.Session.TTL)

	userRepo := repository.NewUserRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	transaksiRepo := repository.NewTransaksiRepository(pool)

	authService := service.NewAuthService(userRepo)
	eventService := service.NewEventService(eventRepo)
	transaksiService := service.NewTransaksiService(transaksiRepo, userRepo)

	router := handler.NewRouter(cfg, sessions, authService, eventService, transaksiService, "web/templates/*.html")

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: middleware.MethodOverride(router),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()
	log.Printf("Server is running on %s", cfg.Server.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}
