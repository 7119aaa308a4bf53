package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/gameroomchat/gameroom/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg := server.NewConfigFromEnv()
	server.SetConfig(cfg)
	server.StartHub()

	router := server.SetupRoutes()
	httpServer := server.CreateServer(cfg.Port, router)

	go func() {
		if err := server.StartServer(httpServer); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	if err := server.ShutdownServer(httpServer, 10*time.Second); err != nil {
		log.Printf("Forcing exit after shutdown error: %v", err)
	}
	if err := server.GetHub().Shutdown(5 * time.Second); err != nil {
		log.Printf("Hub shutdown incomplete: %v", err)
	}
}
