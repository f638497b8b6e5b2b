package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ustory-be/internal/bootstrap"
	"ustory-be/internal/config"
	"ustory-be/internal/server"
	"ustory-be/internal/tracer"
	"ustory-be/pkg/database"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load Configuration
	cfg := config.Load()
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, database.ParseLogLevel(cfg.Database.LogLevel))
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(ctx, gormDB, cfg)
	defer container.Close()

	shutdownTracer := tracer.InitTracer(ctx, cfg.Tracing, container.Logger)
	defer func() { _ = shutdownTracer(context.Background()) }()

	// 4. Start Background Services
	if container.Subscriber != nil {
		if err := container.NoticeConsumer.Start(ctx, container.Subscriber); err != nil {
			log.Printf("Background Notice Consumer Error: %v", err)
		}
	} else {
		log.Println("[WARN] NATS unavailable, notice consumer not started")
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
