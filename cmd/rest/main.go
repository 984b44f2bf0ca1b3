package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/bootstrap"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/config"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/model"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/server"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/tracer"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer(cfg.Tracing)
	defer shutdownTracer(context.Background())

	// 3. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}
	if err := model.AutoMigrate(gormDB); err != nil {
		log.Panicf("Unable to migrate database: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Close()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
