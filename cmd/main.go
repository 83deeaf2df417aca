package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"kyc-service/internal/config"
	"kyc-service/internal/database/minio"
	"kyc-service/internal/database/postgres"
	"kyc-service/internal/event"
	"kyc-service/internal/handlers"
	"kyc-service/internal/repository"
	"kyc-service/internal/services"

	"github.com/gin-gonic/gin"
)

func setupLogging() (*os.File, error) {
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		return nil, nil // stderr logging
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return file, nil
}

func main() {
	migrateOnly := flag.Bool("migrate", false, "apply schema migrations and exit")
	flag.Parse()

	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Error setting up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Error connecting to PostgreSQL: %v", err)
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("Error applying migrations: %v", err)
	}
	if *migrateOnly {
		log.Println("migrations applied, exiting")
		return
	}

	minioClient, err := minio.NewMinioClient(cfg.S3Cfg)
	if err != nil {
		log.Fatalf("Error connecting to object storage: %v", err)
	}

	// repositories
	userRepository := repository.NewUserRepository(db)
	documentRepository := repository.NewDocumentRepository(db)
	faceRepository := repository.NewFaceRepository(db)

	// events are best-effort plumbing for the external verification worker;
	// the CRUD API stays up without a broker
	var eventPublisher services.EventPublisher
	var publisherMetrics handlers.PublisherMetrics
	rabbitConn, err := event.ConnectRabbitMQ(cfg.RabbitMQCfg)
	if err != nil {
		log.Printf("RabbitMQ unavailable, events disabled: %v", err)
	} else {
		defer rabbitConn.Close()
		publisher := event.NewKYCPublisher(rabbitConn)
		eventPublisher = publisher
		publisherMetrics = publisher

		resultHandler := event.NewDefaultVerificationResultHandler(documentRepository, faceRepository)
		consumer := event.NewVerificationConsumer(rabbitConn, resultHandler)
		if err := consumer.Start(context.Background()); err != nil {
			log.Printf("Failed to start verification consumer: %v", err)
		}
	}

	// services
	userService := services.NewUserService(userRepository, eventPublisher)
	documentService := services.NewDocumentService(userRepository, documentRepository, minioClient, eventPublisher)
	faceService := services.NewFaceService(userRepository, faceRepository, minioClient, eventPublisher)

	// handlers
	r := gin.Default()
	handlers.NewHealthHandler(db, publisherMetrics).RegisterRoutes(r)
	handlers.NewUserHandler(userService).RegisterRoutes(r)
	handlers.NewDocumentHandler(documentService).RegisterRoutes(r)
	handlers.NewFaceHandler(faceService).RegisterRoutes(r)

	log.Printf("Starting kyc-service on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
