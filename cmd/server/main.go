package main

import (
	"fmt"
	"log"

	"crediscope/internal/config"
	"crediscope/internal/extract"
	"crediscope/internal/handler"
	"crediscope/internal/letter"
	"crediscope/internal/repository/postgres"
	"crediscope/internal/router"
	"crediscope/internal/service"
	"crediscope/internal/standardize"
	"crediscope/internal/strategy"
	"crediscope/internal/violation"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	creditorRepo := postgres.NewCreditorRepo(db)
	rateRepo := postgres.NewSuccessRateRepo(db)
	analysisRepo := postgres.NewAnalysisRepo(db)

	// Initialize the pipeline
	extractor := extract.NewEngine()
	resolver := standardize.NewResolver(creditorRepo, cfg.Store.Timeout(), cfg.Store.DictionaryTTL())
	detector := violation.NewDetector(nil)
	strategies := strategy.NewEngine(rateRepo, cfg.Store.Timeout())
	letters := letter.NewGenerator()

	// Initialize services
	analysisSvc := service.NewAnalysisService(extractor, resolver, detector, strategies, letters, analysisRepo)

	// Initialize handlers
	reportH := handler.NewReportHandler(analysisSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, reportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
