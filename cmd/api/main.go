package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"dcf_valuation/pkg/api/valuation"
	"dcf_valuation/pkg/config"
)

func main() {
	// Load environment variables
	godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Printf("[FATAL] Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfgPath := os.Getenv("DCF_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/dcf.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.HTTPPort = p
		}
	}

	mux := http.NewServeMux()
	valuation.NewHandler(logger, cfg).Register(mux)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("API server starting",
		zap.String("addr", addr),
		zap.Int("configured_scenarios", len(cfg.Scenarios)))
	logger.Info("endpoints registered",
		zap.Strings("routes", []string{
			"POST /api/valuation",
			"POST /api/valuation/sensitivity",
			"POST /api/valuation/scenarios",
		}))

	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
