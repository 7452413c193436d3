package main

import (
	"fmt"
	"os"

	"mapmygap/internal/config"
	"mapmygap/internal/database"
	"mapmygap/internal/genai"
	"mapmygap/internal/logger"
	"mapmygap/internal/server"
)

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"), os.Getenv("GIN_MODE") != "release")
	defer logger.Sync()

	cfg := config.Load()
	if !cfg.HistoryDisabled {
		database.Init(cfg.DBDSN, cfg.AdminUsername, cfg.AdminPassword)
	}

	ai := genai.New(cfg.AIEndpoint, cfg.AIAPIKey, cfg.Models())
	r := server.NewRouter(cfg, ai)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logger.S().Infof("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.S().Fatalf("server error: %v", err)
	}
}
