package main

import (
	"fmt"
	"os"
	"time"

	auction "auction-house/internal/auctionService"
	"auction-house/internal/config"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	"auction-house/utils"
)

func main() {

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	db, err := repository.Connect(cfg.DB)
	if err != nil {
		utils.Fatal("failed to connect to database", map[string]any{"driver": cfg.DB.Driver, "error": err.Error()})
	}
	if err := repository.Migrate(db); err != nil {
		utils.Fatal("failed to migrate schema", map[string]any{"error": err.Error()})
	}

	repo := repository.NewGormRepo(db)
	auctionSvc := auction.NewAuctionService(repo, time.Duration(cfg.Token.TTLHours)*time.Hour)

	router := server.SetupRouter(auctionSvc)

	fmt.Printf("Starting auction server on %s...\n", cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
