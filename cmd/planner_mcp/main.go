// Package main runs the planner MCP server over stdio, for local AI assistant use.
// The same server is mounted on the main backend at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/2beens/gymplans/internal/config"
	"github.com/2beens/gymplans/internal/db"
	"github.com/2beens/gymplans/internal/planner/exercises"
	plannermcp "github.com/2beens/gymplans/internal/planner/mcp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout belongs to the MCP transport
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	secrets, err := config.LoadSecrets(ctx)
	if err != nil {
		log.Fatalf("load secrets: %v", err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: secrets.PostgresPassword,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	library := exercises.NewLibraryCache(
		exercises.NewRepo(dbPool),
		cfg.LibraryCacheSizeMB,
		time.Duration(cfg.LibraryCacheTTLSeconds)*time.Second,
		nil,
	)
	server := plannermcp.NewServer(dbPool, library)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
