package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/vaultlog/internal/config"
	vaultmcp "github.com/claude/vaultlog/internal/mcp"
	"github.com/claude/vaultlog/internal/storage"
	"github.com/claude/vaultlog/internal/store"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (local mode)")
	remoteURL := flag.String("url", "", "base URL of a running VaultLog server (remote mode)")
	flag.Parse()

	// MCP speaks JSON-RPC on stdout; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds vaultmcp.DataSource
	switch {
	case *remoteURL != "":
		ds = vaultmcp.NewHTTPClient(*remoteURL)
		log.Info("MCP remote mode", "url", *remoteURL)
	case *configPath != "":
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		db, err := storage.Open(cfg.Storage.Dir)
		if err != nil {
			log.Error("failed to open storage", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		st, err := store.Open(db, log)
		if err != nil {
			log.Error("failed to load store", "error", err)
			os.Exit(1)
		}
		ds = vaultmcp.NewLocalSource(st)
		log.Info("MCP local mode", "db", db.Path())
	default:
		fmt.Fprintf(os.Stderr, "Usage: vaultlog-mcp -config config.yaml | -url http://host:port\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	s := vaultmcp.New(ds, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
