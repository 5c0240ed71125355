package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/vaultlog/internal/config"
	"github.com/claude/vaultlog/internal/export"
	"github.com/claude/vaultlog/internal/storage"
	"github.com/claude/vaultlog/internal/store"
	"github.com/claude/vaultlog/internal/units"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	sessionID := flag.String("session", "", "session id to export (default: all sessions)")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

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
	settings := st.Settings()

	if *sessionID != "" {
		sess, err := st.Session(*sessionID)
		if err != nil {
			log.Error("session not found", "id", *sessionID)
			os.Exit(1)
		}
		fmt.Println(export.SummaryText(&sess, settings))
		return
	}

	sessions := st.Sessions()
	if len(sessions) == 0 {
		fmt.Println("no sessions logged yet")
		return
	}
	for i := range sessions {
		if i > 0 {
			fmt.Print("\n────────────────────────────\n\n")
		}
		fmt.Println(export.SummaryText(&sessions[i], settings))
	}
	fmt.Printf("\nPR: %s\n", units.FormatBar(st.PersonalRecord(), settings.Units))
}
