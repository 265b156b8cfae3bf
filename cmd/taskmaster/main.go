package main

import (
	"fmt"
	"os"

	"taskmaster/internal/config"
	"taskmaster/internal/logging"
	"taskmaster/internal/storage"
	"taskmaster/internal/todo"
	"taskmaster/internal/ui"
)

func main() {
	configPath := config.ResolveConfigPath()
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		fmt.Printf("failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger.Info("starting", "config", configPath, "db", cfg.DBPath)

	var slots todo.Storage
	if cfg.DBPath == config.MemoryDBPath {
		slots = storage.NewMemory(cfg.StorageQuota)
	} else {
		db, err := storage.Open(cfg.DBPath, cfg.StorageQuota)
		if err != nil {
			fmt.Printf("failed to open database: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()
		slots = db
	}

	// A non-nil startup error is a *todo.ResetError; the store is usable
	// and the UI shows it as a warning.
	store, startup := todo.Open(slots, cfg.StorageKey, todo.WithLogger(logger))

	if err := ui.Run(store, cfg, logger, startup); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}
