package main

import (
	"os"

	"expenses/internal/cli"
	applog "expenses/internal/log"
	"expenses/internal/storage"
	"expenses/internal/tracker"
)

func main() {
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig()
	logger := cli.SetupLogger(cfg.LogLevel)

	logger.Info("Starting expense tracker",
		applog.FieldOperation, applog.OpStartup,
		applog.FieldPath, cfg.DataFile)

	store := storage.NewFileStore(cfg.DataFile, logger)
	console := tracker.NewConsole(os.Stdin, os.Stdout)
	if err := tracker.New(console, store, logger).Run(); err != nil {
		logger.Error("Expense tracker stopped", applog.FieldError, err, applog.FieldPath, cfg.DataFile)
		os.Exit(1)
	}
}
