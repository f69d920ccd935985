// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command gdps-import registers players in bulk from a CSV stream.
//
// Input rows on stdin: name,password,email[,youtube,twitter,twitch]. An
// optional header row starting with "name" is skipped. Accepted accounts are
// written to stdout as id,name,email,youtube,twitter,twitch,verifier; rejected
// rows are reported on stderr by line number and field, never with their
// password.
//
// # Startup Sequence
//
//  1. Initialize structured logger (stderr; stdout carries the CSV).
//  2. Load configuration from environment variables.
//  3. Read input rows.
//  4. Wire the account service and importer.
//  5. Run the batch under a signal-aware context.
//  6. Write accepted accounts.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/gdps/internal/platform/apperr"
	"github.com/taibuivan/gdps/internal/platform/config"
	"github.com/taibuivan/gdps/internal/platform/constants"
	"github.com/taibuivan/gdps/internal/users/account"
	"github.com/taibuivan/gdps/internal/users/importer"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	rawLog := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(
		slog.String(constants.FieldApp, constants.AppName),
		slog.String(constants.FieldVersion, constants.AppVersion),
	)
	slog.SetDefault(log)

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(
			slog.String(constants.FieldApp, constants.AppName),
			slog.String(constants.FieldVersion, constants.AppVersion),
		)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.Int(constants.FieldWorkers, cfg.Workers()),
		slog.Uint64("first_id", cfg.ImportFirstID),
	)

	// ── 3. Input ──────────────────────────────────────────────────────────
	rows, err := readRows(os.Stdin)
	must(log, err, "read input rows")

	// ── 4. Domain Wiring ──────────────────────────────────────────────────
	accountService := account.NewService(account.NewSequence(cfg.ImportFirstID), log)
	batch := importer.New(accountService, cfg.Workers(), log)

	// ── 5. Run ────────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	results, err := batch.Run(ctx, inputs(rows))
	if err != nil {
		log.Error("import_interrupted", slog.Any("error", err))
		os.Exit(1)
	}

	for _, result := range results {
		if result.Err == nil {
			continue
		}
		reportRejection(log, rows[result.Index].line, result.Err)
	}

	// ── 6. Output ─────────────────────────────────────────────────────────
	must(log, writeAccounts(os.Stdout, importer.Accepted(results)), "write accounts")

	summary := importer.Summarize(results)
	log.Info("import_completed",
		slog.Int("accepted", summary.Accepted),
		slog.Int("rejected", summary.Rejected),
		slog.Int("failed", summary.Failed),
	)
}

// reportRejection logs which fields of a row failed. Field messages only name
// the rejection kind, so no input value reaches the log.
func reportRejection(log *slog.Logger, line int, err error) {
	ae := apperr.As(err)
	if ae == nil || ae.Code != apperr.CodeValidation {
		log.Error("import_row_failed", slog.Int(constants.FieldLine, line), slog.Any("error", err))
		return
	}

	for _, detail := range ae.Details {
		log.Warn("import_row_rejected",
			slog.Int(constants.FieldLine, line),
			slog.String("field", detail.Field),
			slog.String("code", detail.Code),
		)
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring and final output.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
