// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package importer registers accounts in bulk, e.g. when migrating players from
another server.

# Concurrency

GJP2 derivation is CPU-bound and a [sec.GJP2Generator] is single-owner, so the
importer runs a fixed set of workers that each own one generator and pull row
indexes from a shared queue. Results keep the order of the input.

A rejected row never stops the batch. Cancelling the context does.
*/
package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/gdps/internal/platform/apperr"
	"github.com/taibuivan/gdps/internal/platform/constants"
	"github.com/taibuivan/gdps/internal/platform/ctxutil"
	"github.com/taibuivan/gdps/internal/platform/sec"
	"github.com/taibuivan/gdps/internal/users/account"
	"github.com/taibuivan/gdps/pkg/slice"
	"github.com/taibuivan/gdps/pkg/uuidv7"
)

// # Contracts & Types

// Registrar creates one account with a caller-owned generator.
// [*account.Service] implements it.
type Registrar interface {
	RegisterWith(context context.Context, generator *sec.GJP2Generator, input account.RegisterInput) (*account.Account, error)
}

// Result is the outcome of one input row.
type Result struct {
	// Index is the position of the row in the input slice.
	Index   int
	Account *account.Account
	Err     error
}

// Summary counts the outcomes of a batch.
type Summary struct {
	Accepted int
	Rejected int // input failed validation
	Failed   int // derivation or id allocation failed
}

// Importer fans registrations out over a fixed worker pool.
type Importer struct {
	registrar Registrar
	workers   int
	logger    *slog.Logger
}

// New returns an [Importer] with the given number of workers (at least one).
func New(registrar Registrar, workers int, logger *slog.Logger) *Importer {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{
		registrar: registrar,
		workers:   workers,
		logger:    logger,
	}
}

// # Batch Flow

/*
Run registers every input and returns one [Result] per row, in input order.

The batch is tagged with a fresh UUIDv7 batch id that every log line of the
run carries.

Returns:
  - []Result: per-row outcomes; rows not reached before cancellation have a
    nil Account and nil Err
  - error: the context error if the batch was cancelled
*/
func (importer *Importer) Run(ctx context.Context, inputs []account.RegisterInput) ([]Result, error) {
	batchID := uuidv7.New()
	logger := importer.logger.With(slog.String(constants.FieldBatchID, batchID))
	ctx = ctxutil.WithLogger(ctxutil.WithBatchID(ctx, batchID), logger)

	logger.Info("import_batch_started",
		slog.Int("rows", len(inputs)),
		slog.Int(constants.FieldWorkers, importer.workers),
	)

	results := make([]Result, len(inputs))
	for i := range results {
		results[i].Index = i
	}

	jobs := make(chan int, importer.workers*constants.ImportQueuePerWorker)
	group, groupCtx := errgroup.WithContext(ctx)

	// Producer
	group.Go(func() error {
		defer close(jobs)
		for i := range inputs {
			select {
			case jobs <- i:
			case <-groupCtx.Done():
				return groupCtx.Err()
			}
		}
		return nil
	})

	// Workers, one generator each
	for range importer.workers {
		group.Go(func() error {
			generator := sec.NewGJP2Generator(nil)
			for i := range jobs {
				acct, err := importer.registrar.RegisterWith(groupCtx, generator, inputs[i])
				if isCancellation(err) {
					return err
				}
				results[i].Account = acct
				results[i].Err = err
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		logger.Warn("import_batch_cancelled", slog.Any("error", err))
		return results, fmt.Errorf("importer_run_cancelled: %w", err)
	}

	summary := Summarize(results)
	logger.Info("import_batch_finished",
		slog.Int("accepted", summary.Accepted),
		slog.Int("rejected", summary.Rejected),
		slog.Int("failed", summary.Failed),
	)

	return results, nil
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// # Reporting

// Summarize counts accepted, rejected and failed rows.
func Summarize(results []Result) Summary {
	var summary Summary
	for _, result := range results {
		switch {
		case result.Err == nil && result.Account != nil:
			summary.Accepted++
		case result.Err == nil:
			// Not reached before cancellation.
		case isRejection(result.Err):
			summary.Rejected++
		default:
			summary.Failed++
		}
	}
	return summary
}

// Accepted returns the accounts of the successful rows, in input order.
func Accepted(results []Result) []*account.Account {
	succeeded := slice.Filter(results, func(result Result) bool {
		return result.Err == nil && result.Account != nil
	})
	return slice.Map(succeeded, func(result Result) *account.Account {
		return result.Account
	})
}

func isRejection(err error) bool {
	ae := apperr.As(err)
	return ae != nil && ae.Code == apperr.CodeValidation
}
