// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values shared by the
services and the import command.

Categories:

  - Metadata: application name and version attached to every log entry.
  - Import: queue sizing of the batch importer.
  - Log Attributes: keys shared by every structured log line.
*/
package constants

// # Metadata

const (
	AppName    = "gdps-import"
	AppVersion = "0.1.0-dev"
)

// # Import

const (
	// ImportQueuePerWorker is the number of pending rows buffered per worker.
	ImportQueuePerWorker = 4
)

// # Log Attributes

const (
	FieldApp     = "app"
	FieldVersion = "version"
	FieldBatchID = "batch_id"
	FieldUserID  = "user_id"
	FieldLine    = "line"
	FieldWorkers = "workers"
)
