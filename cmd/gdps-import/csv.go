// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/taibuivan/gdps/internal/users/account"
	"github.com/taibuivan/gdps/pkg/pointer"
	"github.com/taibuivan/gdps/pkg/slice"
)

const (
	minColumns = 3
	maxColumns = 6
)

var outputHeader = []string{"id", "name", "email", "youtube", "twitter", "twitch", "verifier"}

// row is one input record with its 1-based line number.
type row struct {
	line  int
	input account.RegisterInput
}

// readRows parses name,password,email[,youtube,twitter,twitch] records.
func readRows(r io.Reader) ([]row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var rows []row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("import_csv_read_failed: %w", err)
		}

		line, _ := reader.FieldPos(0)

		if rows == nil && len(record) > 0 && record[0] == "name" {
			rows = []row{}
			continue
		}

		if len(record) < minColumns || len(record) > maxColumns {
			return nil, fmt.Errorf("import_csv_read_failed: line %d: want %d to %d columns, got %d",
				line, minColumns, maxColumns, len(record))
		}

		padded := make([]string, maxColumns)
		copy(padded, record)

		rows = append(rows, row{
			line: line,
			input: account.RegisterInput{
				Name:     padded[0],
				Password: padded[1],
				Email:    padded[2],
				YouTube:  padded[3],
				Twitter:  padded[4],
				Twitch:   padded[5],
			},
		})
	}
}

func inputs(rows []row) []account.RegisterInput {
	return slice.Map(rows, func(r row) account.RegisterInput { return r.input })
}

// writeAccounts writes one CSV record per account, header first.
func writeAccounts(w io.Writer, accounts []*account.Account) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(outputHeader); err != nil {
		return fmt.Errorf("import_csv_write_failed: %w", err)
	}

	for _, acct := range accounts {
		handles := acct.User.SocialMediaHandles()
		record := []string{
			strconv.FormatUint(acct.User.ID(), 10),
			acct.User.Name().String(),
			acct.User.Email().String(),
			pointer.Val(handles.YouTube()),
			pointer.Val(handles.Twitter()),
			pointer.Val(handles.Twitch()),
			acct.Verifier.String(),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("import_csv_write_failed: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("import_csv_write_failed: %w", err)
	}
	return nil
}
