// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package importer_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gdps/internal/platform/apperr"
	"github.com/taibuivan/gdps/internal/platform/ctxutil"
	"github.com/taibuivan/gdps/internal/platform/sec"
	"github.com/taibuivan/gdps/internal/users/account"
	"github.com/taibuivan/gdps/internal/users/credential"
	"github.com/taibuivan/gdps/internal/users/importer"
	"github.com/taibuivan/gdps/internal/users/profile"
)

// fakeRegistrar decides each row's outcome from its Name field without
// running bcrypt. The Email field carries the id to assign.
type fakeRegistrar struct {
	mu         sync.Mutex
	generators map[*sec.GJP2Generator]struct{}
	batchIDs   map[string]struct{}
}

func newFakeRegistrar() *fakeRegistrar {
	return &fakeRegistrar{
		generators: make(map[*sec.GJP2Generator]struct{}),
		batchIDs:   make(map[string]struct{}),
	}
}

func (f *fakeRegistrar) RegisterWith(ctx context.Context, generator *sec.GJP2Generator, input account.RegisterInput) (*account.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.generators[generator] = struct{}{}
	f.batchIDs[ctxutil.GetBatchID(ctx)] = struct{}{}
	f.mu.Unlock()

	switch input.Name {
	case "reject":
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{Field: "name"})
	case "fail":
		return nil, apperr.Internal(errors.New("bcrypt exploded"))
	}

	id, err := strconv.ParseUint(input.Email, 10, 64)
	if err != nil {
		return nil, err
	}
	name, _ := credential.ParseName(input.Name)
	return &account.Account{User: profile.NewUser(id, name, credential.Email{}, nil, time.Time{})}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

/*
TestImporter_Run keeps input order and classifies every row.
*/
func TestImporter_Run(t *testing.T) {
	var inputs []account.RegisterInput
	for i := range 40 {
		switch i % 10 {
		case 3:
			inputs = append(inputs, account.RegisterInput{Name: "reject"})
		case 7:
			inputs = append(inputs, account.RegisterInput{Name: "fail"})
		default:
			inputs = append(inputs, account.RegisterInput{Name: "player" + strconv.Itoa(i), Email: strconv.Itoa(i)})
		}
	}

	registrar := newFakeRegistrar()
	var logs bytes.Buffer
	run := importer.New(registrar, 4, slog.New(slog.NewJSONHandler(&logs, nil)))

	results, err := run.Run(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, results, len(inputs))

	for i, result := range results {
		assert.Equal(t, i, result.Index)
		switch i % 10 {
		case 3:
			assert.Equal(t, apperr.CodeValidation, apperr.As(result.Err).Code)
		case 7:
			assert.Equal(t, apperr.CodeInternal, apperr.As(result.Err).Code)
		default:
			require.NoError(t, result.Err)
			assert.Equal(t, uint64(i), result.Account.User.ID())
		}
	}

	assert.Equal(t, importer.Summary{Accepted: 32, Rejected: 4, Failed: 4}, importer.Summarize(results))

	accepted := importer.Accepted(results)
	require.Len(t, accepted, 32)
	assert.Equal(t, uint64(0), accepted[0].User.ID())
	assert.Equal(t, uint64(39), accepted[31].User.ID())

	// One generator per worker, one batch id per run.
	assert.LessOrEqual(t, len(registrar.generators), 4)
	assert.NotEmpty(t, registrar.generators)
	require.Len(t, registrar.batchIDs, 1)
	for batchID := range registrar.batchIDs {
		assert.NotEmpty(t, batchID)
		assert.Contains(t, logs.String(), batchID)
	}
	assert.Contains(t, logs.String(), "import_batch_finished")
}

/*
TestImporter_Run_Cancelled stops the batch when the context is cancelled.
*/
func TestImporter_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inputs := make([]account.RegisterInput, 10)
	for i := range inputs {
		inputs[i] = account.RegisterInput{Name: "player", Email: strconv.Itoa(i)}
	}

	results, err := importer.New(newFakeRegistrar(), 2, discardLogger()).Run(ctx, inputs)
	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, results, len(inputs))
	assert.Zero(t, importer.Summarize(results).Accepted)
}

/*
TestImporter_Run_Empty handles an empty batch.
*/
func TestImporter_Run_Empty(t *testing.T) {
	results, err := importer.New(newFakeRegistrar(), 0, nil).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, importer.Accepted(results))
}

/*
TestImporter_Run_Service derives real verifiers through the account service.
*/
func TestImporter_Run_Service(t *testing.T) {
	service := account.NewService(account.NewSequence(1), discardLogger())

	inputs := []account.RegisterInput{
		{Name: "babygronk???", Password: "_deez-nuts???", Email: "gronk@mail.gd"},
		{Name: "a^@*(", Password: "a^@*(-", Email: "foo@."},
		{Name: "robtop", Password: "geometry-dash", Email: "robtop@robtopgames.com"},
	}

	results, err := importer.New(service, 2, discardLogger()).Run(context.Background(), inputs)
	require.NoError(t, err)

	assert.Equal(t, importer.Summary{Accepted: 2, Rejected: 1}, importer.Summarize(results))

	ok, err := sec.VerifyGJP2("_deez-nuts", results[0].Account.Verifier)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = sec.VerifyGJP2("geometry-dash", results[2].Account.Verifier)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = sec.VerifyGJP2("_deez-nuts", results[2].Account.Verifier)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ElementsMatch(t,
		[]uint64{1, 2},
		[]uint64{results[0].Account.User.ID(), results[2].Account.User.ID()},
	)
}
