// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account turns registration panel input into player accounts.

# Architecture

  - Entities: Account (profile + GJP2 verifier), RegisterInput (raw client fields).
  - Domain: depends on credential for parsing, sec for GJP2 and profile for records.
  - Security: plaintext passwords are wiped as soon as the verifier exists and
    are never logged.
*/
package account

import (
	"context"
	"sync/atomic"

	"github.com/taibuivan/gdps/internal/platform/sec"
	"github.com/taibuivan/gdps/internal/users/profile"
)

// # Domain Entities

// Account is a newly registered player together with its password verifier.
// Cosmetics, stats and ban state start at their zero values.
type Account struct {
	User     *profile.User
	Verifier sec.GJP2
	Icons    profile.IconSet
	Stats    profile.Stats
	Ban      profile.Ban
}

// RegisterInput holds the raw fields of the registration panel.
type RegisterInput struct {
	Name     string
	Password string
	Email    string
	YouTube  string
	Twitter  string
	Twitch   string
}

// # Identity Contracts

// IDSource allocates account ids.
type IDSource interface {
	// NextID returns an id that has not been handed out before.
	NextID(context context.Context) (uint64, error)
}

// Sequence is an in-memory [IDSource] counting up from a starting id.
// It is safe for concurrent use.
type Sequence struct {
	next atomic.Uint64
}

// NewSequence returns a [Sequence] whose first id is first.
func NewSequence(first uint64) *Sequence {
	sequence := &Sequence{}
	sequence.next.Store(first)
	return sequence
}

// NextID implements [IDSource].
func (s *Sequence) NextID(context.Context) (uint64, error) {
	return s.next.Add(1) - 1, nil
}
