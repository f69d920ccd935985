// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package profile defines the player profile records of the game server.

# Architecture

  - User: immutable identity aggregate built from validated credentials.
  - SocialMediaHandles: the only mutable record; every write re-runs the handle sanitizer.
  - IconSet, Stats: zero-initialised cosmetic ids and counters.
  - Ban: four-state moderation flag with a stable on-disk discriminant.

Entities here perform no I/O and carry no plaintext secrets.
*/
package profile

import (
	"time"

	"github.com/taibuivan/gdps/internal/users/credential"
)

// # Domain Entities

// User is a registered player. Fields are fixed at construction.
type User struct {
	id        uint64
	name      credential.Name
	email     credential.Email
	handles   SocialMediaHandles
	createdAt time.Time
}

// NewUser assembles a [User]. createdAt is captured by the caller, normally
// with [time.Now] so it keeps a monotonic reading. A nil handles value means
// no handles.
func NewUser(
	id uint64,
	name credential.Name,
	email credential.Email,
	handles *SocialMediaHandles,
	createdAt time.Time,
) *User {
	user := &User{
		id:        id,
		name:      name,
		email:     email,
		createdAt: createdAt,
	}
	if handles != nil {
		user.handles = *handles
	}
	return user
}

// ID returns the numeric account id.
func (u *User) ID() uint64 { return u.id }

// Name returns the display name.
func (u *User) Name() credential.Name { return u.name }

// Email returns the registered address.
func (u *User) Email() credential.Email { return u.email }

// SocialMediaHandles returns a copy of the user's handles. Changing the copy
// does not affect the user.
func (u *User) SocialMediaHandles() *SocialMediaHandles {
	handles := u.handles
	return &handles
}

// CreatedAt returns the registration instant.
func (u *User) CreatedAt() time.Time { return u.createdAt }
