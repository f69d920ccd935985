// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"database/sql/driver"
	"fmt"
)

// # Moderation State

// Ban is the moderation state of a player. The numeric values are persisted
// and must not be reordered.
type Ban uint8

const (
	// BanNone is the default: the player appears everywhere.
	BanNone Ban = iota
	// BanLeaderboard hides the player from leaderboards.
	BanLeaderboard
	// BanCreator stops the player's levels from being rated.
	BanCreator
	// BanLeaderboardAndCreator applies both bans.
	BanLeaderboardAndCreator
)

// ParseBan converts a stored discriminant back into a [Ban].
func ParseBan(discriminant uint8) (Ban, error) {
	ban := Ban(discriminant)
	if !ban.valid() {
		return BanNone, fmt.Errorf("profile: unknown ban discriminant %d", discriminant)
	}
	return ban, nil
}

func (b Ban) valid() bool { return b <= BanLeaderboardAndCreator }

// String returns a lowercase label for logs.
func (b Ban) String() string {
	switch b {
	case BanNone:
		return "none"
	case BanLeaderboard:
		return "leaderboard"
	case BanCreator:
		return "creator"
	case BanLeaderboardAndCreator:
		return "leaderboard_and_creator"
	default:
		return fmt.Sprintf("ban(%d)", uint8(b))
	}
}

// HasLeaderboardBan reports whether the player is hidden from leaderboards.
func (b Ban) HasLeaderboardBan() bool {
	return b == BanLeaderboard || b == BanLeaderboardAndCreator
}

// HasCreatorBan reports whether the player's levels are excluded from rating.
func (b Ban) HasCreatorBan() bool {
	return b == BanCreator || b == BanLeaderboardAndCreator
}

// # Persistence

// Value implements [driver.Valuer]; the ban is stored as its discriminant.
func (b Ban) Value() (driver.Value, error) {
	if !b.valid() {
		return nil, fmt.Errorf("profile: unknown ban discriminant %d", uint8(b))
	}
	return int64(b), nil
}

// Scan implements [database/sql.Scanner].
func (b *Ban) Scan(src any) error {
	value, ok := src.(int64)
	if !ok {
		return fmt.Errorf("profile: cannot scan %T into Ban", src)
	}
	if value < 0 || value > int64(BanLeaderboardAndCreator) {
		return fmt.Errorf("profile: unknown ban discriminant %d", value)
	}
	*b = Ban(value)
	return nil
}
