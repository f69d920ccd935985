// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

// IconSet holds the cosmetic ids a player has equipped. The zero value is the
// default set.
type IconSet struct {
	IconID        uint32 `json:"icon_id"`
	ShipID        uint32 `json:"ship_id"`
	JetpackID     uint32 `json:"jetpack_id"`
	BallID        uint32 `json:"ball_id"`
	UFOID         uint32 `json:"ufo_id"`
	WaveID        uint32 `json:"wave_id"`
	RobotID       uint32 `json:"robot_id"`
	SpiderID      uint32 `json:"spider_id"`
	SwingID       uint32 `json:"swing_id"`
	GlowID        uint32 `json:"glow_id"`
	DeathEffectID uint32 `json:"death_effect_id"`
}

// Stats holds a player's progression counters. The zero value is a new player.
type Stats struct {
	Stars         uint32 `json:"stars"`
	Moons         uint32 `json:"moons"`
	Coins         uint32 `json:"coins"`
	UserCoins     uint32 `json:"user_coins"`
	Diamonds      uint32 `json:"diamonds"`
	Demons        uint32 `json:"demons"`
	CreatorPoints uint32 `json:"creator_points"`
	Orbs          uint32 `json:"orbs"`
}
