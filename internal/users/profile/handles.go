// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"github.com/taibuivan/gdps/internal/users/credential"
	"github.com/taibuivan/gdps/pkg/pointer"
)

// SocialMediaHandles bundles the three optional handles shown on a profile.
// A nil pointer is an absent handle.
type SocialMediaHandles struct {
	youtube *string
	// Renamed to X, but the client still labels it Twitter.
	twitter *string
	twitch  *string
}

// NewSocialMediaHandles sanitizes each handle; empty results become absent.
func NewSocialMediaHandles(youtube, twitter, twitch string) *SocialMediaHandles {
	return &SocialMediaHandles{
		youtube: sanitize(youtube),
		twitter: sanitize(twitter),
		twitch:  sanitize(twitch),
	}
}

// YouTube returns a fresh copy of the YouTube handle, or nil.
func (h *SocialMediaHandles) YouTube() *string { return clone(h.youtube) }

// SetYouTube replaces the YouTube handle.
func (h *SocialMediaHandles) SetYouTube(youtube string) *SocialMediaHandles {
	h.youtube = sanitize(youtube)
	return h
}

// Twitter returns a fresh copy of the Twitter (X) handle, or nil.
func (h *SocialMediaHandles) Twitter() *string { return clone(h.twitter) }

// SetTwitter replaces the Twitter (X) handle.
func (h *SocialMediaHandles) SetTwitter(twitter string) *SocialMediaHandles {
	h.twitter = sanitize(twitter)
	return h
}

// Twitch returns a fresh copy of the Twitch handle, or nil.
func (h *SocialMediaHandles) Twitch() *string { return clone(h.twitch) }

// SetTwitch replaces the Twitch handle.
func (h *SocialMediaHandles) SetTwitch(twitch string) *SocialMediaHandles {
	h.twitch = sanitize(twitch)
	return h
}

func sanitize(raw string) *string {
	handle, ok := credential.SanitizeHandle(raw)
	if !ok {
		return nil
	}
	return pointer.To(handle)
}

func clone(handle *string) *string {
	if handle == nil {
		return nil
	}
	return pointer.To(*handle)
}
