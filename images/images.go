// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package images

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"unicode"
)

const headshotURL = "https://a.espncdn.com/i/headshots/nfl/players/full/%s.png"

// Placeholder palettes. The primary placeholder stands in when a player has
// no image mapping; the fallback uses a distinct palette so clients can swap
// it in on CDN load errors and still tell the two apart.
const (
	placeholderColors = "background=1f2937&color=f9fafb"
	fallbackColors    = "background=4b5563&color=e5e7eb"
)

// Resolver maps player display names to head-shot URLs. The lookup table is
// injected at construction and never mutated afterward, so concurrent reads
// need no locking.
type Resolver struct {
	ids map[string]string
}

// NewResolver builds a Resolver from a name->imageID table. Keys are matched
// case-insensitively with surrounding whitespace ignored.
func NewResolver(ids map[string]string) *Resolver {
	normalized := make(map[string]string, len(ids))
	for name, id := range ids {
		normalized[normalize(name)] = id
	}
	return &Resolver{ids: normalized}
}

// LoadMap reads a name->imageID JSON object from path. Intended to be called
// once at startup; the result is handed to NewResolver and never reloaded.
func LoadMap(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read headshot map: %w", err)
	}
	ids := make(map[string]string)
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("parse headshot map: %w", err)
	}
	return ids, nil
}

// HeadshotURL returns the CDN head-shot URL for a player, or an initials
// placeholder when the player has no mapping. A miss never fails a listing.
func (r *Resolver) HeadshotURL(name string) string {
	if id, ok := r.ids[normalize(name)]; ok {
		return fmt.Sprintf(headshotURL, id)
	}
	return avatarURL(name, placeholderColors)
}

// FallbackURL returns an initials avatar in the fallback palette. Always
// synthesized, never a CDN lookup, so it is safe as a client error target.
func (r *Resolver) FallbackURL(name string) string {
	return avatarURL(name, fallbackColors)
}

func avatarURL(name, colors string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(initials(name)) + "&size=256&" + colors
}

// initials takes the first letter of the first and last words of a name.
func initials(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "?"
	}
	first := firstLetter(fields[0])
	if len(fields) == 1 {
		return first
	}
	return first + firstLetter(fields[len(fields)-1])
}

func firstLetter(word string) string {
	for _, r := range word {
		if unicode.IsLetter(r) {
			return string(unicode.ToUpper(r))
		}
	}
	return "?"
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
