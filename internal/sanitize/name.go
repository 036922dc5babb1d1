package sanitize

import (
	"strings"

	"golang.org/x/text/cases"
)

// DefaultPlaylistName replaces a blank playlist name.
const DefaultPlaylistName = "playlist"

// Fold returns the Unicode case-folded form of s, used for every
// case-insensitive comparison in the catalogue and playlist store.
// A Caser keeps state between calls, so each call gets its own.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// EqualFold reports whether a and b are equal under case folding.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// ContainsFold reports whether sub occurs in s under case folding.
func ContainsFold(s, sub string) bool {
	return strings.Contains(Fold(s), Fold(sub))
}

// CompareFold orders a and b by their folded forms.
func CompareFold(a, b string) int {
	return strings.Compare(Fold(a), Fold(b))
}

// PlaylistName trims surrounding whitespace from a user-supplied playlist
// name while keeping its casing for display.
func PlaylistName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultPlaylistName
	}
	return name
}

// Key returns the lookup key for a playlist name.
func Key(name string) string {
	return Fold(PlaylistName(name))
}
