// Package render turns player outcomes into the text shown to the user.
//
// Every function returns the full message without a trailing newline;
// multi-line messages are separated by "\n".
package render

import (
	"fmt"
	"strings"

	"github.com/ytget/vidplayer"
	"github.com/ytget/vidplayer/errs"
	"github.com/ytget/vidplayer/playback"
	"github.com/ytget/vidplayer/search"
	"github.com/ytget/vidplayer/types"
)

// Prompt lines printed after a non-empty result list.
const (
	SelectPrompt = "Would you like to play any of the above? If yes, specify the number of the video."
	SelectHint   = "If your answer is not a valid number, we will assume it's a no."
)

// Count renders the catalogue size.
func Count(n int) string {
	return fmt.Sprintf("%d videos in the library", n)
}

// Videos renders the full catalogue listing.
func Videos(videos []*types.Video) string {
	lines := []string{"Here's a list of all available videos:"}
	for _, v := range videos {
		lines = append(lines, "  "+v.String())
	}
	return join(lines)
}

// Play renders the outcome of Play, PlayRandom and a search selection.
func Play(t playback.Transition, err error) string {
	if err != nil {
		switch errs.CodeOf(err) {
		case errs.CodeNotFound:
			return "Cannot play video: Video does not exist"
		case errs.CodeFlagged:
			return fmt.Sprintf("Cannot play video: Video is currently flagged (reason: %s)", errs.ReasonOf(err))
		case errs.CodeNoVideosAvailable:
			return "No videos available"
		}
		return unexpected(err)
	}
	var lines []string
	if t.Stopped != nil {
		lines = append(lines, stopping(t.Stopped))
	}
	lines = append(lines, "Playing video: "+t.Started.Title())
	return join(lines)
}

// Stop renders the outcome of Stop.
func Stop(v *types.Video, err error) string {
	if err != nil {
		if errs.CodeOf(err) == errs.CodeNothingPlaying {
			return "Cannot stop video: No video is currently playing"
		}
		return unexpected(err)
	}
	return stopping(v)
}

// Pause renders the outcome of Pause.
func Pause(v *types.Video, err error) string {
	if err != nil {
		switch errs.CodeOf(err) {
		case errs.CodeAlreadyPaused:
			return "Video already paused: " + v.Title()
		case errs.CodeNothingPlaying:
			return "Cannot pause video: No video is currently playing"
		}
		return unexpected(err)
	}
	return "Pausing video: " + v.Title()
}

// Resume renders the outcome of Resume.
func Resume(v *types.Video, err error) string {
	if err != nil {
		switch errs.CodeOf(err) {
		case errs.CodeNotPaused:
			return "Cannot continue video: Video is not paused"
		case errs.CodeNothingPlaying:
			return "Cannot continue video: No video is currently playing"
		}
		return unexpected(err)
	}
	return "Continuing video: " + v.Title()
}

// Current renders the playback slot.
func Current(v *types.Video, state playback.State) string {
	switch state {
	case playback.Playing:
		return "Currently playing: " + v.String()
	case playback.Paused:
		return "Currently playing: " + v.String() + " - PAUSED"
	}
	return "No video is currently playing"
}

// CreatePlaylist renders the outcome of CreatePlaylist for the name the
// user typed.
func CreatePlaylist(name string, err error) string {
	if err != nil {
		if errs.CodeOf(err) == errs.CodeDuplicateName {
			return "Cannot create playlist: A playlist with the same name already exists"
		}
		return unexpected(err)
	}
	return "Successfully created new playlist: " + name
}

// AddToPlaylist renders the outcome of AddToPlaylist.
func AddToPlaylist(name string, v *types.Video, err error) string {
	if err != nil {
		prefix := "Cannot add video to " + name + ": "
		switch errs.CodeOf(err) {
		case errs.CodePlaylistNotFound:
			return prefix + "Playlist does not exist"
		case errs.CodeVideoNotFound:
			return prefix + "Video does not exist"
		case errs.CodeAlreadyFlagged:
			return prefix + fmt.Sprintf("Video is currently flagged (reason: %s)", errs.ReasonOf(err))
		case errs.CodeAlreadyInPlaylist:
			return prefix + "Video already added"
		}
		return unexpected(err)
	}
	return fmt.Sprintf("Added video to %s: %s", name, v.Title())
}

// RemoveFromPlaylist renders the outcome of RemoveFromPlaylist.
func RemoveFromPlaylist(name string, v *types.Video, err error) string {
	if err != nil {
		prefix := "Cannot remove video from " + name + ": "
		switch errs.CodeOf(err) {
		case errs.CodePlaylistNotFound:
			return prefix + "Playlist does not exist"
		case errs.CodeVideoNotFound:
			return prefix + "Video does not exist"
		case errs.CodeNotInPlaylist:
			return prefix + "Video is not in playlist"
		}
		return unexpected(err)
	}
	return fmt.Sprintf("Removed video from %s: %s", name, v.Title())
}

// ClearPlaylist renders the outcome of ClearPlaylist.
func ClearPlaylist(name string, err error) string {
	if err != nil {
		if errs.CodeOf(err) == errs.CodePlaylistNotFound {
			return fmt.Sprintf("Cannot clear playlist %s: Playlist does not exist", name)
		}
		return unexpected(err)
	}
	return "Successfully removed all videos from " + name
}

// DeletePlaylist renders the outcome of DeletePlaylist.
func DeletePlaylist(name string, err error) string {
	if err != nil {
		if errs.CodeOf(err) == errs.CodePlaylistNotFound {
			return fmt.Sprintf("Cannot delete playlist %s: Playlist does not exist", name)
		}
		return unexpected(err)
	}
	return "Deleted playlist: " + name
}

// Playlists renders the sorted playlist names.
func Playlists(names []string) string {
	if len(names) == 0 {
		return "No playlists exist yet"
	}
	lines := []string{"Showing all playlists:"}
	for _, n := range names {
		lines = append(lines, "  "+n)
	}
	return join(lines)
}

// ShowPlaylist renders the members of a playlist.
func ShowPlaylist(name string, videos []*types.Video, err error) string {
	if err != nil {
		if errs.CodeOf(err) == errs.CodePlaylistNotFound {
			return fmt.Sprintf("Cannot show playlist %s: Playlist does not exist", name)
		}
		return unexpected(err)
	}
	lines := []string{"Showing playlist: " + name}
	if len(videos) == 0 {
		lines = append(lines, "  No videos here yet")
	}
	for _, v := range videos {
		lines = append(lines, "  "+v.String())
	}
	return join(lines)
}

// Results renders a numbered result list followed by the selection prompt,
// or the no-results line.
func Results(r search.Results) string {
	if r.Empty() {
		return "No search results for " + r.Query
	}
	lines := []string{fmt.Sprintf("Here are the results for %s:", r.Query)}
	for i, v := range r.Videos {
		lines = append(lines, fmt.Sprintf("  %d) %s", i+1, v))
	}
	lines = append(lines, SelectPrompt, SelectHint)
	return join(lines)
}

// Flag renders the outcome of Flag. A video evicted from the playback slot
// is reported as stopped first.
func Flag(res vidplayer.FlagResult, err error) string {
	if err != nil {
		switch errs.CodeOf(err) {
		case errs.CodeNotFound:
			return "Cannot flag video: Video does not exist"
		case errs.CodeAlreadyFlagged:
			return "Cannot flag video: Video is already flagged"
		}
		return unexpected(err)
	}
	var lines []string
	if res.Stopped != nil {
		lines = append(lines, stopping(res.Stopped))
	}
	lines = append(lines, fmt.Sprintf("Successfully flagged video: %s (reason: %s)", res.Video.Title(), res.Video.FlagReason()))
	return join(lines)
}

// Allow renders the outcome of Allow.
func Allow(v *types.Video, err error) string {
	if err != nil {
		switch errs.CodeOf(err) {
		case errs.CodeNotFound:
			return "Cannot remove flag from video: Video does not exist"
		case errs.CodeNotFlagged:
			return "Cannot remove flag from video: Video is not flagged"
		}
		return unexpected(err)
	}
	return "Successfully removed flag from video: " + v.Title()
}

func stopping(v *types.Video) string {
	return "Stopping video: " + v.Title()
}

func unexpected(err error) string {
	return "Error: " + err.Error()
}

func join(lines []string) string {
	return strings.Join(lines, "\n")
}
