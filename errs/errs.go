package errs

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Code names the kind of an expected, recoverable command failure.
type Code string

const (
	CodeNotFound          Code = "NOT_FOUND"
	CodePlaylistNotFound  Code = "PLAYLIST_NOT_FOUND"
	CodeVideoNotFound     Code = "VIDEO_NOT_FOUND"
	CodeDuplicateName     Code = "DUPLICATE_NAME"
	CodeAlreadyInPlaylist Code = "ALREADY_IN_PLAYLIST"
	CodeNotInPlaylist     Code = "NOT_IN_PLAYLIST"
	CodeAlreadyFlagged    Code = "ALREADY_FLAGGED"
	CodeNotFlagged        Code = "NOT_FLAGGED"
	CodeFlagged           Code = "FLAGGED"
	CodeAlreadyPaused     Code = "ALREADY_PAUSED"
	CodeNotPaused         Code = "NOT_PAUSED"
	CodeNothingPlaying    Code = "NOTHING_PLAYING"
	CodeNoVideosAvailable Code = "NO_VIDEOS_AVAILABLE"
)

var (
	// ErrNotFound indicates that the requested video id is not in the catalogue.
	ErrNotFound = errors.New("video does not exist")
	// ErrPlaylistNotFound indicates that no playlist has the requested name.
	ErrPlaylistNotFound = errors.New("playlist does not exist")
	// ErrVideoNotFound indicates a playlist operation named an unknown video id.
	ErrVideoNotFound = errors.New("video does not exist")
	// ErrDuplicateName indicates a playlist with the same folded name exists.
	ErrDuplicateName = errors.New("a playlist with the same name already exists")
	// ErrAlreadyInPlaylist indicates the video is already a playlist member.
	ErrAlreadyInPlaylist = errors.New("video already added")
	// ErrNotInPlaylist indicates the video is not a member of the playlist.
	ErrNotInPlaylist = errors.New("video is not in playlist")
	// ErrAlreadyFlagged indicates the video carries a flag already.
	ErrAlreadyFlagged = errors.New("video is already flagged")
	// ErrNotFlagged indicates the video carries no flag to remove.
	ErrNotFlagged = errors.New("video is not flagged")
	// ErrFlagged indicates the video is flagged and cannot be played.
	ErrFlagged = errors.New("video is currently flagged")
	// ErrAlreadyPaused indicates the active video is paused already.
	ErrAlreadyPaused = errors.New("video already paused")
	// ErrNotPaused indicates the active video is playing, not paused.
	ErrNotPaused = errors.New("video is not paused")
	// ErrNothingPlaying indicates the playback slot is empty.
	ErrNothingPlaying = errors.New("no video is currently playing")
	// ErrNoVideosAvailable indicates there is no unflagged video to choose from.
	ErrNoVideosAvailable = errors.New("no videos available")
)

var sentinels = map[Code]error{
	CodeNotFound:          ErrNotFound,
	CodePlaylistNotFound:  ErrPlaylistNotFound,
	CodeVideoNotFound:     ErrVideoNotFound,
	CodeDuplicateName:     ErrDuplicateName,
	CodeAlreadyInPlaylist: ErrAlreadyInPlaylist,
	CodeNotInPlaylist:     ErrNotInPlaylist,
	CodeAlreadyFlagged:    ErrAlreadyFlagged,
	CodeNotFlagged:        ErrNotFlagged,
	CodeFlagged:           ErrFlagged,
	CodeAlreadyPaused:     ErrAlreadyPaused,
	CodeNotPaused:         ErrNotPaused,
	CodeNothingPlaying:    ErrNothingPlaying,
	CodeNoVideosAvailable: ErrNoVideosAvailable,
}

// Details carries the data associated with a failure.
// Fields are empty when they do not apply to the code.
type Details struct {
	VideoID  string `json:"video_id,omitempty"`
	Playlist string `json:"playlist,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// Error is the structured failure returned by every core operation.
type Error struct {
	Code    Code    `json:"code"`
	Message string  `json:"message"`
	Details Details `json:"details"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Details.Reason != "" {
		return fmt.Sprintf("%s: %s (reason: %s)", e.Code, e.Message, e.Details.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the sentinel for the code so errors.Is works.
func (e *Error) Unwrap() error {
	return sentinels[e.Code]
}

// MarshalJSON implements json.Marshaler
func (e *Error) MarshalJSON() ([]byte, error) {
	type Alias Error
	return json.Marshal(&struct {
		*Alias
		Error string `json:"error"`
	}{
		Alias: (*Alias)(e),
		Error: e.Error(),
	})
}

// New creates an Error for code using the sentinel text as message.
func New(code Code, details Details) *Error {
	msg := string(code)
	if s, ok := sentinels[code]; ok {
		msg = s.Error()
	}
	return &Error{Code: code, Message: msg, Details: details}
}

// CodeOf returns the failure code of err, or "" when err is not an *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// ReasonOf returns the flag reason attached to err, if any.
func ReasonOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Details.Reason
	}
	return ""
}

// IsNotFound reports whether err names an unknown video or playlist.
func IsNotFound(err error) bool {
	switch CodeOf(err) {
	case CodeNotFound, CodeVideoNotFound, CodePlaylistNotFound:
		return true
	}
	return false
}

// IsModeration reports whether err is a flag-state failure.
func IsModeration(err error) bool {
	switch CodeOf(err) {
	case CodeFlagged, CodeAlreadyFlagged, CodeNotFlagged:
		return true
	}
	return false
}

// IsPlayback reports whether err is a playback-slot failure.
func IsPlayback(err error) bool {
	switch CodeOf(err) {
	case CodeAlreadyPaused, CodeNotPaused, CodeNothingPlaying, CodeNoVideosAvailable:
		return true
	}
	return false
}
