// Package vidplayer provides an in-memory video player session.
//
// A Player owns a fixed catalogue of videos, a single playback slot, a set
// of named playlists and the moderation flags on each video:
//   - Play, pause, resume, stop and random play with one active video
//   - Case-insensitive playlists referencing catalogue videos by id
//   - Title and tag search that hides flagged videos
//   - Flagging that evicts the flagged video from the playback slot
//
// Every failing operation returns an *errs.Error whose Code names the
// failure. Turning outcomes into text is left to the caller.
package vidplayer
