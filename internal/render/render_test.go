package render

import (
	"errors"
	"testing"

	"github.com/ytget/vidplayer"
	"github.com/ytget/vidplayer/errs"
	"github.com/ytget/vidplayer/playback"
	"github.com/ytget/vidplayer/search"
	"github.com/ytget/vidplayer/types"
)

func video(id, title string, tags ...string) *types.Video {
	return types.NewVideo(types.VideoSpec{ID: id, Title: title, Tags: tags})
}

func TestPlay(t *testing.T) {
	cats := video("cat1", "Amazing Cats", "#cat")
	dogs := video("dog", "Funny Dogs")

	tests := []struct {
		name     string
		t        playback.Transition
		err      error
		expected string
	}{
		{
			name:     "start",
			t:        playback.Transition{Started: cats},
			expected: "Playing video: Amazing Cats",
		},
		{
			name:     "implicit stop",
			t:        playback.Transition{Stopped: dogs, Started: cats},
			expected: "Stopping video: Funny Dogs\nPlaying video: Amazing Cats",
		},
		{
			name:     "not found",
			err:      errs.New(errs.CodeNotFound, errs.Details{}),
			expected: "Cannot play video: Video does not exist",
		},
		{
			name:     "flagged",
			err:      errs.New(errs.CodeFlagged, errs.Details{Reason: "dont_like_cats"}),
			expected: "Cannot play video: Video is currently flagged (reason: dont_like_cats)",
		},
		{
			name:     "no videos",
			err:      errs.New(errs.CodeNoVideosAvailable, errs.Details{}),
			expected: "No videos available",
		},
		{
			name:     "unexpected",
			err:      errors.New("boom"),
			expected: "Error: boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Play(tt.t, tt.err); got != tt.expected {
				t.Errorf("Play() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSlotMessages(t *testing.T) {
	cats := video("cat1", "Amazing Cats", "#cat", "#animal")
	nothing := errs.New(errs.CodeNothingPlaying, errs.Details{})

	tests := []struct {
		got      string
		expected string
	}{
		{Stop(cats, nil), "Stopping video: Amazing Cats"},
		{Stop(nil, nothing), "Cannot stop video: No video is currently playing"},
		{Pause(cats, nil), "Pausing video: Amazing Cats"},
		{Pause(cats, errs.New(errs.CodeAlreadyPaused, errs.Details{})), "Video already paused: Amazing Cats"},
		{Pause(nil, nothing), "Cannot pause video: No video is currently playing"},
		{Resume(cats, nil), "Continuing video: Amazing Cats"},
		{Resume(cats, errs.New(errs.CodeNotPaused, errs.Details{})), "Cannot continue video: Video is not paused"},
		{Resume(nil, nothing), "Cannot continue video: No video is currently playing"},
		{Current(cats, playback.Playing), "Currently playing: Amazing Cats (cat1) [#cat #animal]"},
		{Current(cats, playback.Paused), "Currently playing: Amazing Cats (cat1) [#cat #animal] - PAUSED"},
		{Current(nil, playback.Empty), "No video is currently playing"},
		{Count(5), "5 videos in the library"},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("got %q, want %q", tt.got, tt.expected)
		}
	}
}

func TestPlaylistMessages(t *testing.T) {
	cats := video("cat1", "Amazing Cats")
	notFound := errs.New(errs.CodePlaylistNotFound, errs.Details{})

	tests := []struct {
		got      string
		expected string
	}{
		{CreatePlaylist("My_Playlist", nil), "Successfully created new playlist: My_Playlist"},
		{CreatePlaylist("my_playlist", errs.New(errs.CodeDuplicateName, errs.Details{})), "Cannot create playlist: A playlist with the same name already exists"},
		{AddToPlaylist("my_PLAYlist", cats, nil), "Added video to my_PLAYlist: Amazing Cats"},
		{AddToPlaylist("x", nil, notFound), "Cannot add video to x: Playlist does not exist"},
		{AddToPlaylist("x", nil, errs.New(errs.CodeVideoNotFound, errs.Details{})), "Cannot add video to x: Video does not exist"},
		{AddToPlaylist("x", cats, errs.New(errs.CodeAlreadyFlagged, errs.Details{Reason: "spam"})), "Cannot add video to x: Video is currently flagged (reason: spam)"},
		{AddToPlaylist("x", cats, errs.New(errs.CodeAlreadyInPlaylist, errs.Details{})), "Cannot add video to x: Video already added"},
		{RemoveFromPlaylist("x", cats, nil), "Removed video from x: Amazing Cats"},
		{RemoveFromPlaylist("x", nil, notFound), "Cannot remove video from x: Playlist does not exist"},
		{RemoveFromPlaylist("x", nil, errs.New(errs.CodeVideoNotFound, errs.Details{})), "Cannot remove video from x: Video does not exist"},
		{RemoveFromPlaylist("x", cats, errs.New(errs.CodeNotInPlaylist, errs.Details{})), "Cannot remove video from x: Video is not in playlist"},
		{ClearPlaylist("x", nil), "Successfully removed all videos from x"},
		{ClearPlaylist("x", notFound), "Cannot clear playlist x: Playlist does not exist"},
		{DeletePlaylist("x", nil), "Deleted playlist: x"},
		{DeletePlaylist("x", notFound), "Cannot delete playlist x: Playlist does not exist"},
		{Playlists(nil), "No playlists exist yet"},
		{Playlists([]string{"a", "B"}), "Showing all playlists:\n  a\n  B"},
		{ShowPlaylist("x", []*types.Video{}, nil), "Showing playlist: x\n  No videos here yet"},
		{ShowPlaylist("x", []*types.Video{cats}, nil), "Showing playlist: x\n  Amazing Cats (cat1) []"},
		{ShowPlaylist("x", nil, notFound), "Cannot show playlist x: Playlist does not exist"},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("got %q, want %q", tt.got, tt.expected)
		}
	}
}

func TestResults(t *testing.T) {
	r := search.Results{Query: "cat", Videos: []*types.Video{
		video("cat1", "Amazing Cats", "#cat"),
		video("cat2", "Another Cat Video", "#cat"),
	}}
	expected := "Here are the results for cat:\n" +
		"  1) Amazing Cats (cat1) [#cat]\n" +
		"  2) Another Cat Video (cat2) [#cat]\n" +
		SelectPrompt + "\n" + SelectHint
	if got := Results(r); got != expected {
		t.Errorf("Results() = %q, want %q", got, expected)
	}
	if got := Results(search.Results{Query: "blah"}); got != "No search results for blah" {
		t.Errorf("Results(empty) = %q", got)
	}
}

func TestFlagAllow(t *testing.T) {
	cats := video("cat1", "Amazing Cats")
	cats.SetFlag("dont_like_cats")

	tests := []struct {
		got      string
		expected string
	}{
		{Flag(vidplayer.FlagResult{Video: cats}, nil), "Successfully flagged video: Amazing Cats (reason: dont_like_cats)"},
		{Flag(vidplayer.FlagResult{Video: cats, Stopped: cats}, nil), "Stopping video: Amazing Cats\nSuccessfully flagged video: Amazing Cats (reason: dont_like_cats)"},
		{Flag(vidplayer.FlagResult{}, errs.New(errs.CodeNotFound, errs.Details{})), "Cannot flag video: Video does not exist"},
		{Flag(vidplayer.FlagResult{Video: cats}, errs.New(errs.CodeAlreadyFlagged, errs.Details{})), "Cannot flag video: Video is already flagged"},
		{Allow(cats, nil), "Successfully removed flag from video: Amazing Cats"},
		{Allow(nil, errs.New(errs.CodeNotFound, errs.Details{})), "Cannot remove flag from video: Video does not exist"},
		{Allow(cats, errs.New(errs.CodeNotFlagged, errs.Details{})), "Cannot remove flag from video: Video is not flagged"},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("got %q, want %q", tt.got, tt.expected)
		}
	}
}

func TestVideos(t *testing.T) {
	v := video("cat1", "Amazing Cats", "#cat")
	v.SetFlag("spam")
	expected := "Here's a list of all available videos:\n  Amazing Cats (cat1) [#cat] - FLAGGED (reason: spam)"
	if got := Videos([]*types.Video{v}); got != expected {
		t.Errorf("Videos() = %q, want %q", got, expected)
	}
}
