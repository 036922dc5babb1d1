// Package shell reads player commands line by line and prints their
// outcome, the way the interactive front end and command scripts drive a
// Player.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ytget/vidplayer"
	"github.com/ytget/vidplayer/internal/logger"
	"github.com/ytget/vidplayer/internal/render"
	"github.com/ytget/vidplayer/search"
)

// Prompt is written before every interactive command.
const Prompt = "YT> "

const (
	greeting = "Hello and welcome to vidplayer, what would you like to do?\nEnter HELP for list of available commands or EXIT to terminate."
	goodbye  = "vidplayer is now terminating its execution. Goodbye!"
	invalid  = "Please enter a valid command, type HELP for a list of available commands."
)

// Chooser supplies the answer to the selection prompt after a search.
// ok is false when no answer is available.
type Chooser func() (answer string, ok bool)

type command struct {
	usage string
	min   int
	max   int // -1 means no limit
	run   func(s *Shell, args []string) string
}

var commands = map[string]command{
	"NUMBER_OF_VIDEOS": {usage: "NUMBER_OF_VIDEOS", run: func(s *Shell, _ []string) string { return s.Count() }},
	"SHOW_ALL_VIDEOS":  {usage: "SHOW_ALL_VIDEOS", run: func(s *Shell, _ []string) string { return s.ShowAll() }},
	"PLAY":             {usage: "PLAY <video_id>", min: 1, max: 1, run: func(s *Shell, a []string) string { return s.Play(a[0]) }},
	"PLAY_RANDOM":      {usage: "PLAY_RANDOM", run: func(s *Shell, _ []string) string { return s.PlayRandom() }},
	"STOP":             {usage: "STOP", run: func(s *Shell, _ []string) string { return s.Stop() }},
	"PAUSE":            {usage: "PAUSE", run: func(s *Shell, _ []string) string { return s.Pause() }},
	"CONTINUE":         {usage: "CONTINUE", run: func(s *Shell, _ []string) string { return s.Resume() }},
	"SHOW_PLAYING":     {usage: "SHOW_PLAYING", run: func(s *Shell, _ []string) string { return s.ShowPlaying() }},
	"CREATE_PLAYLIST": {usage: "CREATE_PLAYLIST <playlist_name>", min: 1, max: 1,
		run: func(s *Shell, a []string) string { return s.CreatePlaylist(a[0]) }},
	"ADD_TO_PLAYLIST": {usage: "ADD_TO_PLAYLIST <playlist_name> <video_id>", min: 2, max: 2,
		run: func(s *Shell, a []string) string { return s.AddToPlaylist(a[0], a[1]) }},
	"REMOVE_FROM_PLAYLIST": {usage: "REMOVE_FROM_PLAYLIST <playlist_name> <video_id>", min: 2, max: 2,
		run: func(s *Shell, a []string) string { return s.RemoveFromPlaylist(a[0], a[1]) }},
	"CLEAR_PLAYLIST": {usage: "CLEAR_PLAYLIST <playlist_name>", min: 1, max: 1,
		run: func(s *Shell, a []string) string { return s.ClearPlaylist(a[0]) }},
	"DELETE_PLAYLIST": {usage: "DELETE_PLAYLIST <playlist_name>", min: 1, max: 1,
		run: func(s *Shell, a []string) string { return s.DeletePlaylist(a[0]) }},
	"SHOW_PLAYLIST": {usage: "SHOW_PLAYLIST <playlist_name>", min: 1, max: 1,
		run: func(s *Shell, a []string) string { return s.ShowPlaylist(a[0]) }},
	"SHOW_ALL_PLAYLISTS": {usage: "SHOW_ALL_PLAYLISTS", run: func(s *Shell, _ []string) string { return s.ShowAllPlaylists() }},
	"SEARCH_VIDEOS": {usage: "SEARCH_VIDEOS <search_term>", min: 1, max: 1,
		run: func(s *Shell, a []string) string { return s.SearchTitle(a[0], s.readAnswer) }},
	"SEARCH_VIDEOS_WITH_TAG": {usage: "SEARCH_VIDEOS_WITH_TAG <tag_name>", min: 1, max: 1,
		run: func(s *Shell, a []string) string { return s.SearchTag(a[0], s.readAnswer) }},
	"FLAG_VIDEO": {usage: "FLAG_VIDEO <video_id> [flag_reason]", min: 1, max: -1,
		run: func(s *Shell, a []string) string { return s.Flag(a[0], strings.Join(a[1:], " ")) }},
	"ALLOW_VIDEO": {usage: "ALLOW_VIDEO <video_id>", min: 1, max: 1,
		run: func(s *Shell, a []string) string { return s.Allow(a[0]) }},
}

var order = []string{
	"NUMBER_OF_VIDEOS", "SHOW_ALL_VIDEOS", "PLAY", "PLAY_RANDOM", "STOP", "PAUSE",
	"CONTINUE", "SHOW_PLAYING", "CREATE_PLAYLIST", "ADD_TO_PLAYLIST",
	"REMOVE_FROM_PLAYLIST", "CLEAR_PLAYLIST", "DELETE_PLAYLIST", "SHOW_PLAYLIST",
	"SHOW_ALL_PLAYLISTS", "SEARCH_VIDEOS", "SEARCH_VIDEOS_WITH_TAG", "FLAG_VIDEO",
	"ALLOW_VIDEO",
}

// Help returns the command reference.
func Help() string {
	lines := []string{"Available commands:"}
	for _, name := range order {
		lines = append(lines, "    "+commands[name].usage)
	}
	lines = append(lines, "    HELP", "    EXIT")
	return strings.Join(lines, "\n")
}

// Shell runs commands against a Player and writes rendered outcomes to out.
type Shell struct {
	player *vidplayer.Player
	in     *bufio.Reader
	out    io.Writer
	log    *logger.ComponentLogger
}

// New creates a shell reading commands and selection answers from in.
// A nil in means every search selection is declined.
func New(player *vidplayer.Player, in io.Reader, out io.Writer) *Shell {
	s := &Shell{
		player: player,
		out:    out,
		log:    logger.WithComponent(logger.ComponentShell),
	}
	if in != nil {
		s.in = bufio.NewReader(in)
	}
	return s
}

// Player returns the session the shell drives.
func (s *Shell) Player() *vidplayer.Player { return s.player }

// Run greets the user and executes commands until EXIT or end of input.
func (s *Shell) Run() error {
	s.emit(greeting)
	for {
		fmt.Fprint(s.out, Prompt)
		line, err := s.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				s.emit(goodbye)
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}
		if s.Execute(line) {
			return nil
		}
	}
}

// Execute runs one command line and reports whether it was EXIT. Blank
// lines are ignored and command names are matched ignoring case.
func (s *Shell) Execute(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	name := strings.ToUpper(fields[0])
	args := fields[1:]
	switch name {
	case "EXIT":
		s.emit(goodbye)
		return true
	case "HELP":
		s.emit(Help())
		return false
	}
	cmd, ok := commands[name]
	if !ok {
		s.log.Debug("unknown command", logger.Fields{"command": fields[0]})
		s.emit(invalid)
		return false
	}
	if len(args) < cmd.min || (cmd.max >= 0 && len(args) > cmd.max) {
		s.emit("Usage: " + cmd.usage)
		return false
	}
	s.log.Debug("command", logger.Fields{"command": name, "args": len(args)})
	cmd.run(s, args)
	return false
}

// Count prints the number of videos.
func (s *Shell) Count() string { return s.emit(render.Count(s.player.Count())) }

// ShowAll prints every video.
func (s *Shell) ShowAll() string { return s.emit(render.Videos(s.player.ShowAll())) }

// Play plays the video with id.
func (s *Shell) Play(id string) string { return s.emit(render.Play(s.player.Play(id))) }

// PlayRandom plays a random unflagged video.
func (s *Shell) PlayRandom() string { return s.emit(render.Play(s.player.PlayRandom())) }

// Stop stops the active video.
func (s *Shell) Stop() string { return s.emit(render.Stop(s.player.Stop())) }

// Pause pauses the playing video.
func (s *Shell) Pause() string { return s.emit(render.Pause(s.player.Pause())) }

// Resume continues the paused video.
func (s *Shell) Resume() string { return s.emit(render.Resume(s.player.Resume())) }

// ShowPlaying prints the playback slot.
func (s *Shell) ShowPlaying() string { return s.emit(render.Current(s.player.Current())) }

// CreatePlaylist creates a playlist.
func (s *Shell) CreatePlaylist(name string) string {
	_, err := s.player.CreatePlaylist(name)
	return s.emit(render.CreatePlaylist(name, err))
}

// AddToPlaylist adds a video to a playlist.
func (s *Shell) AddToPlaylist(name, id string) string {
	v, err := s.player.AddToPlaylist(name, id)
	return s.emit(render.AddToPlaylist(name, v, err))
}

// RemoveFromPlaylist removes a video from a playlist.
func (s *Shell) RemoveFromPlaylist(name, id string) string {
	v, err := s.player.RemoveFromPlaylist(name, id)
	return s.emit(render.RemoveFromPlaylist(name, v, err))
}

// ClearPlaylist empties a playlist.
func (s *Shell) ClearPlaylist(name string) string {
	_, err := s.player.ClearPlaylist(name)
	return s.emit(render.ClearPlaylist(name, err))
}

// DeletePlaylist deletes a playlist.
func (s *Shell) DeletePlaylist(name string) string {
	_, err := s.player.DeletePlaylist(name)
	return s.emit(render.DeletePlaylist(name, err))
}

// ShowPlaylist prints the members of a playlist.
func (s *Shell) ShowPlaylist(name string) string {
	videos, err := s.player.ShowPlaylist(name)
	return s.emit(render.ShowPlaylist(name, videos, err))
}

// ShowAllPlaylists prints the playlist names.
func (s *Shell) ShowAllPlaylists() string { return s.emit(render.Playlists(s.player.Playlists())) }

// SearchTitle searches titles and, when there are results, asks choose for
// a selection.
func (s *Shell) SearchTitle(term string, choose Chooser) string {
	return s.searchAndPick(s.player.SearchByTitle(term), choose)
}

// SearchTag searches tags and, when there are results, asks choose for a
// selection.
func (s *Shell) SearchTag(tag string, choose Chooser) string {
	return s.searchAndPick(s.player.SearchByTag(tag), choose)
}

// Flag flags a video. An empty reason uses the default.
func (s *Shell) Flag(id, reason string) string { return s.emit(render.Flag(s.player.Flag(id, reason))) }

// Allow removes the flag from a video.
func (s *Shell) Allow(id string) string { return s.emit(render.Allow(s.player.Allow(id))) }

// Print writes text as its own output line.
func (s *Shell) Print(text string) string { return s.emit(text) }

// Answer returns a Chooser that always answers with answer.
func Answer(answer string) Chooser {
	return func() (string, bool) { return answer, true }
}

func (s *Shell) searchAndPick(r search.Results, choose Chooser) string {
	text := s.emit(render.Results(r))
	if r.Empty() || choose == nil {
		return text
	}
	answer, ok := choose()
	if !ok {
		return text
	}
	t, picked, err := s.player.PlaySelection(r, answer)
	if !picked {
		return text
	}
	return text + "\n" + s.emit(render.Play(t, err))
}

func (s *Shell) readAnswer() (string, bool) {
	line, err := s.readLine()
	if err != nil {
		return "", false
	}
	return line, true
}

// readLine returns the next line without its terminator. A final line with
// no newline is returned with a nil error.
func (s *Shell) readLine() (string, error) {
	if s.in == nil {
		return "", io.EOF
	}
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) emit(text string) string {
	fmt.Fprintln(s.out, text)
	return text
}
