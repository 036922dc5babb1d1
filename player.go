package vidplayer

import (
	"math/rand/v2"

	"github.com/ytget/vidplayer/catalogue"
	"github.com/ytget/vidplayer/errs"
	"github.com/ytget/vidplayer/internal/logger"
	"github.com/ytget/vidplayer/moderation"
	"github.com/ytget/vidplayer/playback"
	"github.com/ytget/vidplayer/playlist"
	"github.com/ytget/vidplayer/search"
	"github.com/ytget/vidplayer/types"
)

// Transition is the outcome of a successful play.
type Transition = playback.Transition

// State is the playback slot state.
type State = playback.State

// Slot states.
const (
	Empty   = playback.Empty
	Playing = playback.Playing
	Paused  = playback.Paused
)

// FlagResult is the outcome of a successful flag. Stopped is set when the
// flagged video occupied the playback slot.
type FlagResult struct {
	Video   *types.Video
	Stopped *types.Video
}

// Player is one user session. It is not safe for concurrent use; commands
// are expected to arrive one at a time.
type Player struct {
	catalogue *catalogue.Catalogue
	rnd       *rand.Rand
	playback  *playback.Controller
	playlists *playlist.Store
	moderator *moderation.Moderator
	searcher  *search.Searcher
	listeners []moderation.Listener
	log       *logger.ComponentLogger
}

// New creates a Player over the bundled sample catalogue.
func New() *Player {
	p := &Player{log: logger.WithComponent(logger.ComponentApp)}
	p.reset(catalogue.Sample())
	return p
}

// WithCatalogue replaces the catalogue. Playback and playlists start over
// because they reference videos of the previous catalogue.
func (p *Player) WithCatalogue(c *catalogue.Catalogue) *Player {
	p.reset(c)
	return p
}

// WithRand sets the random source used by PlayRandom. Nil restores the
// default source.
func (p *Player) WithRand(rnd *rand.Rand) *Player {
	p.rnd = rnd
	p.playback.SetRand(rnd)
	return p
}

// WithListener registers l to be told about every newly flagged video.
func (p *Player) WithListener(l moderation.Listener) *Player {
	p.listeners = append(p.listeners, l)
	p.moderator.Subscribe(l)
	return p
}

func (p *Player) reset(c *catalogue.Catalogue) {
	p.catalogue = c
	p.playback = playback.NewController(c, p.rnd)
	p.playlists = playlist.NewStore(c)
	p.moderator = moderation.NewModerator(p.playback)
	for _, l := range p.listeners {
		p.moderator.Subscribe(l)
	}
	p.searcher = search.New(c)
	p.log.Debug("session ready", logger.Fields{"videos": c.Len()})
}

// Catalogue returns the catalogue the player works on.
func (p *Player) Catalogue() *catalogue.Catalogue { return p.catalogue }

// Count returns the number of videos in the catalogue.
func (p *Player) Count() int { return p.catalogue.Len() }

// ShowAll returns every video sorted by title, flagged ones included.
func (p *Player) ShowAll() []*types.Video { return p.catalogue.AllSorted() }

// Video looks a video up by id.
func (p *Player) Video(id string) (*types.Video, bool) { return p.catalogue.FindByID(id) }

// Play starts the video with id. Whatever occupied the slot is stopped and
// reported in the transition.
func (p *Player) Play(id string) (Transition, error) { return p.playback.Play(id) }

// PlayRandom plays a random unflagged video.
func (p *Player) PlayRandom() (Transition, error) { return p.playback.PlayRandom() }

// Stop empties the playback slot and returns the stopped video.
func (p *Player) Stop() (*types.Video, error) { return p.playback.Stop() }

// Pause pauses the playing video.
func (p *Player) Pause() (*types.Video, error) { return p.playback.Pause() }

// Resume continues the paused video.
func (p *Player) Resume() (*types.Video, error) { return p.playback.Resume() }

// Current reports the video in the playback slot and its state.
func (p *Player) Current() (*types.Video, State) { return p.playback.Current() }

// CreatePlaylist creates an empty playlist.
func (p *Player) CreatePlaylist(name string) (*playlist.Playlist, error) {
	return p.playlists.Create(name)
}

// AddToPlaylist appends the video with id to the named playlist.
func (p *Player) AddToPlaylist(name, id string) (*types.Video, error) {
	return p.playlists.Add(name, id)
}

// RemoveFromPlaylist removes the video with id from the named playlist.
func (p *Player) RemoveFromPlaylist(name, id string) (*types.Video, error) {
	return p.playlists.Remove(name, id)
}

// ClearPlaylist removes every video from the named playlist.
func (p *Player) ClearPlaylist(name string) (*playlist.Playlist, error) {
	return p.playlists.Clear(name)
}

// DeletePlaylist removes the named playlist.
func (p *Player) DeletePlaylist(name string) (*playlist.Playlist, error) {
	return p.playlists.Delete(name)
}

// Playlists returns the playlist names sorted ignoring case.
func (p *Player) Playlists() []string { return p.playlists.Names() }

// ShowPlaylist returns the members of the named playlist in insertion order.
func (p *Player) ShowPlaylist(name string) ([]*types.Video, error) {
	return p.playlists.Show(name)
}

// SearchByTitle finds unflagged videos whose title contains term.
func (p *Player) SearchByTitle(term string) search.Results { return p.searcher.Title(term) }

// SearchByTag finds unflagged videos carrying tag.
func (p *Player) SearchByTag(tag string) search.Results { return p.searcher.Tag(tag) }

// PlaySelection plays the result chosen by input. ok is false when input is
// not a valid choice, in which case nothing happens.
func (p *Player) PlaySelection(r search.Results, input string) (t Transition, ok bool, err error) {
	v, ok := r.Select(input)
	if !ok {
		p.log.Debug("no selection", logger.Fields{"query": r.Query, "results": r.Len()})
		return Transition{}, false, nil
	}
	t, err = p.Play(v.ID())
	return t, true, err
}

// Flag marks the video with id as flagged. An empty reason is stored as
// moderation.DefaultReason. If the video was playing or paused the slot is
// emptied and the video reported as Stopped.
func (p *Player) Flag(id, reason string) (FlagResult, error) {
	v, ok := p.catalogue.FindByID(id)
	if !ok {
		return FlagResult{}, errs.New(errs.CodeNotFound, errs.Details{VideoID: id})
	}
	current, state := p.playback.Current()
	if err := p.moderator.Flag(v, reason); err != nil {
		return FlagResult{Video: v}, err
	}
	res := FlagResult{Video: v}
	if state.IsActive() && current == v {
		res.Stopped = v
	}
	return res, nil
}

// Allow removes the flag from the video with id.
func (p *Player) Allow(id string) (*types.Video, error) {
	v, ok := p.catalogue.FindByID(id)
	if !ok {
		return nil, errs.New(errs.CodeNotFound, errs.Details{VideoID: id})
	}
	if err := p.moderator.Allow(v); err != nil {
		return v, err
	}
	return v, nil
}
