// Package playback implements the single playing/paused slot.
package playback

import (
	"math/rand/v2"

	"github.com/ytget/vidplayer/errs"
	"github.com/ytget/vidplayer/internal/logger"
	"github.com/ytget/vidplayer/types"
)

// State is the slot state.
type State int

const (
	Empty State = iota
	Playing
	Paused
)

var stateNames = map[State]string{
	Empty:   "empty",
	Playing: "playing",
	Paused:  "paused",
}

// String returns the state name.
func (s State) String() string {
	return stateNames[s]
}

// IsActive reports whether a video occupies the slot.
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// Library is the catalogue view the controller needs.
type Library interface {
	FindByID(id string) (*types.Video, bool)
	All() []*types.Video
}

// Transition describes a successful play: the video implicitly stopped, if
// any, and the video now playing.
type Transition struct {
	Stopped *types.Video
	Started *types.Video
}

// Controller owns the playback slot. It is not safe for concurrent use.
type Controller struct {
	library Library
	rnd     *rand.Rand
	state   State
	current *types.Video
	log     *logger.ComponentLogger
}

// NewController creates a controller with an empty slot. A nil rnd uses the
// package-level source of math/rand/v2.
func NewController(library Library, rnd *rand.Rand) *Controller {
	return &Controller{
		library: library,
		rnd:     rnd,
		log:     logger.WithComponent(logger.ComponentPlayback),
	}
}

// SetRand replaces the random source used by PlayRandom.
func (c *Controller) SetRand(rnd *rand.Rand) {
	c.rnd = rnd
}

// Current returns the active video and the slot state. The video is nil when
// the slot is Empty.
func (c *Controller) Current() (*types.Video, State) {
	return c.current, c.state
}

// Play starts the video with id, stopping whatever occupied the slot.
// Flagged videos are refused and the slot is left untouched.
func (c *Controller) Play(id string) (Transition, error) {
	v, ok := c.library.FindByID(id)
	if !ok {
		return Transition{}, c.reject("play", errs.New(errs.CodeNotFound, errs.Details{VideoID: id}))
	}
	if v.Flagged() {
		return Transition{}, c.reject("play", errs.New(errs.CodeFlagged, errs.Details{VideoID: id, Reason: v.FlagReason()}))
	}
	return c.start(v), nil
}

// PlayRandom plays a uniformly chosen unflagged video.
func (c *Controller) PlayRandom() (Transition, error) {
	var candidates []*types.Video
	for _, v := range c.library.All() {
		if !v.Flagged() {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return Transition{}, c.reject("play random", errs.New(errs.CodeNoVideosAvailable, errs.Details{}))
	}
	return c.start(candidates[c.intN(len(candidates))]), nil
}

// Stop empties the slot and returns the video that was active.
func (c *Controller) Stop() (*types.Video, error) {
	if !c.state.IsActive() {
		return nil, c.reject("stop", errs.New(errs.CodeNothingPlaying, errs.Details{}))
	}
	return c.clear("stop"), nil
}

// Pause moves Playing to Paused.
func (c *Controller) Pause() (*types.Video, error) {
	switch c.state {
	case Paused:
		return c.current, c.reject("pause", errs.New(errs.CodeAlreadyPaused, errs.Details{VideoID: c.current.ID()}))
	case Playing:
		c.set(Paused, c.current, "pause")
		return c.current, nil
	default:
		return nil, c.reject("pause", errs.New(errs.CodeNothingPlaying, errs.Details{}))
	}
}

// Resume moves Paused back to Playing.
func (c *Controller) Resume() (*types.Video, error) {
	switch c.state {
	case Playing:
		return c.current, c.reject("resume", errs.New(errs.CodeNotPaused, errs.Details{VideoID: c.current.ID()}))
	case Paused:
		c.set(Playing, c.current, "resume")
		return c.current, nil
	default:
		return nil, c.reject("resume", errs.New(errs.CodeNothingPlaying, errs.Details{}))
	}
}

// VideoFlagged empties the slot when v occupies it. It is registered as a
// moderation listener so a flag always evicts the flagged video.
func (c *Controller) VideoFlagged(v *types.Video) {
	if c.state.IsActive() && c.current.ID() == v.ID() {
		c.clear("flagged")
	}
}

func (c *Controller) start(v *types.Video) Transition {
	var t Transition
	if c.state.IsActive() {
		t.Stopped = c.current
	}
	t.Started = v
	c.set(Playing, v, "play")
	return t
}

func (c *Controller) clear(cause string) *types.Video {
	prev := c.current
	c.set(Empty, nil, cause)
	return prev
}

func (c *Controller) set(state State, v *types.Video, cause string) {
	from := c.state
	c.state = state
	c.current = v
	fields := logger.Fields{"from": from.String(), "to": state.String(), "cause": cause}
	if v != nil {
		fields["video_id"] = v.ID()
	}
	c.log.Debug("slot changed", fields)
}

func (c *Controller) reject(op string, err *errs.Error) error {
	c.log.Debug("command rejected", logger.Fields{"op": op, "code": err.Code, "state": c.state.String()})
	return err
}

func (c *Controller) intN(n int) int {
	if c.rnd != nil {
		return c.rnd.IntN(n)
	}
	return rand.IntN(n)
}
