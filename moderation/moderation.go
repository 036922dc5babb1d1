// Package moderation owns the flag/allow rules for catalogue videos.
package moderation

import (
	"strings"

	"github.com/ytget/vidplayer/errs"
	"github.com/ytget/vidplayer/internal/logger"
	"github.com/ytget/vidplayer/types"
)

// DefaultReason is stored when a video is flagged without a reason.
const DefaultReason = "Not supplied"

// Listener is told about every successful flag, after the video state has
// changed and before Flag returns.
type Listener interface {
	VideoFlagged(v *types.Video)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(v *types.Video)

// VideoFlagged calls f(v).
func (f ListenerFunc) VideoFlagged(v *types.Video) { f(v) }

// Flag marks v as flagged with reason. It fails with AlreadyFlagged, carrying
// the existing reason, if v is flagged already.
func Flag(v *types.Video, reason string) error {
	if v.Flagged() {
		return errs.New(errs.CodeAlreadyFlagged, errs.Details{VideoID: v.ID(), Reason: v.FlagReason()})
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultReason
	}
	v.SetFlag(reason)
	return nil
}

// Allow clears the flag on v. It fails with NotFlagged if there is none.
func Allow(v *types.Video) error {
	if !v.Flagged() {
		return errs.New(errs.CodeNotFlagged, errs.Details{VideoID: v.ID()})
	}
	v.ClearFlag()
	return nil
}

// Moderator applies Flag and Allow and notifies listeners of new flags.
type Moderator struct {
	listeners []Listener
	log       *logger.ComponentLogger
}

// NewModerator creates a Moderator notifying listeners in order.
func NewModerator(listeners ...Listener) *Moderator {
	return &Moderator{
		listeners: listeners,
		log:       logger.WithComponent(logger.ComponentModeration),
	}
}

// Subscribe adds a listener.
func (m *Moderator) Subscribe(l Listener) {
	m.listeners = append(m.listeners, l)
}

// Flag flags v and then notifies every listener.
func (m *Moderator) Flag(v *types.Video, reason string) error {
	if err := Flag(v, reason); err != nil {
		m.log.Debug("flag rejected", logger.Fields{"video_id": v.ID(), "code": errs.CodeOf(err)})
		return err
	}
	m.log.Info("video flagged", logger.Fields{"video_id": v.ID(), "reason": v.FlagReason()})
	for _, l := range m.listeners {
		l.VideoFlagged(v)
	}
	return nil
}

// Allow clears the flag on v.
func (m *Moderator) Allow(v *types.Video) error {
	if err := Allow(v); err != nil {
		m.log.Debug("allow rejected", logger.Fields{"video_id": v.ID(), "code": errs.CodeOf(err)})
		return err
	}
	m.log.Info("video allowed", logger.Fields{"video_id": v.ID()})
	return nil
}
