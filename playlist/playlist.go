// Package playlist manages named, ordered collections of catalogue videos.
//
// Playlists store video ids rather than copies, so moderation changes are
// seen through every playlist at once.
package playlist

import (
	"slices"

	"github.com/google/uuid"

	"github.com/ytget/vidplayer/errs"
	"github.com/ytget/vidplayer/internal/logger"
	"github.com/ytget/vidplayer/internal/sanitize"
	"github.com/ytget/vidplayer/types"
)

// Library resolves video ids.
type Library interface {
	FindByID(id string) (*types.Video, bool)
}

// Playlist is a named list of video ids without duplicates.
type Playlist struct {
	id       uuid.UUID
	name     string
	videoIDs []string
}

// ID returns the identifier assigned at creation.
func (p *Playlist) ID() uuid.UUID { return p.id }

// Name returns the name with the casing it was created with.
func (p *Playlist) Name() string { return p.name }

// VideoIDs returns the member ids in insertion order.
func (p *Playlist) VideoIDs() []string { return slices.Clone(p.videoIDs) }

// Len returns the number of members.
func (p *Playlist) Len() int { return len(p.videoIDs) }

// Contains reports whether id is a member.
func (p *Playlist) Contains(id string) bool {
	return slices.Contains(p.videoIDs, id)
}

// Store keeps playlists keyed by folded name, remembering creation order.
// It is not safe for concurrent use.
type Store struct {
	library Library
	byKey   map[string]*Playlist
	order   []string
	log     *logger.ComponentLogger
}

// NewStore creates an empty store resolving ids through library.
func NewStore(library Library) *Store {
	return &Store{
		library: library,
		byKey:   make(map[string]*Playlist),
		log:     logger.WithComponent(logger.ComponentPlaylist),
	}
}

// Len returns the number of playlists.
func (s *Store) Len() int { return len(s.order) }

// Get looks a playlist up by name, ignoring case.
func (s *Store) Get(name string) (*Playlist, bool) {
	p, ok := s.byKey[sanitize.Key(name)]
	return p, ok
}

// Create adds an empty playlist. Names are unique ignoring case.
func (s *Store) Create(name string) (*Playlist, error) {
	key := sanitize.Key(name)
	if _, exists := s.byKey[key]; exists {
		return nil, s.reject("create", errs.New(errs.CodeDuplicateName, errs.Details{Playlist: name}))
	}
	p := &Playlist{id: uuid.New(), name: sanitize.PlaylistName(name)}
	s.byKey[key] = p
	s.order = append(s.order, key)
	s.log.Info("playlist created", logger.Fields{"playlist": p.name, "playlist_id": p.id.String()})
	return p, nil
}

// Add appends the video with id to the named playlist. Checks run in order:
// playlist exists, video exists, video not flagged, video not yet a member.
func (s *Store) Add(name, id string) (*types.Video, error) {
	p, err := s.lookup("add", name)
	if err != nil {
		return nil, err
	}
	v, ok := s.library.FindByID(id)
	if !ok {
		return nil, s.reject("add", errs.New(errs.CodeVideoNotFound, errs.Details{Playlist: name, VideoID: id}))
	}
	if v.Flagged() {
		return v, s.reject("add", errs.New(errs.CodeAlreadyFlagged, errs.Details{Playlist: name, VideoID: id, Reason: v.FlagReason()}))
	}
	if p.Contains(id) {
		return v, s.reject("add", errs.New(errs.CodeAlreadyInPlaylist, errs.Details{Playlist: name, VideoID: id}))
	}
	p.videoIDs = append(p.videoIDs, id)
	s.log.Debug("video added", logger.Fields{"playlist_id": p.id.String(), "video_id": id, "size": p.Len()})
	return v, nil
}

// Remove drops the video with id from the named playlist. An id unknown to
// the catalogue fails with VideoNotFound whether or not it is a member.
func (s *Store) Remove(name, id string) (*types.Video, error) {
	p, err := s.lookup("remove", name)
	if err != nil {
		return nil, err
	}
	v, ok := s.library.FindByID(id)
	if !ok {
		return nil, s.reject("remove", errs.New(errs.CodeVideoNotFound, errs.Details{Playlist: name, VideoID: id}))
	}
	i := slices.Index(p.videoIDs, id)
	if i < 0 {
		return v, s.reject("remove", errs.New(errs.CodeNotInPlaylist, errs.Details{Playlist: name, VideoID: id}))
	}
	p.videoIDs = slices.Delete(p.videoIDs, i, i+1)
	s.log.Debug("video removed", logger.Fields{"playlist_id": p.id.String(), "video_id": id, "size": p.Len()})
	return v, nil
}

// Clear empties the named playlist; the playlist itself remains.
func (s *Store) Clear(name string) (*Playlist, error) {
	p, err := s.lookup("clear", name)
	if err != nil {
		return nil, err
	}
	p.videoIDs = nil
	s.log.Debug("playlist cleared", logger.Fields{"playlist_id": p.id.String()})
	return p, nil
}

// Delete removes the named playlist from the store.
func (s *Store) Delete(name string) (*Playlist, error) {
	p, err := s.lookup("delete", name)
	if err != nil {
		return nil, err
	}
	key := sanitize.Key(name)
	delete(s.byKey, key)
	s.order = slices.DeleteFunc(s.order, func(k string) bool { return k == key })
	s.log.Info("playlist deleted", logger.Fields{"playlist": p.name, "playlist_id": p.id.String()})
	return p, nil
}

// List returns the playlists in creation order.
func (s *Store) List() []*Playlist {
	out := make([]*Playlist, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.byKey[key])
	}
	return out
}

// Names returns the display names sorted ignoring case.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.order))
	for _, p := range s.List() {
		names = append(names, p.name)
	}
	slices.SortStableFunc(names, sanitize.CompareFold)
	return names
}

// Show returns the members of the named playlist in insertion order. An
// empty playlist yields an empty, non-nil slice.
func (s *Store) Show(name string) ([]*types.Video, error) {
	p, err := s.lookup("show", name)
	if err != nil {
		return nil, err
	}
	videos := make([]*types.Video, 0, p.Len())
	for _, id := range p.videoIDs {
		if v, ok := s.library.FindByID(id); ok {
			videos = append(videos, v)
		}
	}
	return videos, nil
}

func (s *Store) lookup(op, name string) (*Playlist, error) {
	p, ok := s.Get(name)
	if !ok {
		return nil, s.reject(op, errs.New(errs.CodePlaylistNotFound, errs.Details{Playlist: name}))
	}
	return p, nil
}

func (s *Store) reject(op string, err *errs.Error) error {
	s.log.Debug("command rejected", logger.Fields{"op": op, "code": err.Code, "playlist": err.Details.Playlist})
	return err
}
