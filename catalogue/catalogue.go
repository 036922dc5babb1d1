// Package catalogue holds the fixed set of known videos and answers
// lookups by id, title substring and tag.
//
// Queries never filter on flag state; callers decide what to hide.
package catalogue

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ytget/vidplayer/internal/sanitize"
	"github.com/ytget/vidplayer/types"
)

// Catalogue maps video ids to videos. Entries are fixed after New.
type Catalogue struct {
	videos []*types.Video
	byID   map[string]*types.Video
}

// New builds a catalogue from specs, keeping their order. Ids and titles
// must be non-empty and ids unique; on error no catalogue is returned.
func New(specs []types.VideoSpec) (*Catalogue, error) {
	c := &Catalogue{
		videos: make([]*types.Video, 0, len(specs)),
		byID:   make(map[string]*types.Video, len(specs)),
	}
	for i, spec := range specs {
		spec.ID = strings.TrimSpace(spec.ID)
		spec.Title = strings.TrimSpace(spec.Title)
		if spec.ID == "" {
			return nil, fmt.Errorf("entry %d: empty video id", i+1)
		}
		if spec.Title == "" {
			return nil, fmt.Errorf("entry %d (%s): empty title", i+1, spec.ID)
		}
		if _, dup := c.byID[spec.ID]; dup {
			return nil, fmt.Errorf("entry %d: duplicate video id %q", i+1, spec.ID)
		}
		v := types.NewVideo(spec)
		c.videos = append(c.videos, v)
		c.byID[spec.ID] = v
	}
	return c, nil
}

// Len returns the number of videos.
func (c *Catalogue) Len() int { return len(c.videos) }

// FindByID returns the video with exactly this id.
func (c *Catalogue) FindByID(id string) (*types.Video, bool) {
	v, ok := c.byID[id]
	return v, ok
}

// All returns every video in load order.
func (c *Catalogue) All() []*types.Video {
	return slices.Clone(c.videos)
}

// AllSorted returns every video ordered by title, case-insensitively.
func (c *Catalogue) AllSorted() []*types.Video {
	return sortByTitle(c.All())
}

// FindByTitle returns the videos whose title contains term, ignoring case,
// ordered by title.
func (c *Catalogue) FindByTitle(term string) []*types.Video {
	var out []*types.Video
	for _, v := range c.videos {
		if sanitize.ContainsFold(v.Title(), term) {
			out = append(out, v)
		}
	}
	return sortByTitle(out)
}

// FindByTag returns the videos carrying tag, compared case-insensitively
// and in full, ordered by title.
func (c *Catalogue) FindByTag(tag string) []*types.Video {
	tag = strings.TrimSpace(tag)
	var out []*types.Video
	for _, v := range c.videos {
		for _, t := range v.Tags() {
			if sanitize.EqualFold(t, tag) {
				out = append(out, v)
				break
			}
		}
	}
	return sortByTitle(out)
}

// sortByTitle sorts in place; the stable sort keeps load order for equal titles.
func sortByTitle(videos []*types.Video) []*types.Video {
	slices.SortStableFunc(videos, func(a, b *types.Video) int {
		return sanitize.CompareFold(a.Title(), b.Title())
	})
	return videos
}
