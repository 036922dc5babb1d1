// Package search runs catalogue queries for the user and parses the
// 1-based selection made from the numbered results.
package search

import (
	"strconv"
	"strings"

	"github.com/ytget/vidplayer/internal/logger"
	"github.com/ytget/vidplayer/types"
)

// Kind tells which query produced a result set.
type Kind int

const (
	ByTitle Kind = iota
	ByTag
)

// String returns the query kind name.
func (k Kind) String() string {
	if k == ByTag {
		return "tag"
	}
	return "title"
}

// Source is the catalogue view a search needs.
type Source interface {
	FindByTitle(term string) []*types.Video
	FindByTag(tag string) []*types.Video
}

// Results is a numbered result set; Videos[i] is choice i+1.
type Results struct {
	Query  string
	Kind   Kind
	Videos []*types.Video
}

// Len returns the number of results.
func (r Results) Len() int { return len(r.Videos) }

// Empty reports whether there is nothing to select.
func (r Results) Empty() bool { return len(r.Videos) == 0 }

// Select parses a 1-based choice. Anything that is not an integer in [1, N]
// after trimming means no selection.
func (r Results) Select(input string) (*types.Video, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > len(r.Videos) {
		return nil, false
	}
	return r.Videos[n-1], true
}

// Searcher runs searches against a Source, hiding flagged videos.
type Searcher struct {
	source Source
	log    *logger.ComponentLogger
}

// New creates a Searcher over source.
func New(source Source) *Searcher {
	return &Searcher{source: source, log: logger.WithComponent(logger.ComponentSearch)}
}

// Title finds unflagged videos whose title contains term, ignoring case.
func (s *Searcher) Title(term string) Results {
	return s.results(term, ByTitle, s.source.FindByTitle(term))
}

// Tag finds unflagged videos carrying tag, ignoring case.
func (s *Searcher) Tag(tag string) Results {
	return s.results(tag, ByTag, s.source.FindByTag(tag))
}

func (s *Searcher) results(query string, kind Kind, found []*types.Video) Results {
	videos := make([]*types.Video, 0, len(found))
	for _, v := range found {
		if !v.Flagged() {
			videos = append(videos, v)
		}
	}
	s.log.Debug("search", logger.Fields{
		"kind":    kind.String(),
		"query":   query,
		"matched": len(found),
		"shown":   len(videos),
	})
	return Results{Query: query, Kind: kind, Videos: videos}
}
