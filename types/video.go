package types

import (
	"fmt"
	"strings"
)

// VideoSpec is one entry supplied by a catalogue source.
type VideoSpec struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

// Video is a catalogue entry. Identity, title and tags are fixed at
// creation; only the moderation substate changes afterwards.
type Video struct {
	id     string
	title  string
	tags   []string
	flag   bool
	reason string
}

// NewVideo creates a Video from spec, copying the tags so later changes to
// the spec do not leak into the catalogue.
func NewVideo(spec VideoSpec) *Video {
	tags := make([]string, len(spec.Tags))
	copy(tags, spec.Tags)
	return &Video{id: spec.ID, title: spec.Title, tags: tags}
}

// ID returns the unique video id.
func (v *Video) ID() string { return v.id }

// Title returns the video title.
func (v *Video) Title() string { return v.title }

// Tags returns a copy of the video tags in their original order and casing.
func (v *Video) Tags() []string {
	out := make([]string, len(v.tags))
	copy(out, v.tags)
	return out
}

// Flagged reports whether the video is currently flagged.
func (v *Video) Flagged() bool { return v.flag }

// FlagReason returns the flag reason, empty when the video is not flagged.
func (v *Video) FlagReason() string { return v.reason }

// SetFlag marks the video as flagged. Policy checks live in package moderation.
func (v *Video) SetFlag(reason string) {
	v.flag = true
	v.reason = reason
}

// ClearFlag removes the flag and its reason.
func (v *Video) ClearFlag() {
	v.flag = false
	v.reason = ""
}

// Spec returns the catalogue triple the video was built from.
func (v *Video) Spec() VideoSpec {
	return VideoSpec{ID: v.id, Title: v.title, Tags: v.Tags()}
}

// String returns the display form: "Title (id) [#a #b]", with a
// " - FLAGGED (reason: r)" suffix while flagged.
func (v *Video) String() string {
	s := fmt.Sprintf("%s (%s) [%s]", v.title, v.id, strings.Join(v.tags, " "))
	if v.flag {
		s += fmt.Sprintf(" - FLAGGED (reason: %s)", v.reason)
	}
	return s
}
