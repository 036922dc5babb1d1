package types

import "testing"

func TestVideo_String(t *testing.T) {
	v := NewVideo(VideoSpec{ID: "cat1", Title: "Amazing Cats", Tags: []string{"#cat", "#fun"}})

	if got, want := v.String(), "Amazing Cats (cat1) [#cat #fun]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	v.SetFlag("spam")
	if got, want := v.String(), "Amazing Cats (cat1) [#cat #fun] - FLAGGED (reason: spam)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestVideo_NoTags(t *testing.T) {
	v := NewVideo(VideoSpec{ID: "nothing", Title: "Video about nothing"})
	if got, want := v.String(), "Video about nothing (nothing) []"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestVideo_TagsAreCopied(t *testing.T) {
	spec := VideoSpec{ID: "dog", Title: "Funny Dogs", Tags: []string{"#dog", "#animal"}}
	v := NewVideo(spec)

	spec.Tags[0] = "#changed"
	if v.Tags()[0] != "#dog" {
		t.Fatalf("tags changed through spec: %v", v.Tags())
	}

	tags := v.Tags()
	tags[1] = "#changed"
	if v.Tags()[1] != "#animal" {
		t.Fatalf("tags changed through accessor: %v", v.Tags())
	}
}

func TestVideo_FlagRoundTrip(t *testing.T) {
	v := NewVideo(VideoSpec{ID: "cat1", Title: "Amazing Cats"})
	if v.Flagged() || v.FlagReason() != "" {
		t.Fatalf("new video should be allowed")
	}
	v.SetFlag("dont_like_cats")
	if !v.Flagged() || v.FlagReason() != "dont_like_cats" {
		t.Fatalf("flag not applied: %v %q", v.Flagged(), v.FlagReason())
	}
	v.ClearFlag()
	if v.Flagged() || v.FlagReason() != "" {
		t.Fatalf("flag not cleared: %v %q", v.Flagged(), v.FlagReason())
	}
}

func TestVideo_Spec(t *testing.T) {
	spec := VideoSpec{ID: "g", Title: "Life at Google", Tags: []string{"#google"}}
	got := NewVideo(spec).Spec()
	if got.ID != spec.ID || got.Title != spec.Title || len(got.Tags) != 1 || got.Tags[0] != "#google" {
		t.Fatalf("Spec() = %+v, want %+v", got, spec)
	}
}
