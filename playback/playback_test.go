package playback

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/ytget/vidplayer/catalogue"
	"github.com/ytget/vidplayer/errs"
	"github.com/ytget/vidplayer/moderation"
	"github.com/ytget/vidplayer/types"
)

func newCatalogue(t *testing.T) *catalogue.Catalogue {
	t.Helper()
	c, err := catalogue.New([]types.VideoSpec{
		{ID: "cat1", Title: "Amazing Cats", Tags: []string{"#cat", "#fun"}},
		{ID: "cat2", Title: "Another Cat Video", Tags: []string{"#cat"}},
		{ID: "dog", Title: "Funny Dogs", Tags: []string{"#dog"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func assertSlot(t *testing.T, c *Controller, state State, id string) {
	t.Helper()
	v, s := c.Current()
	if s != state {
		t.Fatalf("state = %s, want %s", s, state)
	}
	if id == "" && v != nil {
		t.Fatalf("slot holds %s, want none", v.ID())
	}
	if id != "" && (v == nil || v.ID() != id) {
		t.Fatalf("slot holds %v, want %s", v, id)
	}
}

func TestPlay(t *testing.T) {
	c := NewController(newCatalogue(t), nil)

	tr, err := c.Play("cat1")
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if tr.Stopped != nil || tr.Started.ID() != "cat1" {
		t.Fatalf("transition = %+v", tr)
	}
	assertSlot(t, c, Playing, "cat1")

	tr, err = c.Play("cat2")
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if tr.Stopped == nil || tr.Stopped.ID() != "cat1" || tr.Started.ID() != "cat2" {
		t.Fatalf("transition = %+v", tr)
	}
	assertSlot(t, c, Playing, "cat2")
}

func TestPlay_FromPausedStopsImplicitly(t *testing.T) {
	c := NewController(newCatalogue(t), nil)
	_, _ = c.Play("cat1")
	_, _ = c.Pause()

	tr, err := c.Play("dog")
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if tr.Stopped == nil || tr.Stopped.ID() != "cat1" {
		t.Fatalf("expected implicit stop of cat1, got %+v", tr)
	}
	assertSlot(t, c, Playing, "dog")
}

func TestPlay_NotFound(t *testing.T) {
	c := NewController(newCatalogue(t), nil)
	_, _ = c.Play("cat1")

	_, err := c.Play("missing")
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("err = %v, want NotFound", err)
	}
	assertSlot(t, c, Playing, "cat1")
}

func TestPlay_FlaggedLeavesSlotUnchanged(t *testing.T) {
	cat := newCatalogue(t)
	c := NewController(cat, nil)
	v, _ := cat.FindByID("cat2")
	v.SetFlag("spam")

	for _, setup := range []func(){
		func() {},
		func() { _, _ = c.Play("cat1") },
		func() { _, _ = c.Pause() },
	} {
		setup()
		_, before := c.Current()
		prev, _ := c.Current()

		_, err := c.Play("cat2")
		if errs.CodeOf(err) != errs.CodeFlagged || errs.ReasonOf(err) != "spam" {
			t.Fatalf("err = %v, want Flagged(spam)", err)
		}
		cur, after := c.Current()
		if before != after || cur != prev {
			t.Fatalf("slot changed from %s to %s", before, after)
		}
	}
}

func TestStop(t *testing.T) {
	c := NewController(newCatalogue(t), nil)

	if _, err := c.Stop(); errs.CodeOf(err) != errs.CodeNothingPlaying {
		t.Fatalf("err = %v, want NothingPlaying", err)
	}

	_, _ = c.Play("cat1")
	v, err := c.Stop()
	if err != nil || v.ID() != "cat1" {
		t.Fatalf("Stop = %v, %v", v, err)
	}
	assertSlot(t, c, Empty, "")

	_, _ = c.Play("dog")
	_, _ = c.Pause()
	v, err = c.Stop()
	if err != nil || v.ID() != "dog" {
		t.Fatalf("Stop from paused = %v, %v", v, err)
	}
	assertSlot(t, c, Empty, "")
}

func TestPauseResume(t *testing.T) {
	c := NewController(newCatalogue(t), nil)

	if _, err := c.Pause(); errs.CodeOf(err) != errs.CodeNothingPlaying {
		t.Fatalf("Pause on empty: %v", err)
	}
	if _, err := c.Resume(); errs.CodeOf(err) != errs.CodeNothingPlaying {
		t.Fatalf("Resume on empty: %v", err)
	}

	_, _ = c.Play("cat1")
	if _, err := c.Resume(); errs.CodeOf(err) != errs.CodeNotPaused {
		t.Fatalf("Resume while playing: %v", err)
	}
	if v, err := c.Pause(); err != nil || v.ID() != "cat1" {
		t.Fatalf("Pause = %v, %v", v, err)
	}
	assertSlot(t, c, Paused, "cat1")

	v, err := c.Pause()
	if errs.CodeOf(err) != errs.CodeAlreadyPaused || v == nil || v.ID() != "cat1" {
		t.Fatalf("second Pause = %v, %v", v, err)
	}
	if v, err := c.Resume(); err != nil || v.ID() != "cat1" {
		t.Fatalf("Resume = %v, %v", v, err)
	}
	assertSlot(t, c, Playing, "cat1")
}

func TestPlayRandom(t *testing.T) {
	cat := newCatalogue(t)
	c := NewController(cat, rand.New(rand.NewPCG(1, 2)))
	for _, id := range []string{"cat1", "dog"} {
		v, _ := cat.FindByID(id)
		v.SetFlag("x")
	}

	for i := 0; i < 20; i++ {
		tr, err := c.PlayRandom()
		if err != nil {
			t.Fatalf("PlayRandom: %v", err)
		}
		if tr.Started.ID() != "cat2" {
			t.Fatalf("picked flagged video %s", tr.Started.ID())
		}
		if i > 0 && (tr.Stopped == nil || tr.Stopped.ID() != "cat2") {
			t.Fatalf("expected implicit stop, got %+v", tr)
		}
	}
}

func TestPlayRandom_CoversCandidates(t *testing.T) {
	c := NewController(newCatalogue(t), rand.New(rand.NewPCG(7, 7)))
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		tr, err := c.PlayRandom()
		if err != nil {
			t.Fatal(err)
		}
		seen[tr.Started.ID()] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected all 3 videos over 200 draws, saw %v", seen)
	}
}

func TestPlayRandom_NoVideosAvailable(t *testing.T) {
	empty, _ := catalogue.New(nil)
	c := NewController(empty, nil)
	if _, err := c.PlayRandom(); errs.CodeOf(err) != errs.CodeNoVideosAvailable {
		t.Fatalf("empty catalogue: %v", err)
	}

	cat := newCatalogue(t)
	c = NewController(cat, nil)
	_, _ = c.Play("dog")
	for _, v := range cat.All() {
		v.SetFlag("x")
	}
	if _, err := c.PlayRandom(); errs.CodeOf(err) != errs.CodeNoVideosAvailable {
		t.Fatalf("all flagged: %v", err)
	}
	assertSlot(t, c, Playing, "dog")
}

func TestFlagEvictsActiveVideo(t *testing.T) {
	for _, pause := range []bool{false, true} {
		cat := newCatalogue(t)
		c := NewController(cat, nil)
		m := moderation.NewModerator(c)

		_, _ = c.Play("cat1")
		if pause {
			_, _ = c.Pause()
		}
		v, _ := cat.FindByID("cat1")
		if err := m.Flag(v, "spam"); err != nil {
			t.Fatalf("Flag: %v", err)
		}
		assertSlot(t, c, Empty, "")

		_, err := c.Play("cat1")
		if errs.CodeOf(err) != errs.CodeFlagged || errs.ReasonOf(err) != "spam" {
			t.Fatalf("Play after flag: %v", err)
		}
	}
}

func TestFlagOtherVideoKeepsSlot(t *testing.T) {
	cat := newCatalogue(t)
	c := NewController(cat, nil)
	m := moderation.NewModerator(c)

	_, _ = c.Play("cat1")
	v, _ := cat.FindByID("dog")
	_ = m.Flag(v, "")
	assertSlot(t, c, Playing, "cat1")
}

func TestState_String(t *testing.T) {
	if Empty.String() != "empty" || Playing.String() != "playing" || Paused.String() != "paused" {
		t.Fatalf("unexpected names")
	}
	if Empty.IsActive() || !Playing.IsActive() || !Paused.IsActive() {
		t.Fatalf("unexpected IsActive")
	}
}
