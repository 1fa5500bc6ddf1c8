package deck

import (
	"testing"

	"github.com/kei/rwadeck/internal/catalog"
)

// memLikes is an in-memory Liker for deck tests.
type memLikes map[string]struct{}

func (m memLikes) Like(id string) bool {
	if _, ok := m[id]; ok {
		return false
	}
	m[id] = struct{}{}
	return true
}

func (m memLikes) Liked(id string) bool {
	_, ok := m[id]
	return ok
}

func testAssets(n int) []catalog.Asset {
	out := make([]catalog.Asset, n)
	for i := range out {
		out[i] = catalog.Asset{ID: string(rune('a' + i))}
	}
	return out
}

func TestDecide(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		name     string
		offset   Vec
		velocity Vec
		want     Decision
	}{
		{"slow drag right past distance", Vec{X: 51}, Vec{}, DecisionRight},
		{"slow drag left past distance", Vec{X: -51}, Vec{}, DecisionLeft},
		{"exactly at distance snaps back", Vec{X: 50}, Vec{}, DecisionNone},
		{"exactly at negative distance snaps back", Vec{X: -50}, Vec{}, DecisionNone},
		{"short flick right", Vec{X: 10}, Vec{X: 301}, DecisionRight},
		{"short flick left", Vec{X: -10}, Vec{X: -301}, DecisionLeft},
		{"exactly at velocity snaps back", Vec{X: 10}, Vec{X: 300}, DecisionNone},
		{"no movement", Vec{}, Vec{}, DecisionNone},
		{"vertical drag ignored", Vec{Y: 200}, Vec{Y: 500}, DecisionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.offset, tt.velocity, th); got != tt.want {
				t.Errorf("Decide(%v, %v) = %s, want %s", tt.offset, tt.velocity, got, tt.want)
			}
		})
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	assets := testAssets(8)
	d := New(assets, memLikes{}, DefaultThresholds(), 42)

	seen := make(map[string]int)
	for {
		cur, ok := d.Current()
		if !ok {
			break
		}
		seen[cur.ID]++
		d.Swipe(DecisionLeft)
	}
	if len(seen) != len(assets) {
		t.Fatalf("saw %d distinct assets, want %d", len(seen), len(assets))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("asset %s appeared %d times", id, n)
		}
	}
}

func TestSameSeedSameOrder(t *testing.T) {
	assets := testAssets(8)
	a := New(assets, memLikes{}, DefaultThresholds(), 7)
	b := New(assets, memLikes{}, DefaultThresholds(), 7)
	for {
		ca, okA := a.Current()
		cb, okB := b.Current()
		if okA != okB {
			t.Fatal("decks diverged in length")
		}
		if !okA {
			break
		}
		if ca.ID != cb.ID {
			t.Fatalf("same seed produced different order: %s vs %s", ca.ID, cb.ID)
		}
		a.Swipe(DecisionLeft)
		b.Swipe(DecisionLeft)
	}
}

func TestCursorMonotonicAndCapped(t *testing.T) {
	d := New(testAssets(3), memLikes{}, DefaultThresholds(), 1)

	if res := d.Swipe(DecisionNone); res.Decision != DecisionNone || d.Cursor() != 0 {
		t.Fatal("none decision must not advance")
	}
	for i := 0; i < 10; i++ {
		d.Swipe(DecisionLeft)
	}
	if d.Cursor() != 3 {
		t.Errorf("cursor = %d, want capped at 3", d.Cursor())
	}
	if !d.Exhausted() {
		t.Error("deck should be exhausted")
	}
	if _, ok := d.Current(); ok {
		t.Error("Current on exhausted deck should report ok=false")
	}
}

func TestExhaustedFiresExactlyOnce(t *testing.T) {
	d := New(testAssets(2), memLikes{}, DefaultThresholds(), 1)

	if res := d.Swipe(DecisionLeft); res.Exhausted {
		t.Error("exhausted fired with one item remaining")
	}
	if res := d.Swipe(DecisionLeft); !res.Exhausted {
		t.Error("exhausted did not fire on the final swipe")
	}
	if res := d.Swipe(DecisionLeft); res.Exhausted {
		t.Error("exhausted fired twice")
	}
}

func TestSwipeRightLikes(t *testing.T) {
	likes := memLikes{}
	d := New(testAssets(3), likes, DefaultThresholds(), 1)

	cur, _ := d.Current()
	res := d.Swipe(DecisionRight)
	if !res.Liked {
		t.Error("first right swipe should report Liked")
	}
	if !likes.Liked(cur.ID) {
		t.Errorf("asset %s not in like-set after right swipe", cur.ID)
	}

	// Pre-liked item: the swipe advances but reports no new like.
	next, _ := d.Current()
	likes.Like(next.ID)
	if res := d.Swipe(DecisionRight); res.Liked {
		t.Error("right swipe on already-liked item reported Liked")
	}
	if d.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", d.Cursor())
	}
}

func TestLikeCurrent(t *testing.T) {
	likes := memLikes{}
	d := New(testAssets(3), likes, DefaultThresholds(), 1)

	cur, _ := d.Current()
	if !d.LikeCurrent() {
		t.Fatal("first LikeCurrent should add the like")
	}
	if d.Cursor() != 0 {
		t.Error("LikeCurrent must not advance the cursor")
	}
	// Second activation: never removes, never re-adds.
	if d.LikeCurrent() {
		t.Error("second LikeCurrent should be a no-op")
	}
	if !likes.Liked(cur.ID) {
		t.Error("like was removed by repeated activation")
	}

	for i := 0; i < 3; i++ {
		d.Swipe(DecisionLeft)
	}
	if d.LikeCurrent() {
		t.Error("LikeCurrent on exhausted deck should be a no-op")
	}
}

func TestRestartKeepsOrder(t *testing.T) {
	d := New(testAssets(5), memLikes{}, DefaultThresholds(), 99)

	var first []string
	for {
		cur, ok := d.Current()
		if !ok {
			break
		}
		first = append(first, cur.ID)
		d.Swipe(DecisionLeft)
	}

	d.Restart()
	if d.Cursor() != 0 {
		t.Fatalf("cursor after restart = %d", d.Cursor())
	}
	for i := range first {
		cur, ok := d.Current()
		if !ok {
			t.Fatalf("deck ended early on replay at %d", i)
		}
		if cur.ID != first[i] {
			t.Fatalf("replay[%d] = %s, want %s", i, cur.ID, first[i])
		}
		res := d.Swipe(DecisionLeft)
		// The terminal state may fire again after a restart.
		if i == len(first)-1 && !res.Exhausted {
			t.Error("exhausted should fire again after restart")
		}
	}
}

func TestReshuffleRewinds(t *testing.T) {
	d := New(testAssets(6), memLikes{}, DefaultThresholds(), 3)
	for i := 0; i < 6; i++ {
		d.Swipe(DecisionLeft)
	}
	d.Reshuffle()
	if d.Cursor() != 0 || d.Exhausted() {
		t.Fatal("reshuffle should rewind to a full deck")
	}
	if d.Remaining() != 6 {
		t.Errorf("remaining = %d, want 6", d.Remaining())
	}
}

func TestEmptyDeck(t *testing.T) {
	d := New(nil, memLikes{}, DefaultThresholds(), 1)
	if _, ok := d.Current(); ok {
		t.Error("empty deck has no current item")
	}
	if res := d.Swipe(DecisionRight); res.Liked || res.Exhausted {
		t.Error("swiping an empty deck should be a no-op")
	}
}

func TestReleaseUsesConfiguredThresholds(t *testing.T) {
	th := Thresholds{Distance: 100, Velocity: 500}
	d := New(testAssets(2), memLikes{}, th, 1)

	// Past the default distance but under the configured one.
	if res := d.Release(Vec{X: 60}, Vec{}); res.Decision != DecisionNone {
		t.Errorf("release at 60 with distance 100 decided %s", res.Decision)
	}
	if res := d.Release(Vec{X: 101}, Vec{}); res.Decision != DecisionRight {
		t.Errorf("release at 101 decided %s", res.Decision)
	}
}
