// Package deck implements the swipe discovery deck: a pure gesture
// decision function and a monotonic cursor over a shuffled asset
// sequence.
package deck

import (
	"math/rand"

	"github.com/kei/rwadeck/internal/catalog"
)

// Vec is a two-dimensional gesture measurement (drag offset in cells, or
// release velocity in cells/sec).
type Vec struct {
	X float64
	Y float64
}

// Decision is the discrete outcome of releasing a drag.
type Decision int

const (
	DecisionNone  Decision = iota // snap back
	DecisionLeft                  // advance, skip
	DecisionRight                 // advance, like
)

func (d Decision) String() string {
	switch d {
	case DecisionLeft:
		return "left"
	case DecisionRight:
		return "right"
	}
	return "none"
}

// Thresholds configure the decision rule. A release counts as a swipe when
// the offset strictly exceeds Distance or the velocity strictly exceeds
// Velocity, so a quick flick need not travel the full distance.
type Thresholds struct {
	Distance float64
	Velocity float64
}

// DefaultThresholds returns the stock tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{Distance: 50, Velocity: 300}
}

// Decide classifies a release. The boundary is exclusive: an offset of
// exactly Distance (or velocity of exactly Velocity) snaps back.
func Decide(offset, velocity Vec, th Thresholds) Decision {
	switch {
	case offset.X > th.Distance || velocity.X > th.Velocity:
		return DecisionRight
	case offset.X < -th.Distance || velocity.X < -th.Velocity:
		return DecisionLeft
	}
	return DecisionNone
}

// Liker is the like-set surface the deck mutates. Like must be idempotent:
// liking an already-liked ID is a no-op.
type Liker interface {
	Like(id string) bool
	Liked(id string) bool
}

// Result describes what a swipe did.
type Result struct {
	Decision Decision
	// Liked reports whether the swipe added the item to the like-set
	// (false when it was already liked).
	Liked bool
	// Exhausted is true exactly once: on the swipe that moves the cursor
	// onto the end of the sequence.
	Exhausted bool
}

// Deck presents a shuffled permutation of the asset list behind a
// forward-only cursor.
type Deck struct {
	assets []catalog.Asset
	order  []int
	cursor int
	done   bool // terminal state already reported
	rng    *rand.Rand
	th     Thresholds
	likes  Liker
}

// New shuffles assets once with the given seed. Each asset appears exactly
// once in the resulting sequence.
func New(assets []catalog.Asset, likes Liker, th Thresholds, seed int64) *Deck {
	d := &Deck{
		assets: append([]catalog.Asset(nil), assets...),
		rng:    rand.New(rand.NewSource(seed)),
		th:     th,
		likes:  likes,
	}
	d.order = d.rng.Perm(len(d.assets))
	return d
}

// Len is the sequence length.
func (d *Deck) Len() int { return len(d.assets) }

// Cursor is the current position; it never exceeds Len.
func (d *Deck) Cursor() int { return d.cursor }

// Remaining is the number of items not yet decided, including the current
// one.
func (d *Deck) Remaining() int { return len(d.assets) - d.cursor }

// Exhausted reports whether the cursor has reached the end.
func (d *Deck) Exhausted() bool { return d.cursor >= len(d.assets) }

// Current returns the topmost asset, or ok=false once the deck is
// exhausted (or empty).
func (d *Deck) Current() (catalog.Asset, bool) {
	if d.cursor >= len(d.assets) {
		return catalog.Asset{}, false
	}
	return d.assets[d.order[d.cursor]], true
}

// Release interprets a drag release and applies the outcome.
func (d *Deck) Release(offset, velocity Vec) Result {
	return d.Swipe(Decide(offset, velocity, d.th))
}

// Swipe applies a decision to the current item. A right decision likes the
// item (at most once) before the cursor advances; left advances without
// liking; none leaves the deck untouched. Swiping an exhausted deck is a
// no-op.
func (d *Deck) Swipe(dec Decision) Result {
	cur, ok := d.Current()
	if !ok || dec == DecisionNone {
		return Result{Decision: dec}
	}
	res := Result{Decision: dec}
	if dec == DecisionRight {
		res.Liked = d.likes.Like(cur.ID)
	}
	d.cursor++
	if d.cursor >= len(d.assets) && !d.done {
		d.done = true
		res.Exhausted = true
	}
	return res
}

// LikeCurrent is the double-activation shortcut: it likes the current item
// without advancing, and is a no-op when the item is already liked. It
// never removes a like.
func (d *Deck) LikeCurrent() bool {
	cur, ok := d.Current()
	if !ok {
		return false
	}
	if d.likes.Liked(cur.ID) {
		return false
	}
	return d.likes.Like(cur.ID)
}

// Restart rewinds the cursor to the top of the same sequence. The order is
// kept; the terminal state may fire again at the next exhaustion.
func (d *Deck) Restart() {
	d.cursor = 0
	d.done = false
}

// Reshuffle draws a fresh permutation and rewinds.
func (d *Deck) Reshuffle() {
	d.order = d.rng.Perm(len(d.assets))
	d.cursor = 0
	d.done = false
}
