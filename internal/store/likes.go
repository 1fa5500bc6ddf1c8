package store

import (
	"encoding/json"
	"sort"
)

const likesKey = "likes"

// LikeStore is the wishlist: a set of asset IDs. Storage order is
// unspecified (the catalog decides display order). Default on first run or
// unreadable state: empty set.
type LikeStore struct {
	kv   *KV
	ids  map[string]struct{}
	subs []func()
}

func NewLikeStore(kv *KV) *LikeStore {
	return &LikeStore{kv: kv, ids: make(map[string]struct{})}
}

// Hydrate loads the persisted set once at startup. Absent or malformed
// state leaves the set empty; it never fails.
func (s *LikeStore) Hydrate() {
	s.ids = make(map[string]struct{})
	raw, ok, err := s.kv.Get(likesKey)
	if err != nil || !ok {
		return
	}
	var stored []string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return
	}
	for _, id := range stored {
		s.ids[id] = struct{}{}
	}
}

// Subscribe registers a change callback, invoked synchronously after every
// mutation that changed the set.
func (s *LikeStore) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

// Liked reports membership.
func (s *LikeStore) Liked(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len is the number of liked assets.
func (s *LikeStore) Len() int { return len(s.ids) }

// All returns the member IDs, sorted for stable storage and iteration.
func (s *LikeStore) All() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Like adds an ID, reporting whether the set changed. Liking an existing
// member is a no-op.
func (s *LikeStore) Like(id string) bool {
	if _, ok := s.ids[id]; ok {
		return false
	}
	s.ids[id] = struct{}{}
	s.flush()
	return true
}

// Unlike removes an ID, reporting whether the set changed.
func (s *LikeStore) Unlike(id string) bool {
	if _, ok := s.ids[id]; !ok {
		return false
	}
	delete(s.ids, id)
	s.flush()
	return true
}

// Toggle flips membership and returns the new state.
func (s *LikeStore) Toggle(id string) bool {
	if s.Liked(id) {
		s.Unlike(id)
		return false
	}
	s.Like(id)
	return true
}

// flush persists the whole set and notifies subscribers. Persistence is
// best effort: a write failure leaves the in-memory state authoritative
// for this session.
func (s *LikeStore) flush() {
	if data, err := json.Marshal(s.All()); err == nil {
		_ = s.kv.Put(likesKey, string(data))
	}
	for _, fn := range s.subs {
		fn()
	}
}
