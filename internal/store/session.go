package store

import "encoding/json"

const sessionKey = "session"

// User is the locally stored account record produced by the mock login.
// The token is minted locally and never validated anywhere; it exists so
// the session record has the shape a real backend would hand back.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Token     string `json:"token,omitempty"`
}

// SessionStore holds at most one user record. Default: logged out.
type SessionStore struct {
	kv   *KV
	user *User
	subs []func()
}

func NewSessionStore(kv *KV) *SessionStore {
	return &SessionStore{kv: kv}
}

// Hydrate loads the persisted session; absent or malformed records leave
// the store logged out.
func (s *SessionStore) Hydrate() {
	s.user = nil
	raw, ok, err := s.kv.Get(sessionKey)
	if err != nil || !ok {
		return
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return
	}
	if u.Email == "" {
		return
	}
	s.user = &u
}

func (s *SessionStore) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

// Current returns the logged-in user, with ok=false when logged out.
func (s *SessionStore) Current() (User, bool) {
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// LoggedIn reports whether a session exists.
func (s *SessionStore) LoggedIn() bool { return s.user != nil }

// Set replaces the session with the given user.
func (s *SessionStore) Set(u User) {
	s.user = &u
	if data, err := json.Marshal(u); err == nil {
		_ = s.kv.Put(sessionKey, string(data))
	}
	s.notify()
}

// Clear logs out. Clearing an absent session is a no-op, not an error.
func (s *SessionStore) Clear() {
	if s.user == nil {
		return
	}
	s.user = nil
	_ = s.kv.Delete(sessionKey)
	s.notify()
}

func (s *SessionStore) notify() {
	for _, fn := range s.subs {
		fn()
	}
}
