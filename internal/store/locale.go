package store

// Locale is the UI language preference.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleJA Locale = "ja"
)

const localeKey = "locale"

// LocaleStore holds the two-letter locale code. Anything outside the
// closed set falls back to the configured default.
type LocaleStore struct {
	kv       *KV
	cur      Locale
	fallback Locale
	subs     []func()
}

func NewLocaleStore(kv *KV, fallback Locale) *LocaleStore {
	if fallback != LocaleJA {
		fallback = LocaleEN
	}
	return &LocaleStore{kv: kv, cur: fallback, fallback: fallback}
}

// Hydrate loads the persisted locale; absent or unknown codes keep the
// fallback.
func (s *LocaleStore) Hydrate() {
	s.cur = s.fallback
	raw, ok, err := s.kv.Get(localeKey)
	if err != nil || !ok {
		return
	}
	switch Locale(raw) {
	case LocaleEN, LocaleJA:
		s.cur = Locale(raw)
	}
}

func (s *LocaleStore) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

// Get returns the current locale.
func (s *LocaleStore) Get() Locale { return s.cur }

// Set stores a locale; unknown codes are ignored.
func (s *LocaleStore) Set(l Locale) {
	if l != LocaleEN && l != LocaleJA {
		return
	}
	if l == s.cur {
		return
	}
	s.cur = l
	s.flush()
}

// Toggle flips en <-> ja and returns the new locale.
func (s *LocaleStore) Toggle() Locale {
	if s.cur == LocaleEN {
		s.Set(LocaleJA)
	} else {
		s.Set(LocaleEN)
	}
	return s.cur
}

func (s *LocaleStore) flush() {
	_ = s.kv.Put(localeKey, string(s.cur))
	for _, fn := range s.subs {
		fn()
	}
}
