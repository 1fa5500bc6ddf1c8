package store

const sidebarKey = "sidebar_open"

// SidebarStore holds the sidebar-open flag. Default: open.
type SidebarStore struct {
	kv   *KV
	open bool
	subs []func()
}

func NewSidebarStore(kv *KV) *SidebarStore {
	return &SidebarStore{kv: kv, open: true}
}

// Hydrate loads the persisted flag; anything other than a literal
// "true"/"false" keeps the default of open.
func (s *SidebarStore) Hydrate() {
	s.open = true
	raw, ok, err := s.kv.Get(sidebarKey)
	if err != nil || !ok {
		return
	}
	switch raw {
	case "true":
		s.open = true
	case "false":
		s.open = false
	}
}

func (s *SidebarStore) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

// Open reports the current flag.
func (s *SidebarStore) Open() bool { return s.open }

// Set stores the flag.
func (s *SidebarStore) Set(open bool) {
	if open == s.open {
		return
	}
	s.open = open
	s.flush()
}

// Toggle flips the flag and returns the new state.
func (s *SidebarStore) Toggle() bool {
	s.Set(!s.open)
	return s.open
}

func (s *SidebarStore) flush() {
	val := "false"
	if s.open {
		val = "true"
	}
	_ = s.kv.Put(sidebarKey, val)
	for _, fn := range s.subs {
		fn()
	}
}
