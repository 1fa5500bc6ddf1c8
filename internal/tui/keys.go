package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab    key.Binding
	PrevTab    key.Binding
	SwipeLeft  key.Binding
	SwipeRight key.Binding
	Favorite   key.Binding
	Restart    key.Binding
	Reshuffle  key.Binding
	Search     key.Binding
	Category   key.Binding
	PriceBand  key.Binding
	SortOrder  key.Binding
	UpDown     key.Binding
	Enter      key.Binding
	Remove     key.Binding
	Close      key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev view")),
		SwipeLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "skip")),
		SwipeRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "like")),
		Favorite:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "like (stay)")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Reshuffle:  key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reshuffle")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Category:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		PriceBand:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "price")),
		SortOrder:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort")),
		UpDown:     key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "navigate")),
		Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Remove:     key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("x", "remove")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) discoverHelp() []key.Binding {
	return []key.Binding{k.SwipeLeft, k.SwipeRight, k.Favorite, k.Restart, k.NextTab, k.Quit}
}

func (k keyMap) browseHelp() []key.Binding {
	return []key.Binding{k.Search, k.Category, k.PriceBand, k.SortOrder, k.Enter, k.NextTab, k.Quit}
}

func (k keyMap) likesHelp() []key.Binding {
	return []key.Binding{k.UpDown, k.Remove, k.Enter, k.NextTab, k.Quit}
}
