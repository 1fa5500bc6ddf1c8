package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kei/rwadeck/internal/auth"
	"github.com/kei/rwadeck/internal/catalog"
	"github.com/kei/rwadeck/internal/config"
	"github.com/kei/rwadeck/internal/deck"
	"github.com/kei/rwadeck/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := store.RunMigrations(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	kv := store.NewKV(db)

	stores := Stores{
		Likes:   store.NewLikeStore(kv),
		Locale:  store.NewLocaleStore(kv, store.LocaleEN),
		Sidebar: store.NewSidebarStore(kv),
		Session: store.NewSessionStore(kv),
	}
	stores.Likes.Hydrate()
	stores.Locale.Hydrate()
	stores.Sidebar.Hydrate()
	stores.Session.Hydrate()

	cat := catalog.Default()
	d := deck.New(cat.Assets(), stores.Likes, deck.DefaultThresholds(), 1)
	svc := auth.NewService(stores.Session, 0)

	return New(config.Config{}, cat, d, stores, svc)
}

func keyPress(t *testing.T, a *App, k string) tea.Cmd {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := a.Update(msg)
	return cmd
}

func TestTabCycling(t *testing.T) {
	a := newTestApp(t)
	if a.state != viewDiscover {
		t.Fatalf("initial view = %d", a.state)
	}
	want := []view{viewBrowse, viewLikes, viewPortfolio, viewSettings, viewDiscover}
	for i, w := range want {
		keyPress(t, a, "tab")
		if a.state != w {
			t.Fatalf("after %d tabs: view = %d, want %d", i+1, a.state, w)
		}
	}
	keyPress(t, a, "shift+tab")
	if a.state != viewSettings {
		t.Errorf("shift+tab wrapped to %d, want settings", a.state)
	}
}

func TestSwipeRightAdvancesAndLikes(t *testing.T) {
	a := newTestApp(t)
	cur, ok := a.deck.Current()
	if !ok {
		t.Fatal("deck empty")
	}

	keyPress(t, a, "right")
	if !a.stores.Likes.Liked(cur.ID) {
		t.Errorf("asset %s not liked after right swipe", cur.ID)
	}
	if a.deck.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", a.deck.Cursor())
	}

	next, _ := a.deck.Current()
	keyPress(t, a, "left")
	if a.stores.Likes.Liked(next.ID) {
		t.Errorf("left swipe liked %s", next.ID)
	}
	if a.deck.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", a.deck.Cursor())
	}
}

func TestFavoriteDoesNotAdvance(t *testing.T) {
	a := newTestApp(t)
	cur, _ := a.deck.Current()

	keyPress(t, a, "f")
	if !a.stores.Likes.Liked(cur.ID) {
		t.Error("favorite key did not like the current asset")
	}
	if a.deck.Cursor() != 0 {
		t.Errorf("favorite advanced the cursor to %d", a.deck.Cursor())
	}
}

func TestBrowseFilterCycling(t *testing.T) {
	a := newTestApp(t)
	keyPress(t, a, "tab") // browse

	all := len(a.filtered)
	if all == 0 {
		t.Fatal("browse list empty")
	}

	keyPress(t, a, "c") // first category: membership
	if a.spec.Category != catalog.CategoryMembership {
		t.Fatalf("category = %q", a.spec.Category)
	}
	if len(a.filtered) >= all {
		t.Errorf("membership filter did not narrow the list: %d", len(a.filtered))
	}

	keyPress(t, a, "o")
	if a.spec.Sort != catalog.SortRecency {
		t.Errorf("sort = %s, want recency", a.spec.Sort)
	}

	// esc clears the query only, not the whole filter.
	a.spec.Query = "machiya"
	a.refilter()
	keyPress(t, a, "esc")
	if a.spec.Query != "" {
		t.Errorf("query = %q after esc", a.spec.Query)
	}
	if a.spec.Category != catalog.CategoryMembership {
		t.Error("esc cleared the category filter too")
	}
}

func TestSearchTyping(t *testing.T) {
	a := newTestApp(t)
	keyPress(t, a, "tab") // browse

	keyPress(t, a, "/")
	if !a.searching {
		t.Fatal("search did not open")
	}
	for _, r := range "gion" {
		keyPress(t, a, string(r))
	}
	if a.spec.Query != "gion" {
		t.Fatalf("query = %q, want gion (live filtering)", a.spec.Query)
	}
	if len(a.filtered) != 1 || a.filtered[0].ID != "ast-machiya-gion" {
		t.Errorf("filtered = %d results", len(a.filtered))
	}
	keyPress(t, a, "enter")
	if a.searching {
		t.Error("enter did not commit the search")
	}
	if a.spec.Query != "gion" {
		t.Errorf("query lost on commit: %q", a.spec.Query)
	}
}

func TestSearchSuggestionOnEmptyResult(t *testing.T) {
	a := newTestApp(t)
	keyPress(t, a, "tab")
	keyPress(t, a, "/")
	for _, r := range "Gion Townhose" {
		keyPress(t, a, string(r))
	}
	if len(a.filtered) != 0 {
		t.Fatalf("typo query matched %d assets", len(a.filtered))
	}
	if a.suggestion == "" {
		t.Error("no suggestion offered for near-miss query")
	}
}

func TestLoginFlow(t *testing.T) {
	a := newTestApp(t)
	for i := 0; i < 4; i++ {
		keyPress(t, a, "tab") // settings
	}
	keyPress(t, a, "e")
	if !a.loginOpen {
		t.Fatal("login modal did not open")
	}

	for _, r := range "kei@example.jp" {
		keyPress(t, a, string(r))
	}
	keyPress(t, a, "tab") // to password
	for _, r := range "longenough" {
		keyPress(t, a, string(r))
	}

	cmd := keyPress(t, a, "enter")
	if cmd == nil {
		t.Fatal("submit produced no command")
	}
	if !a.loggingIn {
		t.Fatal("busy flag not set while login is pending")
	}

	// A second submit while pending is dropped.
	if again := keyPress(t, a, "enter"); again != nil {
		t.Error("repeat submit was not debounced")
	}

	msg := cmd()
	done, ok := msg.(loginDoneMsg)
	if !ok {
		t.Fatalf("command produced %T", msg)
	}
	if done.err != nil {
		t.Fatalf("login: %v", done.err)
	}
	a.Update(done)
	if a.loginOpen {
		t.Error("modal still open after successful login")
	}
	if !a.stores.Session.LoggedIn() {
		t.Error("session store not updated")
	}
}

func TestLoginRejectionKeepsModalOpen(t *testing.T) {
	a := newTestApp(t)
	for i := 0; i < 4; i++ {
		keyPress(t, a, "tab")
	}
	keyPress(t, a, "e")
	keyPress(t, a, "tab") // leave email empty, go to password
	for _, r := range "longenough" {
		keyPress(t, a, string(r))
	}
	cmd := keyPress(t, a, "enter")
	msg := cmd()
	a.Update(msg)

	if !a.loginOpen {
		t.Error("modal closed on rejected login")
	}
	if a.loggingIn {
		t.Error("busy flag stuck after rejection")
	}
	if a.stores.Session.LoggedIn() {
		t.Error("rejected login produced a session")
	}
}

// The like-set can shrink while another view is active; returning to the
// likes view with a stale cursor must not index past the end.
func TestLikesCursorSurvivesCrossViewShrink(t *testing.T) {
	a := newTestApp(t)
	assets := a.cat.Assets()
	for _, asset := range assets[:3] {
		a.stores.Likes.Like(asset.ID)
	}

	keyPress(t, a, "tab")
	keyPress(t, a, "tab") // likes
	keyPress(t, a, "down")
	keyPress(t, a, "down")
	if a.likesCursor != 2 {
		t.Fatalf("cursor = %d, want 2", a.likesCursor)
	}

	// Shrink the set from elsewhere (browse toggle does the same thing).
	a.stores.Likes.Unlike(assets[1].ID)
	a.stores.Likes.Unlike(assets[2].ID)

	keyPress(t, a, "enter")
	if a.detailID != assets[0].ID {
		t.Errorf("detail = %q, want %s", a.detailID, assets[0].ID)
	}
	keyPress(t, a, "esc")

	keyPress(t, a, "x")
	if a.stores.Likes.Len() != 0 {
		t.Errorf("likes remaining = %d, want 0", a.stores.Likes.Len())
	}
	// Empty view: further activations are no-ops, not panics.
	keyPress(t, a, "enter")
	keyPress(t, a, "x")
	if a.likesCursor != 0 {
		t.Errorf("cursor on empty view = %d, want 0", a.likesCursor)
	}
}

func TestViewRendersEveryScreen(t *testing.T) {
	a := newTestApp(t)
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	for i := 0; i < int(viewCount); i++ {
		out := a.View()
		if strings.TrimSpace(out) == "" {
			t.Errorf("view %d rendered empty", a.state)
		}
		keyPress(t, a, "tab")
	}
}

func TestDetailShowsPurchaseURL(t *testing.T) {
	a := newTestApp(t)
	keyPress(t, a, "tab") // browse
	keyPress(t, a, "enter")
	if a.detailID == "" {
		t.Fatal("detail did not open")
	}
	asset, _ := a.cat.AssetByID(a.detailID)
	if !strings.Contains(a.View(), asset.PurchaseURL) {
		t.Error("detail view missing the purchase URL")
	}
	keyPress(t, a, "esc")
	if a.detailID != "" {
		t.Error("esc did not close the detail")
	}
}

func TestLocaleToggleChangesChrome(t *testing.T) {
	a := newTestApp(t)
	for i := 0; i < 4; i++ {
		keyPress(t, a, "tab")
	}
	before := a.View()
	keyPress(t, a, "l")
	after := a.View()
	if before == after {
		t.Error("locale toggle did not change the rendered view")
	}
	if a.stores.Locale.Get() != store.LocaleJA {
		t.Errorf("locale = %q, want ja", a.stores.Locale.Get())
	}
}
