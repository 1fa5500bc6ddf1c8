// Package tui renders the marketplace browser: the discover deck, the
// filterable browse list, the likes wishlist, the demo portfolio and the
// settings/login view.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kei/rwadeck/internal/auth"
	"github.com/kei/rwadeck/internal/catalog"
	"github.com/kei/rwadeck/internal/config"
	"github.com/kei/rwadeck/internal/deck"
	"github.com/kei/rwadeck/internal/store"
)

type view int

const (
	viewDiscover view = iota
	viewBrowse
	viewLikes
	viewPortfolio
	viewSettings
	viewCount
)

// Stores bundles the preference stores injected into the app. Views never
// reach for ambient state; everything flows through these.
type Stores struct {
	Likes   *store.LikeStore
	Locale  *store.LocaleStore
	Sidebar *store.SidebarStore
	Session *store.SessionStore
}

// App is the Bubble Tea model.
type App struct {
	cfg    config.Config
	cat    *catalog.Catalog
	deck   *deck.Deck
	stores Stores
	auth   *auth.Service

	state  view
	keys   keyMap
	width  int
	height int
	status string

	// browse
	spec         catalog.FilterSpec
	filtered     []catalog.Asset
	suggestion   string
	browseCursor int
	searching    bool
	searchInput  textinput.Model
	detailID     string

	// likes
	likesCursor int

	// login modal
	loginOpen     bool
	loginField    int // 0 email, 1 password
	emailInput    textinput.Model
	passwordInput textinput.Model
	// loggingIn debounces the submit: a second enter while a mock login is
	// pending is dropped here, not in the auth service.
	loggingIn bool
}

// New wires the app. The deck and stores are built by the caller so tests
// can inject fixtures.
func New(cfg config.Config, cat *catalog.Catalog, d *deck.Deck, stores Stores, authsvc *auth.Service) *App {
	search := textinput.New()
	search.Placeholder = "assets, projects..."
	search.CharLimit = 64
	search.Width = 32

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128
	email.Width = 32

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.Width = 32
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	a := &App{
		cfg:           cfg,
		cat:           cat,
		deck:          d,
		stores:        stores,
		auth:          authsvc,
		keys:          newKeyMap(),
		searchInput:   search,
		emailInput:    email,
		passwordInput: password,
	}
	a.refilter()
	return a
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// messages

type loginDoneMsg struct {
	user store.User
	err  error
}

type statusMsg string

type errMsg struct{ error }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		return a, nil
	case loginDoneMsg:
		return a.handleLoginDone(m)
	case statusMsg:
		a.status = string(m)
		return a, nil
	case errMsg:
		a.status = errorStyle.Render(m.Error())
		return a, nil
	case tea.KeyMsg:
		if a.loginOpen {
			return a.handleLoginKey(m)
		}
		if a.searching {
			return a.handleSearchKey(m)
		}
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.NextTab):
		a.closeDetail()
		a.state = (a.state + 1) % viewCount
		return a, nil
	case key.Matches(m, a.keys.PrevTab):
		a.closeDetail()
		a.state = (a.state - 1 + viewCount) % viewCount
		return a, nil
	}

	switch a.state {
	case viewDiscover:
		return a.handleDiscoverKey(m)
	case viewBrowse:
		return a.handleBrowseKey(m)
	case viewLikes:
		return a.handleLikesKey(m)
	case viewSettings:
		return a.handleSettingsKey(m)
	}
	return a, nil
}

func (a *App) handleDiscoverKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.SwipeLeft):
		a.applySwipe(a.deck.Swipe(deck.DecisionLeft))
	case key.Matches(m, a.keys.SwipeRight):
		a.applySwipe(a.deck.Swipe(deck.DecisionRight))
	case key.Matches(m, a.keys.Favorite):
		if a.deck.LikeCurrent() {
			a.status = a.tr("Added to likes", "お気に入りに追加しました")
		}
	case key.Matches(m, a.keys.Restart):
		a.deck.Restart()
		a.status = a.tr("Deck restarted", "デッキを最初から表示します")
	case key.Matches(m, a.keys.Reshuffle):
		a.deck.Reshuffle()
		a.status = a.tr("Deck reshuffled", "デッキをシャッフルしました")
	}
	return a, nil
}

func (a *App) applySwipe(res deck.Result) {
	switch {
	case res.Exhausted:
		a.status = a.tr("That's everything for now. Press r to go again", "以上です。rでもう一度表示できます")
	case res.Liked:
		a.status = a.tr("Added to likes", "お気に入りに追加しました")
	case res.Decision == deck.DecisionLeft:
		a.status = ""
	}
}

func (a *App) handleBrowseKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.detailID != "" {
		if key.Matches(m, a.keys.Close) {
			a.closeDetail()
		}
		return a, nil
	}
	switch {
	case key.Matches(m, a.keys.Search):
		a.searching = true
		a.searchInput.Focus()
		return a, textinput.Blink
	case key.Matches(m, a.keys.Close):
		a.spec.Query = ""
		a.searchInput.SetValue("")
		a.refilter()
	case key.Matches(m, a.keys.Category):
		a.spec.Category = catalog.NextCategory(a.spec.Category)
		a.refilter()
	case key.Matches(m, a.keys.PriceBand):
		a.spec.Price = catalog.NextPriceRange(a.spec.Price)
		a.refilter()
	case key.Matches(m, a.keys.SortOrder):
		a.spec.Sort = catalog.NextSort(a.spec.Sort)
		a.refilter()
	case key.Matches(m, a.keys.Enter):
		if len(a.filtered) > 0 {
			a.detailID = a.filtered[a.browseCursor].ID
		}
	case m.String() == "up" || m.String() == "k":
		if a.browseCursor > 0 {
			a.browseCursor--
		}
	case m.String() == "down" || m.String() == "j":
		if a.browseCursor < len(a.filtered)-1 {
			a.browseCursor++
		}
	case m.String() == " ":
		if len(a.filtered) > 0 {
			a.toggleLike(a.filtered[a.browseCursor].ID)
		}
	}
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.searching = false
		a.searchInput.Blur()
		a.searchInput.SetValue(a.spec.Query)
		return a, nil
	case tea.KeyEnter:
		a.searching = false
		a.searchInput.Blur()
		return a, nil
	}
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(m)
	a.spec.Query = a.searchInput.Value()
	a.refilter()
	return a, cmd
}

func (a *App) handleLikesKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	liked := a.likedAssets()
	// The set can shrink from other views, so the cursor may point past
	// the end by the time we are back here.
	if a.likesCursor >= len(liked) {
		a.likesCursor = len(liked) - 1
		if a.likesCursor < 0 {
			a.likesCursor = 0
		}
	}
	if a.detailID != "" {
		if key.Matches(m, a.keys.Close) {
			a.closeDetail()
		}
		return a, nil
	}
	switch {
	case key.Matches(m, a.keys.Remove):
		if len(liked) > 0 {
			a.stores.Likes.Unlike(liked[a.likesCursor].ID)
			if a.likesCursor >= len(liked)-1 && a.likesCursor > 0 {
				a.likesCursor--
			}
		}
	case key.Matches(m, a.keys.Enter):
		if len(liked) > 0 {
			a.detailID = liked[a.likesCursor].ID
		}
	case m.String() == "up" || m.String() == "k":
		if a.likesCursor > 0 {
			a.likesCursor--
		}
	case m.String() == "down" || m.String() == "j":
		if a.likesCursor < len(liked)-1 {
			a.likesCursor++
		}
	}
	return a, nil
}

func (a *App) handleSettingsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "l":
		a.stores.Locale.Toggle()
		a.status = a.tr("Language: English", "言語：日本語")
	case "b":
		if a.stores.Sidebar.Toggle() {
			a.status = a.tr("Sidebar shown", "サイドバーを表示")
		} else {
			a.status = a.tr("Sidebar hidden", "サイドバーを非表示")
		}
	case "S":
		return a, a.saveLocaleDefaultCmd()
	case "e":
		if !a.stores.Session.LoggedIn() {
			a.openLogin()
			return a, textinput.Blink
		}
	case "g":
		if !a.stores.Session.LoggedIn() && !a.loggingIn {
			a.loggingIn = true
			a.status = a.tr("Signing in with Google...", "Googleでサインイン中...")
			return a, a.googleLoginCmd()
		}
	case "x":
		a.auth.Logout()
		a.status = a.tr("Signed out", "サインアウトしました")
	}
	return a, nil
}

func (a *App) openLogin() {
	a.loginOpen = true
	a.loginField = 0
	a.emailInput.SetValue("")
	a.passwordInput.SetValue("")
	a.emailInput.Focus()
	a.passwordInput.Blur()
}

func (a *App) handleLoginKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		if !a.loggingIn {
			a.loginOpen = false
		}
		return a, nil
	case tea.KeyTab, tea.KeyUp, tea.KeyDown:
		a.loginField = 1 - a.loginField
		if a.loginField == 0 {
			a.emailInput.Focus()
			a.passwordInput.Blur()
		} else {
			a.passwordInput.Focus()
			a.emailInput.Blur()
		}
		return a, textinput.Blink
	case tea.KeyEnter:
		if a.loggingIn {
			return a, nil // pending attempt; drop the repeat submit
		}
		a.loggingIn = true
		a.status = a.tr("Signing in...", "サインイン中...")
		return a, a.loginCmd(a.emailInput.Value(), a.passwordInput.Value())
	}

	var cmd tea.Cmd
	if a.loginField == 0 {
		a.emailInput, cmd = a.emailInput.Update(m)
	} else {
		a.passwordInput, cmd = a.passwordInput.Update(m)
	}
	return a, cmd
}

func (a *App) handleLoginDone(m loginDoneMsg) (tea.Model, tea.Cmd) {
	a.loggingIn = false
	if m.err != nil {
		a.status = errorStyle.Render(a.loginErrorText(m.err))
		return a, nil
	}
	a.loginOpen = false
	a.status = fmt.Sprintf(a.tr("Welcome, %s", "ようこそ、%sさん"), m.user.Name)
	return a, nil
}

// loginErrorText maps auth sentinels onto locale-appropriate messages.
func (a *App) loginErrorText(err error) string {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return a.tr("Invalid email or password", "メールアドレスまたはパスワードが正しくありません")
	case errors.Is(err, auth.ErrTooManyAttempts):
		return a.tr("Too many attempts. Wait a moment", "試行回数が多すぎます。しばらくお待ちください")
	}
	return err.Error()
}

// commands

func (a *App) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		u, err := a.auth.Login(context.Background(), email, password)
		return loginDoneMsg{user: u, err: err}
	}
}

func (a *App) googleLoginCmd() tea.Cmd {
	return func() tea.Msg {
		u, err := a.auth.LoginWithGoogle(context.Background())
		return loginDoneMsg{user: u, err: err}
	}
}

func (a *App) saveLocaleDefaultCmd() tea.Cmd {
	cfg := a.cfg
	cfg.UI.Locale = string(a.stores.Locale.Get())
	saved := a.tr("Saved as startup default", "起動時の既定として保存しました")
	return func() tea.Msg {
		if err := config.Save(cfg); err != nil {
			return errMsg{err}
		}
		return statusMsg(saved)
	}
}

// helpers

func (a *App) refilter() {
	a.filtered = a.cat.Filter(a.spec)
	if a.browseCursor >= len(a.filtered) {
		a.browseCursor = 0
	}
	a.suggestion = ""
	if len(a.filtered) == 0 {
		if s, ok := a.cat.Suggest(a.spec.Query); ok {
			a.suggestion = s
		}
	}
}

func (a *App) likedAssets() []catalog.Asset {
	return a.cat.LikedAssets(a.stores.Likes.Liked)
}

func (a *App) toggleLike(id string) {
	if a.stores.Likes.Toggle(id) {
		a.status = a.tr("Added to likes", "お気に入りに追加しました")
	} else {
		a.status = a.tr("Removed from likes", "お気に入りから削除しました")
	}
}

func (a *App) closeDetail() {
	a.detailID = ""
}

// tr picks the string for the current locale.
func (a *App) tr(en, ja string) string {
	if a.stores.Locale.Get() == store.LocaleJA {
		return ja
	}
	return en
}

// text picks the localized side of a catalog text pair, falling back to EN.
func (a *App) text(t catalog.Text) string {
	if a.stores.Locale.Get() == store.LocaleJA && t.JA != "" {
		return t.JA
	}
	return t.EN
}
