package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kei/rwadeck/internal/auth"
	"github.com/kei/rwadeck/internal/catalog"
	"github.com/kei/rwadeck/internal/config"
	"github.com/kei/rwadeck/internal/deck"
	"github.com/kei/rwadeck/internal/store"
	"github.com/kei/rwadeck/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := store.RunMigrations(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	kv := store.NewKV(db)

	likes := store.NewLikeStore(kv)
	locale := store.NewLocaleStore(kv, store.Locale(cfg.UI.Locale))
	sidebar := store.NewSidebarStore(kv)
	session := store.NewSessionStore(kv)
	likes.Hydrate()
	locale.Hydrate()
	sidebar.Hydrate()
	session.Hydrate()

	authsvc := auth.NewService(session, time.Duration(cfg.Auth.LatencyMS)*time.Millisecond)

	cat := catalog.Default()
	d := deck.New(cat.Assets(), likes, deck.Thresholds{
		Distance: cfg.Deck.DistanceThreshold,
		Velocity: cfg.Deck.VelocityThreshold,
	}, time.Now().UnixNano())

	app := tui.New(cfg, cat, d, tui.Stores{
		Likes:   likes,
		Locale:  locale,
		Sidebar: sidebar,
		Session: session,
	}, authsvc)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("tui: %v", err)
	}
}
