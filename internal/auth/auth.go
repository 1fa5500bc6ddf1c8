// Package auth implements the mock login flow. Nothing here verifies
// anything against a backend: a delay is simulated, trivially-shaped
// credentials are accepted, and a session record is minted locally.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/kei/rwadeck/internal/store"
)

var (
	// ErrInvalidCredentials covers every rejected login: empty email or a
	// password under the minimum length.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTooManyAttempts is returned when the local attempt limiter runs dry.
	ErrTooManyAttempts = errors.New("too many login attempts")
)

const minPasswordLen = 6

// demoSigningKey signs the locally minted session token. It is a fixed
// stand-in; the token is never validated by anyone.
var demoSigningKey = []byte("rwadeck-demo-signing-key")

// Fixed identity produced by the Google shortcut.
const (
	googleDemoID     = "google-demo-user"
	googleDemoEmail  = "demo.investor@gmail.example"
	googleDemoName   = "Demo Investor"
	googleDemoAvatar = "https://cdn.example.jp/avatars/demo-investor.png"
)

// Service performs mock logins and writes the result through the session
// store. Delay is the simulated network latency; zero means immediate.
type Service struct {
	Sessions *store.SessionStore
	Delay    time.Duration

	limiter *rate.Limiter
}

// NewService builds a service with a small token-bucket attempt limiter
// (one attempt per second, burst of five).
func NewService(sessions *store.SessionStore, delay time.Duration) *Service {
	return &Service{
		Sessions: sessions,
		Delay:    delay,
		limiter:  rate.NewLimiter(rate.Every(time.Second), 5),
	}
}

// Login accepts any non-empty email paired with a password of at least six
// characters, after the simulated delay. Validation happens after the
// delay, matching the round trip it stands in for. A pending delay cannot
// be aborted except through ctx; concurrent submissions are the caller's
// job to debounce.
func (s *Service) Login(ctx context.Context, email, password string) (store.User, error) {
	if s.limiter != nil && !s.limiter.Allow() {
		return store.User{}, ErrTooManyAttempts
	}
	if err := s.wait(ctx); err != nil {
		return store.User{}, err
	}

	email = strings.TrimSpace(email)
	if email == "" || len(password) < minPasswordLen {
		return store.User{}, ErrInvalidCredentials
	}

	u := store.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  displayName(email),
		Token: s.mintToken(email),
	}
	s.Sessions.Set(u)
	return u, nil
}

// LoginWithGoogle always succeeds after the simulated delay, producing the
// fixed demo identity.
func (s *Service) LoginWithGoogle(ctx context.Context) (store.User, error) {
	if err := s.wait(ctx); err != nil {
		return store.User{}, err
	}
	u := store.User{
		ID:        googleDemoID,
		Email:     googleDemoEmail,
		Name:      googleDemoName,
		AvatarURL: googleDemoAvatar,
		Token:     s.mintToken(googleDemoEmail),
	}
	s.Sessions.Set(u)
	return u, nil
}

// Logout clears the session unconditionally; logging out while logged out
// is a no-op.
func (s *Service) Logout() {
	s.Sessions.Clear()
}

func (s *Service) wait(ctx context.Context) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// mintToken signs an HS256 token for the session record. No expiry: the
// mock session lives until logout.
func (s *Service) mintToken(email string) string {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": email,
		"iat": time.Now().Unix(),
	})
	signed, err := tok.SignedString(demoSigningKey)
	if err != nil {
		return ""
	}
	return signed
}

// displayName derives a presentable name from the email local part.
func displayName(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		local = email[:at]
	}
	local = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(local)
	return strings.TrimSpace(local)
}
