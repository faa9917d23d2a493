package session

import (
	"context"
	stderrors "errors"
	"sync"

	"github.com/pkg/errors"

	"github.com/jakmauu/tutam9-frontend/core"
)

// ErrNoToken is returned by a TokenStore when no token has been persisted.
var ErrNoToken = stderrors.New("no stored token")

type (
	// TokenStore persists the bearer token across runs. The token string is
	// the sole persisted state of this application.
	TokenStore interface {
		Read() (string, error)
		Write(token string) error
		Clear() error
	}

	// AuthGateway is the remote service owning identities.
	AuthGateway interface {
		Register(ctx context.Context, acc NewAccount) (Auth, error)
		Login(ctx context.Context, creds Credentials) (Auth, error)
		// Me resolves token to an identity; any error means the token is
		// not (or no longer) valid.
		Me(ctx context.Context, token string) (Identity, error)
	}

	// Session is the client-held authentication state. It is only ever
	// mutated through Init, Login, Register and Clear; a non-nil identity
	// implies the gateway accepted the current token.
	Session struct {
		store TokenStore
		gw    AuthGateway
		log   core.Logger

		mu       sync.RWMutex
		token    string
		identity *Identity
	}
)

func New(store TokenStore, gw AuthGateway, log core.Logger) *Session {
	return &Session{store: store, gw: gw, log: log}
}

// Init restores the session from the persisted token. No token means an
// anonymous session; an expired or rejected token is cleared so the
// invariant (identity set => token accepted) holds.
func (s *Session) Init(ctx context.Context) error {
	token, err := s.store.Read()
	if err != nil {
		if errors.Cause(err) == ErrNoToken {
			return nil
		}
		return errors.Wrap(err, "reading stored token")
	}
	if token == "" {
		return nil
	}
	if tokenExpired(token) {
		s.log.Info("stored token expired; clearing session")
		return s.Clear()
	}

	ident, err := s.gw.Me(ctx, token)
	if err != nil {
		s.log.Info("stored token rejected; clearing session", err)
		return s.Clear()
	}

	s.mu.Lock()
	s.token = token
	s.identity = &ident
	s.mu.Unlock()
	return nil
}

func (s *Session) Login(ctx context.Context, creds Credentials) error {
	if err := creds.Validate(); err != nil {
		return err
	}
	auth, err := s.gw.Login(ctx, creds)
	if err != nil {
		return errors.Wrap(err, "logging in")
	}
	return s.start(auth)
}

func (s *Session) Register(ctx context.Context, acc NewAccount) error {
	if err := acc.Validate(); err != nil {
		return err
	}
	auth, err := s.gw.Register(ctx, acc)
	if err != nil {
		return errors.Wrap(err, "registering")
	}
	return s.start(auth)
}

func (s *Session) start(auth Auth) error {
	if err := s.store.Write(auth.Token); err != nil {
		return errors.Wrap(err, "persisting token")
	}
	s.mu.Lock()
	s.token = auth.Token
	s.identity = &Identity{ID: auth.UserID, Username: auth.Username}
	s.mu.Unlock()
	return nil
}

func (s *Session) Logout() error {
	return s.Clear()
}

// Clear wipes the token and identity, both in memory and from the store.
func (s *Session) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.identity = nil
	s.mu.Unlock()
	return errors.Wrap(s.store.Clear(), "clearing stored token")
}

// Token returns the current bearer token, "" when anonymous. It feeds the
// gateway's auth header.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Current() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

func (s *Session) Authenticated() bool {
	_, ok := s.Current()
	return ok
}
