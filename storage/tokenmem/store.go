package tokenmem

import (
	"sync"

	"github.com/jakmauu/tutam9-frontend/core/session"
)

// Store keeps the token in memory only; it backs tests and ephemeral runs
// where nothing should touch the disk.
type Store struct {
	mu      sync.Mutex
	token   string
	present bool
}

var _ session.TokenStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{}
}

func (st *Store) Read() (string, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if !st.present {
		return "", session.ErrNoToken
	}
	return st.token, nil
}

func (st *Store) Write(token string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.token, st.present = token, true
	return nil
}

func (st *Store) Clear() error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.token, st.present = "", false
	return nil
}
