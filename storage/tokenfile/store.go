package tokenfile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/jakmauu/tutam9-frontend/core"
	"github.com/jakmauu/tutam9-frontend/core/session"
)

// Store persists the bearer token as a single file under the user config
// dir (or conf.TokenPath when set). Presence of the file is the only
// persisted state.
type Store struct {
	path string
}

var _ session.TokenStore = (*Store)(nil)

func NewStore(conf *core.Config) (*Store, error) {
	path := conf.TokenPath
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, errors.Wrap(err, "resolving user config dir")
		}
		path = filepath.Join(dir, "tutam9", "token")
	}
	return &Store{path: path}, nil
}

func (st *Store) Read() (string, error) {
	data, err := os.ReadFile(st.path)
	if os.IsNotExist(err) {
		return "", session.ErrNoToken
	}
	if err != nil {
		return "", errors.Wrap(err, "reading token file")
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", session.ErrNoToken
	}
	return token, nil
}

func (st *Store) Write(token string) error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0o700); err != nil {
		return errors.Wrap(err, "creating token dir")
	}
	// the token is a credential; keep it out of other users' reach
	if err := os.WriteFile(st.path, []byte(token), 0o600); err != nil {
		return errors.Wrap(err, "writing token file")
	}
	return nil
}

func (st *Store) Clear() error {
	if err := os.Remove(st.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing token file")
	}
	return nil
}
