// Package session persists the two values that outlive a dashboard session:
// the API token and the optional locale override. Everything else the client
// holds is session-transient.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/spf13/viper"
)

const (
	keyToken          = "token"
	keyLocaleOverride = "lang_override"
)

// Session is the explicit boundary around locally persisted state. Writes go
// to disk immediately so a token changed between actions is picked up by the
// next request.
type Session struct {
	mu   sync.RWMutex
	v    *viper.Viper
	path string
}

// Load reads the session file at path. A missing file yields an empty session;
// it is created on the first save.
func Load(path string) (*Session, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading session file: %w", err)
		}
	}

	return &Session{v: v, path: path}, nil
}

// Token implements api.TokenSource; it is consulted fresh on every request.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.GetString(keyToken)
}

func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(keyToken, token)
	return s.save()
}

func (s *Session) LocaleOverride() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.GetString(keyLocaleOverride)
}

func (s *Session) SetLocaleOverride(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(keyLocaleOverride, value)
	return s.save()
}

func (s *Session) save() error {
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}
