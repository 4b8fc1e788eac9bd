// Package session owns the authenticated-user identity. The identity is the
// only state that outlives a command, everything else is refetched. Views
// receive it explicitly, nothing reads it ambiently.
package session

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/peterbourgon/diskv/v3"
)

const identityKey = "identity"

// Identity is the persisted login state.
type Identity struct {
	UserID   string    `json:"user_id"`
	Email    string    `json:"email"`
	Name     string    `json:"name,omitempty"`
	Token    string    `json:"token,omitempty"`
	SignedIn time.Time `json:"signed_in"`
}

// ErrSignedOut reports that no identity is stored.
var ErrSignedOut = errors.New("not signed in")

// Store persists the identity between command invocations.
type Store interface {
	Current() (Identity, error)
	Save(Identity) error
	Clear() error
}

// Load creates a Store backed by diskv under the configured base path.
func Load(cfg Config) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &store{d: diskv.New(diskv.Options{
		BasePath:     cfg.BasePath(),
		CacheSizeMax: 64 * 1024,
	})}, nil
}

type store struct {
	d *diskv.Diskv
}

func (s *store) Current() (Identity, error) {
	if !s.d.Has(identityKey) {
		return Identity{}, ErrSignedOut
	}
	val, err := s.d.Read(identityKey)
	if err != nil {
		return Identity{}, err
	}
	var id Identity
	if err := json.Unmarshal(val, &id); err != nil {
		return Identity{}, err
	}
	if id.UserID == "" {
		return Identity{}, ErrSignedOut
	}
	return id, nil
}

func (s *store) Save(id Identity) error {
	if id.SignedIn.IsZero() {
		id.SignedIn = time.Now()
	}
	data, err := json.Marshal(id)
	if err != nil {
		return err
	}
	return s.d.Write(identityKey, data)
}

func (s *store) Clear() error {
	if !s.d.Has(identityKey) {
		return nil
	}
	return s.d.Erase(identityKey)
}
