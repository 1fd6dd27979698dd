// Package session persists the admin console's single login session.
package session

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/consolekit/consoleauth/internal/utils"
	"github.com/consolekit/consoleauth/session/kv"
)

// StorageKey is the fixed slot the serialized record lives under. There is no
// version field in the record: after a schema change an old value simply reads
// back as absent through the decode fail-safe.
const StorageKey = "admin_session"

// Store owns the storage slot. It is the only writer; the policy and identity
// layers are read-only consumers going through it.
type Store struct {
	kv     kv.Store
	key    string
	logger zerolog.Logger
}

// StoreOption defines a function type to modify the Store instance.
type StoreOption func(*Store)

// WithKey overrides the storage slot key (primarily for tests sharing a backend).
func WithKey(key string) StoreOption {
	return func(s *Store) { s.key = key }
}

// WithLogger sets the logger used to report discarded corrupt records.
func WithLogger(logger zerolog.Logger) StoreOption {
	return func(s *Store) { s.logger = logger }
}

// New wraps a key/value handle. The handle is injected rather than ambient so
// tests can substitute an in-memory fake.
func New(handle kv.Store, options ...StoreOption) *Store {
	store := &Store{
		kv:     handle,
		key:    StorageKey,
		logger: log.Logger,
	}
	for _, opt := range options {
		opt(store)
	}
	return store
}

// Store maps a login payload onto the record shape and persists it, replacing
// any previous session unconditionally. Failures on the storage medium itself
// (quota, connectivity) propagate: no local recovery is possible.
func (s *Store) Store(ctx context.Context, payload LoginPayload) (*Record, error) {
	record := &Record{
		AccessToken: payload.AccessToken,
		TokenType:   payload.TokenType,
		User: User{
			ID:        payload.ID,
			Username:  payload.Username,
			FirstName: payload.FirstName,
			LastName:  payload.LastName,
			Gender:    payload.Gender,
			Mail:      payload.Mail,
			Role:      payload.AdminRole,
			Status:    payload.AdminStatus,
		},
	}
	if err := s.persist(ctx, record); err != nil {
		return nil, errors.Wrap(err, "[Store.Store] persist")
	}
	return record, nil
}

// Get reads the stored session. Absent, unreadable and unparseable values all
// read back as not-ok: a corrupted slot must never crash a reader. No caching
// happens here, storage is the cache.
func (s *Store) Get(ctx context.Context) (*Record, bool) {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn().Err(err).Msg("session slot unreadable, treating as absent")
		return nil, false
	}
	if !ok {
		return nil, false
	}

	record, err := decodeRecord(raw)
	if err != nil {
		s.logger.Warn().Err(err).Msg("discarding unparseable session record")
		return nil, false
	}
	return record, true
}

// UpdateStoredUser shallow-merges patch into the stored user sub-record and
// re-persists, leaving AccessToken and TokenType untouched. With no stored
// session it returns (nil, nil): there is nothing to patch, and that is not
// an error. A patch moving Status away from "active" is a pure state update,
// whether it should also force a logout is the integrating application's call.
func (s *Store) UpdateStoredUser(ctx context.Context, patch UserPatch) (*Record, error) {
	record, ok := s.Get(ctx)
	if !ok {
		return nil, nil
	}

	applyPatch(&record.User, patch)

	if err := s.persist(ctx, record); err != nil {
		return nil, errors.Wrap(err, "[Store.UpdateStoredUser] persist")
	}
	return record, nil
}

// Clear removes the stored session. Clearing an already-empty slot is not an
// error.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return errors.Wrap(err, "[Store.Clear] kv.Delete")
	}
	return nil
}

func (s *Store) persist(ctx context.Context, record *Record) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "json.Marshal")
	}
	return s.kv.Set(ctx, s.key, raw)
}

// decodeRecord is the explicit fallible step behind the Get fail-safe. A value
// that parses but misses the user id is as unusable as one that does not parse
// at all, since the id always originates from the login payload.
func decodeRecord(raw []byte) (*Record, error) {
	var record Record
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, errors.Wrap(err, "json.Unmarshal")
	}
	if record.User.ID == "" {
		return nil, errors.New("record missing user id")
	}
	return &record, nil
}

func applyPatch(user *User, patch UserPatch) {
	if patch.Username != nil {
		user.Username = utils.Value(patch.Username)
	}
	if patch.FirstName != nil {
		user.FirstName = utils.Value(patch.FirstName)
	}
	if patch.LastName != nil {
		user.LastName = utils.Value(patch.LastName)
	}
	if patch.Gender != nil {
		user.Gender = utils.Value(patch.Gender)
	}
	if patch.Mail != nil {
		user.Mail = utils.Value(patch.Mail)
	}
	if patch.Role != nil {
		user.Role = utils.Value(patch.Role)
	}
	if patch.Status != nil {
		user.Status = utils.Value(patch.Status)
	}
}
