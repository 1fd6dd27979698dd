package kvfakes

import (
	"context"
	"sync"

	"github.com/consolekit/consoleauth/session/kv"
)

var _ kv.Store = (*FakeKVStore)(nil)

// FakeKVStore is an in-memory kv.Store for tests.
type FakeKVStore struct {
	values map[string][]byte
	lock   sync.RWMutex

	// FailWrites, when set, makes Set return this error. Lets tests exercise
	// write-failure propagation (quota exceeded on a real medium).
	FailWrites error
}

func NewFakeKVStore() *FakeKVStore {
	return &FakeKVStore{
		values: make(map[string][]byte),
	}
}

func (f *FakeKVStore) Set(_ context.Context, key string, value []byte) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	if f.FailWrites != nil {
		return f.FailWrites
	}

	// Copy to avoid external modifications
	copied := make([]byte, len(value))
	copy(copied, value)
	f.values[key] = copied
	return nil
}

func (f *FakeKVStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	f.lock.RLock()
	defer f.lock.RUnlock()

	value, ok := f.values[key]
	if !ok {
		return nil, false, nil
	}

	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, true, nil
}

func (f *FakeKVStore) Delete(_ context.Context, key string) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	delete(f.values, key)
	return nil
}
