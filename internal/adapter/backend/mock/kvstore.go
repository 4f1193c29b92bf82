package mock

import (
	"sort"
	"sync"
	"time"
)

// KVStore mocks backend.KVStore.
type KVStore struct {
	data        map[string][]byte
	reads       int
	updates     int
	deletes     int
	m           sync.Mutex
	writeTokens chan struct{}
}

// NewKVStore creates new KVStore instance with given data.
// If writeTokens is not nil, every UpdateKey call waits for a token.
func NewKVStore(data map[string][]byte, writeTokens chan struct{}) *KVStore {
	return &KVStore{
		data:        data,
		writeTokens: writeTokens,
	}
}

// ReadKey returns data saved for given key.
func (s *KVStore) ReadKey(key []byte) ([]byte, error) {
	s.m.Lock()
	defer s.m.Unlock()

	s.reads++
	if s.data == nil {
		return nil, nil
	}

	return s.data[string(key)], nil
}

// UpdateKey stores given data under given key.
func (s *KVStore) UpdateKey(key []byte, data []byte) error {
	if s.writeTokens != nil {
		select {
		case <-s.writeTokens:
		case <-time.After(time.Second):
			panic("kvstore locked")
		}
	}

	s.m.Lock()
	defer s.m.Unlock()

	s.updates++
	if s.data == nil {
		s.data = make(map[string][]byte)
	}
	s.data[string(key)] = data

	return nil
}

// DeleteKey removes data stored under given key.
func (s *KVStore) DeleteKey(key []byte) error {
	s.m.Lock()
	defer s.m.Unlock()

	s.deletes++
	delete(s.data, string(key))

	return nil
}

// ForEach calls fn for every stored pair, in key order.
func (s *KVStore) ForEach(fn func(key []byte, data []byte) error) error {
	s.m.Lock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	data := make(map[string][]byte, len(s.data))
	for k, v := range s.data {
		data[k] = v
	}
	s.m.Unlock()

	for _, k := range keys {
		if err := fn([]byte(k), data[k]); err != nil {
			return err
		}
	}

	return nil
}

// Keys returns all stored keys, sorted.
func (s *KVStore) Keys() []string {
	s.m.Lock()
	defer s.m.Unlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Reads returns read call count.
func (s *KVStore) Reads() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.reads
}

// Updates returns update call count.
func (s *KVStore) Updates() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.updates
}

// Deletes returns delete call count.
func (s *KVStore) Deletes() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.deletes
}
