package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-process [Store]. The mapping is kept in its JSON
// encoding so reads hand out independent copies that decode exactly like the
// file store does. It is used for tests and for running without persistence.
type MemoryStore struct {
	sync.Mutex

	// guards the fields below; distinct from the embedded store lock
	state   sync.Mutex
	data    []byte
	writes  int
	reasons []string
}

// NewMemoryStore returns a MemoryStore seeded with initial, which may be nil.
func NewMemoryStore(initial map[string]any) (*MemoryStore, error) {
	s := &MemoryStore{data: []byte("{}")}
	if initial == nil {
		return s, nil
	}
	data, err := json.Marshal(initial)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingStore, err)
	}
	s.data = data
	return s, nil
}

func (s *MemoryStore) ReadAll(ctx context.Context) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingStore, err)
	}

	s.state.Lock()
	data := s.data
	s.state.Unlock()

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	values := make(map[string]any)
	if err := dec.Decode(&values); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingStore, err)
	}
	return values, nil
}

func (s *MemoryStore) WriteAll(ctx context.Context, values map[string]any, reason string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingStore, err)
	}

	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingStore, err)
	}

	s.state.Lock()
	defer s.state.Unlock()
	s.data = data
	s.writes++
	s.reasons = append(s.reasons, reason)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

// Writes returns how many times WriteAll succeeded.
func (s *MemoryStore) Writes() int {
	s.state.Lock()
	defer s.state.Unlock()
	return s.writes
}

// Reasons returns the reason of every successful WriteAll, oldest first.
func (s *MemoryStore) Reasons() []string {
	s.state.Lock()
	defer s.state.Unlock()
	out := make([]string, len(s.reasons))
	copy(out, s.reasons)
	return out
}

// Raw returns the JSON document currently held.
func (s *MemoryStore) Raw() []byte {
	s.state.Lock()
	defer s.state.Unlock()
	return bytes.Clone(s.data)
}
