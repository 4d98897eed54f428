package storage

import "fmt"

// MemoryKV is an in-memory KV used by tests. A non-zero MaxBytes caps the
// total stored size, letting tests provoke quota failures.
type MemoryKV struct {
	MaxBytes int
	data     map[string][]byte
}

// NewMemoryKV creates an empty in-memory store with no size cap.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(key string) ([]byte, bool, error) {
	value, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (m *MemoryKV) Put(key string, value []byte) error {
	if m.MaxBytes > 0 {
		total := len(value)
		for k, v := range m.data {
			if k == key {
				continue
			}
			total += len(v)
		}
		if total > m.MaxBytes {
			return fmt.Errorf("writing key %q: %w", key, ErrQuotaExceeded)
		}
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	delete(m.data, key)
	return nil
}
