package kv

// Memory is a map-backed Backend. Nothing survives the process.
type Memory struct {
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: map[string][]byte{}}
}

func (m *Memory) Get(key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Close() error { return nil }
