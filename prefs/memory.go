package prefs

import (
	"sort"
)

// MemoryStore keeps preferences in process memory. Save is a no-op; the
// file-backed stores embed it and flush its contents.
type MemoryStore struct {
	values map[string]Value
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]Value)}
}

// GetInt returns the Int stored under key, or def when the key is missing or
// holds another type.
func (m *MemoryStore) GetInt(key string, def int) int {
	if v, ok := m.values[key]; ok && v.Type() == Int {
		return v.Int()
	}
	return def
}

func (m *MemoryStore) GetFloat(key string, def float64) float64 {
	if v, ok := m.values[key]; ok && v.Type() == Float {
		return v.Float()
	}
	return def
}

func (m *MemoryStore) GetString(key string, def string) string {
	if v, ok := m.values[key]; ok && v.Type() == String {
		return v.Text()
	}
	return def
}

func (m *MemoryStore) SetInt(key string, v int)       { m.values[key] = IntValue(v) }
func (m *MemoryStore) SetFloat(key string, v float64) { m.values[key] = FloatValue(v) }
func (m *MemoryStore) SetString(key string, v string) { m.values[key] = StringValue(v) }
func (m *MemoryStore) DeleteKey(key string)           { delete(m.values, key) }
func (m *MemoryStore) DeleteAll()                     { clear(m.values) }
func (m *MemoryStore) Save() error                    { return nil }

// Lookup returns the stored value with its type.
func (m *MemoryStore) Lookup(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) HasKey(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns every stored key in lexical order.
func (m *MemoryStore) Keys() []string {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *MemoryStore) snapshot() map[string]Value {
	out := make(map[string]Value, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

func (m *MemoryStore) replace(values map[string]Value) {
	m.values = values
}
