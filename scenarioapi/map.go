package scenarioapi

import (
	"sort"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Map is an insertion ordered mapping from string keys to values. It is used for scopes,
// source data, merged data, and data mappings. A key may be present with a nil value which
// denotes a known but absent value.
type Map struct {
	entries *orderedmap.OrderedMap[string, Value]
}

// NewMap creates an empty Map
func NewMap(capacity int) *Map {
	return &Map{entries: orderedmap.New[string, Value](capacity)}
}

// MapOf creates a Map from alternating keys and values
func MapOf(keyValuePairs ...interface{}) *Map {
	m := NewMap(len(keyValuePairs) / 2)
	for i := 0; i+1 < len(keyValuePairs); i += 2 {
		m.Put(keyValuePairs[i].(string), Wrap(keyValuePairs[i+1]))
	}
	return m
}

func (m *Map) Kind() Kind {
	return KindMap
}

// Len returns the number of entries
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return m.entries.Len()
}

// Get returns the value stored under key and true, or nil and false when no such key exists
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return nil, false
	}
	return m.entries.Get(key)
}

// Has returns true if the key exists, regardless of its value
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Put stores the value under key. An existing key retains its position.
func (m *Map) Put(key string, value Value) {
	m.entries.Set(key, value)
}

// PutIfAbsent stores the value unless the key already exists. It returns true when the
// value was stored.
func (m *Map) PutIfAbsent(key string, value Value) bool {
	if m.Has(key) {
		return false
	}
	m.entries.Set(key, value)
	return true
}

// Delete removes the key
func (m *Map) Delete(key string) {
	m.entries.Delete(key)
}

// Each calls the function with each entry in insertion order
func (m *Map) Each(f func(key string, value Value)) {
	if m == nil {
		return
	}
	for p := m.entries.Oldest(); p != nil; p = p.Next() {
		f(p.Key, p.Value)
	}
}

// Keys returns all keys in insertion order
func (m *Map) Keys() []string {
	ks := make([]string, 0, m.Len())
	m.Each(func(k string, _ Value) { ks = append(ks, k) })
	return ks
}

// Copy returns a shallow copy of the receiver
func (m *Map) Copy() *Map {
	c := NewMap(m.Len())
	m.Each(c.Put)
	return c
}

// Merge returns a new Map with the entries of the receiver overlaid by the entries of other
func (m *Map) Merge(other *Map) *Map {
	c := m.Copy()
	other.Each(c.Put)
	return c
}

func (m *Map) String() string {
	b := strings.Builder{}
	b.WriteByte('{')
	first := true
	m.Each(func(k string, v Value) {
		if first {
			first = false
		} else {
			b.WriteString(`, `)
		}
		writeQuoted(&b, String(k))
		b.WriteString(` => `)
		writeQuoted(&b, v)
	})
	b.WriteByte('}')
	return b.String()
}

func (m *Map) Equals(other Value) bool {
	o, ok := other.(*Map)
	if !ok || o.Len() != m.Len() {
		return false
	}
	eq := true
	m.Each(func(k string, v Value) {
		if eq {
			ov, found := o.Get(k)
			eq = found && Equal(v, ov)
		}
	})
	return eq
}

// StringValue returns the String stored under key, or the empty string and false
func (m *Map) StringValue(key string) (string, bool) {
	if v, ok := m.Get(key); ok {
		if s, ok := v.(String); ok {
			return string(s), true
		}
	}
	return ``, false
}

// MarshalJSON preserves the insertion order of the entries
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte(`null`), nil
	}
	return m.entries.MarshalJSON()
}

// MarshalYAML preserves the insertion order of the entries
func (m *Map) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	var err error
	m.Each(func(k string, v Value) {
		if err != nil {
			return
		}
		vn := &yaml.Node{}
		if err = vn.Encode(yamlData(v)); err == nil {
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: `!!str`, Value: k}, vn)
		}
	})
	return n, err
}

// yamlData returns a value that the yaml encoder renders without losing map order
func yamlData(v Value) interface{} {
	switch v := v.(type) {
	case nil:
		return nil
	case *Map:
		return v
	case List:
		a := make([]interface{}, len(v))
		for i, e := range v {
			a[i] = yamlData(e)
		}
		return a
	default:
		return Unwrap(v)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}
