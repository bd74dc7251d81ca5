package provider

import (
	"path"
	"sort"

	"github.com/lyraproj/scenario/scenarioapi"
)

// MapStore is an in-memory scenarioapi.Store. It is intended for hosts that produce their
// sources by other means than files, and for tests.
type MapStore struct {
	categories map[scenarioapi.Category]map[string]*scenarioapi.Map
}

// NewMapStore creates an empty MapStore. The Root category always exists.
func NewMapStore() *MapStore {
	return &MapStore{categories: map[scenarioapi.Category]map[string]*scenarioapi.Map{scenarioapi.Root: {}}}
}

// Add stores the source data under the given category and name and returns the receiver
func (s *MapStore) Add(category scenarioapi.Category, name string, data *scenarioapi.Map) *MapStore {
	c, ok := s.categories[category]
	if !ok {
		c = make(map[string]*scenarioapi.Map)
		s.categories[category] = c
	}
	c[name] = data
	return s
}

// AddCategory creates the given category unless it exists and returns the receiver
func (s *MapStore) AddCategory(category scenarioapi.Category) *MapStore {
	if _, ok := s.categories[category]; !ok {
		s.categories[category] = make(map[string]*scenarioapi.Map)
	}
	return s
}

func (s *MapStore) Load(category scenarioapi.Category, name string) (*scenarioapi.Map, bool, error) {
	data, ok := s.categories[category][name]
	return data, ok, nil
}

func (s *MapStore) HasCategory(category scenarioapi.Category) bool {
	_, ok := s.categories[category]
	return ok
}

func (s *MapStore) Names(category scenarioapi.Category) ([]string, error) {
	c := s.categories[category]
	names := make([]string, 0, len(c))
	for n := range c {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MapStore) Location(category scenarioapi.Category, name string) string {
	if name == `` {
		return string(category)
	}
	return path.Join(string(category), name+`.yaml`)
}
