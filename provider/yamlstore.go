package provider

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/scenario/scenarioapi"
)

// YamlStore is a scenarioapi.Store that reads sources from YAML files below a root directory.
// The source name in a category is the path of the file relative to the category directory
// without the .yaml extension. The sources of the Root category are files directly in the root
// directory.
type YamlStore struct {
	root string
}

// NewYamlStore creates a store that reads sources below the given directory
func NewYamlStore(root string) *YamlStore {
	return &YamlStore{root: root}
}

// Root returns the directory of the store
func (s *YamlStore) Root() string {
	return s.root
}

func (s *YamlStore) dir(category scenarioapi.Category) string {
	if category == scenarioapi.Root {
		return s.root
	}
	return filepath.Join(s.root, string(category))
}

func (s *YamlStore) Location(category scenarioapi.Category, name string) string {
	if name == `` {
		return s.dir(category)
	}
	return filepath.Join(s.dir(category), filepath.FromSlash(name)+`.yaml`)
}

func (s *YamlStore) HasCategory(category scenarioapi.Category) bool {
	fi, err := os.Stat(s.dir(category))
	return err == nil && fi.IsDir()
}

// Load reads the YAML hash of the given source. An empty file yields an empty map.
func (s *YamlStore) Load(category scenarioapi.Category, name string) (*scenarioapi.Map, bool, error) {
	path := s.Location(category, name)
	bs, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, scenarioapi.Error(scenarioapi.UnreadableSource, issue.H{`path`: path, `detail`: err.Error()})
	}
	data, err := ParseYamlHash(path, bs)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Names returns the names of all sources in the given category. The names of the Root
// category are limited to the files directly in the root directory.
func (s *YamlStore) Names(category scenarioapi.Category) ([]string, error) {
	if !s.HasCategory(category) {
		return []string{}, nil
	}
	dir := s.dir(category)
	pattern := `**/*.yaml`
	if category == scenarioapi.Root {
		pattern = `*.yaml`
	}
	files, err := doublestar.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(dir, f)
		if err != nil {
			return nil, err
		}
		names = append(names, strings.TrimSuffix(filepath.ToSlash(rel), `.yaml`))
	}
	sort.Strings(names)
	return names, nil
}

// ParseYamlHash parses the given bytes which must contain a YAML hash or nothing at all. The
// path is used in error messages.
func ParseYamlHash(path string, bs []byte) (*scenarioapi.Map, error) {
	v, err := scenarioapi.UnmarshalYAML(bs)
	if err != nil {
		return nil, scenarioapi.Error(scenarioapi.UnreadableSource, issue.H{`path`: path, `detail`: err.Error()})
	}
	switch v := v.(type) {
	case nil:
		return scenarioapi.NewMap(0), nil
	case *scenarioapi.Map:
		return v, nil
	default:
		return nil, scenarioapi.Error(scenarioapi.NotAHash, issue.H{`path`: path})
	}
}
