package provider

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lyraproj/scenario/scenarioapi"
)

// FactsDir is a scenarioapi.FactFinder that reads the facts of a node from the YAML file
// <dir>/<node name>.yaml. A node without a file has no facts.
type FactsDir string

func (d FactsDir) Facts(nodeName string) (*scenarioapi.Map, error) {
	path := filepath.Join(string(d), nodeName+`.yaml`)
	bs, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return scenarioapi.NewMap(0), nil
		}
		return nil, err
	}
	return ParseYamlHash(path, bs)
}

// StaticFacts is a scenarioapi.FactFinder that returns the same facts for all nodes
type StaticFacts struct {
	facts *scenarioapi.Map
}

// NewStaticFacts creates a FactFinder that always returns a copy of the given facts
func NewStaticFacts(facts *scenarioapi.Map) *StaticFacts {
	return &StaticFacts{facts: facts}
}

func (f *StaticFacts) Facts(_ string) (*scenarioapi.Map, error) {
	return f.facts.Copy(), nil
}

// EnvironmentFacts is a scenarioapi.FactFinder that returns all environment variables that
// start with the given prefix as facts. The prefix is removed and the rest of the name is
// converted to lower case, so FACTER_osfamily=Debian becomes the fact osfamily.
type EnvironmentFacts string

func (p EnvironmentFacts) Facts(_ string) (*scenarioapi.Map, error) {
	prefix := string(p)
	facts := scenarioapi.NewMap(0)
	for _, ev := range os.Environ() {
		if ei := strings.IndexRune(ev, '='); ei > 0 && strings.HasPrefix(ev[:ei], prefix) {
			if name := strings.ToLower(ev[len(prefix):ei]); name != `` {
				facts.Put(name, scenarioapi.String(ev[ei+1:]))
			}
		}
	}
	return facts, nil
}

// MultiFacts combines several FactFinders. A fact found by an earlier finder takes precedence.
type MultiFacts []scenarioapi.FactFinder

func (m MultiFacts) Facts(nodeName string) (*scenarioapi.Map, error) {
	facts := scenarioapi.NewMap(0)
	for _, f := range m {
		fs, err := f.Facts(nodeName)
		if err != nil {
			return nil, err
		}
		fs.Each(func(k string, v scenarioapi.Value) { facts.PutIfAbsent(k, v) })
	}
	return facts, nil
}
