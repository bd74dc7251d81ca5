package internal

import (
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/scenario/scenarioapi"
)

// LoadConfig loads the config source. It must exist and it must define a scenario.
func LoadConfig(ic *Invocation) (*scenarioapi.Map, string) {
	cfg, ok := ic.Load(scenarioapi.Root, scenarioapi.ConfigSource)
	if !ok {
		panic(scenarioapi.Error(scenarioapi.ConfigNotFound, issue.H{`path`: ic.Store().Location(scenarioapi.Root, scenarioapi.ConfigSource)}))
	}
	sv, ok := cfg.Get(scenarioapi.ScenarioKey)
	if !ok || !scenarioapi.Truthy(sv) {
		panic(scenarioapi.Error(scenarioapi.ScenarioNotDefined, issue.H{}))
	}
	return cfg, sv.String()
}

// GlobalConfig returns the config source merged with the global_hiera_params sources. The
// global params are resolved using a scope that contains the scenario. Their strings and lists
// are interpolated using that scope. A global param takes precedence over a key with the same
// name in the config source, with the exception of the scenario itself.
func GlobalConfig(ic *Invocation, hierarchy []string) *scenarioapi.Map {
	cfg, scenario := LoadConfig(ic)
	scope := scenarioapi.NewMap(1)
	scope.Put(scenarioapi.ScenarioKey, scenarioapi.String(scenario))
	sic := ic.WithScope(scope)
	params := MergeSources(sic, scenarioapi.GlobalHieraParams, ExpandHierarchy(sic, hierarchy), InterpolatingFold(ScopeResolver(scope)))

	result := cfg.Copy()
	result.Put(scenarioapi.ScenarioKey, scenarioapi.String(scenario))
	params.Each(func(k string, v scenarioapi.Value) {
		if k != scenarioapi.ScenarioKey {
			result.Put(k, v)
		}
	})
	return result
}
