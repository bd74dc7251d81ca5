package internal

import (
	"github.com/lyraproj/scenario/scenarioapi"
)

// A Fold adds one key and value of a source to the accumulated result
type Fold func(ic *Invocation, source, key string, value scenarioapi.Value, acc *scenarioapi.Map)

// FirstWins stores the value unless the key has been set by a source with higher priority.
// A key that was explicitly set to a false or absent value still blocks later sources.
func FirstWins(_ *Invocation, _, key string, value scenarioapi.Value, acc *scenarioapi.Map) {
	acc.PutIfAbsent(key, value)
}

// InterpolatingFold is like FirstWins but interpolates strings and lists using the given
// resolver before they are stored. Hashes are stored as they are.
func InterpolatingFold(r Resolver) Fold {
	return func(_ *Invocation, _, key string, value scenarioapi.Value, acc *scenarioapi.Map) {
		if !acc.Has(key) {
			acc.Put(key, Interpolate(value, r))
		}
	}
}

// MergeSources folds the sources of the given category in priority order. Sources that don't
// exist are skipped. A missing category yields an empty result.
func MergeSources(ic *Invocation, category scenarioapi.Category, sources []string, fold Fold) *scenarioapi.Map {
	acc := scenarioapi.NewMap(0)
	if !ic.Store().HasCategory(category) {
		ic.Logger().Warn(`data category not found`, `category`, string(category), `location`, ic.Store().Location(category, ``))
		return acc
	}
	for _, source := range sources {
		ic.WithSource(category, source, func() {
			data, ok := ic.Load(category, source)
			if !ok {
				ic.ReportSourceNotFound()
				return
			}
			ic.Logger().Debug(`merging source`, `category`, string(category), `source`, source)
			data.Each(func(key string, value scenarioapi.Value) {
				fold(ic, source, key, value, acc)
			})
		})
	}
	return acc
}

// FirstFound calls find with the data of each existing source of the given category in
// priority order and returns the first value that find accepts.
func FirstFound(ic *Invocation, category scenarioapi.Category, sources []string, find func(source string, data *scenarioapi.Map) (scenarioapi.Value, bool)) (scenarioapi.Value, bool) {
	if !ic.Store().HasCategory(category) {
		return nil, false
	}
	for _, source := range sources {
		var v scenarioapi.Value
		found := false
		ic.WithSource(category, source, func() {
			data, ok := ic.Load(category, source)
			if !ok {
				ic.ReportSourceNotFound()
				return
			}
			v, found = find(source, data)
		})
		if found {
			return v, true
		}
	}
	return nil, false
}
