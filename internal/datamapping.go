package internal

import (
	"strings"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/scenario/scenarioapi"
	"github.com/samber/lo"
)

// CompileDataMappings merges the data_mappings sources and inverts them. A source entry
// `data_key: [class::param1, class::param2]` yields the mappings param1 -> data_key and
// param2 -> data_key. The data keys are stored without interpolation.
func CompileDataMappings(ic *Invocation, sources []string) *scenarioapi.Map {
	return MergeSources(ic, scenarioapi.DataMappings, sources, invertMapping)
}

func invertMapping(ic *Invocation, source, dataKey string, value scenarioapi.Value, acc *scenarioapi.Map) {
	for _, param := range mappedParams(ic, source, dataKey, value) {
		acc.PutIfAbsent(param, scenarioapi.String(dataKey))
	}
}

func mappedParams(ic *Invocation, source, dataKey string, value scenarioapi.Value) []string {
	switch v := value.(type) {
	case scenarioapi.String:
		return []string{string(v)}
	case scenarioapi.List:
		if ps, ok := v.Strings(); ok {
			return ps
		}
	}
	panic(scenarioapi.Error(scenarioapi.InvalidDataMapping, issue.H{`key`: dataKey, `source`: ic.Store().Location(scenarioapi.DataMappings, source)}))
}

// FindMapping returns the data key that the given parameter is mapped to in the data of a
// single data_mappings source.
func FindMapping(ic *Invocation, source string, data *scenarioapi.Map, param string) (string, bool) {
	found := ``
	data.Each(func(dataKey string, value scenarioapi.Value) {
		if found == `` && lo.Contains(mappedParams(ic, source, dataKey, value), param) {
			found = dataKey
		}
	})
	return found, found != ``
}

// ResolveMapping resolves the value of the fully qualified parameter param that is mapped to
// dataKey. The value of the data key in hieraData is used when it exists. A data key that
// contains interpolation expressions is interpolated using the scope of the invocation and
// hieraData and the result is used as the key, or as the value itself when no such key exists.
//
// When the mapping cannot be resolved, the result is an error if the class of the parameter is
// active. Otherwise a warning is logged and the parameter is bound to an absent value.
func ResolveMapping(ic *Invocation, param, dataKey string, hieraData *scenarioapi.Map, activeClasses []string) scenarioapi.Value {
	var result scenarioapi.Value
	ic.WithAlias(param, dataKey, func() {
		if v, ok := hieraData.Get(dataKey); ok {
			ic.ReportFound(dataKey, v)
			result = v
			return
		}
		if HasInterpolation(dataKey) {
			if key, ok := TryInterpolateString(dataKey, ScopeResolver(ic.Scope(), hieraData)); ok {
				if v, ok := hieraData.Get(key); ok {
					ic.ReportFound(key, v)
					result = v
				} else {
					result = scenarioapi.String(key)
					ic.ReportFound(dataKey, result)
				}
				return
			}
		}
		ic.ReportNotFound(dataKey)
		class, _ := SplitParam(param)
		if lo.Contains(activeClasses, class) {
			panic(scenarioapi.Error(scenarioapi.DataMappingNotFound, issue.H{`key`: dataKey, `param`: param, `class`: class}))
		}
		ic.Logger().Warn(`data mapping not found for inactive class`, `key`, dataKey, `param`, param, `class`, class)
	})
	return result
}

// ResolveDataMappings resolves every parameter of the given mappings
func ResolveDataMappings(ic *Invocation, mappings, hieraData *scenarioapi.Map, activeClasses []string) *scenarioapi.Map {
	resolved := scenarioapi.NewMap(mappings.Len())
	mappings.Each(func(param string, dataKey scenarioapi.Value) {
		resolved.Put(param, ResolveMapping(ic, param, dataKey.String(), hieraData, activeClasses))
	})
	return resolved
}

// CompileAllData compiles the hiera data and the data mappings of the given sources into one
// map of bindings. Keys found in the hiera data take precedence over values derived from data
// mappings. All values are interpolated using the scope and the hiera data when the options
// say so.
func CompileAllData(ic *Invocation, sources []string, activeClasses []string, opts scenarioapi.CompileOptions) *scenarioapi.Map {
	hieraData := CompileHieraData(ic, sources, false)
	mappings := CompileDataMappings(ic, sources)
	all := hieraData.Copy()
	ResolveDataMappings(ic, mappings, hieraData, activeClasses).Each(func(param string, v scenarioapi.Value) {
		all.PutIfAbsent(param, v)
	})
	if opts.InterpolateHieraData {
		r := ScopeResolver(ic.Scope(), hieraData)
		interpolated := scenarioapi.NewMap(all.Len())
		all.Each(func(k string, v scenarioapi.Value) {
			interpolated.Put(k, Interpolate(v, r))
		})
		all = interpolated
	}
	return all
}

// CompileHieraData merges the hiera_data sources. Strings and lists are interpolated using the
// scope of the invocation when interpolate is true.
func CompileHieraData(ic *Invocation, sources []string, interpolate bool) *scenarioapi.Map {
	var fold Fold = FirstWins
	if interpolate {
		fold = InterpolatingFold(ScopeResolver(ic.Scope()))
	}
	return MergeSources(ic, scenarioapi.HieraData, sources, fold)
}

// LookupKey finds the value for a single key. The hiera_data sources are searched first, then
// the data_mappings sources for a mapping of the key, and finally the first segment of a
// dotted key is looked up and the remaining segments are used to dig into the found value.
func LookupKey(ic *Invocation, sources []string, key string) (scenarioapi.Value, bool) {
	var result scenarioapi.Value
	found := false
	ic.WithLookup(key, func() {
		result, found = lookupKey(ic, sources, key)
		if !found {
			if k := NewKey(key); len(k.Parts()) > 1 {
				var root scenarioapi.Value
				if root, found = lookupKey(ic, sources, k.Root()); found {
					result = k.Dig(root)
					found = result != nil
				}
			}
		}
		if found {
			ic.ReportFound(key, result)
		} else {
			ic.ReportNotFound(key)
		}
	})
	return result, found
}

func lookupKey(ic *Invocation, sources []string, key string) (scenarioapi.Value, bool) {
	find := func(_ string, data *scenarioapi.Map) (scenarioapi.Value, bool) {
		return data.Get(key)
	}
	if v, ok := FirstFound(ic, scenarioapi.HieraData, sources, find); ok {
		return v, true
	}
	dataKey, ok := FirstFound(ic, scenarioapi.DataMappings, sources, func(source string, data *scenarioapi.Map) (scenarioapi.Value, bool) {
		if dk, ok := FindMapping(ic, source, data, key); ok {
			return scenarioapi.String(dk), true
		}
		return nil, false
	})
	if !ok {
		return nil, false
	}
	hieraData := CompileHieraData(ic, sources, false)
	v := ResolveMapping(ic, key, dataKey.String(), hieraData, nil)
	return v, v != nil
}

// SplitParam splits a fully qualified parameter name into its class and its parameter name
// at the last `::`. The class is empty when the name is unqualified.
func SplitParam(param string) (string, string) {
	if i := strings.LastIndex(param, `::`); i >= 0 {
		return param[:i], param[i+2:]
	}
	return ``, param
}

// PartitionBindings groups fully qualified bindings by class. Unqualified keys are not
// included.
func PartitionBindings(bindings *scenarioapi.Map) *scenarioapi.Map {
	classes := scenarioapi.NewMap(0)
	bindings.Each(func(k string, v scenarioapi.Value) {
		class, name := SplitParam(k)
		if class == `` {
			return
		}
		cv, ok := classes.Get(class)
		if !ok {
			cv = scenarioapi.NewMap(0)
			classes.Put(class, cv)
		}
		cv.(*scenarioapi.Map).Put(name, v)
	})
	return classes
}
