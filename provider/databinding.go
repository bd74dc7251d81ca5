package provider

import (
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/scenario/internal"
	"github.com/lyraproj/scenario/scenarioapi"
)

// DataBindingLookup returns the value bound to the fully qualified parameter key in the
// node_data_bindings parameter of a classified node. When interpolate is true, the value is
// interpolated using the node parameters. It is an error if the parameters have no
// node_data_bindings.
func DataBindingLookup(parameters *scenarioapi.Map, key string, interpolate bool) (value scenarioapi.Value, ok bool, err error) {
	err = scenarioapi.Catch(func() {
		value, ok = dataBindingLookup(parameters, key, interpolate)
	})
	return
}

func dataBindingLookup(parameters *scenarioapi.Map, key string, interpolate bool) (scenarioapi.Value, bool) {
	bv, found := parameters.Get(scenarioapi.NodeDataBindingsKey)
	bindings, isMap := bv.(*scenarioapi.Map)
	if !(found && isMap) {
		panic(scenarioapi.Error(scenarioapi.NodeDataBindingsMissing, issue.H{`name`: scenarioapi.NodeDataBindingsKey}))
	}
	class, name := internal.SplitParam(key)
	cv, ok := bindings.Get(class)
	if !ok {
		return nil, false
	}
	cm, ok := cv.(*scenarioapi.Map)
	if !ok {
		return nil, false
	}
	v, ok := cm.Get(name)
	if ok && interpolate {
		v = internal.Interpolate(v, internal.ScopeResolver(parameters))
	}
	return v, ok
}
