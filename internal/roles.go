package internal

import (
	"strings"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/scenario/scenarioapi"
)

// LoadRoleMappings loads the role_mappings source. It is an error if it doesn't exist.
func LoadRoleMappings(ic *Invocation) *scenarioapi.Map {
	data, ok := ic.Load(scenarioapi.Root, scenarioapi.RoleMappingsSource)
	if !ok {
		panic(scenarioapi.Error(scenarioapi.RoleMappingsNotFound, issue.H{
			`path`: ic.Store().Location(scenarioapi.Root, scenarioapi.RoleMappingsSource)}))
	}
	return data
}

// ResolveRole finds the role of the given node. The node name is split into its dot separated
// labels and the name is matched against the role mappings while trailing labels are dropped
// one by one, so the longest matching name wins. The empty string and false are returned when
// no name matches.
func ResolveRole(ic *Invocation, nodeName string) (string, bool) {
	mappings := LoadRoleMappings(ic)
	labels := strings.Split(nodeName, `.`)
	for n := len(labels); n > 0; n-- {
		name := strings.Join(labels[:n], `.`)
		if v, ok := mappings.Get(name); ok && scenarioapi.Truthy(v) {
			ic.Logger().Debug(`found role from role mappings`, `node`, nodeName, `match`, name, `role`, v.String())
			return v.String(), true
		}
	}
	ic.Logger().Debug(`did not find role mapping`, `node`, nodeName)
	return ``, false
}
