package scenario

import (
	"github.com/lyraproj/scenario/provider"
	"github.com/lyraproj/scenario/scenarioapi"
)

// Node is the classification of a node
type Node struct {
	Name string

	// Role is empty when the node has no role
	Role string

	Classes []string

	// Parameters always contain the keys role, scenario, and node_data_bindings
	Parameters *scenarioapi.Map

	// Facts are the facts that were found for the node
	Facts *scenarioapi.Map
}

// HasRole returns true if a role was found for the node
func (n *Node) HasRole() bool {
	return n.Role != ``
}

// ToMap returns the node as a Map with the keys name, role, classes, and parameters
func (n *Node) ToMap() *scenarioapi.Map {
	m := scenarioapi.NewMap(4)
	m.Put(`name`, scenarioapi.String(n.Name))
	if n.HasRole() {
		m.Put(scenarioapi.RoleKey, scenarioapi.String(n.Role))
	} else {
		m.Put(scenarioapi.RoleKey, nil)
	}
	m.Put(scenarioapi.ClassesKey, scenarioapi.StringList(n.Classes...))
	m.Put(`parameters`, n.Parameters)
	return m
}

// DataBinding returns the value bound to the fully qualified parameter key. The value is
// interpolated using the node parameters when interpolate is true.
func (n *Node) DataBinding(key string, interpolate bool) (scenarioapi.Value, bool, error) {
	return provider.DataBindingLookup(n.Parameters, key, interpolate)
}
