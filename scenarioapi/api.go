// Package scenarioapi contains the types and contracts shared by the scenario resolution engine,
// the source stores, and the public API.
package scenarioapi

// A Category is a logical data directory in the data store
type Category string

const (
	// Root is the category of the singleton sources config and role_mappings
	Root = Category(``)

	GlobalHieraParams = Category(`global_hiera_params`)
	HieraData         = Category(`hiera_data`)
	DataMappings      = Category(`data_mappings`)
	Scenarios         = Category(`scenarios`)
	ClassGroups       = Category(`class_groups`)
)

// Names of the singleton sources in the Root category
const (
	ConfigSource       = `config`
	RoleMappingsSource = `role_mappings`
)

// Well known keys
const (
	ScenarioKey         = `scenario`
	RoleKey             = `role`
	RolesKey            = `roles`
	ClassesKey          = `classes`
	ClassGroupsKey      = `class_groups`
	HierarchyKey        = `hierarchy`
	NodeDataBindingsKey = `node_data_bindings`
)

// DefaultHierarchy is used when no hierarchy has been configured
var DefaultHierarchy = []string{`scenario/%{scenario}`, `common`}

// A Store gives access to parsed sources. A source is identified by a category and a name
// and contains a hash.
type Store interface {
	// Load returns the data of the named source in the given category. The boolean is false
	// when no such source exists. An error is returned when the source exists but cannot be
	// read or does not contain a hash.
	Load(category Category, name string) (*Map, bool, error)

	// HasCategory returns true if the category exists in the store
	HasCategory(category Category) bool

	// Names returns the sorted names of all sources in the given category
	Names(category Category) ([]string, error)

	// Location returns a description of where the given source is or would be found
	Location(category Category, name string) string
}

// A FactFinder produces the facts for a node. It is the host's responsibility to discover
// facts; the resolver only uses them as scope.
type FactFinder interface {
	Facts(nodeName string) (*Map, error)
}

// Options that control interpolation of compiled data
type CompileOptions struct {
	// InterpolateHieraData enables interpolation of the compiled values using the scope and
	// the compiled hiera data
	InterpolateHieraData bool
}
