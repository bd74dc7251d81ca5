// Package scenario contains the Resolver which classifies nodes and compiles their data bindings
// from a scenario data directory.
package scenario

import (
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/scenario/internal"
	"github.com/lyraproj/scenario/provider"
	"github.com/lyraproj/scenario/scenarioapi"
	"github.com/samber/lo"
)

// Options used when creating a Resolver
type Options struct {
	// Confdir is the configuration directory. Defaults to the current working directory
	Confdir string

	// DataDir is the root of the data store. Defaults to <Confdir>/data
	DataDir string

	// HieraConfig is the path of the file that contains the hierarchy. Defaults to
	// <Confdir>/hiera.yaml
	HieraConfig string

	// Logger defaults to a logger named "scenario" that uses hclog.DefaultOptions
	Logger hclog.Logger

	// Store defaults to a YamlStore rooted at DataDir
	Store scenarioapi.Store

	// Facts is an optional FactFinder used when classifying nodes
	Facts scenarioapi.FactFinder

	// Explainer is an optional Explainer that receives the progress of key lookups
	Explainer scenarioapi.Explainer

	// Compile are the options used when compiling the data bindings of a node
	Compile scenarioapi.CompileOptions
}

// A Resolver resolves the classification and data bindings of nodes. The hierarchy and the
// global configuration are computed once and then reused for the lifetime of the Resolver.
//
// A Resolver is not safe for concurrent use. Concurrent callers must use one Resolver each.
type Resolver struct {
	store        scenarioapi.Store
	logger       hclog.Logger
	facts        scenarioapi.FactFinder
	explainer    scenarioapi.Explainer
	hieraConfig  string
	compile      scenarioapi.CompileOptions
	hierarchy    []string
	globalConfig *scenarioapi.Map
}

// New creates a Resolver from the given options
func New(opts Options) *Resolver {
	confdir := opts.Confdir
	if confdir == `` {
		confdir = `.`
	}
	dataDir := opts.DataDir
	if dataDir == `` {
		dataDir = filepath.Join(confdir, `data`)
	}
	hieraConfig := opts.HieraConfig
	if hieraConfig == `` {
		hieraConfig = filepath.Join(confdir, `hiera.yaml`)
	}
	logger := opts.Logger
	if logger == nil {
		lopts := *hclog.DefaultOptions
		lopts.Name = `scenario`
		logger = hclog.New(&lopts)
	}
	store := opts.Store
	if store == nil {
		store = provider.NewYamlStore(dataDir)
	}
	return &Resolver{
		store:       store,
		logger:      logger,
		facts:       opts.Facts,
		explainer:   opts.Explainer,
		hieraConfig: hieraConfig,
		compile:     opts.Compile,
	}
}

func (r *Resolver) Store() scenarioapi.Store {
	return r.store
}

func (r *Resolver) Logger() hclog.Logger {
	return r.logger
}

func (r *Resolver) invocation(scope *scenarioapi.Map) *internal.Invocation {
	return internal.NewInvocation(r.store, scope, r.logger, r.explainer)
}

func (r *Resolver) getHierarchy() []string {
	if r.hierarchy == nil {
		r.hierarchy = internal.LoadHierarchy(r.hieraConfig, r.logger)
	}
	return r.hierarchy
}

func (r *Resolver) getGlobalConfig() *scenarioapi.Map {
	if r.globalConfig == nil {
		r.globalConfig = internal.GlobalConfig(internal.NewInvocation(r.store, nil, r.logger, nil), r.getHierarchy())
	}
	return r.globalConfig
}

func (r *Resolver) scenarioName() string {
	s, _ := r.getGlobalConfig().StringValue(scenarioapi.ScenarioKey)
	return s
}

// nodeScope returns the global config overlaid with the given facts. The scenario cannot be
// overridden by a fact.
func (r *Resolver) nodeScope(facts *scenarioapi.Map) *scenarioapi.Map {
	gc := r.getGlobalConfig()
	scope := gc.Merge(facts)
	if sv, ok := gc.Get(scenarioapi.ScenarioKey); ok {
		scope.Put(scenarioapi.ScenarioKey, sv)
	}
	return scope
}

func (r *Resolver) sources(ic *internal.Invocation) []string {
	return internal.ExpandHierarchy(ic, r.getHierarchy())
}

func (r *Resolver) roles(ic *internal.Invocation) []*internal.Role {
	return internal.LoadScenario(ic, r.scenarioName(), r.sources(ic))
}

func (r *Resolver) classesFromRole(role string, facts *scenarioapi.Map) []string {
	ic := r.invocation(r.nodeScope(facts))
	rd, ok := internal.FindRole(r.roles(ic), role)
	if !ok {
		panic(scenarioapi.Error(scenarioapi.UnknownRole, issue.H{`role`: role, `scenario`: r.scenarioName()}))
	}
	return internal.ExpandClasses(ic, rd.Classes, rd.ClassGroups)
}

// Hierarchy returns the hierarchy templates
func (r *Resolver) Hierarchy() (hierarchy []string, err error) {
	err = scenarioapi.Catch(func() { hierarchy = r.getHierarchy() })
	return
}

// GetGlobalConfig returns the config source merged with the global hiera params
func (r *Resolver) GetGlobalConfig() (config *scenarioapi.Map, err error) {
	err = scenarioapi.Catch(func() { config = r.getGlobalConfig() })
	return
}

// GetScenarioName returns the name of the scenario in the config source
func (r *Resolver) GetScenarioName() (name string, err error) {
	err = scenarioapi.Catch(func() { name = r.scenarioName() })
	return
}

// GetRole returns the role of the given node. The boolean is false when the node has no role.
func (r *Resolver) GetRole(nodeName string) (role string, ok bool, err error) {
	err = scenarioapi.Catch(func() { role, ok = internal.ResolveRole(r.invocation(nil), nodeName) })
	return
}

// GetClassesFromRole returns the expanded classes of the given role. The facts are used,
// together with the global config, when interpolating class names.
func (r *Resolver) GetClassesFromRole(role string, facts *scenarioapi.Map) (classes []string, err error) {
	err = scenarioapi.Catch(func() { classes = r.classesFromRole(role, facts) })
	return
}

// GetAllRoles returns a map of every role in the scenario to its expanded classes
func (r *Resolver) GetAllRoles(facts *scenarioapi.Map) (roles *scenarioapi.Map, err error) {
	err = scenarioapi.Catch(func() {
		ic := r.invocation(r.nodeScope(facts))
		roles = internal.ExpandRoles(ic, r.roles(ic))
	})
	return
}

// CompileAllData compiles the hiera data and the data mappings into one map of bindings. The
// scope is used for hierarchy expansion and interpolation. A data mapping that cannot be
// resolved is an error when its class is one of the active classes.
func (r *Resolver) CompileAllData(scope *scenarioapi.Map, activeClasses []string, opts scenarioapi.CompileOptions) (data *scenarioapi.Map, err error) {
	err = scenarioapi.Catch(func() {
		ic := r.invocation(scope)
		data = internal.CompileAllData(ic, r.sources(ic), activeClasses, opts)
	})
	return
}

// CompileValue is like CompileAllData but returns the value of one key only. The boolean is
// false when the key isn't bound.
func (r *Resolver) CompileValue(scope *scenarioapi.Map, activeClasses []string, opts scenarioapi.CompileOptions, key string) (value scenarioapi.Value, ok bool, err error) {
	err = scenarioapi.Catch(func() {
		ic := r.invocation(scope)
		data := internal.CompileAllData(ic, r.sources(ic), activeClasses, scenarioapi.CompileOptions{})
		if value, ok = data.Get(key); ok && opts.InterpolateHieraData {
			value = internal.Interpolate(value, internal.ScopeResolver(ic.Scope(), data))
		}
	})
	return
}

// GetHieraDataFromKey returns the value of the given key using the global config and the facts
// as scope. The hiera_data sources are searched first and then the data mappings. A dotted key
// digs into the value found for its first segment. It is an error if no value is found.
func (r *Resolver) GetHieraDataFromKey(key string, facts *scenarioapi.Map) (value scenarioapi.Value, err error) {
	err = scenarioapi.Catch(func() {
		ic := r.invocation(r.nodeScope(facts))
		v, ok := internal.LookupKey(ic, r.sources(ic), key)
		if !ok {
			panic(scenarioapi.Error(scenarioapi.KeyNotFound, issue.H{`key`: key}))
		}
		value = v
	})
	return
}

// CompileEverything returns a map from each class of the given role to a map with the data
// bindings of that class. A class without bindings maps to an empty map.
func (r *Resolver) CompileEverything(role string, facts *scenarioapi.Map) (classes *scenarioapi.Map, err error) {
	err = scenarioapi.Catch(func() {
		scope := r.nodeScope(facts)
		scope.Put(scenarioapi.RoleKey, scenarioapi.String(role))
		names := r.classesFromRole(role, facts)
		ic := r.invocation(scope)
		bindings := internal.PartitionBindings(internal.CompileAllData(ic, r.sources(ic), names, r.compile))
		classes = scenarioapi.NewMap(len(names))
		for _, name := range names {
			if cb, ok := bindings.Get(name); ok {
				classes.Put(name, cb)
			} else {
				classes.Put(name, scenarioapi.NewMap(0))
			}
		}
	})
	return
}

// GetNodeFromName classifies the named node. The node gets the role found in the role
// mappings, the expanded classes of that role, and parameters that consist of the global config,
// the role, the scenario, and the data bindings of all classes under the key node_data_bindings.
// A node without a role gets no classes.
func (r *Resolver) GetNodeFromName(name string) (node *Node, err error) {
	err = scenarioapi.Catch(func() { node = r.nodeFromName(name) })
	return
}

func (r *Resolver) nodeFromName(name string) *Node {
	r.logger.Debug(`looking up classes`, `node`, name)
	gc := r.getGlobalConfig()
	facts := scenarioapi.NewMap(0)
	if r.facts != nil {
		var err error
		if facts, err = r.facts.Facts(name); err != nil {
			panic(err)
		}
	}

	role, hasRole := internal.ResolveRole(r.invocation(nil), name)
	scope := r.nodeScope(facts)
	var roleValue scenarioapi.Value
	classes := []string{}
	if hasRole {
		roleValue = scenarioapi.String(role)
		scope.Put(scenarioapi.RoleKey, roleValue)
		classes = r.classesFromRole(role, facts)
	}

	ic := r.invocation(scope)
	bindings := internal.CompileAllData(ic, r.sources(ic), classes, r.compile)

	params := gc.Copy()
	params.Put(scenarioapi.RoleKey, roleValue)
	params.Put(scenarioapi.ScenarioKey, scenarioapi.String(r.scenarioName()))
	params.Put(scenarioapi.NodeDataBindingsKey, internal.PartitionBindings(bindings))
	return &Node{Name: name, Role: role, Classes: classes, Parameters: params, Facts: facts}
}

// Check loads and expands everything in the store and returns the problems found. It verifies
// the config, the hierarchy, the role mappings, every role of the scenario, every class group,
// and every data mapping.
func (r *Resolver) Check() []error {
	var errs []error
	check := func(f func()) bool {
		if err := scenarioapi.Catch(f); err != nil {
			errs = append(errs, err)
			return false
		}
		return true
	}
	if !check(func() { r.getGlobalConfig() }) {
		return errs
	}
	check(func() { internal.LoadRoleMappings(r.invocation(nil)) })

	ic := r.invocation(r.nodeScope(nil))
	var roles []*internal.Role
	if check(func() { roles = r.roles(ic) }) {
		for _, role := range roles {
			check(func() { internal.ExpandClasses(ic, role.Classes, role.ClassGroups) })
		}
	}

	groups, err := r.store.Names(scenarioapi.ClassGroups)
	if err != nil {
		errs = append(errs, err)
	}
	for _, g := range groups {
		if internal.HasInterpolation(g) {
			continue
		}
		check(func() { internal.ExpandClassGroup(ic, g) })
	}
	check(func() { internal.CompileDataMappings(ic, r.sources(ic)) })
	return lo.UniqBy(errs, func(e error) string { return e.Error() })
}
