package internal

import (
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/scenario/scenarioapi"
	"github.com/samber/lo"
)

// A Role is the unexpanded definition of a role in a scenario
type Role struct {
	Name        string
	Classes     []string
	ClassGroups []string
}

// LoadScenario loads the roles of the named scenario. The source scenarios/<name> must exist.
// It is merged with the scenarios sources of the given hierarchy, and the classes and class
// groups of a role defined in more than one source are unioned, the source with the highest
// priority first.
func LoadScenario(ic *Invocation, name string, sources []string) []*Role {
	if _, ok := ic.Load(scenarioapi.Scenarios, name); !ok {
		panic(scenarioapi.Error(scenarioapi.ScenarioFileNotFound, issue.H{`name`: name}))
	}
	ic.Logger().Debug(`loading roles for scenario`, `scenario`, name)

	var roles []*Role
	byName := make(map[string]*Role)
	for _, source := range lo.Uniq(append([]string{name}, sources...)) {
		data, ok := ic.Load(scenarioapi.Scenarios, source)
		if !ok {
			continue
		}
		location := ic.Store().Location(scenarioapi.Scenarios, source)
		rv, ok := data.Get(scenarioapi.RolesKey)
		if !ok || rv == nil {
			continue
		}
		rm, ok := rv.(*scenarioapi.Map)
		if !ok {
			panic(scenarioapi.Error(scenarioapi.NotAHash, issue.H{`path`: location + `#roles`}))
		}
		rm.Each(func(roleName string, def scenarioapi.Value) {
			var classes, groups []string
			switch def := def.(type) {
			case nil:
			case *scenarioapi.Map:
				cv, _ := def.Get(scenarioapi.ClassesKey)
				gv, _ := def.Get(scenarioapi.ClassGroupsKey)
				classes = NameList(cv, scenarioapi.ClassesKey, location)
				groups = NameList(gv, scenarioapi.ClassGroupsKey, location)
			default:
				panic(scenarioapi.Error(scenarioapi.NotAHash, issue.H{`path`: location + `#roles.` + roleName}))
			}
			role, ok := byName[roleName]
			if !ok {
				role = &Role{Name: roleName, Classes: []string{}, ClassGroups: []string{}}
				byName[roleName] = role
				roles = append(roles, role)
			}
			role.Classes = lo.Union(role.Classes, classes)
			role.ClassGroups = lo.Union(role.ClassGroups, groups)
		})
	}
	return roles
}

// FindRole returns the role with the given name
func FindRole(roles []*Role, name string) (*Role, bool) {
	return lo.Find(roles, func(r *Role) bool { return r.Name == name })
}

// ExpandRoles expands the classes of every role
func ExpandRoles(ic *Invocation, roles []*Role) *scenarioapi.Map {
	result := scenarioapi.NewMap(len(roles))
	for _, role := range roles {
		result.Put(role.Name, scenarioapi.StringList(ExpandClasses(ic, role.Classes, role.ClassGroups)...))
	}
	return result
}
