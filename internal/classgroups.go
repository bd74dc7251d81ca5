package internal

import (
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/scenario/scenarioapi"
	"github.com/samber/lo"
)

// ExpandClasses returns the given classes followed by the classes of the given class groups,
// expanded recursively. All names are interpolated using the scope of the invocation. The
// result retains the order of first appearance and contains no duplicates.
func ExpandClasses(ic *Invocation, classes, groups []string) []string {
	r := ScopeResolver(ic.Scope())
	result := make([]string, 0, len(classes))
	for _, c := range classes {
		result = append(result, InterpolateString(c, r))
	}
	for _, g := range groups {
		result = append(result, ExpandClassGroup(ic, InterpolateString(g, r))...)
	}
	return lo.Uniq(result)
}

// ExpandClassGroup returns the classes of the named class group, expanded recursively. A
// group that includes itself, directly or through other groups, is an error.
func ExpandClassGroup(ic *Invocation, name string) []string {
	var result []string
	ic.WithClassGroup(name, func() {
		ic.WithSource(scenarioapi.ClassGroups, name, func() {
			data, ok := ic.Load(scenarioapi.ClassGroups, name)
			if !ok {
				ic.ReportSourceNotFound()
				panic(scenarioapi.Error(scenarioapi.ClassGroupNotFound, issue.H{`name`: name}))
			}
			location := ic.Store().Location(scenarioapi.ClassGroups, name)
			classes, _ := data.Get(scenarioapi.ClassesKey)
			groups, _ := data.Get(scenarioapi.ClassGroupsKey)
			result = ExpandClasses(ic,
				NameList(classes, scenarioapi.ClassesKey, location),
				NameList(groups, scenarioapi.ClassGroupsKey, location))
		})
	})
	return result
}
