package internal

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/scenario/scenarioapi"
)

// LoadHierarchy reads the hierarchy templates from the hiera configuration file at the given
// path. The default hierarchy is returned when the file doesn't exist, is empty, or has no
// hierarchy.
func LoadHierarchy(path string, logger hclog.Logger) []string {
	bs, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn(`hiera configuration not found, using default hierarchy`, `path`, path)
			return defaultHierarchy()
		}
		panic(scenarioapi.Error(scenarioapi.UnreadableSource, issue.H{`path`: path, `detail`: err.Error()}))
	}
	v, err := scenarioapi.UnmarshalYAML(bs)
	if err != nil {
		panic(scenarioapi.Error(scenarioapi.UnreadableSource, issue.H{`path`: path, `detail`: err.Error()}))
	}
	if v == nil {
		return defaultHierarchy()
	}
	cfg, ok := v.(*scenarioapi.Map)
	if !ok {
		panic(scenarioapi.Error(scenarioapi.NotAHash, issue.H{`path`: path}))
	}
	hv, ok := cfg.Get(`:` + scenarioapi.HierarchyKey)
	if !ok {
		hv, _ = cfg.Get(scenarioapi.HierarchyKey)
	}
	hs := ParseHierarchy(hv, path)
	if len(hs) == 0 {
		return defaultHierarchy()
	}
	return hs
}

// ParseHierarchy converts the value of a hierarchy entry into a list of templates. Entries are
// template strings or hashes with a path or a paths entry. A trailing .yaml extension is
// stripped from each path.
func ParseHierarchy(hv scenarioapi.Value, path string) []string {
	var hs []string
	switch hv := hv.(type) {
	case nil:
	case scenarioapi.String:
		hs = append(hs, stripExt(string(hv)))
	case scenarioapi.List:
		for _, e := range hv {
			switch e := e.(type) {
			case scenarioapi.String:
				hs = append(hs, stripExt(string(e)))
			case *scenarioapi.Map:
				if p, ok := e.StringValue(`path`); ok {
					hs = append(hs, stripExt(p))
					continue
				}
				ps, ok := e.Get(`paths`)
				if !ok {
					panic(scenarioapi.Error(scenarioapi.InvalidHierarchy, issue.H{`path`: path}))
				}
				for _, p := range NameList(ps, `paths`, path) {
					hs = append(hs, stripExt(p))
				}
			default:
				panic(scenarioapi.Error(scenarioapi.InvalidHierarchy, issue.H{`path`: path}))
			}
		}
	default:
		panic(scenarioapi.Error(scenarioapi.InvalidHierarchy, issue.H{`path`: path}))
	}
	return hs
}

// ExpandHierarchy interpolates each template using the scope of the invocation and returns the
// resulting source names in priority order. Templates that cannot be resolved are skipped.
func ExpandHierarchy(ic *Invocation, templates []string) []string {
	r := ScopeResolver(ic.Scope())
	names := make([]string, 0, len(templates))
	for _, t := range templates {
		name, ok := TryInterpolateString(t, r)
		if !ok {
			ic.Logger().Debug(`skipping unresolvable hierarchy entry`, `template`, t)
			ic.ReportText(func() string { return fmt.Sprintf(`Hierarchy entry %q skipped: interpolation failed`, t) })
			continue
		}
		if !validSourceName(name) {
			ic.Logger().Debug(`skipping hierarchy entry with empty path segment`, `template`, t, `name`, name)
			ic.ReportText(func() string { return fmt.Sprintf(`Hierarchy entry %q skipped: empty path segment in %q`, t, name) })
			continue
		}
		names = append(names, name)
	}
	return names
}

func defaultHierarchy() []string {
	return append([]string{}, scenarioapi.DefaultHierarchy...)
}

func stripExt(p string) string {
	return strings.TrimSuffix(p, `.yaml`)
}

func validSourceName(name string) bool {
	if name == `` {
		return false
	}
	for _, s := range strings.Split(name, `/`) {
		if s == `` {
			return false
		}
	}
	return true
}
