package internal_test

import (
	"testing"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/scenario/internal"
	"github.com/lyraproj/scenario/provider"
	"github.com/lyraproj/scenario/scenarioapi"
	"github.com/stretchr/testify/require"
)

func yamlMap(t *testing.T, s string) *scenarioapi.Map {
	t.Helper()
	m, err := provider.ParseYamlHash(`test`, []byte(s))
	require.NoError(t, err)
	return m
}

func newInvocation(store scenarioapi.Store, scope *scenarioapi.Map) *internal.Invocation {
	return internal.NewInvocation(store, scope, nil, nil)
}

func requireIssue(t *testing.T, code issue.Code, f func()) error {
	t.Helper()
	err := scenarioapi.Catch(f)
	require.Error(t, err)
	require.True(t, scenarioapi.IsIssue(err, code), `expected %s, got %s`, code, err)
	return err
}

var defaultSources = []string{`scenario/scenario_name`, `common`}

func classGroupStore(t *testing.T) *provider.MapStore {
	return provider.NewMapStore().
		Add(scenarioapi.ClassGroups, `foo`, yamlMap(t, "classes:\n  - one\n  - two\n  - three\n")).
		Add(scenarioapi.ClassGroups, `bar`, yamlMap(t, "classes:\n  - \"%{four}\"\nclass_groups:\n  - baz\n")).
		Add(scenarioapi.ClassGroups, `baz`, yamlMap(t, "classes:\n  - five\n")).
		Add(scenarioapi.ClassGroups, `blah`, yamlMap(t, "class_groups:\n  - blah\n")).
		Add(scenarioapi.ClassGroups, `ping`, yamlMap(t, "classes:\n  - ping\nclass_groups:\n  - pong\n")).
		Add(scenarioapi.ClassGroups, `pong`, yamlMap(t, "classes:\n  - pong\nclass_groups:\n  - ping\n"))
}
