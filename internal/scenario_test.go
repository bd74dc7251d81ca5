package internal_test

import (
	"testing"

	"github.com/lyraproj/scenario/internal"
	"github.com/lyraproj/scenario/provider"
	"github.com/lyraproj/scenario/scenarioapi"
	"github.com/stretchr/testify/require"
)

func scenarioStore(t *testing.T) *provider.MapStore {
	return classGroupStore(t).
		Add(scenarioapi.Scenarios, `main`, yamlMap(t, `
roles:
  web:
    classes: [a]
    class_groups: [baz]
  empty:
`)).
		Add(scenarioapi.Scenarios, `role/web`, yamlMap(t, `
roles:
  web:
    classes: [b, a]
    class_groups: [foo]
  db:
    classes: ["%{dbclass}"]
`))
}

func TestLoadScenario(t *testing.T) {
	ic := newInvocation(scenarioStore(t), nil)
	roles := internal.LoadScenario(ic, `main`, []string{`role/web`, `main`, `common`})
	require.Len(t, roles, 3)

	web, ok := internal.FindRole(roles, `web`)
	require.True(t, ok)
	require.Equal(t, []string{`a`, `b`}, web.Classes)
	require.Equal(t, []string{`baz`, `foo`}, web.ClassGroups)

	empty, ok := internal.FindRole(roles, `empty`)
	require.True(t, ok)
	require.Empty(t, empty.Classes)

	_, ok = internal.FindRole(roles, `nope`)
	require.False(t, ok)
}

func TestLoadScenario_notFound(t *testing.T) {
	ic := newInvocation(scenarioStore(t), nil)
	err := requireIssue(t, scenarioapi.ScenarioFileNotFound, func() { internal.LoadScenario(ic, `other`, nil) })
	require.Contains(t, err.Error(), `scenario file for 'other' does not exist`)
}

func TestExpandRoles(t *testing.T) {
	ic := newInvocation(scenarioStore(t), scenarioapi.MapOf(`dbclass`, `mysql`))
	roles := internal.ExpandRoles(ic, internal.LoadScenario(ic, `main`, []string{`role/web`}))
	require.Equal(t, `{"web" => ["a", "b", "five", "one", "two", "three"], "empty" => [], "db" => ["mysql"]}`, roles.String())
}
