package internal_test

import (
	"testing"

	"github.com/lyraproj/scenario/internal"
	"github.com/lyraproj/scenario/provider"
	"github.com/lyraproj/scenario/scenarioapi"
	"github.com/stretchr/testify/require"
)

func configStore(t *testing.T, config string) *provider.MapStore {
	return provider.NewMapStore().
		Add(scenarioapi.Root, scenarioapi.ConfigSource, yamlMap(t, config)).
		Add(scenarioapi.GlobalHieraParams, `common`, yamlMap(t, `
foo: bar
bar: blah
scenario: ignored
`)).
		Add(scenarioapi.GlobalHieraParams, `scenario/scenario_name`, yamlMap(t, `
foo: baz
four: value
blah: "%{scenario}"
`))
}

func TestGlobalConfig(t *testing.T) {
	ic := newInvocation(configStore(t, "scenario: scenario_name\nbar: from_config\nother: 1\n"), nil)
	gc := internal.GlobalConfig(ic, scenarioapi.DefaultHierarchy)
	require.Equal(t,
		`{"scenario" => "scenario_name", "bar" => "blah", "other" => 1, "foo" => "baz", "four" => "value", "blah" => "scenario_name"}`,
		gc.String())
}

func TestLoadConfig(t *testing.T) {
	cfg, name := internal.LoadConfig(newInvocation(configStore(t, "scenario: aio\n"), nil))
	require.Equal(t, `aio`, name)
	require.Equal(t, 1, cfg.Len())
}

func TestLoadConfig_errors(t *testing.T) {
	err := requireIssue(t, scenarioapi.ConfigNotFound, func() {
		internal.LoadConfig(newInvocation(provider.NewMapStore(), nil))
	})
	require.Contains(t, err.Error(), `config.yaml must exist`)

	for _, cfg := range []string{"other: x\n", "scenario: false\n", "scenario:\n"} {
		requireIssue(t, scenarioapi.ScenarioNotDefined, func() {
			internal.LoadConfig(newInvocation(configStore(t, cfg), nil))
		})
	}
}
