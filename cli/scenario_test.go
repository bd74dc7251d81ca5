package cli_test

import (
	"testing"

	"github.com/lyraproj/scenario/cli"
	"github.com/stretchr/testify/require"
)

const (
	confdir = `../scenario/testdata/confdir`
	broken  = `../scenario/testdata/broken`
)

func execute(args ...string) (string, error) {
	out, err := cli.ExecuteCommand(append(args, `--confdir`, confdir)...)
	return string(out), err
}

func TestNode(t *testing.T) {
	out, err := execute(`node`, `node1`, `--render-as`, `json`)
	require.NoError(t, err)
	require.Equal(t,
		`{"name":"node1","role":"role1","classes":["one","value","five","two","three"],"parameters":{"scenario":"scenario_name","foo":"baz","four":"value","blah":"scenario_name","bar":"blah","role":"role1","node_data_bindings":{"one":{"param":"%{four}"},"foo":{"verbose":true,"somevar":"interpolation_baz"},"blah":{"verbose":true},"bar":{"verbose":false,"somevar":false}}}}`+"\n",
		out)
}

func TestNode_interpolate(t *testing.T) {
	out, err := execute(`node`, `node1`, `--render-as`, `json`, `--interpolate`)
	require.NoError(t, err)
	require.Contains(t, out, `"one":{"param":"value"}`)
}

func TestNode_factsDir(t *testing.T) {
	out, err := execute(`node`, `node2`, `--render-as`, `json`, `--facts-dir`, confdir+`/facts`)
	require.NoError(t, err)
	require.Contains(t, out, `"classes":["from_fact"]`)
	require.Contains(t, out, `"somevar":"interpolation_from_fact"`)
}

func TestNode_yaml(t *testing.T) {
	out, err := execute(`node`, `node3`)
	require.NoError(t, err)
	require.Contains(t, out, "name: node3\nrole: null\nclasses: []\n")
}

func TestNode_unknownRole(t *testing.T) {
	_, err := execute(`node`, `ghost`)
	require.Error(t, err)
	require.Contains(t, err.Error(), `Role 'no_such_role' is not defined in scenario 'scenario_name'`)
}

func TestClasses(t *testing.T) {
	out, err := execute(`classes`, `role1`, `--render-as`, `s`)
	require.NoError(t, err)
	require.Equal(t, "one\nvalue\nfive\ntwo\nthree\n", out)
}

func TestClasses_var(t *testing.T) {
	out, err := execute(`classes`, `role2`, `--var`, `foo=from_var`)
	require.NoError(t, err)
	require.Equal(t, "- from_var\n", out)
}

func TestClasses_facts(t *testing.T) {
	out, err := execute(`classes`, `role2`, `--facts`, confdir+`/facts/node2.yaml`, `--render-as`, `json`)
	require.NoError(t, err)
	require.Equal(t, "[\"from_fact\"]\n", out)
}

func TestCompile(t *testing.T) {
	out, err := execute(`compile`, `role2`, `--render-as`, `json`)
	require.NoError(t, err)
	require.Equal(t, "{\"baz\":{}}\n", out)

	out, err = execute(`compile`, `role1`, `--render-as`, `json`, `--interpolate`)
	require.NoError(t, err)
	require.Equal(t, "{\"one\":{\"param\":\"value\"},\"value\":{},\"five\":{},\"two\":{},\"three\":{}}\n", out)
}

func TestLookup(t *testing.T) {
	out, err := execute(`lookup`, `key`)
	require.NoError(t, err)
	require.Equal(t, "value\n", out)

	out, err = execute(`lookup`, `hash.three`, `--render-as`, `json`)
	require.NoError(t, err)
	require.Equal(t, "\"four\"\n", out)

	out, err = execute(`lookup`, `foo::somevar`, `--var`, `foo=x`, `--render-as`, `s`)
	require.NoError(t, err)
	require.Equal(t, "interpolation_x\n", out)
}

func TestLookup_notFound(t *testing.T) {
	_, err := execute(`lookup`, `nope`)
	require.Error(t, err)
	require.Contains(t, err.Error(), `no value found for key 'nope'`)
}

func TestLookup_explain(t *testing.T) {
	out, err := execute(`lookup`, `bar::verbose`, `--explain`)
	require.NoError(t, err)
	require.Contains(t, out, `Searching for "bar::verbose"`)
	require.Contains(t, out, `Data mapping "bar::verbose" -> "debug"`)
	require.Contains(t, out, `Found key: "debug" value: false`)
}

func TestRoles(t *testing.T) {
	out, err := execute(`roles`, `--render-as`, `json`)
	require.NoError(t, err)
	require.Equal(t, "{\"role1\":[\"one\",\"value\",\"five\",\"two\",\"three\"],\"role2\":[\"baz\"]}\n", out)
}

func TestScenarioName(t *testing.T) {
	out, err := execute(`scenario-name`)
	require.NoError(t, err)
	require.Equal(t, "scenario_name\n", out)
}

func TestScenarioName_env(t *testing.T) {
	t.Setenv(`SCENARIO_CONFDIR`, confdir)
	out, err := cli.ExecuteCommand(`scenario-name`)
	require.NoError(t, err)
	require.Equal(t, "scenario_name\n", string(out))
}

func TestScenarioName_datadir(t *testing.T) {
	out, err := cli.ExecuteCommand(`scenario-name`, `--datadir`, confdir+`/data`, `--confdir`, broken)
	require.NoError(t, err)
	require.Equal(t, "scenario_name\n", string(out))
}

func TestCheck(t *testing.T) {
	out, err := execute(`check`)
	require.NoError(t, err)
	require.Equal(t, "OK\n", out)
}

func TestCheck_broken(t *testing.T) {
	out, err := cli.ExecuteCommand(`check`, `--confdir`, broken)
	require.Error(t, err)
	require.Contains(t, err.Error(), `problem(s)`)
	s := string(out)
	require.Contains(t, s, `Recursive class group detected in [blah -> blah]`)
	require.Contains(t, s, `Group file for class group 'none' does not exist`)
}

func TestRenderAs_unknown(t *testing.T) {
	_, err := execute(`roles`, `--render-as`, `xml`)
	require.EqualError(t, err, `unknown rendering 'xml'`)
}

func TestInvalidVar(t *testing.T) {
	_, err := execute(`classes`, `role1`, `--var`, `novalue`)
	require.Error(t, err)
	require.Contains(t, err.Error(), `unable to parse variable 'novalue'`)
}
