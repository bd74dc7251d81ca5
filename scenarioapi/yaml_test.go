package scenarioapi_test

import (
	"testing"

	"github.com/lyraproj/scenario/scenarioapi"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalYAML(t *testing.T) {
	v, err := scenarioapi.UnmarshalYAML([]byte(`
b: text
a:
  - 1
  - 2.5
  - true
  - ~
anchor: &x
  k: v
alias: *x
quoted: "true"
`))
	require.NoError(t, err)
	m := v.(*scenarioapi.Map)
	require.Equal(t, []string{`b`, `a`, `anchor`, `alias`, `quoted`}, m.Keys())
	a, _ := m.Get(`a`)
	require.Equal(t, scenarioapi.List{scenarioapi.Int(1), scenarioapi.Float(2.5), scenarioapi.Bool(true), nil}, a)
	al, _ := m.Get(`alias`)
	require.True(t, scenarioapi.MapOf(`k`, `v`).Equals(al))
	q, _ := m.Get(`quoted`)
	require.Equal(t, scenarioapi.String(`true`), q)
}

func TestUnmarshalYAML_empty(t *testing.T) {
	v, err := scenarioapi.UnmarshalYAML([]byte(``))
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestUnmarshalYAML_complexKey(t *testing.T) {
	_, err := scenarioapi.UnmarshalYAML([]byte("? [a, b]\n: c\n"))
	require.Error(t, err)
}
