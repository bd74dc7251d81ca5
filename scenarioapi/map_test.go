package scenarioapi_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/lyraproj/scenario/scenarioapi"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMap_keepsInsertionOrder(t *testing.T) {
	m := scenarioapi.MapOf(`b`, 1, `a`, 2, `c`, 3)
	m.Put(`b`, scenarioapi.Int(4))
	require.Equal(t, []string{`b`, `a`, `c`}, m.Keys())
	v, ok := m.Get(`b`)
	require.True(t, ok)
	require.Equal(t, scenarioapi.Int(4), v)
}

func TestMap_PutIfAbsent_blockedByFalsyValue(t *testing.T) {
	m := scenarioapi.NewMap(0)
	require.True(t, m.PutIfAbsent(`a`, scenarioapi.Bool(false)))
	require.False(t, m.PutIfAbsent(`a`, scenarioapi.String(`x`)))
	require.True(t, m.PutIfAbsent(`n`, nil))
	require.False(t, m.PutIfAbsent(`n`, scenarioapi.String(`x`)))
	v, _ := m.Get(`a`)
	require.Equal(t, scenarioapi.Bool(false), v)
	require.True(t, m.Has(`n`))
}

func TestMap_Merge(t *testing.T) {
	a := scenarioapi.MapOf(`x`, 1, `y`, 2)
	b := scenarioapi.MapOf(`y`, 3, `z`, 4)
	m := a.Merge(b)
	require.True(t, scenarioapi.MapOf(`x`, 1, `y`, 3, `z`, 4).Equals(m))
	require.Equal(t, 2, a.Len())
}

func TestMap_nilReceiver(t *testing.T) {
	var m *scenarioapi.Map
	require.Equal(t, 0, m.Len())
	_, ok := m.Get(`a`)
	require.False(t, ok)
	m.Each(func(string, scenarioapi.Value) { t.Fatal(`called`) })
}

func TestMap_MarshalJSON(t *testing.T) {
	m := scenarioapi.MapOf(`z`, `last`, `a`, []interface{}{1, true, nil}, `m`, scenarioapi.MapOf(`y`, 1.5, `b`, `x`))
	bs, err := json.Marshal(m)
	require.NoError(t, err)
	require.Equal(t, `{"z":"last","a":[1,true,null],"m":{"y":1.5,"b":"x"}}`, string(bs))
}

func TestMap_MarshalYAML(t *testing.T) {
	m := scenarioapi.MapOf(`z`, `last`, `a`, []string{`one`, `two`}, `m`, scenarioapi.MapOf(`k`, 1, `b`, nil))
	bs, err := yaml.Marshal(m)
	require.NoError(t, err)
	require.Equal(t, "z: last\na:\n    - one\n    - two\nm:\n    k: 1\n    b: null\n", string(bs))
}

func ExampleMap_String() {
	fmt.Println(scenarioapi.MapOf(`a`, `x`, `b`, []interface{}{1, `y`}, `c`, nil))
	// Output: {"a" => "x", "b" => [1, "y"], "c" => undef}
}
