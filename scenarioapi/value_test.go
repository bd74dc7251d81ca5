package scenarioapi_test

import (
	"math"
	"testing"

	"github.com/lyraproj/scenario/scenarioapi"
	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	require.False(t, scenarioapi.Truthy(nil))
	require.False(t, scenarioapi.Truthy(scenarioapi.Bool(false)))
	require.True(t, scenarioapi.Truthy(scenarioapi.Bool(true)))
	require.True(t, scenarioapi.Truthy(scenarioapi.String(``)))
	require.True(t, scenarioapi.Truthy(scenarioapi.Int(0)))
	require.True(t, scenarioapi.Truthy(scenarioapi.List{}))
}

func TestEqual_noCoercion(t *testing.T) {
	require.True(t, scenarioapi.Equal(nil, nil))
	require.False(t, scenarioapi.Equal(nil, scenarioapi.String(``)))
	require.False(t, scenarioapi.Equal(scenarioapi.Int(1), scenarioapi.Float(1)))
	require.False(t, scenarioapi.Equal(scenarioapi.String(`1`), scenarioapi.Int(1)))
	require.True(t, scenarioapi.Equal(scenarioapi.StringList(`a`, `b`), scenarioapi.List{scenarioapi.String(`a`), scenarioapi.String(`b`)}))
}

func TestWrapAndUnwrap(t *testing.T) {
	v := scenarioapi.Wrap(map[string]interface{}{`b`: []interface{}{1, `x`}, `a`: true})
	m, ok := v.(*scenarioapi.Map)
	require.True(t, ok)
	require.Equal(t, []string{`a`, `b`}, m.Keys())
	require.Equal(t, map[string]interface{}{`a`: true, `b`: []interface{}{int64(1), `x`}}, scenarioapi.Unwrap(v))
}

func TestWrap_sortedKeys(t *testing.T) {
	m, ok := scenarioapi.Wrap(map[interface{}]interface{}{`c`: 1, 2: `x`, `a`: true, `b`: nil}).(*scenarioapi.Map)
	require.True(t, ok)
	require.Equal(t, []string{`2`, `a`, `b`, `c`}, m.Keys())

	m, ok = scenarioapi.Wrap(map[string]string{`z`: `1`, `y`: `2`, `x`: `3`}).(*scenarioapi.Map)
	require.True(t, ok)
	require.Equal(t, []string{`x`, `y`, `z`}, m.Keys())
	v, _ := m.Get(`x`)
	require.Equal(t, scenarioapi.String(`3`), v)
}

func TestWrap_uint(t *testing.T) {
	require.Equal(t, scenarioapi.Int(42), scenarioapi.Wrap(uint64(42)))
	require.Equal(t, scenarioapi.Int(math.MaxInt64), scenarioapi.Wrap(uint64(math.MaxInt64)))
	require.Equal(t, scenarioapi.Float(math.MaxUint64), scenarioapi.Wrap(uint64(math.MaxUint64)))
	require.Equal(t, scenarioapi.Int(7), scenarioapi.Wrap(uint(7)))
}

func TestList_Strings(t *testing.T) {
	ss, ok := scenarioapi.StringList(`a`, `b`).Strings()
	require.True(t, ok)
	require.Equal(t, []string{`a`, `b`}, ss)

	_, ok = scenarioapi.List{scenarioapi.String(`a`), scenarioapi.Int(1)}.Strings()
	require.False(t, ok)
}
