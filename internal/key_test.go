package internal_test

import (
	"testing"

	"github.com/lyraproj/scenario/internal"
	"github.com/lyraproj/scenario/scenarioapi"
	"github.com/stretchr/testify/require"
)

func TestNewKey(t *testing.T) {
	k := internal.NewKey(`a.b.0`)
	require.Equal(t, []interface{}{`a`, `b`, 0}, k.Parts())
	require.Equal(t, `a`, k.Root())
	require.Equal(t, `a.b.0`, k.String())

	require.Equal(t, []interface{}{`a`, `b.c`, `d`}, internal.NewKey(`a.'b.c'.d`).Parts())
	require.Equal(t, []interface{}{`a`, `b.c`}, internal.NewKey(`a."b.c"`).Parts())
	require.Equal(t, []interface{}{`0`, 1}, internal.NewKey(`0.1`).Parts())
	require.Equal(t, []interface{}{`profile::base::ntp`}, internal.NewKey(`profile::base::ntp`).Parts())
}

func TestNewKey_errors(t *testing.T) {
	requireIssue(t, scenarioapi.EmptyKeySegment, func() { internal.NewKey(`a..b`) })
	requireIssue(t, scenarioapi.EmptyKeySegment, func() { internal.NewKey(`a.`) })
	requireIssue(t, scenarioapi.UnterminatedQuote, func() { internal.NewKey(`a.'b`) })
}

func TestKey_Dig(t *testing.T) {
	v := scenarioapi.MapOf(
		`list`, scenarioapi.List{scenarioapi.String(`x`), scenarioapi.MapOf(`y`, `z`)},
		`hash`, scenarioapi.MapOf(`1`, `one`))
	require.Equal(t, scenarioapi.String(`z`), internal.NewKey(`root.list.1.y`).Dig(v))
	require.Equal(t, scenarioapi.String(`one`), internal.NewKey(`root.hash.1`).Dig(v))
	require.Nil(t, internal.NewKey(`root.list.2`).Dig(v))
	require.Nil(t, internal.NewKey(`root.nope.x`).Dig(v))

	err := requireIssue(t, scenarioapi.DigMismatch, func() { internal.NewKey(`root.list.0.a`).Dig(v) })
	require.Contains(t, err.Error(), `using 'a' from key 'root.list.0.a'`)
	requireIssue(t, scenarioapi.DigMismatch, func() { internal.NewKey(`root.list.a`).Dig(v) })
}
