package scenarioapi_test

import (
	"errors"
	"testing"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/scenario/scenarioapi"
	"github.com/stretchr/testify/require"
)

func TestCatch_reported(t *testing.T) {
	err := scenarioapi.Catch(func() {
		panic(scenarioapi.Error(scenarioapi.InterpolationFailed, issue.H{`name`: `three`}))
	})
	require.Error(t, err)
	require.True(t, scenarioapi.IsIssue(err, scenarioapi.InterpolationFailed))
	require.Contains(t, err.Error(), `Interpolation for three failed`)
}

func TestCatch_cycleMessage(t *testing.T) {
	err := scenarioapi.Catch(func() {
		panic(scenarioapi.Error(scenarioapi.ClassGroupCycle, issue.H{`name_stack`: []string{`a`, `b`, `a`}}))
	})
	require.Contains(t, err.Error(), `Recursive class group detected in [a -> b -> a]`)
}

func TestCatch_plainError(t *testing.T) {
	err := scenarioapi.Catch(func() { panic(errors.New(`boom`)) })
	require.EqualError(t, err, `boom`)
	require.False(t, scenarioapi.IsIssue(err, scenarioapi.KeyNotFound))
}

func TestCatch_nonError(t *testing.T) {
	require.Panics(t, func() {
		_ = scenarioapi.Catch(func() { panic(`not an error`) })
	})
}

func TestCatch_runtimeError(t *testing.T) {
	var m map[string]int
	require.Panics(t, func() {
		_ = scenarioapi.Catch(func() { m[`x`] = 1 })
	})

	var nm *scenarioapi.Map
	require.Panics(t, func() {
		_ = scenarioapi.Catch(func() { nm.Put(`x`, nil) })
	})
}

func TestCatch_noPanic(t *testing.T) {
	require.NoError(t, scenarioapi.Catch(func() {}))
}
