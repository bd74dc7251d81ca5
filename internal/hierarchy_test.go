package internal_test

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/scenario/internal"
	"github.com/lyraproj/scenario/provider"
	"github.com/lyraproj/scenario/scenarioapi"
	"github.com/stretchr/testify/require"
)

func TestLoadHierarchy(t *testing.T) {
	logger := hclog.NewNullLogger()
	require.Equal(t,
		[]string{`scenario/%{scenario}`, `role/%{role}`, `common`},
		internal.LoadHierarchy(`testdata/hiera/v3.yaml`, logger))
	require.Equal(t,
		[]string{`node/%{node}`, `role/%{role}`, `os/%{osfamily}`, `common`},
		internal.LoadHierarchy(`testdata/hiera/v5.yaml`, logger))
}

func TestLoadHierarchy_default(t *testing.T) {
	logger := hclog.NewNullLogger()
	for _, f := range []string{`empty.yaml`, `nohierarchy.yaml`, `nosuchfile.yaml`} {
		require.Equal(t, scenarioapi.DefaultHierarchy, internal.LoadHierarchy(`testdata/hiera/`+f, logger), f)
	}
}

func TestLoadHierarchy_errors(t *testing.T) {
	logger := hclog.NewNullLogger()
	requireIssue(t, scenarioapi.NotAHash, func() { internal.LoadHierarchy(`testdata/hiera/list.yaml`, logger) })
	requireIssue(t, scenarioapi.InvalidHierarchy, func() { internal.LoadHierarchy(`testdata/hiera/badentry.yaml`, logger) })
}

func TestExpandHierarchy(t *testing.T) {
	templates := []string{`node/%{node}`, `role/%{role}`, `os/%{osfamily}`, `scenario/%{scenario}`, `common`}
	ic := newInvocation(provider.NewMapStore(), scenarioapi.MapOf(`scenario`, `aio`, `role`, ``, `osfamily`, `Debian`))
	require.Equal(t, []string{`os/Debian`, `scenario/aio`, `common`}, internal.ExpandHierarchy(ic, templates))
}

func TestExpandHierarchy_emptyScope(t *testing.T) {
	ic := newInvocation(provider.NewMapStore(), nil)
	require.Equal(t, []string{`common`}, internal.ExpandHierarchy(ic, []string{`scenario/%{scenario}`, `common`}))
}
