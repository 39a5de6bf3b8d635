package observability

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStats struct {
	entries  int
	revision uint64
}

func (f *fakeStats) Len() int         { return f.entries }
func (f *fakeStats) Revision() uint64 { return f.revision }

func TestRegistryCollector(t *testing.T) {
	stats := &fakeStats{entries: 2, revision: 5}
	c := NewRegistryCollector(stats)

	assert.Equal(t, 2, testutil.CollectAndCount(c))

	expected := `
# HELP globalvars_entries Number of entries held by the registry.
# TYPE globalvars_entries gauge
globalvars_entries 2
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), "globalvars_entries"))

	stats.entries = 0
	stats.revision = 6
	expected = `
# HELP globalvars_entries Number of entries held by the registry.
# TYPE globalvars_entries gauge
globalvars_entries 0
# HELP globalvars_revision Number of mutations applied to the registry.
# TYPE globalvars_revision counter
globalvars_revision 6
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected)))
}

func TestRegistryCollectorRegisters(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(NewRegistryCollector(&fakeStats{})))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 2)
}
