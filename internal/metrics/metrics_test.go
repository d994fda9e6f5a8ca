package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounts(t *testing.T) {
	r := New()
	r.ModelsImported.Add(2)
	r.TexturesByRole.WithLabelValues("ao").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(r.ModelsImported))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.TexturesByRole.WithLabelValues("ao")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.ModelsSkipped))
}

func TestRecordersAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.ModelsSkipped.Inc()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.ModelsSkipped))
}

func TestWriteTextfile(t *testing.T) {
	r := New()
	r.GraphsBuilt.Inc()
	path := filepath.Join(t.TempDir(), "objsetup.prom")

	require.NoError(t, r.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "objsetup_material_graphs_built_total 1")
}
