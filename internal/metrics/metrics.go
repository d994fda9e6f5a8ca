// Package metrics counts what a pipeline run did.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder owns a private registry so runs never share counters.
type Recorder struct {
	Registry *prometheus.Registry

	ModelsImported prometheus.Counter
	ModelsSkipped  prometheus.Counter
	FilesFailed    prometheus.Counter
	TexturesByRole *prometheus.CounterVec
	GraphsBuilt    prometheus.Counter
	GraphNodes     prometheus.Counter
	ObjectsBaked   prometheus.Counter
	ObjectsLinedUp prometheus.Counter
	NoticesByKind  *prometheus.CounterVec
}

func New() *Recorder {
	r := &Recorder{
		Registry: prometheus.NewRegistry(),
		ModelsImported: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "objsetup_models_imported_total",
			Help: "Model files imported into the scene",
		}),
		ModelsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "objsetup_models_skipped_total",
			Help: "Model files skipped because the name already existed",
		}),
		FilesFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "objsetup_files_failed_total",
			Help: "Model files that could not be read",
		}),
		TexturesByRole: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "objsetup_textures_total",
			Help: "Textures claimed by a model, by channel role",
		}, []string{"role"}),
		GraphsBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "objsetup_material_graphs_built_total",
			Help: "Material graphs rebuilt",
		}),
		GraphNodes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "objsetup_material_graph_nodes_total",
			Help: "Nodes created across all material graphs",
		}),
		ObjectsBaked: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "objsetup_objects_baked_total",
			Help: "Objects whose transform was baked",
		}),
		ObjectsLinedUp: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "objsetup_objects_lined_up_total",
			Help: "Objects placed by line-up",
		}),
		NoticesByKind: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "objsetup_notices_total",
			Help: "Notices raised during a run, by kind",
		}, []string{"kind"}),
	}
	r.Registry.MustRegister(
		r.ModelsImported, r.ModelsSkipped, r.FilesFailed, r.TexturesByRole,
		r.GraphsBuilt, r.GraphNodes, r.ObjectsBaked, r.ObjectsLinedUp, r.NoticesByKind,
	)
	return r
}

// WriteTextfile writes the current values in the node exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.Registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
