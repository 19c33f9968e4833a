// Package convert implements the mesh extraction pipeline: it walks a
// tessellated shape's per-face triangulations, merges coincident vertices
// by rounded spatial key, builds one globally indexed triangle mesh, and
// reports deterministic progress checkpoints along the way.
package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/gmodel921/cadglb/pkg/engine"
	"github.com/gmodel921/cadglb/pkg/glb"
	"github.com/gmodel921/cadglb/pkg/graph"
	"github.com/gmodel921/cadglb/pkg/kernel"
	"github.com/gmodel921/cadglb/pkg/mesh"
	"github.com/gmodel921/cadglb/pkg/progress"
	"github.com/gmodel921/cadglb/pkg/tessellate"
)

// Converter runs the full file-to-file pipeline: load a shape description,
// tessellate it through a geometry kernel, build the deduplicated mesh,
// and hand it to the GLB exporter. A Converter is stateless across calls;
// each conversion owns its own working data, so one Converter may serve
// several goroutines as long as Log and Observer are safe to share.
type Converter struct {
	Kernel   kernel.Kernel
	Options  Options
	Log      *zap.Logger
	Observer progress.Func
}

// New returns a Converter with a no-op logger and no observer.
func New(k kernel.Kernel, opts Options) *Converter {
	return &Converter{Kernel: k, Options: opts, Log: zap.NewNop()}
}

func (c *Converter) logger() *zap.Logger {
	if c.Log == nil {
		return zap.NewNop()
	}
	return c.Log
}

// ConvertFile converts the shape described by src into a GLB file at dst
// and returns the extracted mesh. Checkpoints are emitted through the
// configured observer in the fixed order starting, loaded, meshing,
// meshed, processing..., exporting, finished; any failure is reported as a
// terminal error checkpoint instead, exactly once, and no partial output
// is written.
func (c *Converter) ConvertFile(src, dst string) (*mesh.Mesh, error) {
	rep := progress.NewReporter(c.Observer)
	log := c.logger()

	if _, err := os.Stat(src); err != nil {
		werr := fmt.Errorf("%w: %s", ErrInputNotFound, src)
		rep.Error(werr.Error())
		return nil, werr
	}

	rep.Report(1, progress.StateStarting, "Starting conversion")
	log.Info("conversion started", zap.String("src", src), zap.String("dst", dst))

	g, err := c.loadGraph(src)
	if err != nil {
		rerr := &GeometryReadError{Err: err}
		rep.Error(rerr.Error())
		return nil, rerr
	}
	rep.Report(5, progress.StateLoaded, "Shape description loaded")

	rep.Report(8, progress.StateMeshing, "Starting tessellation")
	shape, err := tessellate.Tessellate(g, c.Kernel, c.Options.kernelOptions())
	if err != nil {
		cerr := &ConversionError{Stage: "tessellation", Err: err}
		rep.Error(cerr.Error())
		return nil, cerr
	}
	rep.Report(12, progress.StateMeshed, "Tessellation complete")
	log.Debug("tessellation complete", zap.Int("faces", shape.FaceCount()))

	m, err := buildMesh(shape, c.Options, rep)
	if err != nil {
		rep.Error(err.Error())
		return nil, err
	}
	log.Debug("mesh built",
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()))

	rep.Report(90, progress.StateExporting, "Preparing to export GLB")
	if err := glb.Save(m, dst); err != nil {
		cerr := &ConversionError{Stage: "export", Err: err}
		rep.Error(cerr.Error())
		return nil, cerr
	}

	summary := fmt.Sprintf("Converted: faces=%d, triangles=%d, verts=%d",
		shape.FaceCount(), m.TriangleCount(), m.VertexCount())
	rep.Report(100, progress.StateFinished, summary)
	log.Info("conversion finished",
		zap.Int("faces", shape.FaceCount()),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()))
	return m, nil
}

// loadGraph parses the shape description, dispatching on file extension:
// YAML recipes and zygomys scripts are the two supported sources. The
// design is validated before it reaches the kernel.
func (c *Converter) loadGraph(src string) (*graph.DesignGraph, error) {
	var (
		g   *graph.DesignGraph
		err error
	)
	switch strings.ToLower(filepath.Ext(src)) {
	case ".yaml", ".yml":
		g, err = graph.LoadRecipe(src)
		if err != nil {
			return nil, err
		}
	case ".zy", ".lisp":
		data, rerr := os.ReadFile(src)
		if rerr != nil {
			return nil, rerr
		}
		var evalErrs []engine.EvalError
		g, evalErrs, err = engine.NewEngine().Evaluate(string(data))
		if err != nil {
			return nil, err
		}
		if len(evalErrs) > 0 {
			return nil, evalErrs[0]
		}
	default:
		return nil, fmt.Errorf("unsupported input format %q", filepath.Ext(src))
	}

	if verrs := graph.Validate(g); len(verrs) > 0 {
		return nil, verrs[0]
	}
	return g, nil
}
