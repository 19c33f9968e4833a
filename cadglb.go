// Package cadglb converts solid designs into indexed-triangle GLB files.
// It is a thin facade over pkg/convert with the analytic kernel and
// default options; callers needing a different kernel or tuned
// tessellation settings should use pkg/convert directly.
package cadglb

import (
	"github.com/gmodel921/cadglb/pkg/convert"
	"github.com/gmodel921/cadglb/pkg/kernel/analytic"
	"github.com/gmodel921/cadglb/pkg/mesh"
	"github.com/gmodel921/cadglb/pkg/progress"
)

// ConvertFile converts the design at src (a .yaml/.yml recipe or a
// .zy/.lisp script) into a GLB file at dst and returns the extracted
// mesh. The optional observer receives progress checkpoints; pass nil
// for none.
func ConvertFile(src, dst string, observer progress.Func) (*mesh.Mesh, error) {
	c := convert.New(analytic.New(), convert.DefaultOptions())
	c.Observer = observer
	return c.ConvertFile(src, dst)
}
