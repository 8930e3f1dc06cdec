package renderer

import (
	"fmt"

	"github.com/richinsley/pianino/sgl"
	"github.com/richinsley/pianino/shader"
	xlate "github.com/richinsley/pianino/translator"
)

// newProgram compiles and links src. With translate set the sources go
// through ANGLE first and the program resolves names through the returned
// variable map.
func newProgram(gl sgl.Context, src shader.Sources, translate bool) (*sgl.Program, error) {
	var opts []sgl.ProgramOption
	if translate {
		translated, names, err := xlate.Translate(src)
		if err != nil {
			return nil, err
		}
		src = translated
		opts = append(opts, sgl.WithNames(names))
	}
	p, err := sgl.BuildProgram(gl, src.Vertex, src.Fragment, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	return p, nil
}
