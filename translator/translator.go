// Package translator runs GLSL ES 3.00 sources through ANGLE so that they
// compile the same way on every driver.
package translator

import (
	"context"
	"fmt"
	"sync"

	gst "github.com/richinsley/goshadertranslator"

	"github.com/richinsley/pianino/shader"
)

var (
	once       sync.Once
	translator *gst.ShaderTranslator
	initErr    error
)

// GetTranslator returns the shared translator, creating it on first use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	once.Do(func() {
		translator, initErr = gst.NewShaderTranslator(context.Background())
	})
	return translator, initErr
}

// Translate converts both stages of src to ESSL and returns the translated
// sources together with the original-to-mapped names of every attribute,
// uniform and varying, suitable for sgl.WithNames.
func Translate(src shader.Sources) (shader.Sources, map[string]string, error) {
	t, err := GetTranslator()
	if err != nil {
		return shader.Sources{}, nil, fmt.Errorf("failed to start shader translator: %w", err)
	}
	vs, err := t.TranslateShader(src.Vertex, "vertex", gst.ShaderSpecWebGL2, gst.OutputFormatESSL)
	if err != nil {
		return shader.Sources{}, nil, fmt.Errorf("vertex shader translation failed: %w", err)
	}
	fs, err := t.TranslateShader(src.Fragment, "fragment", gst.ShaderSpecWebGL2, gst.OutputFormatESSL)
	if err != nil {
		return shader.Sources{}, nil, fmt.Errorf("fragment shader translation failed: %w", err)
	}
	names := make(map[string]string, len(vs.Variables)+len(fs.Variables))
	for name, v := range vs.Variables {
		names[name] = v.MappedName
	}
	for name, v := range fs.Variables {
		names[name] = v.MappedName
	}
	return shader.Sources{Vertex: vs.Code, Fragment: fs.Code}, names, nil
}
