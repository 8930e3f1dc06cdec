package shader

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sources is a vertex and fragment shader pair.
type Sources struct {
	Vertex   string
	Fragment string
}

// ────────────────────────────────── Triangle ──────────────────────────────────

const triangleVertex = `#version 300 es
in vec2 position;
uniform vec2 offset;
void main() {
    gl_Position = vec4(position + offset, 0.0, 1.0);
}
`

const triangleFragment = `#version 300 es
precision mediump float;
out vec4 fragColor;
void main() {
    fragColor = vec4(1.0, 0.5, 0.0, 1.0);
}
`

// ──────────────────────────────── Text overlay ────────────────────────────────

const textVertex = `#version 300 es
in vec2 position;
in vec2 uv;
out vec2 frag_uv;
void main() {
    frag_uv = uv;
    gl_Position = vec4(position, 0.0, 1.0);
}
`

const textFragment = `#version 300 es
precision mediump float;
in vec2 frag_uv;
uniform sampler2D glyphs;
uniform vec4 tint;
out vec4 fragColor;
void main() {
    fragColor = texture(glyphs, frag_uv) * tint;
}
`

// Triangle returns the built-in triangle shaders.
func Triangle() Sources {
	return Sources{Vertex: triangleVertex, Fragment: triangleFragment}
}

// Text returns the built-in text overlay shaders.
func Text() Sources {
	return Sources{Vertex: textVertex, Fragment: textFragment}
}

// LoadDir reads base.vert and base.frag from dir.
func LoadDir(dir, base string) (Sources, error) {
	vert, err := os.ReadFile(filepath.Join(dir, base+".vert"))
	if err != nil {
		return Sources{}, fmt.Errorf("failed to read vertex shader: %w", err)
	}
	frag, err := os.ReadFile(filepath.Join(dir, base+".frag"))
	if err != nil {
		return Sources{}, fmt.Errorf("failed to read fragment shader: %w", err)
	}
	return Sources{Vertex: string(vert), Fragment: string(frag)}, nil
}
