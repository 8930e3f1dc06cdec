package renderer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/pianino/inputs"
	"github.com/richinsley/pianino/renderer"
	"github.com/richinsley/pianino/sgl"
	"github.com/richinsley/pianino/sgl/sgltest"
	"github.com/richinsley/pianino/shader"
)

func TestDemoRender(t *testing.T) {
	gl := sgltest.New()
	s, err := renderer.LoadScene(gl, renderer.SceneOptions{Title: "GLES Demo"})
	require.NoError(t, err)
	assert.Nil(t, s.Overlay)

	bd := gl.Find("BufferData")
	require.Len(t, bd, 1)
	assert.Equal(t, []any{sgl.ARRAY_BUFFER, 3 * 8, true, sgl.STATIC_DRAW}, bd[0].Args)

	gl.Reset()
	s.Demo.SetOffset(0.25, -0.5)
	s.Render(gl)
	assert.Equal(t, []any{sgl.UniformLoc(0), float32(0.25), float32(-0.5)}, gl.Find("Uniform2f")[0].Args)
	assert.Equal(t, []any{sgl.TRIANGLES, 0, 3}, gl.Find("DrawArrays")[0].Args)
	assert.Equal(t, 2, gl.Count("UseProgram"))

	s.Destroy(gl)
	assert.Empty(t, gl.Programs)
	assert.Empty(t, gl.Buffers)
}

func TestLoadSceneCompileFailure(t *testing.T) {
	gl := sgltest.New()
	gl.FailCompile[sgl.FRAGMENT_SHADER] = true
	_, err := renderer.LoadScene(gl, renderer.SceneOptions{Overlay: true})
	assert.ErrorIs(t, err, sgl.ErrCompile)
	assert.Empty(t, gl.Programs)
	assert.Empty(t, gl.Shaders)
	assert.Empty(t, gl.Buffers)
}

func TestReloadKeepsProgramOnFailure(t *testing.T) {
	gl := sgltest.New()
	s, err := renderer.LoadScene(gl, renderer.SceneOptions{})
	require.NoError(t, err)
	require.Len(t, gl.Programs, 1)
	var old sgl.ProgramID
	for id := range gl.Programs {
		old = id
	}

	gl.FailLink = true
	assert.ErrorIs(t, s.Reload(gl, shader.Triangle()), sgl.ErrLink)
	assert.True(t, gl.Programs[old])

	gl.Reset()
	s.Render(gl)
	assert.Equal(t, []any{old}, gl.Find("UseProgram")[0].Args)

	gl.FailLink = false
	require.NoError(t, s.Reload(gl, shader.Triangle()))
	assert.False(t, gl.Programs[old])
	assert.Len(t, gl.Programs, 1)
}

func TestTextOverlay(t *testing.T) {
	gl := sgltest.New()
	s, err := renderer.LoadScene(gl, renderer.SceneOptions{Overlay: true, TextStyle: inputs.TextStyle{Scale: 1}})
	require.NoError(t, err)
	o := s.Overlay
	require.NotNil(t, o)
	assert.Equal(t, "", o.Text())

	// No viewport yet, nothing to draw.
	gl.Reset()
	o.Render(gl)
	assert.Empty(t, gl.Calls)

	s.Resize(gl, 800, 600)
	o.SetText(gl, "hi")
	assert.Equal(t, "hi", o.Text())

	img := inputs.RasterizeText("hi", inputs.TextStyle{Scale: 1})
	tex := gl.Find("TexImage2D")
	last := tex[len(tex)-1].Args
	assert.Equal(t, img.Bounds().Dx(), last[3])
	assert.Equal(t, img.Bounds().Dy(), last[4])

	gl.Reset()
	o.Render(gl)
	assert.Equal(t, []any{sgl.BLEND}, gl.Find("Enable")[0].Args)
	assert.Equal(t, []any{sgl.BLEND}, gl.Find("Disable")[0].Args)
	assert.Equal(t, []any{sgl.TRIANGLES, 6, sgl.UNSIGNED_SHORT, 0}, gl.Find("DrawElements")[0].Args)
	assert.Equal(t, 1, gl.Count("Uniform4f"))
	assert.Equal(t, []any{sgl.UniformLoc(1), int32(0)}, gl.Find("Uniform1i")[0].Args)

	// Interleaved position and uv.
	ptr := gl.Find("VertexAttribPointer")
	require.Len(t, ptr, 2)
	assert.Equal(t, []any{sgl.AttribLoc(0), 2, sgl.FLOAT, false, 16, 0}, ptr[0].Args)
	assert.Equal(t, []any{sgl.AttribLoc(1), 2, sgl.FLOAT, false, 16, 8}, ptr[1].Args)

	s.Destroy(gl)
	assert.Empty(t, gl.Programs)
	assert.Empty(t, gl.Buffers)
	assert.Empty(t, gl.Textures)
}
