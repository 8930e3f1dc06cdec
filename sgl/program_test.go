package sgl_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/pianino/sgl"
	"github.com/richinsley/pianino/sgl/sgltest"
)

const (
	vertSrc = "#version 300 es\nin vec2 position;\nvoid main() { gl_Position = vec4(position, 0.0, 1.0); }\n"
	fragSrc = "#version 300 es\nprecision mediump float;\nout vec4 c;\nvoid main() { c = vec4(1.0); }\n"
)

func TestBuildProgram(t *testing.T) {
	gl := sgltest.New()
	p, err := sgl.BuildProgram(gl, vertSrc, fragSrc)
	require.NoError(t, err)

	assert.Empty(t, gl.Shaders, "linked shaders are deleted")
	assert.Equal(t, 2, gl.Count("DetachShader"))
	assert.Len(t, gl.Programs, 1)

	p.Enable(gl)
	p.Disable(gl)
	use := gl.Find("UseProgram")
	assert.Equal(t, []any{p.ID()}, use[0].Args)
	assert.Equal(t, []any{sgl.ProgramID(0)}, use[1].Args)

	p.Delete(gl)
	p.Delete(gl)
	assert.Empty(t, gl.Programs)
	assert.Equal(t, 1, gl.Count("DeleteProgram"))
}

func TestCompileFailureLeavesNoShaders(t *testing.T) {
	for _, stage := range []sgl.Enum{sgl.VERTEX_SHADER, sgl.FRAGMENT_SHADER} {
		gl := sgltest.New()
		gl.FailCompile[stage] = true

		_, err := sgl.BuildProgram(gl, vertSrc, fragSrc)
		require.Error(t, err)
		assert.True(t, errors.Is(err, sgl.ErrCompile))
		var be *sgl.BuildError
		require.True(t, errors.As(err, &be))
		assert.Contains(t, be.Log, "syntax error")
		assert.Contains(t, err.Error(), "syntax error")

		assert.Empty(t, gl.Shaders)
		assert.Empty(t, gl.Programs)
	}
}

func TestNewShaderFailure(t *testing.T) {
	gl := sgltest.New()
	gl.FailCompile[sgl.FRAGMENT_SHADER] = true
	_, err := sgl.NewShader(gl, sgl.FragmentShader, fragSrc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fragment")
	assert.Empty(t, gl.Shaders)
}

func TestLinkFailureLeavesNothing(t *testing.T) {
	gl := sgltest.New()
	gl.FailLink = true

	_, err := sgl.BuildProgram(gl, vertSrc, fragSrc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, sgl.ErrLink))
	assert.Contains(t, err.Error(), "unresolved varying")

	assert.Empty(t, gl.Shaders)
	assert.Empty(t, gl.Programs)
	assert.Equal(t, 2, gl.Count("DetachShader"))
}

func TestMissingNamesAreInert(t *testing.T) {
	gl := sgltest.New()
	gl.Missing["offset"] = true
	gl.Missing["color"] = true
	p, err := sgl.BuildProgram(gl, vertSrc, fragSrc)
	require.NoError(t, err)

	u := sgl.NewUniform[[2]float32](gl, p, "offset")
	a := sgl.NewAttrib[[4]uint8](gl, p, "color")
	pos := sgl.NewAttrib[[2]float32](gl, p, "position")
	assert.False(t, u.Loc.Valid())
	assert.False(t, a.Loc.Valid())
	assert.True(t, pos.Loc.Valid())
	assert.Equal(t, sgl.UByte4, a.Kind)

	gl.Reset()
	u.Load(gl, [2]float32{1, 2})
	sgl.Attribs{a}.Enable(gl)
	assert.Empty(t, gl.Calls)
}

func TestWithNames(t *testing.T) {
	gl := sgltest.New()
	p, err := sgl.BuildProgram(gl, vertSrc, fragSrc, sgl.WithNames(map[string]string{"offset": "_uoffset"}))
	require.NoError(t, err)

	gl.Reset()
	p.UniformLoc(gl, "offset")
	p.AttribLoc(gl, "position")
	assert.Equal(t, "_uoffset", gl.Find("GetUniformLocation")[0].Args[1])
	assert.Equal(t, "position", gl.Find("GetAttribLocation")[0].Args[1])
}
