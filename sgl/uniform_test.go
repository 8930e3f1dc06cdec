package sgl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/pianino/sgl"
	"github.com/richinsley/pianino/sgl/sgltest"
)

func TestUniformLoad(t *testing.T) {
	gl := sgltest.New()
	loc := sgl.UniformLoc(4)

	sgl.Uniform[float32]{Loc: loc}.Load(gl, 1.5)
	sgl.Uniform[int32]{Loc: loc}.Load(gl, 7)
	sgl.Uniform[[2]float32]{Loc: loc}.Load(gl, [2]float32{1, 2})
	sgl.Uniform[[3]float32]{Loc: loc}.Load(gl, [3]float32{1, 2, 3})
	sgl.Uniform[[4]float32]{Loc: loc}.Load(gl, [4]float32{1, 2, 3, 4})
	sgl.Uniform[[2]int32]{Loc: loc}.Load(gl, [2]int32{1, 2})
	sgl.Uniform[[3]int32]{Loc: loc}.Load(gl, [3]int32{1, 2, 3})
	sgl.Uniform[[4]int32]{Loc: loc}.Load(gl, [4]int32{1, 2, 3, 4})

	assert.Equal(t, []string{
		"Uniform1f", "Uniform1i", "Uniform2f", "Uniform3f", "Uniform4f",
		"Uniform2i", "Uniform3i", "Uniform4i",
	}, gl.Names())
	assert.Equal(t, []any{loc, float32(1), float32(2)}, gl.Find("Uniform2f")[0].Args)
}

func TestUniformMatrices(t *testing.T) {
	gl := sgltest.New()
	loc := sgl.UniformLoc(1)
	m2 := sgl.Mat2{1, 2, 3, 4}

	sgl.Uniform[sgl.Mat2]{Loc: loc}.Load(gl, m2)
	sgl.Uniform[sgl.Transposed[sgl.Mat2]]{Loc: loc}.Load(gl, sgl.Transposed[sgl.Mat2]{M: m2})
	sgl.Uniform[sgl.Mat3]{Loc: loc}.Load(gl, sgl.Mat3{})
	sgl.Uniform[sgl.Transposed[sgl.Mat4]]{Loc: loc}.Load(gl, sgl.Transposed[sgl.Mat4]{})

	m := gl.Find("UniformMatrix2fv")
	require.Len(t, m, 2)
	assert.Equal(t, false, m[0].Args[1])
	assert.Equal(t, true, m[1].Args[1])
	assert.Equal(t, []float32{1, 2, 3, 4}, m[1].Args[2])
	assert.Len(t, gl.Find("UniformMatrix3fv")[0].Args[2], 9)
	assert.Equal(t, true, gl.Find("UniformMatrix4fv")[0].Args[1])
}

func TestUniformInertWhenMissing(t *testing.T) {
	gl := sgltest.New()
	u := sgl.Uniform[[2]float32]{Loc: -1}
	u.Load(gl, [2]float32{1, 1})
	sgl.Uniform[sgl.Mat4]{Loc: -1}.Load(gl, sgl.Mat4{})
	assert.Empty(t, gl.Calls)
}
