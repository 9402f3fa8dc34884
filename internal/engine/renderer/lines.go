package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/deformo/internal/engine/debug"
	"github.com/Faultbox/deformo/internal/engine/renderer/shaders"
	"github.com/Faultbox/deformo/internal/engine/shader"
	"github.com/Faultbox/deformo/pkg/math"
)

const lineStride = debug.FloatsPerLineVertex * 4

// linePass streams debug line vertices every frame.
type linePass struct {
	program *shader.Program

	vao      uint32
	vbo      uint32
	capacity int

	buf []float32
}

func newLinePass() (*linePass, error) {
	program, err := shader.Build("line", shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		return nil, err
	}
	if err := program.Require("uViewProj"); err != nil {
		program.Delete()
		return nil, err
	}

	p := &linePass{program: program}

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, lineStride, 0)
	gl.EnableVertexAttribArray(0)

	// Color (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, lineStride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return p, nil
}

func (p *linePass) draw(lines []debug.LineVertex, viewProj math.Mat4) {
	p.buf = debug.Flatten(lines, p.buf)
	size := len(p.buf) * 4

	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	if size > p.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(p.buf), gl.STREAM_DRAW)
		p.capacity = size
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(p.buf))
	}

	p.program.Use()
	p.program.SetMat4("uViewProj", viewProj)

	// Overlay stays visible through the surface.
	gl.Disable(gl.DEPTH_TEST)
	gl.DrawArrays(gl.LINES, 0, int32(len(lines)))
	gl.Enable(gl.DEPTH_TEST)

	gl.BindVertexArray(0)
}

func (p *linePass) destroy() {
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
	}
	if p.program != nil {
		p.program.Delete()
	}
}
