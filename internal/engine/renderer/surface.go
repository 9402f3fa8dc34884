package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/deformo/internal/deform"
	"github.com/Faultbox/deformo/internal/engine/meshdata"
	"github.com/Faultbox/deformo/internal/engine/renderer/shaders"
	"github.com/Faultbox/deformo/internal/engine/shader"
	"github.com/Faultbox/deformo/internal/logger"
	"github.com/Faultbox/deformo/pkg/math"
)

// surfacePass owns the GPU copy of one deform.Surface.
type surfacePass struct {
	program *shader.Program

	vao uint32
	vbo uint32
	ebo uint32

	current     *deform.Surface
	indexCount  int32
	vertexBytes int

	normals     []math.Vec3
	interleaved []float32
}

func newSurfacePass(fragmentSrc string) (*surfacePass, error) {
	program, err := shader.Build("surface", shaders.SurfaceVertexShader, fragmentSrc)
	if err != nil {
		return nil, err
	}
	if err := program.Require("uViewProj", "uModel", "uNormalMatrix"); err != nil {
		program.Delete()
		return nil, err
	}

	p := &surfacePass{program: program}

	gl.GenVertexArrays(1, &p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.GenBuffers(1, &p.ebo)

	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, meshdata.Stride, 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, meshdata.Stride, 3*4)
	gl.EnableVertexAttribArray(1)

	// Height (location 2)
	gl.VertexAttribPointerWithOffset(2, 1, gl.FLOAT, false, meshdata.Stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)
	gl.BindVertexArray(0)

	return p, nil
}

// sync re-uploads vertex data when the surface is dirty. A different surface
// (after a rebuild) also replaces the index buffer.
func (p *surfacePass) sync(s *deform.Surface) {
	if s == nil {
		return
	}
	rebuilt := s != p.current
	if !rebuilt && !s.Dirty() {
		return
	}

	gl.BindVertexArray(p.vao)

	if rebuilt {
		indices := s.Indices()
		p.indexCount = int32(len(indices))
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)
		if len(indices) > 0 {
			gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
		} else {
			gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		}
		p.current = s
		p.vertexBytes = 0

		logger.Debug("surface uploaded",
			zap.Int("vertices", len(s.Vertices())),
			zap.Int32("indices", p.indexCount),
		)
	}

	p.normals = meshdata.ComputeNormals(s.Vertices(), s.Indices(), p.normals)
	p.interleaved = meshdata.Interleave(s.Vertices(), p.normals, p.interleaved)

	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	size := len(p.interleaved) * 4
	switch {
	case size == 0:
	case size != p.vertexBytes:
		gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(p.interleaved), gl.DYNAMIC_DRAW)
		p.vertexBytes = size
	default:
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(p.interleaved))
	}

	gl.BindVertexArray(0)
	s.ClearDirty()
}

func (p *surfacePass) draw(viewProj math.Mat4, cfg Config, maxDepth float32) {
	if p.current == nil || p.indexCount == 0 {
		return
	}

	model := p.current.Transform().Matrix()
	normalMatrix := model
	if inv, ok := model.Inverse(); ok {
		normalMatrix = inv.Transpose()
	}

	p.program.Use()
	p.program.SetMat4("uViewProj", viewProj)
	p.program.SetMat4("uModel", model)
	p.program.SetMat4("uNormalMatrix", normalMatrix)
	p.program.SetColor("uAlbedo", cfg.Albedo)
	p.program.SetVec3("uLightDir", cfg.LightDir)
	p.program.SetColor("uAmbient", cfg.Ambient)
	if p.program.Has("uMaxDepth") { // height material only
		p.program.SetFloat("uMaxDepth", maxDepth)
	}

	gl.BindVertexArray(p.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, p.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (p *surfacePass) destroy() {
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
	}
	if p.ebo != 0 {
		gl.DeleteBuffers(1, &p.ebo)
	}
	if p.program != nil {
		p.program.Delete()
	}
}
