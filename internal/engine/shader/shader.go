// Package shader builds GLSL programs and tracks their uniforms by name.
package shader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/deformo/pkg/math"
)

// ErrMissingUniform is returned by Require when a program lacks a uniform.
var ErrMissingUniform = errors.New("missing uniform")

// Program is a linked vertex + fragment program.
type Program struct {
	name     string
	id       uint32
	uniforms map[string]int32
}

type stage struct {
	kind   uint32
	label  string
	source string
}

// Build compiles both stages and links them. name only labels errors.
func Build(name, vertexSrc, fragmentSrc string) (*Program, error) {
	stages := []stage{
		{gl.VERTEX_SHADER, "vertex", vertexSrc},
		{gl.FRAGMENT_SHADER, "fragment", fragmentSrc},
	}

	id := gl.CreateProgram()
	for _, st := range stages {
		sh, err := compile(st)
		if err != nil {
			gl.DeleteProgram(id)
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		gl.AttachShader(id, sh)
		// Flagged for deletion; freed once the program is deleted.
		gl.DeleteShader(sh)
	}
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &n)
		log := make([]byte, max(n, 1))
		gl.GetProgramInfoLog(id, n, nil, &log[0])
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("%s: link: %s", name, trimLog(log))
	}

	return &Program{name: name, id: id, uniforms: make(map[string]int32)}, nil
}

func compile(st stage) (uint32, error) {
	sh := gl.CreateShader(st.kind)
	src, free := gl.Strs(st.source + "\x00")
	gl.ShaderSource(sh, 1, src, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &n)
		log := make([]byte, max(n, 1))
		gl.GetShaderInfoLog(sh, n, nil, &log[0])
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("%s shader: %s", st.label, trimLog(log))
	}
	return sh, nil
}

func trimLog(b []byte) string {
	return strings.TrimRight(string(b), "\x00\n ")
}

// Uniform returns the location of name, or -1 if the program has no such
// active uniform. GL ignores writes to -1. Lookups are cached.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// Has reports whether name is an active uniform.
func (p *Program) Has(name string) bool {
	return p.Uniform(name) >= 0
}

// Require checks that every named uniform is active.
func (p *Program) Require(names ...string) error {
	var missing []string
	for _, n := range names {
		if !p.Has(n) {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w in %s: %s", ErrMissingUniform, p.name, strings.Join(missing, ", "))
	}
	return nil
}

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// SetMat4 sets a mat4 uniform on the bound program.
func (p *Program) SetMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(p.Uniform(name), 1, false, &m[0])
}

// SetVec3 sets a vec3 uniform on the bound program.
func (p *Program) SetVec3(name string, v math.Vec3) {
	gl.Uniform3f(p.Uniform(name), v.X, v.Y, v.Z)
}

// SetColor sets a vec3 uniform from an RGB triple.
func (p *Program) SetColor(name string, c [3]float32) {
	gl.Uniform3f(p.Uniform(name), c[0], c[1], c[2])
}

// SetFloat sets a float uniform on the bound program.
func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.Uniform(name), v)
}

// Delete frees the program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
