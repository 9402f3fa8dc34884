// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SurfaceVertexShader is the vertex shader for the deformable surface.
//
//go:embed surface.vert
var SurfaceVertexShader string

// LambertFragmentShader shades the surface with a single albedo and a
// directional light.
//
//go:embed lambert.frag
var LambertFragmentShader string

// HeightFragmentShader colors the surface by displacement.
//
//go:embed height.frag
var HeightFragmentShader string

// LineVertexShader is the vertex shader for debug lines.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader is the fragment shader for debug lines.
//
//go:embed line.frag
var LineFragmentShader string
