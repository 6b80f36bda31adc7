// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// OceanVertexShader transforms the ocean grid and forwards world normals.
//
//go:embed ocean.vert
var OceanVertexShader string

// OceanFragmentShader shades the ocean surface.
//
//go:embed ocean.frag
var OceanFragmentShader string
