// Package scene draws the simulated ocean surface.
package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/oceanwaves/internal/engine/lighting"
	"github.com/Faultbox/oceanwaves/internal/engine/mesh"
	"github.com/Faultbox/oceanwaves/internal/engine/scene/shaders"
	"github.com/Faultbox/oceanwaves/internal/engine/shader"
)

// Lighting holds the shading inputs of the ocean pass.
type Lighting struct {
	LightDir   mgl32.Vec3
	WaterColor mgl32.Vec3
	SkyColor   mgl32.Vec3
}

// DefaultLighting returns a low sun over deep water.
func DefaultLighting() Lighting {
	return Lighting{
		LightDir:   lighting.LightDirection(200, 35),
		WaterColor: mgl32.Vec3{0.02, 0.18, 0.30},
		SkyColor:   mgl32.Vec3{0.53, 0.70, 0.85},
	}
}

// OceanRenderer uploads the ocean grid once per frame and draws it as a
// single triangle strip.
type OceanRenderer struct {
	program uint32

	locModel      int32
	locViewProj   int32
	locLightDir   int32
	locCameraPos  int32
	locWaterColor int32
	locSkyColor   int32

	vao uint32
	vbo uint32
	ebo uint32

	vertexCount int
	indexCount  int32

	Lighting Lighting
	Model    mgl32.Mat4
}

// NewOceanRenderer compiles the ocean program and allocates buffers sized for
// vertices. The index buffer is uploaded once and never changes.
func NewOceanRenderer(vertices []mesh.Vertex, indices []uint32) (*OceanRenderer, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("ocean renderer: empty vertex set")
	}

	program, err := shader.CompileProgram(shaders.OceanVertexShader, shaders.OceanFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("ocean shader: %w", err)
	}

	r := &OceanRenderer{
		program:     program,
		vertexCount: len(vertices),
		indexCount:  int32(len(indices)),
		Lighting:    DefaultLighting(),
		Model:       mgl32.Ident4(),
	}

	r.locModel = shader.GetUniform(program, "uModel")
	r.locViewProj = shader.GetUniform(program, "uViewProj")
	r.locLightDir = shader.GetUniform(program, "uLightDir")
	r.locCameraPos = shader.GetUniform(program, "uCameraPos")
	r.locWaterColor = shader.GetUniform(program, "uWaterColor")
	r.locSkyColor = shader.GetUniform(program, "uSkyColor")

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*mesh.VertexSize, unsafe.Pointer(&vertices[0]), gl.DYNAMIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(mesh.VertexSize), 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(mesh.VertexSize), uintptr(mesh.NormalOffset))
	gl.EnableVertexAttribArray(1)

	if len(indices) > 0 {
		gl.GenBuffers(1, &r.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)

	return r, nil
}

// Update replaces the vertex buffer contents. The vertex count must match
// the one the renderer was created with.
func (r *OceanRenderer) Update(vertices []mesh.Vertex) {
	if len(vertices) != r.vertexCount {
		panic(fmt.Sprintf("ocean renderer: got %d vertices, want %d", len(vertices), r.vertexCount))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*mesh.VertexSize, unsafe.Pointer(&vertices[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Render draws the surface with the given view-projection matrix.
func (r *OceanRenderer) Render(viewProj mgl32.Mat4, cameraPos mgl32.Vec3) {
	if r.indexCount == 0 {
		return
	}

	gl.UseProgram(r.program)
	shader.SetMat4(r.locModel, r.Model)
	shader.SetMat4(r.locViewProj, viewProj)
	shader.SetVec3(r.locLightDir, r.Lighting.LightDir)
	shader.SetVec3(r.locCameraPos, cameraPos)
	shader.SetVec3(r.locWaterColor, r.Lighting.WaterColor)
	shader.SetVec3(r.locSkyColor, r.Lighting.SkyColor)

	gl.BindVertexArray(r.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLE_STRIP, r.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Close releases GPU resources.
func (r *OceanRenderer) Close() {
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}
