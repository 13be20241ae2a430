// Package renderer draws the textured panorama sphere with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/panoview/internal/engine/mesh"
	"github.com/Faultbox/panoview/internal/engine/shader"
	"github.com/Faultbox/panoview/internal/engine/texture"
	"github.com/Faultbox/panoview/internal/logger"
)

const vertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 uProjection;
uniform mat4 uModelView;

out vec2 vTexCoord;

void main() {
	vTexCoord = aTexCoord;
	gl_Position = uProjection * uModelView * vec4(aPos, 1.0);
}
`

const fragmentShader = `
#version 410 core

in vec2 vTexCoord;
out vec4 FragColor;

uniform sampler2D uPanorama;

void main() {
	FragColor = vec4(texture(uPanorama, vTexCoord).rgb, 1.0);
}
`

// Config holds renderer configuration.
type Config struct {
	Width          int
	Height         int
	SphereRadius   float32
	SphereSegments int
}

// Renderer owns the GL state for the panorama sphere.
type Renderer struct {
	config Config

	program *shader.Program
	texture *texture.Texture

	sphereVAO   uint32
	sphereVBO   uint32
	sphereEBO   uint32
	sphereCount int32

	projection mgl32.Mat4
}

// New creates a renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:     cfg,
		projection: mgl32.Ident4(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.Int("max_texture_size", texture.MaxSize()),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 1)

	var err error
	r.program, err = shader.Compile(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.program.Use()
	r.program.SetInt("uPanorama", 0)

	r.createSphere()
	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// createSphere uploads the inward-facing sphere geometry.
func (r *Renderer) createSphere() {
	m := mesh.Sphere(r.config.SphereRadius, r.config.SphereSegments, r.config.SphereSegments, true)
	vertices := m.Flatten()

	gl.GenVertexArrays(1, &r.sphereVAO)
	gl.BindVertexArray(r.sphereVAO)

	gl.GenBuffers(1, &r.sphereVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.sphereVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.sphereEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.sphereEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	// Position (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, mesh.VertexStride, nil)
	gl.EnableVertexAttribArray(0)

	// Normal (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, mesh.VertexStride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	// TexCoord (location = 2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, mesh.VertexStride, unsafe.Pointer(uintptr(6*4)))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	r.sphereCount = int32(len(m.Indices))

	logger.Debug("sphere created",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int32("indices", r.sphereCount),
		zap.Float32("radius", r.config.SphereRadius),
	)
}

// SetTexture takes ownership of the panorama texture.
func (r *Renderer) SetTexture(t *texture.Texture) {
	if r.texture != nil {
		r.texture.Delete()
	}
	r.texture = t
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// SetProjection replaces the projection matrix used by Draw.
func (r *Renderer) SetProjection(p mgl32.Mat4) {
	r.projection = p
}

// Draw clears the frame and draws the sphere with the given model-view
// matrix.
func (r *Renderer) Draw(modelView mgl32.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if r.texture == nil {
		return
	}

	r.program.Use()
	r.program.SetMat4("uProjection", r.projection)
	r.program.SetMat4("uModelView", modelView)
	r.texture.Bind(0)

	gl.BindVertexArray(r.sphereVAO)
	gl.DrawElements(gl.TRIANGLES, r.sphereCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.texture != nil {
		r.texture.Delete()
	}
	if r.sphereVAO != 0 {
		gl.DeleteVertexArrays(1, &r.sphereVAO)
	}
	if r.sphereVBO != 0 {
		gl.DeleteBuffers(1, &r.sphereVBO)
	}
	if r.sphereEBO != 0 {
		gl.DeleteBuffers(1, &r.sphereEBO)
	}
	if r.program != nil {
		r.program.Delete()
	}
}
