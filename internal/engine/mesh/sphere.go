// Package mesh builds CPU-side geometry for the renderer.
package mesh

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one sphere vertex as laid out in the GPU buffer.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// VertexStride is the size of a Vertex in bytes.
const VertexStride = 8 * 4

// Mesh is indexed triangle geometry.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Sphere generates a UV sphere centred on the origin with the poles on Y.
//
// Texture coordinates follow the equirectangular layout: v=0 is the +Y pole
// (first image row), and u=0.5 lies on -Z so the image centre is straight
// ahead at yaw 0. u grows towards +X when seen from the centre, so an inward
// sphere shows the panorama unmirrored.
//
// With inward set, normals point at the centre and triangles wind
// counter-clockwise when seen from inside.
func Sphere(radius float32, slices, stacks int, inward bool) *Mesh {
	m := &Mesh{
		Vertices: make([]Vertex, 0, (stacks+1)*(slices+1)),
		Indices:  make([]uint32, 0, stacks*slices*6),
	}

	for i := 0; i <= stacks; i++ {
		v := float32(i) / float32(stacks)
		sinPhi, cosPhi := gomath.Sincos(gomath.Pi * float64(v))

		for j := 0; j <= slices; j++ {
			u := float32(j) / float32(slices)
			sinTheta, cosTheta := gomath.Sincos(2 * gomath.Pi * (float64(u) - 0.5))

			dir := mgl32.Vec3{
				float32(sinPhi * sinTheta),
				float32(cosPhi),
				float32(-sinPhi * cosTheta),
			}
			normal := dir
			if inward {
				normal = dir.Mul(-1)
			}

			m.Vertices = append(m.Vertices, Vertex{
				Position: dir.Mul(radius),
				Normal:   normal,
				UV:       mgl32.Vec2{u, v},
			})
		}
	}

	row := uint32(slices + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint32(i)*row + uint32(j) // top-left
			b := a + row                   // bottom-left
			c := a + 1                     // top-right
			d := b + 1                     // bottom-right

			if inward {
				m.Indices = append(m.Indices, a, b, c, c, b, d)
			} else {
				m.Indices = append(m.Indices, a, c, b, c, d, b)
			}
		}
	}

	return m
}

// Flatten packs vertices as interleaved position/normal/uv floats.
func (m *Mesh) Flatten() []float32 {
	out := make([]float32, 0, len(m.Vertices)*8)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.UV[0], v.UV[1],
		)
	}
	return out
}
