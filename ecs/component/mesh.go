package component

import "github.com/go-gl/mathgl/mgl64"

// Mesh is the local-space extent of an entity's own geometry. Bounding boxes
// over a subtree are unions of the world-space meshes below it.
type Mesh struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

var MeshComponent = NewComponent[Mesh]()
