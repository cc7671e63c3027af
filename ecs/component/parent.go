package component

// Parent links an entity into the scene tree. Entity is an ecs.Entity.
type Parent struct {
	Entity uint64
}

var ParentComponent = NewComponent[Parent]()
