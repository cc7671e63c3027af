package component

// Billboard turns the entity to face the camera every tick.
type Billboard struct{}

var BillboardComponent = NewComponent[Billboard]()
