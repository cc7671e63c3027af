package component

// CameraScript drives the camera transform from a tengo script.
type CameraScript struct {
	Path string
}

var CameraScriptComponent = NewComponent[CameraScript]()
