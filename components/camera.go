package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	// Target is where the camera is heading; Position eases toward it.
	Target math.Vec2
	Zoom   float64
}

var Camera = donburi.NewComponentType[CameraData]()
