package systems

import (
	"github.com/automoto/fusemap/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const (
	cameraSmoothing = 0.2
	zoomStep        = 1.1
	minZoom         = 0.25
	maxZoom         = 4.0
)

// NewUpdateCamera returns a system that pans the camera with the arrow keys
// (shift for a faster pan) and zooms with +/-. The position eases toward
// the target instead of snapping.
func NewUpdateCamera(panSpeed float64) ecs.System {
	return func(e *ecs.ECS) {
		cameraEntry, ok := components.Camera.First(e.World)
		if !ok {
			return
		}
		camera := components.Camera.Get(cameraEntry)

		speed := panSpeed
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			speed *= 3
		}
		if camera.Zoom > 0 {
			speed /= camera.Zoom
		}

		if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
			camera.Target.X -= speed
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
			camera.Target.X += speed
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
			camera.Target.Y -= speed
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
			camera.Target.Y += speed
		}

		if ebiten.IsKeyPressed(ebiten.KeyEqual) {
			camera.Zoom = clampZoom(camera.Zoom * zoomStep)
		}
		if ebiten.IsKeyPressed(ebiten.KeyMinus) {
			camera.Zoom = clampZoom(camera.Zoom / zoomStep)
		}

		camera.Position.X += (camera.Target.X - camera.Position.X) * cameraSmoothing
		camera.Position.Y += (camera.Target.Y - camera.Position.Y) * cameraSmoothing
	}
}

func clampZoom(z float64) float64 {
	if z < minZoom {
		return minZoom
	}
	if z > maxZoom {
		return maxZoom
	}
	return z
}
