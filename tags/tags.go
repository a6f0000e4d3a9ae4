package tags

import "github.com/yohamta/donburi"

var (
	Tile = donburi.NewTag().SetName("Tile")
	// Collider marks tiles spawned from a collider layer.
	Collider = donburi.NewTag().SetName("Collider")
)

// Resolv tags for physics collision
const (
	ResolvSolid = "solid"
)
