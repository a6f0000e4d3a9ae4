package components

import "github.com/yohamta/donburi"

// LayerData mirrors one map layer's metadata on a dedicated entity so
// systems can query layers without walking every tile.
type LayerData struct {
	Name      string
	Index     int // 0 = bottom
	Collider  bool
	Depth     float64
	TileCount int
}

var Layer = donburi.NewComponentType[LayerData]()
