package components

import (
	"github.com/automoto/fusemap/scene"
	"github.com/yohamta/donburi"
)

type TileData struct {
	scene.PlacedTile
}

var Tile = donburi.NewComponentType[TileData]()
