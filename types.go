// Package fusemap reads Sprite Fusion map exports into a layered, queryable
// document model. Sprite Fusion is a free, web-based tilemap editor:
// https://www.spritefusion.com/
//
// The package has no dependencies on ebitengine, donburi, or resolv: pure
// data only. Decode turns the raw JSON export into a MapDocument; the scene
// subpackage flattens a document into positioned, depth-ordered tiles for a
// host renderer.
package fusemap

import "strconv"

// MapDocument is a complete Sprite Fusion export. It is built once by
// Decode and read-only afterwards.
type MapDocument struct {
	// TileSize is the pixel edge length of one grid cell.
	TileSize int
	// MapWidth and MapHeight are the declared grid extent in tiles. They
	// are informational: tile coordinates are not checked against them.
	MapWidth  int
	MapHeight int
	// Layers in document order. The first layer is the bottom of the
	// stack; layer order is the only source of z information.
	Layers []Layer
}

// TileCount returns the total number of tiles across all layers.
func (d *MapDocument) TileCount() int {
	n := 0
	for i := range d.Layers {
		n += len(d.Layers[i].Tiles)
	}
	return n
}

// Layer is a single map layer sharing one collision policy.
type Layer struct {
	Name string
	// Collider marks every tile on this layer as collidable. Collision
	// resolution itself is the host's job.
	Collider bool
	Tiles    []Tile
}

// Tile is one grid cell reference within a layer.
type Tile struct {
	// ID references the tile index in the spritesheet. Sprite Fusion
	// exports it as a string (e.g. "0", "17").
	ID string
	// X and Y are grid coordinates. They may be negative or exceed the
	// declared map extent; the editor allows both.
	X int
	Y int
	// Attributes holds the tile's custom key/value metadata. It is nil
	// when the export had no attributes object at all, and non-nil but
	// empty when the object was present and empty.
	Attributes Attributes
}

// Index returns the tile ID as a spritesheet index, 0 when the ID is not
// numeric.
func (t Tile) Index() int {
	n, err := strconv.Atoi(t.ID)
	if err != nil {
		return 0
	}
	return n
}
