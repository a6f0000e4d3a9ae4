// Package scene flattens a decoded map document into positioned,
// depth-ordered tile records ready for a host renderer or physics layer.
// Building is a pure transform: it never fails, holds no state, and may be
// called repeatedly or concurrently on the same document.
package scene

import (
	"strconv"

	"github.com/automoto/fusemap"
)

// DepthStep separates consecutive layers on the depth axis. Every tile on
// one layer shares a depth, and a tile on a later layer always carries a
// strictly greater depth than any tile on an earlier layer.
const DepthStep = 10.0

// PlacedTile is one tile positioned in world space with its owning layer's
// metadata attached. It is derived output: the source document is not
// referenced back and stays immutable.
type PlacedTile struct {
	LayerIndex int
	LayerName  string
	// Collider is copied from the owning layer; every tile on a collider
	// layer participates in collision.
	Collider bool

	GridX int
	GridY int
	// WorldX and WorldY place the tile's top-left corner, exactly
	// grid * tile size with no centering offset.
	WorldX float64
	WorldY float64
	Depth  float64

	ID         string
	Attributes fusemap.Attributes
}

// Index returns the tile ID as a spritesheet index, 0 when not numeric.
func (p PlacedTile) Index() int {
	n, err := strconv.Atoi(p.ID)
	if err != nil {
		return 0
	}
	return n
}

// LayerInfo is the per-layer metadata view of a document.
type LayerInfo struct {
	Index     int
	Name      string
	Collider  bool
	Depth     float64
	TileCount int
}

type options struct {
	tileSize int
}

// Option configures a build.
type Option func(*options)

// WithTileSize overrides the document's tile size, for hosts pairing the
// map with a differently sized tileset. Non-positive values are ignored.
func WithTileSize(px int) Option {
	return func(o *options) {
		o.tileSize = px
	}
}

// Build flattens doc into placed tiles. Output order is the document's
// double ordering (layers first, then tiles within each layer), never
// sorted by position. Degenerate documents (no layers, empty layers,
// duplicate or out-of-bounds coordinates) build without error.
func Build(doc *fusemap.MapDocument, opts ...Option) []PlacedTile {
	size := float64(EffectiveTileSize(doc, opts...))
	placed := make([]PlacedTile, 0, doc.TileCount())
	for li := range doc.Layers {
		layer := &doc.Layers[li]
		depth := float64(li) * DepthStep
		for _, tile := range layer.Tiles {
			placed = append(placed, PlacedTile{
				LayerIndex: li,
				LayerName:  layer.Name,
				Collider:   layer.Collider,
				GridX:      tile.X,
				GridY:      tile.Y,
				WorldX:     float64(tile.X) * size,
				WorldY:     float64(tile.Y) * size,
				Depth:      depth,
				ID:         tile.ID,
				Attributes: tile.Attributes,
			})
		}
	}
	return placed
}

// Layers returns the per-layer metadata in document order.
func Layers(doc *fusemap.MapDocument) []LayerInfo {
	infos := make([]LayerInfo, len(doc.Layers))
	for i := range doc.Layers {
		infos[i] = LayerInfo{
			Index:     i,
			Name:      doc.Layers[i].Name,
			Collider:  doc.Layers[i].Collider,
			Depth:     float64(i) * DepthStep,
			TileCount: len(doc.Layers[i].Tiles),
		}
	}
	return infos
}

// EffectiveTileSize resolves the tile size a build with the same options
// would use.
func EffectiveTileSize(doc *fusemap.MapDocument, opts ...Option) int {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.tileSize > 0 {
		return o.tileSize
	}
	return doc.TileSize
}
