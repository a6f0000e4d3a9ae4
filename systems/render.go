package systems

import (
	"image/color"
	"sort"

	"github.com/automoto/fusemap/assets"
	"github.com/automoto/fusemap/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Fallback quad colors when no tileset is configured, cycled per layer.
var layerPalette = []color.RGBA{
	{R: 0x3c, G: 0x78, B: 0xff, A: 0xff},
	{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff},
	{R: 0xff, G: 0x98, B: 0x00, A: 0xff},
	{R: 0xe9, G: 0x1e, B: 0x63, A: 0xff},
	{R: 0x9c, G: 0x27, B: 0xb0, A: 0xff},
	{R: 0x00, G: 0xbc, B: 0xd4, A: 0xff},
}

// NewDrawTiles returns a renderer that draws every tile entity through the
// camera transform, back to front by depth. With a nil tileset each tile
// becomes a flat quad colored by layer, so a map is viewable without its
// art. tileSize is the effective size used at build time.
func NewDrawTiles(tileset *assets.Tileset, tileSize int) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		cameraEntry, ok := components.Camera.First(e.World)
		if !ok {
			return // No camera yet
		}
		camera := components.Camera.Get(cameraEntry)
		width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

		// Safety check for zero zoom
		zoom := camera.Zoom
		if zoom == 0 {
			zoom = 1.0
		}

		alpha := fadeAlpha(e)

		var tiles []*components.TileData
		components.Tile.Each(e.World, func(entry *donburi.Entry) {
			tiles = append(tiles, components.Tile.Get(entry))
		})
		// Entities come back grouped by archetype, not draw order. A
		// stable sort on depth restores the layer stacking and keeps
		// within-layer order intact.
		sort.SliceStable(tiles, func(i, j int) bool {
			return tiles[i].Depth < tiles[j].Depth
		})

		size := float64(tileSize) * zoom
		padding := size

		// The tileset's native frame size may differ from the build
		// tile size when an override is in play.
		texScale := zoom
		if tileset != nil && tileset.TileSize > 0 {
			texScale = float64(tileSize) / float64(tileset.TileSize) * zoom
		}

		for _, tile := range tiles {
			// Screen position of the tile's top-left corner
			sx := (tile.WorldX-camera.Position.X)*zoom + float64(width)/2
			sy := (tile.WorldY-camera.Position.Y)*zoom + float64(height)/2

			// Viewport culling
			if sx+size < -padding || sx > float64(width)+padding ||
				sy+size < -padding || sy > float64(height)+padding {
				continue
			}

			if tileset != nil {
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Scale(texScale, texScale)
				op.GeoM.Translate(sx, sy)
				op.ColorScale.ScaleAlpha(alpha)
				screen.DrawImage(tileset.Frame(tile.Index()), op)
			} else {
				c := layerPalette[tile.LayerIndex%len(layerPalette)]
				c.A = uint8(float32(c.A) * alpha)
				vector.DrawFilledRect(screen,
					float32(sx), float32(sy),
					float32(size), float32(size),
					c, false)
			}
		}
	}
}

func fadeAlpha(e *ecs.ECS) float32 {
	entry, ok := components.Fade.First(e.World)
	if !ok {
		return 1
	}
	return components.Fade.Get(entry).Alpha
}
