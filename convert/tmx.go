// Package convert imports Tiled TMX maps into the Sprite Fusion document
// model, so maps from either editor feed the same scene pipeline.
package convert

import (
	"fmt"
	"io/fs"
	"strconv"

	"github.com/automoto/fusemap"
	"github.com/lafriks/go-tiled"
)

// ColliderProperty is the layer bool property that marks a TMX tile layer
// as a collision layer.
const ColliderProperty = "collider"

// FromTMX loads a TMX file from fsys and converts every tile layer. The
// tile's tileset-local ID becomes the Sprite Fusion spritesheet index, and
// per-tile tileset properties become typed attributes. Object groups and
// image layers have no Sprite Fusion equivalent and are skipped.
func FromTMX(fsys fs.FS, tmxPath string) (*fusemap.MapDocument, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("convert: load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("convert: %s: tiles are %dx%d, Sprite Fusion maps need square tiles",
			tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	doc := &fusemap.MapDocument{
		TileSize:  levelMap.TileWidth,
		MapWidth:  levelMap.Width,
		MapHeight: levelMap.Height,
		Layers:    make([]fusemap.Layer, 0, len(levelMap.Layers)),
	}

	for _, layer := range levelMap.Layers {
		out := fusemap.Layer{
			Name:     layer.Name,
			Collider: layer.Properties.GetBool(ColliderProperty),
			Tiles:    []fusemap.Tile{},
		}
		for i, tile := range layer.Tiles {
			if tile.IsNil() {
				continue
			}
			converted := fusemap.Tile{
				ID: strconv.FormatUint(uint64(tile.ID), 10),
				X:  i % levelMap.Width,
				Y:  i / levelMap.Width,
			}
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				if attrs := attributesFrom(tilesetTile.Properties); len(attrs) > 0 {
					converted.Attributes = attrs
				}
			}
			out.Tiles = append(out.Tiles, converted)
		}
		doc.Layers = append(doc.Layers, out)
	}
	return doc, nil
}

// attributesFrom converts Tiled properties to typed attribute values.
// Properties whose type has no scalar mapping (color, file, object) are
// skipped rather than stringified.
func attributesFrom(props tiled.Properties) fusemap.Attributes {
	attrs := make(fusemap.Attributes, len(props))
	for _, p := range props {
		switch p.Type {
		case "bool":
			attrs[p.Name] = fusemap.BoolValue(p.Value == "true")
		case "int":
			if n, err := strconv.ParseInt(p.Value, 10, 64); err == nil {
				attrs[p.Name] = fusemap.IntValue(n)
			}
		case "float":
			if f, err := strconv.ParseFloat(p.Value, 64); err == nil {
				attrs[p.Name] = fusemap.FloatValue(f)
			}
		case "", "string":
			attrs[p.Name] = fusemap.StringValue(p.Value)
		}
	}
	return attrs
}
