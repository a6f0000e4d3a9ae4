package fusemap

import (
	"encoding/json"
	"fmt"
)

type jsonDocument struct {
	TileSize  int         `json:"tileSize"`
	MapWidth  int         `json:"mapWidth"`
	MapHeight int         `json:"mapHeight"`
	Layers    []jsonLayer `json:"layers"`
}

type jsonLayer struct {
	Name     string     `json:"name"`
	Collider bool       `json:"collider"`
	Tiles    []jsonTile `json:"tiles"`
}

type jsonTile struct {
	ID string `json:"id"`
	X  int    `json:"x"`
	Y  int    `json:"y"`
	// Pointer so that a tile without attributes omits the object while a
	// present-but-empty attributes map still emits {}.
	Attributes *Attributes `json:"attributes,omitempty"`
}

// Encode writes a document back out in the Sprite Fusion export format.
// Decode(Encode(doc)) yields an equal document: attribute values keep their
// scalar kinds and tiles without attributes stay without an attributes
// object. The tmx2fusemap converter uses this to emit importable maps.
func Encode(doc *MapDocument) ([]byte, error) {
	out := jsonDocument{
		TileSize:  doc.TileSize,
		MapWidth:  doc.MapWidth,
		MapHeight: doc.MapHeight,
		Layers:    make([]jsonLayer, len(doc.Layers)),
	}
	for i, layer := range doc.Layers {
		tiles := make([]jsonTile, len(layer.Tiles))
		for j, tile := range layer.Tiles {
			tiles[j] = jsonTile{ID: tile.ID, X: tile.X, Y: tile.Y}
			if tile.Attributes != nil {
				attrs := tile.Attributes
				tiles[j].Attributes = &attrs
			}
		}
		out.Layers[i] = jsonLayer{Name: layer.Name, Collider: layer.Collider, Tiles: tiles}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("fusemap: encode: %w", err)
	}
	return data, nil
}
