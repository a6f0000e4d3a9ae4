package fusemap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Raw mirror types. Required fields are pointers so a missing key is
// distinguishable from a zero value, and nested collections stay as
// json.RawMessage so schema errors can name the exact layer and tile.

type rawDocument struct {
	TileSize  *int              `json:"tileSize"`
	MapWidth  *int              `json:"mapWidth"`
	MapHeight *int              `json:"mapHeight"`
	Layers    []json.RawMessage `json:"layers"`
}

type rawLayer struct {
	Name     *string           `json:"name"`
	Collider *bool             `json:"collider"`
	Tiles    []json.RawMessage `json:"tiles"`
}

type rawTile struct {
	ID         *string                    `json:"id"`
	X          *int                       `json:"x"`
	Y          *int                       `json:"y"`
	Attributes map[string]json.RawMessage `json:"attributes"`
}

// Decode parses a Sprite Fusion JSON export into a MapDocument.
//
// Unknown fields anywhere in the document are ignored, so exports from
// newer editor versions keep loading. The decode is all-or-nothing: a
// missing or mistyped required field fails with a *SchemaError naming the
// field, and input that is not JSON fails with a *MalformedError. The same
// bytes always produce the same document or the same error.
func Decode(data []byte) (*MapDocument, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, convertJSONError(err, "")
	}

	if err := requirePositive("tileSize", raw.TileSize); err != nil {
		return nil, err
	}
	if err := requirePositive("mapWidth", raw.MapWidth); err != nil {
		return nil, err
	}
	if err := requirePositive("mapHeight", raw.MapHeight); err != nil {
		return nil, err
	}
	if raw.Layers == nil {
		return nil, &SchemaError{Path: "layers", Reason: "missing"}
	}

	doc := &MapDocument{
		TileSize:  *raw.TileSize,
		MapWidth:  *raw.MapWidth,
		MapHeight: *raw.MapHeight,
		Layers:    make([]Layer, 0, len(raw.Layers)),
	}
	for i, rawMsg := range raw.Layers {
		layer, err := decodeLayer(rawMsg, fmt.Sprintf("layers[%d]", i))
		if err != nil {
			return nil, err
		}
		doc.Layers = append(doc.Layers, layer)
	}
	return doc, nil
}

func decodeLayer(data json.RawMessage, path string) (Layer, error) {
	var raw rawLayer
	if err := json.Unmarshal(data, &raw); err != nil {
		return Layer{}, convertJSONError(err, path)
	}
	if raw.Name == nil {
		return Layer{}, &SchemaError{Path: path + ".name", Reason: "missing"}
	}
	if raw.Collider == nil {
		return Layer{}, &SchemaError{Path: path + ".collider", Reason: "missing"}
	}
	if raw.Tiles == nil {
		return Layer{}, &SchemaError{Path: path + ".tiles", Reason: "missing"}
	}

	layer := Layer{
		Name:     *raw.Name,
		Collider: *raw.Collider,
		Tiles:    make([]Tile, 0, len(raw.Tiles)),
	}
	for j, rawMsg := range raw.Tiles {
		tile, err := decodeTile(rawMsg, fmt.Sprintf("%s.tiles[%d]", path, j))
		if err != nil {
			return Layer{}, err
		}
		layer.Tiles = append(layer.Tiles, tile)
	}
	return layer, nil
}

func decodeTile(data json.RawMessage, path string) (Tile, error) {
	var raw rawTile
	if err := json.Unmarshal(data, &raw); err != nil {
		return Tile{}, convertJSONError(err, path)
	}
	if raw.ID == nil {
		return Tile{}, &SchemaError{Path: path + ".id", Reason: "missing"}
	}
	if raw.X == nil {
		return Tile{}, &SchemaError{Path: path + ".x", Reason: "missing"}
	}
	if raw.Y == nil {
		return Tile{}, &SchemaError{Path: path + ".y", Reason: "missing"}
	}

	tile := Tile{ID: *raw.ID, X: *raw.X, Y: *raw.Y}
	if raw.Attributes != nil {
		attrs := make(Attributes, len(raw.Attributes))
		// Check keys in sorted order so the reported field is stable
		// across runs.
		keys := make([]string, 0, len(raw.Attributes))
		for key := range raw.Attributes {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			value, ok := decodeValue(raw.Attributes[key])
			if !ok {
				return Tile{}, &SchemaError{
					Path:   path + ".attributes." + key,
					Reason: "attribute values must be scalar",
				}
			}
			attrs[key] = value
		}
		tile.Attributes = attrs
	}
	return tile, nil
}

// decodeValue parses one attribute scalar. Integers and floats stay
// distinct: a literal without a fractional or exponent part is an int64.
func decodeValue(data json.RawMessage) (Value, bool) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Value{}, false
	}
	switch t := v.(type) {
	case bool:
		return BoolValue(t), true
	case string:
		return StringValue(t), true
	case json.Number:
		if !strings.ContainsAny(t.String(), ".eE") {
			if n, err := t.Int64(); err == nil {
				return IntValue(n), true
			}
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, false
		}
		return FloatValue(f), true
	}
	// null, arrays and objects have no scalar mapping
	return Value{}, false
}

func requirePositive(name string, v *int) error {
	if v == nil {
		return &SchemaError{Path: name, Reason: "missing"}
	}
	if *v <= 0 {
		return &SchemaError{Path: name, Reason: "must be positive"}
	}
	return nil
}

// convertJSONError maps encoding/json failures onto the two decode error
// kinds: type mismatches become schema errors with a field path, anything
// else means the buffer was not valid JSON.
func convertJSONError(err error, path string) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		p := typeErr.Field
		switch {
		case p == "" && path == "":
			p = "(document)"
		case p == "":
			p = path
		case path != "":
			p = path + "." + p
		}
		return &SchemaError{Path: p, Reason: "unexpected " + typeErr.Value}
	}
	return &MalformedError{Err: err}
}
