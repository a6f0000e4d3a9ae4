package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/fusemap"
)

func testDocument() *fusemap.MapDocument {
	return &fusemap.MapDocument{
		TileSize:  16,
		MapWidth:  4,
		MapHeight: 4,
		Layers: []fusemap.Layer{
			{
				Name:     "Ground",
				Collider: true,
				Tiles: []fusemap.Tile{
					{ID: "0", X: 0, Y: 0},
					{ID: "1", X: 3, Y: 1},
				},
			},
			{
				Name:     "Props",
				Collider: false,
				Tiles: []fusemap.Tile{
					{ID: "7", X: 2, Y: 2, Attributes: fusemap.Attributes{
						"isSpawn": fusemap.BoolValue(true),
					}},
				},
			},
		},
	}
}

func TestBuild_OrderFollowsDocument(t *testing.T) {
	placed := Build(testDocument())
	require.Len(t, placed, 3)

	assert.Equal(t, "0", placed[0].ID)
	assert.Equal(t, "1", placed[1].ID)
	assert.Equal(t, "7", placed[2].ID)
	assert.Equal(t, []int{0, 0, 1}, []int{placed[0].LayerIndex, placed[1].LayerIndex, placed[2].LayerIndex})
}

func TestBuild_DepthIncreasesPerLayer(t *testing.T) {
	doc := &fusemap.MapDocument{
		TileSize: 16, MapWidth: 1, MapHeight: 1,
		Layers: []fusemap.Layer{
			{Name: "a", Tiles: []fusemap.Tile{{ID: "0"}}},
			{Name: "b", Tiles: []fusemap.Tile{{ID: "0"}}},
			{Name: "c", Tiles: []fusemap.Tile{{ID: "0"}}},
		},
	}

	placed := Build(doc)
	require.Len(t, placed, 3)
	for i := 1; i < len(placed); i++ {
		assert.Greater(t, placed[i].Depth, placed[i-1].Depth,
			"later layers must sit at strictly greater depth")
	}
	assert.Equal(t, 0.0, placed[0].Depth, "first layer is the bottom")
	assert.Equal(t, DepthStep, placed[1].Depth)
}

func TestBuild_WorldPositions(t *testing.T) {
	doc := &fusemap.MapDocument{
		TileSize: 16, MapWidth: 4, MapHeight: 4,
		Layers: []fusemap.Layer{{Name: "L", Tiles: []fusemap.Tile{
			{ID: "0", X: 0, Y: 0},
			{ID: "0", X: 3, Y: 1},
			{ID: "0", X: -2, Y: -1},
		}}},
	}

	placed := Build(doc)
	require.Len(t, placed, 3)
	assert.Equal(t, 0.0, placed[0].WorldX)
	assert.Equal(t, 0.0, placed[0].WorldY)
	assert.Equal(t, 48.0, placed[1].WorldX)
	assert.Equal(t, 16.0, placed[1].WorldY)
	assert.Equal(t, -32.0, placed[2].WorldX)
	assert.Equal(t, -16.0, placed[2].WorldY)
}

func TestBuild_WithTileSize(t *testing.T) {
	doc := testDocument()

	placed := Build(doc, WithTileSize(32))
	assert.Equal(t, 96.0, placed[1].WorldX)
	assert.Equal(t, 32.0, placed[1].WorldY)
	assert.Equal(t, 3, placed[1].GridX, "grid coordinates are untouched by the override")

	// Non-positive overrides fall back to the document size
	placed = Build(doc, WithTileSize(0))
	assert.Equal(t, 48.0, placed[1].WorldX)
	assert.Equal(t, 16, EffectiveTileSize(doc, WithTileSize(-5)))
	assert.Equal(t, 32, EffectiveTileSize(doc, WithTileSize(32)))
}

func TestBuild_CopiesLayerMetadata(t *testing.T) {
	placed := Build(testDocument())

	assert.Equal(t, "Ground", placed[0].LayerName)
	assert.True(t, placed[0].Collider)
	assert.Equal(t, "Props", placed[2].LayerName)
	assert.False(t, placed[2].Collider)

	b, ok := placed[2].Attributes.GetBool("isSpawn")
	assert.True(t, ok)
	assert.True(t, b)
}

func TestBuild_Idempotent(t *testing.T) {
	doc := testDocument()
	first := Build(doc)
	second := Build(doc)
	assert.Equal(t, first, second)
}

func TestBuild_DegenerateDocuments(t *testing.T) {
	empty := &fusemap.MapDocument{TileSize: 16, MapWidth: 4, MapHeight: 4, Layers: []fusemap.Layer{}}
	assert.Empty(t, Build(empty))

	emptyLayer := &fusemap.MapDocument{
		TileSize: 16, MapWidth: 4, MapHeight: 4,
		Layers: []fusemap.Layer{{Name: "L", Tiles: []fusemap.Tile{}}},
	}
	assert.Empty(t, Build(emptyLayer))

	// Duplicate coordinates keep both tiles
	dup := &fusemap.MapDocument{
		TileSize: 16, MapWidth: 4, MapHeight: 4,
		Layers: []fusemap.Layer{{Name: "L", Tiles: []fusemap.Tile{
			{ID: "0", X: 1, Y: 1},
			{ID: "1", X: 1, Y: 1},
		}}},
	}
	assert.Len(t, Build(dup), 2)
}

func TestPlacedTile_Index(t *testing.T) {
	assert.Equal(t, 7, PlacedTile{ID: "7"}.Index())
	assert.Equal(t, 0, PlacedTile{ID: "oak"}.Index())
}

func TestLayers(t *testing.T) {
	infos := Layers(testDocument())
	require.Len(t, infos, 2)

	assert.Equal(t, LayerInfo{Index: 0, Name: "Ground", Collider: true, Depth: 0, TileCount: 2}, infos[0])
	assert.Equal(t, LayerInfo{Index: 1, Name: "Props", Collider: false, Depth: DepthStep, TileCount: 1}, infos[1])
}
