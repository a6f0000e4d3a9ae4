package spawn

import (
	"testing"

	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/fusemap"
	"github.com/automoto/fusemap/components"
	"github.com/automoto/fusemap/scene"
	"github.com/automoto/fusemap/tags"
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
					{ID: "1", X: 1, Y: 0},
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

func newECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func TestMap_SpawnsLayersAndTiles(t *testing.T) {
	e := newECS()

	entries := Map(e, testDocument())
	require.Len(t, entries, 3)

	layers := 0
	components.Layer.Each(e.World, func(entry *donburi.Entry) {
		layers++
	})
	assert.Equal(t, 2, layers)

	var placed []scene.PlacedTile
	for _, entry := range entries {
		placed = append(placed, components.Tile.Get(entry).PlacedTile)
	}
	// Entities carry the build order
	assert.Equal(t, "0", placed[0].ID)
	assert.Equal(t, "1", placed[1].ID)
	assert.Equal(t, "7", placed[2].ID)
	assert.Equal(t, 16.0, placed[1].WorldX)
	assert.Less(t, placed[0].Depth, placed[2].Depth)
}

func TestMap_ColliderTilesGetObjects(t *testing.T) {
	e := newECS()
	space := CreateSpaceForMap(e, testDocument())

	entries := Map(e, testDocument())

	solids := 0
	for _, entry := range entries {
		pt := components.Tile.Get(entry).PlacedTile
		if pt.Collider {
			require.True(t, entry.HasComponent(components.Object))
			obj := components.Object.Get(entry)
			require.NotNil(t, obj.Object)
			assert.True(t, obj.HasTags(tags.ResolvSolid))
			assert.Same(t, entry, obj.Data, "object must link back to its entity")
			assert.Same(t, components.Space.Get(space), obj.Space)
			solids++
		} else {
			assert.False(t, entry.HasComponent(components.Object))
		}
	}
	assert.Equal(t, 2, solids)
}

func TestMap_WithoutSpace(t *testing.T) {
	e := newECS()

	entries := Map(e, testDocument())
	for _, entry := range entries {
		if entry.HasComponent(components.Object) {
			assert.Nil(t, components.Object.Get(entry).Space,
				"no space entity means objects stay unattached")
		}
	}
}

func TestMap_TileSizeOverride(t *testing.T) {
	e := newECS()

	entries := Map(e, testDocument(), scene.WithTileSize(32))
	pt := components.Tile.Get(entries[1]).PlacedTile
	assert.Equal(t, 32.0, pt.WorldX)
}

func TestClear_RemovesMapEntitiesOnly(t *testing.T) {
	e := newECS()
	space := CreateSpaceForMap(e, testDocument())
	camera := CreateCamera(e)
	Map(e, testDocument())

	Clear(e)

	remaining := 0
	tags.Tile.Each(e.World, func(entry *donburi.Entry) {
		remaining++
	})
	components.Layer.Each(e.World, func(entry *donburi.Entry) {
		remaining++
	})
	assert.Zero(t, remaining)

	assert.True(t, space.Valid(), "space survives a clear")
	assert.True(t, camera.Valid(), "camera survives a clear")
	assert.Empty(t, components.Space.Get(space).Objects(),
		"collision objects must leave the space with their tiles")

	// The world accepts a respawn after clearing
	entries := Map(e, testDocument())
	assert.Len(t, entries, 3)
}

func TestCreateSpaceForMap(t *testing.T) {
	e := newECS()
	entry := CreateSpaceForMap(e, testDocument())

	space := components.Space.Get(entry)
	require.NotNil(t, space)
	assert.Empty(t, space.Objects())

	obj := resolv.NewObject(0, 0, 16, 16, tags.ResolvSolid)
	space.Add(obj)
	assert.Len(t, space.Objects(), 1)
}

func TestCreateCamera(t *testing.T) {
	e := newECS()
	entry := CreateCamera(e)

	cam := components.Camera.Get(entry)
	require.NotNil(t, cam)
	assert.Equal(t, 1.0, cam.Zoom)
}
