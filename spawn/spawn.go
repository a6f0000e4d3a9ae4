// Package spawn materializes a decoded map into donburi entities: one entity
// per layer, one per tile, with resolv collision objects attached to tiles
// on collider layers. It is the glue a game scene calls once on load (or
// again after a hot reload) and has no rendering dependency.
package spawn

import (
	"log"

	"github.com/automoto/fusemap"
	"github.com/automoto/fusemap/archetypes"
	"github.com/automoto/fusemap/components"
	"github.com/automoto/fusemap/scene"
	"github.com/automoto/fusemap/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the resolv space entity collision objects get added
// to. Width and height are in pixels.
func CreateSpace(e *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(e)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateSpaceForMap sizes the space from the document's declared extent,
// one resolv cell per grid cell.
func CreateSpaceForMap(e *ecs.ECS, doc *fusemap.MapDocument, opts ...scene.Option) *donburi.Entry {
	size := scene.EffectiveTileSize(doc, opts...)
	return CreateSpace(e, doc.MapWidth*size, doc.MapHeight*size, size, size)
}

func CreateCamera(e *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(e)
	components.Camera.Set(camera, &components.CameraData{Zoom: 1})
	return camera
}

// Map builds the placed tiles for doc and spawns the layer and tile
// entities. Tiles on collider layers get a solid resolv object, added to
// the space when one exists. Tile entities are created in build order, so
// iterating them yields the document's layer-then-tile ordering.
func Map(e *ecs.ECS, doc *fusemap.MapDocument, opts ...scene.Option) []*donburi.Entry {
	for _, info := range scene.Layers(doc) {
		layer := archetypes.Layer.Spawn(e)
		components.Layer.Set(layer, &components.LayerData{
			Name:      info.Name,
			Index:     info.Index,
			Collider:  info.Collider,
			Depth:     info.Depth,
			TileCount: info.TileCount,
		})
	}

	placed := scene.Build(doc, opts...)
	tileSize := float64(scene.EffectiveTileSize(doc, opts...))
	spaceEntry, hasSpace := components.Space.First(e.World)

	entries := make([]*donburi.Entry, 0, len(placed))
	withAttrs := 0
	for _, pt := range placed {
		var entry *donburi.Entry
		if pt.Collider {
			entry = archetypes.ColliderTile.Spawn(e)
			obj := resolv.NewObject(pt.WorldX, pt.WorldY, tileSize, tileSize, tags.ResolvSolid)
			obj.SetShape(resolv.NewRectangle(0, 0, tileSize, tileSize))
			obj.Data = entry // Link for O(1) lookup
			components.Object.SetValue(entry, components.ObjectData{Object: obj})
			if hasSpace {
				components.Space.Get(spaceEntry).Add(obj)
			}
		} else {
			entry = archetypes.Tile.Spawn(e)
		}
		components.Tile.SetValue(entry, components.TileData{PlacedTile: pt})
		if len(pt.Attributes) > 0 {
			withAttrs++
		}
		entries = append(entries, entry)
	}

	log.Printf("spawned map: %d layers, %d tiles, %d with attributes",
		len(doc.Layers), len(placed), withAttrs)
	return entries
}

// Clear removes every layer and tile entity spawned from a map, detaching
// collision objects from their space first. The space and camera entities
// survive, so a hot reload can respawn into the same world.
func Clear(e *ecs.ECS) {
	var doomed []*donburi.Entry
	tags.Tile.Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	})
	components.Layer.Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	})
	for _, entry := range doomed {
		if entry.HasComponent(components.Object) {
			obj := components.Object.Get(entry)
			if obj.Object != nil && obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		entry.Remove()
	}
}
