package archetypes

import (
	"github.com/automoto/fusemap/components"
	cfg "github.com/automoto/fusemap/config"
	"github.com/automoto/fusemap/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Tile = newArchetype(
		tags.Tile,
		components.Tile,
	)
	ColliderTile = newArchetype(
		tags.Tile,
		tags.Collider,
		components.Tile,
		components.Object,
	)
	Layer = newArchetype(
		components.Layer,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Fade = newArchetype(
		components.Fade,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
