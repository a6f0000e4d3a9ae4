package systems

import (
	"github.com/automoto/fusemap/archetypes"
	"github.com/automoto/fusemap/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

const fadeInSeconds = 0.4

// StartFadeIn restarts the fade-in tween, called after a map spawn or
// reload so tiles ease in instead of popping.
func StartFadeIn(e *ecs.ECS) {
	entry, ok := components.Fade.First(e.World)
	if !ok {
		entry = archetypes.Fade.Spawn(e)
	}
	components.Fade.Set(entry, &components.FadeData{
		Tween: gween.New(0, 1, fadeInSeconds, ease.OutQuad),
		Alpha: 0,
	})
}

// UpdateFade advances the running fade tween at the fixed 60 TPS step.
func UpdateFade(e *ecs.ECS) {
	entry, ok := components.Fade.First(e.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(entry)
	if fade.Tween == nil {
		return
	}
	alpha, finished := fade.Tween.Update(1.0 / 60.0)
	fade.Alpha = alpha
	if finished {
		fade.Tween = nil
	}
}
