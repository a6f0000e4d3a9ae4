package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData drives the fade-in that runs when a map is spawned or reloaded.
// Alpha is the current multiplier applied to tile colors; Tween is nil once
// the fade has finished.
type FadeData struct {
	Tween *gween.Tween
	Alpha float32
}

var Fade = donburi.NewComponentType[FadeData]()
