// Command fusemapview renders a Sprite Fusion map export in a window. It
// is the reference host for the fusemap pipeline: decode, build, spawn,
// draw. The map file is watched and hot-reloaded on save.
//
// Arrow keys pan (shift pans faster), +/- zooms. The camera position is
// persisted per map.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"sync"

	"github.com/automoto/fusemap"
	"github.com/automoto/fusemap/assets"
	"github.com/automoto/fusemap/components"
	cfg "github.com/automoto/fusemap/config"
	"github.com/automoto/fusemap/scene"
	"github.com/automoto/fusemap/spawn"
	"github.com/automoto/fusemap/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

const cameraSaveInterval = 120 // ticks

type Game struct {
	conf cfg.ViewerConfig
	doc  *fusemap.MapDocument

	ecs     *ecs.ECS
	tileset *assets.Tileset
	watcher *mapWatcher
	once    sync.Once

	status   string
	saveTick int
}

func main() {
	configPath := flag.String("config", "fusemapview.yaml", "viewer config file")
	mapPath := flag.String("map", "", "map JSON path (overrides the config)")
	flag.Parse()

	conf, err := cfg.LoadViewer(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *mapPath != "" {
		conf.Map = *mapPath
	}
	if conf.Map == "" {
		log.Fatal("no map configured: pass -map or set map: in the config file")
	}

	doc, err := loadMap(conf.Map)
	if err != nil {
		log.Fatal(err)
	}

	_ = initPersistence()

	ebiten.SetWindowSize(conf.Width, conf.Height)
	ebiten.SetWindowTitle("fusemapview: " + conf.Map)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&Game{conf: conf, doc: doc}); err != nil {
		log.Fatal(err)
	}
}

func loadMap(path string) (*fusemap.MapDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map %s: %w", path, err)
	}
	return fusemap.Decode(data)
}

func (g *Game) options() []scene.Option {
	if g.conf.TileSize > 0 {
		return []scene.Option{scene.WithTileSize(g.conf.TileSize)}
	}
	return nil
}

func (g *Game) configure() {
	if g.conf.Tileset != "" {
		ts, err := assets.LoadTileset(os.DirFS("."), g.conf.Tileset, scene.EffectiveTileSize(g.doc, g.options()...))
		if err != nil {
			log.Printf("Warning: %v, falling back to colored quads", err)
		} else {
			g.tileset = ts
		}
	}

	tileSize := scene.EffectiveTileSize(g.doc, g.options()...)

	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(systems.NewUpdateCamera(g.conf.PanSpeed))
	e.AddSystem(systems.UpdateFade)
	e.AddRenderer(cfg.Default, systems.NewDrawTiles(g.tileset, tileSize))
	g.ecs = e

	spawn.CreateSpaceForMap(e, g.doc, g.options()...)
	cameraEntry := spawn.CreateCamera(e)
	spawn.Map(e, g.doc, g.options()...)
	systems.StartFadeIn(e)

	camera := components.Camera.Get(cameraEntry)
	if saved := loadCamera(g.conf.Map); saved != nil {
		camera.Position.X, camera.Position.Y = saved.X, saved.Y
		camera.Target = camera.Position
		if saved.Zoom > 0 {
			camera.Zoom = saved.Zoom
		}
	} else {
		// Start centered on the declared map extent
		camera.Target.X = float64(g.doc.MapWidth*tileSize) / 2
		camera.Target.Y = float64(g.doc.MapHeight*tileSize) / 2
		camera.Position = camera.Target
	}

	watcher, err := newMapWatcher(g.conf.Map)
	if err != nil {
		log.Printf("Warning: hot reload disabled: %v", err)
	} else {
		g.watcher = watcher
	}
}

func (g *Game) Update() error {
	g.once.Do(g.configure)

	if g.watcher != nil {
		select {
		case <-g.watcher.Events:
			g.reload()
		case err := <-g.watcher.Errors:
			log.Printf("Warning: map watcher: %v", err)
		default:
		}
	}

	g.ecs.Update()
	g.persistCamera()
	return nil
}

// reload re-decodes the map file and respawns the scene. A bad save keeps
// the previous scene on screen and reports the decode error in the HUD.
func (g *Game) reload() {
	doc, err := loadMap(g.conf.Map)
	if err != nil {
		g.status = err.Error()
		log.Printf("reload failed: %v", err)
		return
	}
	g.doc = doc
	g.status = ""

	spawn.Clear(g.ecs)
	spawn.Map(g.ecs, g.doc, g.options()...)
	systems.StartFadeIn(g.ecs)
	log.Printf("reloaded %s", g.conf.Map)
}

func (g *Game) persistCamera() {
	g.saveTick++
	if g.saveTick < cameraSaveInterval {
		return
	}
	g.saveTick = 0
	if cameraEntry, ok := components.Camera.First(g.ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		saveCamera(g.conf.Map, savedCamera{
			X:    camera.Position.X,
			Y:    camera.Position.Y,
			Zoom: camera.Zoom,
		})
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if g.ecs == nil {
		return
	}
	g.ecs.Draw(screen)

	face := basicfont.Face7x13
	summary := fmt.Sprintf("%s  |  %d layers, %d tiles", g.conf.Map, len(g.doc.Layers), g.doc.TileCount())
	text.Draw(screen, summary, face, 8, 16, color.White)
	if g.status != "" {
		text.Draw(screen, g.status, face, 8, 32, color.RGBA{R: 0xff, G: 0x50, B: 0x50, A: 0xff})
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.conf.Width, g.conf.Height
}
