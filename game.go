package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/piratemaker/assets"
	"github.com/milk9111/piratemaker/common"
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
	"github.com/milk9111/piratemaker/ecs/entity"
	"github.com/milk9111/piratemaker/ecs/system"
	"github.com/milk9111/piratemaker/levels"
	"github.com/milk9111/piratemaker/prefabs"
	"github.com/milk9111/piratemaker/render"
)

type Options struct {
	Debug bool
	Watch bool
	Seed  int64
	// Grid is the level to play. Nil plays the demo level.
	Grid *levels.Grid
}

type Game struct {
	opts    Options
	grid    *levels.Grid
	catalog *prefabs.Catalog

	level     *levels.Level
	scheduler *ecs.Scheduler
	renderer  *render.Renderer
	sound     system.SoundPlayer
	brains    *system.Brains
	watcher   *prefabs.Watcher

	paused  bool
	pauseUI *ebitenui.UI
	quit    bool
}

func NewGame(opts Options) (*Game, error) {
	grid := opts.Grid
	if grid == nil {
		var err error
		if grid, err = levels.ParseASCII(levels.Demo); err != nil {
			return nil, fmt.Errorf("game: demo level: %w", err)
		}
	}

	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	palette, err := assets.LoadPalette()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		opts:     opts,
		grid:     grid,
		catalog:  catalog,
		renderer: render.NewRenderer(palette),
		sound:    render.NewBeeper(assets.AudioContext(), palette),
		brains:   system.NewBrains(),
	}
	g.renderer.Debug = opts.Debug
	g.pauseUI = NewPauseUI(g)

	if err := g.restart(); err != nil {
		return nil, err
	}

	if opts.Watch {
		if g.watcher, err = prefabs.NewWatcher("prefabs", "prefabs/scripts"); err != nil {
			log.Printf("prefab watch disabled: %v", err)
		}
	}
	return g, nil
}

// restart rebuilds the level from the grid with the current catalog.
func (g *Game) restart() error {
	lvl, err := levels.Build(g.grid, g.catalog, g.opts.Seed)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	g.level = lvl
	g.scheduler = ecs.NewScheduler(system.NewGameplaySystems(ebitenKeys{}, g.sound, lvl.Factories(), g.brains)...)
	g.paused = false
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	g.reloadPrefabs()

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.scheduler.Update(g.level.World, g.level.Frame(1/float64(ebiten.TPS())))
	for _, evt := range g.level.World.Events().Drain() {
		if g.opts.Debug {
			log.Printf("event %s entity=%s data=%v", evt.Type, evt.Entity, evt.Data)
		}
	}
	return nil
}

// reloadPrefabs applies player tuning and enemy scripts live. Other prefab
// changes land in the catalog and take effect on the next restart.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if strings.EqualFold(filepath.Ext(name), ".tengo") {
				if err := g.brains.Reload(name); err != nil {
					log.Printf("script reload %s: %v", name, err)
					continue
				}
				log.Printf("script reloaded: %s", name)
				continue
			}
			catalog, err := prefabs.LoadCatalog()
			if err != nil {
				log.Printf("prefab reload %s: %v", name, err)
				continue
			}
			g.catalog = catalog
			if name == prefabs.PlayerFile {
				entity.ApplyPlayerTuning(g.level.World, g.level.Player, catalog.Player)
			}
			log.Printf("prefab reloaded: %s", name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("prefab watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.level.World, g.level.Geometry, screen)

	if g.opts.Debug {
		msg := fmt.Sprintf("FPS: %.2f  entities: %d", ebiten.ActualFPS(), len(ecs.Entities(g.level.World)))
		if c, ok := ecs.Get(g.level.World, g.level.Player, component.ColliderComponent.Kind()); ok {
			msg += fmt.Sprintf("  grounded: %v", c.Grounded)
		}
		ebitenutil.DebugPrintAt(screen, msg, 0, common.WindowHeight-16)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.WindowWidth, common.WindowHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.WindowWidth, common.WindowHeight
}
