package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/piratemaker/assets"
	"github.com/milk9111/piratemaker/common"
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/system"
	"github.com/milk9111/piratemaker/editor"
	"github.com/milk9111/piratemaker/levels"
	"github.com/milk9111/piratemaker/prefabs"
	"github.com/milk9111/piratemaker/render"
)

// cellSheets names the sheet previewing each selection index.
var cellSheets = map[int]string{
	levels.CellTerrain:    "terrain",
	levels.CellWater:      "water",
	levels.CellGold:       "coin_gold",
	levels.CellSilver:     "coin_silver",
	levels.CellDiamond:    "coin_diamond",
	levels.CellSpikes:     "spikes",
	levels.CellTooth:      "tooth",
	levels.CellShellLeft:  "shell",
	levels.CellShellRight: "shell",
}

func sheetForCell(v int) string {
	if s, ok := cellSheets[v]; ok {
		return s
	}
	if v >= levels.CellPalmBG {
		return "palm_bg"
	}
	return "palm_fg"
}

type EditorGame struct {
	canvas  *editor.Canvas
	ui      *EditorUI
	tool    editor.Tool
	catalog *prefabs.Catalog
	seed    int64

	sheets   *render.Sheets
	renderer *render.Renderer
	sound    system.SoundPlayer

	level     *levels.Level
	scheduler *ecs.Scheduler
	painting  bool
	lastErr   string
}

func NewEditorGame(grid *levels.Grid, seed int64) (*EditorGame, error) {
	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		return nil, err
	}
	palette, err := assets.LoadPalette()
	if err != nil {
		return nil, err
	}

	g := &EditorGame{
		canvas:   editor.NewCanvas(grid),
		catalog:  catalog,
		seed:     seed,
		sheets:   render.NewSheets(palette),
		renderer: render.NewRenderer(palette),
		sound:    render.NewBeeper(assets.AudioContext(), palette),
	}
	g.canvas.Origin = cp.Vector{X: 32, Y: toolbarHeight + 32}
	g.ui = BuildEditorUI(func(tool editor.Tool) { g.tool = tool }, editor.ToolBrush)
	return g, nil
}

func (g *EditorGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.togglePlay()
	}
	if g.canvas.Playing() {
		g.scheduler.Update(g.level.World, g.level.Frame(1/float64(ebiten.TPS())))
		return nil
	}

	g.ui.UI.Update()
	g.handleKeys()
	g.handleMouse()
	g.ui.SetStatus(g.status())
	return nil
}

func (g *EditorGame) togglePlay() {
	if g.canvas.Playing() {
		g.canvas.TogglePlay()
		g.level, g.scheduler = nil, nil
		return
	}
	lvl, err := levels.Build(g.canvas.Grid.Clone(), g.catalog, g.seed)
	if err != nil {
		g.lastErr = err.Error()
		log.Printf("play: %v", err)
		return
	}
	g.lastErr = ""
	g.level = lvl
	g.scheduler = ecs.NewScheduler(system.NewGameplaySystems(editorKeys{}, g.sound, lvl.Factories(), nil)...)
	g.canvas.TogglePlay()
}

func (g *EditorGame) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.canvas.CycleSelection(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.canvas.CycleSelection(-1)
	}
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.canvas.Undo()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := copyText(g.canvas.CopyASCII()); err != nil {
			g.lastErr = "copy: " + err.Error()
		}
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.paste()
	}
	for i, k := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4} {
		if inpututil.IsKeyJustPressed(k) {
			g.tool = editor.Tool(i)
			g.ui.ToolBar.SetTool(g.tool)
		}
	}
}

// paste swaps the grid for ASCII text from the clipboard. The old grid
// stays on the undo stack.
func (g *EditorGame) paste() {
	text, err := pasteText()
	if err == nil {
		err = g.canvas.PasteASCII(text)
	}
	if err != nil {
		g.lastErr = "paste: " + err.Error()
		return
	}
	g.lastErr = ""
}

func (g *EditorGame) handleMouse() {
	mx, my := ebiten.CursorPosition()
	mouse := cp.Vector{X: float64(mx), Y: float64(my)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		g.canvas.BeginPan(mouse)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		g.canvas.Pan(mouse)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle) {
		g.canvas.EndPan()
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.canvas.ZoomAt(mouse, wy)
	}

	inCanvas := my > toolbarHeight
	tool := g.tool
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		tool, pressed = editor.ToolErase, true
	}
	if !pressed {
		g.painting = false
		return
	}
	if !inCanvas {
		return
	}
	if !g.painting {
		g.painting = true
		g.canvas.BeginStroke()
	} else if tool == editor.ToolFill {
		return
	}
	if err := g.canvas.Apply(tool, mouse); err != nil {
		g.lastErr = err.Error()
	}
}

func (g *EditorGame) status() string {
	mx, my := ebiten.CursorPosition()
	cell := g.canvas.CellAt(cp.Vector{X: float64(mx), Y: float64(my)})
	s := fmt.Sprintf("tool %s | selection %d (%s) | cell %d,%d | zoom %.2f | enter: play | ctrl+c/v: copy/paste level",
		g.tool, g.canvas.Selection, sheetForCell(g.canvas.Selection), cell.X, cell.Y, g.canvas.Zoom)
	if g.lastErr != "" {
		s += " | " + g.lastErr
	}
	return s
}

func (g *EditorGame) Draw(screen *ebiten.Image) {
	if g.canvas.Playing() {
		g.renderer.Draw(g.level.World, g.level.Geometry, screen)
		ebitenutil.DebugPrintAt(screen, "enter: back to editor", 8, common.WindowHeight-20)
		return
	}

	screen.Fill(color.RGBA{30, 30, 36, 255})
	g.drawCells(screen)
	g.drawGrid(screen)
	g.ui.UI.Draw(screen)
}

func (g *EditorGame) drawCells(screen *ebiten.Image) {
	draw := func(x, y int, sheet string) {
		img, err := g.sheets.Frame(sheet, "", 0, common.TileSize, common.TileSize)
		if err != nil {
			return
		}
		pos := g.canvas.WorldToScreen(cp.Vector{X: float64(x * common.TileSize), Y: float64(y * common.TileSize)})
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(g.canvas.Zoom, g.canvas.Zoom)
		op.GeoM.Translate(pos.X, pos.Y)
		screen.DrawImage(img, op)
	}
	for _, c := range g.canvas.Grid.Cells() {
		v, _ := g.canvas.Grid.At(c)
		draw(c.X, c.Y, sheetForCell(v))
	}
	if p, ok := g.canvas.Grid.Player(); ok {
		draw(p.X, p.Y, "player")
	}
}

func (g *EditorGame) drawGrid(screen *ebiten.Image) {
	grid := g.canvas.Grid
	lineColor := color.RGBA{90, 90, 110, 255}
	topLeft := g.canvas.WorldToScreen(cp.Vector{})
	bottomRight := g.canvas.WorldToScreen(cp.Vector{
		X: float64(grid.Width * common.TileSize),
		Y: float64(grid.Height * common.TileSize),
	})
	xs, ys := g.canvas.GridLines(common.WindowWidth, common.WindowHeight)
	for _, x := range xs {
		if x < topLeft.X-0.5 || x > bottomRight.X+0.5 {
			continue
		}
		vector.StrokeLine(screen, float32(x), float32(topLeft.Y), float32(x), float32(bottomRight.Y), 1, lineColor, false)
	}
	for _, y := range ys {
		if y < topLeft.Y-0.5 || y > bottomRight.Y+0.5 {
			continue
		}
		vector.StrokeLine(screen, float32(topLeft.X), float32(y), float32(bottomRight.X), float32(y), 1, lineColor, false)
	}
	// origin marker
	vector.DrawFilledCircle(screen, float32(topLeft.X), float32(topLeft.Y), 4, color.RGBA{255, 80, 80, 255}, false)
}

func (g *EditorGame) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.WindowWidth, common.WindowHeight
}

func (g *EditorGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.WindowWidth, common.WindowHeight
}

func main() {
	cols := flag.Int("w", 40, "level width in tiles")
	rows := flag.Int("h", 11, "level height in tiles")
	demo := flag.Bool("demo", false, "start from the demo level")
	seed := flag.Int64("seed", 1, "seed for enemy directions and cloud placement")
	flag.Parse()

	grid := levels.NewGrid(*cols, *rows)
	if *demo {
		var err error
		if grid, err = levels.ParseASCII(levels.Demo); err != nil {
			log.Fatal(err)
		}
	}

	game, err := NewEditorGame(grid, *seed)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.WindowWidth, common.WindowHeight)
	ebiten.SetWindowTitle("piratemaker editor")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
