package scenes

import (
	"image/color"
	"log"
	"math/rand/v2"
	"sync"

	"github.com/automoto/sadblob/assets"
	"github.com/automoto/sadblob/components"
	"github.com/automoto/sadblob/host"
	"github.com/automoto/sadblob/render"
	"github.com/automoto/sadblob/shared/gamemath"
	"github.com/automoto/sadblob/systems"
	"github.com/automoto/sadblob/systems/factory"
	"github.com/automoto/sadblob/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BookshopScene runs the blob in the rainy bookshop.
type BookshopScene struct {
	ecs      *ecs.ECS
	hud      *ui.HUD
	renderer *render.Renderer
	seed     int64
	once     sync.Once
}

// NewBookshopScene creates the scene. The seed drives both the noise field
// and the uniform random source.
func NewBookshopScene(seed int64) *BookshopScene {
	return &BookshopScene{seed: seed}
}

func (bs *BookshopScene) Update() {
	bs.once.Do(bs.configure)
	bs.ecs.Update()

	if entry, ok := components.Game.First(bs.ecs.World); ok {
		bs.hud.SetStolen(components.Game.Get(entry).Stolen)
	}
	bs.hud.Update()
}

func (bs *BookshopScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if bs.ecs == nil {
		return
	}
	bs.ecs.Draw(screen)
}

func (bs *BookshopScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: vignette disabled: %v", err)
	}

	hud, err := ui.NewHUD()
	if err != nil {
		log.Fatalf("Failed to build HUD: %v", err)
	}
	bs.hud = hud
	bs.renderer = render.NewRenderer()

	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(host.UpdateInput)
	e.AddSystem(system(systems.UpdateSettings))

	// Game systems wrapped with pause checks, in frame order
	for _, s := range systems.FrameOrder {
		e.AddSystem(system(systems.WithGameplayChecks(s)))
	}

	// Add renderers
	r := bs.renderer
	e.AddRenderer(render.LayerDefault, r.Capture)
	e.AddRenderer(render.LayerDefault, r.DrawBackground)
	e.AddRenderer(render.LayerDefault, r.DrawRain)
	e.AddRenderer(render.LayerDefault, r.DrawShelves)
	e.AddRenderer(render.LayerDefault, r.DrawNotes)
	e.AddRenderer(render.LayerDefault, r.DrawBlob)
	e.AddRenderer(render.LayerDefault, r.DrawTears)
	e.AddRenderer(render.LayerDefault, r.DrawVignette)
	e.AddRenderer(render.LayerDefault, func(_ *ecs.ECS, screen *ebiten.Image) { bs.hud.Draw(screen) })
	e.AddRenderer(render.LayerDefault, r.DrawPop)
	e.AddRenderer(render.LayerDefault, r.DrawDebug)
	e.AddRenderer(render.LayerDefault, r.DrawPause)

	bs.ecs = e

	noise := gamemath.NewSimplexNoise(bs.seed)
	random := rand.New(rand.NewPCG(uint64(bs.seed), uint64(bs.seed)^0x9e3779b97f4a7c15))
	factory.CreateWorld(e.World, noise, random)

	log.Printf("Bookshop ready (seed %d)", bs.seed)
}

// system adapts a world system to the ecs scheduler.
func system(s systems.System) ecs.System {
	return func(e *ecs.ECS) {
		s(e.World)
	}
}
