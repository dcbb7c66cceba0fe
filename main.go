package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/scenes"
	"github.com/automoto/kinetic-brawl/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(arena string, class config.FighterClass, forceClass bool) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewArenaScene(g, arena, class, forceClass)
	return g
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if c, ok := g.scene.(interface{ Close() }); ok {
			c.Close()
		}
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	arena := flag.String("arena", "training", "embedded arena to load")
	className := flag.String("class", "", "override the arena's fighter class (racer, soldier, raptor)")
	flag.BoolVar(&config.Debug.DrawHitZones, "hitzones", false, "draw melee hit zones")
	flag.BoolVar(&config.Debug.LogEffects, "log-effects", false, "log combat effects")
	flag.Parse()

	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	class, forced := config.Soldier, false
	if *className != "" {
		forced = true
		c, ok := config.ParseFighterClass(*className)
		if !ok {
			log.Fatalf("Unknown fighter class %q", *className)
		}
		class = c
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Kinetic Brawl")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowClosingHandled(true)

	// Initialize persistence; preferences are applied when the arena loads
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame(*arena, class, forced)); err != nil {
		log.Fatal(err)
	}
}
