package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/kinetic-brawl/assets"
	"github.com/automoto/kinetic-brawl/components"
	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/shared/gamemath"
	"github.com/automoto/kinetic-brawl/systems"
	"github.com/automoto/kinetic-brawl/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// ArenaScene hosts the combat core: it polls input, steps the ECS at the
// ebiten tick rate and draws the debug overlay.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	arenaName    string
	class        cfg.FighterClass
	forceClass   bool
	fighter      *donburi.Entry
	camera       gamemath.Vec
	paused       bool
	once         sync.Once
}

// NewArenaScene creates a scene for the named embedded arena. When forceClass
// is set the fighter ignores the class named by the layout.
func NewArenaScene(sc SceneChanger, arenaName string, class cfg.FighterClass, forceClass bool) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, arenaName: arenaName, class: class, forceClass: forceClass}
}

func (as *ArenaScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateArena(e)
	systems.AddCombatSystems(e)

	data, err := assets.LoadArena(as.arenaName)
	if err != nil {
		log.Printf("Warning: Could not load arena, using an empty one: %v", err)
	} else {
		if as.forceClass && data.Fighter != nil {
			data.Fighter.Class = ""
		}
		as.fighter = factory.PopulateArena(e, data, as.class)
	}
	if as.fighter == nil {
		as.fighter = factory.CreateFighter(e, as.class, 1,
			float64(cfg.Arena.Width)/2, float64(cfg.Arena.Height)/2)
	}

	if saved, err := systems.LoadPreferences(); err == nil && saved != nil {
		systems.ApplyPreferences(as.fighter, saved)
	}

	systems.CombatEffectEvent.Subscribe(e.World, logEffect)
	as.ecs = e
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	// Toggle pause on ESC or P
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		as.paused = !as.paused
		if as.paused {
			as.Close()
		}
	}
	if as.paused {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.Debug.DrawHitZones = !cfg.Debug.DrawHitZones
	}
	if as.fighterDown() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		as.Close()
		as.sceneChanger.ChangeScene(NewArenaScene(as.sceneChanger, as.arenaName, as.class, as.forceClass))
		return
	}

	// Mounting belongs to the world layer; the host toggles it directly
	if as.fighter.Valid() && inpututil.IsKeyJustPressed(ebiten.KeyM) {
		f := components.Fighter.Get(as.fighter)
		if f.Mount == cfg.OnFoot {
			systems.SetMount(as.fighter, cfg.OnVehicle)
		} else {
			systems.SetMount(as.fighter, cfg.OnFoot)
		}
	}

	// C cycles the fighter class
	if as.fighter.Valid() && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		f := components.Fighter.Get(as.fighter)
		systems.SetClass(as.fighter, (f.Class+1)%cfg.ClassCount)
	}

	if as.fighter.Valid() {
		pollInput(components.Input.Get(as.fighter), as.camera)
	}
	systems.AdvanceClock(as.ecs.World, 1/float64(ebiten.TPS()))
	as.ecs.Update()
	as.camera = systems.CameraOffset(as.ecs.World)
}

// Close saves preferences changed during play.
func (as *ArenaScene) Close() {
	if as.ecs == nil {
		return
	}
	if err := systems.FlushPreferences(as.ecs.World); err != nil {
		log.Printf("Warning: Could not save preferences: %v", err)
	}
}

func (as *ArenaScene) fighterDown() bool {
	return !as.fighter.Valid() || as.fighter.HasComponent(components.Death)
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	drawTargets(as.ecs.World, screen, as.camera)
	drawFighter(as.ecs.World, screen, as.camera)
	drawDamageText(as.ecs.World, screen, as.camera)
	drawStatus(as.ecs.World, screen)
	if as.paused {
		drawPause(screen)
	}
}

func logEffect(w donburi.World, ev systems.CombatEffect) {
	if cfg.Debug.LogEffects && ev.Sound != cfg.SoundNone {
		log.Printf("effect sound=%d effect=%d at (%.0f, %.0f)", ev.Sound, ev.Effect, ev.Position.X, ev.Position.Y)
	}
}
