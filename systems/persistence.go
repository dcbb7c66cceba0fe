package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/kinetic-brawl/components"
	cfg "github.com/automoto/kinetic-brawl/config"
	"github.com/automoto/kinetic-brawl/tags"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

// SavedPreferences represents the combat preferences stored on disk
type SavedPreferences struct {
	Mode        int  `json:"mode"`
	BoostToggle bool `json:"boostToggle"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for preference storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Preferences.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadPreferences loads combat preferences from disk. It returns nil when
// nothing was saved yet.
func LoadPreferences() (*SavedPreferences, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Preferences.ItemKey)
	if err != nil {
		log.Printf("Warning: Could not load preferences: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var prefs SavedPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Printf("Warning: Could not parse saved preferences: %v", err)
		return nil, err
	}
	return &prefs, nil
}

// SavePreferences saves combat preferences to disk
func SavePreferences(p *SavedPreferences) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize preferences: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Preferences.ItemKey, data); err != nil {
		log.Printf("Warning: Could not save preferences: %v", err)
		return err
	}
	return nil
}

// FlushPreferences writes the fighter's preferences when they changed since
// the last save. The host calls it on pause, restart and window close rather
// than inside the tick.
func FlushPreferences(w donburi.World) error {
	e, ok := tags.Fighter.First(w)
	if !ok {
		return nil
	}
	mode := components.Mode.Get(e)
	if !mode.PreferencesDirty {
		return nil
	}
	f := components.Fighter.Get(e)
	if err := SavePreferences(&SavedPreferences{
		Mode:        int(mode.Persisted),
		BoostToggle: f.BoostToggle,
	}); err != nil {
		return err
	}
	mode.PreferencesDirty = false
	return nil
}

// ApplyPreferences restores saved preferences onto a fighter.
func ApplyPreferences(e *donburi.Entry, saved *SavedPreferences) {
	if saved == nil {
		return
	}
	m := cfg.CombatMode(saved.Mode)
	if m >= 0 && m < cfg.CombatModeCount {
		components.Mode.Get(e).Persisted = m
	}
	f := components.Fighter.Get(e)
	if f.ClassConfig().HasBoostToggle {
		f.BoostToggle = saved.BoostToggle
	}
}
