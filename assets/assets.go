package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/kinetic-brawl/shared/arenadata"
)

//go:embed arenas/*.tmx
var arenaFS embed.FS

// DefaultArena is loaded when the host is not told otherwise
const DefaultArena = "training"

// LoadArena parses one of the embedded arena layouts by stem name.
func LoadArena(name string) (*arenadata.ArenaData, error) {
	data, err := arenadata.LoadArena(arenaFS, "arenas/"+name+".tmx")
	if err != nil {
		return nil, fmt.Errorf("arena %q: %w", name, err)
	}
	return data, nil
}

// ArenaNames lists the embedded arena layouts.
func ArenaNames() ([]string, error) {
	_, names, err := arenadata.LoadAllArenas(arenaFS, "arenas")
	return names, err
}
