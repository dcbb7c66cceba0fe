package arenadata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from an arena TMX file
const (
	GroupFighterSpawn = "FighterSpawn"
	GroupEnemySpawn   = "EnemySpawn"
)

// LoadArena parses a TMX file and returns its spawn layout. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS. Enemies keep the object
// order of the file, which becomes their spawn order.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		Width:  arenaMap.Width * arenaMap.TileWidth,
		Height: arenaMap.Height * arenaMap.TileHeight,
	}

	for _, og := range arenaMap.ObjectGroups {
		switch og.Name {
		case GroupFighterSpawn:
			if len(og.Objects) == 0 {
				continue
			}
			if len(og.Objects) > 1 {
				return nil, fmt.Errorf("arena %s: %d fighter spawns, want 1", tmxPath, len(og.Objects))
			}
			o := og.Objects[0]
			data.Fighter = &FighterSpawn{
				X:     o.X,
				Y:     o.Y,
				Class: o.Properties.GetString("class"),
				Level: o.Properties.GetInt("level"),
			}
		case GroupEnemySpawn:
			for _, o := range og.Objects {
				data.Enemies = append(data.Enemies, EnemySpawn{
					X:    o.X,
					Y:    o.Y,
					Kind: o.Properties.GetString("kind"),
				})
			}
		}
	}

	for _, s := range data.Enemies {
		if s.X < 0 || s.Y < 0 || (data.Width > 0 && int(s.X) >= data.Width) || (data.Height > 0 && int(s.Y) >= data.Height) {
			return nil, fmt.Errorf("arena %s: enemy spawn (%v, %v) outside %dx%d", tmxPath, s.X, s.Y, data.Width, data.Height)
		}
	}

	return data, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*ArenaData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*ArenaData, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		data, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		arenas[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return arenas, names, nil
}
