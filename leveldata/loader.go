package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Default vertical travel for floating platforms without an explicit
// "travel" property in the map.
const defaultFloaterTravel = 96.0

// Load parses a TMX file and returns the level geometry. It takes an fs.FS
// so callers can pass embed.FS or os.DirFS. Geometry lives in object groups:
// "Walls" (solid), "Platforms" (one-way), "FloatingPlatforms" (one-way,
// tweened vertically) and "PlayerSpawn" (single point).
func Load(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				data.Walls = append(data.Walls, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "Platforms":
			for _, o := range og.Objects {
				data.Platforms = append(data.Platforms, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "FloatingPlatforms":
			for _, o := range og.Objects {
				travel := o.Properties.GetFloat("travel")
				if travel == 0 {
					travel = defaultFloaterTravel
				}
				data.Floaters = append(data.Floaters, FloatRect{
					Rect:   Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Travel: travel,
				})
			}
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				data.SpawnX = og.Objects[0].X
				data.SpawnY = og.Objects[0].Y
				spawnFound = true
			}
		}
	}

	if len(data.Walls) == 0 {
		return nil, fmt.Errorf("level %s has no Walls object group", tmxPath)
	}
	if !spawnFound {
		return nil, fmt.Errorf("level %s has no PlayerSpawn object", tmxPath)
	}

	return data, nil
}
