// Package assets embeds the data files shipped with the game.
package assets

import "embed"

//go:embed levels
var FS embed.FS

// LevelPath is the playground level inside FS.
const LevelPath = "levels/jumplab.tmx"
