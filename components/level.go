package components

import (
	"github.com/automoto/jumplab/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Current *leveldata.LevelData
}

var Level = donburi.NewComponentType[LevelData]()
