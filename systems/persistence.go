package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/jumplab/components"
	"github.com/quasilyte/gdata"
)

// SavedTuning represents the jump tuning stored on disk
type SavedTuning struct {
	GroundHeight     float64 `json:"groundHeight"`
	GroundApexFrames float64 `json:"groundApexFrames"`
	DoubleHeight     float64 `json:"doubleHeight"`
	DoubleApexFrames float64 `json:"doubleApexFrames"`
	WallHeight       float64 `json:"wallHeight"`
	WallApexFrames   float64 `json:"wallApexFrames"`
	FallFrames       float64 `json:"fallFrames"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for tuning storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "jumplab",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadTuning loads the saved jump tuning from disk. A nil result with a nil
// error means no saved tuning exists yet and the defaults apply.
func LoadTuning() (*SavedTuning, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("tuning")
	if err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var saved SavedTuning
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved tuning: %v", err)
		return nil, err
	}

	return &saved, nil
}

// SaveTuning writes the current jump tuning to disk
func SaveTuning(tuning *components.TuningData) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	saved := SavedTuning{
		GroundHeight:     tuning.Ground.Height,
		GroundApexFrames: tuning.Ground.ApexFrames,
		DoubleHeight:     tuning.Double.Height,
		DoubleApexFrames: tuning.Double.ApexFrames,
		WallHeight:       tuning.Wall.Height,
		WallApexFrames:   tuning.Wall.ApexFrames,
		FallFrames:       tuning.FallFrames,
	}

	data, err := json.Marshal(&saved)
	if err != nil {
		log.Printf("Warning: Could not serialize tuning: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("tuning", data); err != nil {
		log.Printf("Warning: Could not save tuning: %v", err)
		return err
	}

	return nil
}

// ApplySavedTuning copies a loaded tuning snapshot into the live component.
func ApplySavedTuning(tuning *components.TuningData, saved *SavedTuning) {
	if saved == nil {
		return
	}
	tuning.Ground.Height = saved.GroundHeight
	tuning.Ground.ApexFrames = saved.GroundApexFrames
	tuning.Double.Height = saved.DoubleHeight
	tuning.Double.ApexFrames = saved.DoubleApexFrames
	tuning.Wall.Height = saved.WallHeight
	tuning.Wall.ApexFrames = saved.WallApexFrames
	tuning.FallFrames = saved.FallFrames
}
